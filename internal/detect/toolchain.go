package detect

// Toolchain identifies a language/ecosystem setup target.
type Toolchain string

const (
	Python  Toolchain = "python"
	Node    Toolchain = "node"
	Rust    Toolchain = "rust"
	Flutter Toolchain = "flutter"
)

// Display returns the human-readable name of the toolchain.
func (t Toolchain) Display() string {
	switch t {
	case Python:
		return "Python"
	case Node:
		return "Node.js"
	case Rust:
		return "Rust"
	case Flutter:
		return "Flutter"
	}
	return string(t)
}

// MarkerRule maps marker files to a toolchain. The priority field fixes the
// order toolchains are processed in, independent of filesystem enumeration
// order. Adding a toolchain is a new row here plus a step table in dispatch.
type MarkerRule struct {
	Toolchain Toolchain
	Priority  int
	Markers   []string
}

// Rules is the static marker table consulted by Detect.
var Rules = []MarkerRule{
	{Toolchain: Python, Priority: 10, Markers: []string{"requirements.txt", "pyproject.toml", "setup.py"}},
	{Toolchain: Node, Priority: 20, Markers: []string{"package.json"}},
	{Toolchain: Rust, Priority: 30, Markers: []string{"Cargo.toml"}},
	{Toolchain: Flutter, Priority: 40, Markers: []string{"pubspec.yaml"}},
}

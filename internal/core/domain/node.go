package domain

// NodeKind distinguishes the two vertex families of the module graph.
type NodeKind uint8

const (
	// NodeKindFile is a compilation output (object file or module interface artifact).
	NodeKindFile NodeKind = iota + 1
	// NodeKindModule is a logical module name such as "M" or "M:part".
	NodeKindModule
)

// String returns the prefix used when rendering nodes of this kind.
func (k NodeKind) String() string {
	switch k {
	case NodeKindFile:
		return "file"
	case NodeKindModule:
		return "module"
	default:
		return "unknown"
	}
}

// Node is a vertex of the module graph.
// The kind is part of the identity: a file and a module that happen to share a
// name are different nodes. Node is comparable and is used as a map key.
type Node struct {
	kind NodeKind
	name InternedString
}

// FileNode returns the node for a compilation output identifier.
func FileNode(output string) Node {
	return Node{kind: NodeKindFile, name: NewInternedString(output)}
}

// ModuleNode returns the node for a logical module name.
func ModuleNode(logicalName string) Node {
	return Node{kind: NodeKindModule, name: NewInternedString(logicalName)}
}

// Kind returns the node kind.
func (n Node) Kind() NodeKind {
	return n.kind
}

// Name returns the file identifier or logical module name.
func (n Node) Name() InternedString {
	return n.name
}

// IsFile reports whether n is a file node.
func (n Node) IsFile() bool {
	return n.kind == NodeKindFile
}

// IsModule reports whether n is a module node.
func (n Node) IsModule() bool {
	return n.kind == NodeKindModule
}

// String renders the node as "<kind>:<name>".
func (n Node) String() string {
	return n.kind.String() + ":" + n.name.String()
}

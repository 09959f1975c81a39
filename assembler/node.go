package assembler

// NodeType defines the kind of a classified source line.
type NodeType int

const (
	// NodeSkip is a comment or blank line.
	NodeSkip NodeType = iota
	// NodeLabel is a "(NAME)" declaration.
	NodeLabel
	// NodeAddress is an "@value" instruction.
	NodeAddress
	// NodeCompute is a "dest=comp;jump" instruction.
	NodeCompute
)

// Node represents one parsed source line. A new Node is built for every line.
type Node struct {
	Type NodeType

	// Label is set for NodeLabel.
	Label string

	// Symbol is the operand name of a symbolic address instruction. When it is empty,
	// Value holds the literal.
	Symbol string
	Value  uint16

	Dest    string
	Comp    string
	Jump    string
	HasDest bool
	HasJump bool
}

// IsInstruction reports whether the node produces an output word.
func (n Node) IsInstruction() bool {
	return n.Type == NodeAddress || n.Type == NodeCompute
}

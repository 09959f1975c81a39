package cpu

// Compute instruction layout: 111a cccc ccdd djjj
const (
	// ComputePrefix marks a compute instruction.
	ComputePrefix Word = 0xE000

	addressFlag Word = 0x8000
	compShift        = 6
	compMask         = 0x7F
	destShift        = 3
	destMask         = 0x07
	jumpMask         = 0x07
	memoryBit        = 0x40
	aluMask          = 0x3F
)

// Destination bits.
const (
	DestM uint16 = 1 << iota
	DestD
	DestA
)

// Jump condition bits.
const (
	JumpGT uint16 = 1 << iota
	JumpEQ
	JumpLT
)

// DecodedInstruction holds the fields of one Hack instruction.
type DecodedInstruction struct {
	// Compute is false for address instructions.
	Compute bool
	// Value is the constant loaded by an address instruction.
	Value Word
	// Comp holds the a-bit and the six ALU control bits.
	Comp uint16
	Dest uint16
	Jump uint16
}

// Decode splits a word into its instruction fields.
func Decode(w Word) DecodedInstruction {
	if w&addressFlag == 0 {
		return DecodedInstruction{Value: w}
	}

	return DecodedInstruction{
		Compute: true,
		Comp:    uint16(w>>compShift) & compMask,
		Dest:    uint16(w>>destShift) & destMask,
		Jump:    uint16(w) & jumpMask,
	}
}

// EncodeCompute assembles a compute instruction from its 7-bit comp, 3-bit dest and
// 3-bit jump fields.
func EncodeCompute(comp, dest, jump uint16) Word {
	return ComputePrefix |
		Word(comp&compMask)<<compShift |
		Word(dest&destMask)<<destShift |
		Word(jump&jumpMask)
}

// UsesMemory reports whether the ALU y input is M rather than A.
func (d DecodedInstruction) UsesMemory() bool {
	return d.Comp&memoryBit != 0
}

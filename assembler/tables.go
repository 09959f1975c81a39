package assembler

//
// Field lookup tables for compute instructions
//

var (
	// compCodes holds the a-bit followed by the six ALU control bits.
	compCodes = map[string]uint16{
		"0":   0b0101010,
		"1":   0b0111111,
		"-1":  0b0111010,
		"D":   0b0001100,
		"A":   0b0110000,
		"!D":  0b0001101,
		"!A":  0b0110001,
		"-D":  0b0001111,
		"-A":  0b0110011,
		"D+1": 0b0011111,
		"A+1": 0b0110111,
		"D-1": 0b0001110,
		"A-1": 0b0110010,
		"D+A": 0b0000010,
		"D-A": 0b0010011,
		"A-D": 0b0000111,
		"D&A": 0b0000000,
		"D|A": 0b0010101,
		"M":   0b1110000,
		"!M":  0b1110001,
		"-M":  0b1110011,
		"M+1": 0b1110111,
		"M-1": 0b1110010,
		"D+M": 0b1000010,
		"D-M": 0b1010011,
		"M-D": 0b1000111,
		"D&M": 0b1000000,
		"D|M": 0b1010101,
	}

	// destCodes is an explicit table; only these orderings are accepted.
	destCodes = map[string]uint16{
		"":    0b000,
		"M":   0b001,
		"D":   0b010,
		"MD":  0b011,
		"A":   0b100,
		"AM":  0b101,
		"AD":  0b110,
		"AMD": 0b111,
	}

	jumpCodes = map[string]uint16{
		"":    0b000,
		"JGT": 0b001,
		"JEQ": 0b010,
		"JGE": 0b011,
		"JLT": 0b100,
		"JNE": 0b101,
		"JLE": 0b110,
		"JMP": 0b111,
	}

	compNames = invert(compCodes)
	destNames = invert(destCodes)
	jumpNames = invert(jumpCodes)
)

// CompCode returns the 7-bit comp field for a computation mnemonic.
func CompCode(mnemonic string) (uint16, bool) {
	code, ok := compCodes[mnemonic]
	return code, ok
}

// DestCode returns the 3-bit dest field for a destination mnemonic. The empty string
// means no destination.
func DestCode(mnemonic string) (uint16, bool) {
	code, ok := destCodes[mnemonic]
	return code, ok
}

// JumpCode returns the 3-bit jump field for a jump mnemonic. The empty string means no jump.
func JumpCode(mnemonic string) (uint16, bool) {
	code, ok := jumpCodes[mnemonic]
	return code, ok
}

// CompMnemonic is the reverse of CompCode.
func CompMnemonic(code uint16) (string, bool) {
	name, ok := compNames[code]
	return name, ok
}

// DestMnemonic is the reverse of DestCode.
func DestMnemonic(code uint16) (string, bool) {
	name, ok := destNames[code]
	return name, ok
}

// JumpMnemonic is the reverse of JumpCode.
func JumpMnemonic(code uint16) (string, bool) {
	name, ok := jumpNames[code]
	return name, ok
}

func invert(m map[string]uint16) map[uint16]string {
	out := make(map[uint16]string, len(m))
	for name, code := range m {
		out[code] = name
	}
	return out
}

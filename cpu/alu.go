package cpu

// ALU control bits, c1 through c6.
const (
	aluZX = 1 << (5 - iota)
	aluNX
	aluZY
	aluNY
	aluF
	aluNO
)

// ALU computes the Hack ALU output for x (always D) and y (A or M).
func ALU(x, y Word, control uint16) Word {
	if control&aluZX != 0 {
		x = 0
	}
	if control&aluNX != 0 {
		x = ^x
	}
	if control&aluZY != 0 {
		y = 0
	}
	if control&aluNY != 0 {
		y = ^y
	}

	var out Word
	if control&aluF != 0 {
		out = x + y
	} else {
		out = x & y
	}

	if control&aluNO != 0 {
		out = ^out
	}
	return out
}

// shouldJump tests the ALU output against the jump condition bits.
func shouldJump(jump uint16, out Word) bool {
	v := out.Int()
	switch {
	case v < 0:
		return jump&JumpLT != 0
	case v == 0:
		return jump&JumpEQ != 0
	default:
		return jump&JumpGT != 0
	}
}

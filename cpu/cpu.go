package cpu

import "errors"

// Memory layout of the Hack machine.
const (
	// ROMSize is the number of instruction words the program memory holds.
	ROMSize = 32768
	// RAMSize covers the data registers, the screen map and the keyboard register.
	RAMSize = 24577

	// RegisterCount is the number of general-purpose registers R0-R15.
	RegisterCount = 16
	// VariableBase is the first data address above the general-purpose registers.
	VariableBase uint16 = RegisterCount
	// ScreenBase is the first word of the memory-mapped screen.
	ScreenBase uint16 = 16384
	// KeyboardAddr is the memory-mapped keyboard register.
	KeyboardAddr uint16 = 24576
	// MaxAddress is the largest value an address instruction can load.
	MaxAddress uint16 = 0x7FFF
)

var (
	// ErrProgramSize is returned when a program does not fit in ROM.
	ErrProgramSize = errors.New("program exceeds ROM size")
	// ErrCycleLimit is returned by Run when the program is still running after the cycle budget.
	ErrCycleLimit = errors.New("cycle limit reached")
)

// CPU holds the Hack registers and memories.
type CPU struct {
	// A is the address register.
	A Word
	// D is the data register.
	D Word
	// PC is the program counter.
	PC uint16

	ROM []Word
	RAM []Word

	// Cycles count.
	Cycles int
	// Running or not.
	Running bool

	size int
}

// New creates a CPU with empty memories.
func New() *CPU {
	return &CPU{
		ROM: make([]Word, ROMSize),
		RAM: make([]Word, RAMSize),
	}
}

// Load copies a program into ROM and resets the registers.
func (c *CPU) Load(program []Word) error {
	if len(program) > ROMSize {
		return ErrProgramSize
	}

	clear(c.ROM)
	copy(c.ROM, program)
	c.size = len(program)
	c.Reset()
	return nil
}

// Reset clears the registers and marks the CPU as running. Memory is left alone.
func (c *CPU) Reset() {
	c.A, c.D, c.PC = 0, 0, 0
	c.Cycles = 0
	c.Running = c.size > 0
}

// ProgramSize returns the number of loaded instruction words.
func (c *CPU) ProgramSize() int {
	return c.size
}

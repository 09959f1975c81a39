package cpu

import "fmt"

// Step fetches, decodes, and executes a single instruction.
func (c *CPU) Step() error {
	if !c.Running {
		return nil
	}

	if int(c.PC) >= c.size {
		c.Running = false
		return nil
	}

	// Fetch
	pc := c.PC
	inst := Decode(c.ROM[pc])
	c.Cycles++

	if !inst.Compute {
		c.A = inst.Value
		c.PC++
		return nil
	}

	// M is addressed by A as it was before this instruction.
	addr := c.A
	y := c.A
	if inst.UsesMemory() {
		m, err := c.read(addr)
		if err != nil {
			return fmt.Errorf("execution failed at %d: %w", pc, err)
		}
		y = m
	}

	out := ALU(c.D, y, inst.Comp&aluMask)

	if inst.Dest&DestM != 0 {
		if err := c.write(addr, out); err != nil {
			return fmt.Errorf("execution failed at %d: %w", pc, err)
		}
	}
	if inst.Dest&DestA != 0 {
		c.A = out
	}
	if inst.Dest&DestD != 0 {
		c.D = out
	}

	if !shouldJump(inst.Jump, out) {
		c.PC++
		return nil
	}

	target := uint16(addr)
	c.PC = target
	if c.isHaltLoop(target, pc) {
		c.Running = false
	}
	return nil
}

// Run steps until the program halts or maxCycles instructions have executed.
// It returns the number of cycles used by this call.
func (c *CPU) Run(maxCycles int) (int, error) {
	start := c.Cycles
	for c.Running {
		if c.Cycles-start >= maxCycles {
			return c.Cycles - start, ErrCycleLimit
		}
		if err := c.Step(); err != nil {
			return c.Cycles - start, err
		}
	}
	return c.Cycles - start, nil
}

// isHaltLoop recognises a jump to itself and the "(END) @END 0;JMP" idiom.
func (c *CPU) isHaltLoop(target, pc uint16) bool {
	if target == pc {
		return true
	}
	if int(target) >= c.size {
		return false
	}
	return target+1 == pc && c.ROM[target] == Word(target)
}

func (c *CPU) read(addr Word) (Word, error) {
	if int(addr) >= len(c.RAM) {
		return 0, fmt.Errorf("read from unmapped address %d", addr)
	}
	return c.RAM[addr], nil
}

func (c *CPU) write(addr, val Word) error {
	if int(addr) >= len(c.RAM) {
		return fmt.Errorf("write to unmapped address %d", addr)
	}
	c.RAM[addr] = val
	return nil
}

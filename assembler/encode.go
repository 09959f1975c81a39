package assembler

import (
	"fmt"

	"github.com/Urethramancer/hack/cpu"
)

// Encode turns an instruction node into its machine word. Symbolic operands are resolved
// through the symbol table, allocating variables on first use.
func (asm *Assembler) Encode(n Node) (cpu.Word, error) {
	switch n.Type {
	case NodeAddress:
		return asm.encodeAddress(n)
	case NodeCompute:
		return encodeCompute(n)
	}
	return 0, fmt.Errorf("node type %d is not an instruction", n.Type)
}

func (asm *Assembler) encodeAddress(n Node) (cpu.Word, error) {
	value := n.Value
	if n.Symbol != "" {
		_, known := asm.symbols.Lookup(n.Symbol)
		addr, err := asm.symbols.Resolve(n.Symbol)
		if err != nil {
			return 0, err
		}
		if !known {
			asm.log.Debug("variable allocated", "name", n.Symbol, "address", addr)
		}
		value = addr
	}

	if value > cpu.MaxAddress {
		return 0, fmt.Errorf("%w: %d", ErrLiteralRange, value)
	}
	return cpu.Word(value), nil
}

func encodeCompute(n Node) (cpu.Word, error) {
	comp, ok := CompCode(n.Comp)
	if !ok {
		return 0, fmt.Errorf("%w '%s'", ErrUnknownComp, n.Comp)
	}

	dest, ok := DestCode(n.Dest)
	if !ok {
		return 0, fmt.Errorf("%w '%s'", ErrUnknownDest, n.Dest)
	}

	jump, ok := JumpCode(n.Jump)
	if !ok {
		return 0, fmt.Errorf("%w '%s'", ErrUnknownJump, n.Jump)
	}

	return cpu.EncodeCompute(comp, dest, jump), nil
}

package disassembler

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Urethramancer/hack/assembler"
	"github.com/Urethramancer/hack/cpu"
)

// Instruction represents a single decoded word at a specific ROM address.
type Instruction struct {
	Address uint16
	Word    cpu.Word
	Text    string
	// Target is set on address instructions whose value is loaded right before a jump.
	Target bool
}

// Decode renders a single word as an assembly line.
func Decode(w cpu.Word) (string, error) {
	inst := cpu.Decode(w)
	if !inst.Compute {
		return "@" + strconv.Itoa(int(inst.Value)), nil
	}
	if w&cpu.ComputePrefix != cpu.ComputePrefix {
		return "", fmt.Errorf("invalid compute prefix in %s", w)
	}

	comp, ok := assembler.CompMnemonic(inst.Comp)
	if !ok {
		return "", fmt.Errorf("unknown comp bits %07b in %s", inst.Comp, w)
	}
	dest, _ := assembler.DestMnemonic(inst.Dest)
	jump, _ := assembler.JumpMnemonic(inst.Jump)

	var sb strings.Builder
	if dest != "" {
		sb.WriteString(dest)
		sb.WriteByte('=')
	}
	sb.WriteString(comp)
	if jump != "" {
		sb.WriteByte(';')
		sb.WriteString(jump)
	}
	return sb.String(), nil
}

// Disassemble reads a .hack program and returns assembly source that assembles back to
// the same words. Label symbols, when given, name their ROM addresses; otherwise every
// jump target inside the program gets a generated "L<address>" label.
func Disassemble(r io.Reader, labels []assembler.Symbol) (string, error) {
	program, err := cpu.ParseHack(r)
	if err != nil {
		return "", err
	}

	// --- STAGE 1: Linear Sweep ---
	instructions := make([]Instruction, len(program))
	for i, w := range program {
		text, err := Decode(w)
		if err != nil {
			return "", fmt.Errorf("address %d: %w", i, err)
		}
		instructions[i] = Instruction{Address: uint16(i), Word: w, Text: text}
	}

	// --- STAGE 2: Jump Target Analysis ---
	names := labelNames(labels, len(program))
	generate := len(labels) == 0
	for i := 0; i+1 < len(instructions); i++ {
		load, next := instructions[i], instructions[i+1]
		if cpu.Decode(load.Word).Compute || cpu.Decode(next.Word).Jump == 0 {
			continue
		}
		target := uint16(load.Word)
		if int(target) > len(program) {
			continue
		}
		if _, named := names[target]; !named {
			if !generate {
				continue
			}
			names[target] = []string{"L" + strconv.Itoa(int(target))}
		}
		instructions[i].Target = true
	}

	// --- STAGE 3: Render Final Output ---
	var out strings.Builder
	for _, inst := range instructions {
		for _, name := range names[inst.Address] {
			fmt.Fprintf(&out, "(%s)\n", name)
		}
		if inst.Target {
			fmt.Fprintf(&out, "@%s\n", names[uint16(inst.Word)][0])
			continue
		}
		out.WriteString(inst.Text)
		out.WriteByte('\n')
	}
	for _, name := range names[uint16(len(program))] {
		fmt.Fprintf(&out, "(%s)\n", name)
	}

	return out.String(), nil
}

// labelNames groups label symbols by address, dropping anything outside the program.
func labelNames(labels []assembler.Symbol, size int) map[uint16][]string {
	names := make(map[uint16][]string)
	for _, s := range labels {
		if s.Kind != assembler.KindLabel || int(s.Address) > size {
			continue
		}
		names[s.Address] = append(names[s.Address], s.Name)
	}
	return names
}

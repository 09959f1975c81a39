package assembler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseLine classifies one source line and splits it into its fields. The line may still
// carry its "\n" or "\r\n" terminator.
//
// On error the returned Node keeps its Type, so callers can still tell an instruction
// line from a label line.
func ParseLine(line string) (Node, error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	switch {
	case strings.HasPrefix(line, "//"), line == "":
		return Node{Type: NodeSkip}, nil
	case line[0] == '(':
		return parseLabel(line)
	case line[0] == '@':
		return parseAddress(line[1:])
	}
	return parseCompute(line), nil
}

// parseLabel handles "(NAME)". Anything after the closing parenthesis is ignored.
func parseLabel(line string) (Node, error) {
	n := Node{Type: NodeLabel}

	name, _, found := strings.Cut(line[1:], ")")
	if !found || name == "" {
		return n, ErrMalformedLabel
	}
	if !isSymbol(name) {
		return n, fmt.Errorf("%w '%s'", ErrInvalidSymbol, name)
	}

	n.Label = name
	return n, nil
}

// parseAddress handles the operand after '@'. A leading digit always means a decimal literal.
func parseAddress(operand string) (Node, error) {
	n := Node{Type: NodeAddress}

	if operand == "" {
		return n, ErrMissingOperand
	}

	if !isDigit(rune(operand[0])) {
		if !isSymbol(operand) {
			return n, fmt.Errorf("%w '%s'", ErrInvalidSymbol, operand)
		}
		n.Symbol = operand
		return n, nil
	}

	for _, r := range operand {
		if !isDigit(r) {
			return n, fmt.Errorf("%w '%s'", ErrInvalidLiteral, operand)
		}
	}

	v, err := strconv.ParseUint(operand, 10, 16)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return n, fmt.Errorf("%w: %s", ErrLiteralRange, operand)
		}
		return n, fmt.Errorf("%w '%s'", ErrInvalidLiteral, operand)
	}

	n.Value = uint16(v)
	return n, nil
}

// parseCompute splits "dest=comp;jump". The destination is only taken when '=' comes
// before any ';'. The jump mnemonic ends at the first space.
func parseCompute(line string) Node {
	n := Node{Type: NodeCompute}

	rest := line
	eq := strings.IndexByte(line, '=')
	semi := strings.IndexByte(line, ';')
	if eq >= 0 && (semi < 0 || eq < semi) {
		n.Dest = line[:eq]
		n.HasDest = true
		rest = line[eq+1:]
	}

	comp, jump, found := strings.Cut(rest, ";")
	n.Comp = comp
	if found {
		if i := strings.IndexByte(jump, ' '); i >= 0 {
			jump = jump[:i]
		}
		n.Jump = jump
		n.HasJump = true
	}
	return n
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isSymbol accepts printable UTF-8 names without whitespace that do not start with a digit.
func isSymbol(s string) bool {
	if s == "" || isDigit(rune(s[0])) || !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

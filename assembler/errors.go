package assembler

import (
	"errors"
	"fmt"
)

// Line diagnostics. A line that fails with one of these produces no output word.
var (
	ErrUnknownComp    = errors.New("unknown computation")
	ErrUnknownDest    = errors.New("unknown destination")
	ErrUnknownJump    = errors.New("unknown jump condition")
	ErrMissingOperand = errors.New("missing address operand")
	ErrInvalidLiteral = errors.New("invalid numeric literal")
	ErrLiteralRange   = errors.New("address exceeds 15 bits")
	ErrInvalidSymbol  = errors.New("invalid symbol name")
	ErrMalformedLabel = errors.New("malformed label declaration")
	ErrDuplicateLabel = errors.New("redeclaration of symbol")
	ErrAddressSpace   = errors.New("address space exhausted")
)

// LineError ties a diagnostic to its source line.
type LineError struct {
	// Line is 1-based.
	Line   int
	Source string
	Err    error
}

func (err *LineError) Error() string {
	return fmt.Sprintf("%02d: %v\n\t%s", err.Line, err.Err, err.Source)
}

func (err *LineError) Unwrap() error {
	return err.Err
}

package assembler

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/Urethramancer/hack/cpu"
)

// Status is the outcome of one source line.
type Status int

const (
	// StatusSkipped lines carry no instruction: comments, blanks and labels.
	StatusSkipped Status = iota
	// StatusEncoded lines produced one output word.
	StatusEncoded
	// StatusRejected lines failed with a diagnostic and produced nothing.
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusEncoded:
		return "encoded"
	case StatusRejected:
		return "rejected"
	}
	return "unknown"
}

// LineResult records what happened to a single source line in pass two.
type LineResult struct {
	Line   int
	Source string
	Status Status
	// Address is the ROM address of Word when Status is StatusEncoded.
	Address uint16
	Word    cpu.Word
	Err     error
}

// Result is the outcome of a full assembly run.
type Result struct {
	Lines   []LineResult
	Words   []cpu.Word
	Symbols *SymbolTable
}

// Diagnostics returns the errors of all rejected lines, in source order.
func (r *Result) Diagnostics() []error {
	var errs []error
	for _, l := range r.Lines {
		if l.Status == StatusRejected {
			errs = append(errs, l.Err)
		}
	}
	return errs
}

// Rejected returns the number of rejected lines.
func (r *Result) Rejected() int {
	count := 0
	for _, l := range r.Lines {
		if l.Status == StatusRejected {
			count++
		}
	}
	return count
}

// MaxLineLength is the longest source line the assembler reads. A longer line is an
// input error and stops the run.
const MaxLineLength = 1 << 20

// Assembler holds the state for the assembly process.
type Assembler struct {
	symbols *SymbolTable
	log     *slog.Logger
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{
		symbols: NewSymbolTable(),
		log:     slog.Default(),
	}
}

// SetLogger replaces the logger used for pass details and diagnostics.
func (asm *Assembler) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	asm.log = l
}

// Symbols returns the symbol table of the last run.
func (asm *Assembler) Symbols() *SymbolTable {
	return asm.symbols
}

// Assemble runs both passes over src and writes one line of 16 binary digits per
// instruction to out. Every call starts from a fresh symbol table.
//
// I/O failures abort the run and are returned. Line diagnostics do not stop assembly;
// they are reported in the Result.
func (asm *Assembler) Assemble(src io.ReadSeeker, out io.Writer) (*Result, error) {
	asm.symbols = NewSymbolTable()

	labelErrs, err := asm.firstPass(src)
	if err != nil {
		return nil, fmt.Errorf("pass one: %w", err)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding input: %w", err)
	}

	res, err := asm.secondPass(src, out, labelErrs)
	if err != nil {
		return nil, fmt.Errorf("pass two: %w", err)
	}

	return res, nil
}

// firstPass binds every label to the number of instruction lines before it.
// Failed label declarations are returned by line number so pass two can report them.
func (asm *Assembler) firstPass(src io.Reader) (map[int]error, error) {
	labelErrs := make(map[int]error)
	scanner := newLineScanner(src)

	var count uint32
	line := 0
	for scanner.Scan() {
		line++
		n, err := ParseLine(scanner.Text())

		switch n.Type {
		case NodeLabel:
			if err == nil {
				err = asm.symbols.AddLabel(n.Label, uint16(min(count, 0xFFFF)))
			}
			if err != nil {
				labelErrs[line] = err
				continue
			}
			asm.log.Debug("label bound", "name", n.Label, "address", count)
		case NodeAddress, NodeCompute:
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	asm.log.Debug("pass one complete", "lines", line, "instructions", count, "symbols", asm.symbols.Len())
	return labelErrs, nil
}

// secondPass encodes every instruction line and emits its word.
func (asm *Assembler) secondPass(src io.Reader, out io.Writer, labelErrs map[int]error) (*Result, error) {
	res := &Result{Symbols: asm.symbols}
	w := bufio.NewWriter(out)
	scanner := newLineScanner(src)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		lr := LineResult{Line: line, Source: text}

		n, err := ParseLine(text)
		if err == nil && n.Type == NodeLabel {
			// The binding itself was made in pass one.
			err = labelErrs[line]
		}

		switch {
		case err != nil:
			lr.Status = StatusRejected
			lr.Err = err
		case n.IsInstruction():
			word, err := asm.Encode(n)
			if err != nil {
				lr.Status = StatusRejected
				lr.Err = err
				break
			}

			lr.Status = StatusEncoded
			lr.Address = uint16(len(res.Words))
			lr.Word = word
			res.Words = append(res.Words, word)
			if _, err := fmt.Fprintln(w, word); err != nil {
				return nil, fmt.Errorf("writing output: %w", err)
			}
		default:
			lr.Status = StatusSkipped
		}

		if lr.Status == StatusRejected {
			asm.log.Warn("line rejected", "line", line, "err", lr.Err)
			lr.Err = &LineError{Line: line, Source: text, Err: lr.Err}
		}
		res.Lines = append(res.Lines, lr)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}

	asm.log.Debug("pass two complete", "words", len(res.Words), "rejected", res.Rejected())
	return res, nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineLength)
	return scanner
}

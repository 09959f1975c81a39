package cpu

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseHack reads a program in .hack text form, one 16-digit binary word per line.
// Empty lines are ignored.
func ParseHack(r io.Reader) ([]Word, error) {
	var program []Word
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		w, err := ParseWord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		program = append(program, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	if len(program) > ROMSize {
		return nil, ErrProgramSize
	}
	return program, nil
}

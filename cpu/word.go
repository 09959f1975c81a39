package cpu

import (
	"fmt"
	"strconv"
)

// WordBits is the width of every Hack instruction and data word.
const WordBits = 16

// Word is a single 16-bit Hack word.
type Word uint16

// String renders the word as 16 binary digits, most significant bit first.
func (w Word) String() string {
	return fmt.Sprintf("%016b", uint16(w))
}

// Int returns the word interpreted as a two's complement value.
func (w Word) Int() int16 {
	return int16(w)
}

// ParseWord reads exactly 16 binary digits.
func ParseWord(s string) (Word, error) {
	if len(s) != WordBits {
		return 0, fmt.Errorf("want %d binary digits, have %d", WordBits, len(s))
	}

	v, err := strconv.ParseUint(s, 2, WordBits)
	if err != nil {
		return 0, fmt.Errorf("invalid binary word %q", s)
	}

	return Word(v), nil
}

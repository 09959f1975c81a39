package assembler

import (
	"fmt"
	"strconv"

	"github.com/Urethramancer/hack/cpu"
)

// SymbolKind tells where a binding came from.
type SymbolKind int

const (
	// KindPredefined is an architectural symbol.
	KindPredefined SymbolKind = iota
	// KindLabel is bound to an instruction address in pass one.
	KindLabel
	// KindVariable is allocated a data address on first reference in pass two.
	KindVariable
)

func (k SymbolKind) String() string {
	switch k {
	case KindPredefined:
		return "predefined"
	case KindLabel:
		return "label"
	case KindVariable:
		return "variable"
	}
	return "unknown"
}

// Symbol is one entry of the symbol table.
type Symbol struct {
	Name    string
	Address uint16
	Kind    SymbolKind
}

// SymbolTable maps symbol names to addresses, keeping insertion order.
type SymbolTable struct {
	entries []Symbol
	index   map[string]int
	next    uint16
}

// NewSymbolTable returns a table seeded with the architectural symbols.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{
		index: make(map[string]int),
		next:  cpu.VariableBase,
	}

	for i := 0; i < cpu.RegisterCount; i++ {
		st.insert("R"+strconv.Itoa(i), uint16(i), KindPredefined)
	}
	st.insert("SCREEN", cpu.ScreenBase, KindPredefined)
	st.insert("KBD", cpu.KeyboardAddr, KindPredefined)
	st.insert("SP", 0, KindPredefined)
	st.insert("LCL", 1, KindPredefined)
	st.insert("ARG", 2, KindPredefined)
	st.insert("THIS", 3, KindPredefined)
	st.insert("THAT", 4, KindPredefined)
	return st
}

// Lookup finds a symbol by exact name.
func (st *SymbolTable) Lookup(name string) (Symbol, bool) {
	i, ok := st.index[name]
	if !ok {
		return Symbol{}, false
	}
	return st.entries[i], true
}

// AddLabel binds a label to an instruction address. The first binding of a name wins.
func (st *SymbolTable) AddLabel(name string, addr uint16) error {
	if prev, ok := st.Lookup(name); ok {
		return fmt.Errorf("%w '%s' (%s at %d)", ErrDuplicateLabel, name, prev.Kind, prev.Address)
	}
	if addr > cpu.MaxAddress {
		return fmt.Errorf("%w: label '%s' at %d", ErrAddressSpace, name, addr)
	}

	st.insert(name, addr, KindLabel)
	return nil
}

// Resolve returns the address of name, allocating the next variable address when the
// name is not yet known.
func (st *SymbolTable) Resolve(name string) (uint16, error) {
	if sym, ok := st.Lookup(name); ok {
		return sym.Address, nil
	}
	if st.next > cpu.MaxAddress {
		return 0, fmt.Errorf("%w: no room for variable '%s'", ErrAddressSpace, name)
	}

	addr := st.next
	st.next++
	st.insert(name, addr, KindVariable)
	return addr, nil
}

// Symbols returns a copy of all entries in insertion order.
func (st *SymbolTable) Symbols() []Symbol {
	out := make([]Symbol, len(st.entries))
	copy(out, st.entries)
	return out
}

// Len returns the number of entries.
func (st *SymbolTable) Len() int {
	return len(st.entries)
}

func (st *SymbolTable) insert(name string, addr uint16, kind SymbolKind) {
	st.index[name] = len(st.entries)
	st.entries = append(st.entries, Symbol{Name: name, Address: addr, Kind: kind})
}

package assembler

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type symbolRecord struct {
	Name    string `yaml:"name"`
	Address uint16 `yaml:"address"`
	Kind    string `yaml:"kind"`
}

// WriteSymbols writes the table as a YAML list in insertion order.
func WriteSymbols(w io.Writer, st *SymbolTable) error {
	syms := st.Symbols()
	records := make([]symbolRecord, 0, len(syms))
	for _, s := range syms {
		records = append(records, symbolRecord{Name: s.Name, Address: s.Address, Kind: s.Kind.String()})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding symbols: %w", err)
	}
	return enc.Close()
}

// ReadSymbols loads a list written by WriteSymbols.
func ReadSymbols(r io.Reader) ([]Symbol, error) {
	var records []symbolRecord
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding symbols: %w", err)
	}

	syms := make([]Symbol, 0, len(records))
	for _, rec := range records {
		kind, err := parseKind(rec.Kind)
		if err != nil {
			return nil, fmt.Errorf("symbol '%s': %w", rec.Name, err)
		}
		syms = append(syms, Symbol{Name: rec.Name, Address: rec.Address, Kind: kind})
	}
	return syms, nil
}

func parseKind(s string) (SymbolKind, error) {
	switch s {
	case "predefined":
		return KindPredefined, nil
	case "label":
		return KindLabel, nil
	case "variable":
		return KindVariable, nil
	}
	return 0, fmt.Errorf("unknown symbol kind %q", s)
}

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const maxHack = `0000000000000000
1111110000010000
0000000000000001
1111010011010000
0000000000001010
1110001100000001
0000000000000001
1111110000010000
0000000000001100
1110101010000111
0000000000000000
1111110000010000
0000000000000010
1110001100001000
0000000000001110
1110101010000111
`

func TestRunWritesOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "Max.hack")
	out := filepath.Join(dir, "Max.asm")
	if err := os.WriteFile(in, []byte(maxHack), 0644); err != nil {
		t.Fatal(err)
	}

	if code := run([]string{in, out}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"D=M", "@L10\nD;JGT", "(L14)\n@L14\n0;JMP"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("missing %q:\n%s", want, data)
		}
	}
}

func TestRunSymbolFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "Max.hack")
	syms := filepath.Join(dir, "Max.yaml")
	out := filepath.Join(dir, "Max.asm")
	if err := os.WriteFile(in, []byte(maxHack), 0644); err != nil {
		t.Fatal(err)
	}
	labels := "- name: OUTPUT_FIRST\n  address: 10\n  kind: label\n- name: INFINITE_LOOP\n  address: 14\n  kind: label\n"
	if err := os.WriteFile(syms, []byte(labels), 0644); err != nil {
		t.Fatal(err)
	}

	if code := run([]string{"-s", syms, in, out}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"@OUTPUT_FIRST\nD;JGT", "(INFINITE_LOOP)"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("missing %q:\n%s", want, data)
		}
	}
}

func TestRunBadInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "Bad.hack")
	out := filepath.Join(dir, "Bad.asm")
	if err := os.WriteFile(in, []byte("0101\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if code := run([]string{in, out}); code != 1 {
		t.Errorf("want exit code 1, have %d", code)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output written for bad input: %v", err)
	}
}

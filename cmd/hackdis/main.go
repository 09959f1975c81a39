package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Urethramancer/hack/assembler"
	"github.com/Urethramancer/hack/disassembler"
	"github.com/grimdork/climate/arg"
	"github.com/tebeka/atexit"
)

func main() {
	atexit.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opt := arg.New("hackdis")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "s", "symbols", "YAML symbol table from hackasm, used to name labels.", "", false, arg.VarString, nil)
	opt.SetPositional("INPUT", "Hack binary text (.hack).", "", true, arg.VarString)
	opt.SetPositional("OUTPUT", "Output file. Defaults to stdout.", "", false, arg.VarString)

	if err := opt.Parse(args); err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var labels []assembler.Symbol
	if path := opt.GetString("symbols"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			logger.Error("cannot open symbol table", "err", err)
			return 1
		}
		labels, err = assembler.ReadSymbols(f)
		f.Close()
		if err != nil {
			logger.Error("cannot read symbol table", "path", path, "err", err)
			return 1
		}
	}

	input, err := os.Open(opt.GetPosString("INPUT"))
	if err != nil {
		logger.Error("cannot open input", "err", err)
		return 1
	}
	defer input.Close()

	text, err := disassembler.Disassemble(input, labels)
	if err != nil {
		logger.Error("disassembly failed", "err", err)
		return 1
	}

	outPath := opt.GetPosString("OUTPUT")
	if outPath == "" {
		fmt.Print(text)
		return 0
	}

	if err := os.WriteFile(outPath, []byte(text), 0644); err != nil {
		logger.Error("cannot write output", "err", err)
		return 1
	}
	logger.Info("disassembly written", "path", outPath)
	return 0
}

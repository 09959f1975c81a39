package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Urethramancer/hack/assembler"
	"github.com/grimdork/climate/arg"
	"github.com/tebeka/atexit"
)

func main() {
	atexit.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opt := arg.New("hackasm")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "l", "listing", "Print an assembly listing to stdout.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "s", "symbols", "Write the resolved symbol table as YAML to this file.", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "k", "keep-going", "Exit successfully even when lines were rejected.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log details of both passes.", false, false, arg.VarBool, nil)
	opt.SetPositional("INPUT", "Hack assembly source (.asm).", "", true, arg.VarString)
	opt.SetPositional("OUTPUT", "Output file. Defaults to INPUT with a .hack extension.", "", false, arg.VarString)

	if err := opt.Parse(args); err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 2
	}

	level := slog.LevelInfo
	if opt.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	inPath := opt.GetPosString("INPUT")
	outPath := opt.GetPosString("OUTPUT")
	if outPath == "" {
		outPath = defaultOutput(inPath)
	}
	logger = logger.With("file", filepath.Base(inPath))

	input, err := os.Open(inPath)
	if err != nil {
		logger.Error("cannot open input", "err", err)
		return 1
	}
	defer input.Close()

	if stat, err := input.Stat(); err != nil || stat.IsDir() {
		logger.Error("not a Hack assembly file", "path", inPath)
		return 1
	}

	res, err := assembleFile(input, outPath, logger)
	if err != nil {
		logger.Error("assembly failed", "err", err)
		return 1
	}

	if opt.GetBool("listing") {
		res.WriteListing(os.Stdout)
	}

	if path := opt.GetString("symbols"); path != "" {
		if err := writeSymbols(path, res.Symbols); err != nil {
			logger.Error("cannot write symbol table", "err", err)
			return 1
		}
	}

	for _, d := range res.Diagnostics() {
		fmt.Fprintf(os.Stderr, "%s:%v\n", inPath, d)
	}

	logger.Debug("done", "output", outPath, "words", len(res.Words), "rejected", res.Rejected())
	if res.Rejected() > 0 && !opt.GetBool("keep-going") {
		return 1
	}
	return 0
}

// defaultOutput swaps the extension of the source path for ".hack".
func defaultOutput(inPath string) string {
	return strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".hack"
}

// assembleFile writes the assembled program to outPath and removes it again when the run
// fails.
func assembleFile(input io.ReadSeeker, outPath string, logger *slog.Logger) (*assembler.Result, error) {
	output, err := os.Create(outPath)
	if err != nil {
		return nil, err
	}

	asm := assembler.New()
	asm.SetLogger(logger)
	res, err := asm.Assemble(input, output)
	if cerr := output.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(outPath)
		return nil, err
	}
	return res, nil
}

func writeSymbols(path string, st *assembler.SymbolTable) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := assembler.WriteSymbols(f, st); err != nil {
		return err
	}
	return f.Close()
}

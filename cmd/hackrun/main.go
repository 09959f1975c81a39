package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Urethramancer/hack/cpu"
	"github.com/grimdork/climate/arg"
	"github.com/tebeka/atexit"
)

// This program loads a .hack file, runs it on the emulator and prints the final state.
func main() {
	atexit.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opt := arg.New("hackrun")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "c", "cycles", "Maximum number of instructions to execute.", 1000000, false, arg.VarInt, nil)
	opt.SetOption(arg.GroupDefault, "r", "ram", "Comma-separated RAM addresses to print.", "0", false, arg.VarString, nil)
	opt.SetPositional("INPUT", "Hack binary text (.hack).", "", true, arg.VarString)

	if err := opt.Parse(args); err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	addrs, err := parseAddresses(opt.GetString("ram"))
	if err != nil {
		logger.Error("invalid RAM list", "err", err)
		return 2
	}

	input, err := os.Open(opt.GetPosString("INPUT"))
	if err != nil {
		logger.Error("cannot open input", "err", err)
		return 1
	}
	defer input.Close()

	program, err := cpu.ParseHack(input)
	if err != nil {
		logger.Error("cannot load program", "err", err)
		return 1
	}

	c := cpu.New()
	if err := c.Load(program); err != nil {
		logger.Error("cannot load program", "err", err)
		return 1
	}

	cycles, err := c.Run(opt.GetInt("cycles"))
	c.Dump(os.Stdout, addrs)
	if errors.Is(err, cpu.ErrCycleLimit) {
		logger.Warn("program still running", "cycles", cycles)
		return 0
	}
	if err != nil {
		logger.Error("execution failed", "err", err)
		return 1
	}
	return 0
}

func parseAddresses(s string) ([]uint16, error) {
	var addrs []uint16
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseUint(field, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("address %q: %w", field, err)
		}
		addrs = append(addrs, uint16(v))
	}
	return addrs, nil
}

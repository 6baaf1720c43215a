// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chippy/internal/options"
)

// ParseEmulatorFlags parses command line flags for the emulator binary.
func ParseEmulatorFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.Program{}

	flags.IntVar(&opts.Clock, "clock", options.DefaultClock, "CPU cycles to execute per second")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "display scale factor")
	flags.BoolVar(&opts.Debug, "debug", false, "enable instruction tracing and debug logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	usage := "chippy [options] <file to run>"
	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{usage: usage, flags: flags}
	}

	if err := validateArgs(flags, usage, args); err != nil {
		return opts, err
	}

	if opts.Clock <= 0 || opts.Scale <= 0 {
		return opts, fmt.Errorf("clock and scale values need to be positive")
	}

	opts.Input = args[0]
	return opts, nil
}

// ParseDisasmFlags parses command line flags for the disassembler binary.
func ParseDisasmFlags() (options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.Disassembler{}

	var noHexComments, noOffsets bool
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.BoolVar(&noHexComments, "nohexcomments", false, "do not output opcode words as hex values in comments")
	flags.BoolVar(&noOffsets, "nooffsets", false, "do not output offsets in comments")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	usage := "unchip [options] <file to disassemble>"
	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{usage: usage, flags: flags}
	}

	if err := validateArgs(flags, usage, args); err != nil {
		return opts, err
	}

	// Apply inverse logic for hex comments and offsets
	opts.HexComments = !noHexComments
	opts.OffsetComments = !noOffsets

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	usage string
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: %s\n\n", e.usage)
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, usage string, args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				usage: usage,
				msg:   fmt.Sprintf("Potential argument %s found after the ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

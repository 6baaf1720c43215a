// Package options contains the program options.
package options

// Default emulation settings.
const (
	DefaultClock = 700 // CPU cycles per second
	DefaultScale = 10  // window scale factor
)

// Program options of the emulator.
type Program struct {
	Input string // ROM file to run

	Clock int // CPU cycles to execute per second
	Scale int // display scale factor

	Debug bool // instruction tracing and debug logging
	Quiet bool
}

// Disassembler options of the disassembler.
type Disassembler struct {
	Input  string
	Output string // output .asm file, printed to stdout if empty

	HexComments    bool // output opcode words as hex values in comments
	OffsetComments bool // output memory addresses in front of each line

	Debug bool
	Quiet bool
}

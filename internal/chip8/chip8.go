// Package chip8 implements the CHIP-8 virtual machine core.
//
// # Architecture Overview
//
// CHIP-8 is an interpreted programming language from the 1970s designed for
// simple games. The machine has 4KB of memory, 16 general-purpose 8-bit
// registers (V0-VF), a 16-bit address register I, a 16-entry call stack,
// two 8-bit countdown timers, a 16-key hexadecimal keypad and a 64x32
// monochrome display drawn with XOR sprite composition.
//
// # Memory Layout
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter and font data (512 bytes, read-only)
//	0x200-0xFFF: User program space (3584 bytes)
//
// The display buffer and stack are maintained separately from the 4KB main
// memory address space.
//
// # Execution Model
//
// The core is single-threaded and synchronous. One call to CPU.Step performs
// a single fetch-decode-execute cycle and ticks both timers. The driver loop
// owns pacing, rendering and input polling; it feeds keypad state in before
// each step and consumes the display buffer and beep signal after.
package chip8

// Memory layout constants.
const (
	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	// Programs are loaded at address 0x200 in the virtual machine's memory
	// space but stored starting at offset 0x0 in ROM files.
	ProgramStart = 0x200

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = 0xFFF

	// MemorySize is the total memory size in bytes.
	MemorySize = 4096

	// MaxROMSize is the maximum size of a program image in bytes.
	MaxROMSize = MemorySize - ProgramStart
)

// Package disasm implements a static CHIP-8 disassembler. It decodes a raw
// ROM into assembly mnemonics using the same instruction table the emulator
// executes from, with no execution side effects.
package disasm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// programStart is the memory address that ROM offset 0 maps to at runtime.
const programStart = 0x200

// Options control the generated output.
type Options struct {
	HexComments    bool // output opcode words as hex values in comments
	OffsetComments bool // output memory addresses in front of each line
}

// Disasm disassembles a CHIP-8 ROM.
type Disasm struct {
	rom  []byte
	opts Options
}

// New creates a disassembler for the given ROM content. ROMs are sequences
// of 2-byte instruction words, an odd byte count indicates a corrupted file.
func New(rom []byte, opts Options) (*Disasm, error) {
	if len(rom)%opcodeSize != 0 {
		return nil, fmt.Errorf("odd ROM size of %d bytes, file possibly corrupted", len(rom))
	}

	return &Disasm{
		rom:  rom,
		opts: opts,
	}, nil
}

// Process writes the disassembly of the ROM to the writer, one line per
// instruction word.
func (d *Disasm) Process(writer io.Writer) error {
	out := bufio.NewWriter(writer)

	for offset := 0; offset+1 < len(d.rom); offset += opcodeSize {
		opcode := uint16(d.rom[offset])<<8 | uint16(d.rom[offset+1])

		if d.opts.OffsetComments {
			fmt.Fprintf(out, "$%03X:  ", programStart+offset)
		}
		out.WriteString(Decode(opcode))
		if d.opts.HexComments {
			fmt.Fprintf(out, "  ; $%04X", opcode)
		}
		out.WriteByte('\n')
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Decode returns the assembly representation of a single opcode. Opcode
// words with no defined decoding are emitted as raw data bytes.
func Decode(opcode uint16) string {
	ins := lookup(opcode)
	if ins == nil {
		return fmt.Sprintf(".byte $%02X, $%02X", opcode>>8, byte(opcode))
	}

	if params := formatParams(ins.Name, opcode); params != "" {
		return fmt.Sprintf("%s %s", ins.Name, params)
	}
	return ins.Name
}

// lookup finds the instruction matching an opcode word. Opcodes are
// bucketed by their first nibble and identified by mask and value.
func lookup(opcode uint16) *chip8.Instruction {
	firstNibble := opcode >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}

// formatParams formats the parameters of an instruction. It returns an
// empty string for instructions without parameters.
func formatParams(name string, opcode uint16) string {
	switch name {
	case chip8.JpName:
		return formatJump(opcode)
	case chip8.CallName:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case chip8.SeName, chip8.SneName:
		return formatCompare(opcode)
	case chip8.LdName:
		return formatLoad(opcode)
	case chip8.AddName:
		return formatAdd(opcode)
	case chip8.OrName, chip8.AndName, chip8.XorName, chip8.SubName, chip8.SubnName:
		return fmt.Sprintf("V%X, V%X", registerX(opcode), registerY(opcode))
	case chip8.ShrName, chip8.ShlName, chip8.SkpName, chip8.SknpName:
		return fmt.Sprintf("V%X", registerX(opcode))
	case chip8.RndName:
		return fmt.Sprintf("V%X, $%02X", registerX(opcode), byte(opcode))
	case chip8.DrwName:
		return fmt.Sprintf("V%X, V%X, $%X", registerX(opcode), registerY(opcode), opcode&0x000F)
	}
	return ""
}

// formatJump formats jump instructions (JP addr, JP V0+addr).
func formatJump(opcode uint16) string {
	if opcode&0xF000 == 0xB000 {
		return fmt.Sprintf("V0, $%03X", opcode&0x0FFF)
	}
	return fmt.Sprintf("$%03X", opcode&0x0FFF)
}

// formatCompare formats comparison instructions:
//
//	3XNN: SE Vx, byte
//	4XNN: SNE Vx, byte
//	5XY0: SE Vx, Vy
//	9XY0: SNE Vx, Vy
func formatCompare(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x3000, 0x4000:
		return fmt.Sprintf("V%X, $%02X", x, byte(opcode))
	case 0x5000, 0x9000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	}
	return ""
}

// formatLoad formats the load instruction family, covering the register,
// index, timer, keypad, font, BCD and register-file transfer forms.
func formatLoad(opcode uint16) string {
	x := registerX(opcode)

	switch opcode & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", x, byte(opcode))
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	case 0xA000:
		return fmt.Sprintf("I, $%03X", opcode&0x0FFF)
	}

	switch byte(opcode) {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}

// formatAdd formats add instructions (ADD Vx, byte / ADD Vx, Vy / ADD I, Vx).
func formatAdd(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x7000:
		return fmt.Sprintf("V%X, $%02X", x, byte(opcode))
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	}
	return fmt.Sprintf("I, V%X", x)
}

// registerX extracts the X register nibble from an opcode.
func registerX(opcode uint16) uint16 {
	return opcode >> 8 & 0xF
}

// registerY extracts the Y register nibble from an opcode.
func registerY(opcode uint16) uint16 {
	return opcode >> 4 & 0xF
}

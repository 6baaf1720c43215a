package disasm

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestNewOddROMSize(t *testing.T) {
	_, err := New([]byte{0x61}, Options{})
	assert.ErrorContains(t, err, "odd ROM size")
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		want   string
	}{
		{"cls", 0x00E0, chip8.ClsName},
		{"ret", 0x00EE, chip8.RetName},
		{"jp addr", 0x1345, chip8.JpName + " $345"},
		{"jp v0 addr", 0xB345, chip8.JpName + " V0, $345"},
		{"call", 0x2404, chip8.CallName + " $404"},
		{"se byte", 0x3142, chip8.SeName + " V1, $42"},
		{"sne byte", 0x4142, chip8.SneName + " V1, $42"},
		{"se register", 0x5120, chip8.SeName + " V1, V2"},
		{"sne register", 0x9120, chip8.SneName + " V1, V2"},
		{"ld byte", 0x6142, chip8.LdName + " V1, $42"},
		{"add byte", 0x7142, chip8.AddName + " V1, $42"},
		{"ld register", 0x8120, chip8.LdName + " V1, V2"},
		{"or", 0x8121, chip8.OrName + " V1, V2"},
		{"and", 0x8122, chip8.AndName + " V1, V2"},
		{"xor", 0x8123, chip8.XorName + " V1, V2"},
		{"add register", 0x8124, chip8.AddName + " V1, V2"},
		{"sub", 0x8125, chip8.SubName + " V1, V2"},
		{"shr", 0x8126, chip8.ShrName + " V1"},
		{"subn", 0x8127, chip8.SubnName + " V1, V2"},
		{"shl", 0x812E, chip8.ShlName + " V1"},
		{"ld index", 0xA345, chip8.LdName + " I, $345"},
		{"rnd", 0xC142, chip8.RndName + " V1, $42"},
		{"drw", 0xD125, chip8.DrwName + " V1, V2, $5"},
		{"skp", 0xE19E, chip8.SkpName + " V1"},
		{"sknp", 0xE1A1, chip8.SknpName + " V1"},
		{"ld delay to register", 0xF107, chip8.LdName + " V1, DT"},
		{"ld key", 0xF10A, chip8.LdName + " V1, K"},
		{"ld delay", 0xF115, chip8.LdName + " DT, V1"},
		{"ld sound", 0xF118, chip8.LdName + " ST, V1"},
		{"add index", 0xF11E, chip8.AddName + " I, V1"},
		{"ld font", 0xF129, chip8.LdName + " F, V1"},
		{"ld bcd", 0xF133, chip8.LdName + " B, V1"},
		{"ld store registers", 0xF155, chip8.LdName + " [I], V1"},
		{"ld load registers", 0xF165, chip8.LdName + " V1, [I]"},
		{"unknown opcode", 0xF1FF, ".byte $F1, $FF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.opcode))
		})
	}
}

func TestProcess(t *testing.T) {
	rom := []byte{0x61, 0x01, 0x71, 0x01, 0x12, 0x02}

	dis, err := New(rom, Options{HexComments: true, OffsetComments: true})
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, dis.Process(&buf))

	want := fmt.Sprintf("$200:  %s V1, $01  ; $6101\n", chip8.LdName) +
		fmt.Sprintf("$202:  %s V1, $01  ; $7101\n", chip8.AddName) +
		fmt.Sprintf("$204:  %s $202  ; $1202\n", chip8.JpName)
	assert.Equal(t, want, buf.String())
}

func TestProcessBareOutput(t *testing.T) {
	rom := []byte{0x00, 0xE0}

	dis, err := New(rom, Options{})
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, dis.Process(&buf))

	line := strings.TrimSuffix(buf.String(), "\n")
	assert.Equal(t, chip8.ClsName, line)
	assert.False(t, strings.Contains(line, ";"))
	assert.False(t, strings.Contains(line, "$200"))
}

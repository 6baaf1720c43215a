package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewMemory(t *testing.T) {
	mem, err := NewMemory([]byte{0x61, 0x01, 0x71, 0x01})
	assert.NoError(t, err)

	// font table occupies the start of the reserved region
	assert.Equal(t, fontData[0], mem.ReadByte(0x000))
	assert.Equal(t, fontData[79], mem.ReadByte(0x04F))
	assert.Equal(t, byte(0), mem.ReadByte(0x050))

	// program image starts at ProgramStart
	assert.Equal(t, byte(0x61), mem.ReadByte(ProgramStart))
	assert.Equal(t, byte(0x01), mem.ReadByte(ProgramStart+3))
	assert.Equal(t, byte(0), mem.ReadByte(ProgramStart+4))
}

func TestNewMemoryOversizedProgram(t *testing.T) {
	_, err := NewMemory(make([]byte, MaxROMSize+1))
	assert.Error(t, err)

	_, err = NewMemory(make([]byte, MaxROMSize))
	assert.NoError(t, err)
}

func TestMemoryReadWord(t *testing.T) {
	mem, err := NewMemory([]byte{0x61, 0x01})
	assert.NoError(t, err)

	// words are big-endian, high byte at the lower address
	assert.Equal(t, uint16(0x6101), mem.ReadWord(ProgramStart))
}

func TestMemoryWriteByte(t *testing.T) {
	mem, err := NewMemory(nil)
	assert.NoError(t, err)

	mem.WriteByte(ProgramStart, 0xAB)
	assert.Equal(t, byte(0xAB), mem.ReadByte(ProgramStart))

	mem.WriteByte(MaxAddress, 0xCD)
	assert.Equal(t, byte(0xCD), mem.ReadByte(MaxAddress))
}

func TestMemoryWriteReservedPanics(t *testing.T) {
	mem, err := NewMemory(nil)
	assert.NoError(t, err)

	defer func() {
		assert.NotNil(t, recover())
	}()
	mem.WriteByte(0x1FF, 0x1)
}

func TestMemoryAddressMasking(t *testing.T) {
	mem, err := NewMemory([]byte{0x42})
	assert.NoError(t, err)

	// accesses beyond the 12-bit space wrap back into it
	assert.Equal(t, byte(0x42), mem.ReadByte(0x1200))
}

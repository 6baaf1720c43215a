package chip8

import (
	"fmt"
)

// reservedSize is the size of the read-only interpreter region in bytes.
const reservedSize = 0x200

// AddressSpace is a byte-addressable read/write region of memory.
type AddressSpace interface {
	ReadByte(address uint16) byte
	WriteByte(address uint16, value byte)
	ReadWord(address uint16) uint16
}

// Compile-time check to ensure Memory implements AddressSpace.
var _ AddressSpace = (*Memory)(nil)

// Memory is the flat 4KB CHIP-8 address space. The first 512 bytes are the
// interpreter region holding the hexadecimal font glyphs and are read-only,
// the rest is program space. The region split is invisible to callers, every
// access addresses the full 12-bit space uniformly.
type Memory struct {
	data [MemorySize]byte
}

// NewMemory creates the 4KB address space with the font table preloaded at
// address 0 and the program image copied to ProgramStart. A program image
// larger than MaxROMSize bytes is rejected.
func NewMemory(program []byte) (*Memory, error) {
	if len(program) > MaxROMSize {
		return nil, fmt.Errorf("program image of %d bytes exceeds maximum size of %d bytes",
			len(program), MaxROMSize)
	}

	m := &Memory{}
	copy(m.data[:], fontData[:])
	copy(m.data[ProgramStart:], program)
	return m, nil
}

// ReadByte reads a byte from memory. Addresses are masked to the 12-bit
// address space.
func (m *Memory) ReadByte(address uint16) byte {
	return m.data[address&MaxAddress]
}

// WriteByte writes a byte to memory. Writing to the reserved interpreter
// region is a programmer error and panics, emulated programs never
// legitimately write below ProgramStart.
func (m *Memory) WriteByte(address uint16, value byte) {
	address &= MaxAddress
	if address < reservedSize {
		panic(fmt.Sprintf("write to reserved memory at address $%03X", address))
	}
	m.data[address] = value
}

// ReadWord reads a big-endian 16-bit word from memory, the high byte at the
// lower address.
func (m *Memory) ReadWord(address uint16) uint16 {
	return uint16(m.ReadByte(address))<<8 | uint16(m.ReadByte(address+1))
}

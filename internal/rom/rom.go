// Package rom handles ROM file loading operations.
package rom

import (
	"fmt"
	"os"

	"github.com/retroenv/chippy/internal/chip8"
)

// Load reads a raw CHIP-8 ROM image from disk. Images have no header and no
// magic bytes, their size is limited by the program region of the virtual
// machine's memory.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	if len(data) > chip8.MaxROMSize {
		return nil, fmt.Errorf("ROM size of %d bytes exceeds maximum of %d bytes",
			len(data), chip8.MaxROMSize)
	}

	return data, nil
}

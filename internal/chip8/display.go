package chip8

// Display dimension constants.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the 64x32 monochrome framebuffer, one byte per pixel (0 or 1)
// for simplicity of XOR composition. Sprite drawing wraps around on both
// axes. The dirty flag is a level signal recording whether the bitmap
// changed since the renderer last consumed it, multiple draws between
// renderer polls coalesce into one dirty flag.
type Display struct {
	pixels [DisplayWidth * DisplayHeight]byte
	dirty  bool
}

// Pixel returns the pixel value at (x, y), wrapping around on both axes.
func (d *Display) Pixel(x, y int) byte {
	return d.pixels[index(x, y)]
}

// Pixels returns the framebuffer as a flat row-major slice of 0/1 values.
// The core mutates the buffer only inside CPU.Step, a single-threaded driver
// can render from it directly between steps.
func (d *Display) Pixels() []byte {
	return d.pixels[:]
}

// Clear zeroes the display and marks it dirty.
func (d *Display) Clear() {
	d.pixels = [DisplayWidth * DisplayHeight]byte{}
	d.dirty = true
}

// DrawSprite XORs an 8 pixel wide sprite into the display at (x, y) and
// reports whether any pixel was toggled from set to cleared. The collision
// flag accumulates across the whole operation. The display is marked dirty
// unconditionally.
func (d *Display) DrawSprite(x, y int, sprite []byte) bool {
	var collision byte

	for row, b := range sprite {
		for col := 0; col < 8; col++ {
			bit := (b >> (7 - col)) & 1
			idx := index(x+col, y+row)
			collision |= bit & d.pixels[idx]
			d.pixels[idx] ^= bit
		}
	}

	d.dirty = true
	return collision != 0
}

// Dirty reports whether the display changed since the last ClearDirty.
func (d *Display) Dirty() bool {
	return d.dirty
}

// ClearDirty resets the dirty flag. It is called by the renderer after
// consuming the framebuffer, never by the core.
func (d *Display) ClearDirty() {
	d.dirty = false
}

func index(x, y int) int {
	return (y%DisplayHeight)*DisplayWidth + x%DisplayWidth
}

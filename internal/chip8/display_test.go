package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisplayDrawSprite(t *testing.T) {
	var d Display

	collision := d.DrawSprite(0, 0, []byte{0xF0})
	assert.False(t, collision)
	assert.True(t, d.Dirty())

	for x := 0; x < 4; x++ {
		assert.Equal(t, byte(1), d.Pixel(x, 0))
	}
	assert.Equal(t, byte(0), d.Pixel(4, 0))
}

func TestDisplayDrawSpriteXorRoundTrip(t *testing.T) {
	var d Display
	sprite := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}

	collision := d.DrawSprite(10, 5, sprite)
	assert.False(t, collision)

	// drawing the same sprite twice restores the prior display state and
	// reports a collision on the second draw
	collision = d.DrawSprite(10, 5, sprite)
	assert.True(t, collision)

	for _, pixel := range d.Pixels() {
		assert.Equal(t, byte(0), pixel)
	}
}

func TestDisplayDrawSpriteWraparound(t *testing.T) {
	var d Display

	d.DrawSprite(DisplayWidth-2, DisplayHeight-1, []byte{0xFF, 0xFF})

	assert.Equal(t, byte(1), d.Pixel(DisplayWidth-1, DisplayHeight-1))
	assert.Equal(t, byte(1), d.Pixel(0, DisplayHeight-1)) // wrapped on x
	assert.Equal(t, byte(1), d.Pixel(DisplayWidth-2, 0))  // wrapped on y
	assert.Equal(t, byte(1), d.Pixel(5, 0))               // wrapped on both
}

func TestDisplayClear(t *testing.T) {
	var d Display

	d.DrawSprite(0, 0, []byte{0xFF})
	d.ClearDirty()
	assert.False(t, d.Dirty())

	d.Clear()
	assert.True(t, d.Dirty())
	assert.Equal(t, byte(0), d.Pixel(0, 0))
}

func TestDisplayDirtyCoalesces(t *testing.T) {
	var d Display

	d.DrawSprite(0, 0, []byte{0x80})
	d.DrawSprite(8, 8, []byte{0x80})
	assert.True(t, d.Dirty())

	d.ClearDirty()
	assert.False(t, d.Dirty())
}

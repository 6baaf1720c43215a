package emulator

import (
	"fmt"

	"github.com/retroenv/chippy/internal/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "chippy - CHIP-8 interpreter"

// video renders the framebuffer into a window. The 64x32 buffer surface is
// written pixel by pixel and scaled up onto the window surface in one blit.
type video struct {
	window *sdl.Window
	screen *sdl.Surface
	buffer *sdl.Surface
}

func newVideo(scale int) (*video, error) {
	window, err := sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(chip8.DisplayWidth*scale), int32(chip8.DisplayHeight*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	screen, err := window.GetSurface()
	if err != nil {
		_ = window.Destroy()
		return nil, fmt.Errorf("getting window surface: %w", err)
	}

	buffer, err := sdl.CreateRGBSurface(0, chip8.DisplayWidth, chip8.DisplayHeight, 32, 0, 0, 0, 0)
	if err != nil {
		_ = window.Destroy()
		return nil, fmt.Errorf("creating buffer surface: %w", err)
	}

	v := &video{
		window: window,
		screen: screen,
		buffer: buffer,
	}

	// start with a blank screen
	if err := v.render(make([]byte, chip8.DisplayWidth*chip8.DisplayHeight)); err != nil {
		v.close()
		return nil, err
	}
	return v, nil
}

// render writes the 0/1 framebuffer into the buffer surface and blits it
// scaled onto the window.
func (v *video) render(pixels []byte) error {
	if err := v.buffer.Lock(); err != nil {
		return fmt.Errorf("locking buffer surface: %w", err)
	}

	data := v.buffer.Pixels()
	pitch := int(v.buffer.Pitch)
	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			var color byte
			if pixels[y*chip8.DisplayWidth+x] != 0 {
				color = 0xFF
			}

			offset := y*pitch + x*4
			data[offset] = color
			data[offset+1] = color
			data[offset+2] = color
			data[offset+3] = 0xFF
		}
	}

	v.buffer.Unlock()

	if err := v.buffer.BlitScaled(nil, v.screen, nil); err != nil {
		return fmt.Errorf("blitting buffer: %w", err)
	}
	if err := v.window.UpdateSurface(); err != nil {
		return fmt.Errorf("updating window surface: %w", err)
	}
	return nil
}

func (v *video) close() {
	v.buffer.Free()
	_ = v.window.Destroy()
}

// Package emulator implements the SDL driver loop around the CHIP-8 core.
package emulator

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/chippy/internal/chip8"
	"github.com/retroenv/chippy/internal/disasm"
	"github.com/retroenv/chippy/internal/options"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

// Emulator drives the CHIP-8 core: it paces CPU steps, polls input once per
// iteration, renders the display when dirty and gates the audio tone on the
// sound timer. All CPU state access is confined to the goroutine calling
// Run.
type Emulator struct {
	logger *log.Logger
	opts   options.Program

	cpu *chip8.CPU
}

// New creates an emulator for the given program image.
func New(logger *log.Logger, program []byte, opts options.Program) (*Emulator, error) {
	cpu, err := chip8.New(program)
	if err != nil {
		return nil, fmt.Errorf("creating cpu: %w", err)
	}

	return &Emulator{
		logger: logger,
		opts:   opts,
		cpu:    cpu,
	}, nil
}

// Run executes the driver loop until the context is canceled, the user
// requests to quit or the core fails. It needs to run on the main OS
// thread, SDL requires it.
func (e *Emulator) Run(ctx context.Context) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}
	defer sdl.Quit()

	video, err := newVideo(e.opts.Scale)
	if err != nil {
		return fmt.Errorf("creating video driver: %w", err)
	}
	defer video.close()

	audio, err := newAudio()
	if err != nil {
		return fmt.Errorf("creating audio driver: %w", err)
	}
	defer audio.close()

	ticker := time.NewTicker(time.Second / time.Duration(e.opts.Clock))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		keys, quit := pollInput()
		if quit {
			return nil
		}
		e.cpu.SetKeypad(keys)

		if e.opts.Debug {
			e.trace()
		}

		if err := e.cpu.Step(); err != nil {
			return fmt.Errorf("executing program: %w", err)
		}

		audio.setBeeping(e.cpu.Beeping())

		if display := e.cpu.Display(); display.Dirty() {
			if err := video.render(display.Pixels()); err != nil {
				return fmt.Errorf("rendering display: %w", err)
			}
			display.ClearDirty()
		}
	}
}

// trace logs the instruction that is about to execute.
func (e *Emulator) trace() {
	pc := e.cpu.PC()
	opcode := e.cpu.Memory().ReadWord(pc)

	e.logger.Debug("Executing instruction",
		log.String("address", fmt.Sprintf("$%03X", pc)),
		log.String("opcode", fmt.Sprintf("$%04X", opcode)),
		log.String("assembly", disasm.Decode(opcode)),
	)
}

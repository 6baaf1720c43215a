package chip8

import (
	"math/rand"
)

// stackSize is the maximum call nesting depth.
const stackSize = 16

// CPU is the CHIP-8 instruction core. It owns the register file, stack,
// timers, keypad state, memory and display. The single externally visible
// transition is Step.
//
// The keypad layout programs expect:
//
//	+---+---+---+---+
//	| 1 | 2 | 3 | C |
//	+---+---+---+---+
//	| 4 | 5 | 6 | D |
//	+---+---+---+---+
//	| 7 | 8 | 9 | E |
//	+---+---+---+---+
//	| A | 0 | B | F |
//	+---+---+---+---+
type CPU struct {
	mem     *Memory
	display Display

	// v holds the general purpose registers V0..VF. VF doubles as the
	// carry/borrow/collision flag, instructions that define it overwrite
	// whatever a program stored there.
	v [16]byte
	i uint16

	pc    uint16
	stack [stackSize]uint16
	sp    int

	delay byte
	sound byte

	keypad [16]bool
	beep   bool

	randByte func() byte
}

// New creates a CPU with the program image loaded at ProgramStart and the
// program counter pointing at it.
func New(program []byte) (*CPU, error) {
	mem, err := NewMemory(program)
	if err != nil {
		return nil, err
	}

	return &CPU{
		mem:      mem,
		pc:       ProgramStart,
		randByte: func() byte { return byte(rand.Intn(256)) },
	}, nil
}

// Step executes one fetch-decode-execute-tick cycle:
//
//  1. Fetch the 16-bit big-endian word at PC.
//  2. Decode and execute it, computing a control-flow effect.
//  3. Commit the effect's resulting address to PC.
//  4. Tick both timers and re-evaluate the beep signal.
//
// Step never blocks. The key-wait instruction re-fetches at the same PC
// until a key is down, the driver loop keeps calling Step to retry.
// Stack overflow and underflow are the only error conditions.
func (c *CPU) Step() error {
	opcode := c.mem.ReadWord(c.pc)

	pc, err := c.execute(opcode)
	if err != nil {
		return err
	}
	c.pc = pc

	if c.delay > 0 {
		c.delay--
	}
	if c.sound > 0 {
		c.sound--
	}
	c.beep = c.sound > 0

	return nil
}

// PC returns the address of the next instruction to execute.
func (c *CPU) PC() uint16 {
	return c.pc
}

// Memory returns the CPU's address space.
func (c *CPU) Memory() *Memory {
	return c.mem
}

// Display returns the framebuffer driven by this CPU.
func (c *CPU) Display() *Display {
	return &c.display
}

// Beeping reports whether the sound timer demands a tone. It is
// re-evaluated after the timer tick of every Step call.
func (c *CPU) Beeping() bool {
	return c.beep
}

// SetKeypad replaces the 16 keypad states. The driver loop supplies fresh
// state once per iteration before calling Step.
func (c *CPU) SetKeypad(keys [16]bool) {
	c.keypad = keys
}

// pressedKey returns the lowest-indexed pressed key. The lowest index wins
// the tie-break when multiple keys are down simultaneously.
func (c *CPU) pressedKey() (byte, bool) {
	for i, down := range c.keypad {
		if down {
			return byte(i), true
		}
	}
	return 0, false
}

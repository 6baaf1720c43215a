package chip8

import (
	"fmt"
)

// progCounter is the control-flow effect of one executed instruction:
// advance to the next instruction, skip one instruction, or continue at an
// absolute address.
type progCounter struct {
	jump bool
	addr uint16
	skip bool
}

func next() progCounter {
	return progCounter{}
}

func skipIf(cond bool) progCounter {
	return progCounter{skip: cond}
}

func jumpTo(addr uint16) progCounter {
	return progCounter{jump: true, addr: addr}
}

// execute decodes and executes a single opcode and returns the resulting
// program counter. Opcodes with no defined decoding are a no-op that
// advances PC by 2, matching the permissive behavior loosely specified
// programs rely on.
func (c *CPU) execute(opcode uint16) (uint16, error) {
	var (
		a   = opcode >> 12
		x   = opcode >> 8 & 0xF
		y   = opcode >> 4 & 0xF
		n   = opcode & 0xF
		kk  = byte(opcode)
		nnn = opcode & 0xFFF
	)

	pc := next()
	var err error

	switch a {
	case 0x0:
		switch opcode {
		case 0x00E0: // CLS
			c.display.Clear()
		case 0x00EE: // RET
			pc, err = c.popReturn()
		}

	case 0x1: // JP addr
		pc = jumpTo(nnn)

	case 0x2: // CALL addr
		pc, err = c.call(nnn)

	case 0x3: // SE Vx, byte
		pc = skipIf(c.v[x] == kk)

	case 0x4: // SNE Vx, byte
		pc = skipIf(c.v[x] != kk)

	case 0x5:
		if n == 0x0 { // SE Vx, Vy
			pc = skipIf(c.v[x] == c.v[y])
		}

	case 0x6: // LD Vx, byte
		c.v[x] = kk

	case 0x7: // ADD Vx, byte
		c.v[x] += kk

	case 0x8:
		c.executeRegisterOp(x, y, n)

	case 0x9:
		if n == 0x0 { // SNE Vx, Vy
			pc = skipIf(c.v[x] != c.v[y])
		}

	case 0xA: // LD I, addr
		c.i = nnn

	case 0xB: // JP V0, addr
		pc = jumpTo(nnn + uint16(c.v[0x0]))

	case 0xC: // RND Vx, byte
		c.v[x] = kk & c.randByte()

	case 0xD: // DRW Vx, Vy, nibble
		c.draw(x, y, n)

	case 0xE:
		switch byte(opcode) {
		case 0x9E: // SKP Vx
			pc = skipIf(c.keypad[c.v[x]&0xF])
		case 0xA1: // SKNP Vx
			pc = skipIf(!c.keypad[c.v[x]&0xF])
		}

	case 0xF:
		pc = c.executeTimerMemoryOp(x, byte(opcode))
	}

	if err != nil {
		return 0, err
	}

	switch {
	case pc.jump:
		return pc.addr, nil
	case pc.skip:
		return c.pc + 4, nil
	default:
		return c.pc + 2, nil
	}
}

// executeRegisterOp executes the 8xyn register-to-register operations.
// All of them advance the program counter normally.
func (c *CPU) executeRegisterOp(x, y, n uint16) {
	switch n {
	case 0x0: // LD Vx, Vy
		c.v[x] = c.v[y]

	case 0x1: // OR Vx, Vy
		c.v[x] |= c.v[y]

	case 0x2: // AND Vx, Vy
		c.v[x] &= c.v[y]

	case 0x3: // XOR Vx, Vy
		c.v[x] ^= c.v[y]

	case 0x4: // ADD Vx, Vy - VF = carry
		sum := uint16(c.v[x]) + uint16(c.v[y])
		c.v[x] = byte(sum)
		c.v[0xF] = boolFlag(sum > 0xFF)

	case 0x5: // SUB Vx, Vy - VF = NOT borrow
		flag := boolFlag(c.v[x] >= c.v[y])
		c.v[x] -= c.v[y]
		c.v[0xF] = flag

	case 0x6: // SHR Vx - VF = shifted out bit
		flag := c.v[x] & 0x1
		c.v[x] >>= 1
		c.v[0xF] = flag

	case 0x7: // SUBN Vx, Vy - VF = NOT borrow
		flag := boolFlag(c.v[y] >= c.v[x])
		c.v[x] = c.v[y] - c.v[x]
		c.v[0xF] = flag

	case 0xE: // SHL Vx - VF = shifted out bit
		flag := c.v[x] >> 7
		c.v[x] <<= 1
		c.v[0xF] = flag
	}
}

// executeTimerMemoryOp executes the Fxnn timer, keypad and memory
// operations.
func (c *CPU) executeTimerMemoryOp(x uint16, nn byte) progCounter {
	switch nn {
	case 0x07: // LD Vx, DT
		c.v[x] = c.delay

	case 0x0A: // LD Vx, K - block until a key is pressed
		key, ok := c.pressedKey()
		if !ok {
			// re-execute this instruction next cycle
			return jumpTo(c.pc)
		}
		c.v[x] = key

	case 0x15: // LD DT, Vx
		c.delay = c.v[x]

	case 0x18: // LD ST, Vx
		c.sound = c.v[x]

	case 0x1E: // ADD I, Vx - VF = carry beyond the 12-bit address space
		c.i += uint16(c.v[x])
		c.v[0xF] = boolFlag(c.i > MaxAddress)

	case 0x29: // LD F, Vx - point I at the font glyph for digit Vx
		c.i = uint16(c.v[x]) * glyphSize

	case 0x33: // LD B, Vx - BCD digits to mem[I..I+2]
		c.mem.WriteByte(c.i, c.v[x]/100)
		c.mem.WriteByte(c.i+1, c.v[x]%100/10)
		c.mem.WriteByte(c.i+2, c.v[x]%10)

	case 0x55: // LD [I], Vx - store V0..Vx
		for i := uint16(0); i <= x; i++ {
			c.mem.WriteByte(c.i+i, c.v[i])
		}

	case 0x65: // LD Vx, [I] - load V0..Vx
		for i := uint16(0); i <= x; i++ {
			c.v[i] = c.mem.ReadByte(c.i + i)
		}
	}

	return next()
}

// call pushes the return address and continues at the call target.
func (c *CPU) call(nnn uint16) (progCounter, error) {
	if c.sp >= stackSize {
		return next(), fmt.Errorf("stack overflow: call at address $%03X exceeds %d nested calls",
			c.pc, stackSize)
	}

	c.stack[c.sp] = c.pc + 2
	c.sp++
	return jumpTo(nnn), nil
}

// popReturn pops the return address off the stack and continues there.
func (c *CPU) popReturn() (progCounter, error) {
	if c.sp == 0 {
		return next(), fmt.Errorf("stack underflow: return at address $%03X with empty stack", c.pc)
	}

	c.sp--
	return jumpTo(c.stack[c.sp]), nil
}

// draw renders an n-row sprite read from memory at I to (Vx, Vy) and sets
// VF to the collision flag.
func (c *CPU) draw(x, y, n uint16) {
	sprite := make([]byte, n)
	for row := uint16(0); row < n; row++ {
		sprite[row] = c.mem.ReadByte(c.i + row)
	}

	collision := c.display.DrawSprite(int(c.v[x]), int(c.v[y]), sprite)
	c.v[0xF] = boolFlag(collision)
}

func boolFlag(cond bool) byte {
	if cond {
		return 1
	}
	return 0
}

package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// load copies an 8-bit value from one Location to another.
//
//	LD n, n
//	n = A, B, C, D, E, H, L, (HL), (BC), (DE), (a16), (0xFF00 + n)
func (c *CPU) load(dst, src Location) error {
	value, err := c.read8(src)
	if err != nil {
		return err
	}
	return c.write8(dst, value)
}

// loadImmediate8 loads the next operand into the given Location.
//
//	LD n, d8
//	n = A, B, C, D, E, H, L, (HL)
//	d8 = 8-bit immediate value
func (c *CPU) loadImmediate8(dst Location) error {
	value, err := c.readOperand()
	if err != nil {
		return err
	}
	return c.write8(dst, value)
}

// loadImmediate16 loads the next two operands into the given Location.
//
//	LD nn, d16
//	nn = BC, DE, HL, SP
//	d16 = 16-bit immediate value
func (c *CPU) loadImmediate16(dst Location) error {
	value, err := c.readOperand16()
	if err != nil {
		return err
	}
	return c.write16(dst, value)
}

// loadAndStep performs the load and then adds delta to HL. HL is left
// untouched if the load fails.
//
//	LD (HL+), A
//	LD (HL-), A
//	LD A, (HL+)
//	LD A, (HL-)
func (c *CPU) loadAndStep(dst, src Location, delta uint16) error {
	if err := c.load(dst, src); err != nil {
		return err
	}
	c.HL.SetUint16(c.HL.Uint16() + delta)
	return nil
}

// hardware returns the Location of a hardware register, relative to
// 0xFF00.
func hardware(offset uint8) Location {
	return AtAddress(types.HardwareIOBase + uint16(offset))
}

func init() {
	// 0x01, 0x11, 0x21, 0x31 - LD nn, d16
	for i, reg := range []Reg{RegBC, RegDE, RegHL, RegSP} {
		reg := reg
		DefineInstruction(0x01+uint8(i)*0x10, fmt.Sprintf("LD %s, d16", reg), func(c *CPU) error {
			return c.loadImmediate16(InRegister(reg))
		})
	}

	// loop through each operand (B, C, D, E, H, L, (HL), A)
	for j := uint8(0); j < 8; j++ {
		j := j

		// 0x06 - 0x3E - LD r, d8
		DefineInstruction(0x06+j*8, fmt.Sprintf("LD %s, d8", operandNames[j]), func(c *CPU) error {
			return c.loadImmediate8(c.operand(j))
		})

		// 0x40 - 0x7F - LD r, r
		for k := uint8(0); k < 8; k++ {
			k := k
			if j == 6 && k == 6 {
				continue // 0x76 is HALT
			}
			DefineInstruction(0x40+j*8+k, fmt.Sprintf("LD %s, %s", operandNames[j], operandNames[k]), func(c *CPU) error {
				return c.load(c.operand(j), c.operand(k))
			})
		}
	}

	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) error {
		return c.load(AtAddress(c.BC.Uint16()), InRegister(RegA))
	})
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) error {
		return c.load(AtAddress(c.DE.Uint16()), InRegister(RegA))
	})
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) error {
		return c.load(InRegister(RegA), AtAddress(c.BC.Uint16()))
	})
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) error {
		return c.load(InRegister(RegA), AtAddress(c.DE.Uint16()))
	})
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) error {
		return c.loadAndStep(AtAddress(c.HL.Uint16()), InRegister(RegA), 1)
	})
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) error {
		return c.loadAndStep(AtAddress(c.HL.Uint16()), InRegister(RegA), 0xFFFF)
	})
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) error {
		return c.loadAndStep(InRegister(RegA), AtAddress(c.HL.Uint16()), 1)
	})
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) error {
		return c.loadAndStep(InRegister(RegA), AtAddress(c.HL.Uint16()), 0xFFFF)
	})
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) error {
		address, err := c.readOperand16()
		if err != nil {
			return err
		}
		return c.write16(AtAddress(address), c.SP)
	})
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) error {
		offset, err := c.readOperand()
		if err != nil {
			return err
		}
		return c.load(hardware(offset), InRegister(RegA))
	})
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) error {
		offset, err := c.readOperand()
		if err != nil {
			return err
		}
		return c.load(InRegister(RegA), hardware(offset))
	})
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) error {
		return c.load(hardware(c.C), InRegister(RegA))
	})
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) error {
		return c.load(InRegister(RegA), hardware(c.C))
	})
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) error {
		address, err := c.readOperand16()
		if err != nil {
			return err
		}
		return c.load(AtAddress(address), InRegister(RegA))
	})
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) error {
		address, err := c.readOperand16()
		if err != nil {
			return err
		}
		return c.load(InRegister(RegA), AtAddress(address))
	})
}

package cpu

import "fmt"

// increment increments the value at the given Location by 1.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(l Location) error {
	value, err := c.read8(l)
	if err != nil {
		return err
	}
	result := value + 1
	if err := c.write8(l, result); err != nil {
		return err
	}
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.assignFlag(FlagHalfCarry, value&0x0F == 0x0F)
	return nil
}

// decrement decrements the value at the given Location by 1.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(l Location) error {
	value, err := c.read8(l)
	if err != nil {
		return err
	}
	result := value - 1
	if err := c.write8(l, result); err != nil {
		return err
	}
	c.shouldZeroFlag(result)
	c.setFlag(FlagSubtract)
	c.assignFlag(FlagHalfCarry, value&0x0F == 0x00)
	return nil
}

// add16 adds delta to the given 16-bit register. No flags are affected.
//
//	INC nn
//	DEC nn
//	nn = BC, DE, HL, SP
func (c *CPU) add16(reg Reg, delta uint16) error {
	value, err := c.read16(InRegister(reg))
	if err != nil {
		return err
	}
	return c.write16(InRegister(reg), value+delta)
}

func init() {
	// loop through each operand (B, C, D, E, H, L, (HL), A)
	for j := uint8(0); j < 8; j++ {
		j := j

		// 0x04 - 0x3C - INC r
		DefineInstruction(0x04+j*8, fmt.Sprintf("INC %s", operandNames[j]), func(c *CPU) error {
			return c.increment(c.operand(j))
		})
		// 0x05 - 0x3D - DEC r
		DefineInstruction(0x05+j*8, fmt.Sprintf("DEC %s", operandNames[j]), func(c *CPU) error {
			return c.decrement(c.operand(j))
		})
	}

	// 0x03 - 0x33 - INC nn, 0x0B - 0x3B - DEC nn
	for i, reg := range []Reg{RegBC, RegDE, RegHL, RegSP} {
		reg := reg
		DefineInstruction(0x03+uint8(i)*0x10, fmt.Sprintf("INC %s", reg), func(c *CPU) error {
			return c.add16(reg, 1)
		})
		DefineInstruction(0x0B+uint8(i)*0x10, fmt.Sprintf("DEC %s", reg), func(c *CPU) error {
			return c.add16(reg, 0xFFFF)
		})
	}
}

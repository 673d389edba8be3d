package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/utils"
)

// setBit sets the bit at the given position in the given value.
func (c *CPU) setBit(value uint8, position uint8) uint8 {
	return utils.SetBit(value, position)
}

// clearBit clears the bit at the given position in the given value.
func (c *CPU) clearBit(value uint8, position uint8) uint8 {
	return utils.ClearBit(value, position)
}

// testBit tests the bit at the given position in the given value.
//
//	Bit n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// IF affected:
//
//	Z - Set if bit n of Register r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, position uint8) {
	c.shouldZeroFlag(utils.GetBit(value, position))
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// modifyBit applies fn to the value at the given Location and writes the
// result back. No flags are affected.
//
//	RES n, r
//	SET n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
func (c *CPU) modifyBit(l Location, position uint8, fn func(value, position uint8) uint8) error {
	value, err := c.read8(l)
	if err != nil {
		return err
	}
	return c.write8(l, fn(value, position))
}

func init() {
	// loop through each bit, and each operand (B, C, D, E, H, L, (HL), A)
	for b := uint8(0); b < 8; b++ {
		for j := uint8(0); j < 8; j++ {
			b, j := b, j

			// 0x40 - 0x7F - BIT b, r
			DefineInstructionCB(0x40+b*8+j, fmt.Sprintf("BIT %d, %s", b, operandNames[j]), func(c *CPU) error {
				value, err := c.read8(c.operand(j))
				if err != nil {
					return err
				}
				c.testBit(value, b)
				return nil
			})

			// 0x80 - 0xBF - RES b, r
			DefineInstructionCB(0x80+b*8+j, fmt.Sprintf("RES %d, %s", b, operandNames[j]), func(c *CPU) error {
				return c.modifyBit(c.operand(j), b, c.clearBit)
			})

			// 0xC0 - 0xFF - SET b, r
			DefineInstructionCB(0xC0+b*8+j, fmt.Sprintf("SET %d, %s", b, operandNames[j]), func(c *CPU) error {
				return c.modifyBit(c.operand(j), b, c.setBit)
			})
		}
	}
}

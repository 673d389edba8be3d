package cpu

import "fmt"

// logical applies fn to A and the value at the given Location, stores the
// result in A and sets the flags.
//
//	AND n / XOR n / OR n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set for AND, reset for XOR and OR.
//	C - Reset.
func (c *CPU) logical(src Location, halfCarry bool, fn func(a, n uint8) uint8) error {
	value, err := c.read8(src)
	if err != nil {
		return err
	}
	c.A = fn(c.A, value)
	c.shouldZeroFlag(c.A)
	c.clearFlag(FlagSubtract)
	c.assignFlag(FlagHalfCarry, halfCarry)
	c.clearFlag(FlagCarry)
	return nil
}

func and(a, n uint8) uint8 { return a & n }

func xor(a, n uint8) uint8 { return a ^ n }

func or(a, n uint8) uint8 { return a | n }

func init() {
	// loop through each operand (B, C, D, E, H, L, (HL), A)
	for j := uint8(0); j < 8; j++ {
		j := j

		// 0xA0 - 0xA7 - AND r
		DefineInstruction(0xA0+j, fmt.Sprintf("AND %s", operandNames[j]), func(c *CPU) error {
			return c.logical(c.operand(j), true, and)
		})
		// 0xA8 - 0xAF - XOR r
		DefineInstruction(0xA8+j, fmt.Sprintf("XOR %s", operandNames[j]), func(c *CPU) error {
			return c.logical(c.operand(j), false, xor)
		})
		// 0xB0 - 0xB7 - OR r
		DefineInstruction(0xB0+j, fmt.Sprintf("OR %s", operandNames[j]), func(c *CPU) error {
			return c.logical(c.operand(j), false, or)
		})
	}
}

package cpu

import (
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// jumpRelativeConditional jumps to the address relative to the end of the
// instruction if the given condition is true. The offset is read either
// way, so a jump not taken falls through to the next instruction.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelativeConditional(condition func(*CPU) bool) error {
	offset, err := c.readOperand()
	if err != nil {
		return err
	}
	if condition(c) {
		c.jumpRelative(offset)
	}
	return nil
}

// jumpRelative adds the signed offset to PC, which at this point already
// points past the offset byte.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = utils.AddSigned(c.PC, int8(offset))
}

func always(*CPU) bool { return true }

func notZero(c *CPU) bool { return c.isFlagNotSet(FlagZero) }

func zero(c *CPU) bool { return c.isFlagSet(FlagZero) }

func notCarry(c *CPU) bool { return c.isFlagNotSet(FlagCarry) }

func carry(c *CPU) bool { return c.isFlagSet(FlagCarry) }

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU) error { return c.jumpRelativeConditional(always) })
	DefineInstruction(0x20, "JR NZ, r8", func(c *CPU) error { return c.jumpRelativeConditional(notZero) })
	DefineInstruction(0x28, "JR Z, r8", func(c *CPU) error { return c.jumpRelativeConditional(zero) })
	DefineInstruction(0x30, "JR NC, r8", func(c *CPU) error { return c.jumpRelativeConditional(notCarry) })
	DefineInstruction(0x38, "JR C, r8", func(c *CPU) error { return c.jumpRelativeConditional(carry) })
}

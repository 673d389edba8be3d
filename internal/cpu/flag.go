package cpu

import "github.com/thelolagemann/gbcore/pkg/utils"

type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F = c.clearBit(c.F, flag)
}

// setFlag sets a flag to the given value.
func (c *CPU) setFlag(flag Flag) {
	c.F = c.setBit(c.F, flag)
}

// assignFlag sets the flag if value is true, and clears it otherwise.
func (c *CPU) assignFlag(flag Flag, value bool) {
	if value {
		c.setFlag(flag)
	} else {
		c.clearFlag(flag)
	}
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return utils.TestBit(c.F, flag)
}

// isFlagNotSet returns true if the given flag is not set.
func (c *CPU) isFlagNotSet(flag Flag) bool {
	return !c.isFlagSet(flag)
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	c.assignFlag(FlagZero, value == 0)
}

// flagString renders the flags held in f, e.g. "Z-H-".
func flagString(f uint8) string {
	s := []byte("----")
	for i, name := range []byte("ZNHC") {
		if f&(1<<(FlagZero-uint8(i))) != 0 {
			s[i] = name
		}
	}
	return string(s)
}

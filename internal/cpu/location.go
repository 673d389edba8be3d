package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// Reg names a register, or register pair, that an instruction operates on.
type Reg uint8

const (
	RegA Reg = iota
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	RegAF
	RegBC
	RegDE
	RegHL
	RegSP
)

var regNames = [...]string{"A", "F", "B", "C", "D", "E", "H", "L", "AF", "BC", "DE", "HL", "SP"}

func (r Reg) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}
	return fmt.Sprintf("Reg(%d)", uint8(r))
}

// Width returns the width of the register in bits.
func (r Reg) Width() int {
	if r >= RegAF {
		return 16
	}
	return 8
}

// Location is an operand of an instruction: either a register or an
// address on the bus. Instructions read and write through a Location so
// that register and memory forms share the same implementation.
type Location struct {
	reg     Reg
	address uint16
	memory  bool
}

// InRegister returns the Location of the given register.
func InRegister(r Reg) Location {
	return Location{reg: r}
}

// AtAddress returns the Location of the given bus address.
func AtAddress(address uint16) Location {
	return Location{address: address, memory: true}
}

// IsMemory reports whether the Location refers to the bus.
func (l Location) IsMemory() bool { return l.memory }

func (l Location) String() string {
	if l.memory {
		return fmt.Sprintf("(0x%04X)", l.address)
	}
	return l.reg.String()
}

// operandNames are the operand encodings used by the 8-bit instruction
// families, in the order of the low three bits of the opcode.
var operandNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

var operandRegs = [8]Reg{RegB, RegC, RegD, RegE, RegH, RegL, RegHL, RegA}

// operand returns the Location for an operand index. Index 6 is the byte
// addressed by HL, at the time operand is called.
func (c *CPU) operand(index uint8) Location {
	if index == 6 {
		return AtAddress(c.HL.Uint16())
	}
	return InRegister(operandRegs[index])
}

// register8 returns a pointer to an 8-bit register.
func (c *CPU) register8(r Reg) (*types.Register, error) {
	switch r {
	case RegA:
		return &c.A, nil
	case RegF:
		return &c.F, nil
	case RegB:
		return &c.B, nil
	case RegC:
		return &c.C, nil
	case RegD:
		return &c.D, nil
	case RegE:
		return &c.E, nil
	case RegH:
		return &c.H, nil
	case RegL:
		return &c.L, nil
	}
	return nil, &InvalidRegisterWidthError{Register: r, Width: 8}
}

// read8 reads an 8-bit value from the given Location.
func (c *CPU) read8(l Location) (uint8, error) {
	if l.memory {
		return c.bus.Read(l.address)
	}
	reg, err := c.register8(l.reg)
	if err != nil {
		return 0, err
	}
	return *reg, nil
}

// write8 writes an 8-bit value to the given Location.
func (c *CPU) write8(l Location, value uint8) error {
	if l.memory {
		return c.bus.Write(l.address, value)
	}
	reg, err := c.register8(l.reg)
	if err != nil {
		return err
	}
	if l.reg == RegF {
		// the lower nibble of F is always zero
		value &= 0xF0
	}
	*reg = value
	return nil
}

// read16 reads a 16-bit value from the given Location.
func (c *CPU) read16(l Location) (uint16, error) {
	if l.memory {
		return c.bus.Read16(l.address)
	}
	switch l.reg {
	case RegAF:
		return c.AF.Uint16(), nil
	case RegBC:
		return c.BC.Uint16(), nil
	case RegDE:
		return c.DE.Uint16(), nil
	case RegHL:
		return c.HL.Uint16(), nil
	case RegSP:
		return c.SP, nil
	}
	return 0, &InvalidRegisterWidthError{Register: l.reg, Width: 16}
}

// write16 writes a 16-bit value to the given Location.
func (c *CPU) write16(l Location, value uint16) error {
	if l.memory {
		return c.bus.Write16(l.address, value)
	}
	switch l.reg {
	case RegAF:
		c.AF.SetUint16(value & 0xFFF0)
	case RegBC:
		c.BC.SetUint16(value)
	case RegDE:
		c.DE.SetUint16(value)
	case RegHL:
		c.HL.SetUint16(value)
	case RegSP:
		c.SP = value
	default:
		return &InvalidRegisterWidthError{Register: l.reg, Width: 16}
	}
	return nil
}

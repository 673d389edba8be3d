package cpu

import "fmt"

// UnknownOpcodeError is returned by Step when the fetched opcode has no
// instruction registered for it.
type UnknownOpcodeError struct {
	Opcode  uint8
	Address uint16 // address the opcode was fetched from
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode 0x%02X at 0x%04X", e.Opcode, e.Address)
}

// UnknownExtendedOpcodeError is returned by Step when the opcode following
// a 0xCB prefix has no instruction registered for it.
type UnknownExtendedOpcodeError struct {
	Opcode  uint8
	Address uint16 // address the extended opcode was fetched from
}

func (e *UnknownExtendedOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown extended opcode 0xCB 0x%02X at 0x%04X", e.Opcode, e.Address)
}

// InvalidRegisterWidthError is returned when a register is accessed at a
// width it does not have, e.g. a 16-bit read of A.
type InvalidRegisterWidthError struct {
	Register Reg
	Width    int
}

func (e *InvalidRegisterWidthError) Error() string {
	return fmt.Sprintf("cpu: register %s cannot be accessed as %d-bit", e.Register, e.Width)
}

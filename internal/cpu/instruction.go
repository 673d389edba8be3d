package cpu

import (
	"fmt"
)

// Instruction represents a single instruction of the
// CPU.
type Instruction struct {
	name string           // name of the instruction
	fn   func(*CPU) error // fn called when executing the instruction
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Defined reports whether the instruction has been registered.
func (i Instruction) Defined() bool {
	return i.fn != nil
}

// InstructionSet holds the first 256 instructions. Opcodes without an
// instruction are reported by Step as an UnknownOpcodeError. 0xCB is
// never looked up here, it selects InstructionSetCB.
var InstructionSet [256]Instruction

// DefineInstruction defines the instruction in the InstructionSet, with
// the provided opcode. Defining the same opcode twice panics.
func DefineInstruction(opcode uint8, name string, fn func(*CPU) error) {
	define(&InstructionSet, "", opcode, name, fn)
}

func define(set *[256]Instruction, prefix string, opcode uint8, name string, fn func(*CPU) error) {
	if set[opcode].fn != nil {
		panic(fmt.Sprintf("cpu: opcode %s%02X already defined as %s", prefix, opcode, set[opcode].name))
	}
	set[opcode] = Instruction{
		name: name,
		fn:   fn,
	}
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) error { return nil })
}

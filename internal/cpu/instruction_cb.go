package cpu

// InstructionSetCB holds the extended instructions, selected by the
// opcode following a 0xCB prefix.
var InstructionSetCB [256]Instruction

// DefineInstructionCB defines the instruction in the InstructionSetCB.
// Defining the same opcode twice panics.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU) error) {
	define(&InstructionSetCB, "CB ", opcode, name, fn)
}

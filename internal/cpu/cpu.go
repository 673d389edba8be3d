package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/trace"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// Bus is the interface the CPU uses to access memory. Every fetch, operand
// read and store performed by an instruction goes through it.
type Bus interface {
	Read(address uint16) (uint8, error)
	Read16(address uint16) (uint16, error)
	Write(address uint16, value uint8) error
	Write16(address uint16, value uint16) error
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	types.Registers

	// Observer receives a trace.Step event for every executed instruction.
	Observer trace.Observer

	bus Bus
}

// NewCPU creates a new CPU instance with the given Bus.
// The Bus is used to read and write to the memory.
func NewCPU(bus Bus) *CPU {
	c := &CPU{
		bus:      bus,
		Observer: trace.Discard,
	}
	// create register pairs
	c.Registers.Pair()

	return c
}

// StepResult is returned by Step. It describes the instruction that was
// just executed.
type StepResult struct {
	// PC is the program counter after the instruction executed.
	PC uint16
	// Opcode is the opcode that was executed, 0xCB for extended instructions.
	Opcode uint8
	// Name is the mnemonic of the executed instruction.
	Name string
}

// Step fetches, decodes and executes a single instruction. If the
// instruction cannot be executed the error is returned, and the program
// counter is left pointing at the first byte of the faulting instruction.
func (c *CPU) Step() (StepResult, error) {
	pc := c.PC
	opcode, err := c.readInstruction()
	if err != nil {
		return c.fault(pc, opcode, err)
	}

	var instruction Instruction
	// do we need to run a CB instruction?
	if opcode == 0xCB {
		cbOpcode, err := c.readOperand()
		if err != nil {
			return c.fault(pc, opcode, err)
		}
		instruction = InstructionSetCB[cbOpcode]
		if instruction.fn == nil {
			return c.fault(pc, opcode, &UnknownExtendedOpcodeError{Opcode: cbOpcode, Address: pc + 1})
		}
	} else {
		instruction = InstructionSet[opcode]
		if instruction.fn == nil {
			return c.fault(pc, opcode, &UnknownOpcodeError{Opcode: opcode, Address: pc})
		}
	}

	// execute the instruction
	if err := instruction.fn(c); err != nil {
		return c.fault(pc, opcode, fmt.Errorf("cpu: %s at 0x%04X: %w", instruction.name, pc, err))
	}

	c.Observer.Observe(trace.Event{
		Kind:   trace.Step,
		PC:     pc,
		Opcode: opcode,
		Name:   instruction.name,
	})

	return StepResult{PC: c.PC, Opcode: opcode, Name: instruction.name}, nil
}

// fault rewinds the program counter to the faulting instruction.
func (c *CPU) fault(pc uint16, opcode uint8, err error) (StepResult, error) {
	c.PC = pc
	return StepResult{PC: pc, Opcode: opcode}, err
}

// readInstruction reads the next instruction from memory.
func (c *CPU) readInstruction() (uint8, error) {
	value, err := c.bus.Read(c.PC)
	c.PC++
	return value, err
}

// readOperand reads the next operand from memory. The same as
// readInstruction, but will allow future optimizations.
func (c *CPU) readOperand() (uint8, error) {
	value, err := c.bus.Read(c.PC)
	c.PC++
	return value, err
}

// readOperand16 reads the next two operands from memory as a
// little-endian 16-bit value.
func (c *CPU) readOperand16() (uint16, error) {
	low, err := c.readOperand()
	if err != nil {
		return 0, err
	}
	high, err := c.readOperand()
	if err != nil {
		return 0, err
	}
	return utils.BytesToUint16(high, low), nil
}

// Snapshot is a copy of the CPU registers at a point in time.
type Snapshot struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
}

// Snapshot returns a copy of the current register state.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.A, F: c.F, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		SP: c.SP, PC: c.PC,
	}
}

// Flags returns the flags held in F, e.g. "Z-H-".
func (s Snapshot) Flags() string {
	return flagString(s.F)
}

func (s Snapshot) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X [%s]",
		s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.PC, s.Flags())
}

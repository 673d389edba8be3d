// Package gameboy ties the CPU and MMU together into a machine that can be
// driven one instruction at a time, or left to run until it faults.
package gameboy

import (
	"context"
	"fmt"

	"github.com/thelolagemann/gbcore/internal/boot"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/trace"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// GameBoy represents a Game Boy. It contains all the components of the
// Game Boy, and is the main entry point for drivers.
type GameBoy struct {
	CPU  *cpu.CPU
	MMU  *mmu.MMU
	Boot *boot.ROM

	log.Logger

	observers []trace.Observer
	traced    bool
	stepLimit int
	steps     uint64
}

// StepLimitError is returned by Run and RunUntil when the step limit is
// reached before the machine stopped on its own.
type StepLimitError struct {
	Limit int
	PC    uint16
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("gameboy: step limit of %d reached at 0x%04X", e.Limit, e.PC)
}

// NewGameBoy returns a new GameBoy with the boot image copied to the
// start of general RAM. Execution begins at 0x0000 with every register
// zeroed.
func NewGameBoy(bootImage []byte, opts ...Opt) (*GameBoy, error) {
	memBus, err := mmu.NewMMU(bootImage)
	if err != nil {
		return nil, fmt.Errorf("gameboy: %w", err)
	}

	g := &GameBoy{
		CPU:    cpu.NewCPU(memBus),
		MMU:    memBus,
		Boot:   boot.Identify(bootImage),
		Logger: log.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(g)
	}

	observers := g.observers
	if g.traced {
		observers = append(observers, trace.NewLogObserver(g.Logger))
	}
	if len(observers) > 0 {
		observer := trace.Multi(observers...)
		g.CPU.Observer = observer
		g.MMU.Observer = observer
	}

	g.Logger.WithFields(log.Fields{
		"model":    g.Boot.Name(),
		"checksum": g.Boot.Checksum(),
		"size":     g.Boot.Size(),
	}).Info("loaded boot image")

	return g, nil
}

// Step executes a single instruction.
func (g *GameBoy) Step() (cpu.StepResult, error) {
	result, err := g.CPU.Step()
	if err == nil {
		g.steps++
	}
	return result, err
}

// Steps returns the number of instructions executed successfully.
func (g *GameBoy) Steps() uint64 {
	return g.steps
}

// Run steps the machine until an instruction fails, the step limit is
// reached or ctx is done. The error is never nil.
func (g *GameBoy) Run(ctx context.Context) error {
	for i := 0; g.stepLimit <= 0 || i < g.stepLimit; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := g.Step(); err != nil {
			return err
		}
	}
	return &StepLimitError{Limit: g.stepLimit, PC: g.CPU.PC}
}

// RunUntil steps the machine at least once, and until PC equals address.
// If limit is not positive the step limit of the GameBoy is used, and if
// that is not set either RunUntil only stops on address or on error.
func (g *GameBoy) RunUntil(address uint16, limit int) (cpu.StepResult, error) {
	if limit <= 0 {
		limit = g.stepLimit
	}
	var result cpu.StepResult
	for i := 0; limit <= 0 || i < limit; i++ {
		var err error
		if result, err = g.Step(); err != nil {
			return result, err
		}
		if result.PC == address {
			return result, nil
		}
	}
	return result, &StepLimitError{Limit: limit, PC: g.CPU.PC}
}

// Snapshot returns a copy of the CPU registers.
func (g *GameBoy) Snapshot() cpu.Snapshot {
	return g.CPU.Snapshot()
}

// Read reads a byte through the bus, as the CPU would.
func (g *GameBoy) Read(address uint16) (uint8, error) {
	return g.MMU.Read(address)
}

// Digest returns a hash of general and video RAM.
func (g *GameBoy) Digest() uint64 {
	return g.MMU.Digest()
}

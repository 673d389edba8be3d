package gameboy

import (
	"github.com/thelolagemann/gbcore/internal/trace"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// WithLogger sets the logger of the GameBoy. Executed instructions and
// accepted writes are logged to it at debug level.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
		gb.traced = true
	}
}

// WithObserver adds an observer for the trace events emitted by the CPU
// and the MMU.
func WithObserver(observer trace.Observer) Opt {
	return func(gb *GameBoy) {
		gb.observers = append(gb.observers, observer)
	}
}

// WithStepLimit bounds the number of instructions Run executes, and the
// default bound of RunUntil.
func WithStepLimit(limit int) Opt {
	return func(gb *GameBoy) {
		gb.stepLimit = limit
	}
}

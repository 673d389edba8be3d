// Package trace carries structured events out of the CPU and the MMU. The
// core never formats output itself; it hands events to an Observer, and
// whoever is driving the emulator decides what to do with them.
package trace

import (
	"sync"

	"github.com/thelolagemann/gbcore/internal/types"
)

// Kind is the kind of an Event.
type Kind uint8

const (
	// Step is emitted once for every executed instruction.
	Step Kind = iota
	// Write is emitted for every write accepted by the bus.
	Write
)

func (k Kind) String() string {
	switch k {
	case Step:
		return "step"
	case Write:
		return "write"
	}
	return "undefined"
}

// Event is a single observation made by the core.
type Event struct {
	Kind Kind

	// Step events
	PC     uint16 // address the instruction was fetched from
	Opcode uint8
	Name   string

	// Write events
	Address uint16
	Value   uint8
	Region  types.Region
	Detail  string // sub-classification of the write, if any
	Stored  bool   // false if the write was accepted but discarded
}

// Observer receives events from the core.
type Observer interface {
	Observe(e Event)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(e Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// Discard is an Observer that drops every event.
var Discard Observer = ObserverFunc(func(Event) {})

// Multi returns an Observer that forwards events to every observer.
func Multi(observers ...Observer) Observer {
	return ObserverFunc(func(e Event) {
		for _, o := range observers {
			o.Observe(e)
		}
	})
}

// Recorder is an Observer that keeps every event it sees.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Observe records e.
func (r *Recorder) Observe(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Writes returns the recorded Write events.
func (r *Recorder) Writes() []Event {
	var writes []Event
	for _, e := range r.Events() {
		if e.Kind == Write {
			writes = append(writes, e)
		}
	}
	return writes
}

// Reset forgets all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

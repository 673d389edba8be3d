// Package debugger provides a line oriented debugger for stepping the
// core, one instruction or one command at a time.
package debugger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thelolagemann/gbcore/internal/cpu"
)

// Machine is the machine being debugged.
type Machine interface {
	Step() (cpu.StepResult, error)
	RunUntil(address uint16, limit int) (cpu.StepResult, error)
	Snapshot() cpu.Snapshot
	Read(address uint16) (uint8, error)
	Digest() uint64
}

// Policy decides what Run does when the machine fails to execute an
// instruction.
type Policy uint8

const (
	// Halt stops the session and returns the error.
	Halt Policy = iota
	// Report prints the error and keeps the session. The program
	// counter stays on the faulting instruction.
	Report
)

const (
	// DefaultPrompt is printed before every command.
	DefaultPrompt = "gbcore> "
	// DefaultLimit bounds the steps taken by a single w command.
	DefaultLimit = 1 << 20

	dumpLength = 16
)

// ErrQuit is returned by Exec for the quit command.
var ErrQuit = errors.New("debugger: quit")

// Debugger reads commands from In and writes their output to Out.
type Debugger struct {
	In     io.Reader
	Out    io.Writer
	Prompt string
	Policy Policy
	// Limit bounds the steps taken by a single w command.
	Limit int

	machine Machine
}

// New returns a Debugger for m with the default prompt, the Halt policy
// and no input or output attached.
func New(m Machine) *Debugger {
	return &Debugger{
		Prompt:  DefaultPrompt,
		Policy:  Halt,
		Limit:   DefaultLimit,
		machine: m,
	}
}

// Run reads commands until the input is exhausted or q is entered. With
// the Halt policy the first machine error ends the session and is
// returned.
func (d *Debugger) Run() error {
	scanner := bufio.NewScanner(d.In)
	for {
		if d.Prompt != "" {
			fmt.Fprint(d.Out, d.Prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		out, err := d.Exec(scanner.Text())
		fmt.Fprint(d.Out, out)
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case err != nil:
			fmt.Fprintln(d.Out, err)
			if d.Policy == Halt {
				return err
			}
		}
	}
}

// Exec executes a single command line and returns its output. Errors
// from the machine are returned as is, mistakes in the command itself are
// reported in the output.
//
//	(empty) / s [n]  step n instructions, 1 by default
//	w <addr>         run until PC equals addr
//	r                print the registers and flags
//	m <addr> [n]     dump n bytes of memory, 16 by default
//	d                print the memory digest
//	h                print help
//	q                quit
func (d *Debugger) Exec(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		args = []string{"s"}
	}

	cmd := args[0]
	args = args[1:]

	var out strings.Builder
	switch cmd {
	case "s", "step":
		const usage = "step [n]"

		n := 1
		if len(args) > 1 {
			return usage + "\n", nil
		}
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return usage + "\n", nil
			}
			n = v
		}
		for i := 0; i < n; i++ {
			result, err := d.machine.Step()
			if err != nil {
				return out.String(), err
			}
			fmt.Fprintf(&out, "Stepped to 0x%04X after %s\n", result.PC, result.Name)
		}

	case "w", "wait":
		const usage = "wait <addr>"

		if len(args) != 1 {
			return usage + "\n", nil
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return err.Error() + "\n", nil
		}
		result, err := d.machine.RunUntil(addr, d.Limit)
		if err != nil {
			return out.String(), err
		}
		fmt.Fprintf(&out, "Stopped at 0x%04X after %s\n", result.PC, result.Name)

	case "r", "regs":
		fmt.Fprintln(&out, d.machine.Snapshot())

	case "m", "mem":
		const usage = "mem <addr> [n]"

		if len(args) < 1 || len(args) > 2 {
			return usage + "\n", nil
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return err.Error() + "\n", nil
		}
		n := dumpLength
		if len(args) == 2 {
			v, err := strconv.ParseUint(args[1], 0, 16)
			if err != nil || v == 0 {
				return usage + "\n", nil
			}
			n = int(v)
		}
		d.dump(&out, addr, n)

	case "d", "digest":
		fmt.Fprintf(&out, "%016x\n", d.machine.Digest())

	case "h", "help":
		out.WriteString(help)

	case "q", "quit":
		return "", ErrQuit

	default:
		return fmt.Sprintf("'%s' is not a valid command, h for help\n", cmd), nil
	}

	return out.String(), nil
}

// dump writes n bytes starting at addr, 16 to a line. Bytes that cannot be
// read are shown as --.
func (d *Debugger) dump(w io.Writer, addr uint16, n int) {
	for i := 0; i < n; i++ {
		a := addr + uint16(i)
		if i%dumpLength == 0 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "0x%04X:", a)
		}
		if v, err := d.machine.Read(a); err != nil {
			fmt.Fprint(w, " --")
		} else {
			fmt.Fprintf(w, " %02X", v)
		}
	}
	fmt.Fprintln(w)
}

// parseAddress parses a decimal, or 0x prefixed hexadecimal, address.
func parseAddress(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address '%s'", s)
	}
	return uint16(v), nil
}

const help = `s [n]         step n instructions (empty line steps once)
w <addr>      run until PC equals addr
r             print registers and flags
m <addr> [n]  dump n bytes of memory
d             print the memory digest
h             print this help
q             quit
`

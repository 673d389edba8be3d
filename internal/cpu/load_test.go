package cpu

import (
	"testing"

	"github.com/thelolagemann/gbcore/internal/types"
)

func TestInstruction_Load(t *testing.T) {
	// 0x06 - 0x3E - LD r, d8
	for j := uint8(0); j < 8; j++ {
		if j == 6 {
			continue
		}
		opcode := 0x06 + j*8
		t.Run(InstructionSet[opcode].Name(), func(t *testing.T) {
			c, _, _ := newTestCPU(t, opcode, 0x42)
			result := step(t, c)
			v, err := c.read8(InRegister(operandRegs[j]))
			if err != nil {
				t.Fatal(err)
			}
			if v != 0x42 {
				t.Errorf("expected %s to be 0x42, got 0x%02X", operandNames[j], v)
			}
			if result.PC != 0x0002 {
				t.Errorf("expected PC to be 0x0002, got 0x%04X", result.PC)
			}
		})
	}
	// 0x36 - LD (HL), d8
	t.Run("LD (HL), d8", func(t *testing.T) {
		c, m, _ := newTestCPU(t, 0x36, 0x42)
		c.HL.SetUint16(0x8010)
		step(t, c)
		if v, _ := m.Read(0x8010); v != 0x42 {
			t.Errorf("expected 0x42 at 0x8010, got 0x%02X", v)
		}
		if c.PC != 0x0002 {
			t.Errorf("expected PC to be 0x0002, got 0x%04X", c.PC)
		}
	})
	// 0x01, 0x11, 0x21, 0x31 - LD nn, d16
	for i, reg := range []Reg{RegBC, RegDE, RegHL, RegSP} {
		opcode := 0x01 + uint8(i)*0x10
		reg := reg
		t.Run(InstructionSet[opcode].Name(), func(t *testing.T) {
			c, _, _ := newTestCPU(t, opcode, 0xFE, 0xFF)
			step(t, c)
			v, _ := c.read16(InRegister(reg))
			if v != 0xFFFE {
				t.Errorf("expected %s to be 0xFFFE, got 0x%04X", reg, v)
			}
			if c.PC != 0x0003 {
				t.Errorf("expected PC to be 0x0003, got 0x%04X", c.PC)
			}
		})
	}
	// 0x40 - 0x7F - LD r, r
	t.Run("LD r, r", func(t *testing.T) {
		for j := uint8(0); j < 8; j++ {
			for k := uint8(0); k < 8; k++ {
				if j == 6 || k == 6 {
					continue
				}
				c, _, _ := newTestCPU(t, 0x40+j*8+k)
				_ = c.write8(InRegister(operandRegs[k]), 0x99)
				step(t, c)
				if v, _ := c.read8(InRegister(operandRegs[j])); v != 0x99 {
					t.Errorf("LD %s, %s: expected 0x99, got 0x%02X", operandNames[j], operandNames[k], v)
				}
			}
		}
	})
	// 0x46, 0x70 - LD B, (HL), LD (HL), B
	t.Run("LD r, (HL)", func(t *testing.T) {
		c, m, _ := newTestCPU(t, 0x46, 0x70)
		c.HL.SetUint16(0x9000)
		_ = m.Write(0x9000, 0x21)
		step(t, c)
		if c.B != 0x21 {
			t.Errorf("expected B to be 0x21, got 0x%02X", c.B)
		}
		c.HL.SetUint16(0x9001)
		step(t, c)
		if v, _ := m.Read(0x9001); v != 0x21 {
			t.Errorf("expected 0x21 at 0x9001, got 0x%02X", v)
		}
	})
	// 0x02, 0x12, 0x0A, 0x1A - LD (rr), A / LD A, (rr)
	t.Run("LD (BC), A", func(t *testing.T) {
		c, m, _ := newTestCPU(t, 0x02, 0x1A)
		c.A = 0x42
		c.BC.SetUint16(0x1234)
		step(t, c)
		if v, _ := m.Read(0x1234); v != 0x42 {
			t.Errorf("expected 0x42 at 0x1234, got 0x%02X", v)
		}
		c.A = 0
		c.DE.SetUint16(0x1234)
		step(t, c)
		if c.A != 0x42 {
			t.Errorf("expected A to be 0x42, got 0x%02X", c.A)
		}
	})
	// 0x32 - LD (HL-), A
	t.Run("LD (HL-), A", func(t *testing.T) {
		c, m, _ := newTestCPU(t, 0x32)
		c.HL.SetUint16(0x1000)
		c.A = 0x42
		c.F = 0xB0
		step(t, c)
		if v, _ := m.Read(0x1000); v != 0x42 {
			t.Errorf("expected 0x42 at 0x1000, got 0x%02X", v)
		}
		if c.HL.Uint16() != 0x0FFF {
			t.Errorf("expected HL to be 0x0FFF, got 0x%04X", c.HL.Uint16())
		}
		if c.F != 0xB0 {
			t.Errorf("expected flags to be unaffected, got 0x%02X", c.F)
		}
		if c.PC != 0x0001 {
			t.Errorf("expected PC to be 0x0001, got 0x%04X", c.PC)
		}
	})
	// 0x22, 0x2A, 0x3A - LD (HL+), A / LD A, (HL+) / LD A, (HL-)
	t.Run("LD (HL+), A", func(t *testing.T) {
		c, m, _ := newTestCPU(t, 0x22, 0x2A, 0x3A)
		c.HL.SetUint16(0x8FFF)
		c.A = 0x11
		step(t, c)
		if v, _ := m.Read(0x8FFF); v != 0x11 || c.HL.Uint16() != 0x9000 {
			t.Errorf("expected 0x11 at 0x8FFF and HL 0x9000, got 0x%02X and 0x%04X", v, c.HL.Uint16())
		}
		_ = m.Write(0x9000, 0x22)
		step(t, c)
		if c.A != 0x22 || c.HL.Uint16() != 0x9001 {
			t.Errorf("expected A 0x22 and HL 0x9001, got 0x%02X and 0x%04X", c.A, c.HL.Uint16())
		}
		step(t, c)
		if c.A != 0x00 || c.HL.Uint16() != 0x9000 {
			t.Errorf("expected A 0x00 and HL 0x9000, got 0x%02X and 0x%04X", c.A, c.HL.Uint16())
		}
	})
	// 0xE2 - LD (C), A
	t.Run("LD (C), A", func(t *testing.T) {
		c, _, r := newTestCPU(t, 0xE2)
		c.A = 0x80
		c.C = 0x11
		step(t, c)
		writes := r.Writes()
		if len(writes) != 1 || writes[0].Address != 0xFF11 || writes[0].Value != 0x80 || writes[0].Region != types.HardwareIO {
			t.Errorf("expected 0x80 written to 0xFF11, got %+v", writes)
		}
		if c.PC != 0x0001 {
			t.Errorf("expected PC to be 0x0001, got 0x%04X", c.PC)
		}
	})
	// 0xE0 - LDH (a8), A
	t.Run("LDH (a8), A", func(t *testing.T) {
		c, _, r := newTestCPU(t, 0xE0, 0x47)
		c.A = 0xFC
		step(t, c)
		writes := r.Writes()
		if len(writes) != 1 || writes[0].Address != 0xFF47 || writes[0].Value != 0xFC {
			t.Errorf("expected 0xFC written to 0xFF47, got %+v", writes)
		}
		if c.PC != 0x0002 {
			t.Errorf("expected PC to be 0x0002, got 0x%04X", c.PC)
		}
	})
	// 0xEA, 0xFA - LD (a16), A / LD A, (a16)
	t.Run("LD (a16), A", func(t *testing.T) {
		c, m, _ := newTestCPU(t, 0xEA, 0x00, 0x98, 0xFA, 0x01, 0x98)
		c.A = 0x33
		step(t, c)
		if v, _ := m.Read(0x9800); v != 0x33 {
			t.Errorf("expected 0x33 at 0x9800, got 0x%02X", v)
		}
		_ = m.Write(0x9801, 0x44)
		step(t, c)
		if c.A != 0x44 {
			t.Errorf("expected A to be 0x44, got 0x%02X", c.A)
		}
		if c.PC != 0x0006 {
			t.Errorf("expected PC to be 0x0006, got 0x%04X", c.PC)
		}
	})
	// 0x08 - LD (a16), SP
	t.Run("LD (a16), SP", func(t *testing.T) {
		c, m, _ := newTestCPU(t, 0x08, 0x00, 0x81)
		c.SP = 0xFFF8
		step(t, c)
		if v, _ := m.Read16(0x8100); v != 0xFFF8 {
			t.Errorf("expected 0xFFF8 at 0x8100, got 0x%04X", v)
		}
	})
}

package mmu

import (
	"errors"
	"testing"

	"github.com/thelolagemann/gbcore/internal/trace"
	"github.com/thelolagemann/gbcore/internal/types"
)

func newMMU(t *testing.T, boot ...byte) (*MMU, *trace.Recorder) {
	t.Helper()
	m, err := NewMMU(boot)
	if err != nil {
		t.Fatal(err)
	}
	r := &trace.Recorder{}
	m.Observer = r
	return m, r
}

func expectUnimplemented(t *testing.T, err error, address uint16, access types.Access, region types.Region) {
	t.Helper()
	var unimplemented *UnimplementedRegionError
	if !errors.As(err, &unimplemented) {
		t.Fatalf("expected UnimplementedRegionError, got %v", err)
	}
	if unimplemented.Address != address || unimplemented.Access != access || unimplemented.Region != region {
		t.Errorf("expected %s of %s at 0x%04X, got %+v", access, region, address, unimplemented)
	}
}

func TestNewMMU(t *testing.T) {
	t.Run("boot image", func(t *testing.T) {
		m, _ := newMMU(t, 0x31, 0xFE, 0xFF)
		for addr, want := range []uint8{0x31, 0xFE, 0xFF, 0x00} {
			got, err := m.Read(uint16(addr))
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("expected 0x%02X at 0x%04X, got 0x%02X", want, addr, got)
			}
		}
		if v, _ := m.Read(0x9FFF); v != 0 {
			t.Errorf("expected video RAM to be zeroed, got 0x%02X", v)
		}
	})
	t.Run("full size", func(t *testing.T) {
		boot := make([]byte, types.GeneralRAMSize)
		boot[len(boot)-1] = 0x42
		m, _ := newMMU(t, boot...)
		if v, _ := m.Read(types.GeneralRAMSize - 1); v != 0x42 {
			t.Errorf("expected last byte of general RAM to be 0x42, got 0x%02X", v)
		}
	})
	t.Run("too large", func(t *testing.T) {
		_, err := NewMMU(make([]byte, types.GeneralRAMSize+1))
		var sizeErr *BootImageSizeError
		if !errors.As(err, &sizeErr) {
			t.Fatalf("expected BootImageSizeError, got %v", err)
		}
		if sizeErr.Size != types.GeneralRAMSize+1 {
			t.Errorf("expected size %d, got %d", types.GeneralRAMSize+1, sizeErr.Size)
		}
	})
}

func TestMMU_Read16(t *testing.T) {
	m, _ := newMMU(t)
	for _, addr := range []uint16{0x0000, 0x0150, 0x1FFE, 0x8000, 0x9FFE} {
		if err := m.Write(addr, 0x34); err != nil {
			t.Fatal(err)
		}
		if err := m.Write(addr+1, 0x12); err != nil {
			t.Fatal(err)
		}
		got, err := m.Read16(addr)
		if err != nil {
			t.Fatal(err)
		}
		if got != 0x1234 {
			t.Errorf("expected 0x1234 at 0x%04X, got 0x%04X", addr, got)
		}
	}

	t.Run("Write16", func(t *testing.T) {
		if err := m.Write16(0x8100, 0xBEEF); err != nil {
			t.Fatal(err)
		}
		low, _ := m.Read(0x8100)
		high, _ := m.Read(0x8101)
		if low != 0xEF || high != 0xBE {
			t.Errorf("expected EF BE, got %02X %02X", low, high)
		}
	})
	t.Run("crossing into unimplemented", func(t *testing.T) {
		_, err := m.Read16(0x1FFF)
		expectUnimplemented(t, err, 0x2000, types.Read, types.CartridgeROM0)
	})
	t.Run("wraparound", func(t *testing.T) {
		_, err := m.Read16(0xFFFF)
		expectUnimplemented(t, err, 0xFFFF, types.Read, types.InterruptEnable)
	})
}

func TestMMU_VideoRAM(t *testing.T) {
	m, r := newMMU(t)

	tests := []struct {
		offset uint16
		area   types.VideoArea
	}{
		{0x0000, types.CharacterRAM},
		{0x1900, types.BGMapData1},
		{0x1C50, types.BGMapData2},
	}
	for _, tt := range tests {
		r.Reset()
		address := types.VideoRAMBase + tt.offset
		if err := m.Write(address, 0xA5); err != nil {
			t.Fatal(err)
		}
		got, err := m.Read(address)
		if err != nil {
			t.Fatal(err)
		}
		if got != 0xA5 {
			t.Errorf("expected 0xA5 at 0x%04X, got 0x%02X", address, got)
		}

		writes := r.Writes()
		if len(writes) != 1 {
			t.Fatalf("expected 1 write event, got %d", len(writes))
		}
		if writes[0].Detail != tt.area.String() || writes[0].Address != address || !writes[0].Stored {
			t.Errorf("expected stored %s write at 0x%04X, got %+v", tt.area, address, writes[0])
		}
	}
}

func TestMMU_HardwareIO(t *testing.T) {
	m, r := newMMU(t)
	for _, addr := range []uint16{0xFF00, 0xFF26, 0xFF7F} {
		if err := m.Write(addr, 0x80); err != nil {
			t.Errorf("expected write to 0x%04X to be accepted, got %v", addr, err)
		}
		_, err := m.Read(addr)
		expectUnimplemented(t, err, addr, types.Read, types.HardwareIO)
	}
	writes := r.Writes()
	for _, e := range writes {
		if e.Stored || e.Region != types.HardwareIO {
			t.Errorf("expected discarded hardware write, got %+v", e)
		}
	}
	if len(writes) != 3 || writes[0].Detail != "P1" || writes[1].Detail != "NR52" || writes[2].Detail != "" {
		t.Errorf("expected writes to P1, NR52 and an unnamed register, got %+v", writes)
	}
}

func TestMMU_Unimplemented(t *testing.T) {
	m, r := newMMU(t)
	tests := []struct {
		address uint16
		region  types.Region
	}{
		{0x2000, types.CartridgeROM0},
		{0x3FFF, types.CartridgeROM0},
		{0x4000, types.CartridgeROMX},
		{0xA000, types.CartridgeRAM},
		{0xC000, types.InternalRAM0},
		{0xD000, types.InternalRAMX},
		{0xE000, types.EchoRAM},
		{0xFE00, types.OAM},
		{0xFEA0, types.Unusable},
		{0xFF80, types.ZeroPage},
		{0xFFFE, types.ZeroPage},
		{0xFFFF, types.InterruptEnable},
	}
	for _, tt := range tests {
		t.Run(tt.region.String(), func(t *testing.T) {
			expectUnimplemented(t, m.Write(tt.address, 0x01), tt.address, types.Write, tt.region)
			_, err := m.Read(tt.address)
			expectUnimplemented(t, err, tt.address, types.Read, tt.region)
		})
	}
	if got := len(r.Writes()); got != 0 {
		t.Errorf("expected no write events for rejected writes, got %d", got)
	}
}

func TestMMU_BootWindow(t *testing.T) {
	m, r := newMMU(t)
	tests := []struct {
		address uint16
		region  types.Region
	}{
		{0x0038, types.Vectors},
		{0x0104, types.CartridgeHeader},
		{0x1000, types.CartridgeROM0},
		{0x1FFF, types.CartridgeROM0},
	}
	for _, tt := range tests {
		r.Reset()
		if err := m.Write(tt.address, 0x42); err != nil {
			t.Fatal(err)
		}
		if v, _ := m.Read(tt.address); v != 0x42 {
			t.Errorf("expected 0x42 at 0x%04X, got 0x%02X", tt.address, v)
		}
		if w := r.Writes(); len(w) != 1 || w[0].Region != tt.region {
			t.Errorf("expected a write event in %s, got %+v", tt.region, w)
		}
	}
}

func TestMMU_Digest(t *testing.T) {
	a, _ := newMMU(t, 0x01, 0x02)
	b, _ := newMMU(t, 0x01, 0x02)
	if a.Digest() != b.Digest() {
		t.Fatal("expected identical memory to have identical digests")
	}
	before := a.Digest()
	if err := a.Write(0x9800, 0x01); err != nil {
		t.Fatal(err)
	}
	if a.Digest() == before {
		t.Error("expected digest to change after a video RAM write")
	}
}

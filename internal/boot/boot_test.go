package boot

import (
	"testing"

	"github.com/thelolagemann/gbcore/internal/types"
)

func TestIdentify(t *testing.T) {
	t.Run("unknown", func(t *testing.T) {
		rom := Identify([]byte{0x31, 0xFE, 0xFF})
		if rom.Name() != "unknown" || rom.Model() != types.Unset {
			t.Errorf("expected unknown, got %s", rom.Name())
		}
		if rom.Known() {
			t.Error("expected an unknown image")
		}
		if rom.Size() != 3 {
			t.Errorf("expected size 3, got %d", rom.Size())
		}
	})
	t.Run("empty", func(t *testing.T) {
		rom := Identify(nil)
		// MD5 of the empty input
		if rom.Checksum() != "d41d8cd98f00b204e9800998ecf8427e" {
			t.Errorf("expected the empty checksum, got %s", rom.Checksum())
		}
	})
	t.Run("nil", func(t *testing.T) {
		var rom *ROM
		if rom.Name() != "none" || rom.Checksum() != "" || rom.Known() || rom.Model() != types.Unset {
			t.Errorf("expected a nil ROM to describe nothing, got %s", rom.Name())
		}
	})
	t.Run("known checksums", func(t *testing.T) {
		for sum, model := range map[string]types.Model{
			DMG0: types.DMG0, DMG: types.DMGABC, MGB: types.MGB, SGB: types.SGB,
			SGB2: types.SGB2, CGB0: types.CGB0, CGB: types.CGBABC,
		} {
			rom := &ROM{checksum: sum}
			if !rom.Known() || rom.Model() != model || rom.Name() == "unknown" {
				t.Errorf("expected %s to be known as %s, got %s", sum, model, rom.Model())
			}
		}
	})
}

// Package boot identifies the boot image handed to the core. The image
// itself is executed from general RAM; this package only names the model
// it was dumped from, so that drivers can report what they are running.
package boot

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/thelolagemann/gbcore/internal/types"
)

// ROM describes a boot image. When the Game Boy first powers on, the
// boot ROM is mapped to memory addresses 0x0000 - 0x00FF (or 0x0000 -
// 0x00FF & 0x0200 - 0x08FF for the CGB). It initializes the hardware,
// sets the stack pointer and scrolls the Nintendo logo.
type ROM struct {
	size     int
	checksum string // the MD5 checksum of the boot image
}

// Identify calculates the MD5 checksum of b and returns a ROM describing
// it. Any length is accepted; images of unusual sizes simply identify as
// an unknown model.
func Identify(b []byte) *ROM {
	sum := md5.Sum(b)

	return &ROM{
		size:     len(b),
		checksum: hex.EncodeToString(sum[:]),
	}
}

// Size returns the length of the boot image in bytes.
func (b *ROM) Size() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Checksum returns the MD5 checksum of the boot image.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the model of the boot image, determined by its checksum.
// Unknown images report types.Unset.
func (b *ROM) Model() types.Model {
	if b == nil {
		return types.Unset
	}
	return knownBootROMChecksums[b.checksum].model
}

// Name returns a description of the model of the boot image.
func (b *ROM) Name() string {
	if b == nil {
		return "none"
	}
	if known, ok := knownBootROMChecksums[b.checksum]; ok {
		return known.name
	}
	return "unknown"
}

// Known reports whether the checksum matches a dumped boot ROM.
func (b *ROM) Known() bool {
	if b == nil {
		return false
	}
	_, ok := knownBootROMChecksums[b.checksum]
	return ok
}

type knownROM struct {
	model types.Model
	name  string
}

var knownBootROMChecksums = map[string]knownROM{
	DMG0: {types.DMG0, "Game Boy (DMG-0)"},
	DMG:  {types.DMGABC, "Game Boy (DMG-01)"},
	MGB:  {types.MGB, "Game Boy Pocket"},
	SGB:  {types.SGB, "Super Game Boy"},
	SGB2: {types.SGB2, "Super Game Boy 2"},
	CGB0: {types.CGB0, "Game Boy Color (CGB-0)"},
	CGB:  {types.CGBABC, "Game Boy Color (CGB-A/B/C/D/E)"},
}

const (
	// DMG0 is the early DMG boot ROM, only sold in Japan. On a failed
	// logo check it flashes the screen rather than hanging.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the boot ROM found in most DMG-01 units.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs from DMG by a single byte, loading 0xFF into A
	// rather than 0x01.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB sends the cartridge header to the SNES instead of
	// scrolling the logo.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 is to SGB what MGB is to DMG.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
	// CGB0 is the early CGB boot ROM. It does not initialize wave RAM.
	CGB0 = "7c773f3c0b01cb73bca8e83227287b7f"
	// CGB is the 2304 byte boot ROM of most CGB models.
	CGB = "dbfce9db9deaa2567f6a84fde55f9680"
)

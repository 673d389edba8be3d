// Package mmu provides the memory management unit for the Game Boy. Every
// read and write the CPU performs goes through the MMU, which dispatches
// the access to the backing store of the region the address belongs to,
// or reports that the region is not implemented yet.
package mmu

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/internal/trace"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of address space.
type MMU struct {
	// 64kB address space
	raw [65536]*types.Address

	// 0x0000 - 0x1FFF - general RAM (8kB), holds the boot image
	ram [types.GeneralRAMSize]byte

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	vram [types.VideoRAMSize]byte

	// Observer receives an event for every accepted write.
	Observer trace.Observer
}

// NewMMU returns a new MMU with the boot image copied to the start of
// general RAM. The rest of general RAM and all of video RAM is zeroed.
// Boot images larger than general RAM are rejected.
func NewMMU(boot []byte) (*MMU, error) {
	if len(boot) > types.GeneralRAMSize {
		return nil, &BootImageSizeError{Size: len(boot)}
	}

	m := &MMU{Observer: trace.Discard}
	copy(m.ram[:], boot)
	m.init()

	return m, nil
}

func (m *MMU) init() {
	// every region starts out unimplemented
	regions := make(map[types.Region]*types.Address, len(types.MemoryMap))
	for _, b := range types.MemoryMap {
		region := b.Region
		regions[region] = &types.Address{
			Region: region,
			Read: func(address uint16) (uint8, error) {
				return 0, &UnimplementedRegionError{Address: address, Access: types.Read, Region: region}
			},
			Write: func(address uint16, value uint8) error {
				return &UnimplementedRegionError{Address: address, Access: types.Write, Region: region}
			},
		}
		for addr := uint32(b.Origin); addr <= uint32(b.Top); addr++ {
			m.raw[addr] = regions[region]
		}
	}

	// 0x0000 - 0x1FFF - general RAM, shadowing the vectors, header and
	// the start of cartridge ROM bank 0
	for _, region := range []types.Region{types.Vectors, types.CartridgeHeader, types.CartridgeROM0} {
		ramAddress := &types.Address{Region: region, Read: m.readRAM, Write: m.writeRAM}
		for addr := 0; addr < types.GeneralRAMSize; addr++ {
			if m.raw[addr].Region == region {
				m.raw[addr] = ramAddress
			}
		}
	}

	// 0x8000 - 0x9FFF - video RAM
	video := &types.Address{
		Region: types.VideoRAM,
		Read:   readOffset(m.readVideoRAM, types.VideoRAMBase),
		Write:  writeOffset(m.writeVideoRAM, types.VideoRAMBase),
	}
	for addr := int(types.VideoRAMBase); addr < int(types.VideoRAMBase)+types.VideoRAMSize; addr++ {
		m.raw[addr] = video
	}

	// 0xFF00 - 0xFF7F - hardware registers accept writes but are not backed
	m.raw[types.HardwareIOBase].Write = m.writeHardware
}

func readOffset(read func(uint16) (uint8, error), offset uint16) func(uint16) (uint8, error) {
	return func(addr uint16) (uint8, error) {
		return read(addr - offset)
	}
}

func writeOffset(write func(uint16, uint8) error, offset uint16) func(uint16, uint8) error {
	return func(addr uint16, v uint8) error {
		return write(addr-offset, v)
	}
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) (uint8, error) {
	return m.raw[address].Read(address)
}

// Read16 returns the little-endian 16-bit value at the given address.
// The address of the high byte wraps around from 0xFFFF to 0x0000.
func (m *MMU) Read16(address uint16) (uint16, error) {
	low, err := m.Read(address)
	if err != nil {
		return 0, err
	}
	high, err := m.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return utils.BytesToUint16(high, low), nil
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) error {
	return m.raw[address].Write(address, value)
}

// Write16 writes a 16-bit value in little-endian order. The address of
// the high byte wraps around from 0xFFFF to 0x0000.
func (m *MMU) Write16(address uint16, value uint16) error {
	high, low := utils.Uint16ToBytes(value)
	if err := m.Write(address, low); err != nil {
		return err
	}
	return m.Write(address+1, high)
}

// Digest returns a hash of general RAM followed by video RAM.
func (m *MMU) Digest() uint64 {
	d := xxhash.New()
	_, _ = d.Write(m.ram[:])
	_, _ = d.Write(m.vram[:])
	return d.Sum64()
}

func (m *MMU) readRAM(address uint16) (uint8, error) {
	return m.ram[address], nil
}

func (m *MMU) writeRAM(address uint16, value uint8) error {
	m.ram[address] = value
	m.Observer.Observe(trace.Event{
		Kind:    trace.Write,
		Address: address,
		Value:   value,
		Region:  m.raw[address].Region,
		Detail:  "general RAM",
		Stored:  true,
	})
	return nil
}

func (m *MMU) readVideoRAM(offset uint16) (uint8, error) {
	return m.vram[offset], nil
}

func (m *MMU) writeVideoRAM(offset uint16, value uint8) error {
	m.vram[offset] = value
	m.Observer.Observe(trace.Event{
		Kind:    trace.Write,
		Address: types.VideoRAMBase + offset,
		Value:   value,
		Region:  types.VideoRAM,
		Detail:  types.VideoAreaOf(offset).String(),
		Stored:  true,
	})
	return nil
}

func (m *MMU) writeHardware(address uint16, value uint8) error {
	m.Observer.Observe(trace.Event{
		Kind:    trace.Write,
		Address: address,
		Value:   value,
		Region:  types.HardwareIO,
		Detail:  types.HardwareName(address),
	})
	return nil
}

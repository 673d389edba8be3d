package types

// Address represents a memory address in the Game Boy's memory,
// which can be read from or written to. It is used to abstract
// away the actual backing store, so that every region of the
// memory map is accessed through the same interface.
type Address struct {
	// Region is the named area of the memory map the address
	// belongs to.
	Region Region
	// Read is a function that is called when the CPU reads from
	// the address.
	Read func(address uint16) (uint8, error)
	// Write is a function that is called when the CPU writes to
	// the address.
	Write func(address uint16, value uint8) error
}

// Access is the kind of bus access being performed.
type Access uint8

const (
	// Read is a read from the bus.
	Read Access = iota
	// Write is a write to the bus.
	Write
)

func (a Access) String() string {
	if a == Write {
		return "write"
	}
	return "read"
}

// Region represents a named area of the Game Boy memory map.
type Region uint8

const (
	// Vectors (0x0000 - 0x00FF) holds the restart and interrupt vectors.
	Vectors Region = iota
	// CartridgeHeader (0x0100 - 0x014F) holds the cartridge header.
	CartridgeHeader
	// CartridgeROM0 (0x0150 - 0x3FFF) is the fixed cartridge ROM bank.
	CartridgeROM0
	// CartridgeROMX (0x4000 - 0x7FFF) is the switchable cartridge ROM bank.
	CartridgeROMX
	// VideoRAM (0x8000 - 0x9FFF) holds tile data and the background maps.
	VideoRAM
	// CartridgeRAM (0xA000 - 0xBFFF) is external RAM on the cartridge.
	CartridgeRAM
	// InternalRAM0 (0xC000 - 0xCFFF) is the fixed work RAM bank.
	InternalRAM0
	// InternalRAMX (0xD000 - 0xDFFF) is the switchable work RAM bank.
	InternalRAMX
	// EchoRAM (0xE000 - 0xFDFF) mirrors work RAM.
	EchoRAM
	// OAM (0xFE00 - 0xFE9F) is the sprite attribute table.
	OAM
	// Unusable (0xFEA0 - 0xFEFF) is not connected.
	Unusable
	// HardwareIO (0xFF00 - 0xFF7F) holds the hardware registers.
	HardwareIO
	// ZeroPage (0xFF80 - 0xFFFE) is the high RAM.
	ZeroPage
	// InterruptEnable (0xFFFF) is the interrupt enable register.
	InterruptEnable
)

// RegionBounds describes the first and last address of a Region.
type RegionBounds struct {
	Region      Region
	Origin, Top uint16
}

// MemoryMap lists every Region in address order. The regions are disjoint
// and together cover the whole 16-bit address space.
var MemoryMap = [...]RegionBounds{
	{Vectors, 0x0000, 0x00FF},
	{CartridgeHeader, 0x0100, 0x014F},
	{CartridgeROM0, 0x0150, 0x3FFF},
	{CartridgeROMX, 0x4000, 0x7FFF},
	{VideoRAM, 0x8000, 0x9FFF},
	{CartridgeRAM, 0xA000, 0xBFFF},
	{InternalRAM0, 0xC000, 0xCFFF},
	{InternalRAMX, 0xD000, 0xDFFF},
	{EchoRAM, 0xE000, 0xFDFF},
	{OAM, 0xFE00, 0xFE9F},
	{Unusable, 0xFEA0, 0xFEFF},
	{HardwareIO, 0xFF00, 0xFF7F},
	{ZeroPage, 0xFF80, 0xFFFE},
	{InterruptEnable, 0xFFFF, 0xFFFF},
}

// RegionOf returns the Region that the given address belongs to.
func RegionOf(address uint16) Region {
	for _, b := range MemoryMap {
		if address <= b.Top {
			return b.Region
		}
	}
	// unreachable, the last region ends at 0xFFFF
	return InterruptEnable
}

func (r Region) String() string {
	switch r {
	case Vectors:
		return "restart and interrupt vectors"
	case CartridgeHeader:
		return "cartridge header"
	case CartridgeROM0:
		return "cartridge ROM bank 0"
	case CartridgeROMX:
		return "cartridge ROM bank 1-xx"
	case VideoRAM:
		return "video RAM"
	case CartridgeRAM:
		return "cartridge RAM"
	case InternalRAM0:
		return "internal RAM bank 0"
	case InternalRAMX:
		return "internal RAM bank 1-7"
	case EchoRAM:
		return "echo RAM"
	case OAM:
		return "OAM"
	case Unusable:
		return "unusable memory"
	case HardwareIO:
		return "hardware I/O registers"
	case ZeroPage:
		return "zero page"
	case InterruptEnable:
		return "interrupt enable register"
	}
	return "undefined"
}

const (
	// GeneralRAMSize is the size of the general RAM the boot image is
	// loaded into.
	GeneralRAMSize = 0x2000
	// VideoRAMSize is the size of the video RAM.
	VideoRAMSize = 0x2000
	// VideoRAMBase is the first address of video RAM.
	VideoRAMBase uint16 = 0x8000
	// HardwareIOBase is the base address used by the high RAM
	// load instructions, e.g. LD (0xFF00 + C), A.
	HardwareIOBase uint16 = 0xFF00
)

// VideoArea is a sub-area of video RAM.
type VideoArea uint8

const (
	// CharacterRAM (offset 0x0000 - 0x17FF) holds the tile data.
	CharacterRAM VideoArea = iota
	// BGMapData1 (offset 0x1800 - 0x1BFF) is the first background map.
	BGMapData1
	// BGMapData2 (offset 0x1C00 - 0x1FFF) is the second background map.
	BGMapData2
)

// VideoAreaOf classifies an offset into video RAM.
func VideoAreaOf(offset uint16) VideoArea {
	switch {
	case offset < 0x1800:
		return CharacterRAM
	case offset < 0x1C00:
		return BGMapData1
	default:
		return BGMapData2
	}
}

func (v VideoArea) String() string {
	switch v {
	case CharacterRAM:
		return "character RAM"
	case BGMapData1:
		return "BG map data 1"
	case BGMapData2:
		return "BG map data 2"
	}
	return "undefined"
}

package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware registers are mapped
// to memory addresses 0xFF00 - 0xFF7F.
type HardwareAddress = uint16

const (
	// P1 selects the joypad keys to be read, and reads their state.
	P1 HardwareAddress = 0xFF00
	// SB holds the byte being transferred over the serial port.
	SB HardwareAddress = 0xFF01
	// SC controls the serial port.
	SC HardwareAddress = 0xFF02
	// DIV is incremented at a rate of 16384Hz.
	DIV HardwareAddress = 0xFF04
	// TIMA is incremented at the rate selected by TAC.
	TIMA HardwareAddress = 0xFF05
	// TMA is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC controls the timer.
	TAC HardwareAddress = 0xFF07
	// IF requests interrupts.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F

	// NR10 - NR14 control sound channel 1, a square wave with sweep.
	NR10 HardwareAddress = 0xFF10
	NR11 HardwareAddress = 0xFF11
	NR12 HardwareAddress = 0xFF12
	NR13 HardwareAddress = 0xFF13
	NR14 HardwareAddress = 0xFF14
	// NR21 - NR24 control sound channel 2, a square wave.
	NR21 HardwareAddress = 0xFF16
	NR22 HardwareAddress = 0xFF17
	NR23 HardwareAddress = 0xFF18
	NR24 HardwareAddress = 0xFF19
	// NR30 - NR34 control sound channel 3, the wave channel.
	NR30 HardwareAddress = 0xFF1A
	NR31 HardwareAddress = 0xFF1B
	NR32 HardwareAddress = 0xFF1C
	NR33 HardwareAddress = 0xFF1D
	NR34 HardwareAddress = 0xFF1E
	// NR41 - NR44 control sound channel 4, the noise channel.
	NR41 HardwareAddress = 0xFF20
	NR42 HardwareAddress = 0xFF21
	NR43 HardwareAddress = 0xFF22
	NR44 HardwareAddress = 0xFF23
	// NR50 sets the master volume and the VIN panning.
	NR50 HardwareAddress = 0xFF24
	// NR51 pans each channel to the left and right outputs.
	NR51 HardwareAddress = 0xFF25
	// NR52 turns the APU on and off, and reports the active channels.
	NR52 HardwareAddress = 0xFF26
	// WaveRAM holds the 32 4-bit samples played by channel 3.
	WaveRAM HardwareAddress = 0xFF30

	// LCDC controls the LCD.
	//
	//  Bit 7: LCD Enable             (0=Off, 1=On)
	//  Bit 6: Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 5: Window Display Enable          (0=Off, 1=On)
	//  Bit 4: BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//  Bit 3: BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 2: OBJ (Sprite) Size              (0=8x8, 1=8x16)
	//  Bit 1: OBJ (Sprite) Display Enable    (0=Off, 1=On)
	//  Bit 0: BG Display (for CGB see below) (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT reports the mode of the LCD and enables LCD interrupts.
	STAT HardwareAddress = 0xFF41
	// SCY is the vertical scroll position of the background.
	SCY HardwareAddress = 0xFF42
	// SCX is the horizontal scroll position of the background.
	SCX HardwareAddress = 0xFF43
	// LY is the scanline currently being rendered, 0-153.
	LY HardwareAddress = 0xFF44
	// LYC is compared to LY.
	LYC HardwareAddress = 0xFF45
	// DMA starts a transfer of 160 bytes to OAM.
	DMA HardwareAddress = 0xFF46
	// BGP is the background palette, used in DMG mode.
	//
	//  Bit 7-6 - Shade for Color Number 3
	//  Bit 5-4 - Shade for Color Number 2
	//  Bit 3-2 - Shade for Color Number 1
	//  Bit 1-0 - Shade for Color Number 0
	BGP HardwareAddress = 0xFF47
	// OBP0 is sprite palette 0, used in DMG mode.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is sprite palette 1, used in DMG mode.
	OBP1 HardwareAddress = 0xFF49
	// WY is the Y position of the window.
	WY HardwareAddress = 0xFF4A
	// WX is the X position of the window, plus 7.
	WX HardwareAddress = 0xFF4B
	// KEY1 prepares a CGB speed switch.
	KEY1 HardwareAddress = 0xFF4D
	// VBK selects the VRAM bank in CGB mode.
	VBK HardwareAddress = 0xFF4F
	// BDIS unmaps the boot ROM when written to.
	BDIS HardwareAddress = 0xFF50
	// BCPS and BCPD select and access the CGB background palettes.
	BCPS HardwareAddress = 0xFF68
	BCPD HardwareAddress = 0xFF69
	// OCPS and OCPD select and access the CGB sprite palettes.
	OCPS HardwareAddress = 0xFF6A
	OCPD HardwareAddress = 0xFF6B
	// SVBK selects the WRAM bank in CGB mode.
	SVBK HardwareAddress = 0xFF70
)

var hardwareNames = map[HardwareAddress]string{
	P1: "P1", SB: "SB", SC: "SC",
	DIV: "DIV", TIMA: "TIMA", TMA: "TMA", TAC: "TAC",
	IF:   "IF",
	NR10: "NR10", NR11: "NR11", NR12: "NR12", NR13: "NR13", NR14: "NR14",
	NR21: "NR21", NR22: "NR22", NR23: "NR23", NR24: "NR24",
	NR30: "NR30", NR31: "NR31", NR32: "NR32", NR33: "NR33", NR34: "NR34",
	NR41: "NR41", NR42: "NR42", NR43: "NR43", NR44: "NR44",
	NR50: "NR50", NR51: "NR51", NR52: "NR52",
	LCDC: "LCDC", STAT: "STAT", SCY: "SCY", SCX: "SCX", LY: "LY", LYC: "LYC",
	DMA: "DMA", BGP: "BGP", OBP0: "OBP0", OBP1: "OBP1", WY: "WY", WX: "WX",
	KEY1: "KEY1", VBK: "VBK", BDIS: "BDIS",
	BCPS: "BCPS", BCPD: "BCPD", OCPS: "OCPS", OCPD: "OCPD",
	SVBK: "SVBK",
}

// HardwareName returns the name of the hardware register at the given
// address, or an empty string if no register is known there.
func HardwareName(address HardwareAddress) string {
	if address >= WaveRAM && address < WaveRAM+0x10 {
		return "wave RAM"
	}
	return hardwareNames[address]
}

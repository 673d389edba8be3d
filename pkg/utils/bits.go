package utils

func SetBit(value uint8, bit uint8) uint8 {
	return value | (1 << bit)
}

func ClearBit(value uint8, bit uint8) uint8 {
	return value &^ (1 << bit)
}

// TestBit returns true if the bit is set, false otherwise.
func TestBit(value uint8, bit uint8) bool {
	return value&(1<<bit) != 0
}

// GetBit returns the value of the bit.
func GetBit(value uint8, bit uint8) uint8 {
	return (value >> bit) & 1
}

// AddSigned adds a signed 8-bit offset to an unsigned 16-bit value. A
// negative offset subtracts its magnitude. The result wraps around modulo
// 65536 in both directions.
func AddSigned(value uint16, offset int8) uint16 {
	if offset < 0 {
		return value - uint16(-int16(offset))
	}
	return value + uint16(offset)
}

package mmu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// UnimplementedRegionError is returned when an access touches a region of
// the memory map that has no backing store yet.
type UnimplementedRegionError struct {
	Address uint16
	Access  types.Access
	Region  types.Region
}

func (e *UnimplementedRegionError) Error() string {
	return fmt.Sprintf("mmu: %s of unimplemented %s at 0x%04X", e.Access, e.Region, e.Address)
}

// BootImageSizeError is returned when a boot image does not fit in
// general RAM.
type BootImageSizeError struct {
	Size int
}

func (e *BootImageSizeError) Error() string {
	return fmt.Sprintf("mmu: boot image of %d bytes exceeds general RAM of %d bytes", e.Size, types.GeneralRAMSize)
}

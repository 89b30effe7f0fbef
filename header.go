package elfit

import (
	"fmt"
)

// Header is the file header that follows the identification block.
// Entry point and table offsets are kept as 64 bit values whatever the
// class of the file; 32 bit values are zero extended when read.
type Header struct {
	Type          uint16
	Machine       uint16
	Version       uint32
	EntryAddr     uint64
	ProgramOffset uint64
	SectionOffset uint64
	Flags         uint32
	Size          uint16
	PhSize        uint16
	PhCount       uint16
	ShSize        uint16
	ShCount       uint16
	NamesIndex    uint16
}

func readHeader(data []byte, id Ident) (Header, error) {
	var h Header

	order, err := id.ByteOrder()
	if err != nil {
		return h, err
	}
	c := cursor{data: data, off: headerOffset, order: order}
	h.Type = c.Uint16()
	h.Machine = c.Uint16()
	h.Version = c.Uint32()
	if err := c.Err(); err != nil {
		return h, err
	}
	switch id.Class {
	case Class32:
		h.EntryAddr = uint64(c.Uint32())
		h.ProgramOffset = uint64(c.Uint32())
		h.SectionOffset = uint64(c.Uint32())
	case Class64:
		h.EntryAddr = c.Uint64()
		h.ProgramOffset = c.Uint64()
		h.SectionOffset = c.Uint64()
	default:
		return h, fmt.Errorf("%w: %d", ErrClass, id.Class)
	}
	h.Flags = c.Uint32()
	h.Size = c.Uint16()
	h.PhSize = c.Uint16()
	h.PhCount = c.Uint16()
	h.ShSize = c.Uint16()
	h.ShCount = c.Uint16()
	h.NamesIndex = c.Uint16()

	return h, c.Err()
}

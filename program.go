package elfit

import (
	"fmt"
)

// ProgramHeader describes one entry of the program header table.
type ProgramHeader struct {
	Type         uint32
	Flags        uint32
	Offset       uint64
	VirtualAddr  uint64
	PhysicalAddr uint64
	FileSize     uint64
	MemSize      uint64
	Align        uint64
}

func readPrograms(data []byte, id Ident, hdr Header) ([]ProgramHeader, error) {
	if hdr.PhCount == 0 {
		return nil, nil
	}
	order, err := id.ByteOrder()
	if err != nil {
		return nil, err
	}
	if hdr.ProgramOffset > uint64(len(data)) {
		return nil, fmt.Errorf("%w: program table at offset %d", ErrTruncated, hdr.ProgramOffset)
	}
	var (
		c    = cursor{data: data, off: int(hdr.ProgramOffset), order: order}
		list = make([]ProgramHeader, 0, int(hdr.PhCount))
	)
	for i := 0; i < int(hdr.PhCount); i++ {
		var ph ProgramHeader
		switch id.Class {
		case Class32:
			ph, err = readProgram32(&c)
		case Class64:
			ph, err = readProgram64(&c)
		default:
			err = fmt.Errorf("%w: %d", ErrClass, id.Class)
		}
		if err != nil {
			return nil, err
		}
		list = append(list, ph)
	}
	return list, nil
}

// the 32 bit record keeps the flags between memory size and alignment
func readProgram32(c *cursor) (ProgramHeader, error) {
	var ph ProgramHeader

	ph.Type = c.Uint32()
	ph.Offset = uint64(c.Uint32())
	ph.VirtualAddr = uint64(c.Uint32())
	ph.PhysicalAddr = uint64(c.Uint32())
	ph.FileSize = uint64(c.Uint32())
	ph.MemSize = uint64(c.Uint32())
	ph.Flags = c.Uint32()
	ph.Align = uint64(c.Uint32())

	return ph, c.Err()
}

// the 64 bit record moves the flags right after the segment type
func readProgram64(c *cursor) (ProgramHeader, error) {
	var ph ProgramHeader

	ph.Type = c.Uint32()
	ph.Flags = c.Uint32()
	ph.Offset = c.Uint64()
	ph.VirtualAddr = c.Uint64()
	ph.PhysicalAddr = c.Uint64()
	ph.FileSize = c.Uint64()
	ph.MemSize = c.Uint64()
	ph.Align = c.Uint64()

	return ph, c.Err()
}

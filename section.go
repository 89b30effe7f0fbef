package elfit

import (
	"fmt"
)

// SectionHeader describes one entry of the section header table. Name
// is the raw index in the section name string table; resolving it is
// left to the caller.
type SectionHeader struct {
	Name      uint32
	Type      uint32
	Flags     uint64
	Addr      uint64
	Offset    uint64
	Size      uint64
	Link      uint32
	Info      uint32
	AddrAlign uint64
	EntSize   uint64
}

func readSections(data []byte, id Ident, hdr Header) ([]SectionHeader, error) {
	if hdr.ShCount == 0 {
		return nil, nil
	}
	order, err := id.ByteOrder()
	if err != nil {
		return nil, err
	}
	if hdr.SectionOffset > uint64(len(data)) {
		return nil, fmt.Errorf("%w: section table at offset %d", ErrTruncated, hdr.SectionOffset)
	}
	var (
		c    = cursor{data: data, off: int(hdr.SectionOffset), order: order}
		list = make([]SectionHeader, 0, int(hdr.ShCount))
	)
	for i := 0; i < int(hdr.ShCount); i++ {
		var sh SectionHeader
		switch id.Class {
		case Class32:
			sh, err = readSection32(&c)
		case Class64:
			sh, err = readSection64(&c)
		default:
			err = fmt.Errorf("%w: %d", ErrClass, id.Class)
		}
		if err != nil {
			return nil, err
		}
		list = append(list, sh)
	}
	return list, nil
}

func readSection32(c *cursor) (SectionHeader, error) {
	var sh SectionHeader

	sh.Name = c.Uint32()
	sh.Type = c.Uint32()
	sh.Flags = uint64(c.Uint32())
	sh.Addr = uint64(c.Uint32())
	sh.Offset = uint64(c.Uint32())
	sh.Size = uint64(c.Uint32())
	sh.Link = c.Uint32()
	sh.Info = c.Uint32()
	sh.AddrAlign = uint64(c.Uint32())
	sh.EntSize = uint64(c.Uint32())

	return sh, c.Err()
}

func readSection64(c *cursor) (SectionHeader, error) {
	var sh SectionHeader

	sh.Name = c.Uint32()
	sh.Type = c.Uint32()
	sh.Flags = c.Uint64()
	sh.Addr = c.Uint64()
	sh.Offset = c.Uint64()
	sh.Size = c.Uint64()
	sh.Link = c.Uint32()
	sh.Info = c.Uint32()
	sh.AddrAlign = c.Uint64()
	sh.EntSize = c.Uint64()

	return sh, c.Err()
}

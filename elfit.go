package elfit

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

var (
	ErrTruncated  = errors.New("elf: truncated input")
	ErrClass      = errors.New("elf: unsupported class")
	ErrEndianness = errors.New("elf: unsupported endianness")
	ErrMagic      = errors.New("elf: invalid magic")
)

// File is a decoded ELF image. It keeps the raw bytes it was decoded
// from together with the identification block, the file header and the
// two header tables, in file order. A File is never modified once
// Decode returns it.
type File struct {
	data []byte

	Ident    Ident
	Header   Header
	Sections []SectionHeader
	Programs []ProgramHeader
}

// Open reads the whole file in memory and decodes it.
func Open(file string) (*File, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode decodes an ELF image from the given buffer. The buffer is
// decoded in three steps: the identification block first, then the
// file header using the class and byte order found in the block, then
// the section and program header tables at the offsets given by the
// header. Any failure aborts the whole decode.
func Decode(data []byte) (*File, error) {
	id, err := readIdent(data)
	if err != nil {
		return nil, err
	}
	hdr, err := readHeader(data, id)
	if err != nil {
		return nil, err
	}
	f := File{
		data:   data,
		Ident:  id,
		Header: hdr,
	}
	if f.Sections, err = readSections(data, id, hdr); err != nil {
		return nil, err
	}
	if f.Programs, err = readPrograms(data, id, hdr); err != nil {
		return nil, err
	}
	return &f, nil
}

// Bytes returns the raw image the file was decoded from.
func (f *File) Bytes() []byte {
	return f.data
}

func (f *File) Size() int64 {
	return int64(len(f.data))
}

// Valid reports whether the image starts with the ELF magic. Decode
// does not check the magic by itself.
func (f *File) Valid() error {
	if f.Ident.Magic != Magic {
		return fmt.Errorf("%w: %08x", ErrMagic, f.Ident.Magic)
	}
	return nil
}

type cursor struct {
	data  []byte
	off   int
	order binary.ByteOrder
	err   error
}

func (c *cursor) Uint16() uint16 {
	if bs := c.read(2); bs != nil {
		return c.order.Uint16(bs)
	}
	return 0
}

func (c *cursor) Uint32() uint32 {
	if bs := c.read(4); bs != nil {
		return c.order.Uint32(bs)
	}
	return 0
}

func (c *cursor) Uint64() uint64 {
	if bs := c.read(8); bs != nil {
		return c.order.Uint64(bs)
	}
	return 0
}

func (c *cursor) Err() error {
	return c.err
}

func (c *cursor) read(n int) []byte {
	if c.err != nil {
		return nil
	}
	if c.off+n > len(c.data) {
		c.err = fmt.Errorf("%w: %d bytes needed at offset %d", ErrTruncated, n, c.off)
		return nil
	}
	bs := c.data[c.off : c.off+n]
	c.off += n
	return bs
}

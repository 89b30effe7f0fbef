package elfit

import (
	"encoding/binary"
	"fmt"
)

// Magic is the expected value of the four magic bytes when read in
// big endian order: 0x7F followed by "ELF".
const Magic uint32 = 0x7F454C46

const (
	identSize    = 9
	headerOffset = 16
)

// Ident is the fixed identification block at the start of every ELF
// image. All its fields are single bytes except the magic, which is
// kept as an opaque big endian value; none of them depend on the byte
// order declared by the file itself.
type Ident struct {
	Magic      uint32
	Class      uint8
	Endianness uint8
	Version    uint8
	AbiOs      uint8
	AbiVersion uint8
}

func (i Ident) Is32() bool {
	return i.Class == Class32
}

func (i Ident) Is64() bool {
	return i.Class == Class64
}

// ByteOrder maps the endianness byte to the order used to decode every
// multi byte field that follows the identification block.
func (i Ident) ByteOrder() (binary.ByteOrder, error) {
	switch i.Endianness {
	case DataLittle:
		return binary.LittleEndian, nil
	case DataBig:
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrEndianness, i.Endianness)
	}
}

// IsELF reports whether the buffer starts with the ELF magic bytes.
func IsELF(data []byte) bool {
	return len(data) >= 4 && binary.BigEndian.Uint32(data[:4]) == Magic
}

func readIdent(data []byte) (Ident, error) {
	if len(data) < identSize {
		return Ident{}, fmt.Errorf("%w: ident block needs %d bytes", ErrTruncated, identSize)
	}
	i := Ident{
		Magic:      binary.BigEndian.Uint32(data[:4]),
		Class:      data[4],
		Endianness: data[5],
		Version:    data[6],
		AbiOs:      data[7],
		AbiVersion: data[8],
	}
	return i, nil
}

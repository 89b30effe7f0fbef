package elfit

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type image struct {
	buf   bytes.Buffer
	order binary.ByteOrder
}

func newImage(order binary.ByteOrder, class, data uint8) *image {
	i := image{order: order}
	i.buf.Write([]byte{0x7F, 'E', 'L', 'F', class, data, 1, 0, 0})
	i.buf.Write(make([]byte, 7))
	return &i
}

func (i *image) put(vs ...interface{}) {
	for _, v := range vs {
		binary.Write(&i.buf, i.order, v)
	}
}

func (i *image) bytes() []byte {
	return i.buf.Bytes()
}

// one program header and one section header, 64 bit little endian
func image64LE() []byte {
	i := newImage(binary.LittleEndian, Class64, DataLittle)
	i.put(
		uint16(TypeDyn), uint16(0x3E), uint32(1),
		uint64(0x401000), uint64(64), uint64(120),
		uint32(0), uint16(64), uint16(56), uint16(1), uint16(64), uint16(1), uint16(0),
	)
	i.put(
		uint32(SegmentLoad), uint32(5), uint64(0),
		uint64(0x400000), uint64(0x400000),
		uint64(0x100), uint64(0x200), uint64(0x1000),
	)
	i.put(
		uint32(7), uint32(SectionProgbits), uint64(6),
		uint64(0x401000), uint64(0x100), uint64(0x80),
		uint32(0), uint32(0), uint64(16), uint64(0),
	)
	return i.bytes()
}

func TestDecode64LittleEndian(t *testing.T) {
	data := image64LE()
	f, err := Decode(data)
	require.NoError(t, err)
	require.NoError(t, f.Valid())

	assert.Equal(t, data, f.Bytes())
	assert.Equal(t, uint8(Class64), f.Ident.Class)
	assert.Equal(t, uint8(DataLittle), f.Ident.Endianness)
	assert.Equal(t, uint8(1), f.Ident.Version)

	assert.Equal(t, uint16(TypeDyn), f.Header.Type)
	assert.Equal(t, uint16(0x3E), f.Header.Machine)
	assert.Equal(t, uint64(0x401000), f.Header.EntryAddr)
	assert.Equal(t, uint64(64), f.Header.ProgramOffset)
	assert.Equal(t, uint64(120), f.Header.SectionOffset)

	require.Len(t, f.Programs, 1)
	ph := f.Programs[0]
	assert.Equal(t, uint32(SegmentLoad), ph.Type)
	assert.Equal(t, uint32(5), ph.Flags)
	assert.Equal(t, uint64(0x400000), ph.VirtualAddr)
	assert.Equal(t, uint64(0x400000), ph.PhysicalAddr)
	assert.Equal(t, uint64(0x100), ph.FileSize)
	assert.Equal(t, uint64(0x200), ph.MemSize)
	assert.Equal(t, uint64(0x1000), ph.Align)

	require.Len(t, f.Sections, 1)
	sh := f.Sections[0]
	assert.Equal(t, uint32(7), sh.Name)
	assert.Equal(t, uint32(SectionProgbits), sh.Type)
	assert.Equal(t, uint64(6), sh.Flags)
	assert.Equal(t, uint64(0x401000), sh.Addr)
	assert.Equal(t, uint64(0x100), sh.Offset)
	assert.Equal(t, uint64(0x80), sh.Size)
	assert.Equal(t, uint64(16), sh.AddrAlign)
}

func TestDecode32Widening(t *testing.T) {
	i := newImage(binary.LittleEndian, Class32, DataLittle)
	i.put(
		uint16(TypeExec), uint16(3), uint32(1),
		uint32(0xDEADBEEF), uint32(52), uint32(84),
		uint32(0), uint16(52), uint16(32), uint16(1), uint16(40), uint16(1), uint16(0),
	)
	i.put(
		uint32(SegmentLoad), uint32(0x10),
		uint32(0x8048000), uint32(0x8048000),
		uint32(0x300), uint32(0x400), uint32(7), uint32(0x1000),
	)
	i.put(
		uint32(1), uint32(SectionNobits), uint32(0x80000001),
		uint32(0x80490A0), uint32(0), uint32(0x40),
		uint32(0), uint32(0), uint32(4), uint32(0),
	)
	f, err := Decode(i.bytes())
	require.NoError(t, err)

	// widened, never sign extended
	assert.Equal(t, uint64(0xDEADBEEF), f.Header.EntryAddr)
	assert.Equal(t, uint64(52), f.Header.ProgramOffset)
	assert.Equal(t, uint64(84), f.Header.SectionOffset)

	require.Len(t, f.Programs, 1)
	ph := f.Programs[0]
	assert.Equal(t, uint64(0x10), ph.Offset)
	assert.Equal(t, uint64(0x8048000), ph.VirtualAddr)
	assert.Equal(t, uint32(7), ph.Flags)
	assert.Equal(t, uint64(0x300), ph.FileSize)
	assert.Equal(t, uint64(0x400), ph.MemSize)

	require.Len(t, f.Sections, 1)
	assert.Equal(t, uint64(0x80000001), f.Sections[0].Flags)
}

func TestDecode64BigEndianFlags(t *testing.T) {
	i := newImage(binary.BigEndian, Class64, DataBig)
	i.put(
		uint16(TypeExec), uint16(0x15), uint32(1),
		uint64(0x10000), uint64(64), uint64(0),
		uint32(0), uint16(64), uint16(56), uint16(1), uint16(64), uint16(0), uint16(0),
	)
	i.put(
		uint32(SegmentLoad), uint32(7), uint64(0x40),
		uint64(0x10000), uint64(0x10000),
		uint64(0x800), uint64(0x800), uint64(0x10000),
	)
	data := i.bytes()
	f, err := Decode(data)
	require.NoError(t, err)

	require.Len(t, f.Programs, 1)
	ph := f.Programs[0]
	// flags sit right after the segment type in a 64 bit record
	assert.Equal(t, uint32(7), binary.BigEndian.Uint32(data[64+4:64+8]))
	assert.Equal(t, uint32(7), ph.Flags)
	assert.Equal(t, uint64(0x40), ph.Offset)
}

func TestDecodeZeroCounts(t *testing.T) {
	i := newImage(binary.LittleEndian, Class64, DataLittle)
	i.put(
		uint16(TypeRel), uint16(0x3E), uint32(1),
		uint64(0), uint64(0), uint64(0),
		uint32(0), uint16(64), uint16(0), uint16(0), uint16(0), uint16(0), uint16(0),
	)
	f, err := Decode(i.bytes())
	require.NoError(t, err)
	assert.Len(t, f.Sections, 0)
	assert.Len(t, f.Programs, 0)
}

func TestDecodeEndiannessFlip(t *testing.T) {
	i := newImage(binary.LittleEndian, Class32, DataLittle)
	i.put(
		uint16(2), uint16(3), uint32(1),
		uint32(0x11223344), uint32(0), uint32(0),
		uint32(0), uint16(52), uint16(0), uint16(0), uint16(0), uint16(0), uint16(0),
	)
	le, err := Decode(i.bytes())
	require.NoError(t, err)

	data := append([]byte{}, i.bytes()...)
	data[5] = DataBig
	be, err := Decode(data)
	require.NoError(t, err)

	// single byte fields do not change with the byte order
	assert.Equal(t, le.Ident.Class, be.Ident.Class)
	assert.Equal(t, le.Ident.Version, be.Ident.Version)
	assert.Equal(t, le.Ident.AbiOs, be.Ident.AbiOs)

	assert.Equal(t, uint16(2), le.Header.Type)
	assert.Equal(t, uint16(0x0200), be.Header.Type)
	assert.Equal(t, uint16(3), le.Header.Machine)
	assert.Equal(t, uint16(0x0300), be.Header.Machine)
	assert.Equal(t, uint64(0x11223344), le.Header.EntryAddr)
	assert.Equal(t, uint64(0x44332211), be.Header.EntryAddr)
}

func TestDecodeTruncatedIdent(t *testing.T) {
	data := []byte{0x7F, 'E', 'L', 'F', 2, 1, 1, 0}
	f, err := Decode(data)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeUnknownEndianness(t *testing.T) {
	for _, class := range []uint8{0, Class32, Class64, 0xFF} {
		i := newImage(binary.LittleEndian, class, 3)
		i.put(make([]byte, 64))
		f, err := Decode(i.bytes())
		assert.Nil(t, f)
		assert.ErrorIs(t, err, ErrEndianness)
	}
}

func TestDecodeUnknownClass(t *testing.T) {
	i := newImage(binary.LittleEndian, 3, DataLittle)
	i.put(make([]byte, 64))
	f, err := Decode(i.bytes())
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrClass)
}

func TestDecodeTruncatedTable(t *testing.T) {
	data := append([]byte{}, image64LE()...)
	// section count says two records but only one is present
	binary.LittleEndian.PutUint16(data[60:62], 2)
	f, err := Decode(data)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeTableOffsetOutOfRange(t *testing.T) {
	data := append([]byte{}, image64LE()...)
	binary.LittleEndian.PutUint64(data[40:48], uint64(len(data)+1))
	f, err := Decode(data)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestOpen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dummy.so")
	require.NoError(t, os.WriteFile(file, image64LE(), 0644))

	f, err := Open(file)
	require.NoError(t, err)
	assert.Equal(t, uint16(TypeDyn), f.Header.Type)
	assert.Equal(t, int64(184), f.Size())

	_, err = Open(filepath.Join(t.TempDir(), "missing.so"))
	assert.True(t, os.IsNotExist(err))
}

func TestValid(t *testing.T) {
	data := append([]byte{}, image64LE()...)
	data[0] = 0x7E
	f, err := Decode(data)
	require.NoError(t, err)
	assert.ErrorIs(t, f.Valid(), ErrMagic)
	assert.False(t, IsELF(data))
	assert.True(t, IsELF(image64LE()))
}

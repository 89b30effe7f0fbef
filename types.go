package elfit

import (
	"fmt"
)

const (
	Class32 = 1
	Class64 = 2
)

const (
	DataLittle = 1
	DataBig    = 2
)

const (
	TypeNone = iota
	TypeRel
	TypeExec
	TypeDyn
	TypeCore
)

const (
	SegmentNull = iota
	SegmentLoad
	SegmentDynamic
	SegmentInterp
	SegmentNote
	SegmentShlib
	SegmentPhdr
	SegmentTLS
)

const (
	SectionNull = iota
	SectionProgbits
	SectionSymtab
	SectionStrtab
	SectionRela
	SectionHash
	SectionDynamic
	SectionNote
	SectionNobits
	SectionRel
	SectionShlib
	SectionDynsym
)

func ClassName(c uint8) string {
	switch c {
	case Class32:
		return "ELF32"
	case Class64:
		return "ELF64"
	default:
		return "none"
	}
}

func DataName(e uint8) string {
	switch e {
	case DataLittle:
		return "little endian"
	case DataBig:
		return "big endian"
	default:
		return "none"
	}
}

func TypeName(t uint16) string {
	switch t {
	case TypeNone:
		return "none"
	case TypeRel:
		return "relocatable file"
	case TypeExec:
		return "executable file"
	case TypeDyn:
		return "shared object"
	case TypeCore:
		return "core file"
	default:
		return "other"
	}
}

var machines = map[uint16]string{
	0x00: "none",
	0x02: "sparc",
	0x03: "i386",
	0x08: "mips",
	0x14: "powerpc",
	0x15: "powerpc64",
	0x16: "s390",
	0x28: "arm",
	0x2A: "superh",
	0x32: "ia64",
	0x3E: "x86-64",
	0xB7: "aarch64",
	0xF3: "riscv",
	0xF7: "bpf",
}

func MachineName(m uint16) string {
	v, ok := machines[m]
	if !ok {
		return fmt.Sprintf("unknown (%#x)", m)
	}
	return v
}

func SectionTypeName(t uint32) string {
	switch t {
	case SectionNull:
		return "NULL"
	case SectionProgbits:
		return "PROGBITS"
	case SectionSymtab:
		return "SYMTAB"
	case SectionStrtab:
		return "STRTAB"
	case SectionRela:
		return "RELA"
	case SectionHash:
		return "HASH"
	case SectionDynamic:
		return "DYNAMIC"
	case SectionNote:
		return "NOTE"
	case SectionNobits:
		return "NOBITS"
	case SectionRel:
		return "REL"
	case SectionShlib:
		return "SHLIB"
	case SectionDynsym:
		return "DYNSYM"
	default:
		return "other"
	}
}

func SegmentTypeName(t uint32) string {
	switch t {
	case SegmentNull:
		return "NULL"
	case SegmentLoad:
		return "LOAD"
	case SegmentDynamic:
		return "DYNAMIC"
	case SegmentInterp:
		return "INTERP"
	case SegmentNote:
		return "NOTE"
	case SegmentShlib:
		return "SHLIB"
	case SegmentPhdr:
		return "PHDR"
	case SegmentTLS:
		return "TLS"
	default:
		return "other"
	}
}

// rwx rendering of the segment permission bits
func SegmentFlagsName(f uint32) string {
	var (
		bs  = []byte("---")
		set = []struct {
			mask uint32
			char byte
			pos  int
		}{
			{mask: 0x4, char: 'r', pos: 0},
			{mask: 0x2, char: 'w', pos: 1},
			{mask: 0x1, char: 'x', pos: 2},
		}
	)
	for _, s := range set {
		if f&s.mask != 0 {
			bs[s.pos] = s.char
		}
	}
	return string(bs)
}

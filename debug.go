package elfit

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Debug decodes the given file and dumps its header and both header
// tables in a readelf like fashion.
func Debug(file string, w io.Writer) error {
	f, err := Open(file)
	if err != nil {
		return err
	}
	if err := f.Valid(); err != nil {
		return err
	}
	DumpHeader(f, w)
	fmt.Fprintln(w)

	ws := tabwriter.NewWriter(w, 12, 2, 2, ' ', 0)
	dumpSections(f, ws)
	ws.Flush()
	fmt.Fprintln(w)
	dumpPrograms(f, ws)
	ws.Flush()
	return nil
}

func DumpHeader(f *File, w io.Writer) {
	var (
		id  = f.Ident
		hdr = f.Header
	)
	fmt.Fprintf(w, "magic:                %08x\n", id.Magic)
	fmt.Fprintf(w, "class:                %s\n", ClassName(id.Class))
	fmt.Fprintf(w, "data:                 %s\n", DataName(id.Endianness))
	fmt.Fprintf(w, "ident version:        %d\n", id.Version)
	fmt.Fprintf(w, "os/abi:               %d\n", id.AbiOs)
	fmt.Fprintf(w, "abi version:          %d\n", id.AbiVersion)
	fmt.Fprintf(w, "type:                 %s\n", TypeName(hdr.Type))
	fmt.Fprintf(w, "machine:              %s\n", MachineName(hdr.Machine))
	fmt.Fprintf(w, "version:              %d\n", hdr.Version)
	fmt.Fprintf(w, "entry point:          %#x\n", hdr.EntryAddr)
	fmt.Fprintf(w, "program headers at:   %d\n", hdr.ProgramOffset)
	fmt.Fprintf(w, "section headers at:   %d\n", hdr.SectionOffset)
	fmt.Fprintf(w, "flags:                %#x\n", hdr.Flags)
	fmt.Fprintf(w, "header size:          %d\n", hdr.Size)
	fmt.Fprintf(w, "program header size:  %d\n", hdr.PhSize)
	fmt.Fprintf(w, "program headers:      %d\n", hdr.PhCount)
	fmt.Fprintf(w, "section header size:  %d\n", hdr.ShSize)
	fmt.Fprintf(w, "section headers:      %d\n", hdr.ShCount)
	fmt.Fprintf(w, "names section index:  %d\n", hdr.NamesIndex)
}

func dumpSections(f *File, w io.Writer) {
	fmt.Fprintln(w, "ix\tname\ttype\taddress\toffset\tsize\tlink\tinfo\talign\tentsize")
	for i, sh := range f.Sections {
		fmt.Fprintf(w, "%d\t%d\t%s\t%#x\t%d\t%d\t%d\t%d\t%d\t%d\n",
			i, sh.Name, SectionTypeName(sh.Type), sh.Addr, sh.Offset, sh.Size,
			sh.Link, sh.Info, sh.AddrAlign, sh.EntSize)
	}
}

func dumpPrograms(f *File, w io.Writer) {
	fmt.Fprintln(w, "ix\ttype\tflags\toffset\tvirtual\tphysical\tfilesize\tmemsize\talign")
	for i, ph := range f.Programs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%#x\t%#x\t%d\t%d\t%d\n",
			i, SegmentTypeName(ph.Type), SegmentFlagsName(ph.Flags), ph.Offset,
			ph.VirtualAddr, ph.PhysicalAddr, ph.FileSize, ph.MemSize, ph.Align)
	}
}

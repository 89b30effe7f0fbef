package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/midbel/cli"
	"github.com/midbel/elfit"
)

func runSegments(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := elfit.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ix\ttype\tflags\toffset\tvirtual\tfilesize\tmemsize")
	for i, ph := range f.Programs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%#x\t%d\t%d\n",
			i, elfit.SegmentTypeName(ph.Type), elfit.SegmentFlagsName(ph.Flags),
			ph.Offset, ph.VirtualAddr, ph.FileSize, ph.MemSize)
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/midbel/cli"
	"github.com/midbel/elfit"
)

func runSections(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := elfit.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ix\tname\ttype\taddress\toffset\tsize")
	for i, sh := range f.Sections {
		fmt.Fprintf(w, "%d\t%d\t%s\t%#x\t%d\t%d\n",
			i, sh.Name, elfit.SectionTypeName(sh.Type), sh.Addr, sh.Offset, sh.Size)
	}
	return nil
}

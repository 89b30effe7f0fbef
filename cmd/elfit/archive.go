package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/midbel/cli"
	"github.com/midbel/elfit"
)

func runArchive(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "archive\tmember\tclass\tmachine\ttype\tsections")
	for _, a := range cmd.Flag.Args() {
		ms, err := elfit.OpenMembers(a)
		if err != nil {
			return err
		}
		for _, m := range ms {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
				a, m.Name, elfit.ClassName(m.File.Ident.Class),
				elfit.MachineName(m.File.Header.Machine),
				elfit.TypeName(m.File.Header.Type), len(m.File.Sections))
		}
	}
	return nil
}

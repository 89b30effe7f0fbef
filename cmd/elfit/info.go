package main

import (
	"fmt"
	"os"

	"github.com/midbel/cli"
	"github.com/midbel/elfit"
)

func runInfo(cmd *cli.Command, args []string) error {
	strict := cmd.Flag.Bool("s", false, "reject files without the ELF magic")
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	for i, a := range cmd.Flag.Args() {
		f, err := elfit.Open(a)
		if err != nil {
			return err
		}
		if *strict {
			if err := f.Valid(); err != nil {
				return fmt.Errorf("%s: %w", a, err)
			}
		}
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintf(os.Stdout, "%s:\n", a)
		elfit.DumpHeader(f, os.Stdout)
	}
	return nil
}

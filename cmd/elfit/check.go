package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/midbel/cli"
	"github.com/midbel/elfit"
	"github.com/midbel/elfit/internal/rules"
	"github.com/midbel/textwrap"
	"golang.org/x/sync/errgroup"
)

func runCheck(cmd *cli.Command, args []string) error {
	file := cmd.Flag.String("r", "", "rules file")
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	rs, err := rules.Load(*file)
	if err != nil {
		return err
	}
	var (
		g       errgroup.Group
		reports = make([][]string, cmd.Flag.NArg())
	)
	for i, a := range cmd.Flag.Args() {
		i, file := i, a
		g.Go(func() error {
			f, err := elfit.Open(file)
			if err != nil {
				return err
			}
			reports[i] = rs.Check(f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	var failed int
	for i, vs := range reports {
		report(cmd.Flag.Arg(i), vs)
		failed += len(vs)
	}
	if failed > 0 {
		return fmt.Errorf("some files do not meet the given expectations")
	}
	return nil
}

func report(file string, vs []string) {
	if len(vs) == 0 {
		fmt.Fprintf(os.Stdout, "ok %s\n", file)
		return
	}
	fmt.Fprintf(os.Stdout, "ko %s\n", file)
	for _, v := range vs {
		for _, line := range strings.Split(textwrap.Wrap(v), "\n") {
			fmt.Fprintf(os.Stdout, "   %s\n", line)
		}
	}
}

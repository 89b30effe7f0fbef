package main

import (
	"log"
	"os"
	"path/filepath"
	"text/template"

	"github.com/midbel/cli"
)

const helpText = `{{.Name}} inspects ELF objects.

Usage:

  {{.Name}} command [arguments]

The commands are:

{{range .Commands}}{{printf "  %-9s %s" .String .Short}}
{{end}}

Use {{.Name}} [command] -h for more information about its usage.
`

var commands = []*cli.Command{
	{
		Run:   runInfo,
		Usage: "info <file,...>",
		Short: "show the file header of ELF objects",
	},
	{
		Run:   runSections,
		Usage: "sections <file>",
		Short: "show the section header table of an ELF object",
	},
	{
		Run:   runSegments,
		Usage: "segments <file>",
		Short: "show the program header table of an ELF object",
	},
	{
		Run:   runArchive,
		Usage: "archive <file,...>",
		Short: "show the ELF members of ar archives",
	},
	{
		Run:   runCheck,
		Usage: "check -r <rules.toml> <file,...>",
		Short: "check ELF objects against a set of expectations",
	},
}

func main() {
	log.SetFlags(0)
	if err := cli.Run(commands, usage); err != nil {
		log.Fatalln(err)
	}
}

func usage() {
	data := struct {
		Name     string
		Commands []*cli.Command
	}{
		Name:     filepath.Base(os.Args[0]),
		Commands: commands,
	}
	t := template.Must(template.New("help").Parse(helpText))
	t.Execute(os.Stderr, data)

	os.Exit(2)
}

package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	config    string
	theme     string
	codeTheme string
	output    string
	pdf       bool
	verbose   bool
	version   bool
}

const usageText = `mdeck compiles markdown documents into slide decks.

Usage:
  mdeck compile <input.md> [flags]   Compile to JSON on stdout or -o
  mdeck export  <input.md> [flags]   Export to standalone HTML (or PDF)

Flags:
      --config string       config file name or path
      --theme string        deck theme: dark, light, paper
      --code-theme string   chroma style for code blocks
  -o, --output string       output file (default: stdout / input name)
      --pdf                 export a PDF handout instead of HTML
  -v, --verbose             verbose progress on stderr
      --version             print version and exit
`

// parseFlags parses args (including argv[0]) and returns the flags plus the
// remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("mdeck", flag.ContinueOnError)
	fs.Usage = func() { fmt.Print(usageText) }

	fs.StringVar(&flags.config, "config", "", "config file name or path")
	fs.StringVar(&flags.theme, "theme", "", "deck theme")
	fs.StringVar(&flags.codeTheme, "code-theme", "", "chroma style for code blocks")
	fs.StringVarP(&flags.output, "output", "o", "", "output file")
	fs.BoolVar(&flags.pdf, "pdf", false, "export a PDF handout")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose progress on stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return flags, fs.Args(), nil
}

package main

import (
	flag "github.com/spf13/pflag"
)

// buildFlags holds the parsed command line.
type buildFlags struct {
	config  string
	outDir  string
	verbose bool
	version bool
}

// parseFlags parses args (without the program name).
func parseFlags(args []string) (*buildFlags, error) {
	fs := flag.NewFlagSet("sheetgen", flag.ContinueOnError)

	flags := &buildFlags{}
	fs.StringVarP(&flags.config, "config", "c", "sheet.yaml", "build config file")
	fs.StringVarP(&flags.outDir, "out", "o", "", "output directory (overrides config)")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "log build steps to stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}

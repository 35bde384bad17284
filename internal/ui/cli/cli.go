package cli

import (
	"flag"
	"hotkeyc/internal/core/config"
	"io"
)

const versionString = "1.0.0"

type cliOptions struct {
	configPath   string
	root         string
	format       string
	verbose      bool
	stats        bool
	traceInclude bool
	version      bool
	args         []string
}

func parseOptions(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("hotkeyc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", config.DefaultPath, "Path to settings file")
	fs.StringVar(&opts.root, "root", "", "Root hotkey config file (overrides settings root)")
	fs.StringVar(&opts.format, "format", "", "Output format: text, tsv, yaml or json")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&opts.stats, "stats", false, "Print compile metrics to stderr after the table")
	fs.BoolVar(&opts.traceInclude, "trace-include", false, "Print the include chain between two files: hotkeyc -trace-include <from> <to>")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}

	opts.args = fs.Args()
	return opts, nil
}

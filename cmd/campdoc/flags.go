package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pathFlags override the fixed input and output file names.
// They only apply to single-profile commands.
type pathFlags struct {
	input  string
	output string
}

// featureFlags adjust the profile's conversion steps.
type featureFlags struct {
	style       string
	assetPath   string
	sanitize    bool
	noTOC       bool
	noHighlight bool
}

// convertFlags holds all flags for the report, api and all commands.
type convertFlags struct {
	common   commonFlags
	paths    pathFlags
	features featureFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path (default campdoc.yaml if present)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show conversion details")
}

// addPathFlags adds input/output flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVarP(&f.input, "input", "i", "", "markdown input file")
	fs.StringVarP(&f.output, "output", "o", "", "HTML output file")
}

// addFeatureFlags adds styling and feature flags to a FlagSet.
func addFeatureFlags(fs *flag.FlagSet, f *featureFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.sanitize, "sanitize", false, "strip unsafe HTML from the rendered markdown")
	fs.BoolVar(&f.noTOC, "no-toc", false, "disable table of contents")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable syntax highlighting")
}

// parseConvertFlags parses flags for a conversion command.
// Positional arguments are rejected. -h/--help returns flag.ErrHelp.
func parseConvertFlags(cmd string, args []string, stderr io.Writer) (*convertFlags, error) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &convertFlags{}

	addCommonFlags(fs, &f.common)
	if cmd != "all" {
		addPathFlags(fs, &f.paths)
	}
	addFeatureFlags(fs, &f.features)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		printConvertUsage(stderr, cmd)
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q (use --input)", ErrUsage, fs.Arg(0))
	}
	return f, nil
}

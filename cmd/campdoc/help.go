package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: campdoc <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  report     Convert CampStation-Backend-Report.md to HTML")
	fmt.Fprintln(w, "  api        Convert API-Endpoints-Documentation.md to HTML")
	fmt.Fprintln(w, "  all        Convert both documents")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'campdoc help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for a conversion command.
func printConvertUsage(w io.Writer, cmd string) {
	fmt.Fprintf(w, "Usage: campdoc %s [flags]\n", cmd)
	fmt.Fprintln(w)
	switch cmd {
	case "all":
		fmt.Fprintln(w, "Convert the report and the API documentation concurrently.")
	default:
		fmt.Fprintf(w, "Convert the %s profile's Markdown file to a print-ready HTML page.\n", cmd)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Input/Output:")
		fmt.Fprintln(w, "  -i, --input <path>        Markdown file (default: the profile's file name)")
		fmt.Fprintln(w, "  -o, --output <path>       HTML file (default: the profile's file name)")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <path>       Config file (default: ./campdoc.yaml if present)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles/ and templates/ directory")
	fmt.Fprintln(w, "      --style <name|path>   CSS style name or file path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Features:")
	fmt.Fprintln(w, "      --sanitize            Strip unsafe HTML from the rendered Markdown")
	fmt.Fprintln(w, "      --no-toc              Disable table of contents")
	fmt.Fprintln(w, "      --no-highlight        Disable syntax highlighting")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show conversion details")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  %-25s Config file path\n", envConfigPath)
	fmt.Fprintf(w, "  %-25s Custom asset directory\n", envAssetPath)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "report", "api", "all":
		printConvertUsage(env.Stdout, args[0])
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: campdoc version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: campdoc help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}

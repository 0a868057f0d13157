package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: hw2html <command> [flags] [args]")
	fmt.Fprintln(w, "       hw2html <input> [output] [css] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert homework documents to HTML (and PDF)")
	fmt.Fprintln(w, "  css        Print the base stylesheet")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  dump       Print the parsed document tree")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'hw2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: hw2html convert <input> [output] [css] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert homework documents to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Document or directory of .hw/.txt files")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w, "  output   Output .html file or directory (same as --output)")
	fmt.Fprintln(w, "  css      Extra CSS file (same as --css)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>           Base style name, CSS file or inline CSS")
	fmt.Fprintln(w, "      --css <path>          Extra CSS file appended after the base style")
	fmt.Fprintln(w, "      --clean               Omit the base style")
	fmt.Fprintln(w, "      --engine <src>        Math engine script src")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --pdf                 Also write a PDF (requires Chrome)")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Page load timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "                            Env: "+timeoutEnv)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printCSSUsage prints usage for the css command.
func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: hw2html css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the base stylesheet written into every document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --style <s>           Style name, CSS file or inline CSS")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles directory")
	fmt.Fprintln(w, "      --list                List style names (built-in and --asset-path)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: hw2html config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// printDumpUsage prints usage for the dump command.
func printDumpUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: hw2html dump <input|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the parsed document tree. \"-\" reads standard input.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --no-color            Disable colored output")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "css":
		printCSSUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "dump":
		printDumpUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: hw2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: hw2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}

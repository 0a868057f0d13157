package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-hw2html/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command in args and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	var err error

	switch cmd {
	case "convert":
		err = runConvertCmd(rest, env)
	case "css":
		err = runCSS(rest, env)
	case "config":
		err = runConfig(rest, env)
	case "dump":
		err = runDump(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "hw2html %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		// "hw2html <input> [output] [css]" is shorthand for convert.
		if !looksLikeDocument(cmd) {
			fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
			printUsage(env.Stderr)
			return exitCodeFor(ErrUnknownCommand)
		}
		err = runConvertCmd(args[1:], env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, env.Getenv))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// looksLikeDocument reports whether arg names a document or an existing path
// rather than a command.
func looksLikeDocument(arg string) bool {
	return fileutil.HasExtension(arg, inputExtensions...) || fileutil.FileExists(arg)
}

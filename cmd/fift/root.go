package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tonfift/fift"
)

var (
	noPreamble  bool
	interactive bool
	includePath string
	libPath     string
	scriptMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "fift [source_files...]",
	Short: "Fift: a stack-based tooling language for TON/Everscale",
	Long: `fift executes Fift source files (or standard input, if none are
given), optionally preceded by the Fift.fif preamble and followed by an
interactive prompt.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFift,
}

func init() {
	rootCmd.Flags().BoolVarP(&noPreamble, "no-preamble", "n", false, "skip loading the Fift.fif preamble")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "enter interactive loop after processing files")
	rootCmd.Flags().StringVarP(&includePath, "include", "I", "", "colon-separated include search path (overrides $FIFTPATH)")
	rootCmd.Flags().StringVarP(&libPath, "library", "L", "", "explicit path to the preamble file")
	rootCmd.Flags().BoolVarP(&scriptMode, "script", "s", false, "script mode: first arg is the script, the rest become $1, $2, ...")
}

// Execute runs the CLI and returns the process exit code (spec §6.1:
// 0 on clean termination including `bye`, non-zero on an uncaught abort
// reaching the outermost reader in non-interactive mode).
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return lastExitCode
}

var lastExitCode int

func runFift(cmd *cobra.Command, args []string) error {
	opts := []fift.Option{fift.WithOutput(os.Stdout)}

	search := resolveIncludePath()
	opts = append(opts, fift.WithIncludePath(search))

	if noPreamble {
		opts = append(opts, fift.WithNoPreamble())
	} else if libPath != "" {
		src, err := os.ReadFile(libPath)
		if err != nil {
			return errors.Wrapf(err, "reading preamble %s", libPath)
		}
		opts = append(opts, fift.WithPreamble(string(src)))
	}

	var scriptArgs []string
	var sources []string
	if scriptMode {
		if len(args) == 0 {
			return errors.New("-s requires a script path")
		}
		sources = args[:1]
		scriptArgs = args[1:]
	} else {
		sources = args
	}
	opts = append(opts, fift.WithScriptArgs(scriptArgs))

	// Input.Push is a stack (include semantics): the last frame pushed
	// is read first. Top-level sources must be read in the order given
	// on the command line, with an interactive stdin prompt (if any)
	// trailing all of them, so they are opened in read order here and
	// then handed to WithInput in reverse.
	var readers []io.Reader
	if len(sources) == 0 {
		readers = append(readers, os.Stdin)
	} else {
		for _, path := range sources {
			f, err := os.Open(path)
			if err != nil {
				return errors.Wrapf(err, "opening %s", path)
			}
			readers = append(readers, f)
		}
	}
	if interactive {
		readers = append(readers, os.Stdin)
	}
	for i := len(readers) - 1; i >= 0; i-- {
		opts = append(opts, fift.WithInput(readers[i]))
	}

	vm := fift.New(opts...)
	defer vm.Close()

	if err := vm.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		lastExitCode = 1
		return nil
	}
	lastExitCode = vm.ExitCode()
	return nil
}

func resolveIncludePath() []string {
	if includePath != "" {
		return strings.Split(includePath, ":")
	}
	if env := os.Getenv("FIFTPATH"); env != "" {
		return strings.Split(env, ":")
	}
	return nil
}

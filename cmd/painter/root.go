package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/painter/internal/engine"
	"github.com/alexisbeaulieu97/painter/internal/logger"
	"github.com/alexisbeaulieu97/painter/internal/theme"
)

type rootFlags struct {
	verbose   bool
	logJSON   bool
	maxPasses int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "painter",
		Short:         "painter resolves declarative UI themes into concrete styles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON lines")
	cmd.PersistentFlags().IntVar(&flags.maxPasses, "max-passes", 0, "Cap the number of composite resolution passes (0 = until no progress)")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newCanonicalizeCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger builds the command logger. Logs go to stderr, command output to
// stdout.
func (f *rootFlags) logger(cmd *cobra.Command) (*logger.Logger, error) {
	level := "warn"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: !f.logJSON, Writer: cmd.ErrOrStderr()})
}

func (f *rootFlags) resolver(cmd *cobra.Command) (*engine.Resolver, error) {
	if f.maxPasses < 0 {
		return nil, newCommandError("configure resolver", "--max-passes", fmt.Errorf("must not be negative, got %d", f.maxPasses), "Pass 0 to run until no entry makes progress.")
	}
	log, err := f.logger(cmd)
	if err != nil {
		return nil, newCommandError("configure logging", "creating logger", err, "Check the logging flags.")
	}
	return engine.NewResolver(log, engine.Options{MaxPasses: f.maxPasses}), nil
}

// loadTheme parses one theme file, wrapping failures with a hint at what to
// fix.
func loadTheme(operation, path string) (*theme.Theme, error) {
	doc, err := theme.ParseFile(path)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("loading %s", path), err, loadSuggestion(err))
	}
	return doc, nil
}

// resolveFile loads and resolves one theme. Broken values or leaf entries are
// returned as an error; composite failures stay in the result.
func resolveFile(cmd *cobra.Command, flags *rootFlags, operation, path string) (*engine.Result, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, newCommandError(operation, fmt.Sprintf("reading %s", path), err, "Check that the file exists and is readable.")
	}

	doc, err := theme.Parse(data, path)
	if err != nil {
		return nil, nil, newCommandError(operation, fmt.Sprintf("loading %s", path), err, loadSuggestion(err))
	}

	resolver, err := flags.resolver(cmd)
	if err != nil {
		return nil, nil, err
	}

	res, err := resolver.Resolve(doc)
	if err != nil {
		return nil, nil, newCommandError(operation, fmt.Sprintf("resolving %s", path), err, "Every colour and border named by a border or leaf entry must be declared.")
	}
	return res, data, nil
}

func loadSuggestion(err error) string {
	var themeErr interface{ Location() string }
	switch {
	case errors.As(err, &themeErr):
		return fmt.Sprintf("Fix the value at %s.", themeErr.Location())
	case errors.Is(err, os.ErrNotExist):
		return "Check that the file exists and is readable."
	default:
		return "Check the theme document for YAML syntax and required fields."
	}
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

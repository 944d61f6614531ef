package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/painter/internal/style"
)

type showOptions struct {
	jsonOutput bool
	color      string
}

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a resolved theme as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the resolved theme as JSON")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "Colour swatches: auto, always or never")

	return cmd
}

func runShow(cmd *cobra.Command, rootFlags *rootFlags, opts *showOptions, path string) error {
	var renderer *lipgloss.Renderer
	switch opts.color {
	case "auto":
		if isTerminal(cmd.OutOrStdout()) {
			renderer = lipgloss.NewRenderer(cmd.OutOrStdout())
		}
	case "always":
		renderer = lipgloss.NewRenderer(cmd.OutOrStdout())
		renderer.SetColorProfile(termenv.TrueColor)
	case "never":
	default:
		return newCommandError("show", "--color", fmt.Errorf("unknown mode %q", opts.color), "Use auto, always or never.")
	}

	res, _, err := resolveFile(cmd, rootFlags, "show", path)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Theme); err != nil {
			return newCommandError("show", "encoding JSON output", err, "Retry with --json disabled.")
		}
	} else if err := style.Display(cmd.OutOrStdout(), res.Theme, style.DisplayOptions{Renderer: renderer}); err != nil {
		return newCommandError("show", "writing output", err, "Check that standard output is writable.")
	}

	for _, f := range res.Failures {
		fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s\n", f.Error())
	}
	return nil
}

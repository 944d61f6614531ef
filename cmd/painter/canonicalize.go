package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/painter/internal/engine"
	"github.com/alexisbeaulieu97/painter/internal/theme"
	"github.com/alexisbeaulieu97/painter/pkg/diff"
)

type canonicalizeOptions struct {
	showDiff bool
	output   string
}

func newCanonicalizeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &canonicalizeOptions{}

	cmd := &cobra.Command{
		Use:   "canonicalize <file>",
		Short: "Rewrite a theme with deduplicated values and fully defined states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCanonicalize(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.showDiff, "diff", false, "Print a unified diff against the input instead of the document")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the canonical document to a file")

	return cmd
}

func runCanonicalize(cmd *cobra.Command, rootFlags *rootFlags, opts *canonicalizeOptions, path string) error {
	res, original, err := resolveFile(cmd, rootFlags, "canonicalize", path)
	if err != nil {
		return err
	}

	for _, f := range res.Failures {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s\n", f.Error())
	}

	canonical, err := theme.Encode(engine.Canonicalize(res.Theme))
	if err != nil {
		return newCommandError("canonicalize", "encoding the canonical document", err, "Report this theme as a bug.")
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, canonical, 0o644); err != nil {
			return newCommandError("canonicalize", fmt.Sprintf("writing %s", opts.output), err, "Check that the target directory exists and is writable.")
		}
	}

	switch {
	case opts.showDiff:
		d := diff.GenerateUnifiedDiff(original, canonical, path, path+" (canonical)")
		if d == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is already canonical\n", path)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), d)
	case opts.output == "":
		_, err := cmd.OutOrStdout().Write(canonical)
		return err
	}

	return nil
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/painter/internal/engine"
	"github.com/alexisbeaulieu97/painter/internal/style"
	"github.com/alexisbeaulieu97/painter/internal/theme"
)

type resolveOptions struct {
	jsonOutput bool
	jobs       int
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <file>...",
		Short: "Resolve theme files and report every entry that fails",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootFlags, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output resolved themes as JSON")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "Number of themes resolved in parallel")

	return cmd
}

type resolveReport struct {
	Path     string       `json:"path"`
	Theme    *style.Theme `json:"theme,omitempty"`
	Passes   int          `json:"passes"`
	Failures []string     `json:"failures,omitempty"`
	Error    string       `json:"error,omitempty"`
}

func runResolve(cmd *cobra.Command, rootFlags *rootFlags, opts *resolveOptions, paths []string) error {
	resolver, err := rootFlags.resolver(cmd)
	if err != nil {
		return err
	}

	reports := make([]resolveReport, len(paths))
	var docs []*theme.Theme
	var index []int
	for i, path := range paths {
		reports[i].Path = path
		doc, err := loadTheme("resolve", path)
		if err != nil {
			reports[i].Error = err.Error()
			continue
		}
		docs = append(docs, doc)
		index = append(index, i)
	}

	outcomes, err := resolver.ResolveAll(cmd.Context(), docs, opts.jobs)
	if err != nil {
		return newCommandError("resolve", "resolving themes", err, "Retry without interrupting the command.")
	}

	for j, o := range outcomes {
		r := &reports[index[j]]
		if o.Err != nil {
			r.Error = o.Err.Error()
			continue
		}
		r.Theme = o.Result.Theme
		r.Passes = o.Result.Passes
		for _, f := range o.Result.Failures {
			r.Failures = append(r.Failures, f.Error())
		}
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return newCommandError("resolve", "encoding JSON output", err, "Retry with --json disabled.")
		}
	} else {
		renderResolveReports(cmd, reports)
	}

	broken := 0
	for _, r := range reports {
		if r.Error != "" || len(r.Failures) > 0 {
			broken++
		}
	}
	if broken > 0 {
		return newCommandError("resolve", fmt.Sprintf("%d of %d themes", broken, len(reports)),
			errors.New("some themes or entries did not resolve"),
			"Fix the entries listed above and run 'painter resolve' again.")
	}
	return nil
}

func renderResolveReports(cmd *cobra.Command, reports []resolveReport) {
	out := cmd.OutOrStdout()
	for _, r := range reports {
		switch {
		case r.Error != "":
			fmt.Fprintf(out, "%s: error\n%s\n", r.Path, r.Error)
		case len(r.Failures) == 0:
			fmt.Fprintf(out, "%s: theme %q resolved %d entries in %d passes\n", r.Path, r.Theme.Name, entryCount(r.Theme), r.Passes)
		default:
			fmt.Fprintf(out, "%s: theme %q resolved %d entries in %d passes, %d failed\n", r.Path, r.Theme.Name, entryCount(r.Theme), r.Passes, len(r.Failures))
			for _, f := range r.Failures {
				fmt.Fprintf(out, "  ✗ %s\n", f)
			}
		}
	}
}

func entryCount(t *style.Theme) int {
	n := 0
	for _, kind := range theme.StyleKinds {
		n += len(t.Names(kind))
	}
	if t.Application != nil {
		n++
	}
	return n
}

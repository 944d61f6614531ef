package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/painter/internal/tui"
)

func newBrowseCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Explore a resolved theme interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, rootFlags, args[0])
		},
	}

	return cmd
}

func runBrowse(cmd *cobra.Command, rootFlags *rootFlags, path string) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("browse", "starting the browser", errors.New("standard output is not a terminal"), "Run 'painter show' to print the theme instead.")
	}

	res, _, err := resolveFile(cmd, rootFlags, "browse", path)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(res), tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()), tea.WithInput(cmd.InOrStdin()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

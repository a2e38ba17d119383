package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"catlint/internal/driver"
	"catlint/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse <file>",
	Short: "Browse a catalog document interactively",
	Long: `Open an interactive browser over the parsed catalog: a list of all
entries with their findings, and a detail view with the description and
prevention tip. Requires a terminal`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

// runBrowse executes the "browse" command: it checks the document and opens
// the interactive entry browser over the result.
func runBrowse(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if !isTerminal(os.Stdout) {
		return fmt.Errorf("browse requires a terminal; use check --format json for scripting")
	}

	opts, _, err := resolveDriverOptions(cmd, inputPath)
	if err != nil {
		return err
	}

	res, err := driver.CheckFile(cmd.Context(), inputPath, opts)
	if err != nil {
		return err
	}

	model := ui.NewBrowseModel(filepath.Base(res.Path), res.Catalog, res.Bag)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

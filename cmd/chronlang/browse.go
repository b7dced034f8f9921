package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/conlangtools/chronlang-engine/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "Interactively browse a compiled project's lexicon over time",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}

	m, _, err := compileProject(startDir)
	if m != nil {
		printDiagnostics(cmd, m.Errors, m.Warnings)
	}
	if err != nil {
		return err
	}
	if m.Errors.Len() > 0 {
		return fmt.Errorf("cannot browse: module failed to compile")
	}

	program := tea.NewProgram(tui.New(m))
	_, err = program.Run()
	return err
}

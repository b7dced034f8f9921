package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conlangtools/chronlang-engine/internal/export"
	"github.com/conlangtools/chronlang-engine/internal/render"
	"github.com/conlangtools/chronlang-engine/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [path]",
	Short: "Build a point-in-time lexicon and print it as a table",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().String("lang", "", "language ID to build the snapshot for (required)")
	snapshotCmd.Flags().Int64("time", 0, "point in time to build the snapshot at (required)")
	snapshotCmd.Flags().String("export", "", "also write the snapshot to this path as msgpack")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}
	langID, err := cmd.Flags().GetString("lang")
	if err != nil || langID == "" {
		return fmt.Errorf("--lang is required")
	}
	t, err := cmd.Flags().GetInt64("time")
	if err != nil {
		return err
	}
	exportPath, err := cmd.Flags().GetString("export")
	if err != nil {
		return err
	}

	m, _, err := compileProject(startDir)
	if m != nil {
		printDiagnostics(cmd, m.Errors, m.Warnings)
	}
	if err != nil {
		return err
	}
	if m.Errors.Len() > 0 {
		return fmt.Errorf("cannot build a snapshot: module failed to compile")
	}

	lang, ok := m.Languages[langID]
	if !ok {
		return fmt.Errorf("unknown language %q", langID)
	}

	snap := snapshot.Build(m, lang, t)
	printDiagnostics(cmd, snap.Errors, snap.Warnings)
	render.Table(cmd.OutOrStdout(), snap)

	if exportPath != "" {
		f, err := os.Create(exportPath)
		if err != nil {
			return fmt.Errorf("failed to create %q: %w", exportPath, err)
		}
		defer f.Close()
		if err := export.Write(f, snap); err != nil {
			return fmt.Errorf("failed to export snapshot: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", exportPath)
	}
	if !snap.OK() {
		return fmt.Errorf("snapshot has %d error(s)", snap.Errors.Len())
	}
	return nil
}

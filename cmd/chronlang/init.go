package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Scaffold a new chronlang project",
	Long: `Initialize a new chronlang project by creating a project manifest
(chronlang.toml) and a starter entry file (main.lang). If [path|name] is
omitted, initializes the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target, err := resolveInitTarget(args)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "chronlang-project"
	}

	manifestPath := filepath.Join(target, "chronlang.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}
	if err := os.WriteFile(manifestPath, []byte(defaultManifest(name)), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	entryPath := filepath.Join(target, "main.lang")
	createdEntry := false
	if _, err := os.Stat(entryPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(entryPath, []byte(defaultEntrySource()), 0o600); err != nil {
			return fmt.Errorf("failed to write main.lang: %w", err)
		}
		createdEntry = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "initialized chronlang project in %s\n", rel)
	fmt.Fprintln(cmd.OutOrStdout(), "  - chronlang.toml")
	if createdEntry {
		fmt.Fprintln(cmd.OutOrStdout(), "  - main.lang")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "  - main.lang (existing)")
	}
	return nil
}

func resolveInitTarget(args []string) (string, error) {
	if len(args) == 0 || args[0] == "." {
		return os.Getwd()
	}
	arg := args[0]
	if filepath.IsAbs(arg) {
		return arg, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, arg), nil
}

func defaultManifest(name string) string {
	return fmt.Sprintf(`# chronlang project manifest
[package]
name = "%s"
entry = "main.lang"

[modules]
`, name)
}

// defaultEntrySource is a placeholder: there's no parser in this build to
// actually read it back (see noParser), so it documents the shape a real
// entry file would take rather than something `chronlang build` can run.
func defaultEntrySource() string {
	return `// chronlang entry point (placeholder)
// A real parser will turn statements like these into the module this
// engine compiles; none ships with this build.

language Proto {}

milestone {
  time: 0
  language: Proto
}

trait Voice {
  voiced
  voiceless [default]
}

class C encodes Voice {
  p [voiceless]
  b [voiced]
}

word "stone" /p/ {
  (n) "a small piece of rock"
}
`
}

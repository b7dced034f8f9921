package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conlangtools/chronlang-engine/internal/diag"
	"github.com/conlangtools/chronlang-engine/internal/diagfmt"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/project"
	"github.com/conlangtools/chronlang-engine/internal/resolver"
)

var buildCmd = &cobra.Command{
	Use:   "build [path]",
	Short: "Compile a chronlang project",
	Long:  "Compile a chronlang project using chronlang.toml as the entrypoint definition.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}

	m, manifest, err := compileProject(startDir)
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if m != nil {
		printDiagnostics(cmd, m.Errors, m.Warnings)
	}
	if err != nil {
		return err
	}
	if m.Errors.Len() > 0 {
		return fmt.Errorf("build failed with %d error(s)", m.Errors.Len())
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "compiled %s: %d languages, %d words, %d sound changes\n",
			manifest.Package.Name, len(m.Languages), len(m.Words), len(m.SoundChanges))
	}
	return nil
}

// compileProject locates the nearest chronlang.toml above startDir, reads
// its entry file, and compiles it through a project-rooted
// resolver.FileSystemResolver.
func compileProject(startDir string) (*module.Module, *project.Manifest, error) {
	manifest, ok, err := project.LoadManifest(startDir)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, fmt.Errorf("no chronlang.toml found above %s\nrun `chronlang init` to create one", startDir)
	}
	if manifest.Package.Entry == "" {
		return nil, manifest, fmt.Errorf("%s: [package].entry is not set", manifest.Path)
	}

	entryPath := filepath.Join(manifest.Root, manifest.Package.Entry)
	contents, err := os.ReadFile(entryPath)
	if err != nil {
		return nil, manifest, fmt.Errorf("failed to read entry file %q: %w", entryPath, err)
	}
	stmts, err := noParser(contents, entryPath)
	if err != nil {
		return nil, manifest, err
	}

	res := resolver.NewFileSystemResolver(manifest.Root, manifest, noParser)
	m := module.CompileModule(stmts, entryPath, res)
	return m, manifest, nil
}

// printDiagnostics merges errors and warnings into one sorted bag and
// renders it with internal/diagfmt, colorized if the terminal supports it.
func printDiagnostics(cmd *cobra.Command, errs, warnings *diag.Bag) {
	bag := diag.NewBag()
	bag.Merge(errs)
	bag.Merge(warnings)
	if bag.Len() == 0 {
		return
	}
	bag.Sort()
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, diagfmt.PrettyOpts{Color: wantColor(cmd)})
}

// Command chronlang is the CLI front end for the sound-change engine: it
// compiles a project, builds point-in-time lexicon snapshots, and browses
// them interactively. Follows the teacher's cmd/surge layout — one file
// per subcommand, persistent flags on the root command.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/conlangtools/chronlang-engine/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "chronlang",
	Short: "Chronlang sound-change engine and toolchain",
	Long:  "Chronlang simulates historical sound change across a diachronic language tree.",
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// wantColor resolves the --color flag against whether stdout is a
// terminal, for commands that shell out to internal/diagfmt.
func wantColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "fcmat",
	Short: "Inspect, edit and format FreeCAD material cards",
	Long: `Fcmat works with FreeCAD material cards (.FCMat files): a restricted,
YAML-looking text format of nested sections and double-quoted string
values.

It can create cards, read and write single properties, canonicalize
formatting the way gofmt does for Go source, validate whole directories,
export cards as YAML, and resolve a card's inheritance chain against a
material library.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
			color.NoColor = true
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// cliLogger reports skipped cards and similar conditions on stderr
// without the informational chatter of the library's default logger.
func cliLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

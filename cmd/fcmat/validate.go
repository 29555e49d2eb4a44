package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	fcmat "github.com/cadforge/go-fcmat"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check material cards for parse errors",
	Long: `Parse each file and report whether it is a well-formed material card.
The exit status is non-zero when any file fails.

Examples:
  fcmat validate Steel.FCMat
  fcmat validate materials/*.FCMat`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateFiles(os.Stdout, args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateFiles(out io.Writer, paths []string) error {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	failed := 0
	for _, path := range paths {
		if _, err := fcmat.Load(path); err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", red("✗"), path, err)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", green("✓"), path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(paths))
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cadforge/go-fcmat/library"
)

var listFlags struct {
	dirs []string
}

var listCmd = &cobra.Command{
	Use:   "list --dir DIR",
	Short: "List the cards in a material library",
	Long: `Scan one or more library directories and print every material card
found, sorted by name. Unparsable cards are reported on stderr and
skipped.

Examples:
  fcmat list --dir materials/
  fcmat list --dir materials/ --dir ~/.local/share/FreeCAD/Material`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCards(os.Stdout, listFlags.dirs)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringArrayVar(&listFlags.dirs, "dir", nil, "library directory to scan (repeatable)")
	_ = listCmd.MarkFlagRequired("dir")
}

func listCards(out io.Writer, dirs []string) error {
	lib := library.New(cliLogger())
	if err := lib.Scan(dirs...); err != nil {
		return err
	}

	for _, card := range lib.Cards() {
		fmt.Fprintf(out, "%-36s  %-24s  %s\n", card.UUID, card.Name, card.Path)
	}
	return nil
}

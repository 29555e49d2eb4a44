package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	fcmat "github.com/cadforge/go-fcmat"
	"github.com/cadforge/go-fcmat/library"
)

var resolveFlags struct {
	dirs []string
}

var resolveCmd = &cobra.Command{
	Use:   "resolve --dir DIR ID",
	Short: "Flatten a card's inheritance chain",
	Long: `Resolve a material card against a library: follow its Inherits section
to parent cards, merge them parents-first so the card's own values win,
and print the flattened card. ID is a UUID or a card name.

Examples:
  fcmat resolve --dir materials/ 9003de76-a6ba-4a8e-8d94-2acda7cd40b2
  fcmat resolve --dir materials/ "Aluminum 6061"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return resolveCard(os.Stdout, resolveFlags.dirs, args[0])
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringArrayVar(&resolveFlags.dirs, "dir", nil, "library directory to scan (repeatable)")
	_ = resolveCmd.MarkFlagRequired("dir")
}

func resolveCard(out io.Writer, dirs []string, id string) error {
	lib := library.New(cliLogger())
	if err := lib.Scan(dirs...); err != nil {
		return err
	}

	// Accept a card name wherever a UUID is expected.
	if _, ok := lib.ByUUID(id); !ok {
		if card, ok := lib.ByName(id); ok {
			id = card.UUID
		}
	}

	resolved, err := lib.Resolve(id)
	if err != nil {
		return err
	}
	data, err := fcmat.Marshal(resolved)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	fcmat "github.com/cadforge/go-fcmat"
)

var newFlags struct {
	output  string
	author  string
	license string
	uuid    string
}

var newCmd = &cobra.Command{
	Use:   "new NAME",
	Short: "Create a material card skeleton",
	Long: `Create a material card with a General section holding a fresh UUID,
the given name, and a license.

Examples:
  # Print a card to stdout
  fcmat new "Aluminum 6061"

  # Write a card with authorship metadata
  fcmat new "Aluminum 6061" --author "Jane Doe" --license "CC-BY-4.0" -o Aluminum6061.FCMat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newCard(os.Stdout, args[0])
	},
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newFlags.output, "output", "o", "", "write the card to a file instead of stdout")
	newCmd.Flags().StringVar(&newFlags.author, "author", "", "author recorded in the General section")
	newCmd.Flags().StringVar(&newFlags.license, "license", "", "license recorded in the General section")
	newCmd.Flags().StringVar(&newFlags.uuid, "uuid", "", "pin the card UUID instead of generating one")
}

func newCard(out io.Writer, name string) error {
	var opts []fcmat.MaterialOption
	if newFlags.author != "" {
		opts = append(opts, fcmat.WithAuthor(newFlags.author))
	}
	if newFlags.license != "" {
		opts = append(opts, fcmat.WithLicense(newFlags.license))
	}
	if newFlags.uuid != "" {
		id, err := uuid.Parse(newFlags.uuid)
		if err != nil {
			return fmt.Errorf("invalid --uuid: %w", err)
		}
		opts = append(opts, fcmat.WithUUID(id))
	}

	m := fcmat.NewMaterial(name, opts...)

	if newFlags.output != "" {
		return fcmat.Save(newFlags.output, m)
	}
	data, err := fcmat.Marshal(m)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

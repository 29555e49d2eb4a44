package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	fcmat "github.com/cadforge/go-fcmat"
)

var getFlags struct {
	fallback string
}

var getCmd = &cobra.Command{
	Use:   "get FILE SECTION KEY",
	Short: "Print a single property value",
	Long: `Print the value of one property from a material card.

Without --default a missing section or key is an error; with it the
default is printed instead.

Examples:
  fcmat get Steel.FCMat Mechanical Density
  fcmat get Steel.FCMat Mechanical Hardness --default "unknown"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return getValue(os.Stdout, args[0], args[1], args[2], getFlags.fallback, cmd.Flags().Changed("default"))
	},
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVar(&getFlags.fallback, "default", "", "value to print when the property is missing")
}

func getValue(out io.Writer, path, section, key, fallback string, haveFallback bool) error {
	m, err := fcmat.Load(path)
	if err != nil {
		return err
	}

	sec, err := m.Section(section)
	if err != nil {
		if haveFallback && errors.Is(err, fcmat.ErrNotFound) {
			fmt.Fprintln(out, fallback)
			return nil
		}
		return err
	}

	node, ok := sec.Get(key)
	if !ok {
		if haveFallback {
			fmt.Fprintln(out, fallback)
			return nil
		}
		return fmt.Errorf("%s: no key %q in section %q", path, key, section)
	}
	value, ok := node.(fcmat.Value)
	if !ok {
		return fmt.Errorf("%s: %s/%s is a section, not a value", path, section, key)
	}

	fmt.Fprintln(out, value)
	return nil
}

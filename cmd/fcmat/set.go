package main

import (
	"github.com/spf13/cobra"

	fcmat "github.com/cadforge/go-fcmat"
)

var setCmd = &cobra.Command{
	Use:   "set FILE SECTION KEY VALUE",
	Short: "Set a single property value",
	Long: `Set the value of one property in a material card and write the card
back in canonical form. The section is created when it does not exist.

Examples:
  fcmat set Steel.FCMat Mechanical Density "7900 kg/m^3"
  fcmat set Steel.FCMat Appearance DiffuseColor "(0.5, 0.5, 0.5, 1.0)"`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setValue(args[0], args[1], args[2], args[3])
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func setValue(path, section, key, value string) error {
	m, err := fcmat.Load(path)
	if err != nil {
		return err
	}
	m.SetValue(section, key, value)
	return fcmat.Save(path, m)
}

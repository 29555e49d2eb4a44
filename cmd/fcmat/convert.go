package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	fcmat "github.com/cadforge/go-fcmat"
)

var convertFlags struct {
	output string
}

var convertCmd = &cobra.Command{
	Use:   "convert FILE",
	Short: "Export a material card as YAML",
	Long: `Parse a material card and print it as YAML, preserving section and key
order. All values stay double-quoted strings.

Examples:
  fcmat convert Steel.FCMat
  fcmat convert Steel.FCMat -o Steel.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertCard(os.Stdout, args[0])
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertFlags.output, "output", "o", "", "write YAML to a file instead of stdout")
}

func convertCard(out io.Writer, path string) error {
	m, err := fcmat.Load(path)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if convertFlags.output != "" {
		return os.WriteFile(convertFlags.output, data, 0o644)
	}
	_, err = out.Write(data)
	return err
}

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	fcmat "github.com/cadforge/go-fcmat"
)

var fmtFlags struct {
	write bool
	diff  bool
	list  bool
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] FILE...",
	Short: "Canonicalize material card formatting",
	Long: `Reformat material cards into canonical form: comments and blank lines
dropped, two-space indentation, every value double-quoted, LF line
endings.

By default the formatted text is printed to stdout. With -w the files
are rewritten in place; with -d a colored line diff is printed instead
and the command exits non-zero when any file is not canonical; with -l
only the names of non-canonical files are printed.

Examples:
  fcmat fmt Steel.FCMat
  fcmat fmt -w materials/*.FCMat
  fcmat fmt -d Steel.FCMat
  fcmat fmt -l materials/*.FCMat`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return formatFiles(os.Stdout, args)
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtFlags.write, "write", "w", false, "write results back to the source files")
	fmtCmd.Flags().BoolVarP(&fmtFlags.diff, "diff", "d", false, "print diffs instead of the formatted text")
	fmtCmd.Flags().BoolVarP(&fmtFlags.list, "list", "l", false, "list files whose formatting differs")
}

func formatFiles(out io.Writer, paths []string) error {
	dirty := 0
	for _, path := range paths {
		changed, err := formatOne(out, path)
		if err != nil {
			return err
		}
		if changed {
			dirty++
		}
	}
	if fmtFlags.diff && !fmtFlags.write && dirty > 0 {
		return fmt.Errorf("%d of %d files are not canonically formatted", dirty, len(paths))
	}
	return nil
}

func formatOne(out io.Writer, path string) (changed bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	m, err := fcmat.Parse(data)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	formatted, err := fcmat.Marshal(m)
	if err != nil {
		return false, err
	}
	changed = !bytes.Equal(data, formatted)

	if changed && fmtFlags.list {
		fmt.Fprintln(out, path)
	}
	if changed && fmtFlags.diff {
		writeDiff(out, path, string(data), string(formatted))
	}
	if fmtFlags.write {
		if changed {
			if err := os.WriteFile(path, formatted, 0o644); err != nil {
				return false, err
			}
		}
	} else if !fmtFlags.diff && !fmtFlags.list {
		if _, err := out.Write(formatted); err != nil {
			return false, err
		}
	}
	return changed, nil
}

// writeDiff prints a line diff between the on-disk and canonical text.
func writeDiff(out io.Writer, path, before, after string) {
	dmp := diffmatchpatch.New()
	src, dst, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(src, dst, false), lineArray)

	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintf(out, "--- %s (on disk)\n", path)
	fmt.Fprintf(out, "+++ %s (formatted)\n", path)
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				fmt.Fprintln(out, red("-"+line))
			case diffmatchpatch.DiffInsert:
				fmt.Fprintln(out, green("+"+line))
			default:
				fmt.Fprintln(out, " "+line)
			}
		}
	}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

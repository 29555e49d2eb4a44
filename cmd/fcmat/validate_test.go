package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestValidateFiles(t *testing.T) {
	color.NoColor = true
	good := writeTestFile(t, "Good.FCMat", canonicalCard)
	bad := writeTestFile(t, "Bad.FCMat", "not a card\n")

	t.Run("All valid", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, validateFiles(&out, []string{good}))
		require.Equal(t, "✓ "+good+"\n", out.String())
	})

	t.Run("Mixed results", func(t *testing.T) {
		var out bytes.Buffer
		err := validateFiles(&out, []string{good, bad})
		require.EqualError(t, err, "1 of 2 files failed validation")
		require.Contains(t, out.String(), "✓ "+good)
		require.Contains(t, out.String(), "✗ "+bad+": fcmat: line 1:")
	})
}

func TestConvertCard(t *testing.T) {
	path := writeTestFile(t, "Steel.FCMat", canonicalCard)
	convertFlags.output = ""

	var out bytes.Buffer
	require.NoError(t, convertCard(&out, path))
	expected := "General:\n" +
		"    Name: \"Steel\"\n" +
		"Mechanical:\n" +
		"    Density: \"7900 kg/m^3\"\n"
	require.Equal(t, expected, out.String())

	t.Run("To file", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "Steel.yaml")
		convertFlags.output = target
		defer func() { convertFlags.output = "" }()

		var out bytes.Buffer
		require.NoError(t, convertCard(&out, path))
		require.Empty(t, out.String())

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		require.Equal(t, expected, string(data))
	})

	t.Run("Invalid card", func(t *testing.T) {
		bad := writeTestFile(t, "Bad.FCMat", "nope\n")
		var out bytes.Buffer
		require.Error(t, convertCard(&out, bad))
	})
}

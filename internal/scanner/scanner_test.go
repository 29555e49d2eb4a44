package scanner_test

import (
	"testing"

	"github.com/cadforge/go-fcmat/internal/scanner"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	input := "---\nGeneral:\n  Name: \"Aluminum\"\n  UUID: \"abc\"\nMechanical:\n"
	lines, err := scanner.Scan([]byte(input))
	require.NoError(t, err)

	expected := []scanner.Line{
		{Num: 2, Indent: 0, Text: "General:"},
		{Num: 3, Indent: 2, Text: `Name: "Aluminum"`},
		{Num: 4, Indent: 2, Text: `UUID: "abc"`},
		{Num: 5, Indent: 0, Text: "Mechanical:"},
	}
	require.Equal(t, expected, lines)
}

func TestScan_DropsBlanksAndComments(t *testing.T) {
	input := "# header comment\n\n---\n# about General\nGeneral:\n\n  # indented comment\n  Name: \"X\"\n   # oddly indented comment\n\t# tab comment\n"
	lines, err := scanner.Scan([]byte(input))
	require.NoError(t, err)

	// Line numbers count the dropped lines too.
	expected := []scanner.Line{
		{Num: 5, Indent: 0, Text: "General:"},
		{Num: 8, Indent: 2, Text: `Name: "X"`},
	}
	require.Equal(t, expected, lines)
}

func TestScan_ByteOrderMark(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte("---\nGeneral:\n")...)
	lines, err := scanner.Scan(withBOM)
	require.NoError(t, err)

	plain, err := scanner.Scan([]byte("---\nGeneral:\n"))
	require.NoError(t, err)
	require.Equal(t, plain, lines)
}

func TestScan_CRLF(t *testing.T) {
	input := "---\r\nGeneral:\r\n  Name: \"X\"\r\n"
	lines, err := scanner.Scan([]byte(input))
	require.NoError(t, err)

	expected := []scanner.Line{
		{Num: 2, Indent: 0, Text: "General:"},
		{Num: 3, Indent: 2, Text: `Name: "X"`},
	}
	require.Equal(t, expected, lines)
}

func TestScan_MarkerOnly(t *testing.T) {
	for _, input := range []string{"---\n", "---"} {
		lines, err := scanner.Scan([]byte(input))
		require.NoError(t, err, "input %q", input)
		require.Empty(t, lines, "input %q", input)
	}
}

func TestScan_Errors(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectedLine int
		expectedMsg  string
	}{
		{
			name:         "Empty input",
			input:        "",
			expectedLine: 1,
			expectedMsg:  `missing document start marker "---"`,
		},
		{
			name:         "Only comments",
			input:        "# a\n# b\n",
			expectedLine: 1,
			expectedMsg:  `missing document start marker "---"`,
		},
		{
			name:         "Content before marker",
			input:        "General:\n---\n",
			expectedLine: 1,
			expectedMsg:  `missing document start marker "---"`,
		},
		{
			name:         "Marker with trailing content",
			input:        "--- document\nGeneral:\n",
			expectedLine: 1,
			expectedMsg:  `missing document start marker "---"`,
		},
		{
			name:         "Indented marker",
			input:        "  ---\nGeneral:\n",
			expectedLine: 1,
			expectedMsg:  `missing document start marker "---"`,
		},
		{
			name:         "Tab indentation",
			input:        "---\nGeneral:\n\tName: \"X\"\n",
			expectedLine: 3,
			expectedMsg:  "tab character in indentation",
		},
		{
			name:         "Tab after spaces",
			input:        "---\nGeneral:\n  \tName: \"X\"\n",
			expectedLine: 3,
			expectedMsg:  "tab character in indentation",
		},
		{
			name:         "Odd indentation",
			input:        "---\nGeneral:\n   Name: \"X\"\n",
			expectedLine: 3,
			expectedMsg:  "indentation of 3 spaces is not a multiple of 2",
		},
		{
			name:         "Single space indent",
			input:        "---\n General:\n",
			expectedLine: 2,
			expectedMsg:  "indentation of 1 spaces is not a multiple of 2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scanner.Scan([]byte(tc.input))
			require.Error(t, err)

			var se *scanner.Error
			require.ErrorAs(t, err, &se)
			require.Equal(t, tc.expectedLine, se.Line)
			require.Equal(t, tc.expectedMsg, se.Msg)
		})
	}
}

package fcmat_test

import (
	"testing"

	"github.com/cadforge/go-fcmat"
	"github.com/stretchr/testify/require"
)

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectedLine int
		expectedErr  string
	}{
		{
			name:         "Missing document start marker",
			input:        "General:\n  Name: \"X\"\n",
			expectedLine: 1,
			expectedErr:  `fcmat: line 1: missing document start marker "---"`,
		},
		{
			name:         "Empty input",
			input:        "",
			expectedLine: 1,
			expectedErr:  `fcmat: line 1: missing document start marker "---"`,
		},
		{
			name:         "Marker with trailing content",
			input:        "--- materials\nGeneral:\n",
			expectedLine: 1,
			expectedErr:  `fcmat: line 1: missing document start marker "---"`,
		},
		{
			name:         "Tab indentation",
			input:        "---\nGeneral:\n\tName: \"X\"\n",
			expectedLine: 3,
			expectedErr:  "fcmat: line 3: tab character in indentation",
		},
		{
			name:         "Tab after spaces",
			input:        "---\nGeneral:\n  \tName: \"X\"\n",
			expectedLine: 3,
			expectedErr:  "fcmat: line 3: tab character in indentation",
		},
		{
			name:         "Odd indentation",
			input:        "---\nGeneral:\n   Name: \"X\"\n",
			expectedLine: 3,
			expectedErr:  "fcmat: line 3: indentation of 3 spaces is not a multiple of 2",
		},
		{
			name:         "Indentation skips a level",
			input:        "---\nGeneral:\n    Name: \"X\"\n",
			expectedLine: 3,
			expectedErr:  "fcmat: line 3: unexpected indent of 4 spaces (expected at most 2)",
		},
		{
			name:         "First entry indented",
			input:        "---\n  Name: \"X\"\n",
			expectedLine: 2,
			expectedErr:  "fcmat: line 2: unexpected indent of 2 spaces (expected at most 0)",
		},
		{
			name:         "Nesting under a leaf",
			input:        "---\nName: \"X\"\n  UUID: \"Y\"\n",
			expectedLine: 3,
			expectedErr:  "fcmat: line 3: unexpected indent of 2 spaces (expected at most 0)",
		},
		{
			name:         "Missing colon",
			input:        "---\nGeneral\n",
			expectedLine: 2,
			expectedErr:  `fcmat: line 2: missing ":" separator in "General"`,
		},
		{
			name:         "Second document marker",
			input:        "---\nGeneral:\n---\nOther:\n",
			expectedLine: 3,
			expectedErr:  `fcmat: line 3: missing ":" separator in "---"`,
		},
		{
			name:         "Empty key",
			input:        "---\n: \"X\"\n",
			expectedLine: 2,
			expectedErr:  `fcmat: line 2: empty key in ": \"X\""`,
		},
		{
			name:         "Duplicate key in section",
			input:        "---\nGeneral:\n  Name: \"X\"\n  Name: \"Y\"\n",
			expectedLine: 4,
			expectedErr:  `fcmat: line 4: duplicate key "Name"`,
		},
		{
			name:         "Duplicate section at top level",
			input:        "---\nGeneral:\n  Name: \"X\"\nGeneral:\n",
			expectedLine: 4,
			expectedErr:  `fcmat: line 4: duplicate key "General"`,
		},
		{
			name:         "Unquoted value",
			input:        "---\nGeneral:\n  Name: Aluminum\n",
			expectedLine: 3,
			expectedErr:  `fcmat: line 3: value for key "Name": value must be double-quoted`,
		},
		{
			name:         "Unterminated value",
			input:        "---\nGeneral:\n  Name: \"Aluminum\n",
			expectedLine: 3,
			expectedErr:  `fcmat: line 3: value for key "Name": unterminated quoted value`,
		},
		{
			name:         "Inline comment after value",
			input:        "---\nGeneral:\n  Name: \"X\" # soft metal\n",
			expectedLine: 3,
			expectedErr:  `fcmat: line 3: value for key "Name": unexpected content after closing quote`,
		},
		{
			name:         "Line numbers count dropped lines",
			input:        "# header\n\n---\n\n# comment\nGeneral:\n\n  Name: Aluminum\n",
			expectedLine: 8,
			expectedErr:  `fcmat: line 8: value for key "Name": value must be double-quoted`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := fcmat.ParseString(tc.input)
			require.Error(t, err)
			require.Nil(t, m, "a malformed document must not yield a partial tree")
			require.EqualError(t, err, tc.expectedErr)

			// Every parse failure matches the ErrParse sentinel and
			// exposes its position through *ParseError.
			require.ErrorIs(t, err, fcmat.ErrParse)
			var pe *fcmat.ParseError
			require.ErrorAs(t, err, &pe)
			require.Equal(t, tc.expectedLine, pe.Line)
		})
	}
}

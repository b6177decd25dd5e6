package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNames(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "comments and blank lines are dropped",
			content: "# comment\nAlice\n\nBob\n",
			want:    []string{"Alice", "Bob"},
		},
		{
			name:    "lines are trimmed",
			content: "  Alice  \n\tBob\t\n",
			want:    []string{"Alice", "Bob"},
		},
		{
			name:    "indented comment",
			content: "   # not a name\nCarl",
			want:    []string{"Carl"},
		},
		{
			name:    "whitespace only lines",
			content: "   \n\t\nDora",
			want:    []string{"Dora"},
		},
		{
			name:    "hash inside a name is kept",
			content: "C#\n",
			want:    []string{"C#"},
		},
		{
			name:    "duplicates keep their positions",
			content: "Eve\nEve\n",
			want:    []string{"Eve", "Eve"},
		},
		{
			name:    "windows line endings",
			content: "Alice\r\nBob\r\n",
			want:    []string{"Alice", "Bob"},
		},
		{
			name:    "bare carriage returns",
			content: "Alice\rBob\r",
			want:    []string{"Alice", "Bob"},
		},
		{
			name:    "unicode line separators",
			content: "Alice\u2028Bob\u0085Carl\fDora",
			want:    []string{"Alice", "Bob", "Carl", "Dora"},
		},
		{
			name:    "very long line keeps later names",
			content: "Alice\n" + strings.Repeat("x", 2<<20) + "\nBob\nCarl\n",
			want:    []string{"Alice", strings.Repeat("x", 2<<20), "Bob", "Carl"},
		},
		{
			name:    "empty file",
			content: "",
			want:    []string{},
		},
		{
			name:    "decomposed umlaut is composed",
			content: "Jo\u0308rg\n",
			want:    []string{"J\u00f6rg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNames(tt.content))
		})
	}
}

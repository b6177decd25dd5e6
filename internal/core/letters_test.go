package core

import "testing"

func TestNeedsOffset(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "no large letters", input: "Anna", want: true},
		{name: "ascenders only", input: "Bob", want: true},
		{name: "ascender t and l", input: "Alte", want: true},
		{name: "descender y", input: "Guy", want: false},
		{name: "descender g", input: "Greg", want: false},
		{name: "every descender", input: "gjpqy", want: false},
		{name: "uppercase descender letters are not checked", input: "GJPQY", want: true},
		{name: "empty name", input: "", want: true},
		{name: "umlauts", input: "Jörg", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsOffset(tt.input); got != tt.want {
				t.Errorf("NeedsOffset(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLetterSets(t *testing.T) {
	if LettersLarger != "gjpqybdhklt" {
		t.Errorf("LettersLarger = %q", LettersLarger)
	}

	if !HasAscender("Ida") {
		t.Error("expected Ida to have an ascender")
	}
	if HasAscender("Guy") {
		t.Error("expected Guy to have no ascender")
	}
}

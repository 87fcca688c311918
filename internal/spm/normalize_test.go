package spm

import (
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ends     []int
	}{
		{"simple word", "Hello", "▁Hello", []int{0, 1, 2, 3, 4, 5}},
		{"two words", "Hi yo", "▁Hi▁yo", []int{0, 1, 2, 3, 4, 5}},
		{"extra spaces", "  ab  ", "▁ab", []int{2, 3, 4}},
		{"multibyte", "қа", "▁қа", []int{0, 2, 4}},
		{"empty string", "", "", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runes, ends := normalize(tc.input)
			if got := string(runes); got != tc.expected {
				t.Errorf("normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
			if !slices.Equal(ends, tc.ends) {
				t.Errorf("normalize(%q) ends = %v, want %v", tc.input, ends, tc.ends)
			}
		})
	}
}

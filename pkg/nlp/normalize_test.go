package nlp

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase and trim",
			input:    "  Hello World  ",
			expected: "hello world",
		},
		{
			name:     "punctuation becomes space",
			input:    "what's the warranty, exactly?!",
			expected: "what s the warranty exactly",
		},
		{
			name:     "hyphens survive",
			input:    "BW-TVU-ALX",
			expected: "bw-tvu-alx",
		},
		{
			name:     "whitespace runs collapse",
			input:    "shoe\t\track\n  price",
			expected: "shoe rack price",
		},
		{
			name:     "diacritics fold",
			input:    "Café Table",
			expected: "cafe table",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "only punctuation",
			input:    "?!...",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"BW-TVU-ALX price?",
		"   lots    of   space   ",
		"already normalized text",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("Where's my ORDER #12345?")
	want := []string{"where", "s", "my", "order", "12345"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens() = %v, want %v", got, want)
	}
}

// Package nlp holds the lexical helpers shared by every matcher: text
// normalization, tokenization and edit-distance similarity.
package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases the input, folds diacritics, replaces every rune
// outside [a-z0-9\s-] with a space and collapses whitespace runs.
// Total function: never fails, idempotent.
func Normalize(text string) string {
	text = strings.ToLower(text)

	folded, _, err := transform.String(foldDiacritics, text)
	if err == nil {
		text = folded
	}

	text = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '-':
			return r
		case unicode.IsSpace(r):
			return r
		default:
			return ' '
		}
	}, text)

	return strings.Join(strings.Fields(text), " ")
}

// Tokens splits a message into normalized word tokens.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}

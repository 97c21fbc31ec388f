package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeFirst upper-cases the first rune of text, leaving the rest
// untouched.
func CapitalizeFirst(text string) string {
	if text == "" {
		return text
	}
	r, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(r)) + text[size:]
}

// CapitalizeSentences upper-cases the first rune of the whole text and of
// every part following a ". " delimiter.
func CapitalizeSentences(text string) string {
	if text == "" {
		return text
	}
	parts := strings.Split(text, ". ")
	for i, part := range parts {
		parts[i] = CapitalizeFirst(part)
	}
	return strings.Join(parts, ". ")
}

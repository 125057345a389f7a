package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NotBlank returns true if a string is not empty or contains only whitespace.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MinRunes returns true if a string is greater than or equal to a minimum number of n
func MinRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) >= n
}

// MaxRunes returns true if a string is less than or equal to a maximum number of n
func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

// ValidUTF8 returns true if value is well-formed UTF-8
func ValidUTF8(value string) bool {
	return utf8.ValidString(value)
}

// PrintableRune returns true if value is exactly one printable, non-space rune.
func PrintableRune(value string) bool {
	if !utf8.ValidString(value) || utf8.RuneCountInString(value) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(value)
	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

// In returns true if a value is in a list of values.
func In[T comparable](value T, list ...T) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

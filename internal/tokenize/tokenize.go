// Package tokenize splits text into word tokens.
//
// A token is a maximal run of word characters. Which characters count as
// word characters depends on the Mode: Unicode letters and numbers plus
// underscore, or only their ASCII subset.
package tokenize

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode selects the word-character class used when scanning.
type Mode string

const (
	// ModeUnicode treats any Unicode letter (L*) or number (N*) and the
	// underscore as a word character.
	ModeUnicode Mode = "unicode"

	// ModeASCII restricts word characters to [A-Za-z0-9_].
	ModeASCII Mode = "ascii"
)

// DefaultMode is used when no mode is configured.
const DefaultMode = ModeUnicode

// ParseMode maps a mode name to a Mode (case-insensitive).
// An empty string yields DefaultMode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultMode, nil
	case string(ModeUnicode):
		return ModeUnicode, nil
	case string(ModeASCII):
		return ModeASCII, nil
	default:
		return "", fmt.Errorf("invalid tokenize mode: %q (valid: unicode, ascii)", s)
	}
}

// IsWordRune reports whether r is a word character under mode.
// Unknown modes behave like DefaultMode.
func IsWordRune(r rune, mode Mode) bool {
	if mode == ModeASCII {
		return isASCIIWord(r)
	}
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isASCIIWord(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

// Words returns the maximal runs of word characters in s, in order.
// Every token is a substring of s. The result is never nil.
func Words(s string, mode Mode) []string {
	words := make([]string, 0)
	start := -1
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if IsWordRune(r, mode) {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			words = append(words, s[start:i])
			start = -1
		}
		i += size
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}

// Count returns len(Words(s, mode)) without building the slice.
func Count(s string, mode Mode) int {
	n := 0
	inWord := false
	for _, r := range s {
		if IsWordRune(r, mode) {
			if !inWord {
				n++
				inWord = true
			}
		} else {
			inWord = false
		}
	}
	return n
}

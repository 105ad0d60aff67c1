package vectorize

import (
	"strings"
	"unicode/utf8"

	"github.com/Veraticus/reviewprep/internal/textclean"
)

// DefaultMinTokenLength drops single-character tokens.
const DefaultMinTokenLength = 2

// Analyze lowercases doc and returns its runs of word characters that are at
// least minLen runes long, in order.
func Analyze(doc string, minLen int) []string {
	if minLen <= 0 {
		minLen = DefaultMinTokenLength
	}

	fields := strings.FieldsFunc(strings.ToLower(doc), func(r rune) bool {
		return !textclean.IsWordRune(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

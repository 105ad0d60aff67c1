package textclean

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// maxLemmaPasses bounds how often a lemma is fed back into the lemmatizer
// while looking for a stable form.
const maxLemmaPasses = 4

// Cleaner turns raw text into normalized token strings. It is safe for concurrent use.
type Cleaner struct {
	stopwords  *Stopwords
	lemmatizer Lemmatizer
}

// NewCleaner creates a cleaner over the given resources. A nil lemmatizer means identity.
func NewCleaner(res Resources) *Cleaner {
	lemmatizer := res.Lemmatizer
	if lemmatizer == nil {
		lemmatizer = IdentityLemmatizer{}
	}
	stopwords := res.Stopwords
	if stopwords == nil {
		stopwords = NewStopwords()
	}
	return &Cleaner{stopwords: stopwords, lemmatizer: lemmatizer}
}

// Clean lowercases text, strips punctuation, collapses whitespace, drops stopwords
// and lemmatizes the remaining tokens. Token order is preserved.
func (c *Cleaner) Clean(text string) string {
	tokens := Tokenize(text)

	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if c.stopwords.Contains(token) {
			continue
		}
		for _, part := range c.lemmatize(token) {
			if !c.stopwords.Contains(part) {
				out = append(out, part)
			}
		}
	}

	return strings.Join(out, " ")
}

// CleanValue coerces any value to text before cleaning. nil becomes the empty string.
func (c *Cleaner) CleanValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return c.Clean(t)
	case []byte:
		return c.Clean(string(t))
	default:
		return c.Clean(fmt.Sprint(t))
	}
}

// CleanAll cleans every text in order. progress, when non-nil, is called after each item.
func (c *Cleaner) CleanAll(texts []string, progress func()) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = c.Clean(t)
		if progress != nil {
			progress()
		}
	}
	return out
}

func (c *Cleaner) lemmatize(token string) []string {
	lemma := token
	for range maxLemmaPasses {
		next := strings.Join(Tokenize(c.lemmatizer.Lemma(lemma)), " ")
		if next == lemma || next == "" {
			break
		}
		lemma = next
	}
	return strings.Fields(lemma)
}

// Tokenize normalizes text (NFKC, lowercase), deletes every rune that is neither
// a word character nor whitespace, and splits on whitespace.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	text = norm.NFKC.String(text)
	text = cases.Lower(language.Und).String(text)
	text = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case IsWordRune(r):
			if unicode.IsUpper(r) {
				return unicode.ToLower(r)
			}
			return r
		default:
			return -1
		}
	}, text)
	return strings.Fields(text)
}

// IsWordRune reports whether r is a letter, number or underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

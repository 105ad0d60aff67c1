package textclean

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Lemmatizer reduces a lowercase word to its dictionary base form.
// Words it does not know are returned unchanged.
type Lemmatizer interface {
	Lemma(word string) string
}

// Supported lemmatizer names.
const (
	LemmatizerGolem = "golem"
	LemmatizerNone  = "none"
)

// NewGolemLemmatizer loads the English golem dictionary and restricts it to
// noun inflections, so "cats" becomes "cat" while "amazing" stays as it is.
// Loading takes a noticeable fraction of a second, so callers should do it once.
func NewGolemLemmatizer() (Lemmatizer, error) {
	l, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load English lemma dictionary: %w", err)
	}
	return NounLemmatizer{Inner: l}, nil
}

// irregularPlurals are noun plurals without a trailing s.
var irregularPlurals = map[string]bool{
	"children": true,
	"dice":     true,
	"feet":     true,
	"geese":    true,
	"lice":     true,
	"men":      true,
	"mice":     true,
	"oxen":     true,
	"people":   true,
	"teeth":    true,
	"women":    true,
}

// NounLemmatizer only consults Inner for words shaped like plural nouns.
// Verb and adjective forms ("amazing", "recommended", "better") pass through.
type NounLemmatizer struct {
	Inner Lemmatizer
}

// Lemma returns the singular form of a plural noun, or word unchanged.
func (n NounLemmatizer) Lemma(word string) string {
	if !pluralNoun(word) {
		return word
	}
	return n.Inner.Lemma(word)
}

func pluralNoun(word string) bool {
	if irregularPlurals[word] {
		return true
	}
	if len(word) <= 3 || !strings.HasSuffix(word, "s") {
		return false
	}
	for _, suffix := range []string{"ss", "us", "is"} {
		if strings.HasSuffix(word, suffix) {
			return false
		}
	}
	return true
}

// IdentityLemmatizer leaves words untouched.
type IdentityLemmatizer struct{}

// Lemma returns word unchanged.
func (IdentityLemmatizer) Lemma(word string) string { return word }

// MapLemmatizer looks words up in a fixed table.
type MapLemmatizer map[string]string

// Lemma returns the mapped form of word, or word itself.
func (m MapLemmatizer) Lemma(word string) string {
	if lemma, ok := m[word]; ok {
		return lemma
	}
	return word
}

// NewLemmatizer resolves a lemmatizer by configured name.
func NewLemmatizer(name string) (Lemmatizer, error) {
	switch name {
	case LemmatizerGolem, "":
		return NewGolemLemmatizer()
	case LemmatizerNone:
		return IdentityLemmatizer{}, nil
	default:
		return nil, fmt.Errorf("unknown lemmatizer %q (want %s or %s)", name, LemmatizerGolem, LemmatizerNone)
	}
}

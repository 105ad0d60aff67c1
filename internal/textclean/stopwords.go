package textclean

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

//go:embed english.txt
var englishStopwords string

// Stopwords is an immutable set of words excluded from cleaned text.
type Stopwords struct {
	set map[string]struct{}
}

// NewStopwords builds a set from the given words. Words are lowercased and trimmed.
func NewStopwords(words ...string) *Stopwords {
	s := &Stopwords{set: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s.set[w] = struct{}{}
		}
	}
	return s
}

// EnglishStopwords returns the bundled English stopword list.
func EnglishStopwords() *Stopwords {
	s, err := ParseStopwords(strings.NewReader(englishStopwords))
	if err != nil {
		// The embedded list is plain text; a scan failure means the binary is broken.
		panic(fmt.Sprintf("textclean: bundled stopwords: %v", err))
	}
	return s
}

// ParseStopwords reads one word per line. Blank lines and lines starting with # are skipped.
func ParseStopwords(r io.Reader) (*Stopwords, error) {
	var words []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		w := strings.TrimSpace(scan.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words = append(words, w)
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stopwords: %w", err)
	}
	return NewStopwords(words...), nil
}

// LoadStopwordsFile reads a stopword list from disk.
func LoadStopwordsFile(path string) (*Stopwords, error) {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to open stopwords file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseStopwords(f)
}

// Contains reports whether word is a stopword.
func (s *Stopwords) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[word]
	return ok
}

// Len returns the number of stopwords.
func (s *Stopwords) Len() int {
	if s == nil {
		return 0
	}
	return len(s.set)
}

// Words returns the stopwords in sorted order.
func (s *Stopwords) Words() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.set))
	for w := range s.set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Union returns a new set holding the words of both sets.
func (s *Stopwords) Union(other *Stopwords) *Stopwords {
	return NewStopwords(append(s.Words(), other.Words()...)...)
}

// Filter removes every token present in the set, preserving order.
func (s *Stopwords) Filter(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !s.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

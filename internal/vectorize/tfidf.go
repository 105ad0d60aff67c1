package vectorize

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
)

var (
	// ErrNoDocuments is returned when fitting on an empty corpus.
	ErrNoDocuments = errors.New("no documents to fit")
	// ErrEmptyVocabulary is returned when no document yields a single token.
	ErrEmptyVocabulary = errors.New("empty vocabulary; documents may only contain stopwords")
)

// Options configures vocabulary extraction.
type Options struct {
	// MaxFeatures keeps only the most frequent terms across the corpus. Zero keeps all.
	MaxFeatures int
	// MinTokenLength is the shortest token kept, in runes. Zero means DefaultMinTokenLength.
	MinTokenLength int
}

// Model is a fitted vectorizer: vocabulary, feature order and IDF weights.
// It has no way to be refitted; fit a new Model instead.
type Model struct {
	vocabulary map[string]int
	features   []string
	idf        []float64
	opts       Options
	numDocs    int
}

// Fit learns the vocabulary and document frequencies of docs.
//
// When MaxFeatures is set, terms are ranked by total count over the corpus, ties
// broken alphabetically. Feature indices follow alphabetical term order.
func Fit(docs []string, opts Options) (*Model, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	if opts.MaxFeatures < 0 {
		return nil, fmt.Errorf("max features must not be negative, got %d", opts.MaxFeatures)
	}
	if opts.MinTokenLength <= 0 {
		opts.MinTokenLength = DefaultMinTokenLength
	}

	totals := make(map[string]int)
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, token := range Analyze(doc, opts.MinTokenLength) {
			totals[token]++
			if !seen[token] {
				seen[token] = true
				docFreq[token]++
			}
		}
	}
	if len(totals) == 0 {
		return nil, ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(totals))
	for term := range totals {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	if opts.MaxFeatures > 0 && len(terms) > opts.MaxFeatures {
		sort.SliceStable(terms, func(i, j int) bool {
			return totals[terms[i]] > totals[terms[j]]
		})
		terms = terms[:opts.MaxFeatures]
		sort.Strings(terms)
	}

	n := float64(len(docs))
	model := &Model{
		vocabulary: make(map[string]int, len(terms)),
		features:   terms,
		idf:        make([]float64, len(terms)),
		opts:       opts,
		numDocs:    len(docs),
	}
	for i, term := range terms {
		model.vocabulary[term] = i
		model.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	slog.Debug("Fitted TF-IDF vocabulary",
		"documents", len(docs),
		"distinct_terms", len(totals),
		"features", len(terms))

	return model, nil
}

// FitTransform fits a model on docs and returns it with the matrix of docs.
func FitTransform(docs []string, opts Options) (*Model, *Matrix, error) {
	model, err := Fit(docs, opts)
	if err != nil {
		return nil, nil, err
	}
	return model, model.Transform(docs), nil
}

// Transform maps docs onto the fitted features. Terms outside the vocabulary are ignored.
func (m *Model) Transform(docs []string) *Matrix {
	b := newMatrixBuilder(len(docs), len(m.features))

	for _, doc := range docs {
		counts := make(map[int]int)
		for _, token := range Analyze(doc, m.opts.MinTokenLength) {
			if idx, ok := m.vocabulary[token]; ok {
				counts[idx]++
			}
		}

		indices := make([]int, 0, len(counts))
		for idx := range counts {
			indices = append(indices, idx)
		}
		sort.Ints(indices)

		values := make([]float64, len(indices))
		var norm float64
		for k, idx := range indices {
			values[k] = float64(counts[idx]) * m.idf[idx]
			norm += values[k] * values[k]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for k := range values {
				values[k] /= norm
			}
		}

		b.appendRow(indices, values)
	}

	return b.build()
}

// NumFeatures returns the vocabulary size.
func (m *Model) NumFeatures() int {
	return len(m.features)
}

// NumDocuments returns how many documents the model was fitted on.
func (m *Model) NumDocuments() int {
	return m.numDocs
}

// Options returns the options the model was fitted with.
func (m *Model) Options() Options {
	return m.opts
}

// FeatureNames returns the terms in feature index order.
func (m *Model) FeatureNames() []string {
	return append([]string(nil), m.features...)
}

// Vocabulary returns a copy of the term to feature index mapping.
func (m *Model) Vocabulary() map[string]int {
	out := make(map[string]int, len(m.vocabulary))
	for k, v := range m.vocabulary {
		out[k] = v
	}
	return out
}

// Index returns the feature index of term.
func (m *Model) Index(term string) (int, bool) {
	idx, ok := m.vocabulary[term]
	return idx, ok
}

// IDF returns the inverse document frequency of every feature in index order.
func (m *Model) IDF() []float64 {
	return append([]float64(nil), m.idf...)
}

package textclean

import (
	"fmt"
	"log/slog"
)

// Resources holds the language data a Cleaner needs. It is never mutated after construction.
type Resources struct {
	Stopwords  *Stopwords
	Lemmatizer Lemmatizer
}

// ResourceOptions selects which language resources to load.
type ResourceOptions struct {
	// StopwordsFile replaces the bundled English list when set.
	StopwordsFile string
	// ExtraStopwords are added on top of whichever list is in use.
	ExtraStopwords []string
	// Lemmatizer is LemmatizerGolem (default) or LemmatizerNone.
	Lemmatizer string
}

// DefaultResources returns English stopwords with the identity lemmatizer.
// It needs no dictionary load and suits tests and quick runs.
func DefaultResources() Resources {
	return Resources{
		Stopwords:  EnglishStopwords(),
		Lemmatizer: IdentityLemmatizer{},
	}
}

// LoadResources builds Resources from options. Call it once at startup.
func LoadResources(opts ResourceOptions) (Resources, error) {
	stopwords := EnglishStopwords()
	if opts.StopwordsFile != "" {
		loaded, err := LoadStopwordsFile(opts.StopwordsFile)
		if err != nil {
			return Resources{}, err
		}
		stopwords = loaded
	}
	if len(opts.ExtraStopwords) > 0 {
		stopwords = stopwords.Union(NewStopwords(opts.ExtraStopwords...))
	}

	lemmatizer, err := NewLemmatizer(opts.Lemmatizer)
	if err != nil {
		return Resources{}, fmt.Errorf("failed to create lemmatizer: %w", err)
	}

	slog.Debug("Loaded text resources",
		"stopwords", stopwords.Len(),
		"lemmatizer", opts.Lemmatizer)

	return Resources{Stopwords: stopwords, Lemmatizer: lemmatizer}, nil
}

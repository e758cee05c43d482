package sentiment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Garmonik/reviewpulse/internal/domain"
)

// regexp's \b only understands ASCII word characters, so the left word
// boundary is spelled out explicitly to also work for Cyrillic stems.
const wordBoundary = `(?:^|[^\p{L}\p{N}_])`

// Config holds the stem lists the classifier matches against.
// Stems are pattern data, not logic: the vocabulary can be extended
// without touching the matching algorithm.
type Config struct {
	PositiveStems []string
	NegativeStems []string
}

// Classifier assigns a sentiment label via lexical pattern matching.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	positive []*regexp.Regexp
	negative []*regexp.Regexp
}

// NewClassifier compiles the configured stems into boundary-anchored patterns.
func NewClassifier(cfg Config) (*Classifier, error) {
	positive, err := compileStems(cfg.PositiveStems)
	if err != nil {
		return nil, fmt.Errorf("failed to compile positive stems: %w", err)
	}
	negative, err := compileStems(cfg.NegativeStems)
	if err != nil {
		return nil, fmt.Errorf("failed to compile negative stems: %w", err)
	}
	return &Classifier{positive: positive, negative: negative}, nil
}

// Classify lowercases the text and tests the positive patterns first, then the
// negative ones, returning the label of the first list with any match.
// A text matching both lists is labeled positive by documented precedence.
func (c *Classifier) Classify(text string) domain.Sentiment {
	lower := strings.ToLower(text)

	for _, re := range c.positive {
		if re.MatchString(lower) {
			return domain.SentimentPositive
		}
	}
	for _, re := range c.negative {
		if re.MatchString(lower) {
			return domain.SentimentNegative
		}
	}
	return domain.SentimentNeutral
}

func compileStems(stems []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(stems))
	for _, stem := range stems {
		stem = strings.ToLower(strings.TrimSpace(stem))
		if stem == "" {
			continue
		}
		re, err := regexp.Compile(wordBoundary + regexp.QuoteMeta(stem))
		if err != nil {
			return nil, fmt.Errorf("invalid stem %q: %w", stem, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

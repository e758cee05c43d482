package app

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"

	"github.com/Garmonik/reviewpulse/internal/adapter/metrics"
	"github.com/Garmonik/reviewpulse/internal/domain"
	"github.com/Garmonik/reviewpulse/internal/sanitize"
)

// Classifier assigns a sentiment label to plain text.
type Classifier interface {
	Classify(text string) domain.Sentiment
}

// Service implements domain.ReviewService.
type Service struct {
	reviews    domain.ReviewRepository
	classifier Classifier
	clock      clockwork.Clock
	maxLength  int
}

// NewService creates the application layer service. maxLength bounds the
// accepted review size in runes.
func NewService(reviews domain.ReviewRepository, classifier Classifier, clock clockwork.Clock, maxLength int) *Service {
	return &Service{
		reviews:    reviews,
		classifier: classifier,
		clock:      clock,
		maxLength:  maxLength,
	}
}

// CreateReview validates and sanitizes the raw text, classifies the sanitized
// text, and persists exactly one record. The returned review is the stored
// representation.
func (s *Service) CreateReview(ctx context.Context, rawText string) (*domain.Review, error) {
	trimmed := strings.TrimSpace(rawText)
	if trimmed == "" {
		return nil, domain.ErrEmptyReviewText
	}
	if utf8.RuneCountInString(trimmed) > s.maxLength {
		return nil, domain.ErrReviewTextTooLong
	}

	// Stripping markup can leave nothing behind ("<b></b>"); reject that too,
	// persisted reviews are never empty.
	text := strings.TrimSpace(sanitize.Clean(trimmed))
	if text == "" {
		return nil, domain.ErrEmptyReviewText
	}

	label := s.classifier.Classify(text)
	// Postgres keeps microseconds; truncate so the representation echoed on
	// create matches what a later read returns.
	createdAt := s.clock.Now().UTC().Truncate(time.Microsecond)

	id, err := s.reviews.Insert(ctx, text, label, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}

	metrics.ReviewsCreatedTotal.WithLabelValues(string(label)).Inc()

	return &domain.Review{
		ID:        id,
		Text:      text,
		Sentiment: label,
		CreatedAt: createdAt,
	}, nil
}

// ListReviews returns stored reviews ordered by ascending ID, optionally
// filtered by sentiment. Filter validation happens at the handler boundary.
func (s *Service) ListReviews(ctx context.Context, filter *domain.Sentiment) ([]domain.Review, error) {
	reviews, err := s.reviews.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

package domain

import (
	"context"
	"time"
)

// Sentiment is the closed label set assigned to reviews.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// ParseSentiment maps a raw string onto the closed label set.
// Unknown values return ErrUnknownSentiment, never a silent fallback.
func ParseSentiment(raw string) (Sentiment, error) {
	switch Sentiment(raw) {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return Sentiment(raw), nil
	default:
		return "", ErrUnknownSentiment
	}
}

// Review is a stored review. Reviews are immutable once inserted:
// the sentiment is computed exactly once at creation and never edited.
type Review struct {
	ID        int64     `db:"id"`
	Text      string    `db:"text"`
	Sentiment Sentiment `db:"sentiment"`
	CreatedAt time.Time `db:"created_at"`
}

// ReviewRepository abstracts review persistence.
type ReviewRepository interface {
	// Insert persists a new review and returns its store-assigned ID.
	// IDs are unique and strictly increasing across concurrent inserts,
	// and an ID is only returned once the record is durably visible.
	Insert(ctx context.Context, text string, sentiment Sentiment, createdAt time.Time) (int64, error)

	// List returns reviews ordered by ascending ID. A nil filter returns
	// everything; otherwise only reviews with the given sentiment.
	// An empty result is an empty slice, not an error.
	List(ctx context.Context, filter *Sentiment) ([]Review, error)
}

// ReviewService is the application layer contract the HTTP handlers route through.
type ReviewService interface {
	CreateReview(ctx context.Context, rawText string) (*Review, error)
	ListReviews(ctx context.Context, filter *Sentiment) ([]Review, error)
}

// Package memory provides an in-memory ReviewRepository for tests and
// single-process experiments.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Garmonik/reviewpulse/internal/domain"
)

// ReviewRepo is a mutex-guarded in-memory implementation of
// domain.ReviewRepository. IDs are assigned from a monotonic counter under the
// same lock as the append, so concurrent inserts never share an ID and a
// reader never observes a half-written record.
type ReviewRepo struct {
	mu      sync.Mutex
	nextID  int64
	reviews []domain.Review
}

func NewReviewRepo() *ReviewRepo {
	return &ReviewRepo{nextID: 1}
}

func (r *ReviewRepo) Insert(_ context.Context, text string, sentiment domain.Sentiment, createdAt time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.reviews = append(r.reviews, domain.Review{
		ID:        id,
		Text:      text,
		Sentiment: sentiment,
		CreatedAt: createdAt,
	})
	return id, nil
}

func (r *ReviewRepo) List(_ context.Context, filter *domain.Sentiment) ([]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Insertion order is ID order; copy so callers never alias internal state.
	out := make([]domain.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		if filter != nil && review.Sentiment != *filter {
			continue
		}
		out = append(out, review)
	}
	return out, nil
}

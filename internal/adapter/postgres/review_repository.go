package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Garmonik/reviewpulse/internal/domain"
)

// ReviewRepo implements domain.ReviewRepository on PostgreSQL.
// ID assignment rides the reviews sequence, so concurrent inserts always get
// distinct, strictly increasing IDs, and RETURNING only fires once the row is
// durably written.
type ReviewRepo struct {
	pool *pgxpool.Pool
}

func NewReviewRepo(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pool: pool}
}

func (r *ReviewRepo) Insert(ctx context.Context, text string, sentiment domain.Sentiment, createdAt time.Time) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO reviews (text, sentiment, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, text, string(sentiment), createdAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert review: %w", err)
	}
	return id, nil
}

func (r *ReviewRepo) List(ctx context.Context, filter *domain.Sentiment) ([]domain.Review, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if filter != nil {
		rows, err = r.pool.Query(ctx, `
			SELECT id, text, sentiment, created_at
			FROM reviews
			WHERE sentiment = $1
			ORDER BY id
		`, string(*filter))
	} else {
		rows, err = r.pool.Query(ctx, `
			SELECT id, text, sentiment, created_at
			FROM reviews
			ORDER BY id
		`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.Text, &review.Sentiment, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	return reviews, nil
}

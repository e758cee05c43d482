package httpserver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Garmonik/reviewpulse/internal/domain"
	"github.com/Garmonik/reviewpulse/internal/platform/config"
	apperrors "github.com/Garmonik/reviewpulse/internal/platform/errors"
)

type mockReviewService struct {
	createReviewFn func(ctx context.Context, rawText string) (*domain.Review, error)
	listReviewsFn  func(ctx context.Context, filter *domain.Sentiment) ([]domain.Review, error)
}

func (m *mockReviewService) CreateReview(ctx context.Context, rawText string) (*domain.Review, error) {
	if m.createReviewFn != nil {
		return m.createReviewFn(ctx, rawText)
	}
	return nil, errors.New("not implemented")
}

func (m *mockReviewService) ListReviews(ctx context.Context, filter *domain.Sentiment) ([]domain.Review, error) {
	if m.listReviewsFn != nil {
		return m.listReviewsFn(ctx, filter)
	}
	return []domain.Review{}, nil
}

func newTestServer(t *testing.T, app reviewService) *Server {
	t.Helper()
	cfg := &config.Config{
		AppEnv:             "test",
		Port:               "0",
		MaxReviewLength:    1000,
		RateLimitPerSecond: 1000,
		RateLimitBurst:     1000,
	}
	return NewServer(cfg, app, nil)
}

// callHandler runs a handler through the error middleware so structured
// errors turn into responses, as they do on the real route chain.
func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return apperrors.Middleware()(handler)(c)
}

func testReview() *domain.Review {
	return &domain.Review{
		ID:        1,
		Text:      "Я люблю этот продукт",
		Sentiment: domain.SentimentPositive,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

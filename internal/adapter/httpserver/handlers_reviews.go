package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Garmonik/reviewpulse/internal/domain"
	apperrors "github.com/Garmonik/reviewpulse/internal/platform/errors"
)

type createReviewRequest struct {
	Text string `json:"text"`
}

type reviewResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
	CreatedAt string `json:"created_at"`
}

func toReviewResponse(r domain.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID,
		Text:      r.Text,
		Sentiment: string(r.Sentiment),
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (s *Server) handleCreateReview(c echo.Context) error {
	ctx := c.Request().Context()

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("Invalid request body")
	}

	review, err := s.app.CreateReview(ctx, req.Text)
	if errors.Is(err, domain.ErrEmptyReviewText) || errors.Is(err, domain.ErrReviewTextTooLong) {
		return apperrors.ValidationError("Invalid request body")
	}
	if err != nil {
		return apperrors.InternalError("failed to create review", err)
	}

	if err := c.JSON(http.StatusCreated, toReviewResponse(*review)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleListReviews(c echo.Context) error {
	ctx := c.Request().Context()

	var filter *domain.Sentiment
	if raw := c.QueryParam("sentiment"); raw != "" {
		label, err := domain.ParseSentiment(raw)
		if err != nil {
			return apperrors.ValidationError("Invalid sentiment filter")
		}
		filter = &label
	}

	reviews, err := s.app.ListReviews(ctx, filter)
	if err != nil {
		return apperrors.InternalError("failed to list reviews", err)
	}

	out := make([]reviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = toReviewResponse(review)
	}

	if err := c.JSON(http.StatusOK, out); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

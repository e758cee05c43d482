package domain

import "errors"

var (
	ErrEmptyReviewText   = errors.New("review text is empty")
	ErrReviewTextTooLong = errors.New("review text exceeds maximum length")
	ErrUnknownSentiment  = errors.New("unknown sentiment label")
)

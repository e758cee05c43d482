package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Garmonik/reviewpulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndList(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewReviewRepo(pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	id1, err := repo.Insert(ctx, "Я люблю этот продукт", domain.SentimentPositive, now)
	require.NoError(t, err)
	id2, err := repo.Insert(ctx, "Это плохой продукт", domain.SentimentNegative, now)
	require.NoError(t, err)
	assert.Less(t, id1, id2)

	reviews, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, id1, reviews[0].ID)
	assert.Equal(t, "Я люблю этот продукт", reviews[0].Text)
	assert.Equal(t, domain.SentimentPositive, reviews[0].Sentiment)
	assert.True(t, now.Equal(reviews[0].CreatedAt.UTC()))
}

func TestList_Filtered(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewReviewRepo(pool)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.Insert(ctx, "хорошо", domain.SentimentPositive, now)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, "плохо", domain.SentimentNegative, now)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, "обычно", domain.SentimentNeutral, now)
	require.NoError(t, err)

	for _, label := range []domain.Sentiment{domain.SentimentPositive, domain.SentimentNegative, domain.SentimentNeutral} {
		filter := label
		reviews, err := repo.List(ctx, &filter)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, label, reviews[0].Sentiment)
	}
}

func TestList_Empty(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewReviewRepo(pool)

	reviews, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestInsert_ConcurrentIDsDistinct(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewReviewRepo(pool)
	ctx := context.Background()
	now := time.Now().UTC()

	const n = 50
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := repo.Insert(ctx, "concurrent", domain.SentimentNeutral, now)
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

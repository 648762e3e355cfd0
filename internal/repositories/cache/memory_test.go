package cache

import (
	"context"
	"testing"
	"time"

	"fraudguard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	result := &models.AnalysisResult{
		RequestID:     "req-1",
		TransactionID: "TXN_1",
		Status:        models.StatusDecided,
		Decision:      models.DecisionApproved,
		Confidence:    0.95,
	}

	require.NoError(t, c.SetResult(ctx, "TXN_1", result, time.Minute))

	got, err := c.GetResult(ctx, "TXN_1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *result, *got)

	// The cached copy is detached from the caller's value.
	result.Decision = models.DecisionDeclined
	got, err = c.GetResult(ctx, "TXN_1")
	require.NoError(t, err)
	assert.Equal(t, models.DecisionApproved, got.Decision)
}

func TestMemoryCache_MissIsNilNil(t *testing.T) {
	c := NewMemoryCache()

	got, err := c.GetResult(context.Background(), "TXN_UNSEEN")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	result := &models.AnalysisResult{TransactionID: "TXN_1", Status: models.StatusDecided}
	require.NoError(t, c.SetResult(ctx, "TXN_1", result, -time.Second))

	got, err := c.GetResult(ctx, "TXN_1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

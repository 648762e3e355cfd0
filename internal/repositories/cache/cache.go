// Package cache provides the optional TTL cache the coordinator uses to
// replay decisions for transactions it has already analyzed.
package cache

import (
	"context"
	"time"

	"fraudguard/internal/models"
)

// ResultCache stores completed analysis results by transaction id. A miss is
// (nil, nil); errors are reserved for transport failures.
type ResultCache interface {
	GetResult(ctx context.Context, transactionID string) (*models.AnalysisResult, error)
	SetResult(ctx context.Context, transactionID string, result *models.AnalysisResult, ttl time.Duration) error
}

func resultKey(transactionID string) string {
	return "analysis:" + transactionID
}

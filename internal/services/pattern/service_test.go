package pattern

import (
	"testing"

	"fraudguard/internal/config"
	"fraudguard/internal/models"
	"fraudguard/internal/services/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	est := geo.NewAirTravelEstimator(config.DefaultReferenceData().CityCoordinates)
	return NewService(geo.NewChecker(est))
}

func batchTx(id string, amount float64, location, timestamp string) models.Transaction {
	return models.Transaction{
		TransactionID: id,
		UserID:        "USER_12345",
		Amount:        amount,
		Location:      location,
		Timestamp:     timestamp,
	}
}

func TestAnalyze_HealthyBatch(t *testing.T) {
	s := newTestService()

	txs := []models.Transaction{
		batchTx("TXN_1", 100, "New York, NY", "2024-01-15T10:00:00Z"),
		batchTx("TXN_2", 105, "New York, NY", "2024-01-16T10:00:00Z"),
		batchTx("TXN_3", 103, "New York, NY", "2024-01-17T10:00:00Z"),
	}

	report := s.Analyze(txs, "")

	assert.Equal(t, DefaultAnalysisType, report.AnalysisType)
	assert.Equal(t, 3, report.TransactionCount)
	assert.Empty(t, report.Findings)
	assert.Empty(t, report.Rejected)
	require.NotNil(t, report.Anomaly)
	assert.False(t, report.Anomaly.IsAnomaly)
	assert.Equal(t, 103.0, report.Anomaly.CurrentAmount, "anomaly measures the newest transaction")
}

func TestAnalyze_GeographicImpossibility(t *testing.T) {
	s := newTestService()

	report := s.Analyze([]models.Transaction{
		batchTx("TXN_1", 50, "New York, NY", "2024-01-17T12:00:00Z"),
		batchTx("TXN_2", 75, "Los Angeles, CA", "2024-01-17T12:30:00Z"),
	}, "fraud_patterns")

	require.Len(t, report.Findings, 1)
	assert.False(t, report.Findings[0].Feasible)
	assert.Contains(t, report.Summary, "Found 1 geographic impossibilities")
}

func TestAnalyze_PartialSuccess(t *testing.T) {
	s := newTestService()

	txs := []models.Transaction{
		batchTx("TXN_OK_1", 100, "New York, NY", "2024-01-15T10:00:00Z"),
		batchTx("", 50, "New York, NY", "2024-01-15T11:00:00Z"),             // missing id
		batchTx("TXN_BAD_TS", 50, "New York, NY", "sometime"),               // bad timestamp
		batchTx("TXN_OK_2", 110, "New York, NY", "2024-01-16T10:00:00Z"),
	}

	report := s.Analyze(txs, "fraud_patterns")

	assert.Equal(t, 2, report.TransactionCount, "valid remainder is still analyzed")
	require.Len(t, report.Rejected, 2)
	assert.Equal(t, "", report.Rejected[0].TransactionID)
	assert.Equal(t, "TXN_BAD_TS", report.Rejected[1].TransactionID)
	assert.Contains(t, report.Rejected[1].Reason, "timestamp")
	require.NotNil(t, report.Anomaly)
}

func TestAnalyze_SingleTransactionHasNoBaseline(t *testing.T) {
	s := newTestService()

	report := s.Analyze([]models.Transaction{
		batchTx("TXN_1", 5000, "New York, NY", "2024-01-17T14:00:00Z"),
	}, "fraud_patterns")

	assert.Empty(t, report.Findings)
	require.NotNil(t, report.Anomaly)
	assert.True(t, report.Anomaly.IsAnomaly)
	assert.Equal(t, 0.8, report.Anomaly.AnomalyScore)
}

func TestAnalyze_EmptyBatch(t *testing.T) {
	s := newTestService()

	report := s.Analyze(nil, "fraud_patterns")
	assert.Zero(t, report.TransactionCount)
	assert.Nil(t, report.Anomaly)
	assert.Empty(t, report.Findings)
}

func TestAnalyze_AnomalyUsesChronologicalOrder(t *testing.T) {
	s := newTestService()

	// Newest by timestamp, not by slice position.
	txs := []models.Transaction{
		batchTx("TXN_NEWEST", 9000, "New York, NY", "2024-01-20T10:00:00Z"),
		batchTx("TXN_1", 100, "New York, NY", "2024-01-15T10:00:00Z"),
		batchTx("TXN_2", 102, "New York, NY", "2024-01-16T10:00:00Z"),
		batchTx("TXN_3", 98, "New York, NY", "2024-01-17T10:00:00Z"),
	}

	report := s.Analyze(txs, "fraud_patterns")
	require.NotNil(t, report.Anomaly)
	assert.Equal(t, 9000.0, report.Anomaly.CurrentAmount)
	assert.True(t, report.Anomaly.IsAnomaly)
}

func TestAnalyze_Deterministic(t *testing.T) {
	s := newTestService()
	txs := []models.Transaction{
		batchTx("TXN_1", 100, "New York, NY", "2024-01-15T10:00:00Z"),
		batchTx("TXN_2", 5000, "Los Angeles, CA", "2024-01-15T10:20:00Z"),
	}

	first := s.Analyze(txs, "fraud_patterns")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Analyze(txs, "fraud_patterns"))
	}
}

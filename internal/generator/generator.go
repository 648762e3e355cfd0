// Package generator produces the demo transaction corpus. All randomness in
// the repository lives here, outside the deterministic scoring core.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"fraudguard/internal/models"
)

// Dataset is the generated demo corpus.
type Dataset struct {
	Legitimate []models.Transaction          `json:"legitimate"`
	Suspicious []models.Transaction          `json:"suspicious"`
	Fraudulent []models.Transaction          `json:"fraudulent"`
	Random     []models.Transaction          `json:"random,omitempty"`
	Profiles   map[string]models.UserBaseline `json:"profiles"`
}

// Config controls generation.
type Config struct {
	RandomCount int
	Seed        int64
}

// DefaultConfig returns the default generation settings.
func DefaultConfig() Config {
	return Config{RandomCount: 20, Seed: 42}
}

// Generator builds demo datasets.
type Generator struct {
	rng *rand.Rand
	cfg Config
}

// New builds a generator for the given config. Amounts, categories and
// timestamps are seeded for reproducibility; transaction ids are not.
func New(cfg Config) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(cfg.Seed)), cfg: cfg}
}

// Generate assembles the full corpus: the fixed curated scenarios plus the
// configured number of randomized filler transactions.
func (g *Generator) Generate() Dataset {
	return Dataset{
		Legitimate: Legitimate(),
		Suspicious: Suspicious(),
		Fraudulent: Fraudulent(),
		Random:     g.random(),
		Profiles:   Profiles(),
	}
}

// Legitimate returns everyday transactions that should approve cleanly.
func Legitimate() []models.Transaction {
	return []models.Transaction{
		{
			TransactionID: "TXN_001", UserID: "USER_12345", Amount: 45.67, Currency: "USD",
			Merchant: "Local Grocery Store", MerchantCategory: "grocery",
			Location: "New York, NY", Timestamp: "2024-01-15T14:30:00Z",
			PaymentMethod: "credit_card", CardLastFour: "1234",
			Description: "Weekly grocery shopping",
		},
		{
			TransactionID: "TXN_002", UserID: "USER_12345", Amount: 89.99, Currency: "USD",
			Merchant: "Amazon", MerchantCategory: "online_retail",
			Location: "Seattle, WA", Timestamp: "2024-01-16T10:15:00Z",
			PaymentMethod: "credit_card", CardLastFour: "1234",
			Description: "Online purchase - electronics",
		},
		{
			TransactionID: "TXN_003", UserID: "USER_67890", Amount: 12.50, Currency: "USD",
			Merchant: "Starbucks", MerchantCategory: "restaurant",
			Location: "San Francisco, CA", Timestamp: "2024-01-16T08:45:00Z",
			PaymentMethod: "mobile_pay", CardLastFour: "5678",
			Description: "Coffee and pastry",
		},
	}
}

// Suspicious returns transactions that warrant review.
func Suspicious() []models.Transaction {
	return []models.Transaction{
		{
			TransactionID: "TXN_SUSP_001", UserID: "USER_12345", Amount: 2500.00, Currency: "USD",
			Merchant: "Electronics Mega Store", MerchantCategory: "electronics",
			Location: "Miami, FL", Timestamp: "2024-01-17T23:45:00Z",
			PaymentMethod: "credit_card", CardLastFour: "1234",
			Description: "Large electronics purchase - unusual time",
		},
		{
			TransactionID: "TXN_SUSP_002", UserID: "USER_67890", Amount: 500.00, Currency: "USD",
			Merchant: "Gas Station XYZ", MerchantCategory: "gas_station",
			Location: "Las Vegas, NV", Timestamp: "2024-01-17T03:20:00Z",
			PaymentMethod: "credit_card", CardLastFour: "5678",
			Description: "Unusual gas station amount",
		},
		{
			TransactionID: "TXN_SUSP_003", UserID: "USER_11111", Amount: 1.00, Currency: "USD",
			Merchant: "Online Test Merchant", MerchantCategory: "online_services",
			Location: "Unknown", Timestamp: "2024-01-17T15:30:00Z",
			PaymentMethod: "credit_card", CardLastFour: "9999",
			Description: "Small test transaction",
		},
	}
}

// Fraudulent returns clear fraud scenarios.
func Fraudulent() []models.Transaction {
	return []models.Transaction{
		{
			TransactionID: "TXN_FRAUD_001", UserID: "USER_12345", Amount: 5000.00, Currency: "USD",
			Merchant: "Luxury Goods International", MerchantCategory: "luxury_goods",
			Location: "London, UK", Timestamp: "2024-01-17T04:00:00Z",
			PaymentMethod: "credit_card", CardLastFour: "1234", IsInternational: true,
			Description: "High-value international purchase",
		},
		{
			TransactionID: "TXN_FRAUD_002", UserID: "USER_67890", Amount: 999.99, Currency: "USD",
			Merchant: "Cash Advance Service", MerchantCategory: "cash_advance",
			Location: "Detroit, MI", Timestamp: "2024-01-17T02:15:00Z",
			PaymentMethod: "credit_card", CardLastFour: "5678",
			Description: "Cash advance - unusual pattern",
		},
		{
			TransactionID: "TXN_FRAUD_003", UserID: "USER_22222", Amount: 3500.00, Currency: "USD",
			Merchant: "Cryptocurrency Exchange", MerchantCategory: "cryptocurrency",
			Location: "Unknown", Timestamp: "2024-01-17T01:30:00Z",
			PaymentMethod: "credit_card", CardLastFour: "7777",
			Description: "Large cryptocurrency purchase",
		},
	}
}

// Profiles returns the demo user baselines keyed by user id.
func Profiles() map[string]models.UserBaseline {
	return map[string]models.UserBaseline{
		"USER_12345": {
			AverageSpending:  1200.00,
			TypicalLocations: []string{"New York, NY", "Boston, MA"},
			AccountAgeMonths: 24,
		},
		"USER_67890": {
			AverageSpending:  800.00,
			TypicalLocations: []string{"San Francisco, CA", "Oakland, CA"},
			AccountAgeMonths: 36,
		},
		"USER_11111": {
			AverageSpending:  300.00,
			TypicalLocations: []string{"Chicago, IL"},
			AccountAgeMonths: 2,
		},
		"USER_22222": {
			AverageSpending:  150.00,
			TypicalLocations: []string{"Phoenix, AZ"},
			AccountAgeMonths: 1,
			FraudReports:     1,
		},
	}
}

var (
	randomCategories = []string{"grocery", "restaurant", "gas_station", "online_retail", "electronics"}
	randomLocations  = []string{"New York, NY", "Boston, MA", "Chicago, IL", "Seattle, WA", "Miami, FL"}
	randomMerchants  = []string{"Corner Market", "Downtown Diner", "Fuel Stop", "Web Shop", "Gadget World"}
)

func (g *Generator) random() []models.Transaction {
	if g.cfg.RandomCount <= 0 {
		return nil
	}

	base := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	txs := make([]models.Transaction, 0, g.cfg.RandomCount)
	for i := 0; i < g.cfg.RandomCount; i++ {
		idx := g.rng.Intn(len(randomCategories))
		at := base.Add(time.Duration(g.rng.Intn(7*24)) * time.Hour)
		txs = append(txs, models.Transaction{
			TransactionID:    "TXN_GEN_" + uuid.NewString()[:8],
			UserID:           fmt.Sprintf("USER_%05d", g.rng.Intn(5)+10000),
			Amount:           float64(g.rng.Intn(20000)) / 100,
			Currency:         "USD",
			Merchant:         randomMerchants[idx],
			MerchantCategory: randomCategories[idx],
			Location:         randomLocations[g.rng.Intn(len(randomLocations))],
			Timestamp:        at.Format(time.RFC3339),
			PaymentMethod:    "credit_card",
			CardLastFour:     fmt.Sprintf("%04d", g.rng.Intn(10000)),
		})
	}
	return txs
}

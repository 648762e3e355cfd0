package validation

import (
	"fraudguard/internal/apperrors"
	"fraudguard/internal/models"
)

// ValidateTransaction checks the invariants a transaction must satisfy before
// any evaluator sees it. It returns a validation error naming the offending
// field, or nil.
func ValidateTransaction(tx models.Transaction) error {
	if tx.TransactionID == "" {
		return apperrors.Validation("transaction_id", "transaction id is required")
	}
	if tx.Amount < 0 {
		return apperrors.Validation("amount", "amount must be non-negative")
	}
	if tx.Timestamp == "" {
		return apperrors.Validation("timestamp", "timestamp is required")
	}
	if _, err := tx.Time(); err != nil {
		return apperrors.Validation("timestamp", "timestamp must be a valid RFC 3339 instant")
	}
	return nil
}

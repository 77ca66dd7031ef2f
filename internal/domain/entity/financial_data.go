package entity

import "time"

// FinancialData represents a single financial record on a user's dashboard
// (an account balance, a holding, a budget line, ...).
//
// Value is display-formatted text, not a number; the system performs no
// arithmetic on it.
type FinancialData struct {
	ID             int64          `json:"id"`                       // Sequential identifier assigned by the store.
	UserID         int64          `json:"userId"`                   // The user who owns this record.
	Type           string         `json:"type"`                     // Record type, e.g. "account", "investment", "budget".
	Name           string         `json:"name"`                     // Display name of the record.
	Value          string         `json:"value"`                    // Display-formatted value, e.g. "$12,450.00".
	Category       string         `json:"category,omitempty"`       // Optional grouping category.
	Date           time.Time      `json:"date"`                     // Effective date of the record.
	AdditionalData map[string]any `json:"additionalData,omitempty"` // Optional free-form attributes.
}

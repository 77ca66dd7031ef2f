package usecase

import (
	"context"
	"time"

	"finboard/internal/domain/entity"
)

// CreateFinancialDataInput represents the payload for creating a financial
// record.
type CreateFinancialDataInput struct {
	UserID         int64          `json:"userId" validate:"required"`
	Type           string         `json:"type" validate:"required"`
	Name           string         `json:"name" validate:"required"`
	Value          string         `json:"value" validate:"required"`
	Category       string         `json:"category"`
	Date           time.Time      `json:"date" validate:"required"`
	AdditionalData map[string]any `json:"additionalData"`
}

// UpdateFinancialDataInput represents a partial financial record update.
// Nil fields are left untouched; the field set doubles as the
// mutable-field allow-list.
type UpdateFinancialDataInput struct {
	Type           *string        `json:"type" validate:"omitempty,min=1"`
	Name           *string        `json:"name" validate:"omitempty,min=1"`
	Value          *string        `json:"value" validate:"omitempty,min=1"`
	Category       *string        `json:"category"`
	Date           *time.Time     `json:"date"`
	AdditionalData map[string]any `json:"additionalData"`
}

// FinancialDataUsecase defines the financial record use cases.
type FinancialDataUsecase interface {
	// CreateFinancialData stores a new record.
	CreateFinancialData(ctx context.Context, input *CreateFinancialDataInput) (*entity.FinancialData, error)

	// GetFinancialData retrieves a record by ID.
	GetFinancialData(ctx context.Context, id int64) (*entity.FinancialData, error)

	// ListUserFinancialData retrieves a user's records, optionally
	// filtered by type.
	ListUserFinancialData(ctx context.Context, userID int64, dataType string) ([]*entity.FinancialData, error)

	// UpdateFinancialData applies a partial update to a record.
	UpdateFinancialData(ctx context.Context, id int64, input *UpdateFinancialDataInput) (*entity.FinancialData, error)

	// DeleteFinancialData removes a record by ID.
	DeleteFinancialData(ctx context.Context, id int64) error
}

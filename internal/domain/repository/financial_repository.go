package repository

import (
	"context"
	"time"

	"finboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrFinancialDataNotFound is returned when a financial record is not found.
var ErrFinancialDataNotFound = errors.New("financial data not found")

// FinancialDataPatch lists the financial record fields a partial update may
// touch.
type FinancialDataPatch struct {
	Type           *string
	Name           *string
	Value          *string
	Category       *string
	Date           *time.Time
	AdditionalData map[string]any
}

// FinancialDataRepository defines the interface for financial record store
// operations.
type FinancialDataRepository interface {
	// CreateFinancialData assigns the next sequential ID, inserts the
	// record, and returns the stored value.
	CreateFinancialData(ctx context.Context, data *entity.FinancialData) (*entity.FinancialData, error)

	// FindFinancialDataByID retrieves a record by ID, or
	// ErrFinancialDataNotFound.
	FindFinancialDataByID(ctx context.Context, id int64) (*entity.FinancialData, error)

	// FindFinancialDataByUser retrieves all records owned by userID,
	// additionally filtered by type when dataType is non-empty.
	FindFinancialDataByUser(ctx context.Context, userID int64, dataType string) ([]*entity.FinancialData, error)

	// UpdateFinancialData applies the patch to an existing record and
	// returns the updated value, or ErrFinancialDataNotFound.
	UpdateFinancialData(ctx context.Context, id int64, patch *FinancialDataPatch) (*entity.FinancialData, error)

	// DeleteFinancialData removes a record by ID, or
	// ErrFinancialDataNotFound. Its ID is never reused.
	DeleteFinancialData(ctx context.Context, id int64) error
}

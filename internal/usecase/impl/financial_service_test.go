package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/infra/persistence/memory"
	"finboard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinancialService_CreateAndList(t *testing.T) {
	service := NewFinancialService(memory.NewFinancialDataRepository())
	ctx := context.Background()
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	created, err := service.CreateFinancialData(ctx, &usecase.CreateFinancialDataInput{
		UserID:         1,
		Type:           "investment",
		Name:           "Index fund",
		Value:          "$10,000",
		Category:       "stocks",
		Date:           date,
		AdditionalData: map[string]any{"ticker": "VTI"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	records, err := service.ListUserFinancialData(ctx, 1, "investment")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Index fund", records[0].Name)
	assert.Equal(t, map[string]any{"ticker": "VTI"}, records[0].AdditionalData)
}

func TestFinancialService_UpdateFinancialData(t *testing.T) {
	service := NewFinancialService(memory.NewFinancialDataRepository())
	ctx := context.Background()

	created, err := service.CreateFinancialData(ctx, &usecase.CreateFinancialDataInput{
		UserID: 1,
		Type:   "expense",
		Name:   "Rent",
		Value:  "$1,500",
		Date:   time.Now(),
	})
	require.NoError(t, err)

	value := "$1,600"
	updated, err := service.UpdateFinancialData(ctx, created.ID, &usecase.UpdateFinancialDataInput{Value: &value})
	require.NoError(t, err)
	assert.Equal(t, "$1,600", updated.Value)
	assert.Equal(t, "Rent", updated.Name)
}

func TestFinancialService_UpdateFinancialData_NotFound(t *testing.T) {
	service := NewFinancialService(memory.NewFinancialDataRepository())

	value := "$1"
	_, err := service.UpdateFinancialData(context.Background(), 42, &usecase.UpdateFinancialDataInput{Value: &value})
	assert.ErrorIs(t, err, domainerrors.ErrFinancialDataNotFound)
}

func TestFinancialService_DeleteFinancialData(t *testing.T) {
	service := NewFinancialService(memory.NewFinancialDataRepository())
	ctx := context.Background()

	created, err := service.CreateFinancialData(ctx, &usecase.CreateFinancialDataInput{
		UserID: 1,
		Type:   "expense",
		Name:   "Rent",
		Value:  "$1,500",
		Date:   time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteFinancialData(ctx, created.ID))
	assert.ErrorIs(t, service.DeleteFinancialData(ctx, created.ID), domainerrors.ErrFinancialDataNotFound)

	_, err = service.GetFinancialData(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrFinancialDataNotFound)
}

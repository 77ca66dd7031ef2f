package impl

import (
	"context"
	"fmt"

	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/repository"
	"finboard/internal/usecase"

	"github.com/pkg/errors"
)

type financialService struct {
	financialRepo repository.FinancialDataRepository
}

// NewFinancialService creates a new financial record service instance
func NewFinancialService(financialRepo repository.FinancialDataRepository) usecase.FinancialDataUsecase {
	return &financialService{financialRepo: financialRepo}
}

// CreateFinancialData stores a new financial record.
func (s *financialService) CreateFinancialData(ctx context.Context, input *usecase.CreateFinancialDataInput) (*entity.FinancialData, error) {
	data := &entity.FinancialData{
		UserID:         input.UserID,
		Type:           input.Type,
		Name:           input.Name,
		Value:          input.Value,
		Category:       input.Category,
		Date:           input.Date,
		AdditionalData: input.AdditionalData,
	}

	created, err := s.financialRepo.CreateFinancialData(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create financial data: %w", err)
	}

	return created, nil
}

// GetFinancialData retrieves a record by ID.
func (s *financialService) GetFinancialData(ctx context.Context, id int64) (*entity.FinancialData, error) {
	data, err := s.financialRepo.FindFinancialDataByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFinancialDataNotFound) {
			return nil, domainerrors.ErrFinancialDataNotFound
		}

		return nil, fmt.Errorf("failed to find financial data by ID: %w", err)
	}

	return data, nil
}

// ListUserFinancialData retrieves a user's records, optionally filtered by
// type.
func (s *financialService) ListUserFinancialData(ctx context.Context, userID int64, dataType string) ([]*entity.FinancialData, error) {
	data, err := s.financialRepo.FindFinancialDataByUser(ctx, userID, dataType)
	if err != nil {
		return nil, fmt.Errorf("failed to find financial data by user: %w", err)
	}

	return data, nil
}

// UpdateFinancialData applies a partial update to a record.
func (s *financialService) UpdateFinancialData(ctx context.Context, id int64, input *usecase.UpdateFinancialDataInput) (*entity.FinancialData, error) {
	patch := &repository.FinancialDataPatch{
		Type:           input.Type,
		Name:           input.Name,
		Value:          input.Value,
		Category:       input.Category,
		Date:           input.Date,
		AdditionalData: input.AdditionalData,
	}

	updated, err := s.financialRepo.UpdateFinancialData(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrFinancialDataNotFound) {
			return nil, domainerrors.ErrFinancialDataNotFound
		}

		return nil, fmt.Errorf("failed to update financial data: %w", err)
	}

	return updated, nil
}

// DeleteFinancialData removes a record by ID.
func (s *financialService) DeleteFinancialData(ctx context.Context, id int64) error {
	if err := s.financialRepo.DeleteFinancialData(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFinancialDataNotFound) {
			return domainerrors.ErrFinancialDataNotFound
		}

		return fmt.Errorf("failed to delete financial data: %w", err)
	}

	return nil
}

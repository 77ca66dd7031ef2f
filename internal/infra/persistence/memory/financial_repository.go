package memory

import (
	"context"
	"maps"
	"sort"
	"sync"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
)

// FinancialDataRepository is the in-memory financial record collection.
type FinancialDataRepository struct {
	mu      sync.RWMutex
	records map[int64]*entity.FinancialData
	nextID  int64
}

// NewFinancialDataRepository creates an empty financial record collection.
func NewFinancialDataRepository() repository.FinancialDataRepository {
	return &FinancialDataRepository{
		records: make(map[int64]*entity.FinancialData),
		nextID:  1,
	}
}

// CreateFinancialData assigns the next sequential ID and inserts the record.
func (r *FinancialDataRepository) CreateFinancialData(_ context.Context, data *entity.FinancialData) (*entity.FinancialData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneFinancialData(data)
	stored.ID = r.nextID
	r.nextID++
	r.records[stored.ID] = stored

	return cloneFinancialData(stored), nil
}

// FindFinancialDataByID retrieves a record by ID.
func (r *FinancialDataRepository) FindFinancialDataByID(_ context.Context, id int64) (*entity.FinancialData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.records[id]
	if !ok {
		return nil, repository.ErrFinancialDataNotFound
	}

	return cloneFinancialData(data), nil
}

// FindFinancialDataByUser retrieves the user's records in insertion order,
// optionally filtered by type.
func (r *FinancialDataRepository) FindFinancialDataByUser(_ context.Context, userID int64, dataType string) ([]*entity.FinancialData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.FinancialData, 0)
	for _, data := range r.records {
		if data.UserID != userID {
			continue
		}
		if dataType != "" && data.Type != dataType {
			continue
		}
		result = append(result, cloneFinancialData(data))
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

// UpdateFinancialData merges the allow-listed patch fields into an existing
// record.
func (r *FinancialDataRepository) UpdateFinancialData(_ context.Context, id int64, patch *repository.FinancialDataPatch) (*entity.FinancialData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, ok := r.records[id]
	if !ok {
		return nil, repository.ErrFinancialDataNotFound
	}

	if patch.Type != nil {
		data.Type = *patch.Type
	}
	if patch.Name != nil {
		data.Name = *patch.Name
	}
	if patch.Value != nil {
		data.Value = *patch.Value
	}
	if patch.Category != nil {
		data.Category = *patch.Category
	}
	if patch.Date != nil {
		data.Date = *patch.Date
	}
	if patch.AdditionalData != nil {
		data.AdditionalData = maps.Clone(patch.AdditionalData)
	}

	return cloneFinancialData(data), nil
}

// DeleteFinancialData removes a record by ID. The ID is never reused.
func (r *FinancialDataRepository) DeleteFinancialData(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return repository.ErrFinancialDataNotFound
	}
	delete(r.records, id)

	return nil
}

func cloneFinancialData(data *entity.FinancialData) *entity.FinancialData {
	clone := *data
	if data.AdditionalData != nil {
		clone.AdditionalData = maps.Clone(data.AdditionalData)
	}

	return &clone
}

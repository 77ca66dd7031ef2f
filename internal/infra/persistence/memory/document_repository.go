package memory

import (
	"context"
	"sort"
	"sync"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
)

// DocumentRepository is the in-memory document collection.
type DocumentRepository struct {
	mu        sync.RWMutex
	documents map[int64]*entity.Document
	nextID    int64
}

// NewDocumentRepository creates an empty document collection.
func NewDocumentRepository() repository.DocumentRepository {
	return &DocumentRepository{
		documents: make(map[int64]*entity.Document),
		nextID:    1,
	}
}

// CreateDocument assigns the next sequential ID and inserts the document.
func (r *DocumentRepository) CreateDocument(_ context.Context, doc *entity.Document) (*entity.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneDocument(doc)
	stored.ID = r.nextID
	r.nextID++
	r.documents[stored.ID] = stored

	return cloneDocument(stored), nil
}

// FindDocumentByID retrieves a document by ID.
func (r *DocumentRepository) FindDocumentByID(_ context.Context, id int64) (*entity.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.documents[id]
	if !ok {
		return nil, repository.ErrDocumentNotFound
	}

	return cloneDocument(doc), nil
}

// FindDocumentsByUser retrieves the user's documents in insertion order,
// optionally filtered by category.
func (r *DocumentRepository) FindDocumentsByUser(_ context.Context, userID int64, category string) ([]*entity.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Document, 0)
	for _, doc := range r.documents {
		if doc.UserID != userID {
			continue
		}
		if category != "" && doc.Category != category {
			continue
		}
		result = append(result, cloneDocument(doc))
	}

	// Map iteration order is random; IDs reflect insertion order.
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

// UpdateDocument merges the allow-listed patch fields into an existing
// document. A patched analysis replaces the previous one wholesale.
func (r *DocumentRepository) UpdateDocument(_ context.Context, id int64, patch *repository.DocumentPatch) (*entity.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.documents[id]
	if !ok {
		return nil, repository.ErrDocumentNotFound
	}

	if patch.Title != nil {
		doc.Title = *patch.Title
	}
	if patch.Category != nil {
		doc.Category = *patch.Category
	}
	if patch.Analysis != nil {
		doc.Analysis = cloneAnalysis(patch.Analysis)
	}

	return cloneDocument(doc), nil
}

// DeleteDocument removes a document by ID. The ID is never reused.
func (r *DocumentRepository) DeleteDocument(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.documents[id]; !ok {
		return repository.ErrDocumentNotFound
	}
	delete(r.documents, id)

	return nil
}

func cloneDocument(doc *entity.Document) *entity.Document {
	clone := *doc
	clone.Analysis = cloneAnalysis(doc.Analysis)

	return &clone
}

func cloneAnalysis(analysis *entity.DocumentAnalysis) *entity.DocumentAnalysis {
	if analysis == nil {
		return nil
	}
	clone := entity.DocumentAnalysis{
		Summary:         analysis.Summary,
		Insights:        append([]string(nil), analysis.Insights...),
		Recommendations: append([]string(nil), analysis.Recommendations...),
	}

	return &clone
}

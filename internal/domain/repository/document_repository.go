package repository

import (
	"context"

	"finboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDocumentNotFound is returned when a document is not found.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentPatch lists the document fields a partial update may touch.
type DocumentPatch struct {
	Title    *string
	Category *string
	Analysis *entity.DocumentAnalysis
}

// DocumentRepository defines the interface for document store operations.
type DocumentRepository interface {
	// CreateDocument assigns the next sequential ID, inserts the document,
	// and returns the stored value.
	CreateDocument(ctx context.Context, doc *entity.Document) (*entity.Document, error)

	// FindDocumentByID retrieves a document by ID, or ErrDocumentNotFound.
	FindDocumentByID(ctx context.Context, id int64) (*entity.Document, error)

	// FindDocumentsByUser retrieves all documents owned by userID,
	// additionally filtered by category when category is non-empty.
	// Order follows insertion; an empty result is an empty slice.
	FindDocumentsByUser(ctx context.Context, userID int64, category string) ([]*entity.Document, error)

	// UpdateDocument applies the patch to an existing document and returns
	// the updated value, or ErrDocumentNotFound.
	UpdateDocument(ctx context.Context, id int64, patch *DocumentPatch) (*entity.Document, error)

	// DeleteDocument removes a document by ID, or ErrDocumentNotFound.
	// Its ID is never reused.
	DeleteDocument(ctx context.Context, id int64) error
}

package usecase

import (
	"context"

	"finboard/internal/domain/entity"
)

// UploadDocumentInput represents an uploaded file plus its metadata. The
// handler fills it from the multipart form.
type UploadDocumentInput struct {
	UserID   int64  `validate:"required"`
	FileName string `validate:"required"`
	Content  []byte `validate:"required"`
	Title    string // Defaults to FileName when empty.
	Category string `validate:"required"`
}

// DocumentUsecase defines the document management use cases.
type DocumentUsecase interface {
	// UploadDocument stores a new document. Only PDF files are accepted;
	// the file body is kept base64-encoded and the analysis starts empty.
	UploadDocument(ctx context.Context, input *UploadDocumentInput) (*entity.Document, error)

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id int64) (*entity.Document, error)

	// ListUserDocuments retrieves a user's documents, optionally filtered
	// by category.
	ListUserDocuments(ctx context.Context, userID int64, category string) ([]*entity.Document, error)

	// ReplaceAnalysis replaces a document's analysis wholesale.
	ReplaceAnalysis(ctx context.Context, id int64, analysis *entity.DocumentAnalysis) (*entity.Document, error)

	// DeleteDocument removes a document by ID.
	DeleteDocument(ctx context.Context, id int64) error
}

package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/repository"
	"finboard/internal/usecase"

	"github.com/pkg/errors"
)

type documentService struct {
	documentRepo repository.DocumentRepository
	now          func() time.Time
}

// NewDocumentService creates a new document service instance
func NewDocumentService(documentRepo repository.DocumentRepository) usecase.DocumentUsecase {
	return &documentService{
		documentRepo: documentRepo,
		now:          time.Now,
	}
}

// UploadDocument stores a new PDF document with an empty analysis.
func (s *documentService) UploadDocument(ctx context.Context, input *usecase.UploadDocumentInput) (*entity.Document, error) {
	fileType := strings.TrimPrefix(strings.ToLower(filepath.Ext(input.FileName)), ".")
	if fileType != entity.FileTypePDF {
		return nil, domainerrors.ErrUnsupportedFileType
	}

	title := input.Title
	if title == "" {
		title = input.FileName
	}

	doc := &entity.Document{
		UserID:      input.UserID,
		Title:       title,
		FileContent: base64.StdEncoding.EncodeToString(input.Content),
		FileType:    fileType,
		Category:    input.Category,
		UploadDate:  s.now(),
		Analysis:    entity.NewEmptyAnalysis(),
	}

	created, err := s.documentRepo.CreateDocument(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return created, nil
}

// GetDocument retrieves a document by ID.
func (s *documentService) GetDocument(ctx context.Context, id int64) (*entity.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, domainerrors.ErrDocumentNotFound
		}

		return nil, fmt.Errorf("failed to find document by ID: %w", err)
	}

	return doc, nil
}

// ListUserDocuments retrieves a user's documents, optionally filtered by
// category.
func (s *documentService) ListUserDocuments(ctx context.Context, userID int64, category string) ([]*entity.Document, error) {
	docs, err := s.documentRepo.FindDocumentsByUser(ctx, userID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to find documents by user: %w", err)
	}

	return docs, nil
}

// ReplaceAnalysis replaces a document's analysis wholesale.
func (s *documentService) ReplaceAnalysis(ctx context.Context, id int64, analysis *entity.DocumentAnalysis) (*entity.Document, error) {
	updated, err := s.documentRepo.UpdateDocument(ctx, id, &repository.DocumentPatch{Analysis: analysis})
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, domainerrors.ErrDocumentNotFound
		}

		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	return updated, nil
}

// DeleteDocument removes a document by ID.
func (s *documentService) DeleteDocument(ctx context.Context, id int64) error {
	if err := s.documentRepo.DeleteDocument(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return domainerrors.ErrDocumentNotFound
		}

		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

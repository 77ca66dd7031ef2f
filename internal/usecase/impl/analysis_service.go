package impl

import (
	"context"
	"fmt"

	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/repository"
	"finboard/internal/domain/service"
	"finboard/internal/usecase"

	"github.com/pkg/errors"
)

type analysisService struct {
	documentRepo repository.DocumentRepository
	advisor      service.Advisor
}

// NewAnalysisService creates a new document analysis service instance
func NewAnalysisService(documentRepo repository.DocumentRepository, advisor service.Advisor) usecase.AnalysisUsecase {
	return &analysisService{
		documentRepo: documentRepo,
		advisor:      advisor,
	}
}

// AnalyzeDocument runs the advisor analysis on a document, stores the
// result on the document wholesale, and returns it.
func (s *analysisService) AnalyzeDocument(ctx context.Context, kind service.AnalysisKind, documentID int64) (*entity.DocumentAnalysis, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, domainerrors.ErrDocumentNotFound
		}

		return nil, fmt.Errorf("failed to find document by ID: %w", err)
	}

	analysis, err := s.advisor.AnalyzeDocument(ctx, kind, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze document: %w", err)
	}

	if _, err := s.documentRepo.UpdateDocument(ctx, documentID, &repository.DocumentPatch{Analysis: analysis}); err != nil {
		return nil, fmt.Errorf("failed to store document analysis: %w", err)
	}

	return analysis, nil
}

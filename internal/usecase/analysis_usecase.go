package usecase

import (
	"context"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/service"
)

// AnalysisUsecase defines the document analysis use case behind the
// /ai/analyze-* endpoints.
type AnalysisUsecase interface {
	// AnalyzeDocument runs the advisor analysis of the given kind on a
	// document, stores the result on the document, and returns it.
	AnalyzeDocument(ctx context.Context, kind service.AnalysisKind, documentID int64) (*entity.DocumentAnalysis, error)
}

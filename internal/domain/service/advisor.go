// Package service defines interfaces for external collaborators the
// usecases depend on.
package service

import (
	"context"

	"finboard/internal/domain/entity"
)

// AnalysisKind selects which specialized analysis the advisor runs on a
// document.
type AnalysisKind string

const (
	// AnalysisInvestment analyzes an investment portfolio document.
	AnalysisInvestment AnalysisKind = "investment"
	// AnalysisForecast analyzes a financial forecasting document.
	AnalysisForecast AnalysisKind = "forecast"
	// AnalysisRisk analyzes a risk exposure document.
	AnalysisRisk AnalysisKind = "risk"
)

// Advisor generates chat replies and document analyses. The shipped
// implementation returns templated output; a model-backed implementation
// would satisfy the same interface and own its timeout/retry policy.
type Advisor interface {
	// Reply produces the advisor's answer to a user message. relatedTo
	// optionally names the dashboard topic the message concerns.
	Reply(ctx context.Context, message, relatedTo string) (string, error)

	// AnalyzeDocument produces a full analysis of the document for the
	// given kind. The result replaces the document's analysis wholesale.
	AnalyzeDocument(ctx context.Context, kind AnalysisKind, doc *entity.Document) (*entity.DocumentAnalysis, error)
}

// Package advisor implements the service.Advisor collaborator with
// templated output. No model is called; replies and analyses are canned so
// the rest of the system can exercise the full chat and analysis flows.
package advisor

import (
	"context"
	"fmt"
	"log/slog"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/service"

	"github.com/pkg/errors"
)

// replyFormat is the canned chat reply, parameterized by the user message.
const replyFormat = "AI response to: %s"

// Fixed analyses keyed by kind. Each replaces a document's analysis
// wholesale when the corresponding endpoint runs.
var cannedAnalyses = map[service.AnalysisKind]entity.DocumentAnalysis{
	service.AnalysisInvestment: {
		Summary: "Investment portfolio analysis summary",
		Insights: []string{
			"Your portfolio is well diversified",
			"Consider increasing allocation to technology sector",
			"Reduce exposure to financial sector",
		},
		Recommendations: []string{
			"Rebalance portfolio quarterly",
			"Consider adding international exposure",
			"Review fee structure with your broker",
		},
	},
	service.AnalysisForecast: {
		Summary: "Financial forecasting analysis summary",
		Insights: []string{
			"Projected growth rate of 8.5% over next 5 years",
			"Cash flow adequate for planned expansion",
			"Potential liquidity issues in Q3 2023",
		},
		Recommendations: []string{
			"Secure additional line of credit",
			"Implement more aggressive accounts receivable collection",
			"Consider delaying capital expenditures until Q4",
		},
	},
	service.AnalysisRisk: {
		Summary: "Risk analysis summary",
		Insights: []string{
			"Portfolio volatility is higher than benchmark",
			"Sector concentration risk identified",
			"Currency exposure creating additional risk",
		},
		Recommendations: []string{
			"Add more defensive assets to reduce volatility",
			"Diversify across additional sectors",
			"Consider hedging currency exposure",
		},
	},
}

// Service is the templated advisor implementation.
type Service struct {
	logger *slog.Logger
}

// NewService creates the templated advisor.
func NewService(logger *slog.Logger) service.Advisor {
	return &Service{logger: logger}
}

// Reply returns the canned answer for a user message.
func (s *Service) Reply(_ context.Context, message, relatedTo string) (string, error) {
	s.logger.Debug("generating advisor reply",
		slog.String("relatedTo", relatedTo),
		slog.Int("messageLen", len(message)),
	)

	return fmt.Sprintf(replyFormat, message), nil
}

// AnalyzeDocument returns the fixed analysis for the requested kind.
func (s *Service) AnalyzeDocument(_ context.Context, kind service.AnalysisKind, doc *entity.Document) (*entity.DocumentAnalysis, error) {
	canned, ok := cannedAnalyses[kind]
	if !ok {
		return nil, errors.Errorf("unknown analysis kind %q", kind)
	}

	s.logger.Debug("generating document analysis",
		slog.String("kind", string(kind)),
		slog.Int64("documentID", doc.ID),
	)

	analysis := entity.DocumentAnalysis{
		Summary:         canned.Summary,
		Insights:        append([]string(nil), canned.Insights...),
		Recommendations: append([]string(nil), canned.Recommendations...),
	}

	return &analysis, nil
}

package handler

import (
	"net/http"

	"finboard/internal/delivery/http/response"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/service"
	"finboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// analyzeRequest is the shared payload of the /ai/analyze-* endpoints.
// UserID is accepted for client compatibility but not consulted.
type analyzeRequest struct {
	DocumentID int64 `json:"documentId"`
	UserID     int64 `json:"userId"`
}

// AnalysisHandler holds dependencies for the document analysis handlers.
type AnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

// NewAnalysisHandler is the constructor for AnalysisHandler, injected by Fx.
func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// AnalyzeInvestment handles the investment analysis request.
func (h *AnalysisHandler) AnalyzeInvestment(c echo.Context) error {
	return h.analyze(c, service.AnalysisInvestment)
}

// AnalyzeForecast handles the financial forecast request.
func (h *AnalysisHandler) AnalyzeForecast(c echo.Context) error {
	return h.analyze(c, service.AnalysisForecast)
}

// AnalyzeRisk handles the risk assessment request.
func (h *AnalysisHandler) AnalyzeRisk(c echo.Context) error {
	return h.analyze(c, service.AnalysisRisk)
}

func (h *AnalysisHandler) analyze(c echo.Context, kind service.AnalysisKind) error {
	var req *analyzeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analysis input")
	}
	if req == nil || req.DocumentID == 0 {
		return errors.WithStack(domainerrors.ErrDocumentIDRequired)
	}

	analysis, err := h.uc.AnalyzeDocument(c.Request().Context(), kind, req.DocumentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, analysis, "")
}

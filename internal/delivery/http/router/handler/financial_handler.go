package handler

import (
	"net/http"

	"finboard/internal/delivery/http/response"
	"finboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FinancialHandler holds dependencies for financial record handlers.
type FinancialHandler struct {
	uc usecase.FinancialDataUsecase
}

// NewFinancialHandler is the constructor for FinancialHandler, injected by Fx.
func NewFinancialHandler(uc usecase.FinancialDataUsecase) *FinancialHandler {
	return &FinancialHandler{uc: uc}
}

// CreateFinancialData handles the record creation request.
func (h *FinancialHandler) CreateFinancialData(c echo.Context) error {
	var input *usecase.CreateFinancialDataInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid financial data input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	data, err := h.uc.CreateFinancialData(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, data, "Financial data created successfully")
}

// GetFinancialData handles the record lookup request.
func (h *FinancialHandler) GetFinancialData(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid financial data ID")
	}

	data, err := h.uc.GetFinancialData(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, data, "")
}

// ListUserFinancialData handles the per-user record listing request,
// with an optional type query filter.
func (h *FinancialHandler) ListUserFinancialData(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	data, err := h.uc.ListUserFinancialData(c.Request().Context(), userID, c.QueryParam("type"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, data, "")
}

// UpdateFinancialData handles the partial record update request.
func (h *FinancialHandler) UpdateFinancialData(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid financial data ID")
	}

	var input *usecase.UpdateFinancialDataInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid financial data input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	data, err := h.uc.UpdateFinancialData(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, data, "Financial data updated successfully")
}

// DeleteFinancialData handles the record deletion request.
func (h *FinancialHandler) DeleteFinancialData(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid financial data ID")
	}

	if err := h.uc.DeleteFinancialData(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

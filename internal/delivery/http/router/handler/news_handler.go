package handler

import (
	"net/http"
	"strconv"

	"finboard/internal/delivery/http/response"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NewsHandler holds dependencies for news feed handlers.
type NewsHandler struct {
	uc usecase.NewsUsecase
}

// NewNewsHandler is the constructor for NewsHandler, injected by Fx.
func NewNewsHandler(uc usecase.NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// ListNews handles the feed listing request, with optional limit and
// category query filters.
func (h *NewsHandler) ListNews(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit")
		}
	}

	items, err := h.uc.ListNews(c.Request().Context(), limit, c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// GetNewsItem handles the single article lookup request.
func (h *NewsHandler) GetNewsItem(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid news item ID")
	}

	item, err := h.uc.GetNewsItem(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

// CreateNewsItem handles the article creation request.
func (h *NewsHandler) CreateNewsItem(c echo.Context) error {
	var input *usecase.CreateNewsItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid news item input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.CreateNewsItem(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "News item created successfully")
}

// SearchNews handles the news search request. Results are stored into
// the feed before being returned.
func (h *NewsHandler) SearchNews(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return errors.WithStack(domainerrors.ErrSearchQueryRequired)
	}

	items, err := h.uc.SearchNews(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "finboard/internal/delivery/context"
	"finboard/internal/delivery/http/response"
	"finboard/internal/domain/entity"
	"finboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DocumentHandler holds dependencies for document-related handlers.
type DocumentHandler struct {
	uc     usecase.DocumentUsecase
	logger *slog.Logger
}

// NewDocumentHandler is the constructor for DocumentHandler, injected by Fx.
func NewDocumentHandler(uc usecase.DocumentUsecase, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		uc:     uc,
		logger: logger,
	}
}

// log returns the request-scoped logger if the request-id middleware
// installed one, falling back to the handler's logger.
func (h *DocumentHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}

// UploadDocument handles the multipart document upload request.
func (h *DocumentHandler) UploadDocument(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "No file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.log(c).Error("Failed to open uploaded file",
			slog.String("file_name", fileHeader.Filename),
			slog.String("error", err.Error()),
		)

		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.log(c).Error("Failed to read uploaded file",
			slog.String("file_name", fileHeader.Filename),
			slog.String("error", err.Error()),
		)

		return errors.Wrap(err, "failed to read uploaded file")
	}

	userID, err := strconv.ParseInt(c.FormValue("userId"), 10, 64)
	if err != nil || userID <= 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	input := &usecase.UploadDocumentInput{
		UserID:   userID,
		FileName: fileHeader.Filename,
		Content:  content,
		Title:    c.FormValue("title"),
		Category: c.FormValue("category"),
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	doc, err := h.uc.UploadDocument(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, doc, "Document uploaded successfully")
}

// GetDocument handles the document lookup request.
func (h *DocumentHandler) GetDocument(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid document ID")
	}

	doc, err := h.uc.GetDocument(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, doc, "")
}

// ListUserDocuments handles the per-user document listing request, with
// an optional category query filter.
func (h *DocumentHandler) ListUserDocuments(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	docs, err := h.uc.ListUserDocuments(c.Request().Context(), userID, c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, docs, "")
}

// ReplaceAnalysis handles the analysis replacement request.
func (h *DocumentHandler) ReplaceAnalysis(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid document ID")
	}

	var analysis *entity.DocumentAnalysis
	if err := c.Bind(&analysis); err != nil || analysis == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analysis input")
	}

	doc, err := h.uc.ReplaceAnalysis(c.Request().Context(), id, analysis)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, doc, "Analysis updated successfully")
}

// DeleteDocument handles the document deletion request.
func (h *DocumentHandler) DeleteDocument(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid document ID")
	}

	if err := h.uc.DeleteDocument(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

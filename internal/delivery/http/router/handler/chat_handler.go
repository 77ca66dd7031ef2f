package handler

import (
	"net/http"
	"strconv"

	"finboard/internal/delivery/http/response"
	"finboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler holds dependencies for advisor chat handlers.
type ChatHandler struct {
	uc usecase.ChatUsecase
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// SendMessage handles a user chat message and returns the advisor reply.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var input *usecase.SendMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	reply, err := h.uc.SendMessage(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reply, "")
}

// GetHistory handles the per-user conversation history request. An
// optional limit query keeps only the most recent messages.
func (h *ChatHandler) GetHistory(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit")
		}
	}

	messages, err := h.uc.GetHistory(c.Request().Context(), userID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

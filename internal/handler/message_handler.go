package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	errs "minops/internal/errors"
	"minops/internal/service"
)

// MessageHandler handles direct messaging endpoints. Every endpoint
// operates on the authenticated principal's own view of the mailbox.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SendMessageRequest represents a new direct message.
type SendMessageRequest struct {
	RecipientID uint   `json:"recipient_id" validate:"required"`
	Content     string `json:"content" validate:"required,max=4000"`
}

// Send godoc
// @Summary Send a direct message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendMessageRequest true "Message data"
// @Success 201 {object} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	user := CurrentUser(c)
	if user == nil {
		return respondError(c, errs.ErrUnauthenticated)
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.messageService.Send(c.Request().Context(), user.ID, req.RecipientID, req.Content, ActorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, message)
}

// Inbox godoc
// @Summary List received messages
// @Description Fetching the inbox marks unread messages as read. Messages the recipient deleted are excluded.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Message
// @Failure 401 {object} errors.ErrorResponse
// @Router /messages/inbox [get]
func (h *MessageHandler) Inbox(c echo.Context) error {
	user := CurrentUser(c)
	if user == nil {
		return respondError(c, errs.ErrUnauthenticated)
	}

	messages, err := h.messageService.Inbox(c.Request().Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messages)
}

// Outbox godoc
// @Summary List sent messages
// @Description Messages the sender deleted are excluded.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Message
// @Failure 401 {object} errors.ErrorResponse
// @Router /messages/outbox [get]
func (h *MessageHandler) Outbox(c echo.Context) error {
	user := CurrentUser(c)
	if user == nil {
		return respondError(c, errs.ErrUnauthenticated)
	}

	messages, err := h.messageService.Outbox(c.Request().Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messages)
}

// Get godoc
// @Summary Get a single message
// @Description Visible only to the sender or recipient, and only if they have not deleted it.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} model.Message
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages/{id} [get]
func (h *MessageHandler) Get(c echo.Context) error {
	user := CurrentUser(c)
	if user == nil {
		return respondError(c, errs.ErrUnauthenticated)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	message, err := h.messageService.Get(c.Request().Context(), id, user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, message)
}

// Delete godoc
// @Summary Delete a message from the caller's view
// @Description Only hides the message for the calling party; the other party's copy is untouched.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	user := CurrentUser(c)
	if user == nil {
		return respondError(c, errs.ErrUnauthenticated)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.messageService.DeleteForParty(c.Request().Context(), id, user.ID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

package rest

import (
	"context"
	"net/http"
	"susuhub/domain"
	"susuhub/pkg/logger"
	"susuhub/pkg/response"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type MessageService interface {
	Append(ctx context.Context, message *domain.GroupMessage) error
	GetRecent(ctx context.Context, groupID string) ([]domain.GroupMessage, error)
}

type MessageHandler struct {
	messageService MessageService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewMessageHandler(messageService MessageService, timeout time.Duration) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		validator:      validator.New(),
		timeout:        timeout,
	}
}

type MessageCreateRequest struct {
	ID        string `json:"id"`
	GroupID   string `json:"groupId" validate:"required"`
	SenderID  string `json:"senderId" validate:"required"`
	Text      string `json:"text" validate:"required"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

func (h *MessageHandler) PostMessage(c echo.Context) error {
	var req MessageCreateRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate message create", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	message := domain.GroupMessage{
		ID:        req.ID,
		GroupID:   req.GroupID,
		SenderID:  req.SenderID,
		Text:      req.Text,
		Type:      req.Type,
		Timestamp: req.Timestamp,
	}

	if err := h.messageService.Append(ctx, &message); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.OK())
}

func (h *MessageHandler) GetMessagesByGroup(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	messages, err := h.messageService.GetRecent(ctx, c.Param("groupId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, messages)
}

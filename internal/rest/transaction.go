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

type TransactionService interface {
	Record(ctx context.Context, transaction *domain.Transaction) error
	GetByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
	GetGroupContributions(ctx context.Context, groupID string) ([]domain.ContributionEntry, error)
}

type TransactionHandler struct {
	transactionService TransactionService
	validator          *validator.Validate
	timeout            time.Duration
}

func NewTransactionHandler(transactionService TransactionService, timeout time.Duration) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		validator:          validator.New(),
		timeout:            timeout,
	}
}

type TransactionCreateRequest struct {
	ID      string  `json:"id"`
	UserID  string  `json:"userId" validate:"required"`
	GroupID string  `json:"groupId"`
	Type    string  `json:"type" validate:"required"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status" validate:"required"`
}

func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req TransactionCreateRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate transaction create", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	transaction := domain.Transaction{
		ID:      req.ID,
		UserID:  req.UserID,
		GroupID: req.GroupID,
		Type:    req.Type,
		Amount:  req.Amount,
		Status:  req.Status,
	}

	if err := h.transactionService.Record(ctx, &transaction); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.OK())
}

func (h *TransactionHandler) GetTransactionsByUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	transactions, err := h.transactionService.GetByUser(ctx, c.Param("userId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) GetGroupContributions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	entries, err := h.transactionService.GetGroupContributions(ctx, c.Param("groupId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, entries)
}

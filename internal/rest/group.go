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
	"gorm.io/datatypes"
)

type GroupService interface {
	CreateGroup(ctx context.Context, group *domain.SavingsGroup, creatorID string) error
	GetAllGroups(ctx context.Context) ([]domain.SavingsGroup, error)
	GetGroupByID(ctx context.Context, id string) (domain.SavingsGroup, error)
	UpdateGroup(ctx context.Context, id string, patch domain.GroupPatch) (bool, error)
	GetGroupsByUser(ctx context.Context, userID string) ([]domain.UserGroup, error)
}

type GroupHandler struct {
	groupService GroupService
	validator    *validator.Validate
	timeout      time.Duration
}

func NewGroupHandler(groupService GroupService, timeout time.Duration) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
		validator:    validator.New(),
		timeout:      timeout,
	}
}

type GroupCreateRequest struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name" validate:"required"`
	ContributionAmount float64        `json:"contributionAmount"`
	Currency           string         `json:"currency"`
	Frequency          string         `json:"frequency"`
	InviteCode         string         `json:"inviteCode"`
	WelcomeMessage     string         `json:"welcomeMessage"`
	Icon               string         `json:"icon"`
	PayoutSchedule     datatypes.JSON `json:"payoutSchedule"`
	CreatorID          string         `json:"creatorId"`
}

func (h *GroupHandler) GetAllGroups(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	groups, err := h.groupService.GetAllGroups(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, groups)
}

func (h *GroupHandler) CreateGroup(c echo.Context) error {
	var req GroupCreateRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate group create", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	group := domain.SavingsGroup{
		ID:                 req.ID,
		Name:               req.Name,
		ContributionAmount: req.ContributionAmount,
		Currency:           req.Currency,
		Frequency:          req.Frequency,
		InviteCode:         req.InviteCode,
		WelcomeMessage:     req.WelcomeMessage,
		Icon:               req.Icon,
		PayoutSchedule:     req.PayoutSchedule,
	}

	if err := h.groupService.CreateGroup(ctx, &group, req.CreatorID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.OK())
}

func (h *GroupHandler) UpdateGroup(c echo.Context) error {
	var patch domain.GroupPatch

	if err := c.Bind(&patch); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	changed, err := h.groupService.UpdateGroup(ctx, c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}

	if !changed {
		return c.JSON(http.StatusOK, response.OKMessage("No changes provided."))
	}

	return c.JSON(http.StatusOK, response.OK())
}

func (h *GroupHandler) GetGroupsByUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	groups, err := h.groupService.GetGroupsByUser(ctx, c.Param("userId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, groups)
}

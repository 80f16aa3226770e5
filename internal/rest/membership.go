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

type MembershipService interface {
	GetStatus(ctx context.Context, userID, groupID string) (domain.MembershipState, error)
	Join(ctx context.Context, userID, groupID string) error
	Block(ctx context.Context, userID, groupID string) error
	Reactivate(ctx context.Context, userID, groupID string) error
	SoftDelete(ctx context.Context, userID, groupID string) error
	GetAll(ctx context.Context) ([]domain.GroupMembership, error)
}

type MembershipHandler struct {
	membershipService MembershipService
	validator         *validator.Validate
	timeout           time.Duration
}

func NewMembershipHandler(membershipService MembershipService, timeout time.Duration) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
		validator:         validator.New(),
		timeout:           timeout,
	}
}

type MembershipRequest struct {
	UserID  string `json:"userId" validate:"required"`
	GroupID string `json:"groupId" validate:"required"`
}

func (h *MembershipHandler) GetStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	state, err := h.membershipService.GetStatus(ctx, c.Param("userId"), c.Param("groupId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, state)
}

func (h *MembershipHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	memberships, err := h.membershipService.GetAll(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, memberships)
}

func (h *MembershipHandler) Join(c echo.Context) error {
	return h.transition(c, h.membershipService.Join)
}

func (h *MembershipHandler) Block(c echo.Context) error {
	return h.transition(c, h.membershipService.Block)
}

func (h *MembershipHandler) Reactivate(c echo.Context) error {
	return h.transition(c, h.membershipService.Reactivate)
}

func (h *MembershipHandler) Delete(c echo.Context) error {
	return h.transition(c, h.membershipService.SoftDelete)
}

func (h *MembershipHandler) transition(c echo.Context, op func(ctx context.Context, userID, groupID string) error) error {
	var req MembershipRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate membership request", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := op(ctx, req.UserID, req.GroupID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.OK())
}

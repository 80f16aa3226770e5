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

type UserService interface {
	Register(ctx context.Context, user *domain.User) error
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) error
	DeleteUser(ctx context.Context, id string) error
}

type UserHandler struct {
	userService UserService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewUserHandler(userService UserService, timeout time.Duration) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
		timeout:     timeout,
	}
}

type UserCreateRequest struct {
	ID               string `json:"id"`
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	PhoneNumber      string `json:"phoneNumber"`
	Role             string `json:"role"`
	Avatar           string `json:"avatar"`
	KycDocumentImage string `json:"kycDocumentImage"`
	Occupation       string `json:"occupation"`
	Location         string `json:"location"`
	KycID            string `json:"kycId"`
}

func (h *UserHandler) GetAllUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	users, err := h.userService.GetAllUsers(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUserByEmail(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user, err := h.userService.GetUserByEmail(ctx, c.Param("email"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req UserCreateRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate user create", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user := domain.User{
		ID:               req.ID,
		Name:             req.Name,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		Role:             req.Role,
		Avatar:           req.Avatar,
		KycDocumentImage: req.KycDocumentImage,
		Occupation:       req.Occupation,
		Location:         req.Location,
		KycID:            req.KycID,
	}

	if err := h.userService.Register(ctx, &user); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.OK())
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	var patch domain.UserPatch

	if err := c.Bind(&patch); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.userService.UpdateUser(ctx, c.Param("id"), patch); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.OK())
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.userService.DeleteUser(ctx, c.Param("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.OK())
}

package rest

import (
	"errors"
	"net/http"
	"susuhub/domain"
	"susuhub/pkg/response"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

// respondError maps service errors onto the wire contract: 400 for rejected
// input, 404 for single-resource misses, 500 {error} for store failures
// with the underlying message passed through.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, response.Error(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
	}
}

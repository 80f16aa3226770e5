package rest

import (
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC(),
	}))
}

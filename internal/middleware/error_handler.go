package middleware

import (
	"net/http"
	"susuhub/pkg/logger"
	"susuhub/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that escaped the handlers into the
// {"error": ...} envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err)
	}

	if err := c.JSON(code, response.Error(message)); err != nil {
		logger.Error("Failed to write error response", err)
	}
}

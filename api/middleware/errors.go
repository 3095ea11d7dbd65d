package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/heritage-horizon/portal/internal/apperrors"
)

// AppErrorHandler turns service AppErrors into structured JSON failures.
// Everything else falls through to echo's default handler.
func AppErrorHandler(err error, c echo.Context) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if !c.Response().Committed {
			_ = c.JSON(appErr.Code, echo.Map{"error": appErr.Message})
		}
		return
	}
	c.Echo().DefaultHTTPErrorHandler(err, c)
}

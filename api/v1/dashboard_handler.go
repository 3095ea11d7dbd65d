package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func RegisterDashboardRoutes(g *echo.Group) {
	g.GET("", DashboardHandler)
}

func DashboardHandler(c echo.Context) error {
	sess, _ := currentSession(c)
	dashboard, err := UserService.GetDashboard(sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}

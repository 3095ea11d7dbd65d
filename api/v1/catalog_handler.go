package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	api_middleware "github.com/heritage-horizon/portal/api/middleware"
	"github.com/heritage-horizon/portal/internal/catalog"
)

var CatalogRepository catalog.Repository

func RegisterCatalogRoutes(g *echo.Group) {
	g.GET("", ListGamesHandler)
	g.POST("", CreateGameHandler, api_middleware.RequireAdmin())
}

func ListGamesHandler(c echo.Context) error {
	games, err := CatalogRepository.ListGames()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"games": games})
}

func CreateGameHandler(c echo.Context) error {
	var g catalog.Game
	if err := c.Bind(&g); err != nil || g.Name == "" || g.Section == "" {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if err := CatalogRepository.CreateGame(&g); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"game": g})
}

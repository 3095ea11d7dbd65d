package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heritage-horizon/portal/internal/reward"
)

var RewardService *reward.Service

func RegisterRewardRoutes(g *echo.Group) {
	g.GET("/spin", SpinHandler)
	g.GET("/mystery", MysteryRewardHandler)
}

func SpinHandler(c echo.Context) error {
	sess, _ := currentSession(c)
	amount, message, err := RewardService.Spin(sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": message,
		"reward":  amount,
	})
}

func MysteryRewardHandler(c echo.Context) error {
	sess, _ := currentSession(c)
	amount, err := RewardService.Mystery(sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"reward": amount})
}

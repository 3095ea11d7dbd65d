package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/heritage-horizon/portal/internal/attempt"
	"github.com/heritage-horizon/portal/internal/session"
)

const INVALID_REQUEST = "invalid request"

var AttemptService *attempt.Service

func RegisterGameRoutes(g *echo.Group) {
	g.POST("/start", StartGameHandler)
	g.POST("/score", UpdateScoreHandler)
	g.POST("/finish", FinishGameHandler)
}

type StartGameRequest struct {
	Game string `json:"game"`
}

type UpdateScoreRequest struct {
	Score     int  `json:"score"`
	AttemptID uint `json:"attempt_id"`
}

type FinishGameRequest struct {
	AttemptID uint `json:"attempt_id"`
}

func currentSession(c echo.Context) (*session.Session, string) {
	sess := c.Get("session").(*session.Session)
	token := c.Get("sessionToken").(string)
	return sess, token
}

func StartGameHandler(c echo.Context) error {
	var req StartGameRequest
	if err := c.Bind(&req); err != nil || req.Game == "" {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	sess, token := currentSession(c)
	a, err := AttemptService.Start(c.Request().Context(), token, sess, req.Game)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"attempt_id": strconv.FormatUint(uint64(a.ID), 10),
	})
}

func UpdateScoreHandler(c echo.Context) error {
	var req UpdateScoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	sess, _ := currentSession(c)
	if err := AttemptService.UpdateScore(sess, req.AttemptID, req.Score); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "score updated",
		"score":   req.Score,
	})
}

func FinishGameHandler(c echo.Context) error {
	var req FinishGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	sess, token := currentSession(c)
	_, message, err := AttemptService.Finish(c.Request().Context(), token, sess, req.AttemptID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": message})
}

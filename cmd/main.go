package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	api_middleware "github.com/heritage-horizon/portal/api/middleware"
	v1 "github.com/heritage-horizon/portal/api/v1"
	"github.com/heritage-horizon/portal/internal/attempt"
	"github.com/heritage-horizon/portal/internal/catalog"
	"github.com/heritage-horizon/portal/internal/progression"
	"github.com/heritage-horizon/portal/internal/reward"
	"github.com/heritage-horizon/portal/internal/session"
	"github.com/heritage-horizon/portal/internal/user"
	"github.com/heritage-horizon/portal/pkg/db"
	"github.com/heritage-horizon/portal/pkg/logger"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	if err := logger.Init(os.Getenv("APP_ENV")); err != nil {
		log.Fatalf("error initializing logger: %v", err)
	}

	db.Init()
	db.DB.AutoMigrate(&user.User{}, &catalog.Game{}, &attempt.Attempt{})
	if err := catalog.Seed(); err != nil {
		log.Fatalf("error seeding game catalog: %v", err)
	}

	strategy := progression.ForName(os.Getenv("PROGRESSION_STRATEGY"))
	sessionStore := session.NewRedisStore(db.Rdb, 72*time.Hour)

	rewardService := reward.NewService(reward.NewDBRepository())
	userService := user.NewUserService(user.NewDBUserRepository(), rewardService, sessionStore, strategy)
	attemptService := attempt.NewService(attempt.NewDBRepository(strategy), catalog.NewDBRepository(), sessionStore)

	v1.UserService = userService
	v1.RewardService = rewardService
	v1.AttemptService = attemptService
	v1.CatalogRepository = catalog.NewDBRepository()

	attempt.StartSweeper(
		time.Duration(envInt("ATTEMPT_TTL_HOURS", 24))*time.Hour,
		time.Duration(envInt("SWEEP_INTERVAL_MINUTES", 30))*time.Minute,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.HTTPErrorHandler = api_middleware.AppErrorHandler

	api := e.Group("/api/v1")
	v1.RegisterUserRoutes(api.Group("/users"))

	auth := api.Group("")
	auth.Use(api_middleware.SetupJWTMiddleware())
	auth.Use(api_middleware.LoadSession(sessionStore))
	v1.RegisterAccountRoutes(auth.Group("/users"))
	v1.RegisterRewardRoutes(auth.Group("/rewards"))
	v1.RegisterGameRoutes(auth.Group("/games"))
	v1.RegisterDashboardRoutes(auth.Group("/dashboard"))
	v1.RegisterCatalogRoutes(auth.Group("/catalog"))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Logger.Fatal(e.Start(":8080"))
}

func envInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

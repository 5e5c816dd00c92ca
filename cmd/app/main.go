package main

import (
	"coffee/cmd"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	httpin "coffee/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	level, err := configs.SlogLevel()
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	app := cmd.NewCompositionRoot(
		configs,
		logger,
	)
	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	loadDotEnv()

	config := cmd.Config{
		HTTPPort:       os.Getenv("HTTP_PORT"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		RateLimitRPS:   os.Getenv("RATE_LIMIT_RPS"),
		RateLimitBurst: os.Getenv("RATE_LIMIT_BURST"),
	}
	return config.WithDefaults()
}

// loadDotEnv reads .env if present. Variables already set in the environment win.
func loadDotEnv() {
	err := godotenv.Load(".env")
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	limiter, err := app.CreateRateLimiter()
	if err != nil {
		log.Fatal(err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(httpin.RateLimit(limiter, app.Logger()))
	httpin.RegisterHandlers(e, app.CreateServer())

	app.Logger().Info("Starting HTTP server", "port", port)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"stride/config"
	"stride/controllers"
	"stride/database"
	"stride/logger"
	"stride/middleware"
	"stride/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func newApp(cfg *config.Config, log *logger.Log) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "Stride API"})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.AllowedOrigins(), ","),
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders:     "Content-Type, Authorization",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{Output: log.Output()}))

	routes.Setup(app, cfg.Admin.JWTSecret)
	return app
}

func main() {
	log := logger.GetLogger()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn("Error loading .env file")
	}

	configPath := flag.String("config", "", "Optional path to a configuration file")
	adminToken := flag.String("admin-token", "", "Print an admin token for the given username and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Error("Failed to load configuration")
		os.Exit(1)
	}

	if err := log.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output, cfg.Logging.MaxAge); err != nil {
		log.WithError(err).Error("Failed to configure logger")
		os.Exit(1)
	}

	if *adminToken != "" {
		token, err := middleware.IssueAdminToken(cfg.Admin.JWTSecret, *adminToken, 24*time.Hour)
		if err != nil {
			log.WithError(err).Error("Failed to issue admin token")
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	// prices go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	if err := database.ConnectDatabase(cfg.Database); err != nil {
		log.WithError(err).Error("Failed to initialize database")
		os.Exit(1)
	}
	controllers.Configure(cfg.Data.Dir, cfg.Chart.DefaultWindow)

	app := newApp(cfg, log)

	log.WithFields(logger.Fields{
		"addr":         cfg.Addr(),
		"driver":       cfg.Database.Driver,
		"admin_guard":  cfg.Admin.JWTSecret != "",
		"chart_window": cfg.Chart.DefaultWindow.String(),
	}).Info("starting stride api")

	if err := app.Listen(cfg.Addr()); err != nil {
		log.WithError(err).Error("Server stopped")
		os.Exit(1)
	}
}

package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"pongapi/config"
	"pongapi/db"
	"pongapi/handlers"
	applog "pongapi/logger"
	mw "pongapi/middleware"
	"pongapi/services"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	bdb := db.Setup(cfg)
	defer bdb.Close()

	if err := db.CreateTables(context.Background(), bdb); err != nil {
		logger.Fatal("create tables failed", zap.Error(err))
	}

	h := handlers.New(services.NewTournaments(bdb))

	e := echo.New()
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowCredentials: true,
	}))

	// All routes require valid basic-auth credentials. TLS terminates at
	// the reverse proxy in front of this server.
	api := e.Group("/api", mw.BasicAuth(bdb))
	api.GET("/tournaments", h.Tournaments)
	api.POST("/tournaments", h.CreateTournament)
	api.GET("/tournaments/:id", h.GetTournament)
	api.PUT("/tournaments/:id", h.UpdateTournament)
	api.DELETE("/tournaments/:id", h.DeleteTournament)

	logger.Info("starting server", zap.String("addr", cfg.Port), zap.Bool("debug", cfg.Debug))
	if err := e.Start(cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

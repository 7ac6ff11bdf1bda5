package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/peakreach/agency-api/internal/config"
	dbpkg "github.com/peakreach/agency-api/internal/db"
	"github.com/peakreach/agency-api/internal/middleware"
	"github.com/peakreach/agency-api/internal/reminder"
	"github.com/peakreach/agency-api/internal/routes"
)

func main() {

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	if cfg.RemindersEnabled() {
		reminder.NewService(db, cfg, logger).StartScheduler()
	}

	logger.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

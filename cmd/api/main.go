package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/config"
	"github.com/BruksfildServices01/barberhub/internal/infra/memstore"
	"github.com/BruksfildServices01/barberhub/internal/kvstore"
	"github.com/BruksfildServices01/barberhub/internal/logging"
	"github.com/BruksfildServices01/barberhub/internal/onboarding"
	"github.com/BruksfildServices01/barberhub/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	store := memstore.New()

	kv := kvstore.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	tracker := onboarding.NewTracker(kv, log)

	// resolve o flag de onboarding logo na subida
	state := tracker.Check(context.Background())
	log.Info("onboarding state resolved", "state", state)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, store, tracker, log, cfg)

	log.Info("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}

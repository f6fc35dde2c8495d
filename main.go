package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripplanner/internal/bootstrap"
	intconfig "tripplanner/internal/config"
	router "tripplanner/internal/http"
	h "tripplanner/internal/http/handlers"
	"tripplanner/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	env := intconfig.LoadEnv()
	if err := logger.Init(env.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB(env.DB)
	defer intconfig.CloseDB()

	costSource, closeCosts, err := bootstrap.CostSource(env.Costs, logger.Named("costs"))
	if err != nil {
		logger.Fatal("cost source init failed", zap.Error(err))
	}
	defer closeCosts()

	h.Init(h.Deps{
		Costs:     costSource,
		Catalog:   costSource.Catalog(),
		JWTSecret: []byte(env.JWTSecret),
		JWTTTL:    env.JWTTTL,
	})

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
		return
	}

	logger.Info("server stopped")
}

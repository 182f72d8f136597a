package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kdos-backend/internal/config"
	"kdos-backend/internal/routes"
	"kdos-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		utils.Log.Info(".env file not found, using process environment")
	}
	cfg := config.Load()
	utils.InitLogger(cfg.LogLevel)
	utils.SetTokenSecret(cfg.JWTSecret)

	// 2. Connect DB
	config.ConnectDB(cfg)

	// 3. External services, both optional
	if err := utils.InitFCM(context.Background(), cfg.FirebaseCredentials); err != nil {
		utils.Log.WithError(err).Error("Firebase init failed, push notifications disabled")
	}
	utils.InitPayment(cfg.MidtransServerKey, cfg.MidtransEnv)

	// 4. Router
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupRoutes(r, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.Log.WithField("port", cfg.Port).Info("KDOS backend listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	utils.Log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Log.WithError(err).Error("Server forced to shutdown")
	}

	if sqlDB, err := config.DB.DB(); err == nil {
		sqlDB.Close()
	}

	utils.Log.Info("Server gracefully stopped")
}

// api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"devfolio/api/database"
	"devfolio/api/handlers"
	"devfolio/api/logger"
	"devfolio/api/middleware"
	"devfolio/api/store"
	"devfolio/api/utils"
)

func main() {
	// Load .env file at the very start
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	appLog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLog.Sync()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Initialize PostgreSQL (portfolio content) ---
	dbClient, err := database.NewPostgresDB(appLog)
	if err != nil {
		appLog.Fatal("failed to initialize PostgreSQL database", "error", err)
	}
	defer dbClient.Close()

	// --- Initialize ClickHouse (pageview analytics) ---
	chClient, err := database.NewClickHouseDB(appLog)
	if err != nil {
		appLog.Fatal("failed to initialize ClickHouse database", "error", err)
	}
	defer chClient.Close()

	// --- Initialize Stores ---
	portfolioStore := store.NewPortfolioStore(dbClient.DB, appLog.With("component", "portfolio_store"))
	analyticsStore := store.NewAnalyticsStore(chClient, appLog.With("component", "analytics_store"))

	// --- Initialize Handlers ---
	portfolioHandlers := handlers.NewPortfolioHandlers(portfolioStore, appLog.With("component", "portfolio_handlers"))
	analyticsHandlers := handlers.NewAnalyticsHandlers(analyticsStore, appLog.With("component", "analytics_handlers"))

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		portfolio := api.Group("/portfolio")
		{
			portfolio.GET("/projects", portfolioHandlers.GetProjects)
			portfolio.GET("/projects/:id", portfolioHandlers.GetProject)
			portfolio.GET("/skills", portfolioHandlers.GetSkills)
			portfolio.GET("/experience", portfolioHandlers.GetExperience)
			portfolio.GET("/contact", portfolioHandlers.GetContact)
		}

		analytics := api.Group("/analytics")
		{
			analytics.POST("/pageview", analyticsHandlers.LogPageView)
			analytics.GET("/stats", analyticsHandlers.GetStats)
		}
	}

	port := utils.EnvString("PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		appLog.Info("portfolio API server starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Fatal("server forced to shutdown", "error", err)
	}

	appLog.Info("server exiting")
}

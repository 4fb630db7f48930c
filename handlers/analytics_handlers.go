// api/handlers/analytics_handlers.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"devfolio/api/logger"
	"devfolio/api/models"
)

// EventStore is the analytics surface the handlers need. The concrete
// implementation is store.AnalyticsStore.
type EventStore interface {
	InsertPageView(ctx context.Context, event models.PageViewEvent) error
	GetStats(ctx context.Context) (*models.StatsResponse, error)
}

type AnalyticsHandlers struct {
	Store EventStore
	log   *logger.Logger
}

func NewAnalyticsHandlers(s EventStore, log *logger.Logger) *AnalyticsHandlers {
	return &AnalyticsHandlers{Store: s, log: log}
}

// LogPageView records one pageview event. Only path and userAgent come from
// the body; ip and timestamp are derived server-side, so forged values in
// the payload never reach storage.
func (h *AnalyticsHandlers) LogPageView(c *gin.Context) {
	var req models.PageViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	event := models.PageViewEvent{
		EventID:   uuid.New().String(),
		Path:      req.Path,
		UserAgent: req.UserAgent,
		IP:        c.ClientIP(),
		Timestamp: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), writeTimeout)
	defer cancel()

	if err := h.Store.InsertPageView(ctx, event); err != nil {
		h.log.Error("error inserting pageview", "path", event.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record page view"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Page view logged",
	})
}

func (h *AnalyticsHandlers) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readTimeout)
	defer cancel()

	stats, err := h.Store.GetStats(ctx)
	if err != nil {
		h.log.Error("error getting analytics stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve analytics stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// api/handlers/portfolio_handlers.go
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"devfolio/api/logger"
	"devfolio/api/models"
	"devfolio/api/store"
)

// ContentStore is the read surface the portfolio handlers need. The concrete
// implementation is store.PortfolioStore; tests substitute a fake.
type ContentStore interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
	ListSkills(ctx context.Context) (map[string][]string, error)
	ListExperience(ctx context.Context) ([]models.Experience, error)
	GetContact(ctx context.Context) (*models.Contact, error)
}

type PortfolioHandlers struct {
	Store ContentStore
	log   *logger.Logger
}

func NewPortfolioHandlers(s ContentStore, log *logger.Logger) *PortfolioHandlers {
	return &PortfolioHandlers{Store: s, log: log}
}

// Per-request store budgets; the write side gets more headroom since a
// ClickHouse batch send can stall longer than a capped content read.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 15 * time.Second
)

func (h *PortfolioHandlers) GetProjects(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readTimeout)
	defer cancel()

	projects, err := h.Store.ListProjects(ctx)
	if err != nil {
		h.log.Error("error listing projects", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	c.JSON(http.StatusOK, models.ProjectListResponse{
		Projects: projects,
		Count:    len(projects),
	})
}

func (h *PortfolioHandlers) GetProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project id must be an integer"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readTimeout)
	defer cancel()

	project, err := h.Store.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		h.log.Error("error getting project", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *PortfolioHandlers) GetSkills(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readTimeout)
	defer cancel()

	skills, err := h.Store.ListSkills(ctx)
	if err != nil {
		h.log.Error("error listing skills", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve skills"})
		return
	}

	c.JSON(http.StatusOK, models.SkillsResponse{Skills: skills})
}

func (h *PortfolioHandlers) GetExperience(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readTimeout)
	defer cancel()

	experience, err := h.Store.ListExperience(ctx)
	if err != nil {
		h.log.Error("error listing experience", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve experience"})
		return
	}

	c.JSON(http.StatusOK, models.ExperienceListResponse{
		Experience: experience,
		Count:      len(experience),
	})
}

func (h *PortfolioHandlers) GetContact(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readTimeout)
	defer cancel()

	contact, err := h.Store.GetContact(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact info not found"})
			return
		}
		h.log.Error("error getting contact info", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contact info"})
		return
	}

	c.JSON(http.StatusOK, contact)
}

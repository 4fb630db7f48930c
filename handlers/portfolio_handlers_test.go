package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfolio/api/logger"
	"devfolio/api/models"
	"devfolio/api/store"
)

type fakeContentStore struct {
	projects   []models.Project
	project    *models.Project
	skills     map[string][]string
	experience []models.Experience
	contact    *models.Contact
	err        error
}

func (f *fakeContentStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	return f.projects, f.err
}

func (f *fakeContentStore) GetProjectByID(ctx context.Context, id int) (*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.project == nil || f.project.ID != id {
		return nil, store.ErrNotFound
	}
	return f.project, nil
}

func (f *fakeContentStore) ListSkills(ctx context.Context) (map[string][]string, error) {
	return f.skills, f.err
}

func (f *fakeContentStore) ListExperience(ctx context.Context) ([]models.Experience, error) {
	return f.experience, f.err
}

func (f *fakeContentStore) GetContact(ctx context.Context) (*models.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.contact == nil {
		return nil, store.ErrNotFound
	}
	return f.contact, nil
}

func newPortfolioRouter(fake *fakeContentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPortfolioHandlers(fake, logger.NewNop())
	r := gin.New()
	r.GET("/api/portfolio/projects", h.GetProjects)
	r.GET("/api/portfolio/projects/:id", h.GetProject)
	r.GET("/api/portfolio/skills", h.GetSkills)
	r.GET("/api/portfolio/experience", h.GetExperience)
	r.GET("/api/portfolio/contact", h.GetContact)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetProjectsListAndCount(t *testing.T) {
	fake := &fakeContentStore{projects: []models.Project{
		{ID: 1, Title: "First", Order: 1, IsActive: true},
		{ID: 2, Title: "Second", Order: 2, IsActive: true},
	}}
	w := doGet(t, newPortfolioRouter(fake), "/api/portfolio/projects")

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ProjectListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Projects, 2)
	assert.Equal(t, "First", resp.Projects[0].Title)
}

func TestGetProjectsEmptyIsNotAnError(t *testing.T) {
	fake := &fakeContentStore{projects: []models.Project{}}
	w := doGet(t, newPortfolioRouter(fake), "/api/portfolio/projects")

	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.JSONEq(t, `[]`, string(raw["projects"]))
	assert.JSONEq(t, `0`, string(raw["count"]))
}

func TestGetProjectsNoInternalFieldsInPayload(t *testing.T) {
	fake := &fakeContentStore{projects: []models.Project{{ID: 1, Title: "First"}}}
	w := doGet(t, newPortfolioRouter(fake), "/api/portfolio/projects")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, "internal_id")
	assert.NotContains(t, body, "createdAt")
	assert.NotContains(t, body, "updatedAt")
}

func TestGetProjectByID(t *testing.T) {
	fake := &fakeContentStore{project: &models.Project{ID: 7, Title: "Lookup"}}
	w := doGet(t, newPortfolioRouter(fake), "/api/portfolio/projects/7")

	require.Equal(t, http.StatusOK, w.Code)

	var p models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, 7, p.ID)
	assert.Equal(t, "Lookup", p.Title)
}

func TestGetProjectNotFound(t *testing.T) {
	fake := &fakeContentStore{project: &models.Project{ID: 7}}
	w := doGet(t, newPortfolioRouter(fake), "/api/portfolio/projects/99")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Project not found")
}

func TestGetProjectInvalidID(t *testing.T) {
	w := doGet(t, newPortfolioRouter(&fakeContentStore{}), "/api/portfolio/projects/abc")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProjectsStorageError(t *testing.T) {
	fake := &fakeContentStore{err: errors.New("connection refused")}
	w := doGet(t, newPortfolioRouter(fake), "/api/portfolio/projects")
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetSkillsGrouped(t *testing.T) {
	fake := &fakeContentStore{skills: map[string][]string{
		"Backend": {"Python"},
	}}
	w := doGet(t, newPortfolioRouter(fake), "/api/portfolio/skills")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"skills": {"Backend": ["Python"]}}`, w.Body.String())
}

func TestGetExperienceCountMatchesList(t *testing.T) {
	fake := &fakeContentStore{experience: []models.Experience{
		{Title: "One", Order: 1, IsActive: true},
		{Title: "Two", Order: 2, IsActive: true},
		{Title: "Three", Order: 3, IsActive: true},
	}}
	w := doGet(t, newPortfolioRouter(fake), "/api/portfolio/experience")

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ExperienceListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(resp.Experience), resp.Count)
	assert.Equal(t, 3, resp.Count)
}

func TestGetContactStripsIsActive(t *testing.T) {
	fake := &fakeContentStore{contact: &models.Contact{
		Email:    "pratham@example.com",
		Linkedin: "https://linkedin.com/in/pratham",
		Github:   "https://github.com/pratham",
		Resume:   "/resume.pdf",
	}}
	w := doGet(t, newPortfolioRouter(fake), "/api/portfolio/contact")

	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "pratham@example.com", raw["email"])
	assert.NotContains(t, raw, "isActive")
	assert.NotContains(t, raw, "internal_id")
}

func TestGetContactNotFound(t *testing.T) {
	w := doGet(t, newPortfolioRouter(&fakeContentStore{}), "/api/portfolio/contact")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Contact info not found")
}

// api/store/portfolio_store.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"devfolio/api/logger"
	"devfolio/api/models"
)

// ErrNotFound reports that no active record matched a single-record lookup.
var ErrNotFound = errors.New("record not found")

// PortfolioStore reads the seeded content collections. All reads filter on
// is_active, sort by sort_order (internal_id breaking ties) and cap the
// result at ListCap rows.
type PortfolioStore struct {
	db  *sql.DB
	log *logger.Logger
}

func NewPortfolioStore(db *sql.DB, log *logger.Logger) *PortfolioStore {
	return &PortfolioStore{db: db, log: log}
}

// ListProjects returns every active project in presentation order.
// An empty table yields an empty slice, not an error.
func (s *PortfolioStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, projectProjection.listClause())
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.ShortDesc, &p.Desc,
			pq.Array(&p.Details), pq.Array(&p.Impact), pq.Array(&p.TechStack),
			&p.Image, &p.Github, &p.Order, &p.IsActive,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during project query: %w", err)
	}

	s.log.Debug("projects listed", "count", len(projects))
	return projects, nil
}

// GetProjectByID looks up one active project by its public id. Returns
// ErrNotFound when no active row matches; there is no best-effort fallback.
func (s *PortfolioStore) GetProjectByID(ctx context.Context, id int) (*models.Project, error) {
	query := fmt.Sprintf("%s WHERE id = $1 AND is_active = true",
		projectProjection.selectClause())

	var p models.Project
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.ShortDesc, &p.Desc,
		pq.Array(&p.Details), pq.Array(&p.Impact), pq.Array(&p.TechStack),
		&p.Image, &p.Github, &p.Order, &p.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}

	return &p, nil
}

// ListSkills returns the active skill records reshaped into a map from
// category name to skill names. When two active records share a category,
// the one later in sort order wins outright; lists are never merged.
func (s *PortfolioStore) ListSkills(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx, skillProjection.listClause())
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	var groups []models.SkillGroup
	for rows.Next() {
		var g models.SkillGroup
		if err := rows.Scan(&g.Category, pq.Array(&g.Skills), &g.Order, &g.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during skill query: %w", err)
	}

	return groupSkills(groups), nil
}

// groupSkills reshapes sorted skill records into the response map.
// Last record in slice order wins per category.
func groupSkills(groups []models.SkillGroup) map[string][]string {
	out := make(map[string][]string, len(groups))
	for _, g := range groups {
		out[g.Category] = g.Skills
	}
	return out
}

// ListExperience returns every active experience entry in presentation order.
func (s *PortfolioStore) ListExperience(ctx context.Context) ([]models.Experience, error) {
	rows, err := s.db.QueryContext(ctx, experienceProjection.listClause())
	if err != nil {
		return nil, fmt.Errorf("failed to query experience: %w", err)
	}
	defer rows.Close()

	experience := []models.Experience{}
	for rows.Next() {
		var e models.Experience
		if err := rows.Scan(&e.Title, &e.Desc, &e.Order, &e.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan experience row: %w", err)
		}
		experience = append(experience, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during experience query: %w", err)
	}

	return experience, nil
}

// GetContact returns the active contact record. A single active row is an
// operational invariant the store does not enforce; if several exist the
// first in insertion order is served. Returns ErrNotFound when none is
// active — never an empty object.
func (s *PortfolioStore) GetContact(ctx context.Context) (*models.Contact, error) {
	query := fmt.Sprintf("%s WHERE is_active = true ORDER BY internal_id ASC LIMIT 1",
		contactProjection.selectClause())

	var c models.Contact
	err := s.db.QueryRowContext(ctx, query).Scan(&c.Email, &c.Linkedin, &c.Github, &c.Resume)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact info: %w", err)
	}

	return &c, nil
}

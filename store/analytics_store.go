// api/store/analytics_store.go
package store

import (
	"context"
	"fmt"

	"devfolio/api/database"
	"devfolio/api/logger"
	"devfolio/api/models"
)

// AnalyticsStore appends pageview events to ClickHouse and aggregates them
// for the stats endpoint. Events are immutable; this store never updates or
// deletes.
type AnalyticsStore struct {
	DB  *database.ClickHouseClient
	log *logger.Logger
}

func NewAnalyticsStore(chClient *database.ClickHouseClient, log *logger.Logger) *AnalyticsStore {
	return &AnalyticsStore{DB: chClient, log: log}
}

// InsertPageView writes one immutable event. No retry on failure; the error
// propagates to the caller.
func (s *AnalyticsStore) InsertPageView(ctx context.Context, event models.PageViewEvent) error {
	batch, err := s.DB.Conn.PrepareBatch(ctx, `
		INSERT INTO pageviews (event_id, path, user_agent, ip, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare pageview insert: %w", err)
	}

	if err := batch.Append(
		event.EventID,
		event.Path,
		event.UserAgent,
		event.IP,
		event.Timestamp,
	); err != nil {
		return fmt.Errorf("failed to append pageview to batch: %w", err)
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to insert pageview: %w", err)
	}

	s.log.Debug("pageview recorded", "path", event.Path)
	return nil
}

// GetStats returns the total event count plus at most ListCap distinct
// paths. The total comes from ClickHouse count() over MergeTree part
// metadata, so it is a fast best-effort figure that can briefly lag inserts
// still being merged — callers should treat it as an estimate, not a
// transactionally exact number. Path ordering is whatever the grouping
// stage produces; no order is guaranteed across calls.
func (s *AnalyticsStore) GetStats(ctx context.Context) (*models.StatsResponse, error) {
	var total uint64
	if err := s.DB.Conn.QueryRow(ctx, `SELECT count() FROM pageviews`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count pageviews: %w", err)
	}

	rows, err := s.DB.Conn.Query(ctx, fmt.Sprintf(`
		SELECT path
		FROM pageviews
		GROUP BY path
		LIMIT %d
	`, ListCap))
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct paths: %w", err)
	}
	defer rows.Close()

	paths := []string{}
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("failed to scan path row: %w", err)
		}
		paths = append(paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during distinct path query: %w", err)
	}

	return &models.StatsResponse{
		TotalViews:  total,
		UniquePaths: len(paths),
		Paths:       paths,
	}, nil
}

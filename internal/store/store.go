// Package store persists visitor analytics in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Visit is one recorded page view. The client address is only ever stored hashed.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	ProjectID string    `json:"project_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ProjectViews counts detail page views for one project.
type ProjectViews struct {
	ProjectID string `json:"project_id" db:"project_id"`
	Views     int64  `json:"views" db:"views"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64          `json:"total_visitors"`
	UniqueVisitors   int64          `json:"unique_visitors"`
	VisitorsToday    int64          `json:"visitors_today"`
	VisitorsThisWeek int64          `json:"visitors_this_week"`
	TopProjects      []ProjectViews `json:"top_projects"`
	RecentVisitors   []Visit        `json:"recent_visitors"`
}

// SQLiteStore keeps visits in a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

// Open opens (or creates) the database at path, enables WAL mode and
// applies pending migrations.
func Open(path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	// Visits are written from background goroutines; a single connection
	// serializes them instead of surfacing SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping checks the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type visitRow struct {
	ID        int64  `db:"id"`
	HashedIP  string `db:"hashed_ip"`
	UserAgent string `db:"user_agent"`
	Path      string `db:"path"`
	ProjectID string `db:"project_id"`
	VisitedAt int64  `db:"visited_at"`
}

func (r visitRow) visit() Visit {
	return Visit{
		ID:        r.ID,
		HashedIP:  r.HashedIP,
		UserAgent: r.UserAgent,
		Path:      r.Path,
		ProjectID: r.ProjectID,
		Timestamp: time.Unix(r.VisitedAt, 0).UTC(),
	}
}

// RecordVisit stores a visit. A zero timestamp is replaced with the current time.
func (s *SQLiteStore) RecordVisit(ctx context.Context, v Visit) error {
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visits (hashed_ip, user_agent, path, project_id, visited_at)
		VALUES (?, ?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, v.ProjectID, v.Timestamp.Unix(),
	)
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// Visit returns a single visit by id.
func (s *SQLiteStore) Visit(ctx context.Context, id int64) (Visit, error) {
	var row visitRow
	err := s.db.GetContext(ctx, &row, `
		SELECT id, hashed_ip, user_agent, path, project_id, visited_at
		FROM visits WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Visit{}, fmt.Errorf("visit %d: %w", id, ErrNotFound)
		}
		return Visit{}, fmt.Errorf("querying visit %d: %w", id, err)
	}
	return row.visit(), nil
}

// RecentVisits returns up to limit visits, newest first.
func (s *SQLiteStore) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	var rows []visitRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, hashed_ip, user_agent, path, project_id, visited_at
		FROM visits
		ORDER BY visited_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent visits: %w", err)
	}
	visits := make([]Visit, 0, len(rows))
	for _, r := range rows {
		visits = append(visits, r.visit())
	}
	return visits, nil
}

// TopProjects returns the most viewed projects.
func (s *SQLiteStore) TopProjects(ctx context.Context, limit int) ([]ProjectViews, error) {
	var top []ProjectViews
	err := s.db.SelectContext(ctx, &top, `
		SELECT project_id, COUNT(*) AS views
		FROM visits
		WHERE project_id != ''
		GROUP BY project_id
		ORDER BY views DESC, project_id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top projects: %w", err)
	}
	return top, nil
}

// Stats summarises visits relative to now.
func (s *SQLiteStore) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	stats := &Stats{}
	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.AddDate(0, 0, -7)

	counts := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, "SELECT COUNT(*) FROM visits", nil},
		{&stats.UniqueVisitors, "SELECT COUNT(DISTINCT hashed_ip) FROM visits", nil},
		{&stats.VisitorsToday, "SELECT COUNT(*) FROM visits WHERE visited_at >= ?", []any{startOfDay.Unix()}},
		{&stats.VisitorsThisWeek, "SELECT COUNT(*) FROM visits WHERE visited_at >= ?", []any{weekAgo.Unix()}},
	}
	for _, c := range counts {
		if err := s.db.GetContext(ctx, c.dest, c.query, c.args...); err != nil {
			return nil, fmt.Errorf("counting visits: %w", err)
		}
	}

	var err error
	if stats.TopProjects, err = s.TopProjects(ctx, 10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.RecentVisits(ctx, 50); err != nil {
		return nil, err
	}
	return stats, nil
}

// DeleteVisitsBefore removes visits older than cutoff and returns how many went.
func (s *SQLiteStore) DeleteVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM visits WHERE visited_at < ?", cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("deleting old visits: %w", err)
	}
	n, _ := result.RowsAffected()
	return n, nil
}

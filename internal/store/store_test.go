package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	for i := 0; i < 2; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open() #%d error = %v", i, err)
		}
		s.Close()
	}
}

func TestRecordAndReadVisit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	err := s.RecordVisit(ctx, Visit{
		HashedIP: "abc", UserAgent: "test", Path: "/project/portfolio",
		ProjectID: "portfolio", Timestamp: at,
	})
	if err != nil {
		t.Fatalf("RecordVisit() error = %v", err)
	}

	visits, err := s.RecentVisits(ctx, 10)
	if err != nil {
		t.Fatalf("RecentVisits() error = %v", err)
	}
	if len(visits) != 1 {
		t.Fatalf("len(visits) = %d, want 1", len(visits))
	}
	v, err := s.Visit(ctx, visits[0].ID)
	if err != nil {
		t.Fatalf("Visit() error = %v", err)
	}
	if v.ProjectID != "portfolio" || !v.Timestamp.Equal(at) {
		t.Fatalf("Visit() = %+v", v)
	}
}

func TestVisitNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Visit(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Visit() error = %v, want ErrNotFound", err)
	}
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

	visits := []Visit{
		{HashedIP: "a", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "a", Path: "/project/portfolio", ProjectID: "portfolio", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "b", Path: "/project/portfolio", ProjectID: "portfolio", Timestamp: now.AddDate(0, 0, -2)},
		{HashedIP: "c", Path: "/project/mobile-app", ProjectID: "mobile-app", Timestamp: now.AddDate(0, 0, -30)},
	}
	for _, v := range visits {
		if err := s.RecordVisit(ctx, v); err != nil {
			t.Fatalf("RecordVisit() error = %v", err)
		}
	}

	stats, err := s.Stats(ctx, now)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalVisitors != 4 {
		t.Fatalf("TotalVisitors = %d, want 4", stats.TotalVisitors)
	}
	if stats.UniqueVisitors != 3 {
		t.Fatalf("UniqueVisitors = %d, want 3", stats.UniqueVisitors)
	}
	if stats.VisitorsToday != 2 {
		t.Fatalf("VisitorsToday = %d, want 2", stats.VisitorsToday)
	}
	if stats.VisitorsThisWeek != 3 {
		t.Fatalf("VisitorsThisWeek = %d, want 3", stats.VisitorsThisWeek)
	}
	if len(stats.TopProjects) != 2 || stats.TopProjects[0].ProjectID != "portfolio" || stats.TopProjects[0].Views != 2 {
		t.Fatalf("TopProjects = %+v", stats.TopProjects)
	}
	if len(stats.RecentVisitors) != 4 || stats.RecentVisitors[0].Path != "/" {
		t.Fatalf("RecentVisitors = %+v", stats.RecentVisitors)
	}
}

func TestDeleteVisitsBefore(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	for _, ts := range []time.Time{now, now.AddDate(-1, 0, -1), now.AddDate(-2, 0, 0)} {
		if err := s.RecordVisit(ctx, Visit{HashedIP: "x", Timestamp: ts}); err != nil {
			t.Fatalf("RecordVisit() error = %v", err)
		}
	}

	n, err := s.DeleteVisitsBefore(ctx, now.AddDate(-1, 0, 0))
	if err != nil {
		t.Fatalf("DeleteVisitsBefore() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("deleted = %d, want 2", n)
	}
	left, _ := s.RecentVisits(ctx, 10)
	if len(left) != 1 {
		t.Fatalf("remaining = %d, want 1", len(left))
	}
}

package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Zachkp/bento-portfolio/internal/config"
	"github.com/Zachkp/bento-portfolio/internal/store"
)

func TestRunCheckBuiltInCatalog(t *testing.T) {
	if err := run([]string{"--check"}); err != nil {
		t.Fatalf("run(--check) error = %v", err)
	}
}

func TestRunCheckExampleCatalog(t *testing.T) {
	if err := run([]string{"--check", "--catalog", "projects.example.yaml"}); err != nil {
		t.Fatalf("run(--check --catalog) error = %v", err)
	}
}

func TestRunRejectsMissingCatalog(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	if err := run([]string{"--check", "--catalog", missing}); err == nil {
		t.Fatal("run() error = nil, want missing catalog error")
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	if err := run([]string{"--no-such-flag"}); err == nil {
		t.Fatal("run() error = nil, want flag error")
	}
}

func TestOpenAnalyticsPrunesExpiredVisits(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cfg := config.Config{
		DatabasePath:     filepath.Join(t.TempDir(), "visits.db"),
		VisitorRetention: 24 * time.Hour,
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	for _, at := range []time.Time{now.Add(-48 * time.Hour), now.Add(-time.Hour)} {
		if err := db.RecordVisit(ctx, store.Visit{HashedIP: "h", Path: "/", Timestamp: at}); err != nil {
			t.Fatalf("RecordVisit() error = %v", err)
		}
	}
	db.Close()

	db, err = openAnalytics(ctx, cfg, now)
	if err != nil {
		t.Fatalf("openAnalytics() error = %v", err)
	}
	defer db.Close()

	visits, err := db.RecentVisits(ctx, 10)
	if err != nil {
		t.Fatalf("RecentVisits() error = %v", err)
	}
	if len(visits) != 1 || !visits[0].Timestamp.Equal(now.Add(-time.Hour)) {
		t.Fatalf("visits = %+v, want only the recent one", visits)
	}
}

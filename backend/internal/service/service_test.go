package service

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"monsterdex/backend/internal/catalog"
	"monsterdex/backend/internal/dex"
	"monsterdex/backend/internal/overrides"
	"monsterdex/backend/pkg/errors"
)

type mockMirror struct {
	calls int
	err   error
}

func (m *mockMirror) PublishSnapshot(ctx context.Context, snap *dex.Snapshot) error {
	m.calls++
	return m.err
}

func createCatalogFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("Failed to open fixture database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(catalog.Schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	statements := []string{
		`INSERT INTO attributes VALUES (1, 'Fire'), (5, 'Dark')`,
		`INSERT INTO types VALUES (1, 'Dragon'), (4, 'Devil')`,
		`INSERT INTO monsters VALUES
			(1, 1, 1, 'Tyrra', 'tyrra-jp', 1000, 400, 100, 3, 5, 50, 1, NULL, 1, NULL, NULL, NULL),
			(2, 2, 2, 'Tyranos', 'tyranos-jp', 2000, 800, 150, 5, 10, 70, 1, NULL, 1, NULL, NULL, NULL),
			(3, 3, 3, 'Lilith', 'lilith-jp', 1500, 600, 200, 4, 8, 60, 5, NULL, 4, NULL, NULL, NULL)`,
		`INSERT INTO evolutions VALUES (1, 2)`,
		`INSERT INTO monster_region VALUES (1, 1, 1), (2, 1, 1), (3, 1, 1)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to insert fixture rows: %v", err)
		}
	}

	return path
}

func newTestService(t *testing.T, mirror GraphMirror) (*Service, string) {
	t.Helper()
	path := createCatalogFixture(t)
	return New(catalog.NewLoader("", path), overrides.NewFetcher("", ""), mirror), path
}

func TestService_ResolveBeforeFirstRefresh(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, _, err := svc.Resolve("tyrra", dex.RegionAll)
	if err == nil {
		t.Fatal("Expected error before first refresh")
	}
	if err != errors.ErrSnapshotUnavailable {
		t.Errorf("Expected ErrSnapshotUnavailable, got %v", err)
	}
}

func TestService_RefreshThenResolve(t *testing.T) {
	svc, _ := newTestService(t, nil)

	version, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if version == "" {
		t.Fatal("Expected a snapshot version")
	}

	e, trail, err := svc.Resolve("tyrra", dex.RegionAll)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if e.ID != 1 {
		t.Errorf("Expected entity 1, got %d", e.ID)
	}
	if len(trail) == 0 {
		t.Error("Expected a resolution trail")
	}

	snap, err := svc.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if snap.Version != version {
		t.Errorf("Expected current version %q, got %q", version, snap.Version)
	}
}

func TestService_RefreshSwapsVersions(t *testing.T) {
	svc, _ := newTestService(t, nil)

	first, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("First refresh failed: %v", err)
	}
	second, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Second refresh failed: %v", err)
	}
	if first == second {
		t.Error("Expected a new version per refresh")
	}

	snap, _ := svc.Current()
	if snap.Version != second {
		t.Errorf("Expected live version %q, got %q", second, snap.Version)
	}
}

func TestService_ConcurrentRefreshIsDropped(t *testing.T) {
	svc, _ := newTestService(t, nil)

	svc.refreshing.Lock()
	defer svc.refreshing.Unlock()

	_, err := svc.Refresh(context.Background())
	if err != errors.ErrRefreshInProgress {
		t.Errorf("Expected ErrRefreshInProgress, got %v", err)
	}
}

func TestService_FailedRefreshKeepsPreviousSnapshot(t *testing.T) {
	svc, path := newTestService(t, nil)

	version, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	// wreck the feed, the next refresh must fail without touching the snapshot
	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove fixture: %v", err)
	}
	if _, err := svc.Refresh(context.Background()); err == nil {
		t.Fatal("Expected refresh to fail after feed removal")
	}

	snap, err := svc.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if snap.Version != version {
		t.Errorf("Expected previous version %q to survive, got %q", version, snap.Version)
	}
	if _, _, err := svc.Resolve("tyrra", dex.RegionAll); err != nil {
		t.Errorf("Expected resolution against previous snapshot: %v", err)
	}
}

func TestService_MirrorPublishedOnSuccess(t *testing.T) {
	mirror := &mockMirror{}
	svc, _ := newTestService(t, mirror)

	if _, err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if mirror.calls != 1 {
		t.Errorf("Expected 1 mirror publish, got %d", mirror.calls)
	}
}

func TestService_MirrorFailureDoesNotFailRefresh(t *testing.T) {
	mirror := &mockMirror{err: errors.NewBaseError(errors.ErrorTypeGraph, "mirror unreachable", nil)}
	svc, _ := newTestService(t, mirror)

	if _, err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Expected refresh to succeed despite mirror failure: %v", err)
	}
	if _, err := svc.Current(); err != nil {
		t.Errorf("Expected live snapshot, got %v", err)
	}
}

func TestScheduler_RunsInitialRefresh(t *testing.T) {
	svc, _ := newTestService(t, nil)
	scheduler := NewScheduler(svc, time.Hour, time.Hour)

	scheduler.Start()
	defer scheduler.Stop()

	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, err := svc.Current(); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Scheduler never produced a snapshot")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestScheduler_StartTwiceIsNoop(t *testing.T) {
	svc, _ := newTestService(t, nil)
	scheduler := NewScheduler(svc, time.Hour, time.Hour)

	scheduler.Start()
	scheduler.Start()
	scheduler.Stop()
}

package graph

import (
	"context"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"monsterdex/backend/internal/catalog"
	"monsterdex/backend/internal/dex"
)

// TestMirror requires a running Neo4j instance
// Set NEO4J_URI, NEO4J_USER, NEO4J_PASSWORD environment variables
func TestMirror_PublishSnapshot(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver, err := createTestDriver()
	if err != nil {
		t.Fatalf("Failed to create driver: %v", err)
	}
	defer driver.Close(ctx)

	snap := buildTestSnapshot(t)
	mirror := NewMirror(driver)

	// Clean up
	defer func() {
		session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
		defer session.Close(ctx)
		_, _ = session.Run(ctx, "MATCH (m:Monster) DETACH DELETE m", nil)
		_, _ = session.Run(ctx, "MATCH (g:Generation) DETACH DELETE g", nil)
	}()

	if err := mirror.PublishSnapshot(ctx, snap); err != nil {
		t.Fatalf("PublishSnapshot failed: %v", err)
	}

	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (a:Monster {id: 1})-[:EVOLVES_TO]->(b:Monster {id: 2})
		RETURN a.nickname as nickname
	`, nil)
	if err != nil {
		t.Fatalf("Verification query failed: %v", err)
	}
	record, err := result.Single(ctx)
	if err != nil {
		t.Fatalf("Expected one evolution edge: %v", err)
	}
	nickname, _ := record.Get("nickname")
	if nickname != "tyrra" {
		t.Errorf("Expected nickname 'tyrra', got %v", nickname)
	}
}

func TestMirror_PublishSnapshotTwiceKeepsOneGeneration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver, err := createTestDriver()
	if err != nil {
		t.Fatalf("Failed to create driver: %v", err)
	}
	defer driver.Close(ctx)

	snap := buildTestSnapshot(t)
	mirror := NewMirror(driver)

	defer func() {
		session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
		defer session.Close(ctx)
		_, _ = session.Run(ctx, "MATCH (m:Monster) DETACH DELETE m", nil)
		_, _ = session.Run(ctx, "MATCH (g:Generation) DETACH DELETE g", nil)
	}()

	if err := mirror.PublishSnapshot(ctx, snap); err != nil {
		t.Fatalf("First PublishSnapshot failed: %v", err)
	}
	if err := mirror.PublishSnapshot(ctx, snap); err != nil {
		t.Fatalf("Second PublishSnapshot failed: %v", err)
	}

	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, "MATCH (g:Generation) RETURN count(g) as generations", nil)
	if err != nil {
		t.Fatalf("Verification query failed: %v", err)
	}
	record, err := result.Single(ctx)
	if err != nil {
		t.Fatalf("Failed to fetch count: %v", err)
	}
	count, _ := record.Get("generations")
	if count != int64(1) {
		t.Errorf("Expected 1 generation after republish, got %v", count)
	}
}

func buildTestSnapshot(t *testing.T) *dex.Snapshot {
	t.Helper()

	raw := &catalog.Raw{
		Monsters: []catalog.Monster{
			{ID: 1, NaID: 1, JpID: 1, NameNA: "Tyrra", NameJP: "Tyrra", Rarity: 3, Attribute1ID: 1, Type1ID: 1},
			{ID: 2, NaID: 2, JpID: 2, NameNA: "Tyranos", NameJP: "Tyranos", Rarity: 5, Attribute1ID: 1, Type1ID: 1},
		},
		Attributes: []catalog.Attribute{{ID: 1, Name: "Fire"}},
		Types:      []catalog.MonsterType{{ID: 1, Name: "Dragon"}},
		Evolutions: []catalog.Evolution{{FromID: 1, ToID: 2}},
		Regions: []catalog.RegionInfo{
			{MonsterID: 1, OnNA: true, OnJP: true},
			{MonsterID: 2, OnNA: true, OnJP: true},
		},
	}
	snap, err := dex.BuildSnapshot(raw, nil)
	if err != nil {
		t.Fatalf("BuildSnapshot failed: %v", err)
	}
	return snap
}

func createTestDriver() (neo4j.DriverWithContext, error) {
	uri := "bolt://localhost:7687"
	user := "neo4j"
	password := "password"

	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, err
	}

	// Verify connection
	ctx := context.Background()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, err
	}

	return driver, nil
}

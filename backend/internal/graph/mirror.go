package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"monsterdex/backend/internal/dex"
	"monsterdex/backend/pkg/logger"
)

// Mirror projects evolution families into Neo4j so operators can explore
// them with Cypher. The mirror is write-only from this codebase; query
// resolution never consults it.
type Mirror struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewMirror creates a graph mirror on an existing driver
func NewMirror(driver neo4j.DriverWithContext) *Mirror {
	return &Mirror{
		driver: driver,
		logger: logger.Get(),
	}
}

// Close closes the Neo4j driver connection
func (m *Mirror) Close() error {
	return m.driver.Close(context.Background())
}

// PublishSnapshot replaces the mirrored graph with the entities and
// evolution edges of one snapshot.
func (m *Mirror) PublishSnapshot(ctx context.Context, snap *dex.Snapshot) error {
	session := m.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	if _, err := session.Run(ctx, `MATCH (m:Monster) DETACH DELETE m`, nil); err != nil {
		return fmt.Errorf("failed to clear mirrored monsters: %w", err)
	}
	if _, err := session.Run(ctx, `MATCH (g:Generation) DETACH DELETE g`, nil); err != nil {
		return fmt.Errorf("failed to clear mirrored generation: %w", err)
	}

	generationQuery := `
		CREATE (g:Generation {
			version: $version,
			built_at: datetime($builtAt)
		})
		RETURN g
	`
	result, err := session.Run(ctx, generationQuery, map[string]interface{}{
		"version": snap.Version,
		"builtAt": snap.BuiltAt.Format("2006-01-02T15:04:05Z"),
	})
	if err != nil {
		return fmt.Errorf("failed to create generation node: %w", err)
	}
	if _, err := result.Single(ctx); err != nil {
		return fmt.Errorf("failed to verify generation node: %w", err)
	}

	entities := snap.Entities(dex.RegionAll)
	monsterQuery := `
		MATCH (g:Generation {version: $version})
		CREATE (m:Monster {
			id: $id,
			na_id: $naID,
			name: $name,
			nickname: $nickname,
			tier: $tier,
			family_size: $familySize,
			rarity: $rarity
		})
		CREATE (g)-[:CONTAINS]->(m)
	`
	for _, e := range entities {
		_, err := session.Run(ctx, monsterQuery, map[string]interface{}{
			"version":    snap.Version,
			"id":         e.ID,
			"naID":       e.NaID,
			"name":       e.NameNA,
			"nickname":   e.CanonicalNickname,
			"tier":       e.Tier.String(),
			"familySize": e.FamilySize,
			"rarity":     e.Rarity,
		})
		if err != nil {
			return fmt.Errorf("failed to mirror entity %d: %w", e.ID, err)
		}
	}

	edgeQuery := `
		MATCH (a:Monster {id: $fromID})
		MATCH (b:Monster {id: $toID})
		CREATE (a)-[:EVOLVES_TO]->(b)
	`
	edges := 0
	for _, e := range entities {
		for _, to := range e.EvoTo {
			_, err := session.Run(ctx, edgeQuery, map[string]interface{}{
				"fromID": e.ID,
				"toID":   to,
			})
			if err != nil {
				return fmt.Errorf("failed to mirror edge %d->%d: %w", e.ID, to, err)
			}
			edges++
		}
	}

	m.logger.Info("Evolution graph mirrored",
		zap.String("version", snap.Version),
		zap.Int("entities", len(entities)),
		zap.Int("edges", edges),
	)
	return nil
}

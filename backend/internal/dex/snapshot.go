package dex

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"monsterdex/backend/internal/catalog"
	"monsterdex/backend/pkg/logger"
)

// Snapshot is one fully built index generation. It is immutable after
// BuildSnapshot returns; readers share it freely while the next rebuild
// assembles its replacement.
type Snapshot struct {
	Version string
	BuiltAt time.Time

	all *Index
	na  *Index

	// familyOf maps every entity id to its family members, sorted by id
	familyOf map[int][]*Entity
}

// BuildSnapshot runs the full pipeline over one parsed catalog: enrich,
// link evolutions, elect nicknames, classify tiers, assign prefixes, build
// both regional indexes, then apply curated overrides. Any stage error
// aborts the build and the caller keeps its previous snapshot.
func BuildSnapshot(raw *catalog.Raw, overrides []OverrideRow) (*Snapshot, error) {
	log := logger.Named("index")
	started := time.Now()

	entities, err := enrichEntities(raw)
	if err != nil {
		return nil, err
	}

	families, err := buildFamilies(entities)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]*Entity, len(entities))
	for _, e := range entities {
		byID[e.ID] = e
		e.RawNickname = rawNickname(e.NameNA)
	}

	familyOf := make(map[int][]*Entity, len(entities))
	for _, fam := range families {
		nickname := electNickname(fam.Members)
		tier := classifyFamily(fam, byID[fam.RootID])
		for _, m := range fam.Members {
			m.CanonicalNickname = nickname
			m.Tier = tier
			m.Trail = append(m.Trail, "canonical nickname: "+nickname, "tier: "+tier.String())
		}

		members := make([]*Entity, len(fam.Members))
		copy(members, fam.Members)
		sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
		for _, m := range members {
			familyOf[m.ID] = members
		}
	}

	for _, e := range entities {
		assignPrefixes(e)
	}

	all := buildIndex(entities)

	var naEntities []*Entity
	for _, e := range entities {
		if e.OnNA {
			naEntities = append(naEntities, e)
		}
	}
	na := buildIndex(naEntities)

	snap := &Snapshot{
		Version:  uuid.NewString(),
		BuiltAt:  time.Now().UTC(),
		all:      all,
		na:       na,
		familyOf: familyOf,
	}
	applied := applyOverrides(snap, overrides, byID, log)

	log.Info("Index snapshot built",
		zap.String("version", snap.Version),
		zap.Int("entities", len(entities)),
		zap.Int("families", len(families)),
		zap.Int("na_entities", len(naEntities)),
		zap.Int("overrides_applied", applied),
		zap.Duration("duration", time.Since(started)),
	)
	return snap, nil
}

// IndexFor returns the index covering the given region
func (s *Snapshot) IndexFor(region Region) *Index {
	if region == RegionNA {
		return s.na
	}
	return s.all
}

// Resolve runs the matching cascade against the regional index
func (s *Snapshot) Resolve(query string, region Region) (*Entity, []string, error) {
	return s.IndexFor(region).Resolve(query)
}

// Entities returns the entity set of a regional index, sorted by id.
// Callers must treat the slice as read-only.
func (s *Snapshot) Entities(region Region) []*Entity {
	return s.IndexFor(region).entities
}

// FamilyOf returns the evolution family members of an entity, sorted by id.
// Returns nil for unknown ids.
func (s *Snapshot) FamilyOf(entityID int) []*Entity {
	return s.familyOf[entityID]
}

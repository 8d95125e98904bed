package dex

import (
	"sort"
	"strings"
)

// Index is one immutable lookup generation over a fixed entity set. All maps
// follow insert-if-absent: the first writer of a key keeps it, so insertion
// order decides contested keys and later passes never clobber earlier ones.
type Index struct {
	primary    map[string]*Entity
	secondWord map[string]*Entity
	byNaID     map[int]*Entity

	// entities is sorted by id ascending and drives the name scan stages
	entities []*Entity
}

// buildIndex creates the lookup maps for one entity set. High tier entities
// insert first, then low tier; within a pass bigger families and newer NA
// numbers go first so they claim contested nickname keys.
func buildIndex(entities []*Entity) *Index {
	idx := &Index{
		primary:    make(map[string]*Entity),
		secondWord: make(map[string]*Entity),
		byNaID:     make(map[int]*Entity, len(entities)),
		entities:   make([]*Entity, len(entities)),
	}
	copy(idx.entities, entities)
	sort.Slice(idx.entities, func(i, j int) bool { return idx.entities[i].ID < idx.entities[j].ID })

	for _, tier := range []Tier{TierHigh, TierLow, TierUnknown} {
		var pass []*Entity
		for _, e := range idx.entities {
			if e.Tier == tier {
				pass = append(pass, e)
			}
		}
		sort.Slice(pass, func(i, j int) bool {
			if pass[i].FamilySize != pass[j].FamilySize {
				return pass[i].FamilySize > pass[j].FamilySize
			}
			return pass[i].NaID > pass[j].NaID
		})
		for _, e := range pass {
			idx.insert(e)
		}
	}

	return idx
}

func (idx *Index) insert(e *Entity) {
	if _, exists := idx.byNaID[e.NaID]; !exists {
		idx.byNaID[e.NaID] = e
	}

	nickname := e.CanonicalNickname
	idx.putPrimary(nickname, e)
	for _, p := range e.Prefixes {
		idx.putPrimary(p+nickname, e)
		idx.putPrimary(p+" "+nickname, e)
	}

	// Two-word nicknames are also reachable by their second word alone.
	words := strings.Fields(nickname)
	if len(words) == 2 {
		second := words[1]
		idx.putSecondWord(second, e)
		for _, p := range e.Prefixes {
			idx.putSecondWord(p+second, e)
			idx.putSecondWord(p+" "+second, e)
		}
	}
}

func (idx *Index) putPrimary(key string, e *Entity) {
	if key == "" {
		return
	}
	if _, exists := idx.primary[key]; exists {
		return
	}
	idx.primary[key] = e
}

func (idx *Index) putSecondWord(key string, e *Entity) {
	if key == "" {
		return
	}
	if _, exists := idx.secondWord[key]; exists {
		return
	}
	idx.secondWord[key] = e
}

// override replaces a primary nickname key unconditionally. Curated override
// rows are the only writers allowed to clobber an existing key.
func (idx *Index) override(key string, e *Entity) {
	if key == "" {
		return
	}
	idx.primary[key] = e
}

// Size returns the number of entities this index covers
func (idx *Index) Size() int {
	return len(idx.entities)
}

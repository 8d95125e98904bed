package dex

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"monsterdex/backend/pkg/errors"
)

// minQueryRunes is the shortest query the scan stages accept. Numeric and
// exact nickname lookups run before the gate, so known short keys still hit.
const minQueryRunes = 4

// Resolve runs the matching cascade for one query. It returns the winning
// entity and a trail naming the stage that matched, or a typed resolution
// error. Ambiguous stages break ties by tier, rarity and NA number, all
// descending, so the same query always returns the same entity.
func (idx *Index) Resolve(raw string) (*Entity, []string, error) {
	var trail []string
	query := strings.ToLower(strings.TrimSpace(raw))

	if query != "" && allDigits(query) {
		if id, err := strconv.Atoi(query); err == nil {
			if e, ok := idx.byNaID[id]; ok {
				trail = append(trail, fmt.Sprintf("id lookup: %d", id))
				return e, trail, nil
			}
		}
		// Parse overflow on an absurdly long digit run still looks like an id.
		return nil, trail, errors.NewResolveIDNotFound(query)
	}

	if e, ok := idx.primary[query]; ok {
		trail = append(trail, "exact nickname")
		return e, trail, nil
	}

	if utf8.RuneCountInString(query) < minQueryRunes {
		return nil, trail, errors.NewResolveTooShort(query)
	}

	matches := make(map[int]*Entity)

	spaced := query + " "
	for key, e := range idx.primary {
		if strings.HasPrefix(key, spaced) {
			matches[e.ID] = e
		}
	}
	if len(matches) > 0 {
		trail = append(trail, fmt.Sprintf("space nickname prefix: %d matches", len(matches)))
		return pickBest(matches), trail, nil
	}

	for key, e := range idx.primary {
		if strings.HasPrefix(key, query) {
			matches[e.ID] = e
		}
	}
	if len(matches) > 0 {
		trail = append(trail, fmt.Sprintf("nickname prefix: %d matches", len(matches)))
		return pickBest(matches), trail, nil
	}

	for _, e := range idx.entities {
		if strings.HasPrefix(strings.ToLower(e.NameNA), query) || strings.HasPrefix(strings.ToLower(e.NameJP), query) {
			matches[e.ID] = e
		}
	}
	if len(matches) > 0 {
		trail = append(trail, fmt.Sprintf("name prefix: %d matches", len(matches)))
		return pickBest(matches), trail, nil
	}

	if e, ok := idx.secondWord[query]; ok {
		trail = append(trail, "second word nickname")
		return e, trail, nil
	}

	for _, e := range idx.entities {
		if strings.Contains(strings.ToLower(e.NameNA), query) || strings.Contains(strings.ToLower(e.NameJP), query) {
			matches[e.ID] = e
		}
	}
	if len(matches) > 0 {
		trail = append(trail, fmt.Sprintf("name substring: %d matches", len(matches)))
		return pickBest(matches), trail, nil
	}

	return nil, trail, errors.NewResolveNotFound(query)
}

// LookupNaID returns the entity indexed under an NA catalog number
func (idx *Index) LookupNaID(id int) (*Entity, bool) {
	e, ok := idx.byNaID[id]
	return e, ok
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// pickBest selects the winner among ambiguous matches. The candidate map is
// keyed by entity id so a multi-key entity counts once; the entity id itself
// is the final tie-break, keeping the result independent of map order.
func pickBest(candidates map[int]*Entity) *Entity {
	var best *Entity
	for _, e := range candidates {
		if best == nil || outranks(e, best) {
			best = e
		}
	}
	return best
}

func outranks(a, b *Entity) bool {
	if a.Tier != b.Tier {
		return a.Tier > b.Tier
	}
	if a.Rarity != b.Rarity {
		return a.Rarity > b.Rarity
	}
	if a.NaID != b.NaID {
		return a.NaID > b.NaID
	}
	return a.ID > b.ID
}

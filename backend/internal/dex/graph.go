package dex

import (
	"fmt"
	"sort"

	"monsterdex/backend/pkg/errors"
)

// buildFamilies back-fills reverse evolution edges and partitions entities
// into families by walking forward edges from each root. Every entity must
// land in exactly one family; a cycle, a convergence onto one entity from
// two paths, or an entity unreachable from any root aborts the rebuild.
func buildFamilies(entities []*Entity) ([]*Family, error) {
	byID := make(map[int]*Entity, len(entities))
	for _, e := range entities {
		byID[e.ID] = e
	}

	ordered := make([]*Entity, len(entities))
	copy(ordered, entities)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	for _, e := range ordered {
		sort.Ints(e.EvoTo)
		for _, to := range e.EvoTo {
			target := byID[to]
			target.EvoFrom = append(target.EvoFrom, e.ID)
		}
	}

	// entity id -> root id of the family it was claimed by
	assigned := make(map[int]int, len(entities))
	var families []*Family

	for _, root := range ordered {
		if len(root.EvoFrom) != 0 {
			continue
		}

		fam := &Family{RootID: root.ID}
		seen := map[int]bool{root.ID: true}
		stack := []int{root.ID}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if prevRoot, ok := assigned[id]; ok {
				return nil, errors.NewGraphIntegrity(id, fmt.Sprintf("reachable from roots %d and %d", prevRoot, root.ID))
			}
			assigned[id] = root.ID

			e := byID[id]
			fam.Members = append(fam.Members, e)
			for _, next := range e.EvoTo {
				if seen[next] {
					return nil, errors.NewGraphIntegrity(next, "revisited during traversal, evolution edges form a cycle or converge")
				}
				seen[next] = true
				stack = append(stack, next)
			}
		}
		families = append(families, fam)
	}

	for _, e := range ordered {
		if _, ok := assigned[e.ID]; !ok {
			return nil, errors.NewGraphIntegrity(e.ID, "unreachable from any evolution root")
		}
	}

	for _, fam := range families {
		for _, m := range fam.Members {
			m.FamilySize = len(fam.Members)
		}
	}

	return families, nil
}

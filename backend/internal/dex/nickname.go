package dex

import (
	"sort"
	"strings"
)

// rawNickname derives an entity's nickname vote from its display name.
// Comma-separated names keep the clause after the last comma, except when
// the clause after the first comma is a title ("X, the Y" keeps "x").
// The word "awoken" is stripped wherever it appears.
func rawNickname(name string) string {
	nickname := strings.ToLower(name)
	if strings.Contains(nickname, ",") {
		parts := strings.Split(nickname, ",")
		if strings.HasPrefix(strings.TrimSpace(parts[1]), "the ") {
			nickname = parts[0]
		} else {
			nickname = parts[len(parts)-1]
		}
	}
	nickname = strings.ReplaceAll(nickname, "awoken", "")
	return strings.TrimSpace(nickname)
}

// electNickname picks the canonical nickname for a family by plurality over
// the members' votes. Ties go to the alphabetically earliest candidate, so
// the result never depends on member order.
func electNickname(members []*Entity) string {
	votes := make([]string, len(members))
	for i, m := range members {
		votes[i] = m.RawNickname
	}
	sort.Strings(votes)

	best := ""
	bestCount := 0
	for i := 0; i < len(votes); {
		j := i
		for j < len(votes) && votes[j] == votes[i] {
			j++
		}
		if j-i > bestCount {
			bestCount = j - i
			best = votes[i]
		}
		i = j
	}
	return best
}

package dex

import "strings"

// lowTierTypes are root types that mark a whole family as low tier
var lowTierTypes = map[string]bool{
	"evolve":    true,
	"enhance":   true,
	"protected": true,
	"awoken":    true,
	"vendor":    true,
}

const (
	minRootRarity   = 2
	minFamilyRarity = 5
)

// classifyFamily decides the tier of a whole family from its root. Material
// and vendor lines, tamadra variants, chibis and low rarity families rank
// low so real monsters win contested nicknames.
func classifyFamily(fam *Family, root *Entity) Tier {
	if isLowTierType(root.Types) {
		return TierLow
	}
	if strings.Contains(strings.ToLower(root.NameNA), "tamadra") {
		return TierLow
	}
	if root.Rarity < minRootRarity {
		return TierLow
	}
	if !containsUpper(root.NameNA) {
		return TierLow
	}

	maxRarity := 0
	for _, m := range fam.Members {
		if m.Rarity > maxRarity {
			maxRarity = m.Rarity
		}
	}
	if maxRarity < minFamilyRarity {
		return TierLow
	}

	return TierHigh
}

// isLowTierType checks the primary type only. Feed type names carry a
// qualifier ("Evolve Material", "Vendor Material"), so the first word decides.
func isLowTierType(types []string) bool {
	if len(types) == 0 {
		return false
	}
	words := strings.Fields(strings.ToLower(types[0]))
	return len(words) > 0 && lowTierTypes[words[0]]
}

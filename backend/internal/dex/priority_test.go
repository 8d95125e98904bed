package dex

import "testing"

func highTierFamily() (*Family, *Entity) {
	root := &Entity{ID: 1, NameNA: "Tyrra", Rarity: 3, Types: []string{"Dragon"}}
	final := &Entity{ID: 2, NameNA: "Tyrannos Rex", Rarity: 6, Types: []string{"Dragon"}}
	return &Family{RootID: 1, Members: []*Entity{root, final}}, root
}

func TestClassifyFamily_High(t *testing.T) {
	fam, root := highTierFamily()
	if tier := classifyFamily(fam, root); tier != TierHigh {
		t.Errorf("Expected high tier, got %v", tier)
	}
}

func TestClassifyFamily_MaterialRootTypeIsLow(t *testing.T) {
	// feed type names carry a qualifier after the deciding word
	for _, typeName := range []string{"Evolve Material", "Enhance Material", "Protected", "Awoken Skill Material", "Vendor Material"} {
		fam, root := highTierFamily()
		root.Types = []string{typeName}
		if tier := classifyFamily(fam, root); tier != TierLow {
			t.Errorf("Expected low tier for root type %q, got %v", typeName, tier)
		}
	}
}

func TestClassifyFamily_SecondaryMaterialTypeStaysHigh(t *testing.T) {
	// only the primary type of the root decides
	fam, root := highTierFamily()
	root.Types = []string{"Dragon", "Evolve"}
	if tier := classifyFamily(fam, root); tier != TierHigh {
		t.Errorf("Expected high tier, got %v", tier)
	}
}

func TestClassifyFamily_TamadraNameIsLow(t *testing.T) {
	fam, root := highTierFamily()
	root.NameNA = "King Tamadra"
	if tier := classifyFamily(fam, root); tier != TierLow {
		t.Errorf("Expected low tier for tamadra family, got %v", tier)
	}
}

func TestClassifyFamily_LowRootRarityIsLow(t *testing.T) {
	fam, root := highTierFamily()
	root.Rarity = 1
	if tier := classifyFamily(fam, root); tier != TierLow {
		t.Errorf("Expected low tier for rarity 1 root, got %v", tier)
	}
}

func TestClassifyFamily_LowercaseRootIsLow(t *testing.T) {
	fam, root := highTierFamily()
	root.NameNA = "mini tyrra"
	if tier := classifyFamily(fam, root); tier != TierLow {
		t.Errorf("Expected low tier for lowercase root name, got %v", tier)
	}
}

func TestClassifyFamily_LowFamilyRarityIsLow(t *testing.T) {
	fam, root := highTierFamily()
	for _, m := range fam.Members {
		m.Rarity = 4
	}
	root.Rarity = 4
	if tier := classifyFamily(fam, root); tier != TierLow {
		t.Errorf("Expected low tier when no member reaches rarity 5, got %v", tier)
	}
}

func TestClassifyFamily_FinalEvoRarityKeepsFamilyHigh(t *testing.T) {
	// root below the family threshold, final evolution above it
	fam, root := highTierFamily()
	root.Rarity = 3
	fam.Members[1].Rarity = 7
	if tier := classifyFamily(fam, root); tier != TierHigh {
		t.Errorf("Expected high tier, got %v", tier)
	}
}

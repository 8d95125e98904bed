package dex

import "testing"

func indexedEntity(id, naID int, nickname string, tier Tier, familySize int, prefixes ...string) *Entity {
	return &Entity{
		ID:                id,
		NaID:              naID,
		NameNA:            nickname,
		CanonicalNickname: nickname,
		Tier:              tier,
		FamilySize:        familySize,
		Prefixes:          prefixes,
	}
}

func TestBuildIndex_NicknameKeys(t *testing.T) {
	e := indexedEntity(1, 1, "horus", TierHigh, 1, "r")
	idx := buildIndex([]*Entity{e})

	for _, key := range []string{"horus", "rhorus", "r horus"} {
		if got, ok := idx.primary[key]; !ok || got != e {
			t.Errorf("Expected key %q to map to entity 1", key)
		}
	}
	if _, ok := idx.byNaID[1]; !ok {
		t.Error("Expected NA id key 1")
	}
}

func TestBuildIndex_SecondWordKeys(t *testing.T) {
	e := indexedEntity(1, 1, "flame chaser", TierHigh, 1, "r")
	idx := buildIndex([]*Entity{e})

	for _, key := range []string{"chaser", "rchaser", "r chaser"} {
		if got, ok := idx.secondWord[key]; !ok || got != e {
			t.Errorf("Expected second word key %q to map to entity 1", key)
		}
	}
}

func TestBuildIndex_NoSecondWordForOtherLengths(t *testing.T) {
	one := indexedEntity(1, 1, "horus", TierHigh, 1)
	three := indexedEntity(2, 2, "guardian of flame", TierHigh, 1)
	idx := buildIndex([]*Entity{one, three})

	if len(idx.secondWord) != 0 {
		t.Errorf("Expected no second word keys, got %d", len(idx.secondWord))
	}
}

func TestBuildIndex_HighTierWinsContestedKey(t *testing.T) {
	high := indexedEntity(1, 1, "kali", TierHigh, 2)
	low := indexedEntity(2, 2, "kali", TierLow, 4)
	idx := buildIndex([]*Entity{low, high})

	if idx.primary["kali"] != high {
		t.Error("Expected high tier entity to claim the contested nickname")
	}
}

func TestBuildIndex_BiggerFamilyWinsWithinTier(t *testing.T) {
	small := indexedEntity(1, 1, "dragon", TierHigh, 2)
	big := indexedEntity(2, 2, "dragon", TierHigh, 5)
	idx := buildIndex([]*Entity{small, big})

	if idx.primary["dragon"] != big {
		t.Error("Expected bigger family to claim the contested nickname")
	}
}

func TestBuildIndex_NewerNaIDWinsWithinFamilySize(t *testing.T) {
	older := indexedEntity(1, 100, "sonia", TierHigh, 3)
	newer := indexedEntity(2, 200, "sonia", TierHigh, 3)
	idx := buildIndex([]*Entity{older, newer})

	if idx.primary["sonia"] != newer {
		t.Error("Expected newer NA number to claim the contested nickname")
	}
}

func TestIndexInsert_FirstWriteWins(t *testing.T) {
	first := indexedEntity(1, 100, "valk", TierHigh, 3)
	second := indexedEntity(2, 200, "valk", TierHigh, 3)

	idx := &Index{
		primary:    make(map[string]*Entity),
		secondWord: make(map[string]*Entity),
		byNaID:     make(map[int]*Entity),
	}
	idx.insert(first)
	idx.insert(second)

	// the later insert never clobbers the earlier one
	if idx.primary["valk"] != first {
		t.Error("Expected first inserted entity to keep the key")
	}
}

func TestBuildIndex_EmptyNicknameAddsNoKeys(t *testing.T) {
	e := indexedEntity(1, 1, "", TierLow, 1)
	idx := buildIndex([]*Entity{e})

	if _, ok := idx.primary[""]; ok {
		t.Error("Empty nickname must not become a key")
	}
}

func TestIndexOverride_ReplacesExistingKey(t *testing.T) {
	holder := indexedEntity(1, 1, "gronia", TierHigh, 3)
	target := indexedEntity(2, 2, "sylvie", TierHigh, 3)
	idx := buildIndex([]*Entity{holder, target})

	idx.override("gronia", target)
	if idx.primary["gronia"] != target {
		t.Error("Expected override to replace the key holder")
	}
}

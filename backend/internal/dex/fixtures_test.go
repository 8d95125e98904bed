package dex

import (
	"monsterdex/backend/internal/catalog"
)

// Shared fixture builders for the pipeline tests

func newTestMonster(id int, name string, rarity int) catalog.Monster {
	return catalog.Monster{
		ID:           id,
		NaID:         id,
		JpID:         id,
		NameNA:       name,
		NameJP:       name + " jp",
		HP:           1000,
		Atk:          500,
		Rcv:          300,
		Rarity:       rarity,
		Cost:         10,
		MaxLevel:     50,
		Attribute1ID: 1,
		Type1ID:      1,
	}
}

func newTestRaw(monsters []catalog.Monster, evolutions []catalog.Evolution) *catalog.Raw {
	regions := make([]catalog.RegionInfo, 0, len(monsters))
	for _, m := range monsters {
		regions = append(regions, catalog.RegionInfo{MonsterID: m.ID, OnNA: true, OnJP: true})
	}
	return &catalog.Raw{
		Monsters: monsters,
		Attributes: []catalog.Attribute{
			{ID: 1, Name: "Fire"},
			{ID: 2, Name: "Water"},
			{ID: 3, Name: "Wood"},
			{ID: 4, Name: "Light"},
			{ID: 5, Name: "Dark"},
		},
		Types: []catalog.MonsterType{
			{ID: 1, Name: "Dragon"},
			{ID: 2, Name: "Evolve Material"},
			{ID: 3, Name: "God"},
			{ID: 4, Name: "Devil"},
			{ID: 5, Name: "Physical"},
		},
		Skills: []catalog.Skill{
			{ID: 10, Name: "Guard Stance", Description: "Reduce damage taken."},
			{ID: 11, Name: "Double Orbs", Description: "Change two orb types."},
		},
		Evolutions: evolutions,
		Regions:    regions,
	}
}

// markJPOnly flips the region row of one monster to a JP only release
func markJPOnly(raw *catalog.Raw, monsterID int) {
	for i := range raw.Regions {
		if raw.Regions[i].MonsterID == monsterID {
			raw.Regions[i].OnNA = false
			raw.Regions[i].OnJP = true
		}
	}
}

func findEntity(entities []*Entity, id int) *Entity {
	for _, e := range entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

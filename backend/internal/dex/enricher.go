package dex

import (
	"fmt"
	"sort"

	"monsterdex/backend/internal/catalog"
	"monsterdex/backend/pkg/errors"
)

// enrichEntities joins the raw feed collections into self-contained entities.
// Every referenced foreign id must exist; a dangling reference aborts the
// rebuild so a half-joined snapshot is never published. Absent optional rows
// (no region row, no awakenings) simply leave those fields unset.
func enrichEntities(raw *catalog.Raw) ([]*Entity, error) {
	attrNames := make(map[int]string, len(raw.Attributes))
	for _, a := range raw.Attributes {
		attrNames[a.ID] = a.Name
	}
	typeNames := make(map[int]string, len(raw.Types))
	for _, t := range raw.Types {
		typeNames[t.ID] = t.Name
	}
	skills := make(map[int]catalog.Skill, len(raw.Skills))
	for _, s := range raw.Skills {
		skills[s.ID] = s
	}

	byID := make(map[int]*Entity, len(raw.Monsters))
	entities := make([]*Entity, 0, len(raw.Monsters))
	for _, m := range raw.Monsters {
		if _, dup := byID[m.ID]; dup {
			return nil, errors.NewMalformedRecord("monsters", m.ID, "duplicate monster id")
		}

		e := &Entity{
			ID:       m.ID,
			NaID:     m.NaID,
			JpID:     m.JpID,
			NameNA:   m.NameNA,
			NameJP:   m.NameJP,
			HP:       m.HP,
			Atk:      m.Atk,
			Rcv:      m.Rcv,
			Weighted: weightedStat(m.HP, m.Atk, m.Rcv),
			Rarity:   m.Rarity,
			Cost:     m.Cost,
			MaxLevel: m.MaxLevel,
		}

		name, ok := attrNames[m.Attribute1ID]
		if !ok {
			return nil, errors.NewMalformedRecord("monsters", m.ID, fmt.Sprintf("unknown attribute id %d", m.Attribute1ID))
		}
		e.Attributes = append(e.Attributes, name)
		if m.Attribute2ID != nil {
			name, ok := attrNames[*m.Attribute2ID]
			if !ok {
				return nil, errors.NewMalformedRecord("monsters", m.ID, fmt.Sprintf("unknown attribute id %d", *m.Attribute2ID))
			}
			e.Attributes = append(e.Attributes, name)
		}

		name, ok = typeNames[m.Type1ID]
		if !ok {
			return nil, errors.NewMalformedRecord("monsters", m.ID, fmt.Sprintf("unknown type id %d", m.Type1ID))
		}
		e.Types = append(e.Types, name)
		if m.Type2ID != nil {
			name, ok := typeNames[*m.Type2ID]
			if !ok {
				return nil, errors.NewMalformedRecord("monsters", m.ID, fmt.Sprintf("unknown type id %d", *m.Type2ID))
			}
			e.Types = append(e.Types, name)
		}

		if m.ActiveSkillID != nil {
			skill, ok := skills[*m.ActiveSkillID]
			if !ok {
				return nil, errors.NewMalformedRecord("monsters", m.ID, fmt.Sprintf("unknown active skill id %d", *m.ActiveSkillID))
			}
			e.ActiveSkill = skill.Name
			e.ActiveSkillDesc = skill.Description
		}
		if m.LeaderSkillID != nil {
			skill, ok := skills[*m.LeaderSkillID]
			if !ok {
				return nil, errors.NewMalformedRecord("monsters", m.ID, fmt.Sprintf("unknown leader skill id %d", *m.LeaderSkillID))
			}
			e.LeaderSkill = skill.Name
			e.LeaderSkillDesc = skill.Description
		}

		byID[m.ID] = e
		entities = append(entities, e)
	}

	// The optional third type rides on the add info table.
	for _, info := range raw.AddInfo {
		e, ok := byID[info.MonsterID]
		if !ok {
			return nil, errors.NewMalformedRecord("monster_add_info", info.MonsterID, "unknown monster id")
		}
		name, ok := typeNames[info.SubTypeID]
		if !ok {
			return nil, errors.NewMalformedRecord("monster_add_info", info.MonsterID, fmt.Sprintf("unknown type id %d", info.SubTypeID))
		}
		e.Types = append(e.Types, name)
	}

	grouped := make(map[int][]catalog.Awakening)
	for _, a := range raw.Awakenings {
		if _, ok := byID[a.MonsterID]; !ok {
			return nil, errors.NewMalformedRecord("awakenings", a.MonsterID, "unknown monster id")
		}
		grouped[a.MonsterID] = append(grouped[a.MonsterID], a)
	}
	for id, list := range grouped {
		sort.Slice(list, func(i, j int) bool { return list[i].OrderIdx < list[j].OrderIdx })
		e := byID[id]
		for _, a := range list {
			e.Awakenings = append(e.Awakenings, a.Name)
		}
	}

	for _, r := range raw.Regions {
		e, ok := byID[r.MonsterID]
		if !ok {
			return nil, errors.NewMalformedRecord("monster_region", r.MonsterID, "unknown monster id")
		}
		e.OnNA = r.OnNA
		e.OnJP = r.OnJP
	}

	for _, evo := range raw.Evolutions {
		from, ok := byID[evo.FromID]
		if !ok {
			return nil, errors.NewMalformedRecord("evolutions", evo.FromID, "unknown evolution source")
		}
		if _, ok := byID[evo.ToID]; !ok {
			return nil, errors.NewMalformedRecord("evolutions", evo.ToID, "unknown evolution target")
		}
		// duplicate feed rows for the same edge collapse to one
		if !containsID(from.EvoTo, evo.ToID) {
			from.EvoTo = append(from.EvoTo, evo.ToID)
		}
	}

	return entities, nil
}

// weightedStat mirrors the in-game weighted stat formula
func weightedStat(hp, atk, rcv int) int {
	return int(float64(hp)/10 + float64(atk)/5 + float64(rcv)/3)
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

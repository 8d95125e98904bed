package dex

// Tier classifies an evolution family for index ordering. High tier families
// are indexed before low tier ones so they win contested nickname keys.
type Tier int

const (
	TierUnknown Tier = iota
	TierLow
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierLow:
		return "low"
	default:
		return "unknown"
	}
}

// Region selects which index of a snapshot a query runs against
type Region int

const (
	// RegionAll covers every catalog entity
	RegionAll Region = iota
	// RegionNA covers only entities released on the NA server
	RegionNA
)

func (r Region) String() string {
	if r == RegionNA {
		return "na"
	}
	return "all"
}

// Entity is one resolvable catalog record. After enrichment it is fully
// self-contained; resolution never goes back to the feed database.
type Entity struct {
	ID   int `json:"id"`
	NaID int `json:"na_id"`
	JpID int `json:"jp_id"`

	NameNA string `json:"name_na"`
	NameJP string `json:"name_jp"`

	HP       int `json:"hp"`
	Atk      int `json:"atk"`
	Rcv      int `json:"rcv"`
	Weighted int `json:"weighted"`
	Rarity   int `json:"rarity"`
	Cost     int `json:"cost"`
	MaxLevel int `json:"max_level"`

	// Attributes holds one or two attribute names, primary first
	Attributes []string `json:"attributes"`
	// Types holds one to three type names
	Types []string `json:"types"`
	// Awakenings keeps feed order and may contain repeats
	Awakenings []string `json:"awakenings,omitempty"`

	ActiveSkill     string `json:"active_skill,omitempty"`
	ActiveSkillDesc string `json:"active_skill_desc,omitempty"`
	LeaderSkill     string `json:"leader_skill,omitempty"`
	LeaderSkillDesc string `json:"leader_skill_desc,omitempty"`

	// EvoTo and EvoFrom are entity ids, kept symmetric by the graph builder
	EvoTo   []int `json:"evo_to,omitempty"`
	EvoFrom []int `json:"evo_from,omitempty"`

	OnNA bool `json:"on_na"`
	OnJP bool `json:"on_jp"`

	// RawNickname is this entity's own vote; CanonicalNickname is the family
	// winner and identical across all family members
	RawNickname       string   `json:"raw_nickname"`
	CanonicalNickname string   `json:"canonical_nickname"`
	Prefixes          []string `json:"prefixes,omitempty"`

	FamilySize int  `json:"family_size"`
	Tier       Tier `json:"tier"`

	// Trail records pipeline decisions about this entity for debugging
	Trail []string `json:"trail,omitempty"`
}

// addPrefix appends a prefix once, preserving insertion order
func (e *Entity) addPrefix(p string) {
	for _, existing := range e.Prefixes {
		if existing == p {
			return
		}
	}
	e.Prefixes = append(e.Prefixes, p)
	e.Trail = append(e.Trail, "prefix: "+p)
}

// Family is the set of entities reachable from one evolution root
type Family struct {
	RootID  int
	Members []*Entity
}

package catalog

// Raw bundles the parsed feed collections exactly as stored in the catalog
// database. The index builder consumes it; no referential validation happens
// here.
type Raw struct {
	Monsters   []Monster
	Attributes []Attribute
	Types      []MonsterType
	Skills     []Skill
	Awakenings []Awakening
	Evolutions []Evolution
	AddInfo    []AddInfo
	Regions    []RegionInfo
}

// Monster is one base catalog row. Optional foreign keys are nil when the
// feed stores NULL.
type Monster struct {
	ID            int
	NaID          int
	JpID          int
	NameNA        string
	NameJP        string
	HP            int
	Atk           int
	Rcv           int
	Rarity        int
	Cost          int
	MaxLevel      int
	Attribute1ID  int
	Attribute2ID  *int
	Type1ID       int
	Type2ID       *int
	ActiveSkillID *int
	LeaderSkillID *int
}

// Attribute is one elemental attribute lookup row
type Attribute struct {
	ID   int
	Name string
}

// MonsterType is one type lookup row
type MonsterType struct {
	ID   int
	Name string
}

// Skill is one active or leader skill row
type Skill struct {
	ID          int
	Name        string
	Description string
}

// Awakening is one awakening slot for a monster, ordered by OrderIdx
type Awakening struct {
	MonsterID int
	OrderIdx  int
	Name      string
}

// Evolution is one directed evolution edge between two monsters
type Evolution struct {
	FromID int
	ToID   int
}

// AddInfo carries the optional third type of a monster
type AddInfo struct {
	MonsterID int
	SubTypeID int
}

// RegionInfo records which regional servers a monster is released on
type RegionInfo struct {
	MonsterID int
	OnNA      bool
	OnJP      bool
}

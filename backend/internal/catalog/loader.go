package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"monsterdex/backend/pkg/errors"
	"monsterdex/backend/pkg/logger"
)

// Loader reads the catalog feed database from disk, optionally downloading a
// fresh copy first when a URL is configured.
type Loader struct {
	url    string
	path   string
	client *http.Client
	logger *zap.Logger
}

// NewLoader creates a loader for the given feed source. url may be empty, in
// which case the database at path is read as-is.
func NewLoader(url, path string) *Loader {
	return &Loader{
		url:    url,
		path:   path,
		client: &http.Client{Timeout: 5 * time.Minute},
		logger: logger.Named("catalog"),
	}
}

// Load produces the raw collections for one rebuild. Any database or
// transfer failure surfaces as a feed availability error so the caller keeps
// serving the previous snapshot.
func (l *Loader) Load(ctx context.Context) (*Raw, error) {
	if l.url != "" {
		if err := l.download(ctx); err != nil {
			return nil, err
		}
	}

	db, err := openDatabase(l.path)
	if err != nil {
		return nil, errors.NewFeedUnavailable(l.path, err)
	}
	defer db.Close()

	raw, err := readAll(ctx, db)
	if err != nil {
		return nil, errors.NewFeedUnavailable(l.path, err)
	}

	l.logger.Debug("Catalog database parsed",
		zap.String("path", l.path),
		zap.Int("monsters", len(raw.Monsters)),
		zap.Int("evolutions", len(raw.Evolutions)),
	)
	return raw, nil
}

func openDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	return db, nil
}

func readAll(ctx context.Context, db *sql.DB) (*Raw, error) {
	raw := &Raw{}
	var err error

	if raw.Monsters, err = readMonsters(ctx, db); err != nil {
		return nil, err
	}
	if raw.Attributes, err = readAttributes(ctx, db); err != nil {
		return nil, err
	}
	if raw.Types, err = readTypes(ctx, db); err != nil {
		return nil, err
	}
	if raw.Skills, err = readSkills(ctx, db); err != nil {
		return nil, err
	}
	if raw.Awakenings, err = readAwakenings(ctx, db); err != nil {
		return nil, err
	}
	if raw.Evolutions, err = readEvolutions(ctx, db); err != nil {
		return nil, err
	}
	if raw.AddInfo, err = readAddInfo(ctx, db); err != nil {
		return nil, err
	}
	if raw.Regions, err = readRegions(ctx, db); err != nil {
		return nil, err
	}

	return raw, nil
}

func readMonsters(ctx context.Context, db *sql.DB) ([]Monster, error) {
	const query = `
		SELECT monster_id, monster_no_na, monster_no_jp, name_na, name_jp,
		       hp_max, atk_max, rcv_max, rarity, cost, max_level,
		       attribute_1_id, attribute_2_id, type_1_id, type_2_id,
		       active_skill_id, leader_skill_id
		FROM monsters
		ORDER BY monster_id
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monsters: %w", err)
	}
	defer rows.Close()

	var out []Monster
	for rows.Next() {
		var m Monster
		var attr2, type2, active, leader sql.NullInt64
		if err := rows.Scan(
			&m.ID, &m.NaID, &m.JpID, &m.NameNA, &m.NameJP,
			&m.HP, &m.Atk, &m.Rcv, &m.Rarity, &m.Cost, &m.MaxLevel,
			&m.Attribute1ID, &attr2, &m.Type1ID, &type2,
			&active, &leader,
		); err != nil {
			return nil, fmt.Errorf("failed to scan monster row: %w", err)
		}
		m.Attribute2ID = nullableID(attr2)
		m.Type2ID = nullableID(type2)
		m.ActiveSkillID = nullableID(active)
		m.LeaderSkillID = nullableID(leader)
		out = append(out, m)
	}
	return out, rows.Err()
}

func readAttributes(ctx context.Context, db *sql.DB) ([]Attribute, error) {
	rows, err := db.QueryContext(ctx, `SELECT attribute_id, name FROM attributes ORDER BY attribute_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query attributes: %w", err)
	}
	defer rows.Close()

	var out []Attribute
	for rows.Next() {
		var a Attribute
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan attribute row: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func readTypes(ctx context.Context, db *sql.DB) ([]MonsterType, error) {
	rows, err := db.QueryContext(ctx, `SELECT type_id, name FROM types ORDER BY type_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query types: %w", err)
	}
	defer rows.Close()

	var out []MonsterType
	for rows.Next() {
		var t MonsterType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan type row: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func readSkills(ctx context.Context, db *sql.DB) ([]Skill, error) {
	rows, err := db.QueryContext(ctx, `SELECT skill_id, name, description FROM skills ORDER BY skill_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	var out []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Description); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func readAwakenings(ctx context.Context, db *sql.DB) ([]Awakening, error) {
	rows, err := db.QueryContext(ctx, `SELECT monster_id, order_idx, name FROM awakenings ORDER BY monster_id, order_idx`)
	if err != nil {
		return nil, fmt.Errorf("failed to query awakenings: %w", err)
	}
	defer rows.Close()

	var out []Awakening
	for rows.Next() {
		var a Awakening
		if err := rows.Scan(&a.MonsterID, &a.OrderIdx, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan awakening row: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func readEvolutions(ctx context.Context, db *sql.DB) ([]Evolution, error) {
	rows, err := db.QueryContext(ctx, `SELECT from_monster_id, to_monster_id FROM evolutions ORDER BY from_monster_id, to_monster_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query evolutions: %w", err)
	}
	defer rows.Close()

	var out []Evolution
	for rows.Next() {
		var e Evolution
		if err := rows.Scan(&e.FromID, &e.ToID); err != nil {
			return nil, fmt.Errorf("failed to scan evolution row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func readAddInfo(ctx context.Context, db *sql.DB) ([]AddInfo, error) {
	rows, err := db.QueryContext(ctx, `SELECT monster_id, sub_type_id FROM monster_add_info ORDER BY monster_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query monster_add_info: %w", err)
	}
	defer rows.Close()

	var out []AddInfo
	for rows.Next() {
		var a AddInfo
		if err := rows.Scan(&a.MonsterID, &a.SubTypeID); err != nil {
			return nil, fmt.Errorf("failed to scan monster_add_info row: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func readRegions(ctx context.Context, db *sql.DB) ([]RegionInfo, error) {
	rows, err := db.QueryContext(ctx, `SELECT monster_id, on_na, on_jp FROM monster_region ORDER BY monster_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query monster_region: %w", err)
	}
	defer rows.Close()

	var out []RegionInfo
	for rows.Next() {
		var r RegionInfo
		var onNA, onJP int
		if err := rows.Scan(&r.MonsterID, &onNA, &onJP); err != nil {
			return nil, fmt.Errorf("failed to scan monster_region row: %w", err)
		}
		r.OnNA = onNA != 0
		r.OnJP = onJP != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

func nullableID(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	id := int(v.Int64)
	return &id
}

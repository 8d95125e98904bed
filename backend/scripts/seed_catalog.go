package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"monsterdex/backend/internal/catalog"
	"monsterdex/backend/pkg/config"
	"monsterdex/backend/pkg/logger"
)

func main() {
	path := flag.String("path", "", "Catalog database path (defaults to CATALOG_DB_PATH)")
	force := flag.Bool("force", false, "Overwrite an existing database")
	flag.Parse()

	// Initialize logger
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Seeding development catalog...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	dbPath := *path
	if dbPath == "" {
		dbPath = cfg.CatalogDBPath
	}

	if _, err := os.Stat(dbPath); err == nil {
		if !*force {
			log.Info("Catalog database already exists, skipping (use -force to overwrite)",
				zap.String("path", dbPath),
			)
			os.Exit(0)
		}
		if err := os.Remove(dbPath); err != nil {
			log.Fatal("Failed to remove existing database", zap.Error(err))
		}
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal("Failed to create database directory", zap.Error(err))
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Creating schema...")
	if _, err := db.Exec(catalog.Schema); err != nil {
		log.Fatal("Failed to create schema", zap.Error(err))
	}

	log.Info("Inserting fixture monsters...")
	if err := seedFixtures(db); err != nil {
		log.Fatal("Failed to insert fixtures", zap.Error(err))
	}

	var monsters int
	if err := db.QueryRow("SELECT COUNT(*) FROM monsters").Scan(&monsters); err != nil {
		log.Fatal("Failed to verify seed", zap.Error(err))
	}

	log.Info("Catalog seeded successfully",
		zap.String("path", dbPath),
		zap.Int("monsters", monsters),
	)
}

// seedFixtures writes a small catalog covering every pipeline feature:
// multi-stage evolution families, an awoken and a reincarnated form, a
// contested nickname between a high and a low tier family, a vendor
// material, a JP-only monster, dual attributes and a sub-type.
func seedFixtures(db *sql.DB) error {
	statements := []string{
		`INSERT INTO attributes (attribute_id, name) VALUES
			(1, 'Fire'), (2, 'Water'), (3, 'Wood'), (4, 'Light'), (5, 'Dark')`,

		`INSERT INTO types (type_id, name) VALUES
			(1, 'Dragon'), (2, 'Evolve Material'), (3, 'God'), (4, 'Devil'),
			(5, 'Physical'), (6, 'Healer'), (7, 'Attacker'), (8, 'Protected')`,

		`INSERT INTO skills (skill_id, name, description) VALUES
			(10, 'Guard Stance', 'Change all orbs to Heart orbs.'),
			(11, 'Draco Summoning Circle', 'Change all orbs to Fire and Dark orbs.'),
			(12, 'Dragon Destiny', 'Dragon type cards ATK x3.'),
			(13, 'Night Veil', 'Reduce damage taken by 50% for 3 turns.')`,

		`INSERT INTO monsters (monster_id, monster_no_na, monster_no_jp,
			name_na, name_jp, hp_max, atk_max, rcv_max, rarity, cost, max_level,
			attribute_1_id, attribute_2_id, type_1_id, type_2_id,
			active_skill_id, leader_skill_id) VALUES
			(1, 1, 1, 'Tyrra', 'tirara', 1000, 500, 150, 3, 5, 50, 1, NULL, 1, NULL, NULL, NULL),
			(2, 2, 2, 'Tyranos', 'tiranosu', 1800, 950, 200, 4, 12, 70, 1, NULL, 1, NULL, NULL, 12),
			(3, 3, 3, 'Destroying Tyrant, Tyrannos', 'hakai no boukun', 3200, 1600, 250, 6, 30, 99, 1, 5, 1, 5, 11, 12),
			(20, 20, 20, 'Lilith', 'ririsu', 1400, 900, 300, 4, 12, 50, 5, NULL, 4, NULL, 13, NULL),
			(21, 21, 21, 'Awoken Lilith', 'kakusei ririsu', 2100, 1200, 450, 5, 20, 99, 5, 1, 4, 7, 13, 12),
			(22, 22, 22, 'Reincarnated Lilith, Creator of Night', 'tensei ririsu', 3400, 1700, 600, 6, 35, 99, 5, 1, 4, 7, 13, 12),
			(30, 30, 30, 'Kali, the Creator', 'kari', 3000, 1800, 400, 6, 40, 99, 4, 5, 3, 7, 11, 12),
			(40, 40, 40, 'kali', 'kari ningyou', 600, 300, 100, 3, 5, 30, 1, NULL, 5, NULL, NULL, NULL),
			(50, 50, 50, 'Rainbow Keeper', 'niji no bannin', 2000, 800, 0, 5, 25, 25, 4, NULL, 8, NULL, NULL, NULL),
			(60, 60, 60, 'Night Sky Goddess, Vampire Duke', 'yoru no kami', 2500, 1400, 350, 6, 30, 99, 5, 2, 4, 3, 13, 12)`,

		`INSERT INTO awakenings (monster_id, order_idx, name) VALUES
			(3, 0, 'Fire Row'), (3, 1, 'Skill Boost'), (3, 2, 'Fire Row'),
			(21, 0, 'Poison Resistance'), (21, 1, 'Skill Boost'),
			(22, 0, 'Poison Resistance'), (22, 1, 'Skill Boost'), (22, 2, 'Dark Row'),
			(30, 0, 'God Killer'), (30, 1, 'Skill Boost')`,

		`INSERT INTO evolutions (from_monster_id, to_monster_id) VALUES
			(1, 2), (2, 3), (20, 21), (21, 22)`,

		`INSERT INTO monster_add_info (monster_id, sub_type_id) VALUES
			(3, 7), (30, 4)`,

		`INSERT INTO monster_region (monster_id, on_na, on_jp) VALUES
			(1, 1, 1), (2, 1, 1), (3, 1, 1),
			(20, 1, 1), (21, 1, 1), (22, 1, 1),
			(30, 1, 1), (40, 1, 1), (50, 1, 1),
			(60, 0, 1)`,
	}

	for i, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute fixture statement %d: %w", i, err)
		}
	}
	return nil
}

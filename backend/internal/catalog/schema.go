package catalog

// Schema is the table layout the loader expects. The seed script and tests
// create fixture databases from it.
const Schema = `
CREATE TABLE IF NOT EXISTS monsters (
	monster_id      INTEGER NOT NULL,
	monster_no_na   INTEGER NOT NULL,
	monster_no_jp   INTEGER NOT NULL,
	name_na         TEXT    NOT NULL,
	name_jp         TEXT    NOT NULL,
	hp_max          INTEGER NOT NULL DEFAULT 0,
	atk_max         INTEGER NOT NULL DEFAULT 0,
	rcv_max         INTEGER NOT NULL DEFAULT 0,
	rarity          INTEGER NOT NULL DEFAULT 0,
	cost            INTEGER NOT NULL DEFAULT 0,
	max_level       INTEGER NOT NULL DEFAULT 1,
	attribute_1_id  INTEGER NOT NULL,
	attribute_2_id  INTEGER,
	type_1_id       INTEGER NOT NULL,
	type_2_id       INTEGER,
	active_skill_id INTEGER,
	leader_skill_id INTEGER
);

CREATE TABLE IF NOT EXISTS attributes (
	attribute_id INTEGER NOT NULL,
	name         TEXT    NOT NULL
);

CREATE TABLE IF NOT EXISTS types (
	type_id INTEGER NOT NULL,
	name    TEXT    NOT NULL
);

CREATE TABLE IF NOT EXISTS skills (
	skill_id    INTEGER NOT NULL,
	name        TEXT    NOT NULL,
	description TEXT    NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS awakenings (
	monster_id INTEGER NOT NULL,
	order_idx  INTEGER NOT NULL,
	name       TEXT    NOT NULL
);

CREATE TABLE IF NOT EXISTS evolutions (
	from_monster_id INTEGER NOT NULL,
	to_monster_id   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS monster_add_info (
	monster_id  INTEGER NOT NULL,
	sub_type_id INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS monster_region (
	monster_id INTEGER NOT NULL,
	on_na      INTEGER NOT NULL DEFAULT 0,
	on_jp      INTEGER NOT NULL DEFAULT 0
);
`

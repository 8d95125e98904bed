package dex

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// OverrideRow is one positional row from the curated nickname feed, still in
// raw text form. Validation happens at apply time; bad rows are skipped, not
// fatal, so one typo in the sheet never blocks a rebuild.
type OverrideRow struct {
	Nickname string
	EntityID string
	Approved string
}

// applyOverrides rewrites primary nickname keys from curated rows. Unlike
// the build passes, an approved override replaces whatever entity currently
// holds the key. Returns the number of rows applied.
func applyOverrides(snap *Snapshot, rows []OverrideRow, byID map[int]*Entity, log *zap.Logger) int {
	applied := 0
	for _, row := range rows {
		nickname := strings.ToLower(strings.TrimSpace(row.Nickname))
		if nickname == "" {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(row.Approved), "true") {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(row.EntityID))
		if err != nil {
			log.Debug("Skipping override row with unparseable entity id",
				zap.String("nickname", nickname),
				zap.String("entity_id", row.EntityID),
			)
			continue
		}
		e, ok := byID[id]
		if !ok {
			log.Debug("Skipping override row for unknown entity",
				zap.String("nickname", nickname),
				zap.Int("entity_id", id),
			)
			continue
		}

		snap.all.override(nickname, e)
		if e.OnNA {
			snap.na.override(nickname, e)
		}
		e.Trail = append(e.Trail, "override nickname: "+nickname)
		applied++
	}
	return applied
}

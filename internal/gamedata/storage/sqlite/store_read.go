package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/louisbranch/occulta/internal/gamedata"
)

// Snapshot reads every reference table. Empty tables are returned as empty,
// non-nil slices.
func (s *Store) Snapshot(ctx context.Context) (*gamedata.Snapshot, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	var (
		snap gamedata.Snapshot
		err  error
	)
	if snap.NPCBases, err = s.npcBases(ctx); err != nil {
		return nil, err
	}
	if snap.NPCResidents, err = s.npcResidents(ctx); err != nil {
		return nil, err
	}
	if snap.Items, err = s.items(ctx); err != nil {
		return nil, err
	}
	if snap.EquipSlotCategories, err = s.equipSlotCategories(ctx); err != nil {
		return nil, err
	}
	if snap.ClassJobs, err = s.classJobs(ctx); err != nil {
		return nil, err
	}
	if snap.ClassJobCategories, err = s.classJobCategories(ctx); err != nil {
		return nil, err
	}
	if snap.Races, err = s.races(ctx); err != nil {
		return nil, err
	}
	if snap.Tribes, err = s.tribes(ctx); err != nil {
		return nil, err
	}
	return &snap, nil
}

// NameParts reads the name sheet.
func (s *Store) NameParts(ctx context.Context) ([]gamedata.NamePart, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	return queryRows(ctx, s.sqlDB, "name_part",
		"SELECT race, clan, sex, kind, text FROM name_part ORDER BY race, clan, sex, kind, text",
		func(rows *sql.Rows) (gamedata.NamePart, error) {
			var p gamedata.NamePart
			err := rows.Scan(&p.Race, &p.Clan, &p.Sex, &p.Kind, &p.Text)
			return p, err
		})
}

func (s *Store) npcBases(ctx context.Context) ([]gamedata.NPCBase, error) {
	return queryRows(ctx, s.sqlDB, "npc_base",
		"SELECT id, body_type, model_chara, race, tribe, gender, customize_json, equipment_json FROM npc_base ORDER BY id",
		func(rows *sql.Rows) (gamedata.NPCBase, error) {
			var (
				n            gamedata.NPCBase
				customizeRaw string
				equipmentRaw string
			)
			if err := rows.Scan(&n.ID, &n.BodyType, &n.ModelChara, &n.Race, &n.Tribe, &n.Gender, &customizeRaw, &equipmentRaw); err != nil {
				return n, err
			}
			if err := decodeJSON(customizeRaw, &n.Customize); err != nil {
				return n, fmt.Errorf("decode customize for npc %d: %w", n.ID, err)
			}
			if err := decodeJSON(equipmentRaw, &n.Equipment); err != nil {
				return n, fmt.Errorf("decode equipment for npc %d: %w", n.ID, err)
			}
			return n, nil
		})
}

func (s *Store) npcResidents(ctx context.Context) ([]gamedata.NPCResident, error) {
	return queryRows(ctx, s.sqlDB, "npc_resident",
		"SELECT id, singular FROM npc_resident ORDER BY id",
		func(rows *sql.Rows) (gamedata.NPCResident, error) {
			var r gamedata.NPCResident
			err := rows.Scan(&r.ID, &r.Singular)
			return r, err
		})
}

func (s *Store) items(ctx context.Context) ([]gamedata.Item, error) {
	return queryRows(ctx, s.sqlDB, "item",
		"SELECT id, name, is_unique, equip_slot_category, class_job_category, model_main, model_sub FROM item ORDER BY id",
		func(rows *sql.Rows) (gamedata.Item, error) {
			var (
				it        gamedata.Item
				modelMain int64
				modelSub  int64
			)
			err := rows.Scan(&it.ID, &it.Name, &it.IsUnique, &it.EquipSlotCategory, &it.ClassJobCategory, &modelMain, &modelSub)
			it.ModelMain = uint64(modelMain)
			it.ModelSub = uint64(modelSub)
			return it, err
		})
}

func (s *Store) equipSlotCategories(ctx context.Context) ([]gamedata.EquipSlotCategory, error) {
	return queryRows(ctx, s.sqlDB, "equip_slot_category",
		"SELECT id, main_hand, off_hand FROM equip_slot_category ORDER BY id",
		func(rows *sql.Rows) (gamedata.EquipSlotCategory, error) {
			var c gamedata.EquipSlotCategory
			err := rows.Scan(&c.ID, &c.MainHand, &c.OffHand)
			return c, err
		})
}

func (s *Store) classJobs(ctx context.Context) ([]gamedata.ClassJob, error) {
	return queryRows(ctx, s.sqlDB, "class_job",
		"SELECT id, abbreviation FROM class_job ORDER BY id",
		func(rows *sql.Rows) (gamedata.ClassJob, error) {
			var j gamedata.ClassJob
			err := rows.Scan(&j.ID, &j.Abbreviation)
			return j, err
		})
}

func (s *Store) classJobCategories(ctx context.Context) ([]gamedata.ClassJobCategory, error) {
	return queryRows(ctx, s.sqlDB, "class_job_category",
		"SELECT id, jobs_json FROM class_job_category ORDER BY id",
		func(rows *sql.Rows) (gamedata.ClassJobCategory, error) {
			var (
				c       gamedata.ClassJobCategory
				jobsRaw string
			)
			if err := rows.Scan(&c.ID, &jobsRaw); err != nil {
				return c, err
			}
			if err := decodeJSON(jobsRaw, &c.Jobs); err != nil {
				return c, fmt.Errorf("decode jobs for category %d: %w", c.ID, err)
			}
			return c, nil
		})
}

func (s *Store) races(ctx context.Context) ([]gamedata.Race, error) {
	return queryRows(ctx, s.sqlDB, "race",
		"SELECT id, name FROM race ORDER BY id",
		func(rows *sql.Rows) (gamedata.Race, error) {
			var r gamedata.Race
			err := rows.Scan(&r.ID, &r.Name)
			return r, err
		})
}

func (s *Store) tribes(ctx context.Context) ([]gamedata.Tribe, error) {
	return queryRows(ctx, s.sqlDB, "tribe",
		"SELECT id, race, name FROM tribe ORDER BY id",
		func(rows *sql.Rows) (gamedata.Tribe, error) {
			var tr gamedata.Tribe
			err := rows.Scan(&tr.ID, &tr.Race, &tr.Name)
			return tr, err
		})
}

func queryRows[T any](ctx context.Context, db *sql.DB, table, query string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, tableError(table, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		value, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return out, nil
}

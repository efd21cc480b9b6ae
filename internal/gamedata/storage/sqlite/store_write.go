package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/louisbranch/occulta/internal/gamedata"
)

// ReplaceSnapshot replaces the contents of every reference table with snap in
// a single transaction. Nil tables in snap are cleared.
func (s *Store) ReplaceSnapshot(ctx context.Context, snap *gamedata.Snapshot) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if snap == nil {
		return fmt.Errorf("snapshot is required")
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{
			"npc_base", "npc_resident", "item", "equip_slot_category",
			"class_job", "class_job_category", "race", "tribe",
		} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		for _, n := range snap.NPCBases {
			customize, err := encodeJSON(n.Customize)
			if err != nil {
				return fmt.Errorf("encode customize for npc %d: %w", n.ID, err)
			}
			equipment, err := encodeJSON(n.Equipment)
			if err != nil {
				return fmt.Errorf("encode equipment for npc %d: %w", n.ID, err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO npc_base (id, body_type, model_chara, race, tribe, gender, customize_json, equipment_json)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				n.ID, n.BodyType, n.ModelChara, n.Race, n.Tribe, n.Gender, customize, equipment,
			); err != nil {
				return fmt.Errorf("insert npc %d: %w", n.ID, err)
			}
		}
		for _, r := range snap.NPCResidents {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO npc_resident (id, singular) VALUES (?, ?)", r.ID, r.Singular,
			); err != nil {
				return fmt.Errorf("insert npc resident %d: %w", r.ID, err)
			}
		}
		for _, it := range snap.Items {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO item (id, name, is_unique, equip_slot_category, class_job_category, model_main, model_sub)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				it.ID, it.Name, it.IsUnique, it.EquipSlotCategory, it.ClassJobCategory, int64(it.ModelMain), int64(it.ModelSub),
			); err != nil {
				return fmt.Errorf("insert item %d: %w", it.ID, err)
			}
		}
		for _, c := range snap.EquipSlotCategories {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO equip_slot_category (id, main_hand, off_hand) VALUES (?, ?, ?)", c.ID, c.MainHand, c.OffHand,
			); err != nil {
				return fmt.Errorf("insert equip slot category %d: %w", c.ID, err)
			}
		}
		for _, j := range snap.ClassJobs {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO class_job (id, abbreviation) VALUES (?, ?)", j.ID, j.Abbreviation,
			); err != nil {
				return fmt.Errorf("insert class job %d: %w", j.ID, err)
			}
		}
		for _, c := range snap.ClassJobCategories {
			jobs, err := encodeJSON(c.Jobs)
			if err != nil {
				return fmt.Errorf("encode jobs for category %d: %w", c.ID, err)
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO class_job_category (id, jobs_json) VALUES (?, ?)", c.ID, jobs,
			); err != nil {
				return fmt.Errorf("insert class job category %d: %w", c.ID, err)
			}
		}
		for _, r := range snap.Races {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO race (id, name) VALUES (?, ?)", r.ID, r.Name,
			); err != nil {
				return fmt.Errorf("insert race %d: %w", r.ID, err)
			}
		}
		for _, tr := range snap.Tribes {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO tribe (id, race, name) VALUES (?, ?, ?)", tr.ID, tr.Race, tr.Name,
			); err != nil {
				return fmt.Errorf("insert tribe %d: %w", tr.ID, err)
			}
		}
		return nil
	})
}

// ReplaceNameParts replaces the name sheet.
func (s *Store) ReplaceNameParts(ctx context.Context, parts []gamedata.NamePart) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM name_part"); err != nil {
			return fmt.Errorf("clear name_part: %w", err)
		}
		for _, p := range parts {
			if _, err := tx.ExecContext(ctx,
				"INSERT OR IGNORE INTO name_part (race, clan, sex, kind, text) VALUES (?, ?, ?, ?, ?)",
				p.Race, p.Clan, p.Sex, string(p.Kind), p.Text,
			); err != nil {
				return fmt.Errorf("insert name part %q: %w", p.Text, err)
			}
		}
		return nil
	})
}

func (s *Store) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

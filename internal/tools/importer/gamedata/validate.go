package gamedataimporter

import (
	"fmt"
	"strings"

	"github.com/louisbranch/occulta/internal/gamedata"
)

// header is the envelope part of a table payload.
type header struct {
	present bool
	table   string
	source  string
}

func headerOf[T any](p *tablePayload[T]) header {
	if p == nil {
		return header{}
	}
	return header{present: true, table: p.Table, source: p.Source}
}

func validatePayloads(p payloads) error {
	tables := []struct {
		name     string
		required bool
		header   header
	}{
		{"npc_base", true, headerOf(p.NPCBases)},
		{"npc_resident", true, headerOf(p.NPCResidents)},
		{"item", true, headerOf(p.Items)},
		{"equip_slot_category", true, headerOf(p.EquipSlotCategories)},
		{"class_job", true, headerOf(p.ClassJobs)},
		{"class_job_category", true, headerOf(p.ClassJobCategories)},
		{"race", true, headerOf(p.Races)},
		{"tribe", false, headerOf(p.Tribes)},
		{"name_part", false, headerOf(p.NameParts)},
	}
	for _, t := range tables {
		if !t.header.present {
			if t.required {
				return fmt.Errorf("%s.json is required", t.name)
			}
			continue
		}
		if t.header.table != t.name {
			return fmt.Errorf("%s.json: table mismatch: %s", t.name, t.header.table)
		}
		if strings.TrimSpace(t.header.source) == "" {
			return fmt.Errorf("%s.json: source is required", t.name)
		}
	}

	if err := uniqueIDs("npc_base", itemsOf(p.NPCBases), func(r gamedata.NPCBase) uint32 { return r.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("npc_resident", itemsOf(p.NPCResidents), func(r gamedata.NPCResident) uint32 { return r.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("item", itemsOf(p.Items), func(r gamedata.Item) uint32 { return r.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("class_job", itemsOf(p.ClassJobs), func(r gamedata.ClassJob) uint32 { return r.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("race", itemsOf(p.Races), func(r gamedata.Race) uint32 { return uint32(r.ID) }); err != nil {
		return err
	}
	for _, part := range itemsOf(p.NameParts) {
		if part.Kind != gamedata.NamePartFirst && part.Kind != gamedata.NamePartLast {
			return fmt.Errorf("name_part.json: invalid kind %q", part.Kind)
		}
		if strings.TrimSpace(part.Text) == "" {
			return fmt.Errorf("name_part.json: empty text for race %d clan %d sex %d", part.Race, part.Clan, part.Sex)
		}
	}
	return nil
}

func uniqueIDs[T any](table string, rows []T, id func(T) uint32) error {
	seen := make(map[uint32]bool, len(rows))
	for _, row := range rows {
		key := id(row)
		if seen[key] {
			return fmt.Errorf("%s.json: duplicate id %d", table, key)
		}
		seen[key] = true
	}
	return nil
}

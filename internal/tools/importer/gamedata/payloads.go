package gamedataimporter

import "github.com/louisbranch/occulta/internal/gamedata"

// tablePayload is the envelope shared by every table file.
type tablePayload[T any] struct {
	Table  string `json:"table"`
	Source string `json:"source"`
	Items  []T    `json:"items"`
}

type payloads struct {
	NPCBases            *tablePayload[gamedata.NPCBase]
	NPCResidents        *tablePayload[gamedata.NPCResident]
	Items               *tablePayload[gamedata.Item]
	EquipSlotCategories *tablePayload[gamedata.EquipSlotCategory]
	ClassJobs           *tablePayload[gamedata.ClassJob]
	ClassJobCategories  *tablePayload[gamedata.ClassJobCategory]
	Races               *tablePayload[gamedata.Race]
	Tribes              *tablePayload[gamedata.Tribe]
	NameParts           *tablePayload[gamedata.NamePart]
}

// count returns the number of table files that were present.
func (p payloads) count() int {
	n := 0
	for _, present := range []bool{
		p.NPCBases != nil, p.NPCResidents != nil, p.Items != nil,
		p.EquipSlotCategories != nil, p.ClassJobs != nil, p.ClassJobCategories != nil,
		p.Races != nil, p.Tribes != nil, p.NameParts != nil,
	} {
		if present {
			n++
		}
	}
	return n
}

func itemsOf[T any](p *tablePayload[T]) []T {
	if p == nil {
		return nil
	}
	return p.Items
}

// snapshot assembles the reference tables. Absent files yield nil tables.
func (p payloads) snapshot() *gamedata.Snapshot {
	return &gamedata.Snapshot{
		NPCBases:            itemsOf(p.NPCBases),
		NPCResidents:        itemsOf(p.NPCResidents),
		Items:               itemsOf(p.Items),
		EquipSlotCategories: itemsOf(p.EquipSlotCategories),
		ClassJobs:           itemsOf(p.ClassJobs),
		ClassJobCategories:  itemsOf(p.ClassJobCategories),
		Races:               itemsOf(p.Races),
		Tribes:              itemsOf(p.Tribes),
	}
}

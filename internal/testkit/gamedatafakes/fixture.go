// Package gamedatafakes provides small reference tables and host fakes used by
// substitution engine tests.
//
// The fixture is tiny on purpose: three races, three jobs and a handful of NPC
// rows, each row chosen to exercise one load filter.
package gamedatafakes

import "github.com/louisbranch/occulta/internal/gamedata"

// Job ids in the fixture.
const (
	JobPaladin   uint32 = 1
	JobWarrior   uint32 = 2
	JobWhiteMage uint32 = 3
	JobDancer    uint32 = 4
)

// Item ids in the fixture.
const (
	ItemGladius      uint32 = 1001
	ItemSpatha       uint32 = 1002
	ItemUltimate     uint32 = 1003
	ItemAxe          uint32 = 2001
	ItemCane         uint32 = 3001
	ItemRoundShield  uint32 = 4001
	ItemUniqueShield uint32 = 4002
	ItemShirt        uint32 = 5001
)

// CandidateNPCIDs are the NPC rows that survive the load filters, in order.
var CandidateNPCIDs = []uint32{2, 3, 4, 8}

// Snapshot returns a fresh copy of the fixture reference tables.
func Snapshot() *gamedata.Snapshot {
	return &gamedata.Snapshot{
		NPCBases: []gamedata.NPCBase{
			npc(1, 1, 0, 1, 1, 1, true, true),   // story character, excluded by name
			npc(2, 1, 0, 1, 2, 0, true, true),   // Highlander male
			npc(3, 1, 0, 2, 3, 1, true, true),   // Wildwood female
			npc(4, 1, 0, 3, 5, 1, true, true),   // Plainsfolk female
			npc(5, 3, 0, 1, 1, 0, true, true),   // not humanoid
			npc(6, 1, 200, 1, 1, 0, true, true), // named model variant
			npc(7, 1, 0, 2, 4, 0, true, false),  // no leg model
			npc(8, 1, 0, 2, 4, 0, true, true),   // Duskwight male
			npc(9, 1, 0, 1, 1, 0, true, true),   // story character, upper case
			npc(10, 1, 0, 3, 6, 0, false, true), // no body model
		},
		NPCResidents: []gamedata.NPCResident{
			{ID: 1, Singular: "Minfilia"},
			{ID: 2, Singular: "Wandering Minstrel"},
			{ID: 3, Singular: "Ardent Pilgrim"},
			{ID: 4, Singular: "Traveling Merchant"},
			{ID: 8, Singular: "Sharlayan Scholar"},
			{ID: 9, Singular: "HILDIBRAND"},
		},
		Items: []gamedata.Item{
			{ID: ItemGladius, Name: "Bronze Gladius", EquipSlotCategory: 1, ClassJobCategory: 10, ModelMain: 201},
			{ID: ItemSpatha, Name: "Bronze Spatha", EquipSlotCategory: 1, ClassJobCategory: 10, ModelMain: 202},
			{ID: ItemUltimate, Name: "Ultimate Blade", IsUnique: true, EquipSlotCategory: 1, ClassJobCategory: 10, ModelMain: 299},
			{ID: ItemAxe, Name: "Bronze Axe", EquipSlotCategory: 13, ClassJobCategory: 11, ModelMain: 401},
			{ID: ItemCane, Name: "Maple Cane", EquipSlotCategory: 13, ClassJobCategory: 12, ModelMain: 801},
			{ID: ItemRoundShield, Name: "Round Shield", EquipSlotCategory: 2, ClassJobCategory: 10, ModelMain: 101},
			{ID: ItemUniqueShield, Name: "Relic Shield", IsUnique: true, EquipSlotCategory: 2, ClassJobCategory: 10, ModelMain: 199},
			{ID: ItemShirt, Name: "Hempen Shirt", EquipSlotCategory: 4, ClassJobCategory: 13, ModelMain: 6001},
		},
		EquipSlotCategories: []gamedata.EquipSlotCategory{
			{ID: 1, MainHand: 1},
			{ID: 2, OffHand: 1},
			{ID: 4},
			{ID: 13, MainHand: 1, OffHand: -1},
		},
		ClassJobs: []gamedata.ClassJob{
			{ID: 0, Abbreviation: "ADV"},
			{ID: JobPaladin, Abbreviation: "PLD"},
			{ID: JobWarrior, Abbreviation: "WAR"},
			{ID: JobWhiteMage, Abbreviation: "WHM"},
			{ID: JobDancer, Abbreviation: "DNC"},
		},
		ClassJobCategories: []gamedata.ClassJobCategory{
			{ID: 10, Jobs: []string{"PLD"}},
			{ID: 11, Jobs: []string{"WAR"}},
			{ID: 12, Jobs: []string{"WHM"}},
			{ID: 13, Jobs: []string{"PLD", "WAR", "WHM", "DNC"}},
		},
		Races: []gamedata.Race{
			{ID: 0},
			{ID: 1, Name: "Hyur"},
			{ID: 2, Name: "Elezen"},
			{ID: 3, Name: "Lalafell"},
		},
		Tribes: []gamedata.Tribe{
			{ID: 1, Race: 1, Name: "Midlander"},
			{ID: 2, Race: 1, Name: "Highlander"},
			{ID: 3, Race: 2, Name: "Wildwood"},
			{ID: 4, Race: 2, Name: "Duskwight"},
			{ID: 5, Race: 3, Name: "Plainsfolk"},
			{ID: 6, Race: 3, Name: "Dunesfolk"},
		},
	}
}

func npc(id uint32, bodyType uint8, modelChara uint32, race, tribe, gender uint8, body, legs bool) gamedata.NPCBase {
	n := gamedata.NPCBase{
		ID:         id,
		BodyType:   bodyType,
		ModelChara: modelChara,
		Race:       race,
		Tribe:      tribe,
		Gender:     gender,
		Customize: gamedata.Customize{
			Height:    uint8(40 + id),
			Face:      uint8(id % 4),
			HairStyle: uint8(id),
			SkinColor: uint8(10 + id),
			EyeColor:  uint8(20 + id),
		},
	}
	n.Equipment[gamedata.SlotHead] = gamedata.Equipment{Model: 0x010000 | id, Dye: 1}
	if body {
		n.Equipment[gamedata.SlotBody] = gamedata.Equipment{Model: 0x020000 | (100 + id), Dye: 2}
	}
	n.Equipment[gamedata.SlotHands] = gamedata.Equipment{Model: 300 + id}
	if legs {
		n.Equipment[gamedata.SlotLegs] = gamedata.Equipment{Model: 400 + id, Dye: 4}
	}
	n.Equipment[gamedata.SlotFeet] = gamedata.Equipment{Model: 500 + id}
	return n
}

// NameParts returns a name sheet covering every (race, clan, sex) bucket of
// the fixture with two forenames and two surnames each.
func NameParts() []gamedata.NamePart {
	firsts := [][2]string{{"Alda", "Brin"}, {"Corin", "Dessa"}}
	lasts := []string{"Vale", "Thorne"}
	var parts []gamedata.NamePart
	for race := uint8(1); race <= 3; race++ {
		for clan := uint8(0); clan <= 1; clan++ {
			for sex := uint8(0); sex <= 1; sex++ {
				for _, f := range firsts[sex] {
					parts = append(parts, gamedata.NamePart{Race: race, Clan: clan, Sex: sex, Kind: gamedata.NamePartFirst, Text: f + string(rune('a'+race))})
				}
				for _, l := range lasts {
					parts = append(parts, gamedata.NamePart{Race: race, Clan: clan, Sex: sex, Kind: gamedata.NamePartLast, Text: l + string(rune('a'+clan))})
				}
			}
		}
	}
	return parts
}

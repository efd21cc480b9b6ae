package candidate

import "github.com/louisbranch/occulta/internal/gamedata"

// BodyTypeHumanoid is the body type of playable-looking NPC rows.
const BodyTypeHumanoid = 1

// Persona is one candidate appearance template.
type Persona struct {
	ID        uint32
	Name      string
	BodyType  uint8
	Race      uint8
	Tribe     uint8
	Gender    uint8
	Customize gamedata.Customize
	Equipment [gamedata.SlotCount]gamedata.Equipment
}

// Clan returns the clan index (0 or 1) of the persona's tribe within its race.
func (p Persona) Clan() uint8 {
	if p.Tribe == 0 {
		return 0
	}
	return (p.Tribe - 1) % 2
}

func personaFromRow(row gamedata.NPCBase, name string) Persona {
	return Persona{
		ID:        row.ID,
		Name:      name,
		BodyType:  row.BodyType,
		Race:      row.Race,
		Tribe:     row.Tribe,
		Gender:    row.Gender,
		Customize: row.Customize,
		Equipment: row.Equipment,
	}
}

// Weapon is one equippable hand item.
type Weapon struct {
	ID        uint32
	Name      string
	ModelMain uint64
	ModelSub  uint64
	// BothHands is set when the item occupies the main and off hand, so no
	// off-hand item is drawn with it.
	BothHands bool
}

// PreferenceMask selects the personas the local user may be shown as.
//
// Sex uses bit 1<<(gender+1), Races bit 1<<race and Tribes bit 1<<tribe.
type PreferenceMask struct {
	Sex    uint32
	Races  uint32
	Tribes uint32
}

// Sex mask bits.
const (
	SexMale   uint32 = 1 << 1
	SexFemale uint32 = 1 << 2
)

// Allows reports whether p passes all three masks.
func (m PreferenceMask) Allows(p Persona) bool {
	return bitSet(m.Sex, uint(p.Gender)+1) &&
		bitSet(m.Races, uint(p.Race)) &&
		bitSet(m.Tribes, uint(p.Tribe))
}

func bitSet(mask uint32, bit uint) bool {
	if bit >= 32 {
		return false
	}
	return mask&(1<<bit) != 0
}

package preferences

import (
	"fmt"
	"strings"

	"github.com/louisbranch/occulta/internal/candidate"
)

// Version is the current preferences document version.
const Version = 1

const (
	defaultRaces  uint32 = 0x1FE   // bits 1..8
	defaultTribes uint32 = 0x1FFFE // bits 1..16
)

// DataCenters are the values accepted for DataCenter.
var DataCenters = []string{
	"Aether", "Crystal", "Dynamis", "Primal", "Chaos",
	"Light", "Materia", "Elemental", "Gaia", "Mana", "Meteor",
}

// Preferences are the persisted user settings.
type Preferences struct {
	Version int `yaml:"version"`

	Enabled        bool `yaml:"enabled"`
	SelfFull       bool `yaml:"self_full"`
	SelfFirst      bool `yaml:"self_first"`
	SelfLast       bool `yaml:"self_last"`
	Party          bool `yaml:"party"`
	Others         bool `yaml:"others"`
	ExcludeFriends bool `yaml:"exclude_friends"`

	FreeCompany bool   `yaml:"free_company"`
	World       bool   `yaml:"world"`
	DataCenter  string `yaml:"data_center,omitempty"`

	Appearance Appearance `yaml:"appearance"`

	PreferredSex    uint32 `yaml:"preferred_sex"`
	PreferredRaces  uint32 `yaml:"preferred_races"`
	PreferredTribes uint32 `yaml:"preferred_tribes"`
}

// Appearance selects whose appearance is obscured.
type Appearance struct {
	Self           bool `yaml:"self"`
	Party          bool `yaml:"party"`
	Others         bool `yaml:"others"`
	ExcludeFriends bool `yaml:"exclude_friends"`
}

// Default returns the settings of a fresh install: nothing obscured and every
// sex, race and tribe allowed.
func Default() Preferences {
	return Preferences{
		Version:         Version,
		PreferredSex:    candidate.SexMale | candidate.SexFemale,
		PreferredRaces:  defaultRaces,
		PreferredTribes: defaultTribes,
	}
}

// Mask returns the persona filter for the local user.
func (p Preferences) Mask() candidate.PreferenceMask {
	return candidate.PreferenceMask{
		Sex:    p.PreferredSex,
		Races:  p.PreferredRaces,
		Tribes: p.PreferredTribes,
	}
}

// ObscuresSelf reports whether any part of the local user's name is replaced.
func (p Preferences) ObscuresSelf() bool {
	return p.SelfFull || p.SelfFirst || p.SelfLast
}

// SetSex allows or forbids gender (0 male, 1 female).
func (p *Preferences) SetSex(gender uint8, on bool) {
	p.PreferredSex = setBit(p.PreferredSex, uint(gender)+1, on)
}

// SetRace allows or forbids race together with both of its tribes, which are
// numbered race*2-1 and race*2.
func (p *Preferences) SetRace(race uint8, on bool) {
	if race == 0 || race > 15 {
		return
	}
	p.PreferredRaces = setBit(p.PreferredRaces, uint(race), on)
	p.PreferredTribes = setBit(p.PreferredTribes, uint(race)*2-1, on)
	p.PreferredTribes = setBit(p.PreferredTribes, uint(race)*2, on)
}

// SetTribe allows or forbids a single tribe.
func (p *Preferences) SetTribe(tribe uint8, on bool) {
	p.PreferredTribes = setBit(p.PreferredTribes, uint(tribe), on)
}

func setBit(mask uint32, bit uint, on bool) uint32 {
	if bit >= 32 {
		return mask
	}
	if on {
		return mask | 1<<bit
	}
	return mask &^ (1 << bit)
}

// Validate checks the fields a hand-edited file can get wrong.
func (p Preferences) Validate() error {
	if p.Version > Version {
		return fmt.Errorf("preferences version %d is newer than supported version %d", p.Version, Version)
	}
	if p.DataCenter == "" {
		return nil
	}
	for _, dc := range DataCenters {
		if strings.EqualFold(dc, p.DataCenter) {
			return nil
		}
	}
	return fmt.Errorf("unknown data center %q", p.DataCenter)
}

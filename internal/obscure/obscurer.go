package obscure

import (
	"sync"

	"github.com/louisbranch/occulta/internal/candidate"
	"github.com/louisbranch/occulta/internal/gamedata"
	"github.com/louisbranch/occulta/internal/identity"
	"github.com/louisbranch/occulta/internal/preferences"
)

// Substitutes is the substitution session as seen by the hook glue.
type Substitutes interface {
	ReplacementName(name string, info identity.Info) (string, bool)
	Persona(handle uint32) (candidate.Persona, bool)
	Initialised() bool
}

// Nameplate is the text of one nameplate.
type Nameplate struct {
	Name        string
	Title       string
	FreeCompany string
}

// Scene is what the host currently shows: the visible subjects, the local
// user's world name and the local user's free company tag.
type Scene struct {
	Subjects   []Subject
	World      string
	CompanyTag string
}

// CompanyPlaceholder replaces the local user's free company tag.
const CompanyPlaceholder = "FC"

// Obscurer rewrites host values for the subjects its policy selects.
type Obscurer struct {
	subs Substitutes

	mu     sync.RWMutex
	policy Policy
}

// New returns an Obscurer applying prefs.
func New(subs Substitutes, prefs preferences.Preferences) *Obscurer {
	return &Obscurer{subs: subs, policy: Policy{Prefs: prefs}}
}

// SetPreferences replaces the active preferences.
func (o *Obscurer) SetPreferences(prefs preferences.Preferences) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.policy = Policy{Prefs: prefs}
}

func (o *Obscurer) currentPolicy() Policy {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.policy
}

// InitialiseCharacter writes the substitute appearance into s when its
// appearance is obscured. It reports whether anything was written.
func (o *Obscurer) InitialiseCharacter(s Subject) bool {
	if !o.currentPolicy().ObscureAppearance(s) {
		return false
	}
	persona, ok := o.subs.Persona(s.Entity.ObjectID())
	if !ok {
		return false
	}
	ApplyCustomize(persona, s.Entity)
	return true
}

// SlotUpdate returns the substitute equipment for slot of s, or false when
// the host value should be kept.
func (o *Obscurer) SlotUpdate(s Subject, slot gamedata.Slot) (EquipData, bool) {
	if !o.currentPolicy().ObscureAppearance(s) {
		return EquipData{}, false
	}
	persona, ok := o.subs.Persona(s.Entity.ObjectID())
	if !ok {
		return EquipData{}, false
	}
	return SlotEquipment(persona, slot)
}

// Info returns the (race, clan, sex) names are drawn for. Subjects with an
// obscured appearance use their persona so the substitute name matches what
// is shown.
func (o *Obscurer) Info(s Subject) identity.Info {
	return o.info(o.currentPolicy(), s)
}

func (o *Obscurer) info(policy Policy, s Subject) identity.Info {
	if s.Entity == nil {
		return identity.UnknownInfo()
	}
	if policy.ObscureAppearance(s) {
		if persona, ok := o.subs.Persona(s.Entity.ObjectID()); ok {
			return identity.Info{Race: persona.Race, Clan: clanOf(persona.Tribe), Sex: persona.Gender}
		}
	}
	return identity.Info{
		Race: knownOrUnknown(s.Entity.Customize(CustomizeRace)),
		Clan: clanOf(s.Entity.Customize(CustomizeTribe)),
		Sex:  s.Entity.Customize(CustomizeGender),
	}
}

func clanOf(tribe uint8) uint8 {
	if tribe == 0 {
		return identity.Unknown
	}
	return (tribe - 1) % 2
}

func knownOrUnknown(v uint8) uint8 {
	if v == 0 {
		return identity.Unknown
	}
	return v
}

// Nameplate rewrites the nameplate of s.
func (o *Obscurer) Nameplate(s Subject, plate Nameplate) Nameplate {
	policy := o.currentPolicy()
	if !o.subs.Initialised() || s.Entity == nil || s.Entity.Kind() != KindPlayer {
		return plate
	}
	scope := policy.ObscureName(s)
	if !scope.Any() {
		return plate
	}
	name := s.Entity.Name()
	replacement, ok := o.subs.ReplacementName(name, o.info(policy, s))
	if !ok {
		return plate
	}

	if scope.Full {
		plate.Name = ReplaceName(plate.Name, name, replacement)
		plate.Title = ReplaceName(plate.Title, name, replacement)
		plate.FreeCompany = ReplaceName(plate.FreeCompany, name, replacement)
	}
	if scope.First {
		plate.Name = ReplaceFirst(plate.Name, name, replacement)
		plate.Title = ReplaceFirst(plate.Title, name, replacement)
	}
	if scope.Last {
		plate.Name = ReplaceLast(plate.Name, name, replacement)
		plate.Title = ReplaceLast(plate.Title, name, replacement)
	}
	return plate
}

// Text rewrites every name of a subject in scene that appears in text. It
// reports whether text changed.
func (o *Obscurer) Text(text string, scene Scene) (string, bool) {
	policy := o.currentPolicy()
	if !policy.Prefs.Enabled || !o.subs.Initialised() {
		return text, false
	}

	out := text
	if policy.Prefs.World && policy.Prefs.DataCenter != "" && scene.World != "" {
		out = ReplaceName(out, scene.World, policy.Prefs.DataCenter)
	}
	if policy.Prefs.FreeCompany && scene.CompanyTag != "" {
		out = ReplaceName(out, scene.CompanyTag, CompanyPlaceholder)
	}

	for _, s := range scene.Subjects {
		if s.Entity == nil || s.Entity.Kind() != KindPlayer {
			continue
		}
		scope := policy.ObscureName(s)
		if !scope.Any() {
			continue
		}
		info := o.info(policy, s)
		if s.Relation == RelationOther && info.Race == identity.Unknown {
			continue
		}
		name := s.Entity.Name()
		replacement, ok := o.subs.ReplacementName(name, info)
		if !ok {
			continue
		}
		if scope.Full {
			out = ReplaceName(out, name, replacement)
		}
		if scope.First {
			out = ReplaceFirst(out, name, replacement)
		}
		if scope.Last {
			out = ReplaceLast(out, name, replacement)
		}
	}
	return out, out != text
}

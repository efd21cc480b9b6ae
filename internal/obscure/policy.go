package obscure

import "github.com/louisbranch/occulta/internal/preferences"

// Relation is how a subject relates to the local user.
type Relation int

const (
	RelationOther Relation = iota
	RelationParty
	RelationSelf
)

// Subject is a visible character as the hook glue sees it.
type Subject struct {
	Entity   HostEntityAccessor
	Relation Relation
	Friend   bool
}

// NameScope says which parts of a subject's name are replaced.
type NameScope struct {
	Full  bool
	First bool
	Last  bool
}

// Any reports whether any part of the name is replaced.
func (s NameScope) Any() bool {
	return s.Full || s.First || s.Last
}

// Policy decides which subjects are obscured.
type Policy struct {
	Prefs preferences.Preferences
}

// ObscureAppearance reports whether s is shown with a substitute persona.
func (p Policy) ObscureAppearance(s Subject) bool {
	if !p.Prefs.Enabled || s.Entity == nil || s.Entity.Kind() != KindPlayer {
		return false
	}
	if p.Prefs.Appearance.ExcludeFriends && s.Friend {
		return false
	}
	switch s.Relation {
	case RelationSelf:
		return p.Prefs.Appearance.Self
	case RelationParty:
		return p.Prefs.Appearance.Party
	default:
		return p.Prefs.Appearance.Others
	}
}

// ObscureName returns the parts of s's name that are replaced.
func (p Policy) ObscureName(s Subject) NameScope {
	if !p.Prefs.Enabled {
		return NameScope{}
	}
	switch s.Relation {
	case RelationSelf:
		return NameScope{Full: p.Prefs.SelfFull, First: p.Prefs.SelfFirst, Last: p.Prefs.SelfLast}
	case RelationParty:
		if p.Prefs.Party && !(p.Prefs.ExcludeFriends && s.Friend) {
			return NameScope{Full: true}
		}
	default:
		if p.Prefs.Others && !(p.Prefs.ExcludeFriends && s.Friend) {
			return NameScope{Full: true}
		}
	}
	return NameScope{}
}

package occulta

import (
	"github.com/louisbranch/occulta/internal/identity"
	"github.com/louisbranch/occulta/internal/obscure"
	"github.com/louisbranch/occulta/internal/preferences"
	"github.com/louisbranch/occulta/internal/session"
)

// entity is a host character built from command line input. Its handle is
// its position in the -names list plus one.
type entity struct {
	id        uint32
	name      string
	customize [obscure.CustomizeSize]uint8
}

func newEntity(id uint32, s subject) *entity {
	e := &entity{id: id, name: s.name}
	if s.info.Race != identity.Unknown {
		e.customize[obscure.CustomizeRace] = s.info.Race
	}
	// Clan c of race r is tribe 2r-1+c.
	if s.info.Race != identity.Unknown && s.info.Clan != identity.Unknown {
		e.customize[obscure.CustomizeTribe] = s.info.Race*2 - 1 + s.info.Clan
	}
	if s.info.Sex != identity.Unknown {
		e.customize[obscure.CustomizeGender] = s.info.Sex
	}
	return e
}

func (e *entity) ObjectID() uint32                               { return e.id }
func (e *entity) Kind() obscure.ObjectKind                       { return obscure.KindPlayer }
func (e *entity) Name() string                                   { return e.name }
func (e *entity) ClassJob() uint32                               { return 0 }
func (e *entity) Customize(i obscure.CustomizeIndex) uint8       { return e.customize[i] }
func (e *entity) SetCustomize(i obscure.CustomizeIndex, v uint8) { e.customize[i] = v }

func rewriteText(sess *session.Session, prefs preferences.Preferences, subjects []subject, cfg Config) string {
	scene := obscure.Scene{World: cfg.World, CompanyTag: cfg.CompanyTag}
	for i, s := range subjects {
		scene.Subjects = append(scene.Subjects, obscure.Subject{
			Entity:   newEntity(uint32(i+1), s),
			Relation: obscure.RelationOther,
		})
	}
	rewritten, _ := obscure.New(sess, prefs).Text(cfg.Text, scene)
	return rewritten
}

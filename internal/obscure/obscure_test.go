package obscure

import (
	"testing"

	"github.com/louisbranch/occulta/internal/candidate"
	"github.com/louisbranch/occulta/internal/gamedata"
	"github.com/louisbranch/occulta/internal/identity"
	"github.com/louisbranch/occulta/internal/preferences"
)

type fakeEntity struct {
	id        uint32
	kind      ObjectKind
	name      string
	job       uint32
	customize [CustomizeSize]uint8
}

func (e *fakeEntity) ObjectID() uint32                       { return e.id }
func (e *fakeEntity) Kind() ObjectKind                       { return e.kind }
func (e *fakeEntity) Name() string                           { return e.name }
func (e *fakeEntity) ClassJob() uint32                       { return e.job }
func (e *fakeEntity) Customize(i CustomizeIndex) uint8       { return e.customize[i] }
func (e *fakeEntity) SetCustomize(i CustomizeIndex, v uint8) { e.customize[i] = v }

func player(id uint32, name string, race, tribe, gender uint8) *fakeEntity {
	e := &fakeEntity{id: id, kind: KindPlayer, name: name}
	e.customize[CustomizeRace] = race
	e.customize[CustomizeTribe] = tribe
	e.customize[CustomizeGender] = gender
	return e
}

type lookup struct {
	name string
	info identity.Info
}

type fakeSubstitutes struct {
	names       map[string]string
	personas    map[uint32]candidate.Persona
	initialised bool
	lookups     []lookup
}

func (f *fakeSubstitutes) ReplacementName(name string, info identity.Info) (string, bool) {
	f.lookups = append(f.lookups, lookup{name: name, info: info})
	r, ok := f.names[name]
	return r, ok
}

func (f *fakeSubstitutes) Persona(handle uint32) (candidate.Persona, bool) {
	p, ok := f.personas[handle]
	return p, ok
}

func (f *fakeSubstitutes) Initialised() bool { return f.initialised }

func testPersona() candidate.Persona {
	p := candidate.Persona{ID: 8, BodyType: 1, Race: 2, Tribe: 4, Gender: 1}
	p.Customize.Height = 50
	p.Customize.Face = 3
	p.Customize.EyeColor = 11
	p.Customize.EyeHeterochromia = 12
	p.Customize.FacePaintColor = 9
	p.Equipment[gamedata.SlotBody] = gamedata.Equipment{Model: 0x02_0123, Dye: 7}
	p.Equipment[gamedata.SlotMainHand] = gamedata.Equipment{Model: 201}
	return p
}

func enabled(mod func(*preferences.Preferences)) preferences.Preferences {
	prefs := preferences.Default()
	prefs.Enabled = true
	if mod != nil {
		mod(&prefs)
	}
	return prefs
}

func TestReplaceName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		from, to string
		want     string
	}{
		{name: "single", text: "Hello Alice Smith!", from: "Alice Smith", to: "Mira Vale", want: "Hello Mira Vale!"},
		{name: "repeated", text: "Alice, Alice.", from: "Alice", to: "Mira", want: "Mira, Mira."},
		{name: "inside a word", text: "Malice Alicea", from: "Alice", to: "Mira", want: "Malice Alicea"},
		{name: "case sensitive", text: "alice", from: "Alice", to: "Mira", want: "alice"},
		{name: "possessive", text: "Alice's turn", from: "Alice", to: "Mira", want: "Mira's turn"},
		{name: "after a rejected match", text: "AnnAnn Ann", from: "Ann", to: "Eve", want: "AnnAnn Eve"},
		{name: "non ascii boundary", text: "Élise Lise", from: "Lise", to: "Nia", want: "Élise Nia"},
		{name: "empty name", text: "Alice", from: "", to: "Mira", want: "Alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReplaceName(tt.text, tt.from, tt.to); got != tt.want {
				t.Fatalf("ReplaceName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReplaceFirstAndLast(t *testing.T) {
	text := "Alice Smith waves at Alice."
	if got := ReplaceFirst(text, "Alice Smith", "Mira Vale"); got != "Mira Smith waves at Mira." {
		t.Fatalf("ReplaceFirst = %q", got)
	}
	if got := ReplaceLast(text, "Alice Smith", "Mira Vale"); got != "Alice Vale waves at Alice." {
		t.Fatalf("ReplaceLast = %q", got)
	}
	if got := ReplaceLast("Alice", "Alice", "Mira Vale"); got != "Alice" {
		t.Fatalf("ReplaceLast without surname = %q", got)
	}
}

func TestApplyCustomize(t *testing.T) {
	host := player(1, "Alice Smith", 1, 1, 0)
	ApplyCustomize(testPersona(), host)

	want := map[CustomizeIndex]uint8{
		CustomizeRace:           2,
		CustomizeTribe:          4,
		CustomizeGender:         1,
		CustomizeModelType:      1,
		CustomizeHeight:         50,
		CustomizeFaceType:       3,
		CustomizeEyeColor:       11,
		CustomizeEyeColor2:      12,
		CustomizeFacepaintColor: 9,
	}
	for index, v := range want {
		if got := host.customize[index]; got != v {
			t.Fatalf("customize[%d] = %d, want %d", index, got, v)
		}
	}
}

func TestSlotEquipment(t *testing.T) {
	p := testPersona()

	got, ok := SlotEquipment(p, gamedata.SlotBody)
	if !ok {
		t.Fatal("expected body slot to be rewritten")
	}
	if got != (EquipData{Model: 0x0123, Variant: 2, Dye: 7}) {
		t.Fatalf("body = %+v", got)
	}
	if _, ok := SlotEquipment(p, gamedata.SlotMainHand); ok {
		t.Fatal("weapon slots are not rewritten")
	}
	if _, ok := SlotEquipment(p, gamedata.SlotCount); ok {
		t.Fatal("out of range slot")
	}
}

func TestPolicyObscureAppearance(t *testing.T) {
	prefs := enabled(func(p *preferences.Preferences) {
		p.Appearance = preferences.Appearance{Party: true, Others: true, ExcludeFriends: true}
	})
	policy := Policy{Prefs: prefs}
	pc := player(1, "A B", 1, 1, 0)
	npc := &fakeEntity{id: 2, kind: KindOther}

	tests := []struct {
		name    string
		subject Subject
		want    bool
	}{
		{name: "self", subject: Subject{Entity: pc, Relation: RelationSelf}},
		{name: "party", subject: Subject{Entity: pc, Relation: RelationParty}, want: true},
		{name: "other", subject: Subject{Entity: pc, Relation: RelationOther}, want: true},
		{name: "friend excluded", subject: Subject{Entity: pc, Relation: RelationOther, Friend: true}},
		{name: "not a player", subject: Subject{Entity: npc, Relation: RelationOther}},
		{name: "no entity", subject: Subject{Relation: RelationOther}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.ObscureAppearance(tt.subject); got != tt.want {
				t.Fatalf("ObscureAppearance = %v, want %v", got, tt.want)
			}
		})
	}

	prefs.Enabled = false
	if (Policy{Prefs: prefs}).ObscureAppearance(Subject{Entity: pc, Relation: RelationParty}) {
		t.Fatal("disabled preferences obscure nothing")
	}
}

func TestPolicyObscureName(t *testing.T) {
	prefs := enabled(func(p *preferences.Preferences) {
		p.SelfFirst = true
		p.Party = true
		p.ExcludeFriends = true
	})
	policy := Policy{Prefs: prefs}
	pc := player(1, "A B", 1, 1, 0)

	if got := policy.ObscureName(Subject{Entity: pc, Relation: RelationSelf}); got != (NameScope{First: true}) {
		t.Fatalf("self scope = %+v", got)
	}
	if got := policy.ObscureName(Subject{Entity: pc, Relation: RelationParty}); got != (NameScope{Full: true}) {
		t.Fatalf("party scope = %+v", got)
	}
	if got := policy.ObscureName(Subject{Entity: pc, Relation: RelationParty, Friend: true}); got.Any() {
		t.Fatalf("friend scope = %+v", got)
	}
	if got := policy.ObscureName(Subject{Entity: pc, Relation: RelationOther}); got.Any() {
		t.Fatalf("others disabled, scope = %+v", got)
	}
}

func TestInfo(t *testing.T) {
	subs := &fakeSubstitutes{personas: map[uint32]candidate.Persona{1: testPersona()}}
	alice := player(1, "Alice Smith", 1, 2, 0)

	plain := New(subs, enabled(nil))
	if got := plain.Info(Subject{Entity: alice, Relation: RelationOther}); got != (identity.Info{Race: 1, Clan: 1, Sex: 0}) {
		t.Fatalf("host info = %+v", got)
	}

	obscured := New(subs, enabled(func(p *preferences.Preferences) { p.Appearance.Others = true }))
	if got := obscured.Info(Subject{Entity: alice, Relation: RelationOther}); got != (identity.Info{Race: 2, Clan: 1, Sex: 1}) {
		t.Fatalf("persona info = %+v", got)
	}

	blank := player(2, "Blank", 0, 0, 1)
	if got := plain.Info(Subject{Entity: blank}); got != (identity.Info{Race: identity.Unknown, Clan: identity.Unknown, Sex: 1}) {
		t.Fatalf("blank info = %+v", got)
	}
}

func TestInitialiseCharacterAndSlotUpdate(t *testing.T) {
	subs := &fakeSubstitutes{personas: map[uint32]candidate.Persona{1: testPersona()}}
	o := New(subs, enabled(func(p *preferences.Preferences) { p.Appearance.Others = true }))

	alice := player(1, "Alice Smith", 1, 2, 0)
	if !o.InitialiseCharacter(Subject{Entity: alice}) {
		t.Fatal("expected appearance to be written")
	}
	if alice.customize[CustomizeRace] != 2 {
		t.Fatal("expected persona race")
	}
	if data, ok := o.SlotUpdate(Subject{Entity: alice}, gamedata.SlotBody); !ok || data.Model != 0x0123 {
		t.Fatalf("slot update = %+v, %v", data, ok)
	}

	bob := player(2, "Bob Stone", 1, 1, 0)
	if o.InitialiseCharacter(Subject{Entity: bob}) {
		t.Fatal("no persona, nothing written")
	}

	o.SetPreferences(enabled(nil))
	carol := player(1, "Carol", 1, 1, 0)
	if o.InitialiseCharacter(Subject{Entity: carol}) {
		t.Fatal("appearance substitution disabled")
	}
	if _, ok := o.SlotUpdate(Subject{Entity: carol}, gamedata.SlotBody); ok {
		t.Fatal("appearance substitution disabled")
	}
}

func TestNameplate(t *testing.T) {
	subs := &fakeSubstitutes{
		names:       map[string]string{"Alice Smith": "Mira Vale", "Bob Stone": "Tam Reed"},
		initialised: true,
	}
	o := New(subs, enabled(func(p *preferences.Preferences) {
		p.SelfLast = true
		p.Others = true
	}))

	self := Subject{Entity: player(1, "Alice Smith", 1, 1, 1), Relation: RelationSelf}
	got := o.Nameplate(self, Nameplate{Name: "Alice Smith", Title: "Alice Smith's Chocobo"})
	if got.Name != "Alice Vale" || got.Title != "Alice Vale's Chocobo" {
		t.Fatalf("self nameplate = %+v", got)
	}

	other := Subject{Entity: player(2, "Bob Stone", 1, 1, 0), Relation: RelationOther}
	got = o.Nameplate(other, Nameplate{Name: "Bob Stone", FreeCompany: "«Bob Stone»"})
	if got.Name != "Tam Reed" || got.FreeCompany != "«Tam Reed»" {
		t.Fatalf("other nameplate = %+v", got)
	}

	party := Subject{Entity: player(2, "Bob Stone", 1, 1, 0), Relation: RelationParty}
	if got := o.Nameplate(party, Nameplate{Name: "Bob Stone"}); got.Name != "Bob Stone" {
		t.Fatal("party names are not replaced")
	}

	subs.initialised = false
	if got := o.Nameplate(other, Nameplate{Name: "Bob Stone"}); got.Name != "Bob Stone" {
		t.Fatal("names are not replaced before the supply is initialised")
	}
}

func TestText(t *testing.T) {
	subs := &fakeSubstitutes{
		names: map[string]string{
			"Alice Smith": "Mira Vale",
			"Bob Stone":   "Tam Reed",
			"Cid Garlond": "Ori Fenn",
		},
		initialised: true,
	}
	o := New(subs, enabled(func(p *preferences.Preferences) {
		p.SelfFull = true
		p.Party = true
		p.Others = true
		p.ExcludeFriends = true
		p.World = true
		p.DataCenter = "Light"
	}))

	scene := Scene{
		World: "Odin",
		Subjects: []Subject{
			{Entity: player(1, "Alice Smith", 1, 1, 1), Relation: RelationSelf},
			{Entity: player(2, "Bob Stone", 1, 1, 0), Relation: RelationParty},
			{Entity: player(3, "Cid Garlond", 1, 1, 0), Relation: RelationOther, Friend: true},
			{Entity: player(4, "Dee Unknown", 0, 0, 0), Relation: RelationOther},
		},
	}
	got, changed := o.Text("Alice Smith of Odin invites Bob Stone and Cid Garlond.", scene)
	if !changed {
		t.Fatal("expected text to change")
	}
	if want := "Mira Vale of Light invites Tam Reed and Cid Garlond."; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	for _, l := range subs.lookups {
		if l.name == "Dee Unknown" || l.name == "Cid Garlond" {
			t.Fatalf("unexpected lookup for %q", l.name)
		}
	}

	if _, changed := o.Text("nothing here", scene); changed {
		t.Fatal("expected unchanged text")
	}

	o.SetPreferences(preferences.Default())
	if got, changed := o.Text("Alice Smith", scene); changed || got != "Alice Smith" {
		t.Fatal("disabled preferences leave text alone")
	}
}

func TestTextCompanyTag(t *testing.T) {
	subs := &fakeSubstitutes{names: map[string]string{}, initialised: true}
	tests := []struct {
		name string
		on   bool
		tag  string
		want string
	}{
		{name: "enabled", on: true, tag: "MOON", want: "Alice of <FC> joined <FC>."},
		{name: "disabled", on: false, tag: "MOON", want: "Alice of <MOON> joined <MOON>."},
		{name: "no tag", on: true, tag: "", want: "Alice of <MOON> joined <MOON>."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New(subs, enabled(func(p *preferences.Preferences) {
				p.FreeCompany = tt.on
			}))
			got, _ := o.Text("Alice of <MOON> joined <MOON>.", Scene{CompanyTag: tt.tag})
			if got != tt.want {
				t.Fatalf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextSkipsNonPlayers(t *testing.T) {
	subs := &fakeSubstitutes{names: map[string]string{"Alice Smith": "Mira Vale"}, initialised: true}
	o := New(subs, enabled(func(p *preferences.Preferences) {
		p.Others = true
	}))
	npc := player(7, "Alice Smith", 1, 1, 1)
	npc.kind = KindOther

	got, changed := o.Text("Alice Smith waves.", Scene{Subjects: []Subject{{Entity: npc, Relation: RelationOther}}})
	if changed || got != "Alice Smith waves." {
		t.Fatalf("text = %q, want unchanged", got)
	}
	if len(subs.lookups) != 0 {
		t.Fatalf("expected no lookups for a non-player, got %d", len(subs.lookups))
	}
}

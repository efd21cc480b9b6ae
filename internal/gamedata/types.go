package gamedata

import "context"

// Slot identifies an equipment slot on an NPC appearance row.
type Slot int

const (
	SlotHead Slot = iota
	SlotBody
	SlotHands
	SlotLegs
	SlotFeet
	SlotEars
	SlotNeck
	SlotWrists
	SlotRightRing
	SlotLeftRing
	SlotMainHand
	SlotOffHand
	SlotCount
)

// slotNames are the column prefixes used by storage and import payloads.
var slotNames = [SlotCount]string{
	"head", "body", "hands", "legs", "feet", "ears",
	"neck", "wrists", "right_ring", "left_ring", "main_hand", "off_hand",
}

// String returns the storage name of the slot.
func (s Slot) String() string {
	if s < 0 || s >= SlotCount {
		return "unknown"
	}
	return slotNames[s]
}

// Customize holds the numeric appearance attributes of an NPC.
type Customize struct {
	Height              uint8 `json:"height"`
	Face                uint8 `json:"face"`
	HairStyle           uint8 `json:"hair_style"`
	HairHighlight       uint8 `json:"hair_highlight"`
	SkinColor           uint8 `json:"skin_color"`
	EyeHeterochromia    uint8 `json:"eye_heterochromia"`
	HairColor           uint8 `json:"hair_color"`
	HairHighlightColor  uint8 `json:"hair_highlight_color"`
	FacialFeature       uint8 `json:"facial_feature"`
	FacialFeatureColor  uint8 `json:"facial_feature_color"`
	Eyebrows            uint8 `json:"eyebrows"`
	EyeColor            uint8 `json:"eye_color"`
	EyeShape            uint8 `json:"eye_shape"`
	Nose                uint8 `json:"nose"`
	Jaw                 uint8 `json:"jaw"`
	Mouth               uint8 `json:"mouth"`
	LipColor            uint8 `json:"lip_color"`
	BustOrTone1         uint8 `json:"bust_or_tone1"`
	ExtraFeature1       uint8 `json:"extra_feature1"`
	ExtraFeature2OrBust uint8 `json:"extra_feature2_or_bust"`
	FacePaint           uint8 `json:"face_paint"`
	FacePaintColor      uint8 `json:"face_paint_color"`
}

// Equipment is the model and dye of one slot. Model packs the base model in
// the low 16 bits and the variant in the next 8.
type Equipment struct {
	Model uint32 `json:"model"`
	Dye   uint32 `json:"dye"`
}

// NPCBase is one row of the NPC appearance table.
type NPCBase struct {
	ID         uint32               `json:"id"`
	BodyType   uint8                `json:"body_type"`
	ModelChara uint32               `json:"model_chara"`
	Race       uint8                `json:"race"`
	Tribe      uint8                `json:"tribe"`
	Gender     uint8                `json:"gender"`
	Customize  Customize            `json:"customize"`
	Equipment  [SlotCount]Equipment `json:"equipment"`
}

// Model returns the model of slot s.
func (n NPCBase) Model(s Slot) uint32 {
	if s < 0 || s >= SlotCount {
		return 0
	}
	return n.Equipment[s].Model
}

// NPCResident carries the display name of an NPC.
type NPCResident struct {
	ID       uint32 `json:"id"`
	Singular string `json:"singular"`
}

// Item is one row of the item table.
type Item struct {
	ID                uint32 `json:"id"`
	Name              string `json:"name"`
	IsUnique          bool   `json:"is_unique"`
	EquipSlotCategory uint32 `json:"equip_slot_category"`
	ClassJobCategory  uint32 `json:"class_job_category"`
	ModelMain         uint64 `json:"model_main"`
	ModelSub          uint64 `json:"model_sub"`
}

// EquipSlotCategory describes which hand slots an item occupies.
type EquipSlotCategory struct {
	ID       uint32 `json:"id"`
	MainHand int8   `json:"main_hand"`
	OffHand  int8   `json:"off_hand"`
}

// BothHands reports whether items of the category occupy both hand slots.
func (c EquipSlotCategory) BothHands() bool {
	return c.MainHand != 0 && c.OffHand != 0
}

// ClassJob is one row of the job table.
type ClassJob struct {
	ID           uint32 `json:"id"`
	Abbreviation string `json:"abbreviation"`
}

// ClassJobCategory lists the job abbreviations allowed to use an item.
type ClassJobCategory struct {
	ID   uint32   `json:"id"`
	Jobs []string `json:"jobs"`
}

// Race is one row of the race table. Row 0 is a placeholder.
type Race struct {
	ID   uint8  `json:"id"`
	Name string `json:"name"`
}

// Tribe is one row of the tribe (clan) table.
type Tribe struct {
	ID   uint8  `json:"id"`
	Race uint8  `json:"race"`
	Name string `json:"name"`
}

// NamePartKind distinguishes forenames from surnames in the name sheet.
type NamePartKind string

const (
	NamePartFirst NamePartKind = "first"
	NamePartLast  NamePartKind = "last"
)

// NamePart is one row of the name sheet.
type NamePart struct {
	Race uint8        `json:"race"`
	Clan uint8        `json:"clan"`
	Sex  uint8        `json:"sex"`
	Kind NamePartKind `json:"kind"`
	Text string       `json:"text"`
}

// Snapshot is a full read of the reference tables.
type Snapshot struct {
	NPCBases            []NPCBase
	NPCResidents        []NPCResident
	Items               []Item
	EquipSlotCategories []EquipSlotCategory
	ClassJobs           []ClassJob
	ClassJobCategories  []ClassJobCategory
	Races               []Race
	Tribes              []Tribe
}

// Source provides reference table snapshots.
type Source interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// NameSheetSource provides the rows of the name sheet.
type NameSheetSource interface {
	NameParts(ctx context.Context) ([]NamePart, error)
}

// Snapshot returns s itself so an in-memory snapshot can act as a Source.
func (s *Snapshot) Snapshot(context.Context) (*Snapshot, error) {
	return s, nil
}

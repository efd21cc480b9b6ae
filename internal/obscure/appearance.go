package obscure

import (
	"github.com/louisbranch/occulta/internal/candidate"
	"github.com/louisbranch/occulta/internal/gamedata"
)

// ApplyCustomize writes the appearance of p into host.
func ApplyCustomize(p candidate.Persona, host HostEntityAccessor) {
	c := p.Customize
	values := [CustomizeSize]uint8{
		CustomizeRace:              p.Race,
		CustomizeGender:            p.Gender,
		CustomizeModelType:         p.BodyType,
		CustomizeHeight:            c.Height,
		CustomizeTribe:             p.Tribe,
		CustomizeFaceType:          c.Face,
		CustomizeHairStyle:         c.HairStyle,
		CustomizeHasHighlights:     c.HairHighlight,
		CustomizeSkinColor:         c.SkinColor,
		CustomizeEyeColor:          c.EyeColor,
		CustomizeHairColor:         c.HairColor,
		CustomizeHairColor2:        c.HairHighlightColor,
		CustomizeFaceFeatures:      c.FacialFeature,
		CustomizeFaceFeaturesColor: c.FacialFeatureColor,
		CustomizeEyebrows:          c.Eyebrows,
		CustomizeEyeColor2:         c.EyeHeterochromia,
		CustomizeEyeShape:          c.EyeShape,
		CustomizeNoseShape:         c.Nose,
		CustomizeJawShape:          c.Jaw,
		CustomizeLipStyle:          c.Mouth,
		CustomizeLipColor:          c.LipColor,
		CustomizeRaceFeatureSize:   c.BustOrTone1,
		CustomizeRaceFeatureType:   c.ExtraFeature1,
		CustomizeBustSize:          c.ExtraFeature2OrBust,
		CustomizeFacepaint:         c.FacePaint,
		CustomizeFacepaintColor:    c.FacePaintColor,
	}
	for i, v := range values {
		host.SetCustomize(CustomizeIndex(i), v)
	}
}

// EquipData is the host's per-slot equipment record.
type EquipData struct {
	Model   uint16
	Variant uint8
	Dye     uint8
}

// SlotEquipment returns the persona's equipment for slot. Only the armour
// and accessory slots are rewritten; weapon slots report false.
func SlotEquipment(p candidate.Persona, slot gamedata.Slot) (EquipData, bool) {
	if slot < gamedata.SlotHead || slot > gamedata.SlotLeftRing {
		return EquipData{}, false
	}
	e := p.Equipment[slot]
	return EquipData{
		Model:   uint16(e.Model & 0xFFFF),
		Variant: uint8((e.Model >> 16) & 0xFF),
		Dye:     uint8(e.Dye),
	}, true
}

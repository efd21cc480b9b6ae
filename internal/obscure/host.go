package obscure

// ObjectKind is the host's classification of an entity.
type ObjectKind uint8

const (
	KindOther ObjectKind = iota
	KindPlayer
)

// CustomizeIndex is a position in the host's appearance byte array.
type CustomizeIndex int

const (
	CustomizeRace CustomizeIndex = iota
	CustomizeGender
	CustomizeModelType
	CustomizeHeight
	CustomizeTribe
	CustomizeFaceType
	CustomizeHairStyle
	CustomizeHasHighlights
	CustomizeSkinColor
	CustomizeEyeColor
	CustomizeHairColor
	CustomizeHairColor2
	CustomizeFaceFeatures
	CustomizeFaceFeaturesColor
	CustomizeEyebrows
	CustomizeEyeColor2
	CustomizeEyeShape
	CustomizeNoseShape
	CustomizeJawShape
	CustomizeLipStyle
	CustomizeLipColor
	CustomizeRaceFeatureSize
	CustomizeRaceFeatureType
	CustomizeBustSize
	CustomizeFacepaint
	CustomizeFacepaintColor
	CustomizeSize
)

// HostEntityAccessor exposes the fields of a host character that
// substitution reads or writes. Implementations own the memory layout.
type HostEntityAccessor interface {
	ObjectID() uint32
	Kind() ObjectKind
	Name() string
	ClassJob() uint32
	Customize(i CustomizeIndex) uint8
	SetCustomize(i CustomizeIndex, value uint8)
}

package candidate

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// storyCharacters are NPCs too recognisable to hand out as a disguise.
var storyCharacters = []string{
	"Alisaie",
	"Alphinaud",
	"Aymeric",
	"Biggs",
	"Cid",
	"Estinien",
	"G'raha Tia",
	"Godbert",
	"Haurchefant",
	"Hermes",
	"Hildibrand",
	"Hythlodaeus",
	"Igeyorhm",
	"Kan-E-Senna",
	"Krile",
	"Lahabrea",
	"Lyse",
	"Merlwyb",
	"Minfilia",
	"Nanamo Ul Namo",
	"Papalymo",
	"Raubahn",
	"Ryne",
	"Tataru",
	"Thancred",
	"Themis",
	"Urianger",
	"Venat",
	"Wedge",
	"Y'shtola",
	"Yda",
	"Yugiri",
}

var excludedNames = func() map[string]struct{} {
	set := make(map[string]struct{}, len(storyCharacters))
	for _, name := range storyCharacters {
		set[foldName(name)] = struct{}{}
	}
	return set
}()

// foldName normalises a display name for comparison: NFC, then Unicode case
// folding.
func foldName(name string) string {
	return cases.Fold().String(norm.NFC.String(name))
}

// Excluded reports whether name belongs to a story character.
func Excluded(name string) bool {
	if name == "" {
		return false
	}
	_, ok := excludedNames[foldName(name)]
	return ok
}

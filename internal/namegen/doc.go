// Package namegen generates character names from the name sheet.
//
// SheetGenerator stands in for the host's name generator: it joins a random
// forename and surname of a (race, clan, sex) bucket and only answers while
// its sheet is loaded.
package namegen

package gamedatafakes

import (
	"context"
	"fmt"
	"time"

	"github.com/louisbranch/occulta/internal/gamedata"
)

// Bucket mirrors a (race, clan, sex) key without importing namesupply.
type Bucket struct {
	Race, Clan, Sex uint8
}

// Generator is a deterministic stand-in for the host's name generator.
//
// Each bucket yields "F<race><clan><sex> N<n>" with n counting up from 1.
// Duplicate makes the next call for a bucket repeat the previous name, which
// is what the host does when called twice in one frame with the same
// arguments.
type Generator struct {
	Calls     map[Bucket]int
	Duplicate map[Bucket]bool
	Fail      bool
	// Fixed, when set, is returned for every call.
	Fixed string

	counters map[Bucket]int
	last     map[Bucket]string
}

// NewGenerator returns an empty fake generator.
func NewGenerator() *Generator {
	return &Generator{
		Calls:     make(map[Bucket]int),
		Duplicate: make(map[Bucket]bool),
		counters:  make(map[Bucket]int),
		last:      make(map[Bucket]string),
	}
}

// GenerateName implements the name generation collaborator.
func (g *Generator) GenerateName(race, clan, sex uint8) (string, bool) {
	b := Bucket{Race: race, Clan: clan, Sex: sex}
	g.Calls[b]++
	if g.Fail {
		return "", false
	}
	if g.Fixed != "" {
		return g.Fixed, true
	}
	if g.Duplicate[b] {
		if last, ok := g.last[b]; ok {
			return last, true
		}
	}
	g.counters[b]++
	name := fmt.Sprintf("F%d%d%d N%d", race, clan, sex, g.counters[b])
	g.last[b] = name
	return name, true
}

// SheetLoader counts requests to reload the name sheet.
type SheetLoader struct {
	Loads int
}

// LoadSheet implements the sheet loading collaborator.
func (l *SheetLoader) LoadSheet() {
	l.Loads++
}

// Clock is a manually advanced time source.
type Clock struct {
	T time.Time
}

// NewClock returns a clock fixed at an arbitrary instant.
func NewClock() *Clock {
	return &Clock{T: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time {
	return c.T
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}

// NameSheet is an in-memory name sheet source.
type NameSheet struct {
	Parts []gamedata.NamePart
	Err   error
	Reads int
}

// NameParts implements gamedata.NameSheetSource.
func (s *NameSheet) NameParts(context.Context) ([]gamedata.NamePart, error) {
	s.Reads++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Parts, nil
}

package namegen

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"

	"github.com/louisbranch/occulta/internal/gamedata"
)

type bucket struct {
	race, clan, sex uint8
}

type parts struct {
	first []string
	last  []string
}

// SheetGenerator draws names from the rows of a name sheet.
type SheetGenerator struct {
	src gamedata.NameSheetSource

	mu     sync.Mutex
	rng    *rand.Rand
	sheet  map[bucket]*parts
	loaded bool
}

// NewSheetGenerator returns a generator reading rows from src. The sheet is
// not loaded until LoadSheet or Load is called.
func NewSheetGenerator(src gamedata.NameSheetSource, rng *rand.Rand) *SheetGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &SheetGenerator{src: src, rng: rng}
}

// Load reads the sheet from the source, replacing any loaded sheet.
func (g *SheetGenerator) Load(ctx context.Context) error {
	if g.src == nil {
		return fmt.Errorf("name sheet source is required")
	}
	rows, err := g.src.NameParts(ctx)
	if err != nil {
		return fmt.Errorf("load name sheet: %w", err)
	}

	sheet := make(map[bucket]*parts)
	for _, row := range rows {
		if row.Text == "" {
			continue
		}
		key := bucket{race: row.Race, clan: row.Clan, sex: row.Sex}
		p, ok := sheet[key]
		if !ok {
			p = &parts{}
			sheet[key] = p
		}
		switch row.Kind {
		case gamedata.NamePartFirst:
			p.first = append(p.first, row.Text)
		case gamedata.NamePartLast:
			p.last = append(p.last, row.Text)
		}
	}

	g.mu.Lock()
	g.sheet = sheet
	g.loaded = true
	g.mu.Unlock()
	return nil
}

// LoadSheet loads the sheet, logging failures. It satisfies the name
// supply's sheet loader.
func (g *SheetGenerator) LoadSheet() {
	if err := g.Load(context.Background()); err != nil {
		log.Printf("name sheet: %v", err)
	}
}

// Unload drops the sheet. GenerateName fails until the next load.
func (g *SheetGenerator) Unload() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sheet = nil
	g.loaded = false
}

// Loaded reports whether a sheet is loaded.
func (g *SheetGenerator) Loaded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loaded
}

// GenerateName returns "First Last" for the bucket, or only a forename when
// the bucket has no surnames. It fails when the sheet is not loaded or the
// bucket has no forenames.
func (g *SheetGenerator) GenerateName(race, clan, sex uint8) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.loaded {
		return "", false
	}
	p, ok := g.sheet[bucket{race: race, clan: clan, sex: sex}]
	if !ok || len(p.first) == 0 {
		return "", false
	}
	name := p.first[g.rng.Intn(len(p.first))]
	if len(p.last) > 0 {
		name += " " + p.last[g.rng.Intn(len(p.last))]
	}
	return name, true
}

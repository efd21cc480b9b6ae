package identity

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/louisbranch/occulta/internal/namesupply"
)

// Unknown marks an attribute the caller could not observe.
const Unknown uint8 = 0xFF

// Info is the observed (race, clan, sex) of a subject. Any field may be
// Unknown.
type Info struct {
	Race uint8
	Clan uint8
	Sex  uint8
}

// UnknownInfo returns an Info with every field unknown.
func UnknownInfo() Info {
	return Info{Race: Unknown, Clan: Unknown, Sex: Unknown}
}

// conflicts reports whether a known field of next differs from the same
// known field of prev.
func (prev Info) conflicts(next Info) bool {
	return differs(prev.Race, next.Race) || differs(prev.Clan, next.Clan) || differs(prev.Sex, next.Sex)
}

func differs(prev, next uint8) bool {
	return prev != Unknown && next != Unknown && prev != next
}

// merge overlays the known fields of next onto prev.
func (prev Info) merge(next Info) Info {
	if next.Race != Unknown {
		prev.Race = next.Race
	}
	if next.Clan != Unknown {
		prev.Clan = next.Clan
	}
	if next.Sex != Unknown {
		prev.Sex = next.Sex
	}
	return prev
}

// Supply is the name source the cache draws from.
type Supply interface {
	DequeueDistinctFrom(b namesupply.Bucket, exclude ...string) (string, bool)
	Generate(b namesupply.Bucket) (string, bool)
}

type entry struct {
	replacement string
	lastSeen    Info
}

// Entry is a read-only view of one cached mapping.
type Entry struct {
	Name        string
	Replacement string
	LastSeen    Info
}

// Cache owns the name to substitute mappings.
type Cache struct {
	mu        sync.Mutex
	supply    Supply
	raceCount int
	rng       *rand.Rand
	entries   map[string]*entry
}

// New returns an empty cache drawing names from supply. raceCount bounds the
// random race chosen for unknown attributes; rng supplies that randomness.
func New(supply Supply, raceCount int, rng *rand.Rand) *Cache {
	if raceCount < 1 {
		raceCount = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Cache{
		supply:    supply,
		raceCount: raceCount,
		rng:       rng,
		entries:   make(map[string]*entry),
	}
}

// Replacement returns the substitute for name as seen with info. It returns
// false when name is empty or no substitute could be produced; callers then
// show the real name.
func (c *Cache) Replacement(name string, info Info) (string, bool) {
	if name == "" {
		return "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var discarded string
	e, ok := c.entries[name]
	if !ok {
		e = &entry{lastSeen: info}
		c.entries[name] = e
	} else {
		if e.lastSeen.conflicts(info) {
			discarded = e.replacement
			e.replacement = ""
		}
		e.lastSeen = e.lastSeen.merge(info)
	}

	if e.replacement != "" {
		return e.replacement, true
	}

	b := c.resolve(e.lastSeen)
	exclude := []string{name}
	if discarded != "" {
		exclude = append(exclude, discarded)
	}

	if c.supply == nil {
		return "", false
	}
	if replacement, ok := c.supply.DequeueDistinctFrom(b, exclude...); ok {
		e.replacement = replacement
		return replacement, true
	}

	// The bucket ran dry: ask the generator directly. Collisions with other
	// subjects are possible here but rare.
	replacement, ok := c.supply.Generate(b)
	if !ok || contains(exclude, replacement) {
		return "", false
	}
	e.replacement = replacement
	return replacement, true
}

// resolve replaces unknown fields with uniformly random valid values.
func (c *Cache) resolve(info Info) namesupply.Bucket {
	b := namesupply.Bucket{Race: info.Race, Clan: info.Clan, Sex: info.Sex}
	if b.Race == Unknown {
		b.Race = uint8(c.rng.Intn(c.raceCount) + 1)
	}
	if b.Clan == Unknown {
		b.Clan = uint8(c.rng.Intn(2))
	}
	if b.Sex == Unknown {
		b.Sex = uint8(c.rng.Intn(2))
	}
	return b
}

// Lookup returns the cached substitute for name without drawing a new one.
func (c *Cache) Lookup(name string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[name]
	if !ok || e.replacement == "" {
		return "", false
	}
	return e.replacement, true
}

// Entries returns the cached mappings sorted by name.
func (c *Cache) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, 0, len(c.entries))
	for name, e := range c.entries {
		out = append(out, Entry{Name: name, Replacement: e.replacement, LastSeen: e.lastSeen})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Reset forgets every mapping. The next lookup for a name draws a new
// substitute and records fresh attributes.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

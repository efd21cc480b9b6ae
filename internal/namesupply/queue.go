package namesupply

import (
	"log"
	"sync"
	"time"
)

const (
	// DefaultDepth is the target number of names per bucket.
	DefaultDepth = 100
	// DefaultSheetReloadDelay is the wait between a login and the sheet reload.
	DefaultSheetReloadDelay = 3 * time.Second
)

// Generator is the host's name generator.
type Generator interface {
	// GenerateName returns a name for the bucket, or false when the host
	// could not produce one.
	GenerateName(race, clan, sex uint8) (string, bool)
}

// SheetLoader asks the host to load the name sheet.
type SheetLoader interface {
	LoadSheet()
}

// Bucket is a (race, clan, sex) partition of the name supply.
type Bucket struct {
	Race uint8
	Clan uint8
	Sex  uint8
}

// State is the fill state of one bucket.
type State int

const (
	// StateFilling means the bucket is below target depth.
	StateFilling State = iota
	// StateFull means the bucket reached target depth and generation is paused.
	StateFull
)

// Options tunes a Queue. Zero values select the defaults.
type Options struct {
	Depth            int
	SheetReloadDelay time.Duration
	Now              func() time.Time
}

// Queue owns the name buckets.
type Queue struct {
	mu          sync.Mutex
	generator   Generator
	sheets      SheetLoader
	depth       int
	reloadDelay time.Duration
	now         func() time.Time

	order       []Bucket
	names       map[Bucket][]string
	initialised bool

	reloadPending bool
	loginAt       time.Time
}

// New creates the buckets for races 1..raceCount and requests an initial
// sheet load.
func New(raceCount int, generator Generator, sheets SheetLoader, opts Options) *Queue {
	if opts.Depth <= 0 {
		opts.Depth = DefaultDepth
	}
	if opts.SheetReloadDelay <= 0 {
		opts.SheetReloadDelay = DefaultSheetReloadDelay
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	q := &Queue{
		generator:   generator,
		sheets:      sheets,
		depth:       opts.Depth,
		reloadDelay: opts.SheetReloadDelay,
		now:         opts.Now,
		names:       make(map[Bucket][]string),
	}
	for race := 1; race <= raceCount && race < 0xFF; race++ {
		for clan := uint8(0); clan <= 1; clan++ {
			for sex := uint8(0); sex <= 1; sex++ {
				b := Bucket{Race: uint8(race), Clan: clan, Sex: sex}
				q.order = append(q.order, b)
				q.names[b] = make([]string, 0, q.depth)
			}
		}
	}
	if q.sheets != nil {
		q.sheets.LoadSheet()
	}
	return q
}

// Tick runs once per host frame. It reloads the name sheet when a login timer
// has expired, then asks the generator for one name for each bucket that is
// not yet full.
func (q *Queue) Tick() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.reloadPending && q.now().Sub(q.loginAt) >= q.reloadDelay {
		q.reloadPending = false
		if q.sheets != nil {
			q.sheets.LoadSheet()
			log.Printf("name sheet reloaded after login")
		}
	}

	if q.generator == nil {
		return
	}
	for _, b := range q.order {
		queue := q.names[b]
		if len(queue) >= q.depth {
			continue
		}
		name, ok := q.generator.GenerateName(b.Race, b.Clan, b.Sex)
		if !ok || name == "" {
			continue
		}
		if n := len(queue); n > 0 && queue[n-1] == name {
			continue
		}
		q.names[b] = append(queue, name)
	}

	if !q.initialised && q.allFull() {
		q.initialised = true
		log.Printf("name supply initialised: %d buckets at depth %d", len(q.order), q.depth)
	}
}

func (q *Queue) allFull() bool {
	for _, b := range q.order {
		if len(q.names[b]) < q.depth {
			return false
		}
	}
	return len(q.order) > 0
}

// OnLogin arms the sheet reload timer. A second login before the timer fires
// restarts it; either way the sheet is reloaded once.
func (q *Queue) OnLogin() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.loginAt = q.now()
	q.reloadPending = true
}

// DequeueDistinctFrom pops names from the front of bucket b until it finds
// one that is not in exclude. Popped excluded names are discarded. It returns
// false when the bucket is unknown or runs empty.
func (q *Queue) DequeueDistinctFrom(b Bucket, exclude ...string) (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	queue, ok := q.names[b]
	if !ok {
		return "", false
	}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if !contains(exclude, name) {
			q.names[b] = queue
			return name, true
		}
	}
	q.names[b] = queue
	return "", false
}

// Generate calls the generator directly, bypassing the queue.
func (q *Queue) Generate(b Bucket) (string, bool) {
	if q.generator == nil {
		return "", false
	}
	name, ok := q.generator.GenerateName(b.Race, b.Clan, b.Sex)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Initialised reports whether every bucket has been full at least once.
func (q *Queue) Initialised() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.initialised
}

// Len returns the number of queued names in b.
func (q *Queue) Len(b Bucket) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.names[b])
}

// State returns the fill state of b.
func (q *Queue) State(b Bucket) State {
	if q.Len(b) >= q.depth {
		return StateFull
	}
	return StateFilling
}

// Buckets returns every bucket in refill order.
func (q *Queue) Buckets() []Bucket {
	out := make([]Bucket, len(q.order))
	copy(out, q.order)
	return out
}

// Depth returns the target depth of each bucket.
func (q *Queue) Depth() int {
	return q.depth
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

package namesupply

import (
	"testing"
	"time"

	"github.com/louisbranch/occulta/internal/testkit/gamedatafakes"
)

func newTestQueue(raceCount, depth int) (*Queue, *gamedatafakes.Generator, *gamedatafakes.SheetLoader, *gamedatafakes.Clock) {
	gen := gamedatafakes.NewGenerator()
	sheets := &gamedatafakes.SheetLoader{}
	clock := gamedatafakes.NewClock()
	q := New(raceCount, gen, sheets, Options{Depth: depth, Now: clock.Now})
	return q, gen, sheets, clock
}

func fakeBucket(b Bucket) gamedatafakes.Bucket {
	return gamedatafakes.Bucket{Race: b.Race, Clan: b.Clan, Sex: b.Sex}
}

func TestNewCreatesEveryBucket(t *testing.T) {
	q, _, sheets, _ := newTestQueue(3, 5)

	buckets := q.Buckets()
	if len(buckets) != 12 {
		t.Fatalf("bucket count = %d, want 12", len(buckets))
	}
	if buckets[0] != (Bucket{Race: 1}) || buckets[11] != (Bucket{Race: 3, Clan: 1, Sex: 1}) {
		t.Fatalf("unexpected bucket order: %v", buckets)
	}
	if sheets.Loads != 1 {
		t.Fatalf("expected initial sheet load, got %d", sheets.Loads)
	}
	if q.Depth() != 5 {
		t.Fatalf("depth = %d, want 5", q.Depth())
	}
}

func TestNewDefaults(t *testing.T) {
	q := New(1, nil, nil, Options{})
	if q.Depth() != DefaultDepth {
		t.Fatalf("depth = %d, want %d", q.Depth(), DefaultDepth)
	}
	q.Tick()
	if q.Initialised() {
		t.Fatal("queue without generator must not initialise")
	}
}

func TestTickThrottlesToOnePerBucket(t *testing.T) {
	const depth = 5
	q, gen, _, _ := newTestQueue(2, depth)

	for tick := 1; tick <= depth+3; tick++ {
		before := make(map[Bucket]int)
		for _, b := range q.Buckets() {
			before[b] = q.Len(b)
		}

		q.Tick()

		for _, b := range q.Buckets() {
			got := q.Len(b)
			if got-before[b] > 1 {
				t.Fatalf("tick %d: bucket %v grew by %d", tick, b, got-before[b])
			}
			if got > depth {
				t.Fatalf("tick %d: bucket %v exceeded depth with %d", tick, b, got)
			}
			if calls := gen.Calls[fakeBucket(b)]; calls > depth {
				t.Fatalf("tick %d: generator called %d times for full bucket %v", tick, calls, b)
			}
		}

		if tick < depth && q.Initialised() {
			t.Fatalf("initialised after %d ticks, before buckets were full", tick)
		}
		if tick >= depth && !q.Initialised() {
			t.Fatalf("not initialised after %d ticks", tick)
		}
	}

	for _, b := range q.Buckets() {
		if q.State(b) != StateFull {
			t.Fatalf("bucket %v not full", b)
		}
	}
}

func TestTickSkipsSameTickDuplicates(t *testing.T) {
	q, gen, _, _ := newTestQueue(1, 3)
	stuck := Bucket{Race: 1, Clan: 1, Sex: 0}

	q.Tick()
	gen.Duplicate[fakeBucket(stuck)] = true
	q.Tick()
	q.Tick()

	if got := q.Len(stuck); got != 1 {
		t.Fatalf("stuck bucket length = %d, want 1", got)
	}
	if got := q.Len(Bucket{Race: 1}); got != 3 {
		t.Fatalf("healthy bucket length = %d, want 3", got)
	}
	if q.Initialised() {
		t.Fatal("expected queue to wait for the stuck bucket")
	}

	gen.Duplicate[fakeBucket(stuck)] = false
	q.Tick()
	q.Tick()
	if !q.Initialised() {
		t.Fatal("expected queue to initialise once the stuck bucket fills")
	}
}

func TestTickIgnoresFailedGeneration(t *testing.T) {
	q, gen, _, _ := newTestQueue(1, 2)
	gen.Fail = true

	q.Tick()
	for _, b := range q.Buckets() {
		if q.Len(b) != 0 {
			t.Fatalf("bucket %v should stay empty", b)
		}
	}
}

func TestInitialisedNeverReverts(t *testing.T) {
	q, _, _, _ := newTestQueue(1, 2)
	q.Tick()
	q.Tick()
	if !q.Initialised() {
		t.Fatal("expected initialised")
	}

	for _, b := range q.Buckets() {
		for q.Len(b) > 0 {
			q.DequeueDistinctFrom(b)
		}
	}
	if !q.Initialised() {
		t.Fatal("initialised flag reverted after draining")
	}
	if q.State(Bucket{Race: 1}) != StateFilling {
		t.Fatal("drained bucket should be filling again")
	}
}

func TestDequeueDistinctFrom(t *testing.T) {
	q, _, _, _ := newTestQueue(1, 5)
	b := Bucket{Race: 1}
	for i := 0; i < 3; i++ {
		q.Tick()
	}

	name, ok := q.DequeueDistinctFrom(b, "F100 N1", "F100 N2")
	if !ok || name != "F100 N3" {
		t.Fatalf("DequeueDistinctFrom() = %q, %v, want F100 N3", name, ok)
	}
	if q.Len(b) != 0 {
		t.Fatalf("expected skipped names to be discarded, %d left", q.Len(b))
	}
}

func TestDequeueDistinctFromNeverReturnsExcluded(t *testing.T) {
	q, gen, _, _ := newTestQueue(1, 5)
	b := Bucket{Race: 1, Clan: 0, Sex: 1}
	gen.Fixed = "Alice Vale"
	q.Tick()

	if name, ok := q.DequeueDistinctFrom(b, "Alice Vale"); ok {
		t.Fatalf("returned excluded name %q", name)
	}
	if q.Len(b) != 0 {
		t.Fatalf("expected bucket to be drained, %d left", q.Len(b))
	}
}

func TestDequeueDistinctFromUnknownBucket(t *testing.T) {
	q, _, _, _ := newTestQueue(1, 5)
	if _, ok := q.DequeueDistinctFrom(Bucket{Race: 9}); ok {
		t.Fatal("expected unknown bucket to yield nothing")
	}
}

func TestGenerateBypassesQueue(t *testing.T) {
	q, gen, _, _ := newTestQueue(1, 5)

	name, ok := q.Generate(Bucket{Race: 1, Clan: 1, Sex: 1})
	if !ok || name != "F111 N1" {
		t.Fatalf("Generate() = %q, %v", name, ok)
	}
	if q.Len(Bucket{Race: 1, Clan: 1, Sex: 1}) != 0 {
		t.Fatal("direct generation must not enqueue")
	}

	gen.Fail = true
	if _, ok := q.Generate(Bucket{Race: 1}); ok {
		t.Fatal("expected failed generation to report false")
	}
}

func TestSheetReloadAfterLogin(t *testing.T) {
	q, _, sheets, clock := newTestQueue(1, 5)

	q.OnLogin()
	clock.Advance(2 * time.Second)
	q.Tick()
	if sheets.Loads != 1 {
		t.Fatalf("reloaded too early: %d loads", sheets.Loads)
	}

	clock.Advance(time.Second)
	q.Tick()
	if sheets.Loads != 2 {
		t.Fatalf("expected reload after delay, got %d loads", sheets.Loads)
	}

	clock.Advance(10 * time.Second)
	q.Tick()
	q.Tick()
	if sheets.Loads != 2 {
		t.Fatalf("expected exactly one reload per login, got %d loads", sheets.Loads)
	}

	q.OnLogin()
	clock.Advance(4 * time.Second)
	q.Tick()
	if sheets.Loads != 3 {
		t.Fatalf("expected reload for second login, got %d loads", sheets.Loads)
	}
}

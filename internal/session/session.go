package session

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/occulta/internal/candidate"
	"github.com/louisbranch/occulta/internal/gamedata"
	"github.com/louisbranch/occulta/internal/identity"
	"github.com/louisbranch/occulta/internal/namesupply"
	"github.com/louisbranch/occulta/internal/platform/otel"
	"github.com/louisbranch/occulta/internal/preferences"
	"github.com/louisbranch/occulta/internal/random"
	"github.com/louisbranch/occulta/internal/selection"
)

// Options configures Open. Source and Generator are required.
type Options struct {
	Source      gamedata.Source
	Generator   namesupply.Generator
	Sheets      namesupply.SheetLoader
	Preferences preferences.Preferences
	LocalUser   selection.LocalUserFunc
	// Seeds feeds the selection salt and the identity cache's randomness.
	// Nil uses crypto seeds.
	Seeds            random.SeedFunc
	QueueDepth       int
	SheetReloadDelay time.Duration
	Now              func() time.Time
}

// Session is the long-lived substitution state.
type Session struct {
	// mu makes ResetAll atomic with respect to lookups.
	mu         sync.RWMutex
	candidates *candidate.Repository
	selector   *selection.Selector
	names      *namesupply.Queue
	identities *identity.Cache
}

// Open loads the candidate pools and builds the session. It fails when the
// reference tables are missing or no candidate survives filtering.
func Open(ctx context.Context, opts Options) (*Session, error) {
	ctx, span := otel.Tracer().Start(ctx, "session.Open")
	defer span.End()

	if opts.Generator == nil {
		return nil, fmt.Errorf("name generator is required")
	}

	candidates, err := candidate.Load(ctx, opts.Source, opts.Preferences.Mask())
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	selector, err := selection.New(candidates, opts.Seeds, opts.LocalUser)
	if err != nil {
		return nil, err
	}
	rng, err := random.NewRand(opts.Seeds)
	if err != nil {
		return nil, fmt.Errorf("seed identity cache: %w", err)
	}

	raceCount := candidates.RaceCount()
	names := namesupply.New(raceCount, opts.Generator, opts.Sheets, namesupply.Options{
		Depth:            opts.QueueDepth,
		SheetReloadDelay: opts.SheetReloadDelay,
		Now:              opts.Now,
	})

	span.SetAttributes(
		attribute.Int("session.races", raceCount),
		attribute.Int("session.buckets", len(names.Buckets())),
	)
	log.Printf("substitution session opened: %d races, %d personas", raceCount, len(candidates.Personas()))

	return &Session{
		candidates: candidates,
		selector:   selector,
		names:      names,
		identities: identity.New(names, raceCount, rng),
	}, nil
}

// ReplacementName returns the substitute for name. Callers should check
// Initialised before substituting names.
func (s *Session) ReplacementName(name string, info identity.Info) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identities.Replacement(name, info)
}

// Persona returns the substitute persona for handle.
func (s *Session) Persona(handle uint32) (candidate.Persona, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selector.SelectPersona(handle)
}

// Equipment returns the substitute weapons for handle playing jobID.
func (s *Session) Equipment(jobID, handle uint32) (selection.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selector.SelectEquipment(jobID, handle)
}

// ResetAll re-rolls the salt and forgets every name mapping.
func (s *Session) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resetLocked()
}

// resetLocked requires s.mu held for writing.
func (s *Session) resetLocked() error {
	if err := s.selector.Reset(); err != nil {
		return err
	}
	s.identities.Reset()
	return nil
}

// Initialised reports whether every name bucket has been filled once.
func (s *Session) Initialised() bool {
	return s.names.Initialised()
}

// Tick runs one host frame of name generation.
func (s *Session) Tick() {
	s.names.Tick()
}

// OnLogin notes a login so the name sheet is reloaded after the delay.
func (s *Session) OnLogin() {
	s.names.OnLogin()
}

// SetPreferences recomputes the local user's persona subset.
func (s *Session) SetPreferences(ctx context.Context, prefs preferences.Preferences) {
	s.candidates.RefilterPersonal(ctx, prefs.Mask())
}

// Reload rereads the reference tables and resets the session. Lookups wait
// for both steps, so no persona index memoized from the old pools is applied
// to the new ones.
func (s *Session) Reload(ctx context.Context, src gamedata.Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.candidates.Reload(ctx, src); err != nil {
		return err
	}
	return s.resetLocked()
}

// Candidates returns the candidate repository.
func (s *Session) Candidates() *candidate.Repository {
	return s.candidates
}

// Names returns the name supply queue.
func (s *Session) Names() *namesupply.Queue {
	return s.names
}

// Identities returns the name mapping cache.
func (s *Session) Identities() *identity.Cache {
	return s.identities
}

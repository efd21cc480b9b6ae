package selection

import (
	"fmt"
	"log"
	"sync"

	"github.com/louisbranch/occulta/internal/candidate"
	"github.com/louisbranch/occulta/internal/core/seedmix"
	"github.com/louisbranch/occulta/internal/random"
)

// Pools is the candidate data a Selector draws from.
type Pools interface {
	Personas() []candidate.Persona
	Personal() []candidate.Persona
	WeaponPools(jobID uint32) (mainHands, offHands []candidate.Weapon, err error)
}

// LocalUserFunc returns the local user's handle, or false when no user is
// logged in.
type LocalUserFunc func() (uint32, bool)

// Equipment is a derived weapon set. OffHand is nil when the main hand
// occupies both slots or the job has no off-hand items.
type Equipment struct {
	MainHand candidate.Weapon
	OffHand  *candidate.Weapon
}

// Selector owns the salt and the memoized persona indexes.
type Selector struct {
	mu        sync.Mutex
	pools     Pools
	seeds     random.SeedFunc
	localUser LocalUserFunc
	salt      int64
	indexes   map[uint32]int
}

// New returns a Selector with a salt drawn from seeds. A nil seeds uses
// random.NewSeed; a nil localUser means no subject is the local user.
func New(pools Pools, seeds random.SeedFunc, localUser LocalUserFunc) (*Selector, error) {
	if pools == nil {
		return nil, fmt.Errorf("candidate pools are required")
	}
	if seeds == nil {
		seeds = random.NewSeed
	}
	salt, err := seeds()
	if err != nil {
		return nil, fmt.Errorf("seed salt: %w", err)
	}
	return &Selector{
		pools:     pools,
		seeds:     seeds,
		localUser: localUser,
		salt:      salt,
		indexes:   make(map[uint32]int),
	}, nil
}

// Salt returns the current salt.
func (s *Selector) Salt() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.salt
}

// SelectPersona returns the persona for handle. The local user draws from
// the personal subset when it is non-empty. It returns false only when there
// is no candidate at all.
func (s *Selector) SelectPersona(handle uint32) (candidate.Persona, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isLocalUser(handle) {
		if personal := s.pools.Personal(); len(personal) > 0 {
			return personal[seedmix.New(handle, s.salt).Intn(len(personal))], true
		}
	}

	personas := s.pools.Personas()
	if len(personas) == 0 {
		return candidate.Persona{}, false
	}
	index, ok := s.indexes[handle]
	if !ok || index >= len(personas) {
		index = seedmix.New(handle, s.salt).Intn(len(personas))
		s.indexes[handle] = index
	}
	return personas[index], true
}

func (s *Selector) isLocalUser(handle uint32) bool {
	if s.localUser == nil {
		return false
	}
	local, ok := s.localUser()
	return ok && local == handle
}

// SelectEquipment returns the weapons for handle playing jobID. It fails when
// the job is unknown or has no main-hand weapon.
func (s *Selector) SelectEquipment(jobID, handle uint32) (Equipment, error) {
	mainHands, offHands, err := s.pools.WeaponPools(jobID)
	if err != nil {
		return Equipment{}, err
	}

	stream := seedmix.New(handle, s.Salt())
	equipment := Equipment{MainHand: mainHands[stream.Intn(len(mainHands))]}
	if equipment.MainHand.BothHands || len(offHands) == 0 {
		return equipment, nil
	}
	offHand := offHands[stream.Intn(len(offHands))]
	equipment.OffHand = &offHand
	return equipment, nil
}

// Reset re-rolls the salt and forgets every memoized persona index. On a
// seed error nothing changes.
func (s *Selector) Reset() error {
	salt, err := s.seeds()
	if err != nil {
		return fmt.Errorf("seed salt: %w", err)
	}

	s.mu.Lock()
	s.salt = salt
	s.indexes = make(map[uint32]int)
	s.mu.Unlock()

	log.Printf("selection salt re-rolled")
	return nil
}

// Memoized returns the number of handles with a memoized persona index.
func (s *Selector) Memoized() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.indexes)
}

package candidate

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/occulta/internal/gamedata"
	apperrors "github.com/louisbranch/occulta/internal/platform/errors"
	"github.com/louisbranch/occulta/internal/platform/otel"
)

// JobEquipmentPools maps job ids to the weapons that job can equip.
type JobEquipmentPools struct {
	MainHands map[uint32][]Weapon
	OffHands  map[uint32][]Weapon
}

// Repository owns the candidate personas, the personal subset and the job
// equipment pools.
//
// Readers take a read lock; RefilterPersonal and Reload swap whole slices
// under the write lock.
type Repository struct {
	mu        sync.RWMutex
	personas  []Persona
	personal  []Persona
	pools     JobEquipmentPools
	raceCount int
	mask      PreferenceMask
}

// Load reads src and builds a Repository. The personal subset is computed
// from mask.
//
// Load fails with CodeReferenceTableMissing when a required table is absent
// or empty, and with CodeCandidatesEmpty when no NPC row passes the filters.
func Load(ctx context.Context, src gamedata.Source, mask PreferenceMask) (*Repository, error) {
	r := &Repository{}
	if err := r.Reload(ctx, src); err != nil {
		return nil, err
	}
	r.RefilterPersonal(ctx, mask)
	return r, nil
}

// Reload replaces the candidate list and equipment pools from src. The
// personal subset is recomputed with the last mask. On error the repository
// is left unchanged.
func (r *Repository) Reload(ctx context.Context, src gamedata.Source) error {
	ctx, span := otel.Tracer().Start(ctx, "candidate.Load")
	defer span.End()

	if src == nil {
		return apperrors.New(apperrors.CodeReferenceTableMissing, "reference table source is required")
	}
	snap, err := src.Snapshot(ctx)
	if err != nil {
		return err
	}
	if err := requireTables(snap); err != nil {
		return err
	}

	personas := filterPersonas(snap)
	if len(personas) == 0 {
		return apperrors.New(apperrors.CodeCandidatesEmpty, "no npc rows passed the candidate filters")
	}
	pools := buildPools(snap)
	raceCount := 0
	for _, race := range snap.Races {
		if race.ID != 0 {
			raceCount++
		}
	}

	span.SetAttributes(
		attribute.Int("candidate.personas", len(personas)),
		attribute.Int("candidate.jobs", len(pools.MainHands)),
	)
	log.Printf("npcs: %d", len(personas))

	r.mu.Lock()
	r.personas = personas
	r.pools = pools
	r.raceCount = raceCount
	r.personal = filterPersonal(personas, r.mask)
	r.mu.Unlock()
	return nil
}

// RefilterPersonal recomputes the personal subset for mask. An empty result
// is valid; selection then falls back to the full candidate list.
func (r *Repository) RefilterPersonal(ctx context.Context, mask PreferenceMask) {
	_, span := otel.Tracer().Start(ctx, "candidate.RefilterPersonal")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.mask = mask
	r.personal = filterPersonal(r.personas, mask)
	span.SetAttributes(attribute.Int("candidate.personal", len(r.personal)))
}

// Personas returns the candidate list.
func (r *Repository) Personas() []Persona {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.personas
}

// Personal returns the personal subset.
func (r *Repository) Personal() []Persona {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.personal
}

// Pools returns the job equipment pools.
func (r *Repository) Pools() JobEquipmentPools {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pools
}

// WeaponPools returns the main- and off-hand pools of jobID. It fails with
// CodeJobUnknown when the job has no pools and CodeEquipmentPoolEmpty when the
// job has no main-hand weapon to draw.
func (r *Repository) WeaponPools(jobID uint32) (mainHands, offHands []Weapon, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mainHands, ok := r.pools.MainHands[jobID]
	if !ok {
		return nil, nil, apperrors.WithMetadata(
			apperrors.CodeJobUnknown,
			"job has no equipment pools",
			map[string]string{"job_id": jobLabel(jobID)},
		)
	}
	if len(mainHands) == 0 {
		return nil, nil, apperrors.WithMetadata(
			apperrors.CodeEquipmentPoolEmpty,
			"job has no main-hand weapons",
			map[string]string{"job_id": jobLabel(jobID)},
		)
	}
	return mainHands, r.pools.OffHands[jobID], nil
}

// RaceCount returns the number of playable races (race rows other than 0).
func (r *Repository) RaceCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.raceCount
}

func requireTables(snap *gamedata.Snapshot) error {
	if snap == nil {
		return missingTable("all")
	}
	required := []struct {
		name  string
		count int
	}{
		{"npc_base", len(snap.NPCBases)},
		{"npc_resident", len(snap.NPCResidents)},
		{"item", len(snap.Items)},
		{"equip_slot_category", len(snap.EquipSlotCategories)},
		{"class_job", len(snap.ClassJobs)},
		{"class_job_category", len(snap.ClassJobCategories)},
		{"race", len(snap.Races)},
	}
	for _, table := range required {
		if table.count == 0 {
			return missingTable(table.name)
		}
	}
	return nil
}

func missingTable(name string) error {
	return apperrors.WithMetadata(
		apperrors.CodeReferenceTableMissing,
		"reference table missing: "+name,
		map[string]string{"table": name},
	)
}

func filterPersonas(snap *gamedata.Snapshot) []Persona {
	names := make(map[uint32]string, len(snap.NPCResidents))
	for _, resident := range snap.NPCResidents {
		names[resident.ID] = resident.Singular
	}

	personas := make([]Persona, 0)
	for _, row := range snap.NPCBases {
		if row.BodyType != BodyTypeHumanoid ||
			row.ModelChara != 0 ||
			row.Model(gamedata.SlotBody) == 0 ||
			row.Model(gamedata.SlotLegs) == 0 {
			continue
		}
		name := names[row.ID]
		if Excluded(name) {
			continue
		}
		personas = append(personas, personaFromRow(row, name))
	}
	return personas
}

func filterPersonal(personas []Persona, mask PreferenceMask) []Persona {
	personal := make([]Persona, 0)
	for _, p := range personas {
		if mask.Allows(p) {
			personal = append(personal, p)
		}
	}
	return personal
}

// capabilityTable resolves each job category's member abbreviations to job
// ids once, so pool building never looks jobs up by name.
func capabilityTable(snap *gamedata.Snapshot) map[uint32]map[uint32]bool {
	jobIDs := make(map[string]uint32, len(snap.ClassJobs))
	for _, job := range snap.ClassJobs {
		jobIDs[normalizeAbbreviation(job.Abbreviation)] = job.ID
	}

	table := make(map[uint32]map[uint32]bool, len(snap.ClassJobCategories))
	for _, category := range snap.ClassJobCategories {
		allowed := make(map[uint32]bool, len(category.Jobs))
		for _, abbr := range category.Jobs {
			if id, ok := jobIDs[normalizeAbbreviation(abbr)]; ok {
				allowed[id] = true
			}
		}
		table[category.ID] = allowed
	}
	return table
}

func normalizeAbbreviation(abbr string) string {
	return strings.ToUpper(strings.TrimSpace(abbr))
}

func buildPools(snap *gamedata.Snapshot) JobEquipmentPools {
	slots := make(map[uint32]gamedata.EquipSlotCategory, len(snap.EquipSlotCategories))
	for _, c := range snap.EquipSlotCategories {
		slots[c.ID] = c
	}
	capability := capabilityTable(snap)

	var mainHands, offHands []gamedata.Item
	for _, item := range snap.Items {
		if item.IsUnique {
			continue
		}
		category, ok := slots[item.EquipSlotCategory]
		if !ok {
			continue
		}
		if category.MainHand > 0 {
			mainHands = append(mainHands, item)
		}
		if category.OffHand > 0 {
			offHands = append(offHands, item)
		}
	}

	pools := JobEquipmentPools{
		MainHands: make(map[uint32][]Weapon),
		OffHands:  make(map[uint32][]Weapon),
	}
	for _, job := range snap.ClassJobs {
		if job.ID == 0 {
			continue
		}
		pools.MainHands[job.ID] = weaponsFor(job.ID, mainHands, slots, capability)
		pools.OffHands[job.ID] = weaponsFor(job.ID, offHands, slots, capability)
	}
	return pools
}

func weaponsFor(jobID uint32, items []gamedata.Item, slots map[uint32]gamedata.EquipSlotCategory, capability map[uint32]map[uint32]bool) []Weapon {
	weapons := make([]Weapon, 0)
	for _, item := range items {
		if !capability[item.ClassJobCategory][jobID] {
			continue
		}
		weapons = append(weapons, Weapon{
			ID:        item.ID,
			Name:      item.Name,
			ModelMain: item.ModelMain,
			ModelSub:  item.ModelSub,
			BothHands: slots[item.EquipSlotCategory].BothHands(),
		})
	}
	return weapons
}

// jobLabel formats a job id for error metadata.
func jobLabel(jobID uint32) string {
	return strconv.FormatUint(uint64(jobID), 10)
}

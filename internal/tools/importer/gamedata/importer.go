package gamedataimporter

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/occulta/internal/candidate"
	"github.com/louisbranch/occulta/internal/gamedata"
	gamedatasqlite "github.com/louisbranch/occulta/internal/gamedata/storage/sqlite"
	"github.com/louisbranch/occulta/internal/preferences"
)

// Config holds configuration for the gamedata importer.
type Config struct {
	Dir    string
	DBPath string
	DryRun bool
}

// ParseConfig parses CLI flags into a Config. dbPath is the default for
// -db-path.
func ParseConfig(fs *flag.FlagSet, args []string, dbPath string) (Config, error) {
	cfg := Config{DBPath: dbPath}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "gamedata.db")
	}

	fs.StringVar(&cfg.Dir, "dir", "", "directory containing the table JSON files")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "gamedata database path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.Dir) == "" {
		return Config{}, errors.New("dir is required")
	}
	return cfg, nil
}

// Run validates the table files in cfg.Dir and imports them.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		return errors.New("dir is required")
	}

	p, err := readPayloads(dir)
	if err != nil {
		return err
	}
	if err := validatePayloads(p); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	snap := p.snapshot()
	repo, err := candidate.Load(ctx, snap, preferences.Default().Mask())
	if err != nil {
		return fmt.Errorf("check candidates: %w", err)
	}
	personas := len(repo.Personas())

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d table(s), %d candidate persona(s)\n", p.count(), personas)
		return err
	}

	store, err := gamedatasqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open gamedata store: %w", err)
	}
	defer store.Close()

	if err := store.ReplaceSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("import tables: %w", err)
	}
	if p.NameParts != nil {
		if err := store.ReplaceNameParts(ctx, p.NameParts.Items); err != nil {
			return fmt.Errorf("import name sheet: %w", err)
		}
	}

	_, err = fmt.Fprintf(out, "imported %d table(s), %d candidate persona(s) into %s\n", p.count(), personas, cfg.DBPath)
	return err
}

func readPayloads(dir string) (payloads, error) {
	var p payloads
	var err error
	if p.NPCBases, err = readJSON[tablePayload[gamedata.NPCBase]](dir, "npc_base.json"); err != nil {
		return p, err
	}
	if p.NPCResidents, err = readJSON[tablePayload[gamedata.NPCResident]](dir, "npc_resident.json"); err != nil {
		return p, err
	}
	if p.Items, err = readJSON[tablePayload[gamedata.Item]](dir, "item.json"); err != nil {
		return p, err
	}
	if p.EquipSlotCategories, err = readJSON[tablePayload[gamedata.EquipSlotCategory]](dir, "equip_slot_category.json"); err != nil {
		return p, err
	}
	if p.ClassJobs, err = readJSON[tablePayload[gamedata.ClassJob]](dir, "class_job.json"); err != nil {
		return p, err
	}
	if p.ClassJobCategories, err = readJSON[tablePayload[gamedata.ClassJobCategory]](dir, "class_job_category.json"); err != nil {
		return p, err
	}
	if p.Races, err = readJSON[tablePayload[gamedata.Race]](dir, "race.json"); err != nil {
		return p, err
	}
	if p.Tribes, err = readJSON[tablePayload[gamedata.Tribe]](dir, "tribe.json"); err != nil {
		return p, err
	}
	if p.NameParts, err = readJSON[tablePayload[gamedata.NamePart]](dir, "name_part.json"); err != nil {
		return p, err
	}
	return p, nil
}

func readJSON[T any](dir string, name string) (*T, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return &value, nil
}

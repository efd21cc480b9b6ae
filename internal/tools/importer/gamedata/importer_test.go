package gamedataimporter

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/occulta/internal/gamedata"
	gamedatasqlite "github.com/louisbranch/occulta/internal/gamedata/storage/sqlite"
	"github.com/louisbranch/occulta/internal/testkit/gamedatafakes"
)

func writeTable[T any](t *testing.T, dir, table string, items []T) {
	t.Helper()
	data, err := json.Marshal(tablePayload[T]{Table: table, Source: "fixture", Items: items})
	if err != nil {
		t.Fatalf("marshal %s: %v", table, err)
	}
	if err := os.WriteFile(filepath.Join(dir, table+".json"), data, 0o644); err != nil {
		t.Fatalf("write %s: %v", table, err)
	}
}

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	snap := gamedatafakes.Snapshot()
	writeTable(t, dir, "npc_base", snap.NPCBases)
	writeTable(t, dir, "npc_resident", snap.NPCResidents)
	writeTable(t, dir, "item", snap.Items)
	writeTable(t, dir, "equip_slot_category", snap.EquipSlotCategories)
	writeTable(t, dir, "class_job", snap.ClassJobs)
	writeTable(t, dir, "class_job_category", snap.ClassJobCategories)
	writeTable(t, dir, "race", snap.Races)
	writeTable(t, dir, "tribe", snap.Tribes)
	writeTable(t, dir, "name_part", gamedatafakes.NameParts())
	return dir
}

func TestParseConfig(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-dir", "dumps", "-dry-run"}, "custom.db")
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Dir != "dumps" || cfg.DBPath != "custom.db" || !cfg.DryRun {
		t.Fatalf("unexpected config %+v", cfg)
	}

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil, ""); err == nil {
		t.Fatal("expected error without dir")
	}
}

func TestRunDryRun(t *testing.T) {
	dir := writeFixture(t)
	dbPath := filepath.Join(t.TempDir(), "gamedata.db")

	var out bytes.Buffer
	if err := Run(context.Background(), Config{Dir: dir, DBPath: dbPath, DryRun: true}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != "validated 9 table(s), 4 candidate persona(s)\n" {
		t.Fatalf("output = %q", got)
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatal("dry run must not create the database")
	}
}

func TestRunImportsTables(t *testing.T) {
	dir := writeFixture(t)
	dbPath := filepath.Join(t.TempDir(), "gamedata.db")

	var out bytes.Buffer
	if err := Run(context.Background(), Config{Dir: dir, DBPath: dbPath}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "imported 9 table(s)") {
		t.Fatalf("output = %q", out.String())
	}

	store, err := gamedatasqlite.Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	snap, err := store.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	want := gamedatafakes.Snapshot()
	if len(snap.NPCBases) != len(want.NPCBases) || len(snap.Items) != len(want.Items) || len(snap.Tribes) != len(want.Tribes) {
		t.Fatalf("imported %d npcs, %d items, %d tribes", len(snap.NPCBases), len(snap.Items), len(snap.Tribes))
	}
	parts, err := store.NameParts(context.Background())
	if err != nil {
		t.Fatalf("name parts: %v", err)
	}
	if len(parts) != len(gamedatafakes.NameParts()) {
		t.Fatalf("imported %d name parts", len(parts))
	}
}

func TestRunRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(t *testing.T, dir string)
		wantErr string
	}{
		{
			name:    "missing required table",
			mutate:  func(t *testing.T, dir string) { os.Remove(filepath.Join(dir, "item.json")) },
			wantErr: "item.json is required",
		},
		{
			name: "table mismatch",
			mutate: func(t *testing.T, dir string) {
				data, _ := json.Marshal(tablePayload[gamedata.Race]{Table: "tribe", Source: "fixture"})
				os.WriteFile(filepath.Join(dir, "race.json"), data, 0o644)
			},
			wantErr: "table mismatch",
		},
		{
			name: "missing source",
			mutate: func(t *testing.T, dir string) {
				data, _ := json.Marshal(tablePayload[gamedata.Tribe]{Table: "tribe"})
				os.WriteFile(filepath.Join(dir, "tribe.json"), data, 0o644)
			},
			wantErr: "source is required",
		},
		{
			name: "duplicate id",
			mutate: func(t *testing.T, dir string) {
				items := gamedatafakes.Snapshot().Items
				writeTable(t, dir, "item", append(items, items[0]))
			},
			wantErr: "duplicate id 1001",
		},
		{
			name: "invalid name part kind",
			mutate: func(t *testing.T, dir string) {
				writeTable(t, dir, "name_part", []gamedata.NamePart{{Race: 1, Kind: "middle", Text: "X"}})
			},
			wantErr: `invalid kind "middle"`,
		},
		{
			name: "malformed json",
			mutate: func(t *testing.T, dir string) {
				os.WriteFile(filepath.Join(dir, "class_job.json"), []byte("{"), 0o644)
			},
			wantErr: "decode class_job.json",
		},
		{
			name: "no candidates",
			mutate: func(t *testing.T, dir string) {
				writeTable(t, dir, "npc_base", gamedatafakes.Snapshot().NPCBases[:1])
			},
			wantErr: "check candidates",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFixture(t)
			tt.mutate(t, dir)
			err := Run(context.Background(), Config{Dir: dir, DryRun: true}, nil)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestReadJSONMissingFile(t *testing.T) {
	got, err := readJSON[tablePayload[gamedata.Race]](t.TempDir(), "race.json")
	if err != nil {
		t.Fatalf("readJSON: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil payload for missing file")
	}
}

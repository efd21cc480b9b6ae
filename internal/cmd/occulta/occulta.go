// Package occulta parses occulta command flags and drives a substitution
// session against the gamedata store.
package occulta

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/occulta/internal/gamedata"
	gamedatasqlite "github.com/louisbranch/occulta/internal/gamedata/storage/sqlite"
	"github.com/louisbranch/occulta/internal/identity"
	"github.com/louisbranch/occulta/internal/namegen"
	entrypoint "github.com/louisbranch/occulta/internal/platform/cmd"
	"github.com/louisbranch/occulta/internal/platform/config"
	"github.com/louisbranch/occulta/internal/preferences"
	"github.com/louisbranch/occulta/internal/random"
	"github.com/louisbranch/occulta/internal/session"
)

// Config holds occulta command configuration.
type Config struct {
	config.Config

	Ticks        int
	TickInterval time.Duration
	Login        bool
	Names        string
	Handles      string
	Job          uint
	LocalUser    uint
	Command      string
	Text         string
	World        string
	CompanyTag   string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.GamedataDB, "db-path", cfg.GamedataDB, "gamedata database path")
	fs.StringVar(&cfg.PreferencesPath, "preferences", cfg.PreferencesPath, "preferences YAML path")
	fs.IntVar(&cfg.NameQueueDepth, "depth", cfg.NameQueueDepth, "target depth of each name bucket")
	fs.IntVar(&cfg.Ticks, "ticks", -1, "host ticks to run before answering (defaults to -depth)")
	fs.DurationVar(&cfg.TickInterval, "tick-interval", 0, "wait between ticks")
	fs.BoolVar(&cfg.Login, "login", false, "simulate a login before ticking")
	fs.StringVar(&cfg.Names, "names", "", "comma separated names, each optionally suffixed with =race/clan/sex")
	fs.StringVar(&cfg.Handles, "handles", "", "comma separated subject handles")
	fs.UintVar(&cfg.Job, "job", 0, "job id for equipment substitution (0 skips equipment)")
	fs.UintVar(&cfg.LocalUser, "local-user", 0, "handle of the local user (0 for none)")
	fs.StringVar(&cfg.Command, "command", "", "apply an /occulta command to the preferences first")
	fs.StringVar(&cfg.Text, "text", "", "text to rewrite with the -names subjects as other players")
	fs.StringVar(&cfg.World, "world", "", "local user's world name, replaced in -text by the data center")
	fs.StringVar(&cfg.CompanyTag, "company-tag", "", "local user's free company tag, replaced in -text")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.NameQueueDepth <= 0 {
		return Config{}, errors.New("depth must be positive")
	}
	if cfg.Ticks < 0 {
		cfg.Ticks = cfg.NameQueueDepth
	}
	return cfg, nil
}

// Run opens a session, runs the requested ticks and prints substitutes.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceOcculta, func(ctx context.Context) error {
		return run(ctx, cfg, out)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	subjects, err := parseSubjects(cfg.Names)
	if err != nil {
		return err
	}
	handles, err := parseHandles(cfg.Handles)
	if err != nil {
		return err
	}

	prefStore := preferences.NewStore(cfg.PreferencesPath)
	prefs, err := prefStore.Load()
	if err != nil {
		return err
	}
	reset := false
	if cfg.Command != "" {
		result, err := prefs.Apply(cfg.Command)
		if err != nil {
			return err
		}
		if result.Changed {
			if err := prefStore.Save(prefs); err != nil {
				return err
			}
			fmt.Fprintf(out, "preferences saved to %s\n", prefStore.Path())
		}
		reset = result.Reset
	}

	store, err := gamedatasqlite.Open(ctx, cfg.GamedataDB)
	if err != nil {
		return fmt.Errorf("open gamedata store: %w", err)
	}
	defer store.Close()

	rng, err := random.NewRand(nil)
	if err != nil {
		return err
	}
	generator := namegen.NewSheetGenerator(store, rng)

	var localUser func() (uint32, bool)
	if cfg.LocalUser != 0 {
		handle := uint32(cfg.LocalUser)
		localUser = func() (uint32, bool) { return handle, true }
	}

	sess, err := session.Open(ctx, session.Options{
		Source:           store,
		Generator:        generator,
		Sheets:           generator,
		Preferences:      prefs,
		LocalUser:        localUser,
		QueueDepth:       cfg.NameQueueDepth,
		SheetReloadDelay: cfg.SheetReloadDelay,
	})
	if err != nil {
		return err
	}
	if reset {
		if err := sess.ResetAll(); err != nil {
			return err
		}
		fmt.Fprintln(out, "session reset")
	}

	if cfg.Login {
		generator.Unload()
		sess.OnLogin()
	}
	if err := runTicks(ctx, sess, cfg.Ticks, cfg.TickInterval); err != nil {
		return err
	}
	fmt.Fprintf(out, "initialised: %t\n", sess.Initialised())

	printNames(out, sess, subjects)
	printHandles(out, sess, handles, uint32(cfg.Job))
	if cfg.Text != "" {
		rewritten := rewriteText(sess, prefs, subjects, cfg)
		fmt.Fprintf(out, "text: %s\n", rewritten)
	}
	return nil
}

func runTicks(ctx context.Context, sess *session.Session, ticks int, interval time.Duration) error {
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		sess.Tick()
		if interval > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
		}
	}
	return nil
}

type subject struct {
	name string
	info identity.Info
}

// parseSubjects reads "Name[=race/clan/sex]" entries. Missing or "?" fields
// are unknown.
func parseSubjects(raw string) ([]subject, error) {
	var subjects []subject
	for _, entry := range splitList(raw) {
		name, attrs, _ := strings.Cut(entry, "=")
		s := subject{name: strings.TrimSpace(name), info: identity.UnknownInfo()}
		if s.name == "" {
			return nil, fmt.Errorf("empty name in %q", entry)
		}
		if attrs != "" {
			fields := strings.Split(attrs, "/")
			if len(fields) != 3 {
				return nil, fmt.Errorf("attributes of %q must be race/clan/sex", s.name)
			}
			values := []*uint8{&s.info.Race, &s.info.Clan, &s.info.Sex}
			for i, field := range fields {
				field = strings.TrimSpace(field)
				if field == "?" || field == "" {
					continue
				}
				v, err := strconv.ParseUint(field, 10, 8)
				if err != nil {
					return nil, fmt.Errorf("attribute %q of %q: %w", field, s.name, err)
				}
				*values[i] = uint8(v)
			}
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}

func parseHandles(raw string) ([]uint32, error) {
	var handles []uint32
	for _, entry := range splitList(raw) {
		v, err := strconv.ParseUint(entry, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("handle %q: %w", entry, err)
		}
		handles = append(handles, uint32(v))
	}
	return handles, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printNames(out io.Writer, sess *session.Session, subjects []subject) {
	for _, s := range subjects {
		replacement, ok := sess.ReplacementName(s.name, s.info)
		if !ok {
			fmt.Fprintf(out, "name %s: no substitute\n", s.name)
			continue
		}
		fmt.Fprintf(out, "name %s -> %s\n", s.name, replacement)
	}
}

func printHandles(out io.Writer, sess *session.Session, handles []uint32, job uint32) {
	for _, handle := range handles {
		persona, ok := sess.Persona(handle)
		if !ok {
			fmt.Fprintf(out, "handle %d: no persona\n", handle)
			continue
		}
		fmt.Fprintf(out, "handle %d: persona %d %q race %d tribe %d gender %d body %d\n",
			handle, persona.ID, persona.Name, persona.Race, persona.Tribe, persona.Gender,
			persona.Equipment[gamedata.SlotBody].Model)
		if job == 0 {
			continue
		}
		equipment, err := sess.Equipment(job, handle)
		if err != nil {
			fmt.Fprintf(out, "handle %d: no equipment: %v\n", handle, err)
			continue
		}
		offHand := "none"
		if equipment.OffHand != nil {
			offHand = equipment.OffHand.Name
		}
		fmt.Fprintf(out, "handle %d: main %s off %s\n", handle, equipment.MainHand.Name, offHand)
	}
}

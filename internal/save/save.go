// Package save persists the hero and session progress as JSON.
package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/juanmuller24/text-based-battle/internal/entity"
	"github.com/juanmuller24/text-based-battle/internal/gamedata"
	"github.com/juanmuller24/text-based-battle/internal/quest"
	"github.com/juanmuller24/text-based-battle/internal/telemetry"
)

// DefaultFile is the save file used when none is configured.
const DefaultFile = "savegame.json"

var (
	// ErrNoSave is returned by Load when there is no save file.
	ErrNoSave = errors.New("no save file")
	// ErrHeroFallen is returned by Load when the saved hero has no health left.
	ErrHeroFallen = errors.New("saved hero has fallen")
)

const (
	defaultHealth    = 100
	defaultMana      = 50
	defaultSkill     = 10
	defaultThreshold = 100
)

// Snapshot is everything a save file restores.
type Snapshot struct {
	Hero         *entity.Hero
	Day          int
	Quests       map[string]quest.Status
	Achievements []string
	SavedAt      time.Time
}

// heroRecord is the on-disk hero. Weapons, spells and the class are stored
// by display name.
type heroRecord struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Health            int            `json:"health"`
	HealthMax         int            `json:"health_max"`
	Mana              int            `json:"mana"`
	ManaMax           int            `json:"mana_max"`
	Level             int            `json:"level"`
	Experience        int            `json:"experience"`
	ExperienceToNext  int            `json:"experience_to_next_level"`
	Gold              int            `json:"gold"`
	Potions           int            `json:"potions"`
	SkillPoints       int            `json:"skill_points"`
	Weapon            string         `json:"weapon"`
	Inventory         []string       `json:"inventory"`
	Spells            []string       `json:"spells"`
	Skills            map[string]int `json:"skills"`
	CharacterClass    string         `json:"character_class,omitempty"`
	BattlesWon        int            `json:"battles_won"`
	BattlesFought     int            `json:"battles_fought"`
	EliteKills        int            `json:"elite_kills"`
	BossKills         int            `json:"boss_kills"`
	SpellsCast        int            `json:"spells_cast"`
	ItemsPurchased    int            `json:"items_purchased"`
	DungeonsCompleted int            `json:"dungeons_completed"`
}

type gameStateRecord struct {
	TurnCount    int               `json:"turn_count"`
	Quests       map[string]string `json:"quests"`
	Achievements []string          `json:"achievements"`
}

type fileRecord struct {
	SavedAt   time.Time       `json:"saved_at"`
	Hero      heroRecord      `json:"hero"`
	GameState gameStateRecord `json:"game_state"`
}

// Store reads and writes one save file.
type Store struct {
	path    string
	catalog *gamedata.Catalog
	log     *logrus.Entry
}

// NewStore creates a store for path. The catalog resolves saved names back
// to weapon, spell and class definitions.
func NewStore(path string, catalog *gamedata.Catalog, logger *logrus.Logger) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{
		path:    path,
		catalog: catalog,
		log:     logger.WithField("component", "save"),
	}
}

// Path returns the save file location.
func (s *Store) Path() string { return s.path }

// Exists reports whether a save file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Save writes the snapshot. The file is written to a temp file and renamed
// into place so a failed write never truncates an existing save.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	tracer := telemetry.Tracer("save")
	_, span := tracer.Start(ctx, "save.write")
	defer span.End()

	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now()
	}
	data, err := json.MarshalIndent(s.encode(snap), "", "  ")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("encode save: %w", err)
	}
	if err := writeAtomic(s.path, data); err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.log.WithError(err).Error("save failed")
		return fmt.Errorf("write save %s: %w", s.path, err)
	}

	span.SetAttributes(
		attribute.String("hero.id", snap.Hero.ID.String()),
		attribute.Int("hero.level", snap.Hero.Level),
		attribute.Int("save.bytes", len(data)),
	)
	s.log.WithFields(logrus.Fields{
		"hero":  snap.Hero.Name,
		"level": snap.Hero.Level,
		"path":  s.path,
	}).Info("game saved")
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads the save file. Missing keys take their defaults and names that
// no longer resolve fall back safely: unknown weapons become Fists, unknown
// spells are dropped and an unknown class leaves the hero classless.
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	tracer := telemetry.Tracer("save")
	_, span := tracer.Start(ctx, "save.read")
	defer span.End()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSave
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("read save %s: %w", s.path, err)
	}

	rec := defaultRecord()
	if err := json.Unmarshal(data, &rec); err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.log.WithError(err).Warn("corrupt save file")
		return nil, fmt.Errorf("decode save %s: %w", s.path, err)
	}

	snap := s.decode(rec)
	if !snap.Hero.IsAlive() {
		span.SetStatus(codes.Error, ErrHeroFallen.Error())
		s.log.WithField("hero", snap.Hero.Name).Warn("save holds a fallen hero")
		return nil, fmt.Errorf("load %s: %w", s.path, ErrHeroFallen)
	}
	span.SetAttributes(
		attribute.String("hero.id", snap.Hero.ID.String()),
		attribute.Int("hero.level", snap.Hero.Level),
	)
	s.log.WithFields(logrus.Fields{"hero": snap.Hero.Name, "level": snap.Hero.Level}).Info("game loaded")
	return snap, nil
}

// defaultRecord holds the values used for keys absent from the file.
// json.Unmarshal leaves fields it does not see untouched.
func defaultRecord() fileRecord {
	return fileRecord{
		Hero: heroRecord{
			Health:           defaultHealth,
			HealthMax:        defaultHealth,
			Mana:             defaultMana,
			ManaMax:          defaultMana,
			Level:            1,
			ExperienceToNext: defaultThreshold,
			Weapon:           "Fists",
		},
	}
}

func (s *Store) encode(snap Snapshot) fileRecord {
	h := snap.Hero
	rec := heroRecord{
		ID:                h.ID.String(),
		Name:              h.Name,
		Health:            h.Health,
		HealthMax:         h.MaxHealth,
		Mana:              h.Mana,
		ManaMax:           h.MaxMana,
		Level:             h.Level,
		Experience:        h.Experience,
		ExperienceToNext:  h.ExperienceToNext,
		Gold:              h.Gold,
		Potions:           h.Potions,
		SkillPoints:       h.SkillPoints,
		Inventory:         make([]string, 0, len(h.Inventory)),
		Spells:            make([]string, 0, len(h.Spells)),
		Skills:            make(map[string]int, len(h.Skills)),
		BattlesWon:        h.Stats.BattlesWon,
		BattlesFought:     h.Stats.BattlesFought,
		EliteKills:        h.Stats.EliteKills,
		BossKills:         h.Stats.BossKills,
		SpellsCast:        h.Stats.SpellsCast,
		ItemsPurchased:    h.Stats.ItemsPurchased,
		DungeonsCompleted: h.Stats.DungeonsCompleted,
	}
	if h.Weapon != nil {
		rec.Weapon = h.Weapon.Name
	}
	for _, w := range h.Inventory {
		rec.Inventory = append(rec.Inventory, w.Name)
	}
	for _, sp := range h.Spells {
		rec.Spells = append(rec.Spells, sp.Name)
	}
	for skill, v := range h.Skills {
		rec.Skills[string(skill)] = v
	}
	if h.Class != nil {
		rec.CharacterClass = h.Class.Name
	}

	quests := make(map[string]string, len(snap.Quests))
	for id, st := range snap.Quests {
		quests[id] = string(st)
	}
	achievements := snap.Achievements
	if achievements == nil {
		achievements = []string{}
	}

	return fileRecord{
		SavedAt: snap.SavedAt,
		Hero:    rec,
		GameState: gameStateRecord{
			TurnCount:    snap.Day,
			Quests:       quests,
			Achievements: achievements,
		},
	}
}

func (s *Store) decode(rec fileRecord) *Snapshot {
	r := rec.Hero
	weapons := s.catalog.Weapons

	h := entity.NewHero(r.Name, weapons.Fallback())
	if id, err := uuid.Parse(r.ID); err == nil {
		h.ID = id
	}
	// Hand-edited files can hold anything; keep every value in range.
	h.MaxHealth = r.HealthMax
	if h.MaxHealth <= 0 {
		h.MaxHealth = defaultHealth
	}
	h.Health = clamp(r.Health, 0, h.MaxHealth)
	h.Alive = h.Health > 0
	h.MaxMana = max(r.ManaMax, 0)
	h.Mana = clamp(r.Mana, 0, h.MaxMana)
	h.Level = max(r.Level, 1)
	h.Experience = max(r.Experience, 0)
	h.ExperienceToNext = r.ExperienceToNext
	if h.ExperienceToNext <= 0 {
		h.ExperienceToNext = defaultThreshold
	}
	h.Gold = max(r.Gold, 0)
	h.Potions = max(r.Potions, 0)
	h.SkillPoints = max(r.SkillPoints, 0)

	h.Weapon = s.weapon(r.Weapon)
	for _, name := range r.Inventory {
		if w := weapons.GetByName(name); w != nil && w.ID != gamedata.FallbackWeaponID {
			h.Inventory = append(h.Inventory, w)
		}
	}
	for _, name := range r.Spells {
		if sp := s.catalog.Spells.GetByName(name); sp != nil {
			h.LearnSpell(sp)
		} else {
			s.log.WithField("spell", name).Warn("unknown spell in save, skipped")
		}
	}
	for _, skill := range gamedata.AllSkills {
		if v, ok := r.Skills[string(skill)]; ok {
			h.Skills[skill] = v
		} else {
			h.Skills[skill] = defaultSkill
		}
	}
	if r.CharacterClass != "" {
		h.Class = s.catalog.Classes.GetByName(r.CharacterClass)
		if h.Class == nil {
			s.log.WithField("class", r.CharacterClass).Warn("unknown class in save, ignored")
		}
	}

	h.Stats = entity.Stats{
		BattlesWon:        r.BattlesWon,
		BattlesFought:     r.BattlesFought,
		EliteKills:        r.EliteKills,
		BossKills:         r.BossKills,
		SpellsCast:        r.SpellsCast,
		ItemsPurchased:    r.ItemsPurchased,
		DungeonsCompleted: r.DungeonsCompleted,
	}

	quests := make(map[string]quest.Status, len(rec.GameState.Quests))
	for id, st := range rec.GameState.Quests {
		quests[id] = quest.Status(st)
	}

	return &Snapshot{
		Hero:         h,
		Day:          rec.GameState.TurnCount,
		Quests:       quests,
		Achievements: rec.GameState.Achievements,
		SavedAt:      rec.SavedAt,
	}
}

func (s *Store) weapon(name string) *gamedata.WeaponDef {
	if w := s.catalog.Weapons.GetByName(name); w != nil {
		return w
	}
	s.log.WithField("weapon", name).Warn("unknown weapon in save, using fallback")
	return s.catalog.Weapons.Fallback()
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

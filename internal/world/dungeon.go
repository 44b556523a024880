package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/juanmuller24/text-based-battle/internal/entity"
	"github.com/juanmuller24/text-based-battle/internal/gamedata"
	"github.com/juanmuller24/text-based-battle/internal/rules"
	"github.com/juanmuller24/text-based-battle/internal/telemetry"
)

const (
	minRooms          = 5
	maxRooms          = 8
	roomHealthMin     = 80
	roomHealthMax     = 120
	roomHealthLevel   = 15
	accessLevelGrace  = 2 // Heroes may enter dungeons up to two levels early
	rewardPerMaxLevel = 100
	completionPoints  = 2
	restHealthDivisor = 4
	restManaDivisor   = 2
)

// Middle rooms are drawn from this pool; fights are twice as likely.
var middleRoomPool = []gamedata.RoomType{
	gamedata.RoomNormal, gamedata.RoomNormal, gamedata.RoomTreasure, gamedata.RoomRest,
}

// Difficulty labels a dungeon relative to the hero's level.
type Difficulty int

const (
	DifficultyHard Difficulty = iota
	DifficultyNormal
	DifficultyEasy
)

// String returns the difficulty label.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Dungeon is one run through a fixed sequence of rooms: a fight first, the
// boss last.
type Dungeon struct {
	Def       *gamedata.DungeonDef
	Rooms     []Room
	Current   int
	Completed bool

	catalog *gamedata.Catalog
	rng     *rand.Rand
}

// NewDungeon creates an empty dungeon. Call Generate to lay out its rooms.
func NewDungeon(def *gamedata.DungeonDef, catalog *gamedata.Catalog, rng *rand.Rand) *Dungeon {
	return &Dungeon{
		Def:     def,
		Rooms:   make([]Room, 0, maxRooms),
		catalog: catalog,
		rng:     rng,
	}
}

// Generate lays out 5-8 fresh rooms and resets progress.
func (d *Dungeon) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	count := rules.Between(d.rng, minRooms, maxRooms)
	d.Rooms = d.Rooms[:0]
	for i := 0; i < count; i++ {
		roomType := gamedata.RoomNormal
		switch {
		case i == count-1:
			roomType = gamedata.RoomBoss
		case i > 0:
			roomType = rules.Pick(d.rng, middleRoomPool)
		}
		d.Rooms = append(d.Rooms, d.createRoom(i, roomType))
	}
	d.Current = 0
	d.Completed = false

	span.SetAttributes(
		attribute.String("dungeon.id", d.Def.ID),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

func (d *Dungeon) createRoom(index int, roomType gamedata.RoomType) Room {
	style := d.catalog.Dungeons.Rooms[roomType]
	room := Room{
		Index:       index,
		Type:        roomType,
		Name:        string(roomType),
		Description: style.Description,
	}
	if len(style.Names) > 0 {
		room.Name = rules.Pick(d.rng, style.Names)
	}

	switch roomType {
	case gamedata.RoomNormal, gamedata.RoomBoss:
		room.Enemy = d.roomEnemy(roomType)
	case gamedata.RoomTreasure:
		room.Treasure = d.treasure()
	case gamedata.RoomRest:
	}
	return room
}

func (d *Dungeon) roomEnemy(roomType gamedata.RoomType) *entity.Enemy {
	roster := d.catalog.Enemies

	names := roster.DungeonNames
	tier := gamedata.EnemyNormal
	if roomType == gamedata.RoomBoss {
		names = roster.BossNames
		tier = gamedata.EnemyBoss
	} else if d.rng.Intn(2) == 0 {
		tier = gamedata.EnemyElite
	}

	level := rules.Between(d.rng, d.Def.MinLevel, d.Def.MaxLevel)
	health := rules.Between(d.rng, roomHealthMin, roomHealthMax) + level*roomHealthLevel
	weapon := d.catalog.Weapons.GetByID(rules.Pick(d.rng, roster.DungeonWeapons))
	if weapon == nil {
		weapon = d.catalog.Weapons.Fallback()
	}
	return entity.NewEnemy(rules.Pick(d.rng, names), health, level, weapon, roster.TypeDef(tier), d.rng)
}

func (d *Dungeon) treasure() *Treasure {
	def := rules.Pick(d.rng, d.catalog.Dungeons.Treasures)
	return &Treasure{
		Kind:   def.Kind,
		Name:   def.Name,
		Amount: rules.Between(d.rng, def.Min, def.Max),
	}
}

// CurrentRoom returns the room the hero is in, or nil once past the end.
func (d *Dungeon) CurrentRoom() *Room {
	if d.Current < 0 || d.Current >= len(d.Rooms) {
		return nil
	}
	return &d.Rooms[d.Current]
}

// Advance marks the current room cleared and moves on. It returns false,
// and marks the dungeon completed, when the last room was just cleared.
func (d *Dungeon) Advance() bool {
	if room := d.CurrentRoom(); room != nil {
		room.Cleared = true
	}
	if d.Current < len(d.Rooms)-1 {
		d.Current++
		return true
	}
	d.Completed = true
	return false
}

// MapTiles returns one tile per room, with the hero's room marked.
func (d *Dungeon) MapTiles() []Tile {
	tiles := make([]Tile, len(d.Rooms))
	for i := range d.Rooms {
		tiles[i] = d.Rooms[i].Tile()
		if i == d.Current && !d.Completed {
			tiles[i] = TileHero
		}
	}
	return tiles
}

// ProgressMap renders the rooms as a strip of glyphs, e.g. "[.][@][$][E][B]".
func (d *Dungeon) ProgressMap() string {
	buf := make([]rune, 0, len(d.Rooms)*3)
	for _, tile := range d.MapTiles() {
		buf = append(buf, '[', tile.Rune(), ']')
	}
	return string(buf)
}

// Difficulty rates the dungeon for a hero of the given level.
func (d *Dungeon) Difficulty(heroLevel int) Difficulty {
	return DifficultyFor(d.Def, heroLevel)
}

// DifficultyFor rates a dungeon definition for a hero of the given level.
func DifficultyFor(def *gamedata.DungeonDef, heroLevel int) Difficulty {
	switch {
	case heroLevel > def.MaxLevel:
		return DifficultyEasy
	case heroLevel >= def.MinLevel:
		return DifficultyNormal
	default:
		return DifficultyHard
	}
}

// Reward is what finishing a dungeon pays out.
type Reward struct {
	Gold        int
	Experience  int
	SkillPoints int
}

// CompletionReward returns the payout for clearing the whole dungeon.
func (d *Dungeon) CompletionReward() Reward {
	amount := d.Def.MaxLevel * rewardPerMaxLevel
	return Reward{Gold: amount, Experience: amount, SkillPoints: completionPoints}
}

// RestResult reports what a rest room restored.
type RestResult struct {
	Health int
	Mana   int
}

// Rest heals a quarter of max health and restores half of max mana.
func Rest(hero *entity.Hero) RestResult {
	health := hero.Heal(hero.MaxHealth / restHealthDivisor)
	mana := hero.RegenerateMana(hero.MaxMana / restManaDivisor)
	return RestResult{Health: health, Mana: mana}
}

// ClaimTreasure pays a treasure out to the hero. Experience may level the
// hero up; the level reports are returned.
func ClaimTreasure(hero *entity.Hero, t *Treasure, rng *rand.Rand) []entity.LevelUp {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case gamedata.TreasureGold:
		hero.Gold += t.Amount
	case gamedata.TreasurePotion:
		hero.Potions += t.Amount
	case gamedata.TreasureExperience:
		return hero.GainExperience(t.Amount, rng)
	}
	return nil
}

// =============================================================================
// Atlas
// =============================================================================

// Atlas tracks every dungeon and which ones the hero has completed.
type Atlas struct {
	catalog   *gamedata.Catalog
	completed map[string]bool
}

// NewAtlas creates an atlas over the catalog's dungeons.
func NewAtlas(catalog *gamedata.Catalog) *Atlas {
	return &Atlas{catalog: catalog, completed: make(map[string]bool)}
}

// Available returns the dungeons a hero of the given level may enter.
func (a *Atlas) Available(heroLevel int) []*gamedata.DungeonDef {
	var out []*gamedata.DungeonDef
	defs := a.catalog.Dungeons.Dungeons
	for i := range defs {
		if heroLevel >= defs[i].MinLevel-accessLevelGrace {
			out = append(out, &defs[i])
		}
	}
	return out
}

// Enter generates a fresh run through the dungeon.
func (a *Atlas) Enter(ctx context.Context, def *gamedata.DungeonDef, rng *rand.Rand) *Dungeon {
	d := NewDungeon(def, a.catalog, rng)
	d.Generate(ctx)
	return d
}

// MarkCompleted records that the dungeon has been cleared at least once.
func (a *Atlas) MarkCompleted(id string) {
	a.completed[id] = true
}

// IsCompleted reports whether the dungeon has ever been cleared.
func (a *Atlas) IsCompleted(id string) bool {
	return a.completed[id]
}

package world

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/juanmuller24/text-based-battle/internal/entity"
	"github.com/juanmuller24/text-based-battle/internal/gamedata"
)

func TestDungeonReproducibility(t *testing.T) {
	catalog := gamedata.MustLoadCatalog()
	def := &catalog.Dungeons.Dungeons[0]
	seed := int64(12345)

	d1 := NewDungeon(def, catalog, rand.New(rand.NewSource(seed)))
	d2 := NewDungeon(def, catalog, rand.New(rand.NewSource(seed)))

	ctx := context.Background()
	d1.Generate(ctx)
	d2.Generate(ctx)

	if len(d1.Rooms) != len(d2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(d1.Rooms), len(d2.Rooms))
	}
	for i := range d1.Rooms {
		r1, r2 := d1.Rooms[i], d2.Rooms[i]
		if r1.Type != r2.Type || r1.Name != r2.Name {
			t.Errorf("Room %d mismatch: %s %q != %s %q", i, r1.Type, r1.Name, r2.Type, r2.Name)
		}
		if (r1.Enemy == nil) != (r2.Enemy == nil) {
			t.Fatalf("Room %d enemy presence differs", i)
		}
		if r1.Enemy != nil && (r1.Enemy.Name != r2.Enemy.Name || r1.Enemy.MaxHealth != r2.Enemy.MaxHealth) {
			t.Errorf("Room %d enemy mismatch: %s/%d != %s/%d",
				i, r1.Enemy.Name, r1.Enemy.MaxHealth, r2.Enemy.Name, r2.Enemy.MaxHealth)
		}
	}
}

func TestDungeonLayout(t *testing.T) {
	catalog := gamedata.MustLoadCatalog()
	ctx := context.Background()

	for seed := int64(0); seed < 50; seed++ {
		def := &catalog.Dungeons.Dungeons[int(seed)%len(catalog.Dungeons.Dungeons)]
		d := NewDungeon(def, catalog, rand.New(rand.NewSource(seed)))
		d.Generate(ctx)

		if n := len(d.Rooms); n < minRooms || n > maxRooms {
			t.Fatalf("seed %d: %d rooms, want %d-%d", seed, n, minRooms, maxRooms)
		}
		if d.Rooms[0].Type != gamedata.RoomNormal {
			t.Errorf("seed %d: first room is %s, want normal", seed, d.Rooms[0].Type)
		}
		last := d.Rooms[len(d.Rooms)-1]
		if last.Type != gamedata.RoomBoss {
			t.Errorf("seed %d: last room is %s, want boss", seed, last.Type)
		}
		if last.Enemy == nil || !last.Enemy.IsBoss() {
			t.Errorf("seed %d: boss room without a boss", seed)
		}

		for _, room := range d.Rooms {
			switch room.Type {
			case gamedata.RoomNormal, gamedata.RoomBoss:
				e := room.Enemy
				if e == nil {
					t.Fatalf("seed %d: %s room without enemy", seed, room.Type)
				}
				if e.Level < def.MinLevel || e.Level > def.MaxLevel {
					t.Errorf("seed %d: enemy level %d outside %d-%d", seed, e.Level, def.MinLevel, def.MaxLevel)
				}
				if e.Weapon.ID == gamedata.FallbackWeaponID {
					t.Errorf("seed %d: dungeon enemy armed with fists", seed)
				}
			case gamedata.RoomTreasure:
				if room.Treasure == nil || room.Treasure.Amount <= 0 {
					t.Errorf("seed %d: bad treasure %+v", seed, room.Treasure)
				}
			case gamedata.RoomRest:
				if room.Enemy != nil || room.Treasure != nil {
					t.Errorf("seed %d: rest room holds something", seed)
				}
			}
		}
	}
}

func TestDungeonAdvance(t *testing.T) {
	catalog := gamedata.MustLoadCatalog()
	d := NewDungeon(&catalog.Dungeons.Dungeons[0], catalog, rand.New(rand.NewSource(3)))
	d.Generate(context.Background())

	if !strings.HasPrefix(d.ProgressMap(), "[@]") {
		t.Errorf("ProgressMap = %q, want hero in first room", d.ProgressMap())
	}

	steps := 0
	for d.Advance() {
		steps++
	}
	if steps != len(d.Rooms)-1 {
		t.Errorf("advanced %d times, want %d", steps, len(d.Rooms)-1)
	}
	if !d.Completed {
		t.Error("dungeon should be completed after the last room")
	}
	if want := strings.Repeat("[.]", len(d.Rooms)); d.ProgressMap() != want {
		t.Errorf("ProgressMap = %q, want %q", d.ProgressMap(), want)
	}
}

func TestDifficulty(t *testing.T) {
	def := &gamedata.DungeonDef{ID: "mine", Name: "Abandoned Mine", MinLevel: 3, MaxLevel: 5}
	tests := []struct {
		level int
		want  Difficulty
	}{
		{1, DifficultyHard},
		{3, DifficultyNormal},
		{5, DifficultyNormal},
		{6, DifficultyEasy},
	}
	for _, tt := range tests {
		if got := DifficultyFor(def, tt.level); got != tt.want {
			t.Errorf("DifficultyFor(level %d) = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestAtlasAvailable(t *testing.T) {
	catalog := gamedata.MustLoadCatalog()
	atlas := NewAtlas(catalog)

	tests := []struct {
		level int
		want  int
	}{
		{1, 2},  // Goblin Caves 1, Abandoned Mine 3
		{3, 3},  // + Dark Forest Temple 5
		{8, 5},  // everything
		{10, 5}, // Dragon's Lair 10
	}
	for _, tt := range tests {
		if got := len(atlas.Available(tt.level)); got != tt.want {
			t.Errorf("Available(%d) = %d dungeons, want %d", tt.level, got, tt.want)
		}
	}

	atlas.MarkCompleted("goblin_caves")
	if !atlas.IsCompleted("goblin_caves") || atlas.IsCompleted("dragons_lair") {
		t.Error("completion tracking is wrong")
	}
}

func TestCompletionReward(t *testing.T) {
	def := &gamedata.DungeonDef{ID: "ruins", MinLevel: 7, MaxLevel: 10}
	d := NewDungeon(def, nil, nil)
	got := d.CompletionReward()
	if got.Gold != 1000 || got.Experience != 1000 || got.SkillPoints != 2 {
		t.Errorf("CompletionReward = %+v, want 1000/1000/2", got)
	}
}

func TestRestAndTreasure(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	fists := &gamedata.WeaponDef{ID: "fists", Name: "Fists", Type: gamedata.WeaponBlunt, Damage: 2}
	hero := entity.NewHero("Ayla", fists)
	hero.TakeDamage(90)
	hero.Mana = 0

	got := Rest(hero)
	if got.Health != 25 || hero.Health != 35 {
		t.Errorf("rest healed %d to %d, want 25 to 35", got.Health, hero.Health)
	}
	if got.Mana != 25 || hero.Mana != 25 {
		t.Errorf("rest restored %d mana to %d, want 25", got.Mana, hero.Mana)
	}

	ClaimTreasure(hero, &Treasure{Kind: gamedata.TreasureGold, Amount: 120}, rng)
	ClaimTreasure(hero, &Treasure{Kind: gamedata.TreasurePotion, Amount: 2}, rng)
	levels := ClaimTreasure(hero, &Treasure{Kind: gamedata.TreasureExperience, Amount: 100}, rng)
	if hero.Gold != 170 || hero.Potions != 5 {
		t.Errorf("gold=%d potions=%d, want 170/5", hero.Gold, hero.Potions)
	}
	if len(levels) != 1 || hero.Level != 2 {
		t.Errorf("experience treasure: %d levels, hero level %d, want 1/2", len(levels), hero.Level)
	}
}

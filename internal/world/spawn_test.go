package world

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/juanmuller24/text-based-battle/internal/gamedata"
)

func TestSpawnEnemyBounds(t *testing.T) {
	catalog := gamedata.MustLoadCatalog()
	rng := rand.New(rand.NewSource(2024))

	for _, heroLevel := range []int{1, 2, 5, 12} {
		for i := 0; i < 200; i++ {
			e := SpawnEnemy(catalog, heroLevel, rng)

			lo := heroLevel + spawnLevelLow
			if lo < 1 {
				lo = 1
			}
			if e.Level < lo || e.Level > heroLevel+spawnLevelHigh {
				t.Fatalf("hero %d: enemy level %d out of range", heroLevel, e.Level)
			}

			ceiling := float64(spawnHealthMax + e.Level*spawnHealthLevel)
			if td := catalog.Enemies.TypeDef(e.Type); td != nil && td.HealthMultiplier > 0 {
				ceiling *= td.HealthMultiplier
			}
			if e.MaxHealth > int(ceiling) {
				t.Fatalf("enemy max health %d above %d", e.MaxHealth, int(ceiling))
			}

			allowed := e.Level + spawnWeaponOffset
			pos := -1
			for j, id := range catalog.Enemies.OpenWorldWeapons {
				if id == e.Weapon.ID {
					pos = j
				}
			}
			if pos < 0 || pos >= allowed {
				t.Fatalf("level %d enemy wields %s (pool position %d)", e.Level, e.Weapon.ID, pos)
			}
		}
	}
}

func TestSpawnEnemyTiers(t *testing.T) {
	catalog := gamedata.MustLoadCatalog()
	rng := rand.New(rand.NewSource(77))

	const trials = 20000
	counts := map[gamedata.EnemyType]int{}
	for i := 0; i < trials; i++ {
		e := SpawnEnemy(catalog, 3, rng)
		counts[e.Type]++

		switch e.Type {
		case gamedata.EnemyElite:
			if !strings.HasPrefix(e.Name, "Elite ") {
				t.Fatalf("elite named %q", e.Name)
			}
		case gamedata.EnemyBoss:
			if !strings.HasPrefix(e.Name, "Boss ") {
				t.Fatalf("boss named %q", e.Name)
			}
		}
	}

	elite := float64(counts[gamedata.EnemyElite]) / trials
	boss := float64(counts[gamedata.EnemyBoss]) / trials
	if elite < 0.085 || elite > 0.115 {
		t.Errorf("elite rate = %.3f, want about 0.10", elite)
	}
	// 0.9 * 0.05
	if boss < 0.035 || boss > 0.055 {
		t.Errorf("boss rate = %.3f, want about 0.045", boss)
	}
}

package world

import (
	"math/rand"

	"github.com/juanmuller24/text-based-battle/internal/entity"
	"github.com/juanmuller24/text-based-battle/internal/gamedata"
	"github.com/juanmuller24/text-based-battle/internal/rules"
)

const (
	spawnLevelLow     = -1
	spawnLevelHigh    = 2
	spawnHealthMin    = 60
	spawnHealthMax    = 100
	spawnHealthLevel  = 10
	spawnWeaponOffset = 2 // Weapon pool grows with level
	eliteChance       = 0.10
	bossChance        = 0.05
)

// SpawnEnemy generates an open-world enemy near the hero's level.
func SpawnEnemy(catalog *gamedata.Catalog, heroLevel int, rng *rand.Rand) *entity.Enemy {
	roster := catalog.Enemies

	level := heroLevel + rules.Between(rng, spawnLevelLow, spawnLevelHigh)
	if level < 1 {
		level = 1
	}
	health := rules.Between(rng, spawnHealthMin, spawnHealthMax) + level*spawnHealthLevel

	pool := roster.OpenWorldWeapons
	if n := level + spawnWeaponOffset; n < len(pool) {
		pool = pool[:n]
	}
	weapon := catalog.Weapons.GetByID(rules.Pick(rng, pool))
	if weapon == nil {
		weapon = catalog.Weapons.Fallback()
	}

	name := rules.Pick(rng, roster.Names)

	// Elite and boss rolls are independent draws, so the boss odds apply
	// only to the 90% that were not elite.
	tier := gamedata.EnemyNormal
	if rules.Chance(rng, eliteChance) {
		tier = gamedata.EnemyElite
	} else if rules.Chance(rng, bossChance) {
		tier = gamedata.EnemyBoss
	}
	typeDef := roster.TypeDef(tier)
	if typeDef != nil && typeDef.Prefix != "" {
		name = typeDef.Prefix + " " + name
	}

	return entity.NewEnemy(name, health, level, weapon, typeDef, rng)
}

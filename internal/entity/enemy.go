package entity

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/juanmuller24/text-based-battle/internal/gamedata"
	"github.com/juanmuller24/text-based-battle/internal/rules"
)

const (
	enemyGoldMin  = 3
	enemyGoldMax  = 8
	enemySkipRate = 0.10
)

// EnemyAction is what the enemy AI decided to do this turn.
type EnemyAction int

const (
	// EnemyAttack - swing at the hero
	EnemyAttack EnemyAction = iota
	// EnemyWait - skip the turn
	EnemyWait
)

// String returns the action name.
func (a EnemyAction) String() string {
	switch a {
	case EnemyAttack:
		return "attack"
	case EnemyWait:
		return "wait"
	default:
		return "unknown"
	}
}

// Enemy represents a hostile combatant for one encounter.
type Enemy struct {
	Character

	Type    gamedata.EnemyType
	typeDef *gamedata.EnemyTypeDef
}

// NewEnemy creates an enemy. The tier scales max health (floored) and the
// gold the enemy carries, which is level * rand[3,8] before scaling.
// A nil typeDef makes a normal enemy.
func NewEnemy(name string, health, level int, weapon *gamedata.WeaponDef, typeDef *gamedata.EnemyTypeDef, rng *rand.Rand) *Enemy {
	e := &Enemy{
		Character: *NewCharacter(name, health, level, weapon),
		Type:      gamedata.EnemyNormal,
		typeDef:   typeDef,
	}
	e.Gold = e.Level * rules.Between(rng, enemyGoldMin, enemyGoldMax)

	if typeDef != nil {
		e.Type = typeDef.ID
		if typeDef.HealthMultiplier > 0 {
			e.MaxHealth = int(float64(e.MaxHealth) * typeDef.HealthMultiplier)
			e.Health = e.MaxHealth
			e.Alive = e.Health > 0
		}
		if typeDef.GoldMultiplier > 0 {
			e.Gold *= typeDef.GoldMultiplier
		}
	}
	return e
}

// ChooseAction runs the enemy AI: occasionally hesitate, otherwise attack.
func (e *Enemy) ChooseAction(rng *rand.Rand) EnemyAction {
	if rules.Chance(rng, enemySkipRate) {
		return EnemyWait
	}
	return EnemyAttack
}

// Color returns the tcell color for this enemy's health bar.
func (e *Enemy) Color() tcell.Color {
	if e.typeDef != nil {
		return e.typeDef.TCellColor()
	}
	return tcell.ColorRed
}

// IsElite reports whether the enemy is an elite.
func (e *Enemy) IsElite() bool { return e.Type == gamedata.EnemyElite }

// IsBoss reports whether the enemy is a boss.
func (e *Enemy) IsBoss() bool { return e.Type == gamedata.EnemyBoss }

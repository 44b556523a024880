// Package rules holds the class modifier functions used by combat and levelling.
// Every function here is pure: class definitions are read, never written.
package rules

import (
	"math/rand"

	"github.com/juanmuller24/text-based-battle/internal/gamedata"
)

const (
	warriorMeleeBonus  = 1.15
	mageMagicBonus     = 1.10
	archerRangedBonus  = 1.20
	rogueSneakBonus    = 1.5
	mageManaFactor     = 0.8
	warriorManaFactor  = 1.2
	classBonusInterval = 3
)

// CombatModifier is the outcome of a class combat check.
type CombatModifier struct {
	Multiplier float64
	Sneak      bool // Rogue sneak attack triggered
}

// CombatMultiplier returns the class damage multiplier for an attack made with
// weapon. luck is the attacker's luck skill; rng is only consulted for rogues.
// A nil class or weapon yields a neutral multiplier.
func CombatMultiplier(class *gamedata.ClassDef, weapon *gamedata.WeaponDef, luck int, rng *rand.Rand) CombatModifier {
	neutral := CombatModifier{Multiplier: 1}
	if class == nil || weapon == nil {
		return neutral
	}

	switch class.ID {
	case gamedata.ClassWarrior:
		if weapon.IsMelee() {
			return CombatModifier{Multiplier: warriorMeleeBonus}
		}
	case gamedata.ClassMage:
		if weapon.Type == gamedata.WeaponMagic {
			return CombatModifier{Multiplier: mageMagicBonus}
		}
	case gamedata.ClassArcher:
		if weapon.Type == gamedata.WeaponRanged {
			return CombatModifier{Multiplier: archerRangedBonus}
		}
	case gamedata.ClassRogue:
		if rng.Float64() < float64(luck)/100 {
			return CombatModifier{Multiplier: rogueSneakBonus, Sneak: true}
		}
	}
	return neutral
}

// ManaCostMultiplier returns the factor applied to spell costs for a class.
func ManaCostMultiplier(class *gamedata.ClassDef) float64 {
	if class == nil {
		return 1
	}
	switch class.ID {
	case gamedata.ClassMage:
		return mageManaFactor
	case gamedata.ClassWarrior:
		return warriorManaFactor
	default:
		return 1
	}
}

// SpellCost returns what casting spell costs a member of class.
// The spell definition is left untouched.
func SpellCost(class *gamedata.ClassDef, spell *gamedata.SpellDef) int {
	return Round(float64(spell.ManaCost) * ManaCostMultiplier(class))
}

// LevelBonuses returns the class skill increments granted on reaching
// newLevel. Only levels divisible by three grant anything.
func LevelBonuses(class *gamedata.ClassDef, newLevel int) map[gamedata.Skill]int {
	if class == nil || newLevel <= 0 || newLevel%classBonusInterval != 0 {
		return nil
	}
	switch class.ID {
	case gamedata.ClassWarrior:
		return map[gamedata.Skill]int{gamedata.SkillStrength: 2, gamedata.SkillAgility: 1}
	case gamedata.ClassMage:
		return map[gamedata.Skill]int{gamedata.SkillIntelligence: 2, gamedata.SkillLuck: 1}
	case gamedata.ClassArcher:
		return map[gamedata.Skill]int{gamedata.SkillAgility: 2, gamedata.SkillLuck: 1}
	case gamedata.ClassRogue:
		return map[gamedata.Skill]int{gamedata.SkillLuck: 2, gamedata.SkillAgility: 1}
	default:
		return nil
	}
}

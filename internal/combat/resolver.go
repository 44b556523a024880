// Package combat resolves attacks and spell casts between characters.
package combat

import (
	"fmt"
	"math/rand"

	"github.com/juanmuller24/text-based-battle/internal/entity"
	"github.com/juanmuller24/text-based-battle/internal/gamedata"
	"github.com/juanmuller24/text-based-battle/internal/rules"
)

const (
	expPerKillLevel  = 25
	goldPerKillLevel = 5
	damageSpellRange = 2
	healSpellRange   = 5
)

// Reward is what the attacker collects for a kill.
type Reward struct {
	Experience int
	Gold       int
	Levels     []entity.LevelUp // Levels gained from the experience
}

// AttackResult contains the outcome of a weapon attack.
type AttackResult struct {
	Success bool
	Damage  int  // Damage actually taken by the target
	Crit    bool // Weapon crit doubled the base damage
	Sneak   bool // Rogue sneak attack triggered
	Boosted bool // A damage_boost buff applied
	Killed  bool
	Reward  Reward
	Message string
}

// SpellResult contains the outcome of a spell cast.
type SpellResult struct {
	Success   bool
	ManaSpent int
	Damage    int
	Healing   int
	BuffAdded gamedata.BuffKind
	Killed    bool
	Reward    Reward
	Message   string
}

// Resolver calculates and applies attacks and spells. All randomness comes
// from its rng so a seeded resolver replays identically.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a resolver drawing from rng.
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Attack swings the attacker's weapon at the target. Nothing happens if either
// side is dead.
func (r *Resolver) Attack(attacker, target *entity.Character) AttackResult {
	if !attacker.IsAlive() || !target.IsAlive() {
		return AttackResult{Message: "There is no one to fight."}
	}
	weapon := attacker.Weapon
	if weapon == nil {
		return AttackResult{Message: attacker.Name + " has nothing to attack with!"}
	}

	base, crit := weapon.RollDamage(r.rng)
	raw := float64(base + attacker.Level/2 + attacker.Skill(gamedata.SkillStrength)/5)

	result := AttackResult{Success: true, Crit: crit}
	if attacker.Class != nil {
		mod := rules.CombatMultiplier(attacker.Class, weapon, attacker.Skill(gamedata.SkillLuck), r.rng)
		raw *= mod.Multiplier
		result.Sneak = mod.Sneak
	}
	if boost := attacker.BuffDamageMultiplier(); boost != 1 {
		raw *= boost
		result.Boosted = true
	}

	result.Damage = target.TakeDamage(rules.Round(raw))
	result.Message = attackMessage(attacker, target, result)

	if !target.IsAlive() {
		result.Killed = true
		result.Reward = r.award(attacker, target)
	}
	return result
}

func attackMessage(attacker, target *entity.Character, result AttackResult) string {
	msg := fmt.Sprintf("%s attacks %s with %s for %d damage!", attacker.Name, target.Name, attacker.Weapon.Name, result.Damage)
	if result.Crit {
		msg = "Critical hit! " + msg
	}
	if result.Sneak {
		msg = "Sneak attack! " + msg
	}
	return msg
}

// CanCast reports whether the caster knows the spell and can afford it.
func (r *Resolver) CanCast(caster *entity.Character, spell *gamedata.SpellDef) bool {
	if spell == nil || !caster.KnowsSpell(spell) {
		return false
	}
	return caster.Mana >= rules.SpellCost(caster.Class, spell)
}

// CastSpell casts a known spell. A failed cast changes nothing: the spell
// must be known, the caster alive, the class-adjusted cost affordable and,
// for damage spells, the target alive.
func (r *Resolver) CastSpell(caster *entity.Character, spell *gamedata.SpellDef, target *entity.Character) SpellResult {
	if spell == nil || !caster.KnowsSpell(spell) {
		return SpellResult{Message: caster.Name + " doesn't know that spell!"}
	}
	if !caster.IsAlive() {
		return SpellResult{Message: caster.Name + " cannot cast while defeated."}
	}
	cost := rules.SpellCost(caster.Class, spell)
	if caster.Mana < cost {
		return SpellResult{Message: fmt.Sprintf("Not enough mana to cast %s! (%d/%d)", spell.Name, caster.Mana, cost)}
	}
	if spell.IsOffensive() && (target == nil || !target.IsAlive()) {
		return SpellResult{Message: spell.Name + " needs a target."}
	}

	caster.SpendMana(cost)
	result := SpellResult{Success: true, ManaSpent: cost}

	switch spell.Kind {
	case gamedata.SpellDamage:
		result.Damage = target.TakeDamage(rules.Jitter(r.rng, spell.Magnitude, damageSpellRange))
		result.Message = fmt.Sprintf("%s casts %s on %s for %d damage!", caster.Name, spell.Name, target.Name, result.Damage)
		if !target.IsAlive() {
			result.Killed = true
			result.Reward = r.award(caster, target)
		}
	case gamedata.SpellHeal:
		result.Healing = caster.Heal(rules.Jitter(r.rng, spell.Magnitude, healSpellRange))
		result.Message = fmt.Sprintf("%s casts %s and recovers %d health!", caster.Name, spell.Name, result.Healing)
	case gamedata.SpellBuff:
		buff := entity.NewBuff(spell.Effect)
		caster.AddBuff(buff)
		result.BuffAdded = spell.Effect
		result.Message = fmt.Sprintf("%s casts %s and gains %s!", caster.Name, spell.Name, buff.Label())
	default:
		result.Message = fmt.Sprintf("%s casts %s, but nothing happens.", caster.Name, spell.Name)
	}
	return result
}

// award pays the killer experience and gold scaled by the victim's level.
func (r *Resolver) award(killer, victim *entity.Character) Reward {
	reward := Reward{
		Experience: victim.Level * expPerKillLevel,
		Gold:       victim.Level * goldPerKillLevel,
	}
	killer.Gold += reward.Gold
	reward.Levels = killer.GainExperience(reward.Experience, r.rng)
	return reward
}

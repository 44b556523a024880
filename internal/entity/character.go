// Package entity provides the hero, enemies and the combat state they share.
package entity

import (
	"math/rand"

	"github.com/juanmuller24/text-based-battle/internal/gamedata"
	"github.com/juanmuller24/text-based-battle/internal/rules"
)

const (
	defaultMana           = 50
	defaultSkill          = 10
	defaultThreshold      = 100
	thresholdGrowth       = 1.5
	levelHealthMin        = 5
	levelHealthMax        = 15
	levelManaMin          = 3
	levelManaMax          = 10
	levelSkillMin         = 1
	levelSkillMax         = 3
	manaRegenDivisor      = 10
	damageBoostMultiplier = 1.3
)

// Skills maps each skill to its current value.
type Skills map[gamedata.Skill]int

// DefaultSkills returns a fresh skill map with every skill at its starting value.
func DefaultSkills() Skills {
	skills := make(Skills, len(gamedata.AllSkills))
	for _, s := range gamedata.AllSkills {
		skills[s] = defaultSkill
	}
	return skills
}

// Clone returns a copy of the skill map.
func (s Skills) Clone() Skills {
	out := make(Skills, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Character is the combat state shared by the hero and enemies.
type Character struct {
	Name string

	Health, MaxHealth int
	Mana, MaxMana     int
	Level             int
	Experience        int
	ExperienceToNext  int // Threshold for the next level
	Gold              int
	Alive             bool

	Weapon *gamedata.WeaponDef
	Spells []*gamedata.SpellDef
	Skills Skills
	Buffs  []Buff

	// Class is nil for characters without a class (every enemy).
	Class *gamedata.ClassDef
}

// NewCharacter creates a living character with full health and default
// mana, skills and experience threshold.
func NewCharacter(name string, health, level int, weapon *gamedata.WeaponDef) *Character {
	if level < 1 {
		level = 1
	}
	return &Character{
		Name:             name,
		Health:           health,
		MaxHealth:        health,
		Mana:             defaultMana,
		MaxMana:          defaultMana,
		Level:            level,
		ExperienceToNext: defaultThreshold,
		Alive:            health > 0,
		Weapon:           weapon,
		Spells:           []*gamedata.SpellDef{},
		Skills:           DefaultSkills(),
		Buffs:            []Buff{},
	}
}

// IsAlive returns true while the character has health remaining.
func (c *Character) IsAlive() bool { return c.Alive }

// Skill returns the value of a skill (0 if unset).
func (c *Character) Skill(s gamedata.Skill) int { return c.Skills[s] }

// AddSkill raises a skill. Skills only grow during play, so non-positive
// amounts are ignored.
func (c *Character) AddSkill(s gamedata.Skill, amount int) {
	if amount <= 0 {
		return
	}
	if c.Skills == nil {
		c.Skills = DefaultSkills()
	}
	c.Skills[s] += amount
}

// TakeDamage reduces health and returns the damage actually taken.
// Health stops at zero, at which point the character dies.
func (c *Character) TakeDamage(amount int) int {
	if amount <= 0 || !c.Alive {
		return 0
	}
	actual := amount
	if actual > c.Health {
		actual = c.Health
	}
	c.Health -= actual
	if c.Health == 0 {
		c.Alive = false
	}
	return actual
}

// Heal restores health and returns the amount actually healed.
// The dead cannot be healed.
func (c *Character) Heal(amount int) int {
	if amount <= 0 || !c.Alive {
		return 0
	}
	actual := amount
	if c.Health+actual > c.MaxHealth {
		actual = c.MaxHealth - c.Health
	}
	c.Health += actual
	return actual
}

// SpendMana reduces mana and returns false, changing nothing, if insufficient.
func (c *Character) SpendMana(amount int) bool {
	if amount < 0 || c.Mana < amount {
		return false
	}
	c.Mana -= amount
	return true
}

// RegenerateMana restores mana and returns the amount actually restored.
// An amount of zero regenerates a tenth of max mana.
func (c *Character) RegenerateMana(amount int) int {
	if amount == 0 {
		amount = c.MaxMana / manaRegenDivisor
	}
	if amount <= 0 {
		return 0
	}
	actual := amount
	if c.Mana+actual > c.MaxMana {
		actual = c.MaxMana - c.Mana
	}
	if actual < 0 {
		return 0
	}
	c.Mana += actual
	return actual
}

// LearnSpell adds a spell to the known set. It returns false if the spell
// was already known.
func (c *Character) LearnSpell(spell *gamedata.SpellDef) bool {
	if spell == nil || c.KnowsSpell(spell) {
		return false
	}
	c.Spells = append(c.Spells, spell)
	return true
}

// KnowsSpell reports whether the spell (matched by ID) is known.
func (c *Character) KnowsSpell(spell *gamedata.SpellDef) bool {
	if spell == nil {
		return false
	}
	for _, known := range c.Spells {
		if known.ID == spell.ID {
			return true
		}
	}
	return false
}

// AddBuff attaches a buff. Buffs of the same kind are kept side by side.
func (c *Character) AddBuff(buff Buff) {
	c.Buffs = append(c.Buffs, buff)
}

// HasBuff reports whether a buff of the given kind is active.
func (c *Character) HasBuff(kind gamedata.BuffKind) bool {
	for _, b := range c.Buffs {
		if b.Kind == kind {
			return true
		}
	}
	return false
}

// BuffDamageMultiplier returns the damage multiplier from active buffs.
// Only the first damage_boost counts; several boosts never stack.
func (c *Character) BuffDamageMultiplier() float64 {
	for _, b := range c.Buffs {
		switch b.Kind {
		case gamedata.BuffDamageBoost:
			return damageBoostMultiplier
		case gamedata.BuffNone:
		}
	}
	return 1
}

// UpdateBuffs ages every buff by one turn and drops those that reach zero.
// It returns the kinds that expired.
func (c *Character) UpdateBuffs() []gamedata.BuffKind {
	var expired []gamedata.BuffKind
	remaining := make([]Buff, 0, len(c.Buffs))

	for _, b := range c.Buffs {
		b.Remaining--
		if b.Remaining <= 0 {
			expired = append(expired, b.Kind)
			continue
		}
		remaining = append(remaining, b)
	}

	c.Buffs = remaining
	return expired
}

// LevelUp describes what one level gained changed.
type LevelUp struct {
	NewLevel      int
	HealthGain    int
	ManaGain      int
	SkillGains    map[gamedata.Skill]int // Random growth plus class bonuses
	ClassBonus    map[gamedata.Skill]int // Class share of SkillGains, nil if none
	NextThreshold int                    // Experience needed for the following level
}

// GainExperience adds experience and levels up as many times as the total
// allows. Non-positive amounts are ignored.
func (c *Character) GainExperience(amount int, rng *rand.Rand) []LevelUp {
	if amount <= 0 {
		return nil
	}
	c.Experience += amount

	var levels []LevelUp
	for c.ExperienceToNext > 0 && c.Experience >= c.ExperienceToNext {
		levels = append(levels, c.LevelUp(rng))
	}
	return levels
}

// LevelUp consumes one threshold of experience and grows the character.
func (c *Character) LevelUp(rng *rand.Rand) LevelUp {
	c.Experience -= c.ExperienceToNext
	if c.Experience < 0 {
		c.Experience = 0
	}
	c.ExperienceToNext = int(float64(c.ExperienceToNext) * thresholdGrowth)
	c.Level++

	healthGain := rules.Between(rng, levelHealthMin, levelHealthMax)
	c.MaxHealth += healthGain
	if c.Alive {
		c.Health += healthGain
	}

	manaGain := rules.Between(rng, levelManaMin, levelManaMax)
	c.MaxMana += manaGain
	c.Mana += manaGain

	gains := make(map[gamedata.Skill]int, len(gamedata.AllSkills))
	for _, s := range gamedata.AllSkills {
		n := rules.Between(rng, levelSkillMin, levelSkillMax)
		c.AddSkill(s, n)
		gains[s] = n
	}

	bonus := rules.LevelBonuses(c.Class, c.Level)
	for _, s := range gamedata.AllSkills {
		if n, ok := bonus[s]; ok {
			c.AddSkill(s, n)
			gains[s] += n
		}
	}

	return LevelUp{
		NewLevel:      c.Level,
		HealthGain:    healthGain,
		ManaGain:      manaGain,
		SkillGains:    gains,
		ClassBonus:    bonus,
		NextThreshold: c.ExperienceToNext,
	}
}

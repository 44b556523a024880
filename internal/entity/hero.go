package entity

import (
	"errors"
	"math/rand"

	"github.com/google/uuid"

	"github.com/juanmuller24/text-based-battle/internal/gamedata"
	"github.com/juanmuller24/text-based-battle/internal/rules"
)

const (
	heroStartHealth  = 100
	heroStartGold    = 50
	heroStartPotions = 3
	potionHealMin    = 20
	potionHealMax    = 40
	baseClassMana    = 50
	manaPerIntellect = 2
)

var (
	// ErrNoPotions is returned when a potion is used with none left.
	ErrNoPotions = errors.New("no potions left")
	// ErrFullHealth is returned when a potion would heal nothing.
	ErrFullHealth = errors.New("already at full health")
	// ErrNoSkillPoints is returned when allocating without unspent points.
	ErrNoSkillPoints = errors.New("no skill points available")
	// ErrUnknownSkill is returned for a skill name outside the four skills.
	ErrUnknownSkill = errors.New("unknown skill")
	// ErrNoSuchItem is returned for an out-of-range inventory slot.
	ErrNoSuchItem = errors.New("no such inventory item")
)

// Stats are the progress counters quests and achievements read.
type Stats struct {
	BattlesWon        int
	BattlesFought     int
	EliteKills        int
	BossKills         int
	SpellsCast        int
	ItemsPurchased    int
	DungeonsCompleted int
}

// Hero is the player's character.
type Hero struct {
	Character

	ID          uuid.UUID
	Inventory   []*gamedata.WeaponDef // Spare weapons
	Potions     int
	SkillPoints int
	Stats       Stats

	fallback *gamedata.WeaponDef // Bare-handed weapon, never stored in the inventory
}

// NewHero creates a level 1 hero wielding the fallback weapon.
func NewHero(name string, fallback *gamedata.WeaponDef) *Hero {
	h := &Hero{
		Character: *NewCharacter(name, heroStartHealth, 1, fallback),
		ID:        uuid.New(),
		Inventory: []*gamedata.WeaponDef{},
		Potions:   heroStartPotions,
		fallback:  fallback,
	}
	h.Gold = heroStartGold
	return h
}

// SetFallbackWeapon sets the weapon used when nothing else is equipped.
func (h *Hero) SetFallbackWeapon(w *gamedata.WeaponDef) {
	h.fallback = w
	if h.Weapon == nil {
		h.Weapon = w
	}
}

// ApplyClass applies a class once at hero creation: skill bonuses, starting
// weapon and spells, and max mana recomputed from intelligence.
func (h *Hero) ApplyClass(class *gamedata.ClassDef, weapon *gamedata.WeaponDef, spells []*gamedata.SpellDef) {
	if class == nil {
		return
	}
	for _, s := range gamedata.AllSkills {
		// Class bonuses may be negative; this is initial state, not growth.
		h.Skills[s] += class.Bonuses[s]
	}
	if weapon != nil {
		h.Equip(weapon)
	}
	for _, spell := range spells {
		h.LearnSpell(spell)
	}
	h.MaxMana = baseClassMana + h.Skill(gamedata.SkillIntelligence)*manaPerIntellect
	h.Mana = h.MaxMana
	h.Class = class
}

// Equip wields a weapon. The previous weapon goes to the inventory unless it
// is the bare-handed fallback.
func (h *Hero) Equip(weapon *gamedata.WeaponDef) {
	if weapon == nil {
		return
	}
	old := h.Weapon
	h.Weapon = weapon
	if old != nil && !h.isFallback(old) {
		h.Inventory = append(h.Inventory, old)
	}
}

// EquipFromInventory swaps the inventory slot at index with the equipped
// weapon. Equipping over bare hands just removes the slot.
func (h *Hero) EquipFromInventory(index int) (*gamedata.WeaponDef, error) {
	if index < 0 || index >= len(h.Inventory) {
		return nil, ErrNoSuchItem
	}
	chosen := h.Inventory[index]
	old := h.Weapon
	if old != nil && !h.isFallback(old) {
		h.Inventory[index] = old
	} else {
		h.Inventory = append(h.Inventory[:index], h.Inventory[index+1:]...)
	}
	h.Weapon = chosen
	return chosen, nil
}

// Unequip puts the current weapon in the inventory and goes bare-handed.
func (h *Hero) Unequip() {
	if h.Weapon != nil && !h.isFallback(h.Weapon) {
		h.Inventory = append(h.Inventory, h.Weapon)
	}
	h.Weapon = h.fallback
}

func (h *Hero) isFallback(w *gamedata.WeaponDef) bool {
	return h.fallback != nil && w.ID == h.fallback.ID
}

// UsePotion drinks a healing potion and returns the amount healed.
// Nothing changes if there is no potion or nothing to heal.
func (h *Hero) UsePotion(rng *rand.Rand) (int, error) {
	if h.Potions <= 0 {
		return 0, ErrNoPotions
	}
	if h.Health >= h.MaxHealth {
		return 0, ErrFullHealth
	}
	h.Potions--
	return h.Heal(rules.Between(rng, potionHealMin, potionHealMax)), nil
}

// AllocateSkill spends one skill point on a skill. Intelligence also raises
// max mana the same way class selection derives it.
func (h *Hero) AllocateSkill(skill gamedata.Skill) error {
	if !skill.Valid() {
		return ErrUnknownSkill
	}
	if h.SkillPoints <= 0 {
		return ErrNoSkillPoints
	}
	h.SkillPoints--
	h.AddSkill(skill, 1)
	if skill == gamedata.SkillIntelligence {
		h.MaxMana += manaPerIntellect
		h.Mana += manaPerIntellect
	}
	return nil
}

// Metric returns the value of a progress metric for quests and achievements.
func (h *Hero) Metric(m gamedata.Metric) int {
	switch m {
	case gamedata.MetricBattlesWon:
		return h.Stats.BattlesWon
	case gamedata.MetricBattlesFought:
		return h.Stats.BattlesFought
	case gamedata.MetricItemsPurchased:
		return h.Stats.ItemsPurchased
	case gamedata.MetricLevel:
		return h.Level
	case gamedata.MetricSpellsKnown:
		return len(h.Spells)
	case gamedata.MetricSpellsCast:
		return h.Stats.SpellsCast
	case gamedata.MetricDungeonsCompleted:
		return h.Stats.DungeonsCompleted
	case gamedata.MetricEliteKills:
		return h.Stats.EliteKills
	case gamedata.MetricBossKills:
		return h.Stats.BossKills
	case gamedata.MetricGold:
		return h.Gold
	default:
		return 0
	}
}

// RecordKill bumps the kill counters for the enemy's tier.
func (h *Hero) RecordKill(enemy *Enemy) {
	switch enemy.Type {
	case gamedata.EnemyElite:
		h.Stats.EliteKills++
	case gamedata.EnemyBoss:
		h.Stats.BossKills++
	case gamedata.EnemyNormal:
	}
}

package gamedata

import (
	"errors"
	"fmt"
	"strings"
)

// WeaponRegistry holds loaded weapon definitions and provides lookup utilities.
type WeaponRegistry struct {
	byID   map[string]*WeaponDef
	byName map[string]*WeaponDef
	all    []WeaponDef
}

// NewWeaponRegistry creates a registry from loaded weapon definitions.
func NewWeaponRegistry(weapons []WeaponDef) *WeaponRegistry {
	registry := &WeaponRegistry{
		byID:   make(map[string]*WeaponDef),
		byName: make(map[string]*WeaponDef),
		all:    weapons,
	}
	for i := range weapons {
		registry.byID[weapons[i].ID] = &weapons[i]
		registry.byName[strings.ToLower(weapons[i].Name)] = &weapons[i]
	}
	return registry
}

// GetByID returns the weapon definition with the given ID, or nil if not found.
func (r *WeaponRegistry) GetByID(id string) *WeaponDef {
	return r.byID[id]
}

// GetByName returns the weapon with the given display name (case-insensitive),
// or nil if not found. Save files reference weapons by name.
func (r *WeaponRegistry) GetByName(name string) *WeaponDef {
	return r.byName[strings.ToLower(name)]
}

// Fallback returns the bare-handed weapon.
func (r *WeaponRegistry) Fallback() *WeaponDef {
	return r.byID[FallbackWeaponID]
}

// GetMultiple returns weapon definitions for a list of IDs.
// Missing IDs are silently skipped.
func (r *WeaponRegistry) GetMultiple(ids []string) []*WeaponDef {
	result := make([]*WeaponDef, 0, len(ids))
	for _, id := range ids {
		if weapon := r.byID[id]; weapon != nil {
			result = append(result, weapon)
		}
	}
	return result
}

// All returns all weapon definitions.
func (r *WeaponRegistry) All() []WeaponDef {
	return r.all
}

// Count returns the number of weapons in the registry.
func (r *WeaponRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// SpellRegistry
// =============================================================================

// SpellRegistry holds loaded spell definitions and provides lookup utilities.
type SpellRegistry struct {
	byID   map[string]*SpellDef
	byName map[string]*SpellDef
	all    []SpellDef
}

// NewSpellRegistry creates a registry from loaded spell definitions.
func NewSpellRegistry(spells []SpellDef) *SpellRegistry {
	registry := &SpellRegistry{
		byID:   make(map[string]*SpellDef),
		byName: make(map[string]*SpellDef),
		all:    spells,
	}
	for i := range spells {
		registry.byID[spells[i].ID] = &spells[i]
		registry.byName[strings.ToLower(spells[i].Name)] = &spells[i]
	}
	return registry
}

// GetByID returns the spell definition with the given ID, or nil if not found.
func (r *SpellRegistry) GetByID(id string) *SpellDef {
	return r.byID[id]
}

// GetByName returns the spell with the given display name (case-insensitive),
// or nil if not found.
func (r *SpellRegistry) GetByName(name string) *SpellDef {
	return r.byName[strings.ToLower(name)]
}

// GetMultiple returns spell definitions for a list of IDs.
// Missing IDs are silently skipped.
func (r *SpellRegistry) GetMultiple(ids []string) []*SpellDef {
	result := make([]*SpellDef, 0, len(ids))
	for _, id := range ids {
		if spell := r.byID[id]; spell != nil {
			result = append(result, spell)
		}
	}
	return result
}

// All returns all spell definitions.
func (r *SpellRegistry) All() []SpellDef {
	return r.all
}

// Count returns the number of spells in the registry.
func (r *SpellRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// ClassRegistry
// =============================================================================

// ClassRegistry holds loaded class definitions in selection order.
type ClassRegistry struct {
	classes []ClassDef
}

// NewClassRegistry creates a registry from loaded class definitions.
func NewClassRegistry(classes []ClassDef) *ClassRegistry {
	return &ClassRegistry{classes: classes}
}

// GetByID returns the class definition with the given ID, or nil if not found.
func (r *ClassRegistry) GetByID(id string) *ClassDef {
	for i := range r.classes {
		if r.classes[i].ID == id {
			return &r.classes[i]
		}
	}
	return nil
}

// GetByName returns the class with the given display name (case-insensitive),
// or nil if not found.
func (r *ClassRegistry) GetByName(name string) *ClassDef {
	for i := range r.classes {
		if strings.EqualFold(r.classes[i].Name, name) {
			return &r.classes[i]
		}
	}
	return nil
}

// All returns all class definitions.
func (r *ClassRegistry) All() []ClassDef {
	return r.classes
}

// Count returns the number of classes in the registry.
func (r *ClassRegistry) Count() int {
	return len(r.classes)
}

// =============================================================================
// Catalog
// =============================================================================

// Catalog bundles every read-only definition the game needs.
// It is loaded once at startup and shared by reference.
type Catalog struct {
	Weapons      *WeaponRegistry
	Spells       *SpellRegistry
	Classes      *ClassRegistry
	Enemies      *EnemyRoster
	Dungeons     *DungeonsFile
	Quests       *QuestsFile
	Achievements []AchievementDef
	Shop         *ShopDef
}

// LoadCatalog loads every embedded data file and cross-checks references.
func LoadCatalog() (*Catalog, error) {
	weapons, err := LoadWeapons()
	if err != nil {
		return nil, err
	}
	if len(weapons) == 0 {
		return nil, errors.New("no weapons loaded from weapons.json")
	}
	spells, err := LoadSpells()
	if err != nil {
		return nil, err
	}
	classes, err := LoadClasses()
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, errors.New("no classes loaded from classes.json")
	}
	roster, err := LoadEnemyRoster()
	if err != nil {
		return nil, err
	}
	dungeons, err := LoadDungeons()
	if err != nil {
		return nil, err
	}
	quests, err := LoadQuests()
	if err != nil {
		return nil, err
	}
	achievements, err := LoadAchievements()
	if err != nil {
		return nil, err
	}
	shop, err := LoadShop()
	if err != nil {
		return nil, err
	}

	catalog := &Catalog{
		Weapons:      NewWeaponRegistry(weapons),
		Spells:       NewSpellRegistry(spells),
		Classes:      NewClassRegistry(classes),
		Enemies:      roster,
		Dungeons:     dungeons,
		Quests:       quests,
		Achievements: achievements,
		Shop:         shop,
	}
	if err := catalog.validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// MustLoadCatalog loads the catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// validate checks that every cross-file reference resolves.
func (c *Catalog) validate() error {
	if c.Weapons.Fallback() == nil {
		return fmt.Errorf("fallback weapon %q missing from weapons.json", FallbackWeaponID)
	}
	for _, class := range c.Classes.All() {
		if c.Weapons.GetByID(class.Weapon) == nil {
			return fmt.Errorf("class %s: unknown starting weapon %q", class.ID, class.Weapon)
		}
		for _, id := range class.Spells {
			if c.Spells.GetByID(id) == nil {
				return fmt.Errorf("class %s: unknown starting spell %q", class.ID, id)
			}
		}
		for skill := range class.Bonuses {
			if !skill.Valid() {
				return fmt.Errorf("class %s: unknown skill %q", class.ID, skill)
			}
		}
	}
	for _, id := range append(append([]string{}, c.Enemies.OpenWorldWeapons...), c.Enemies.DungeonWeapons...) {
		if c.Weapons.GetByID(id) == nil {
			return fmt.Errorf("enemies.json: unknown weapon %q", id)
		}
	}
	for _, t := range []EnemyType{EnemyNormal, EnemyElite, EnemyBoss} {
		if c.Enemies.TypeDef(t) == nil {
			return fmt.Errorf("enemies.json: missing enemy type %q", t)
		}
	}
	for _, id := range c.Shop.Weapons {
		if c.Weapons.GetByID(id) == nil {
			return fmt.Errorf("shop.json: unknown weapon %q", id)
		}
	}
	for _, id := range c.Shop.Spells {
		if c.Spells.GetByID(id) == nil {
			return fmt.Errorf("shop.json: unknown spell %q", id)
		}
	}
	known := make(map[string]bool, len(c.Quests.Quests))
	for _, q := range c.Quests.Quests {
		known[q.ID] = true
	}
	for _, npc := range c.Quests.NPCs {
		for _, id := range npc.Quests {
			if !known[id] {
				return fmt.Errorf("quests.yaml: npc %s offers unknown quest %q", npc.ID, id)
			}
		}
	}
	return nil
}

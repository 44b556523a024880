package gamedata

import "math/rand"

// WeaponType classifies a weapon for class combat bonuses.
type WeaponType string

const (
	WeaponSharp  WeaponType = "sharp"
	WeaponBlunt  WeaponType = "blunt"
	WeaponRanged WeaponType = "ranged"
	WeaponMagic  WeaponType = "magic"
)

// FallbackWeaponID is the bare-handed weapon every character can fall back to.
const FallbackWeaponID = "fists"

// WeaponDef defines a weapon loaded from JSON. Definitions are shared and
// must never be mutated after loading.
type WeaponDef struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        WeaponType `json:"type"`
	Damage      int        `json:"damage"`     // Base damage before crits and bonuses
	CritChance  float64    `json:"critChance"` // Probability in [0,1] that a hit doubles
	Value       int        `json:"value"`      // Shop price in gold
	Description string     `json:"description"`
}

// RollDamage rolls one hit with this weapon. A crit doubles the base damage;
// flat bonuses are the caller's business and are never doubled.
func (w *WeaponDef) RollDamage(rng *rand.Rand) (damage int, crit bool) {
	crit = w.CritChance > 0 && rng.Float64() < w.CritChance
	damage = w.Damage
	if crit {
		damage *= 2
	}
	return damage, crit
}

// IsMelee returns true for sharp and blunt weapons.
func (w *WeaponDef) IsMelee() bool {
	return w.Type == WeaponSharp || w.Type == WeaponBlunt
}

// WeaponsFile represents the structure of weapons.json.
type WeaponsFile struct {
	Weapons []WeaponDef `json:"weapons"`
}

// LoadWeapons loads weapon definitions from the embedded weapons.json file.
func LoadWeapons() ([]WeaponDef, error) {
	file, err := Load[WeaponsFile]("weapons.json")
	if err != nil {
		return nil, err
	}
	return file.Weapons, nil
}

package gamedata

// SpellKind represents what a spell does when cast.
type SpellKind string

const (
	SpellDamage SpellKind = "damage" // Hurts the target
	SpellHeal   SpellKind = "heal"   // Heals the caster
	SpellBuff   SpellKind = "buff"   // Puts a timed buff on the caster
)

// BuffKind tags a timed modifier attached to a character.
type BuffKind string

const (
	BuffNone        BuffKind = ""
	BuffDamageBoost BuffKind = "damage_boost"
)

// SpellDef defines a spell loaded from JSON. Casting never mutates the
// definition; class cost adjustments are computed per cast.
type SpellDef struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        SpellKind `json:"kind"`
	Magnitude   int       `json:"magnitude"` // Base damage or healing
	ManaCost    int       `json:"manaCost"`
	Effect      BuffKind  `json:"effect,omitempty"` // Buff applied by buff spells
	Value       int       `json:"value"`            // Shop price in gold
	Description string    `json:"description"`
}

// IsOffensive returns true if the spell needs an enemy target.
func (s *SpellDef) IsOffensive() bool {
	return s.Kind == SpellDamage
}

// SpellsFile represents the structure of spells.json.
type SpellsFile struct {
	Spells []SpellDef `json:"spells"`
}

// LoadSpells loads spell definitions from the embedded spells.json file.
func LoadSpells() ([]SpellDef, error) {
	file, err := Load[SpellsFile]("spells.json")
	if err != nil {
		return nil, err
	}
	return file.Spells, nil
}

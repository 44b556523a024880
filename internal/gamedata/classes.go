package gamedata

// Skill names one of the four character skills.
type Skill string

const (
	SkillStrength     Skill = "strength"
	SkillAgility      Skill = "agility"
	SkillIntelligence Skill = "intelligence"
	SkillLuck         Skill = "luck"
)

// AllSkills lists the skills in display order.
var AllSkills = []Skill{SkillStrength, SkillAgility, SkillIntelligence, SkillLuck}

// Valid reports whether s is one of the four known skills.
func (s Skill) Valid() bool {
	switch s {
	case SkillStrength, SkillAgility, SkillIntelligence, SkillLuck:
		return true
	default:
		return false
	}
}

// Class identifiers used by the class modifier rules.
const (
	ClassWarrior = "warrior"
	ClassMage    = "mage"
	ClassArcher  = "archer"
	ClassRogue   = "rogue"
)

// ClassDef defines a playable class loaded from JSON.
type ClassDef struct {
	ID          string        `json:"id"`          // Unique identifier (e.g., "warrior")
	Name        string        `json:"name"`        // Display name (e.g., "Warrior")
	Symbol      string        `json:"symbol"`      // Single character for rendering (e.g., "W")
	Description string        `json:"description"` // Flavor text shown at selection
	Weapon      string        `json:"weapon"`      // Starting weapon ID
	Spells      []string      `json:"spells"`      // Starting spell IDs
	Bonuses     map[Skill]int `json:"bonuses"`     // Additive skill bonuses applied once
	Abilities   []string      `json:"abilities"`   // Special ability labels
}

// SymbolRune returns the symbol as a rune for rendering.
func (c *ClassDef) SymbolRune() rune {
	if len(c.Symbol) == 0 {
		return '?'
	}
	return rune(c.Symbol[0])
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}

// MustLoadClasses loads class definitions, panicking on error.
func MustLoadClasses() []ClassDef {
	classes, err := LoadClasses()
	if err != nil {
		panic(err)
	}
	return classes
}

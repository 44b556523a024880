package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyType classifies an enemy's strength tier.
type EnemyType string

const (
	EnemyNormal EnemyType = "normal"
	EnemyElite  EnemyType = "elite"
	EnemyBoss   EnemyType = "boss"
)

// EnemyTypeDef describes how a tier scales an enemy at creation.
type EnemyTypeDef struct {
	ID               EnemyType `json:"id"`
	Prefix           string    `json:"prefix"`           // Name prefix for open-world spawns (e.g., "Elite")
	HealthMultiplier float64   `json:"healthMultiplier"` // Applied to max health, floored
	GoldMultiplier   int       `json:"goldMultiplier"`   // Applied to carried gold
	Color            string    `json:"color"`            // Hex color for health bars
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyTypeDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorRed // fallback
	}
	return color
}

// EnemyRoster holds the name and weapon pools enemies are generated from.
type EnemyRoster struct {
	Names            []string       `json:"names"`            // Open-world enemy names
	DungeonNames     []string       `json:"dungeonNames"`     // Regular dungeon room enemies
	BossNames        []string       `json:"bossNames"`        // Dungeon boss room enemies
	OpenWorldWeapons []string       `json:"openWorldWeapons"` // Ordered by level gate
	DungeonWeapons   []string       `json:"dungeonWeapons"`
	Types            []EnemyTypeDef `json:"types"`
}

// TypeDef returns the definition for the given tier, or nil if unknown.
func (r *EnemyRoster) TypeDef(t EnemyType) *EnemyTypeDef {
	for i := range r.Types {
		if r.Types[i].ID == t {
			return &r.Types[i]
		}
	}
	return nil
}

// LoadEnemyRoster loads the enemy roster from the embedded enemies.json file.
func LoadEnemyRoster() (*EnemyRoster, error) {
	roster, err := Load[EnemyRoster]("enemies.json")
	if err != nil {
		return nil, err
	}
	return &roster, nil
}

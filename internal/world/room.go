package world

import (
	"fmt"

	"github.com/juanmuller24/text-based-battle/internal/entity"
	"github.com/juanmuller24/text-based-battle/internal/gamedata"
)

// Treasure is the payout waiting in a treasure room.
type Treasure struct {
	Kind   gamedata.TreasureKind
	Name   string
	Amount int
}

// Room is one step of a dungeon.
type Room struct {
	Index       int
	Type        gamedata.RoomType
	Name        string
	Description string
	Enemy       *entity.Enemy // Set for normal and boss rooms
	Treasure    *Treasure     // Set for treasure rooms
	Cleared     bool
}

// Title returns the numbered room name.
func (r *Room) Title() string {
	return fmt.Sprintf("Room %d: %s", r.Index+1, r.Name)
}

// HasEnemy returns true if a living enemy guards the room.
func (r *Room) HasEnemy() bool {
	return r.Enemy != nil && r.Enemy.IsAlive()
}

// Tile returns the room's progress map glyph.
func (r *Room) Tile() Tile {
	if r.Cleared {
		return TileCleared
	}
	return TileFor(r.Type)
}

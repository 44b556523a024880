// Package world provides enemy spawning and dungeon generation.
package world

import "github.com/juanmuller24/text-based-battle/internal/gamedata"

// Tile is the glyph a room shows on the dungeon progress map.
type Tile rune

const (
	// TileFight marks a room guarded by a regular enemy.
	TileFight Tile = 'E'
	// TileTreasure marks a treasure room.
	TileTreasure Tile = '$'
	// TileRest marks a rest room.
	TileRest Tile = '+'
	// TileBoss marks the boss room.
	TileBoss Tile = 'B'
	// TileCleared marks a room already dealt with.
	TileCleared Tile = '.'
	// TileHero marks the room the hero is in.
	TileHero Tile = '@'
)

// TileFor returns the glyph for an unvisited room of the given type.
func TileFor(t gamedata.RoomType) Tile {
	switch t {
	case gamedata.RoomTreasure:
		return TileTreasure
	case gamedata.RoomRest:
		return TileRest
	case gamedata.RoomBoss:
		return TileBoss
	default:
		return TileFight
	}
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

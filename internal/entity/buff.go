package entity

import "github.com/juanmuller24/text-based-battle/internal/gamedata"

// BuffDuration is how many buff updates a freshly cast buff survives.
// Buffs are aged at the start of each battle round before anyone acts,
// so a buff cast this round boosts the next two rounds.
const BuffDuration = 3

// Buff is a timed modifier attached to a character.
type Buff struct {
	Kind      gamedata.BuffKind
	Remaining int // Updates left before the buff expires
}

// NewBuff creates a buff of the given kind with the standard duration.
func NewBuff(kind gamedata.BuffKind) Buff {
	return Buff{Kind: kind, Remaining: BuffDuration}
}

// Label returns a human-readable buff name.
func (b Buff) Label() string {
	switch b.Kind {
	case gamedata.BuffDamageBoost:
		return "Damage Boost"
	case gamedata.BuffNone:
		return "None"
	default:
		return string(b.Kind)
	}
}

// Package game provides the battle driver, menus and the session loop.
package game

// Phase represents where a battle stands.
type Phase int

const (
	// PhasePlayerTurn is waiting for the hero's next action.
	PhasePlayerTurn Phase = iota
	// PhaseVictory means the enemy is dead.
	PhaseVictory
	// PhaseDefeat means the hero is dead.
	PhaseDefeat
	// PhaseFled means the hero escaped.
	PhaseFled
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	case PhaseFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Over reports whether the battle has ended.
func (p Phase) Over() bool {
	return p != PhasePlayerTurn
}

// Action is a hero's choice on their turn.
type Action int

const (
	ActionAttack Action = iota
	ActionSpell
	ActionPotion
	ActionInspect
	ActionFlee
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionSpell:
		return "spell"
	case ActionPotion:
		return "potion"
	case ActionInspect:
		return "inspect"
	case ActionFlee:
		return "flee"
	default:
		return "unknown"
	}
}

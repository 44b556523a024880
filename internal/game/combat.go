package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/juanmuller24/text-based-battle/internal/combat"
	"github.com/juanmuller24/text-based-battle/internal/entity"
	"github.com/juanmuller24/text-based-battle/internal/gamedata"
	"github.com/juanmuller24/text-based-battle/internal/rules"
	"github.com/juanmuller24/text-based-battle/internal/telemetry"
)

const (
	fleeChance       = 0.7
	skillPointChance = 0.3
)

// Command is one hero action. Spell is only read for ActionSpell.
type Command struct {
	Action Action
	Spell  *gamedata.SpellDef
}

// RoundStart reports the upkeep applied at the top of a round.
type RoundStart struct {
	Round        int
	HeroExpired  []gamedata.BuffKind
	EnemyExpired []gamedata.BuffKind
	ManaRegained int
}

// TurnResult is what one hero action and the enemy's reply did.
type TurnResult struct {
	// Consumed is false for inspect and refused actions; the hero acts again.
	Consumed    bool
	Messages    []string
	Attack      *combat.AttackResult
	Spell       *combat.SpellResult
	Healed      int
	EnemyAction entity.EnemyAction
	EnemyAttack *combat.AttackResult
	Levels      []entity.LevelUp
}

// Outcome is the settled result of a finished battle.
type Outcome struct {
	Phase      Phase
	Rounds     int
	Gold       int  // Enemy's carried gold paid on victory
	SkillPoint bool // Bonus skill point from an open-world victory
}

// BattleOptions changes the rules of one battle.
type BattleOptions struct {
	// Dungeon battles cannot be fled and pay no bonus skill point.
	Dungeon bool
}

// Battle is a one-on-one fight between the hero and an enemy.
type Battle struct {
	ID    uuid.UUID
	Hero  *entity.Hero
	Enemy *entity.Enemy
	Phase Phase
	Round int

	opts      BattleOptions
	roundOpen bool
	resolver  *combat.Resolver
	rng       *rand.Rand
	log       *logrus.Entry
}

// NewBattle starts a battle and counts it as fought.
func NewBattle(ctx context.Context, hero *entity.Hero, enemy *entity.Enemy, opts BattleOptions, rng *rand.Rand, logger *logrus.Logger) *Battle {
	b := &Battle{
		ID:       uuid.New(),
		Hero:     hero,
		Enemy:    enemy,
		Phase:    PhasePlayerTurn,
		opts:     opts,
		resolver: combat.NewResolver(rng),
		rng:      rng,
	}
	b.log = logger.WithFields(logrus.Fields{
		"battle_id": b.ID.String(),
		"hero":      hero.Name,
		"enemy":     enemy.Name,
	})

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "battle.start")
	span.SetAttributes(
		attribute.String("battle.id", b.ID.String()),
		attribute.String("enemy.name", enemy.Name),
		attribute.String("enemy.type", string(enemy.Type)),
		attribute.Int("enemy.level", enemy.Level),
		attribute.Int("hero.level", hero.Level),
		attribute.Bool("dungeon", opts.Dungeon),
	)
	span.End()

	hero.Stats.BattlesFought++
	b.log.WithField("enemy_level", enemy.Level).Info("battle started")
	return b
}

// CanFlee reports whether running away is allowed.
func (b *Battle) CanFlee() bool {
	return !b.opts.Dungeon
}

// StartRound applies the round upkeep: both sides' buffs tick down and the
// hero regenerates mana. It does nothing until the previous round's turn
// has been consumed, so inspecting or a refused action never ticks twice.
func (b *Battle) StartRound() (RoundStart, bool) {
	if b.roundOpen || b.Phase.Over() {
		return RoundStart{}, false
	}
	b.roundOpen = true
	b.Round++
	return RoundStart{
		Round:        b.Round,
		HeroExpired:  b.Hero.UpdateBuffs(),
		EnemyExpired: b.Enemy.UpdateBuffs(),
		ManaRegained: b.Hero.RegenerateMana(0),
	}, true
}

// Act performs one hero action and, when the turn is consumed and the enemy
// still stands, the enemy's reply.
func (b *Battle) Act(ctx context.Context, cmd Command) TurnResult {
	if b.Phase.Over() {
		return TurnResult{Messages: []string{"The battle is over."}}
	}
	b.StartRound()

	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "battle.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("battle.id", b.ID.String()),
		attribute.Int("round", b.Round),
		attribute.String("action", cmd.Action.String()),
	)

	var res TurnResult
	switch cmd.Action {
	case ActionAttack:
		ar := b.resolver.Attack(&b.Hero.Character, &b.Enemy.Character)
		res.Attack = &ar
		res.Consumed = ar.Success
		res.Messages = append(res.Messages, ar.Message)
		res.Levels = append(res.Levels, ar.Reward.Levels...)
		span.SetAttributes(attribute.Int("damage", ar.Damage), attribute.Bool("crit", ar.Crit))

	case ActionSpell:
		sr := b.resolver.CastSpell(&b.Hero.Character, cmd.Spell, &b.Enemy.Character)
		res.Spell = &sr
		res.Consumed = sr.Success
		res.Messages = append(res.Messages, sr.Message)
		if sr.Success {
			b.Hero.Stats.SpellsCast++
			res.Levels = append(res.Levels, sr.Reward.Levels...)
			span.SetAttributes(attribute.String("spell", cmd.Spell.ID), attribute.Int("mana_spent", sr.ManaSpent))
		}

	case ActionPotion:
		healed, err := b.Hero.UsePotion(b.rng)
		if err != nil {
			res.Messages = append(res.Messages, potionRefusal(err))
			break
		}
		res.Consumed = true
		res.Healed = healed
		res.Messages = append(res.Messages, fmt.Sprintf("%s drinks a potion and recovers %d health! (%d potions left)", b.Hero.Name, healed, b.Hero.Potions))

	case ActionInspect:
		res.Messages = append(res.Messages, b.inspect()...)

	case ActionFlee:
		if !b.CanFlee() {
			res.Messages = append(res.Messages, "You can't run away from dungeon enemies!")
			break
		}
		res.Consumed = true
		if rules.Chance(b.rng, fleeChance) {
			b.Phase = PhaseFled
			res.Messages = append(res.Messages, b.Hero.Name+" successfully ran away!")
		} else {
			res.Messages = append(res.Messages, b.Hero.Name+" couldn't escape!")
		}
	}

	if !res.Consumed {
		span.SetAttributes(attribute.Bool("refused", true))
		return res
	}
	b.roundOpen = false

	if !b.Enemy.IsAlive() {
		b.Phase = PhaseVictory
	} else if b.Phase == PhasePlayerTurn {
		b.enemyTurn(&res)
	}
	b.traceLevelUps(ctx, res.Levels)
	return res
}

// enemyTurn runs the enemy AI.
func (b *Battle) enemyTurn(res *TurnResult) {
	res.EnemyAction = b.Enemy.ChooseAction(b.rng)
	switch res.EnemyAction {
	case entity.EnemyWait:
		res.Messages = append(res.Messages, b.Enemy.Name+" is waiting...")
	case entity.EnemyAttack:
		ar := b.resolver.Attack(&b.Enemy.Character, &b.Hero.Character)
		res.EnemyAttack = &ar
		res.Messages = append(res.Messages, ar.Message)
	}
	if !b.Hero.IsAlive() {
		b.Phase = PhaseDefeat
	}
}

func (b *Battle) inspect() []string {
	h := b.Hero
	lines := []string{
		fmt.Sprintf("%s - Level %d", h.Name, h.Level),
		fmt.Sprintf("Health: %d/%d  Mana: %d/%d", h.Health, h.MaxHealth, h.Mana, h.MaxMana),
		fmt.Sprintf("Weapon: %s  Potions: %d", h.Weapon.Name, h.Potions),
	}
	for _, buff := range h.Buffs {
		lines = append(lines, fmt.Sprintf("Active: %s (%d turns)", buff.Label(), buff.Remaining))
	}
	e := b.Enemy
	lines = append(lines,
		fmt.Sprintf("%s - Level %d %s", e.Name, e.Level, e.Type),
		fmt.Sprintf("Health: %d/%d  Weapon: %s", e.Health, e.MaxHealth, e.Weapon.Name),
	)
	return lines
}

func potionRefusal(err error) string {
	switch {
	case errors.Is(err, entity.ErrNoPotions):
		return "No potions left!"
	case errors.Is(err, entity.ErrFullHealth):
		return "Already at full health!"
	default:
		return err.Error()
	}
}

// traceLevelUps records a span per level gained.
func (b *Battle) traceLevelUps(ctx context.Context, levels []entity.LevelUp) {
	traceLevelUps(ctx, b.Hero, levels)
	for _, lv := range levels {
		b.log.WithFields(logrus.Fields{
			"level":       lv.NewLevel,
			"health_gain": lv.HealthGain,
			"mana_gain":   lv.ManaGain,
		}).Info("hero levelled up")
	}
}

func traceLevelUps(ctx context.Context, hero *entity.Hero, levels []entity.LevelUp) {
	if len(levels) == 0 {
		return
	}
	tracer := telemetry.Tracer("progression")
	for _, lv := range levels {
		_, span := tracer.Start(ctx, "hero.level_up")
		span.SetAttributes(
			attribute.String("hero.id", hero.ID.String()),
			attribute.Int("level", lv.NewLevel),
			attribute.Int("health_gain", lv.HealthGain),
			attribute.Int("mana_gain", lv.ManaGain),
		)
		span.End()
	}
}

// Finish settles a battle that is over. On victory the hero takes the
// enemy's gold, the win and kill counters go up and an open-world win has a
// chance to grant a skill point.
func (b *Battle) Finish(ctx context.Context) Outcome {
	out := Outcome{Phase: b.Phase, Rounds: b.Round}

	if b.Phase == PhaseVictory {
		out.Gold = b.Enemy.Gold
		b.Hero.Gold += out.Gold
		b.Hero.Stats.BattlesWon++
		b.Hero.RecordKill(b.Enemy)
		if !b.opts.Dungeon && rules.Chance(b.rng, skillPointChance) {
			b.Hero.SkillPoints++
			out.SkillPoint = true
		}
	}

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("battle.id", b.ID.String()),
		attribute.String("outcome", b.Phase.String()),
		attribute.Int("rounds", b.Round),
		attribute.Int("hero.health_remaining", b.Hero.Health),
		attribute.Int("gold", out.Gold),
	)
	span.End()

	b.log.WithFields(logrus.Fields{
		"outcome": b.Phase.String(),
		"rounds":  b.Round,
		"gold":    out.Gold,
	}).Info("battle finished")
	return out
}

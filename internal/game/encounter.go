package game

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/juanmuller24/text-based-battle/internal/combat"
	"github.com/juanmuller24/text-based-battle/internal/entity"
	"github.com/juanmuller24/text-based-battle/internal/gamedata"
	"github.com/juanmuller24/text-based-battle/internal/rules"
	"github.com/juanmuller24/text-based-battle/internal/telemetry"
	"github.com/juanmuller24/text-based-battle/internal/ui"
	"github.com/juanmuller24/text-based-battle/internal/world"
)

// adventure spawns an open-world enemy and fights it. A victory advances
// the day.
func (g *Game) adventure(ctx context.Context) error {
	enemy := world.SpawnEnemy(g.catalog, g.hero.Level, g.rng)
	g.console.Printf("A %s (Level %d) appears!", enemy.Name, enemy.Level)
	g.console.Printf("Enemy Health: %d", enemy.Health)
	g.console.Printf("Enemy Weapon: %s", enemy.Weapon.Name)
	if err := ui.Pause(g.console); err != nil {
		return err
	}

	out, err := g.fight(ctx, enemy, BattleOptions{})
	if err != nil {
		return err
	}
	if out.Phase == PhaseVictory {
		g.day++
		g.checkProgress(ctx)
	}
	return ui.Pause(g.console)
}

// fight runs a battle through the console until it is over, then settles it.
// A defeat ends the session.
func (g *Game) fight(ctx context.Context, enemy *entity.Enemy, opts BattleOptions) (Outcome, error) {
	b := NewBattle(ctx, g.hero, enemy, opts, g.rng, g.log)
	title := "Battle"
	if opts.Dungeon {
		title = "Dungeon Battle"
	}

	for !b.Phase.Over() {
		if start, ok := b.StartRound(); ok {
			g.console.Clear()
			g.console.Title(fmt.Sprintf("%s: %s vs %s", title, g.hero.Name, enemy.Name))
			for _, kind := range start.HeroExpired {
				g.console.Printf("%s wore off.", entity.Buff{Kind: kind}.Label())
			}
		}
		g.console.HealthBar(g.hero.Name, g.hero.Health, g.hero.MaxHealth, ui.HeroColor)
		g.console.HealthBar("Mana", g.hero.Mana, g.hero.MaxMana, ui.ManaColor)
		g.console.HealthBar(enemy.Name, enemy.Health, enemy.MaxHealth, enemy.Color())

		cmd, ok, err := g.chooseCommand(b)
		if err != nil {
			return Outcome{}, err
		}
		if !ok {
			continue
		}
		res := b.Act(ctx, cmd)
		for _, msg := range res.Messages {
			g.console.Println(msg)
		}
		if (res.Attack != nil && res.Attack.Killed) || (res.Spell != nil && res.Spell.Killed) {
			g.reportKill(res)
		}
		for _, lv := range res.Levels {
			g.console.Printf("%s reached level %d! (+%d health, +%d mana)", g.hero.Name, lv.NewLevel, lv.HealthGain, lv.ManaGain)
		}
		if res.Consumed && !b.Phase.Over() {
			if err := ui.Pause(g.console); err != nil {
				return Outcome{}, err
			}
		}
	}

	out := b.Finish(ctx)
	switch out.Phase {
	case PhaseVictory:
		g.console.Printf("Victory! %s defeated %s!", g.hero.Name, enemy.Name)
		g.console.Printf("Gained %d gold!", out.Gold)
		if out.SkillPoint {
			g.console.Println("You gained a skill point!")
		}
	case PhaseDefeat:
		g.console.Printf("%s has been defeated...", g.hero.Name)
		g.over = true
	}
	return out, nil
}

func (g *Game) reportKill(res TurnResult) {
	var reward combat.Reward
	switch {
	case res.Attack != nil:
		reward = res.Attack.Reward
	case res.Spell != nil:
		reward = res.Spell.Reward
	}
	g.console.Printf("%s gains %d experience and %d gold!", g.hero.Name, reward.Experience, reward.Gold)
}

// chooseCommand shows the combat menu. ok is false when the player backs
// out of the spell list.
func (g *Game) chooseCommand(b *Battle) (Command, bool, error) {
	options := []string{"Attack", "Cast Spell", "Use Potion", "View Stats"}
	actions := []Action{ActionAttack, ActionSpell, ActionPotion, ActionInspect}
	if b.CanFlee() {
		options = append(options, "Run Away")
		actions = append(actions, ActionFlee)
	}

	i, err := ui.Menu(g.console, "Combat Menu", options)
	if err != nil {
		return Command{}, false, err
	}
	cmd := Command{Action: actions[i]}
	if cmd.Action != ActionSpell {
		return cmd, true, nil
	}

	spell, err := g.chooseSpell()
	if err != nil || spell == nil {
		return Command{}, false, err
	}
	cmd.Spell = spell
	return cmd, true, nil
}

// chooseSpell lists known spells with their class-adjusted cost. A nil
// spell means the player went back.
func (g *Game) chooseSpell() (*gamedata.SpellDef, error) {
	h := g.hero
	if len(h.Spells) == 0 {
		g.console.Println("You don't know any spells!")
		return nil, nil
	}
	options := make([]string, 0, len(h.Spells)+1)
	for _, s := range h.Spells {
		options = append(options, fmt.Sprintf("%s (%d mana) - %s", s.Name, rules.SpellCost(h.Class, s), s.Description))
	}
	options = append(options, "Back")

	g.console.Printf("Mana: %d/%d", h.Mana, h.MaxMana)
	i, err := ui.Menu(g.console, "Spells", options)
	if err != nil || i == len(h.Spells) {
		return nil, err
	}
	return h.Spells[i], nil
}

// =============================================================================
// Dungeons
// =============================================================================

func (g *Game) dungeonMenu(ctx context.Context) error {
	available := g.atlas.Available(g.hero.Level)
	if len(available) == 0 {
		g.console.Println("No dungeons available for your level!")
		return ui.Pause(g.console)
	}

	options := make([]string, 0, len(available)+1)
	for _, def := range available {
		label := fmt.Sprintf("%s (Levels %d-%d) [%s]", def.Name, def.MinLevel, def.MaxLevel, world.DifficultyFor(def, g.hero.Level))
		if g.atlas.IsCompleted(def.ID) {
			label += " - cleared"
		}
		options = append(options, label)
	}
	options = append(options, "Back")

	i, err := ui.Menu(g.console, "Available Dungeons", options)
	if err != nil || i == len(available) {
		return err
	}
	return g.exploreDungeon(ctx, available[i])
}

// exploreDungeon walks the hero through every room of a fresh run. Fleeing
// is not possible; a defeat ends the session.
func (g *Game) exploreDungeon(ctx context.Context, def *gamedata.DungeonDef) error {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.explore")
	defer span.End()

	d := g.atlas.Enter(ctx, def, g.rng)
	span.SetAttributes(
		attribute.String("dungeon.id", def.ID),
		attribute.Int("dungeon.rooms", len(d.Rooms)),
		attribute.Int("hero.level", g.hero.Level),
	)
	log := g.log.WithFields(logrus.Fields{"dungeon": def.ID, "hero": g.hero.Name})
	log.Info("entering dungeon")

	g.console.Printf("Entering %s...", def.Name)
	for !d.Completed {
		room := d.CurrentRoom()
		g.console.Clear()
		g.console.Title(def.Name)
		g.console.Map(d.MapTiles())
		g.console.Println(room.Title())
		g.console.Println(room.Description)

		switch {
		case room.Type == gamedata.RoomRest:
			r := world.Rest(g.hero)
			g.console.Println("You found a safe place to rest!")
			g.console.Printf("Recovered %d health and %d mana. You feel refreshed!", r.Health, r.Mana)
		case room.Treasure != nil:
			t := room.Treasure
			g.console.Printf("You found: %s!", t.Name)
			g.console.Printf("Gained %d %s!", t.Amount, treasureUnit(t.Kind))
			g.reportLevels(ctx, world.ClaimTreasure(g.hero, t, g.rng))
		case room.HasEnemy():
			g.console.Printf("A %s blocks your path!", room.Enemy.Name)
			out, err := g.fight(ctx, room.Enemy, BattleOptions{Dungeon: true})
			if err != nil {
				return err
			}
			if out.Phase != PhaseVictory {
				span.SetAttributes(attribute.String("outcome", out.Phase.String()), attribute.Int("room", room.Index))
				log.WithField("room", room.Index).Info("hero fell in dungeon")
				return ui.Pause(g.console)
			}
		}

		if d.Advance() {
			if _, err := g.console.ReadLine("Press Enter to continue to the next room..."); err != nil {
				return err
			}
		}
	}

	reward := d.CompletionReward()
	g.hero.Gold += reward.Gold
	levels := g.hero.GainExperience(reward.Experience, g.rng)
	g.hero.SkillPoints += reward.SkillPoints
	g.hero.Stats.DungeonsCompleted++
	g.atlas.MarkCompleted(def.ID)

	g.console.Printf("You have completed %s!", def.Name)
	g.console.Printf("Completion reward: %d gold and %d experience!", reward.Gold, reward.Experience)
	g.console.Printf("You gained %d skill points!", reward.SkillPoints)
	g.reportLevels(ctx, levels)
	g.checkProgress(ctx)

	span.SetAttributes(attribute.String("outcome", "completed"))
	log.WithField("reward", reward.Gold).Info("dungeon completed")
	return ui.Pause(g.console)
}

func treasureUnit(kind gamedata.TreasureKind) string {
	switch kind {
	case gamedata.TreasurePotion:
		return "potions"
	default:
		return string(kind)
	}
}

package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/juanmuller24/text-based-battle/internal/achievement"
	"github.com/juanmuller24/text-based-battle/internal/entity"
	"github.com/juanmuller24/text-based-battle/internal/gamedata"
	"github.com/juanmuller24/text-based-battle/internal/quest"
	"github.com/juanmuller24/text-based-battle/internal/save"
	"github.com/juanmuller24/text-based-battle/internal/shop"
	"github.com/juanmuller24/text-based-battle/internal/telemetry"
	"github.com/juanmuller24/text-based-battle/internal/ui"
	"github.com/juanmuller24/text-based-battle/internal/world"
)

const defaultHeroName = "Hero"

var mainMenu = []string{
	"Continue Adventure",
	"Explore Dungeons",
	"Visit Shop",
	"Visit NPCs",
	"View Inventory",
	"Character Stats",
	"Skill Points",
	"Quest Log",
	"Achievements",
	"Save Game",
	"Quit Game",
}

// Game holds the entire session state.
type Game struct {
	console ui.Console
	catalog *gamedata.Catalog
	store   *save.Store
	log     *logrus.Logger
	rng     *rand.Rand

	hero         *entity.Hero
	day          int
	shop         *shop.Shop
	quests       *quest.Log
	achievements *achievement.Tracker
	atlas        *world.Atlas
	over         bool
}

// New creates a game playing through console. Nothing is shown until Run.
func New(cfg Config, console ui.Console, catalog *gamedata.Catalog, logger *logrus.Logger) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.WithField("seed", seed).Debug("random source seeded")

	return &Game{
		console: console,
		catalog: catalog,
		store:   save.NewStore(cfg.SaveFile, catalog, logger),
		log:     logger,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Hero returns the current hero, nil before Run sets one up.
func (g *Game) Hero() *entity.Hero { return g.hero }

// Run plays one session: load or create a hero, then the main menu until the
// player quits or the hero falls. Running out of input ends the session
// quietly.
func (g *Game) Run(ctx context.Context) error {
	err := g.run(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, ui.ErrInterrupted) {
		g.log.Info("input closed, ending session")
		return nil
	}
	return err
}

func (g *Game) run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.session")
	defer span.End()

	g.console.Clear()
	g.console.Title("Welcome to Text-Based Battle Game")
	if err := g.begin(ctx); err != nil {
		return err
	}
	span.SetAttributes(
		attribute.String("hero.id", g.hero.ID.String()),
		attribute.String("hero.name", g.hero.Name),
	)

	for !g.over {
		g.console.Clear()
		g.console.Title(fmt.Sprintf("Adventure - Day %d", g.day+1))
		g.showStats()
		g.checkProgress(ctx)

		choice, err := ui.Menu(g.console, "Main Menu", mainMenu)
		if err != nil {
			return err
		}
		if err := g.dispatch(ctx, choice); err != nil {
			return err
		}
	}

	g.console.Title("Game Over")
	g.console.Printf("Final Stats for %s:", g.hero.Name)
	g.showStats()
	g.console.Printf("Days survived: %d", g.day)
	span.SetAttributes(attribute.Int("days", g.day), attribute.Int("hero.level", g.hero.Level))
	return nil
}

func (g *Game) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case 0:
		return g.adventure(ctx)
	case 1:
		return g.dungeonMenu(ctx)
	case 2:
		return g.shopMenu()
	case 3:
		return g.npcMenu()
	case 4:
		return g.inventoryMenu()
	case 5:
		g.showStats()
		return ui.Pause(g.console)
	case 6:
		return g.skillMenu()
	case 7:
		g.questLog()
		return ui.Pause(g.console)
	case 8:
		g.achievementList()
		return ui.Pause(g.console)
	case 9:
		g.saveGame(ctx)
		return ui.Pause(g.console)
	case 10:
		yes, err := ui.Confirm(g.console, "Save game before quitting?")
		if err != nil {
			return err
		}
		if yes {
			g.saveGame(ctx)
		}
		g.console.Println("Thanks for playing!")
		g.over = true
	}
	return nil
}

// begin offers to load an existing save, falling back to a new game.
func (g *Game) begin(ctx context.Context) error {
	g.shop = shop.New(g.catalog)
	g.quests = quest.NewLog(g.catalog.Quests)
	g.achievements = achievement.NewTracker(g.catalog.Achievements)
	g.atlas = world.NewAtlas(g.catalog)

	if g.store.Exists() {
		load, err := ui.Confirm(g.console, "Found existing save file. Load game?")
		if err != nil {
			return err
		}
		if load {
			if g.loadGame(ctx) {
				g.console.Printf("Welcome back, %s!", g.hero.Name)
				return ui.Pause(g.console)
			}
			g.console.Println("Starting a new game instead.")
		}
	}
	return g.newGame()
}

func (g *Game) loadGame(ctx context.Context) bool {
	snap, err := g.store.Load(ctx)
	if err != nil {
		g.console.Printf("Could not load save: %v", err)
		g.log.WithError(err).Warn("load failed")
		return false
	}
	g.hero = snap.Hero
	g.day = snap.Day
	g.quests.Restore(snap.Quests)
	g.achievements.Restore(snap.Achievements)
	return true
}

func (g *Game) newGame() error {
	name, err := g.console.ReadLine("Enter your hero's name: ")
	if err != nil {
		return err
	}
	if name = strings.TrimSpace(name); name == "" {
		name = defaultHeroName
	}
	g.console.Printf("Welcome, %s! Now choose your path...", name)

	class, err := g.chooseClass()
	if err != nil {
		return err
	}
	g.hero = entity.NewHero(name, g.catalog.Weapons.Fallback())
	g.hero.ApplyClass(class, g.catalog.Weapons.GetByID(class.Weapon), g.catalog.Spells.GetMultiple(class.Spells))
	g.day = 0

	g.log.WithFields(logrus.Fields{
		"hero":    g.hero.Name,
		"hero_id": g.hero.ID.String(),
		"class":   class.ID,
	}).Info("new hero created")
	g.console.Printf("Your adventure begins, %s the %s!", g.hero.Name, class.Name)
	return ui.Pause(g.console)
}

func (g *Game) chooseClass() (*gamedata.ClassDef, error) {
	classes := g.catalog.Classes.All()
	options := make([]string, len(classes))
	for i, c := range classes {
		options[i] = fmt.Sprintf("%s - %s", c.Name, c.Description)
	}
	i, err := ui.Menu(g.console, "Choose Your Class", options)
	if err != nil {
		return nil, err
	}
	return g.catalog.Classes.GetByID(classes[i].ID), nil
}

// checkProgress pays out newly met achievements and finished quests.
func (g *Game) checkProgress(ctx context.Context) {
	for _, u := range g.achievements.Check(g.hero, g.rng) {
		def := u.Achievement.Def
		g.console.Printf("Achievement unlocked: %s! (+%d gold, +%d exp)", def.Name, def.RewardGold, def.RewardExp)
		g.reportLevels(ctx, u.Levels)
		g.log.WithField("achievement", def.ID).Info("achievement unlocked")
	}
	for _, c := range g.quests.Update(g.hero, g.rng) {
		g.console.Printf("Quest completed: %s! (+%d gold, +%d exp, +%d skill point)", c.Quest.Def.Name, c.Gold, c.Experience, c.SkillPoints)
		g.reportLevels(ctx, c.Levels)
		g.log.WithField("quest", c.Quest.Def.ID).Info("quest completed")
	}
}

func (g *Game) reportLevels(ctx context.Context, levels []entity.LevelUp) {
	traceLevelUps(ctx, g.hero, levels)
	for _, lv := range levels {
		g.console.Printf("%s reached level %d! (+%d health, +%d mana)", g.hero.Name, lv.NewLevel, lv.HealthGain, lv.ManaGain)
		if len(lv.ClassBonus) > 0 {
			g.console.Printf("%s class bonus applied!", g.hero.Class.Name)
		}
	}
}

func (g *Game) showStats() {
	h := g.hero
	class := "Adventurer"
	if h.Class != nil {
		class = h.Class.Name
	}
	g.console.Printf("%s the %s - Level %d", h.Name, class, h.Level)
	g.console.HealthBar("Health", h.Health, h.MaxHealth, ui.HeroColor)
	g.console.HealthBar("Mana", h.Mana, h.MaxMana, ui.ManaColor)
	g.console.Printf("Experience: %d/%d", h.Experience, h.ExperienceToNext)
	g.console.Printf("Gold: %d  Potions: %d  Weapon: %s", h.Gold, h.Potions, h.Weapon.Name)
	g.console.Printf("STR %d  AGI %d  INT %d  LUCK %d",
		h.Skill(gamedata.SkillStrength), h.Skill(gamedata.SkillAgility),
		h.Skill(gamedata.SkillIntelligence), h.Skill(gamedata.SkillLuck))
	if h.SkillPoints > 0 {
		g.console.Printf("Unspent skill points: %d", h.SkillPoints)
	}
	g.console.Printf("Battles: %d won / %d fought", h.Stats.BattlesWon, h.Stats.BattlesFought)
}

func (g *Game) saveGame(ctx context.Context) {
	err := g.store.Save(ctx, save.Snapshot{
		Hero:         g.hero,
		Day:          g.day,
		Quests:       g.quests.Statuses(),
		Achievements: g.achievements.UnlockedIDs(),
	})
	if err != nil {
		g.console.Printf("Error saving game: %v", err)
		return
	}
	g.console.Println("Game saved successfully!")
}

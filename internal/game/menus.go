package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/juanmuller24/text-based-battle/internal/gamedata"
	"github.com/juanmuller24/text-based-battle/internal/shop"
	"github.com/juanmuller24/text-based-battle/internal/ui"
)

// shopMenu lists weapons, spells and potions until the player leaves.
func (g *Game) shopMenu() error {
	weapons, spells := g.shop.Weapons(), g.shop.Spells()
	for {
		h := g.hero
		g.console.Clear()
		g.console.Printf("Your Gold: %d", h.Gold)

		options := make([]string, 0, len(weapons)+len(spells)+2)
		for _, w := range weapons {
			options = append(options, fmt.Sprintf("%s - %d damage - %d gold", w.Name, w.Damage, w.Value))
		}
		for _, s := range spells {
			label := fmt.Sprintf("%s spell - %d mana - %d gold", s.Name, s.ManaCost, s.Value)
			if h.KnowsSpell(s) {
				label += " (known)"
			}
			options = append(options, label)
		}
		options = append(options,
			fmt.Sprintf("Healing Potion - %d gold", g.shop.PotionPrice()),
			"Exit shop",
		)

		i, err := ui.Menu(g.console, "Shop", options)
		if err != nil {
			return err
		}

		var bought string
		switch {
		case i < len(weapons):
			w, err := g.shop.BuyWeapon(h, i)
			if err != nil {
				g.console.Println(purchaseRefusal(err))
				break
			}
			bought = w.Name
		case i < len(weapons)+len(spells):
			s, err := g.shop.BuySpell(h, i-len(weapons))
			if err != nil {
				g.console.Println(purchaseRefusal(err))
				break
			}
			bought = s.Name
		case i == len(weapons)+len(spells):
			if err := g.shop.BuyPotion(h); err != nil {
				g.console.Println(purchaseRefusal(err))
				break
			}
			bought = "healing potion"
		default:
			return nil
		}
		if bought != "" {
			g.console.Printf("Purchased %s!", bought)
			g.log.WithField("item", bought).Info("item purchased")
		}
		if err := ui.Pause(g.console); err != nil {
			return err
		}
	}
}

func purchaseRefusal(err error) string {
	switch {
	case errors.Is(err, shop.ErrNotEnoughGold):
		return "Not enough gold!"
	case errors.Is(err, shop.ErrAlreadyKnown):
		return "You already know that spell!"
	default:
		return err.Error()
	}
}

// npcMenu lets the player visit a quest giver and accept a quest.
func (g *Game) npcMenu() error {
	npcs := g.quests.NPCs()
	options := make([]string, 0, len(npcs)+1)
	for _, npc := range npcs {
		options = append(options, fmt.Sprintf("%s - %s", npc.Name, npc.Title))
	}
	options = append(options, "Return to main menu")

	i, err := ui.Menu(g.console, "Village NPCs", options)
	if err != nil || i == len(npcs) {
		return err
	}
	npc := &npcs[i]

	g.console.Title(npc.Name)
	g.console.Println(npc.Description)
	g.console.Println(g.quests.Greeting(npc, g.hero))

	offered := g.quests.OfferedBy(npc, g.hero)
	if len(offered) == 0 {
		return ui.Pause(g.console)
	}
	options = options[:0]
	for _, q := range offered {
		options = append(options, fmt.Sprintf("%s - %s (Rewards: %d gold, %d exp)", q.Def.Name, q.Def.Description, q.Def.RewardGold, q.Def.RewardExp))
	}
	options = append(options, "Leave")

	i, err = ui.Menu(g.console, "Available Quests", options)
	if err != nil || i == len(offered) {
		return err
	}
	q, err := g.quests.Start(offered[i].Def.ID, g.hero)
	if err != nil {
		g.console.Printf("Could not start quest: %v", err)
	} else {
		g.console.Printf("Quest accepted: %s!", q.Def.Name)
		g.log.WithField("quest", q.Def.ID).Info("quest started")
	}
	return ui.Pause(g.console)
}

// inventoryMenu shows spare weapons and lets the player equip one.
func (g *Game) inventoryMenu() error {
	h := g.hero
	g.console.Title(h.Name + "'s Inventory")
	g.console.Printf("Current Weapon: %s (%d damage)", h.Weapon.Name, h.Weapon.Damage)
	g.console.Printf("Gold: %d", h.Gold)
	g.console.Printf("Potions: %d", h.Potions)
	if len(h.Spells) > 0 {
		names := make([]string, len(h.Spells))
		for i, s := range h.Spells {
			names[i] = s.Name
		}
		g.console.Printf("Spells: %s", strings.Join(names, ", "))
	}

	if len(h.Inventory) == 0 {
		g.console.Println("Inventory is empty.")
		return ui.Pause(g.console)
	}
	options := make([]string, 0, len(h.Inventory)+1)
	for _, w := range h.Inventory {
		options = append(options, fmt.Sprintf("Equip %s - %d damage", w.Name, w.Damage))
	}
	options = append(options, "Exit inventory")

	i, err := ui.Menu(g.console, "Weapons", options)
	if err != nil || i == len(h.Inventory) {
		return err
	}
	w, err := h.EquipFromInventory(i)
	if err != nil {
		g.console.Printf("Could not equip: %v", err)
	} else {
		g.console.Printf("Equipped %s!", w.Name)
	}
	return ui.Pause(g.console)
}

// skillMenu spends skill points one at a time.
func (g *Game) skillMenu() error {
	for {
		h := g.hero
		if h.SkillPoints == 0 {
			g.console.Println("You have no skill points to spend.")
			return ui.Pause(g.console)
		}
		g.console.Printf("Skill points available: %d", h.SkillPoints)

		options := make([]string, 0, len(gamedata.AllSkills)+1)
		for _, s := range gamedata.AllSkills {
			options = append(options, fmt.Sprintf("%s (%d)", skillLabel(s), h.Skill(s)))
		}
		options = append(options, "Done")

		i, err := ui.Menu(g.console, "Skills", options)
		if err != nil || i == len(gamedata.AllSkills) {
			return err
		}
		skill := gamedata.AllSkills[i]
		if err := h.AllocateSkill(skill); err != nil {
			g.console.Printf("Could not allocate: %v", err)
			continue
		}
		g.console.Printf("%s increased to %d!", skillLabel(skill), h.Skill(skill))
	}
}

func skillLabel(s gamedata.Skill) string {
	name := string(s)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func (g *Game) questLog() {
	g.console.Title("Quest Log")
	active := g.quests.Active()
	available := g.quests.Available(g.hero)
	completed := g.quests.Completed()

	if len(active) > 0 {
		g.console.Println("Active Quests:")
		for _, q := range active {
			g.console.Printf("  %s (%d/%d objectives)", q.Def.Name, q.DoneCount(), len(q.Def.Objectives))
			for _, o := range q.Objectives(g.hero) {
				mark := " "
				if o.Done() {
					mark = "x"
				}
				g.console.Printf("    [%s] %s (%d/%d)", mark, o.Def.Description, min(o.Current, o.Def.Target), o.Def.Target)
			}
		}
	}
	if len(available) > 0 {
		g.console.Println("Available Quests:")
		for _, q := range available {
			g.console.Printf("  %s - %s", q.Def.Name, q.Def.Description)
		}
	}
	if len(completed) > 0 {
		g.console.Printf("Completed Quests: %d", len(completed))
		for _, q := range completed {
			g.console.Printf("  %s", q.Def.Name)
		}
	}
	if len(active)+len(available)+len(completed) == 0 {
		g.console.Println("No quests available at your current level.")
	}
}

func (g *Game) achievementList() {
	unlocked, total := g.achievements.Progress()
	g.console.Title(fmt.Sprintf("Achievements (%d/%d)", unlocked, total))
	for _, a := range g.achievements.All() {
		mark := " "
		if a.Unlocked {
			mark = "*"
		}
		g.console.Printf("[%s] %s - %s", mark, a.Def.Name, a.Def.Description)
	}
}

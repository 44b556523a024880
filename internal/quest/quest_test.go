package quest

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/juanmuller24/text-based-battle/internal/entity"
	"github.com/juanmuller24/text-based-battle/internal/gamedata"
)

func newTestLog(t *testing.T) (*Log, *entity.Hero) {
	t.Helper()
	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return NewLog(catalog.Quests), entity.NewHero("Ayla", catalog.Weapons.Fallback())
}

func TestAvailableByLevel(t *testing.T) {
	log, hero := newTestLog(t)

	if got := len(log.Available(hero)); got != 1 {
		t.Errorf("level 1: %d available, want 1 (first_steps)", got)
	}
	hero.Level = 2
	if got := len(log.Available(hero)); got != 3 {
		t.Errorf("level 2: %d available, want 3", got)
	}
	hero.Level = 5
	if got := len(log.Available(hero)); got != 5 {
		t.Errorf("level 5: %d available, want 5", got)
	}
}

func TestStart(t *testing.T) {
	log, hero := newTestLog(t)

	if _, err := log.Start("master_adventurer", hero); !errors.Is(err, ErrCannotStart) {
		t.Errorf("underleveled start error = %v, want ErrCannotStart", err)
	}
	if _, err := log.Start("slay_the_moon", hero); !errors.Is(err, ErrUnknownQuest) {
		t.Errorf("unknown quest error = %v, want ErrUnknownQuest", err)
	}

	q, err := log.Start("first_steps", hero)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if q.Status != StatusActive {
		t.Errorf("Status = %s, want active", q.Status)
	}
	if _, err := log.Start("first_steps", hero); !errors.Is(err, ErrCannotStart) {
		t.Errorf("restart error = %v, want ErrCannotStart", err)
	}
}

func TestUpdateCompletesAndRewards(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	log, hero := newTestLog(t)
	if _, err := log.Start("first_steps", hero); err != nil {
		t.Fatalf("Start: %v", err)
	}

	hero.Stats.BattlesWon = 1
	if done := log.Update(hero, rng); len(done) != 0 {
		t.Fatalf("completed with one objective left: %v", done)
	}
	q := log.Get("first_steps")
	if q.DoneCount() != 1 {
		t.Errorf("DoneCount = %d, want 1", q.DoneCount())
	}

	hero.Stats.ItemsPurchased = 1
	done := log.Update(hero, rng)
	if len(done) != 1 {
		t.Fatalf("len(done) = %d, want 1", len(done))
	}
	if q.Status != StatusCompleted {
		t.Errorf("Status = %s, want completed", q.Status)
	}
	if hero.Gold != 150 || hero.Experience != 50 || hero.SkillPoints != 1 {
		t.Errorf("gold=%d exp=%d points=%d, want 150/50/1", hero.Gold, hero.Experience, hero.SkillPoints)
	}

	if again := log.Update(hero, rng); len(again) != 0 {
		t.Errorf("quest completed twice")
	}
}

func TestObjectivesStayMet(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	log, hero := newTestLog(t)
	hero.Level = 8
	q, err := log.Start("master_adventurer", hero)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	hero.Gold = 1000
	if done := log.Update(hero, rng); len(done) != 0 {
		t.Fatalf("completed without a boss kill")
	}
	if q.DoneCount() != 2 {
		t.Errorf("DoneCount = %d, want 2", q.DoneCount())
	}

	// Spending the gold does not undo the objective.
	hero.Gold = 100
	hero.Stats.BossKills = 1
	done := log.Update(hero, rng)
	if len(done) != 1 {
		t.Fatalf("len(done) = %d, want 1", len(done))
	}
	if q.Status != StatusCompleted {
		t.Errorf("Status = %s, want completed", q.Status)
	}
	if hero.Gold != 1100 {
		t.Errorf("Gold = %d, want 1100", hero.Gold)
	}
	for _, o := range q.Objectives(hero) {
		if !o.Done() {
			t.Errorf("objective %q not done", o.Def.Description)
		}
	}
}

func TestInactiveQuestsNeverComplete(t *testing.T) {
	log, hero := newTestLog(t)
	hero.Stats.BattlesWon = 10
	hero.Stats.ItemsPurchased = 10

	if done := log.Update(hero, rand.New(rand.NewSource(1))); len(done) != 0 {
		t.Errorf("quest completed without being started")
	}
}

func TestNPCOffers(t *testing.T) {
	log, hero := newTestLog(t)

	if len(log.NPCs()) != 4 {
		t.Fatalf("len(NPCs) = %d, want 4", len(log.NPCs()))
	}
	elder := log.NPC("village_elder")
	if elder == nil {
		t.Fatal("village_elder missing")
	}
	offers := log.OfferedBy(elder, hero)
	if len(offers) != 1 || offers[0].Def.ID != "first_steps" {
		t.Errorf("elder offers %d quests, want [first_steps]", len(offers))
	}
	if got := log.Greeting(elder, hero); got != "Village Elder has a task for you..." {
		t.Errorf("Greeting = %q", got)
	}

	wizard := log.NPC("court_wizard")
	if got := log.Greeting(wizard, hero); got != "Court Wizard nods at you respectfully." {
		t.Errorf("Greeting = %q", got)
	}
}

func TestStatusesRoundTrip(t *testing.T) {
	log, hero := newTestLog(t)
	if _, err := log.Start("first_steps", hero); err != nil {
		t.Fatalf("Start: %v", err)
	}
	saved := log.Statuses()
	if len(saved) != 1 || saved["first_steps"] != StatusActive {
		t.Fatalf("Statuses = %v", saved)
	}

	restored, _ := newTestLog(t)
	saved["ghost_quest"] = StatusCompleted
	saved["spell_caster"] = Status("failed")
	restored.Restore(saved)

	if restored.Get("first_steps").Status != StatusActive {
		t.Error("first_steps not restored")
	}
	if restored.Get("spell_caster").Status != StatusNotStarted {
		t.Error("invalid status should be ignored")
	}
	if restored.Get("first_steps").DoneCount() != 0 {
		t.Error("restored active quest has objectives met")
	}
}

func TestRestoreCompletedMarksObjectives(t *testing.T) {
	log, hero := newTestLog(t)
	log.Restore(map[string]Status{"first_steps": StatusCompleted})

	q := log.Get("first_steps")
	if q.DoneCount() != len(q.Def.Objectives) {
		t.Errorf("DoneCount = %d, want %d", q.DoneCount(), len(q.Def.Objectives))
	}
	if done := log.Update(hero, rand.New(rand.NewSource(1))); len(done) != 0 {
		t.Error("restored completed quest paid out again")
	}
}

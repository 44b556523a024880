// Package achievement unlocks one-time milestones as the hero progresses.
package achievement

import (
	"math/rand"

	"github.com/juanmuller24/text-based-battle/internal/entity"
	"github.com/juanmuller24/text-based-battle/internal/gamedata"
)

// Achievement is a milestone definition and whether it has been earned.
type Achievement struct {
	Def      *gamedata.AchievementDef
	Unlocked bool
}

// Met reports whether the hero has reached the threshold.
func (a *Achievement) Met(hero *entity.Hero) bool {
	return hero.Metric(a.Def.Metric) >= a.Def.Threshold
}

// Unlock reports an achievement earned by the latest check.
type Unlock struct {
	Achievement *Achievement
	Levels      []entity.LevelUp // From the experience reward
}

// Tracker holds every achievement in definition order.
type Tracker struct {
	list []*Achievement
}

// NewTracker creates a tracker with nothing unlocked.
func NewTracker(defs []gamedata.AchievementDef) *Tracker {
	t := &Tracker{list: make([]*Achievement, 0, len(defs))}
	for i := range defs {
		t.list = append(t.list, &Achievement{Def: &defs[i]})
	}
	return t
}

// Check unlocks every achievement the hero now qualifies for and pays its
// reward. An achievement unlocks at most once. Achievements are checked in
// order, so a reward can unlock a later one in the same call.
func (t *Tracker) Check(hero *entity.Hero, rng *rand.Rand) []Unlock {
	var unlocked []Unlock
	for _, a := range t.list {
		if a.Unlocked || !a.Met(hero) {
			continue
		}
		a.Unlocked = true
		hero.Gold += a.Def.RewardGold
		unlocked = append(unlocked, Unlock{
			Achievement: a,
			Levels:      hero.GainExperience(a.Def.RewardExp, rng),
		})
	}
	return unlocked
}

// All returns every achievement.
func (t *Tracker) All() []*Achievement { return t.list }

// Progress returns how many achievements are unlocked out of the total.
func (t *Tracker) Progress() (unlocked, total int) {
	for _, a := range t.list {
		if a.Unlocked {
			unlocked++
		}
	}
	return unlocked, len(t.list)
}

// UnlockedIDs returns the IDs of unlocked achievements for saving.
func (t *Tracker) UnlockedIDs() []string {
	ids := []string{}
	for _, a := range t.list {
		if a.Unlocked {
			ids = append(ids, a.Def.ID)
		}
	}
	return ids
}

// Restore marks saved achievements unlocked without paying rewards again.
// Unknown IDs are skipped.
func (t *Tracker) Restore(ids []string) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for _, a := range t.list {
		if want[a.Def.ID] {
			a.Unlocked = true
		}
	}
}

// Package quest tracks quests offered by NPCs and pays out their rewards.
package quest

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/juanmuller24/text-based-battle/internal/entity"
	"github.com/juanmuller24/text-based-battle/internal/gamedata"
)

// Status is where a quest stands for the hero.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusActive     Status = "active"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusActive, StatusCompleted:
		return true
	default:
		return false
	}
}

const completionSkillPoints = 1

var (
	// ErrUnknownQuest is returned for a quest ID not in the log.
	ErrUnknownQuest = errors.New("unknown quest")
	// ErrCannotStart is returned when a quest is underleveled or already taken.
	ErrCannotStart = errors.New("quest cannot be started")
)

// Quest is a quest definition plus the hero's standing on it.
type Quest struct {
	Def    *gamedata.QuestDef
	Status Status
	met    []bool // Latched per objective; set by Log.Update while active
}

// Objective is one quest goal with the hero's current value.
type Objective struct {
	Def     *gamedata.ObjectiveDef
	Current int
	Met     bool
}

// Done reports whether the objective has been met. Once met it stays met,
// even if the hero's value later drops below the target.
func (o Objective) Done() bool { return o.Met }

// Objectives returns the quest goals measured against the hero.
func (q *Quest) Objectives(hero *entity.Hero) []Objective {
	out := make([]Objective, len(q.Def.Objectives))
	for i := range q.Def.Objectives {
		def := &q.Def.Objectives[i]
		out[i] = Objective{Def: def, Current: hero.Metric(def.Metric), Met: q.met[i]}
	}
	return out
}

// DoneCount returns how many objectives have been met.
func (q *Quest) DoneCount() int {
	n := 0
	for _, m := range q.met {
		if m {
			n++
		}
	}
	return n
}

// latch marks every objective the hero currently meets.
func (q *Quest) latch(hero *entity.Hero) {
	for i, def := range q.Def.Objectives {
		if !q.met[i] && hero.Metric(def.Metric) >= def.Target {
			q.met[i] = true
		}
	}
}

// CanStart reports whether the hero may take the quest now.
func (q *Quest) CanStart(hero *entity.Hero) bool {
	return q.Status == StatusNotStarted && hero.Level >= q.Def.PrerequisiteLevel
}

// Completion reports a quest that was just finished and what it paid.
type Completion struct {
	Quest       *Quest
	Gold        int
	Experience  int
	SkillPoints int
	Levels      []entity.LevelUp
}

// Log holds every quest and the NPCs that give them.
type Log struct {
	quests []*Quest
	byID   map[string]*Quest
	npcs   []gamedata.NPCDef
}

// NewLog creates a log with every quest not started.
func NewLog(file *gamedata.QuestsFile) *Log {
	l := &Log{
		quests: make([]*Quest, 0, len(file.Quests)),
		byID:   make(map[string]*Quest, len(file.Quests)),
		npcs:   file.NPCs,
	}
	for i := range file.Quests {
		q := &Quest{
			Def:    &file.Quests[i],
			Status: StatusNotStarted,
			met:    make([]bool, len(file.Quests[i].Objectives)),
		}
		l.quests = append(l.quests, q)
		l.byID[q.Def.ID] = q
	}
	return l
}

// Get returns the quest with the given ID, or nil.
func (l *Log) Get(id string) *Quest { return l.byID[id] }

// All returns every quest in definition order.
func (l *Log) All() []*Quest { return l.quests }

// Available returns quests the hero may start.
func (l *Log) Available(hero *entity.Hero) []*Quest {
	return l.filter(func(q *Quest) bool { return q.CanStart(hero) })
}

// Active returns quests in progress.
func (l *Log) Active() []*Quest {
	return l.filter(func(q *Quest) bool { return q.Status == StatusActive })
}

// Completed returns finished quests.
func (l *Log) Completed() []*Quest {
	return l.filter(func(q *Quest) bool { return q.Status == StatusCompleted })
}

func (l *Log) filter(keep func(*Quest) bool) []*Quest {
	var out []*Quest
	for _, q := range l.quests {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

// Start activates a quest.
func (l *Log) Start(id string, hero *entity.Hero) (*Quest, error) {
	q := l.byID[id]
	if q == nil {
		return nil, fmt.Errorf("start %q: %w", id, ErrUnknownQuest)
	}
	if !q.CanStart(hero) {
		return nil, fmt.Errorf("start %s: %w", q.Def.Name, ErrCannotStart)
	}
	q.Status = StatusActive
	return q, nil
}

// Update records the objectives the hero meets on every active quest, then
// completes those with all objectives met and pays their rewards: gold,
// experience and a skill point.
func (l *Log) Update(hero *entity.Hero, rng *rand.Rand) []Completion {
	var done []Completion
	for _, q := range l.Active() {
		q.latch(hero)
		if q.DoneCount() < len(q.Def.Objectives) {
			continue
		}
		q.Status = StatusCompleted
		c := Completion{
			Quest:       q,
			Gold:        q.Def.RewardGold,
			Experience:  q.Def.RewardExp,
			SkillPoints: completionSkillPoints,
		}
		hero.Gold += c.Gold
		c.Levels = hero.GainExperience(c.Experience, rng)
		hero.SkillPoints += c.SkillPoints
		done = append(done, c)
	}
	return done
}

// NPCs returns the quest givers.
func (l *Log) NPCs() []gamedata.NPCDef { return l.npcs }

// NPC returns the quest giver with the given ID, or nil.
func (l *Log) NPC(id string) *gamedata.NPCDef {
	for i := range l.npcs {
		if l.npcs[i].ID == id {
			return &l.npcs[i]
		}
	}
	return nil
}

// OfferedBy returns the quests an NPC can give the hero right now.
func (l *Log) OfferedBy(npc *gamedata.NPCDef, hero *entity.Hero) []*Quest {
	var out []*Quest
	for _, id := range npc.Quests {
		if q := l.byID[id]; q != nil && q.CanStart(hero) {
			out = append(out, q)
		}
	}
	return out
}

// Greeting returns what an NPC says depending on whether they have work.
func (l *Log) Greeting(npc *gamedata.NPCDef, hero *entity.Hero) string {
	if len(l.OfferedBy(npc, hero)) > 0 {
		return npc.Name + " has a task for you..."
	}
	return npc.Name + " nods at you respectfully."
}

// Statuses returns the status of every quest that has been touched.
func (l *Log) Statuses() map[string]Status {
	out := make(map[string]Status)
	for _, q := range l.quests {
		if q.Status != StatusNotStarted {
			out[q.Def.ID] = q.Status
		}
	}
	return out
}

// Restore applies saved statuses. Unknown quest IDs and statuses are skipped.
// Objective progress is not saved: completed quests have every objective
// met, active ones start over and latch again on the next Update.
func (l *Log) Restore(statuses map[string]Status) {
	for id, status := range statuses {
		q := l.byID[id]
		if q == nil || !status.Valid() {
			continue
		}
		q.Status = status
		for i := range q.met {
			q.met[i] = status == StatusCompleted
		}
	}
}

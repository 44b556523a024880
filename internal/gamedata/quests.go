package gamedata

// Metric names a hero statistic that quests and achievements measure.
type Metric string

const (
	MetricBattlesWon        Metric = "battles_won"
	MetricBattlesFought     Metric = "battles_fought"
	MetricItemsPurchased    Metric = "items_purchased"
	MetricLevel             Metric = "level"
	MetricSpellsKnown       Metric = "spells_known"
	MetricSpellsCast        Metric = "spells_cast"
	MetricDungeonsCompleted Metric = "dungeons_completed"
	MetricEliteKills        Metric = "elite_kills"
	MetricBossKills         Metric = "boss_kills"
	MetricGold              Metric = "gold"
)

// ObjectiveDef is one measurable goal of a quest.
type ObjectiveDef struct {
	Description string `yaml:"description"`
	Metric      Metric `yaml:"metric"`
	Target      int    `yaml:"target"`
}

// QuestDef defines a quest loaded from YAML.
type QuestDef struct {
	ID                string         `yaml:"id"`
	Name              string         `yaml:"name"`
	Description       string         `yaml:"description"`
	Objectives        []ObjectiveDef `yaml:"objectives"`
	RewardGold        int            `yaml:"reward_gold"`
	RewardExp         int            `yaml:"reward_exp"`
	PrerequisiteLevel int            `yaml:"prerequisite_level"`
}

// NPCDef defines a quest giver.
type NPCDef struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Quests      []string `yaml:"quests"`
}

// QuestsFile represents the structure of quests.yaml.
type QuestsFile struct {
	Quests []QuestDef `yaml:"quests"`
	NPCs   []NPCDef   `yaml:"npcs"`
}

// LoadQuests loads quest and NPC definitions from the embedded quests.yaml file.
func LoadQuests() (*QuestsFile, error) {
	file, err := Load[QuestsFile]("quests.yaml")
	if err != nil {
		return nil, err
	}
	return &file, nil
}

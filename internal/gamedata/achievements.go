package gamedata

// AchievementDef defines an achievement loaded from YAML.
type AchievementDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Metric      Metric `yaml:"metric"`
	Threshold   int    `yaml:"threshold"`
	RewardGold  int    `yaml:"reward_gold"`
	RewardExp   int    `yaml:"reward_exp"`
}

// AchievementsFile represents the structure of achievements.yaml.
type AchievementsFile struct {
	Achievements []AchievementDef `yaml:"achievements"`
}

// LoadAchievements loads achievement definitions from the embedded achievements.yaml file.
func LoadAchievements() ([]AchievementDef, error) {
	file, err := Load[AchievementsFile]("achievements.yaml")
	if err != nil {
		return nil, err
	}
	return file.Achievements, nil
}

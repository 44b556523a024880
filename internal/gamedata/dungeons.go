package gamedata

// RoomType classifies a dungeon room.
type RoomType string

const (
	RoomNormal   RoomType = "normal"
	RoomTreasure RoomType = "treasure"
	RoomBoss     RoomType = "boss"
	RoomRest     RoomType = "rest"
)

// TreasureKind says what a treasure room pays out.
type TreasureKind string

const (
	TreasureGold       TreasureKind = "gold"
	TreasurePotion     TreasureKind = "potion"
	TreasureExperience TreasureKind = "experience"
)

// DungeonDef defines a dungeon and the level band of its enemies.
type DungeonDef struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	MinLevel int    `yaml:"min_level"`
	MaxLevel int    `yaml:"max_level"`
}

// RoomStyle holds the flavor text for one room type.
type RoomStyle struct {
	Names       []string `yaml:"names"`
	Description string   `yaml:"description"`
}

// TreasureDef defines a treasure payout range.
type TreasureDef struct {
	Kind TreasureKind `yaml:"kind"`
	Name string       `yaml:"name"`
	Min  int          `yaml:"min"`
	Max  int          `yaml:"max"`
}

// DungeonsFile represents the structure of dungeons.yaml.
type DungeonsFile struct {
	Dungeons  []DungeonDef           `yaml:"dungeons"`
	Rooms     map[RoomType]RoomStyle `yaml:"rooms"`
	Treasures []TreasureDef          `yaml:"treasures"`
}

// LoadDungeons loads dungeon definitions from the embedded dungeons.yaml file.
func LoadDungeons() (*DungeonsFile, error) {
	file, err := Load[DungeonsFile]("dungeons.yaml")
	if err != nil {
		return nil, err
	}
	return &file, nil
}

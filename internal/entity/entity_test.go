package entity

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/juanmuller24/text-based-battle/internal/gamedata"
)

var (
	testFists = &gamedata.WeaponDef{ID: "fists", Name: "Fists", Type: gamedata.WeaponBlunt, Damage: 2, CritChance: 0.05}
	testSword = &gamedata.WeaponDef{ID: "iron_sword", Name: "Iron Sword", Type: gamedata.WeaponSharp, Damage: 5, CritChance: 0.1, Value: 10}
	testStaff = &gamedata.WeaponDef{ID: "magic_staff", Name: "Magic Staff", Type: gamedata.WeaponMagic, Damage: 6, CritChance: 0.1, Value: 30}
	testHeal  = &gamedata.SpellDef{ID: "heal", Name: "Heal", Kind: gamedata.SpellHeal, Magnitude: 25, ManaCost: 20}
	testMage  = &gamedata.ClassDef{
		ID:      gamedata.ClassMage,
		Name:    "Mage",
		Bonuses: map[gamedata.Skill]int{gamedata.SkillStrength: -2, gamedata.SkillAgility: 1, gamedata.SkillIntelligence: 6, gamedata.SkillLuck: 1},
	}
)

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		name      string
		health    int
		damage    int
		wantTaken int
		wantHP    int
		wantAlive bool
	}{
		{"partial", 50, 20, 20, 30, true},
		{"exact", 50, 50, 50, 0, false},
		{"overkill", 50, 80, 50, 0, false},
		{"negative", 50, -5, 0, 50, true},
		{"zero", 50, 0, 0, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCharacter("Target", tt.health, 1, testFists)
			got := c.TakeDamage(tt.damage)
			if got != tt.wantTaken {
				t.Errorf("TakeDamage(%d) = %d, want %d", tt.damage, got, tt.wantTaken)
			}
			if c.Health != tt.wantHP {
				t.Errorf("Health = %d, want %d", c.Health, tt.wantHP)
			}
			if c.IsAlive() != tt.wantAlive {
				t.Errorf("IsAlive() = %v, want %v", c.IsAlive(), tt.wantAlive)
			}
		})
	}
}

func TestTakeDamageWhenDead(t *testing.T) {
	c := NewCharacter("Target", 10, 1, testFists)
	c.TakeDamage(10)
	if got := c.TakeDamage(5); got != 0 {
		t.Errorf("TakeDamage on dead character = %d, want 0", got)
	}
	if c.Health != 0 {
		t.Errorf("Health = %d, want 0", c.Health)
	}
}

func TestHeal(t *testing.T) {
	c := NewCharacter("Target", 100, 1, testFists)
	c.TakeDamage(30)

	if got := c.Heal(10); got != 10 {
		t.Errorf("Heal(10) = %d, want 10", got)
	}
	if got := c.Heal(100); got != 20 {
		t.Errorf("Heal(100) = %d, want 20 (capped at max)", got)
	}
	if c.Health != c.MaxHealth {
		t.Errorf("Health = %d, want %d", c.Health, c.MaxHealth)
	}

	c.TakeDamage(200)
	if got := c.Heal(50); got != 0 {
		t.Errorf("Heal on dead character = %d, want 0", got)
	}
	if c.Health != 0 {
		t.Errorf("dead character healed to %d", c.Health)
	}
}

func TestSpendMana(t *testing.T) {
	c := NewCharacter("Caster", 100, 1, testFists)
	if !c.SpendMana(20) {
		t.Fatal("SpendMana(20) with 50 mana should succeed")
	}
	if c.Mana != 30 {
		t.Errorf("Mana = %d, want 30", c.Mana)
	}
	if c.SpendMana(31) {
		t.Error("SpendMana(31) with 30 mana should fail")
	}
	if c.Mana != 30 {
		t.Errorf("failed SpendMana changed mana to %d", c.Mana)
	}
}

func TestRegenerateMana(t *testing.T) {
	c := NewCharacter("Caster", 100, 1, testFists)
	c.Mana = 10

	if got := c.RegenerateMana(0); got != 5 {
		t.Errorf("RegenerateMana(0) = %d, want 5 (a tenth of 50)", got)
	}
	if got := c.RegenerateMana(100); got != 35 {
		t.Errorf("RegenerateMana(100) = %d, want 35", got)
	}
	if c.Mana != c.MaxMana {
		t.Errorf("Mana = %d, want %d", c.Mana, c.MaxMana)
	}
}

func TestLearnSpellIdempotent(t *testing.T) {
	c := NewCharacter("Caster", 100, 1, testFists)
	if !c.LearnSpell(testHeal) {
		t.Error("first LearnSpell should return true")
	}
	if c.LearnSpell(testHeal) {
		t.Error("second LearnSpell should return false")
	}
	if len(c.Spells) != 1 {
		t.Errorf("len(Spells) = %d, want 1", len(c.Spells))
	}
}

func TestUpdateBuffs(t *testing.T) {
	c := NewCharacter("Caster", 100, 1, testFists)
	c.AddBuff(NewBuff(gamedata.BuffDamageBoost))

	for i := 0; i < BuffDuration-1; i++ {
		if expired := c.UpdateBuffs(); len(expired) != 0 {
			t.Fatalf("update %d: buff expired early", i+1)
		}
		if !c.HasBuff(gamedata.BuffDamageBoost) {
			t.Fatalf("update %d: buff missing", i+1)
		}
	}

	expired := c.UpdateBuffs()
	if len(expired) != 1 || expired[0] != gamedata.BuffDamageBoost {
		t.Errorf("expired = %v, want [damage_boost]", expired)
	}
	if len(c.Buffs) != 0 {
		t.Errorf("len(Buffs) = %d, want 0", len(c.Buffs))
	}
}

func TestBuffDamageMultiplierDoesNotStack(t *testing.T) {
	c := NewCharacter("Caster", 100, 1, testFists)
	if got := c.BuffDamageMultiplier(); got != 1 {
		t.Errorf("no buffs: multiplier = %v, want 1", got)
	}
	c.AddBuff(NewBuff(gamedata.BuffDamageBoost))
	c.AddBuff(NewBuff(gamedata.BuffDamageBoost))
	if got := c.BuffDamageMultiplier(); got != damageBoostMultiplier {
		t.Errorf("two boosts: multiplier = %v, want %v", got, damageBoostMultiplier)
	}
}

func TestGainExperienceCascade(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := NewCharacter("Hero", 100, 1, testFists)

	levels := c.GainExperience(250, rng)
	if len(levels) != 2 {
		t.Fatalf("len(levels) = %d, want 2", len(levels))
	}
	if c.Level != 3 {
		t.Errorf("Level = %d, want 3", c.Level)
	}
	if c.Experience != 0 {
		t.Errorf("Experience = %d, want 0", c.Experience)
	}
	if c.ExperienceToNext != 225 {
		t.Errorf("ExperienceToNext = %d, want 225", c.ExperienceToNext)
	}
	if levels[1].NewLevel != 3 || levels[1].NextThreshold != 225 {
		t.Errorf("second level report = %+v", levels[1])
	}
}

func TestGainExperienceInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewCharacter("Hero", 100, 1, testFists)

	for i := 0; i < 200; i++ {
		c.GainExperience(rng.Intn(400), rng)
		if c.Experience >= c.ExperienceToNext {
			t.Fatalf("after gain %d: experience %d >= threshold %d", i, c.Experience, c.ExperienceToNext)
		}
	}
}

func TestLevelUpGrowth(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	c := NewCharacter("Hero", 100, 1, testFists)
	c.Experience = c.ExperienceToNext
	before := c.Skills.Clone()

	lu := c.LevelUp(rng)
	if lu.HealthGain < levelHealthMin || lu.HealthGain > levelHealthMax {
		t.Errorf("HealthGain = %d, want in [%d,%d]", lu.HealthGain, levelHealthMin, levelHealthMax)
	}
	if c.MaxHealth != 100+lu.HealthGain || c.Health != c.MaxHealth {
		t.Errorf("health = %d/%d after gain %d", c.Health, c.MaxHealth, lu.HealthGain)
	}
	if lu.ManaGain < levelManaMin || lu.ManaGain > levelManaMax {
		t.Errorf("ManaGain = %d, want in [%d,%d]", lu.ManaGain, levelManaMin, levelManaMax)
	}
	for _, s := range gamedata.AllSkills {
		gain := c.Skill(s) - before[s]
		if gain < levelSkillMin || gain > levelSkillMax {
			t.Errorf("%s gain = %d, want in [%d,%d]", s, gain, levelSkillMin, levelSkillMax)
		}
	}
}

func TestLevelUpClassBonus(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	c := NewCharacter("Hero", 100, 2, testFists)
	c.Class = testMage
	before := c.Skills.Clone()

	lu := c.LevelUp(rng)
	if lu.NewLevel != 3 {
		t.Fatalf("NewLevel = %d, want 3", lu.NewLevel)
	}
	if lu.ClassBonus[gamedata.SkillIntelligence] != 2 || lu.ClassBonus[gamedata.SkillLuck] != 1 {
		t.Errorf("ClassBonus = %v, want int+2 luck+1", lu.ClassBonus)
	}
	if got := c.Skill(gamedata.SkillIntelligence) - before[gamedata.SkillIntelligence]; got != lu.SkillGains[gamedata.SkillIntelligence] {
		t.Errorf("intelligence grew %d, report says %d", got, lu.SkillGains[gamedata.SkillIntelligence])
	}
}

func TestNewHeroDefaults(t *testing.T) {
	h := NewHero("Ayla", testFists)
	if h.Health != 100 || h.MaxHealth != 100 {
		t.Errorf("health = %d/%d, want 100/100", h.Health, h.MaxHealth)
	}
	if h.Gold != 50 || h.Potions != 3 || h.Level != 1 {
		t.Errorf("gold=%d potions=%d level=%d, want 50/3/1", h.Gold, h.Potions, h.Level)
	}
	if h.Weapon != testFists {
		t.Errorf("Weapon = %v, want Fists", h.Weapon.Name)
	}
	if h.Class != nil {
		t.Errorf("Class = %v, want nil", h.Class.Name)
	}
	for _, s := range gamedata.AllSkills {
		if h.Skill(s) != defaultSkill {
			t.Errorf("%s = %d, want %d", s, h.Skill(s), defaultSkill)
		}
	}
}

func TestApplyClass(t *testing.T) {
	h := NewHero("Ayla", testFists)
	h.ApplyClass(testMage, testStaff, []*gamedata.SpellDef{testHeal})

	if h.Skill(gamedata.SkillIntelligence) != 16 {
		t.Errorf("intelligence = %d, want 16", h.Skill(gamedata.SkillIntelligence))
	}
	if h.Skill(gamedata.SkillStrength) != 8 {
		t.Errorf("strength = %d, want 8", h.Skill(gamedata.SkillStrength))
	}
	if h.MaxMana != 82 || h.Mana != 82 {
		t.Errorf("mana = %d/%d, want 82/82", h.Mana, h.MaxMana)
	}
	if h.Weapon != testStaff {
		t.Errorf("Weapon = %s, want Magic Staff", h.Weapon.Name)
	}
	if len(h.Inventory) != 0 {
		t.Errorf("Fists should not go to the inventory, got %d items", len(h.Inventory))
	}
	if !h.KnowsSpell(testHeal) {
		t.Error("class spell not learned")
	}
}

func TestEquip(t *testing.T) {
	h := NewHero("Ayla", testFists)
	h.Equip(testSword)
	h.Equip(testStaff)

	if h.Weapon != testStaff {
		t.Errorf("Weapon = %s, want Magic Staff", h.Weapon.Name)
	}
	if len(h.Inventory) != 1 || h.Inventory[0] != testSword {
		t.Fatalf("Inventory = %v, want [Iron Sword]", h.Inventory)
	}

	got, err := h.EquipFromInventory(0)
	if err != nil {
		t.Fatalf("EquipFromInventory: %v", err)
	}
	if got != testSword || h.Weapon != testSword {
		t.Errorf("equipped %s, want Iron Sword", h.Weapon.Name)
	}
	if len(h.Inventory) != 1 || h.Inventory[0] != testStaff {
		t.Errorf("Inventory after swap = %v, want [Magic Staff]", h.Inventory)
	}

	if _, err := h.EquipFromInventory(5); !errors.Is(err, ErrNoSuchItem) {
		t.Errorf("EquipFromInventory(5) error = %v, want ErrNoSuchItem", err)
	}

	h.Unequip()
	if h.Weapon != testFists || len(h.Inventory) != 2 {
		t.Errorf("after Unequip weapon=%s inventory=%d, want Fists/2", h.Weapon.Name, len(h.Inventory))
	}
}

func TestUsePotion(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	h := NewHero("Ayla", testFists)

	if _, err := h.UsePotion(rng); !errors.Is(err, ErrFullHealth) {
		t.Errorf("full health: error = %v, want ErrFullHealth", err)
	}
	if h.Potions != 3 {
		t.Errorf("refused potion consumed: Potions = %d", h.Potions)
	}

	h.TakeDamage(60)
	healed, err := h.UsePotion(rng)
	if err != nil {
		t.Fatalf("UsePotion: %v", err)
	}
	if healed < potionHealMin || healed > potionHealMax {
		t.Errorf("healed %d, want in [%d,%d]", healed, potionHealMin, potionHealMax)
	}
	if h.Potions != 2 {
		t.Errorf("Potions = %d, want 2", h.Potions)
	}

	h.Potions = 0
	if _, err := h.UsePotion(rng); !errors.Is(err, ErrNoPotions) {
		t.Errorf("no potions: error = %v, want ErrNoPotions", err)
	}
}

func TestAllocateSkill(t *testing.T) {
	h := NewHero("Ayla", testFists)
	if err := h.AllocateSkill(gamedata.SkillStrength); !errors.Is(err, ErrNoSkillPoints) {
		t.Errorf("error = %v, want ErrNoSkillPoints", err)
	}

	h.SkillPoints = 2
	if err := h.AllocateSkill(gamedata.Skill("charisma")); !errors.Is(err, ErrUnknownSkill) {
		t.Errorf("error = %v, want ErrUnknownSkill", err)
	}
	if err := h.AllocateSkill(gamedata.SkillIntelligence); err != nil {
		t.Fatalf("AllocateSkill: %v", err)
	}
	if h.Skill(gamedata.SkillIntelligence) != 11 || h.MaxMana != 52 || h.SkillPoints != 1 {
		t.Errorf("int=%d max_mana=%d points=%d, want 11/52/1",
			h.Skill(gamedata.SkillIntelligence), h.MaxMana, h.SkillPoints)
	}
}

func TestNewEnemyTiers(t *testing.T) {
	elite := &gamedata.EnemyTypeDef{ID: gamedata.EnemyElite, Prefix: "Elite", HealthMultiplier: 1.5, GoldMultiplier: 2}
	boss := &gamedata.EnemyTypeDef{ID: gamedata.EnemyBoss, Prefix: "Boss", HealthMultiplier: 2.5, GoldMultiplier: 3}

	tests := []struct {
		name       string
		typeDef    *gamedata.EnemyTypeDef
		health     int
		wantHealth int
		goldMult   int
	}{
		{"normal", nil, 75, 75, 1},
		{"elite", elite, 75, 112, 2},
		{"boss", boss, 75, 187, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(9))
			e := NewEnemy("Goblin", tt.health, 2, testSword, tt.typeDef, rng)
			if e.MaxHealth != tt.wantHealth || e.Health != tt.wantHealth {
				t.Errorf("health = %d/%d, want %d", e.Health, e.MaxHealth, tt.wantHealth)
			}
			lo, hi := 2*enemyGoldMin*tt.goldMult, 2*enemyGoldMax*tt.goldMult
			if e.Gold < lo || e.Gold > hi || e.Gold%tt.goldMult != 0 {
				t.Errorf("Gold = %d, want multiple of %d in [%d,%d]", e.Gold, tt.goldMult, lo, hi)
			}
		})
	}
}

func TestEnemyChooseActionRate(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	e := NewEnemy("Goblin", 80, 1, testSword, nil, rng)

	const trials = 10000
	waits := 0
	for i := 0; i < trials; i++ {
		if e.ChooseAction(rng) == EnemyWait {
			waits++
		}
	}
	rate := float64(waits) / trials
	if rate < 0.08 || rate > 0.12 {
		t.Errorf("wait rate = %.3f, want about %.2f", rate, enemySkipRate)
	}
}

func TestHeroMetric(t *testing.T) {
	h := NewHero("Ayla", testFists)
	h.Stats.BattlesWon = 4
	h.LearnSpell(testHeal)
	h.RecordKill(&Enemy{Type: gamedata.EnemyBoss})

	tests := []struct {
		metric gamedata.Metric
		want   int
	}{
		{gamedata.MetricBattlesWon, 4},
		{gamedata.MetricLevel, 1},
		{gamedata.MetricGold, 50},
		{gamedata.MetricSpellsKnown, 1},
		{gamedata.MetricBossKills, 1},
		{gamedata.MetricEliteKills, 0},
		{gamedata.Metric("unknown"), 0},
	}
	for _, tt := range tests {
		if got := h.Metric(tt.metric); got != tt.want {
			t.Errorf("Metric(%s) = %d, want %d", tt.metric, got, tt.want)
		}
	}
}

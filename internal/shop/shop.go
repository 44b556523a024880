// Package shop sells weapons, spells and potions to the hero.
package shop

import (
	"errors"
	"fmt"

	"github.com/juanmuller24/text-based-battle/internal/entity"
	"github.com/juanmuller24/text-based-battle/internal/gamedata"
)

var (
	// ErrNotEnoughGold is returned when the hero cannot afford an item.
	ErrNotEnoughGold = errors.New("not enough gold")
	// ErrAlreadyKnown is returned when buying a spell the hero already knows.
	ErrAlreadyKnown = errors.New("spell already known")
	// ErrNotForSale is returned for an out-of-range listing.
	ErrNotForSale = errors.New("item not for sale")
)

// Shop is the town merchant. Its stock never runs out.
type Shop struct {
	weapons     []*gamedata.WeaponDef
	spells      []*gamedata.SpellDef
	potionPrice int
}

// New creates a shop stocked from the catalog listing.
func New(catalog *gamedata.Catalog) *Shop {
	return &Shop{
		weapons:     catalog.Weapons.GetMultiple(catalog.Shop.Weapons),
		spells:      catalog.Spells.GetMultiple(catalog.Shop.Spells),
		potionPrice: catalog.Shop.PotionPrice,
	}
}

// Weapons returns the weapons for sale in listing order.
func (s *Shop) Weapons() []*gamedata.WeaponDef { return s.weapons }

// Spells returns the spells for sale in listing order.
func (s *Shop) Spells() []*gamedata.SpellDef { return s.spells }

// PotionPrice returns the price of one healing potion.
func (s *Shop) PotionPrice() int { return s.potionPrice }

// BuyWeapon sells the weapon at index; it goes to the hero's inventory.
func (s *Shop) BuyWeapon(hero *entity.Hero, index int) (*gamedata.WeaponDef, error) {
	if index < 0 || index >= len(s.weapons) {
		return nil, ErrNotForSale
	}
	weapon := s.weapons[index]
	if err := charge(hero, weapon.Value); err != nil {
		return nil, fmt.Errorf("buy %s: %w", weapon.Name, err)
	}
	hero.Inventory = append(hero.Inventory, weapon)
	hero.Stats.ItemsPurchased++
	return weapon, nil
}

// BuySpell sells the spell at index and teaches it to the hero.
func (s *Shop) BuySpell(hero *entity.Hero, index int) (*gamedata.SpellDef, error) {
	if index < 0 || index >= len(s.spells) {
		return nil, ErrNotForSale
	}
	spell := s.spells[index]
	if hero.KnowsSpell(spell) {
		return nil, fmt.Errorf("buy %s: %w", spell.Name, ErrAlreadyKnown)
	}
	if err := charge(hero, spell.Value); err != nil {
		return nil, fmt.Errorf("buy %s: %w", spell.Name, err)
	}
	hero.LearnSpell(spell)
	hero.Stats.ItemsPurchased++
	return spell, nil
}

// BuyPotion sells one healing potion.
func (s *Shop) BuyPotion(hero *entity.Hero) error {
	if err := charge(hero, s.potionPrice); err != nil {
		return fmt.Errorf("buy potion: %w", err)
	}
	hero.Potions++
	hero.Stats.ItemsPurchased++
	return nil
}

func charge(hero *entity.Hero, price int) error {
	if hero.Gold < price {
		return ErrNotEnoughGold
	}
	hero.Gold -= price
	return nil
}

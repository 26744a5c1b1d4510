// internal/system/market.go
package system

import (
	"errors"
	"log"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/defs"
	"go-merge-defense/internal/entity"
	"go-merge-defense/internal/event"
	"go-merge-defense/internal/interfaces"
	"go-merge-defense/internal/utils"
)

var ErrSlotUnavailable = errors.New("market slot unavailable")

// MarketSystem rolls the shop offers and sells them into the inventory.
type MarketSystem struct {
	catalog         *defs.MarketCatalog
	slots           []component.MarketSlot
	loot            *utils.LootRoller
	wallet          interfaces.Wallet
	leveler         Leveler
	inventory       interfaces.Inventory
	eventDispatcher *event.Dispatcher
	rerollCost      int
	levelUpCost     int
}

// Leveler buys player levels.
type Leveler interface {
	GainLevel(cost int) error
}

func NewMarketSystem(catalog *defs.MarketCatalog, tuning defs.Tuning, loot *utils.LootRoller, wallet interfaces.Wallet, leveler Leveler, inventory interfaces.Inventory, eventDispatcher *event.Dispatcher) *MarketSystem {
	return &MarketSystem{
		catalog:         catalog,
		slots:           make([]component.MarketSlot, tuning.Market.Slots),
		loot:            loot,
		wallet:          wallet,
		leveler:         leveler,
		inventory:       inventory,
		eventDispatcher: eventDispatcher,
		rerollCost:      tuning.Economy.RerollCost,
		levelUpCost:     tuning.Economy.LevelUpBaseCost,
	}
}

// Renew rolls a fresh set of offers for the player's current level, free of charge.
func (s *MarketSystem) Renew() {
	tags := s.loot.Roll(s.catalog.TableFor(s.wallet.GetPlayerLevel()), len(s.slots))
	for i := range s.slots {
		s.slots[i] = component.MarketSlot{Index: i}
		if i >= len(tags) {
			continue
		}
		product, ok := s.catalog.Product(tags[i])
		if !ok {
			continue
		}
		s.slots[i] = component.MarketSlot{
			Index:   i,
			Tag:     product.Template.Tag,
			Name:    product.Template.DisplayName(),
			Tier:    product.Template.Tier,
			Rarity:  product.Rarity,
			Price:   product.Price,
			Enabled: true,
		}
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.MarketRenewed})
}

// Reroll pays the reroll cost and renews the offers.
func (s *MarketSystem) Reroll() error {
	if !s.wallet.CheckGold(s.rerollCost) {
		return ErrNotEnoughGold
	}
	s.wallet.RemoveGold(s.rerollCost)
	s.Renew()
	return nil
}

// Buy sells the offer in slot: it is disabled, paid for, and its item added to the inventory.
func (s *MarketSystem) Buy(slot int) (component.Item, error) {
	if slot < 0 || slot >= len(s.slots) || !s.slots[slot].Enabled {
		return component.Item{}, ErrSlotUnavailable
	}
	offer := s.slots[slot]
	if !s.wallet.CheckGold(offer.Price) {
		return component.Item{}, ErrNotEnoughGold
	}

	s.slots[slot].Enabled = false
	s.wallet.RemoveGold(offer.Price)

	item := entity.Instantiate(defs.ItemTemplate{Tag: offer.Tag, Name: offer.Name, Tier: offer.Tier})
	s.inventory.Add(item)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProductBought, Data: offer})
	return item, nil
}

// BuyLevel buys one player level. Every purchase makes the next one cost one more.
func (s *MarketSystem) BuyLevel() error {
	if err := s.leveler.GainLevel(s.levelUpCost); err != nil {
		return err
	}
	s.levelUpCost++
	log.Printf("Level bought, next level costs %d", s.levelUpCost)
	return nil
}

// Slots returns a copy of the current offers.
func (s *MarketSystem) Slots() []component.MarketSlot {
	return append([]component.MarketSlot(nil), s.slots...)
}

func (s *MarketSystem) LevelUpCost() int {
	return s.levelUpCost
}

func (s *MarketSystem) RerollCost() int {
	return s.rerollCost
}

package game

import "errors"

const (
	// MaxHealth is the health ceiling; new games start here.
	MaxHealth = 100

	// PotionHeal is how much health a health potion restores.
	PotionHeal = 30
)

// ErrItemUnavailable is returned when the player tries to use an item
// they do not carry.
var ErrItemUnavailable = errors.New("item not in inventory")

// State is the mutable record of a single player's progress: health,
// carried items, how many choices they have made, and an item found in
// the story but not yet picked up.
type State struct {
	Health      int
	Inventory   []string
	ChoicesMade int
	FoundItem   string // pending item id, empty if none
}

// NewState returns a fresh state at full health with nothing carried.
func NewState() *State {
	return &State{Health: MaxHealth}
}

// ApplyDamage subtracts amount from health, flooring at zero.
func (s *State) ApplyDamage(amount int) {
	s.Health -= amount
	if s.Health < 0 {
		s.Health = 0
	}
}

// IsDefeated reports whether the player has run out of health.
func (s *State) IsDefeated() bool {
	return s.Health == 0
}

// Has reports whether the inventory contains the given item.
func (s *State) Has(item string) bool {
	for _, it := range s.Inventory {
		if it == item {
			return true
		}
	}
	return false
}

// SetFoundItem marks an item as found and awaiting pickup. Items already
// in the inventory are ignored so a re-mention in the story does not
// produce duplicate pickups. Reports whether the item was actually set.
func (s *State) SetFoundItem(item string) bool {
	if s.Has(item) {
		return false
	}
	s.FoundItem = item
	return true
}

// ConfirmPickup moves the pending found item into the inventory and
// counts it as a choice. Callers must only offer pickup while FoundItem
// is set; with no pending item this is a no-op.
func (s *State) ConfirmPickup() {
	if s.FoundItem == "" {
		return
	}
	s.Inventory = append(s.Inventory, s.FoundItem)
	s.FoundItem = ""
	s.ChoicesMade++
}

// ConsumeHealthPotion removes one health potion from the inventory and
// restores health, capped at MaxHealth. Returns ErrItemUnavailable if
// the player carries none.
func (s *State) ConsumeHealthPotion() error {
	idx := -1
	for i, it := range s.Inventory {
		if it == ItemHealthPotion {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrItemUnavailable
	}
	s.Inventory = append(s.Inventory[:idx], s.Inventory[idx+1:]...)
	s.Health += PotionHeal
	if s.Health > MaxHealth {
		s.Health = MaxHealth
	}
	return nil
}

// RecordChoice counts one player-submitted action.
func (s *State) RecordChoice() {
	s.ChoicesMade++
}

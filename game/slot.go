package game

import (
	"github.com/ohalloran/klondike/deck"
)

// Slot ids for the fixed 14-slot layout
const (
	StockID           = 0
	WasteID           = 1
	FreeID            = 2
	FirstFoundationID = 3
	LastFoundationID  = 6
	FirstTableauID    = 7
	LastTableauID     = 13
	NumSlots          = 14
)

const (
	cardsPerSuit        = 13
	initialStockCount   = 24
	minTableauDealCount = 1
)

// Category represents the kind of pile a slot holds, derived from its id
type Category int

const (
	Stock Category = iota
	Waste
	Free
	Foundation
	Tableau
)

var categoryNames = []string{"Stock", "Waste", "Free", "Foundation", "Tableau"}

func (c Category) String() string {
	return categoryNames[c]
}

// Slot is an ordered stack of cards, bottom to top
type Slot struct {
	ID    int         `json:"id"`
	Cards []deck.Card `json:"cards"`
}

// Category returns the slot's category, fixed for the lifetime of a game
func (s Slot) Category() Category {
	switch {
	case s.ID == StockID:
		return Stock
	case s.ID == WasteID:
		return Waste
	case s.ID == FreeID:
		return Free
	case s.ID >= FirstFoundationID && s.ID <= LastFoundationID:
		return Foundation
	default:
		return Tableau
	}
}

// DropTarget reports whether the slot accepts external drops at the slot
// level. Waste (id 1) is false here but is special-cased as a drop target
// by the drag-end rules.
func (s Slot) DropTarget() bool {
	return s.ID > FreeID
}

// Draggable reports whether the slot's cards may be picked up at the slot
// level. Per-card draggability is further narrowed by the move rules.
func (s Slot) Draggable() bool {
	return s.ID != StockID
}

// TopCard returns the topmost card, if any
func (s Slot) TopCard() (deck.Card, bool) {
	if len(s.Cards) == 0 {
		return deck.Card{}, false
	}
	return s.Cards[len(s.Cards)-1], true
}

func (s Slot) clone() Slot {
	cards := make([]deck.Card, len(s.Cards))
	copy(cards, s.Cards)
	return Slot{ID: s.ID, Cards: cards}
}

func emptySlots() []Slot {
	slots := make([]Slot, NumSlots)
	for i := range slots {
		slots[i] = Slot{ID: i, Cards: []deck.Card{}}
	}
	return slots
}

func cloneSlots(slots []Slot) []Slot {
	next := make([]Slot, len(slots))
	for i, s := range slots {
		next[i] = s.clone()
	}
	return next
}

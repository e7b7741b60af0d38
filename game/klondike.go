package game

import (
	"github.com/ohalloran/klondike/deck"
	"github.com/ohalloran/klondike/protocol"
)

// Game is the engine's view of a solitaire game. All methods are
// synchronous; mutating calls either commit a fully valid transition or
// leave the state untouched.
type Game interface {
	Draw() bool
	DragStart(sourceID, cardIndex int) []deck.Card
	DragEnd(sourceID, cardIndex, targetID int) bool
	Restart()
	Snapshot() []protocol.SlotState
	Dragging() []deck.Card
	Won() bool
}

// DragInfo is the snapshot of an in-flight drag gesture. It exists for the
// UI's visual feedback only and is never consulted by the move rules.
type DragInfo struct {
	SlotID    int
	CardIndex int
	Cards     []deck.Card
}

// KlondikeOpts are parameters for constructing a game in a known state.
// A zero KlondikeOpts produces a freshly shuffled deal.
type KlondikeOpts struct {
	Slots []Slot
}

type klondike struct {
	Slots []Slot
	won   bool
	drag  *DragInfo
}

// NewKlondike constructs a game of Klondike
func NewKlondike(opts KlondikeOpts) *klondike {
	k := &klondike{}

	if opts.Slots != nil {
		if len(opts.Slots) != NumSlots {
			panic("expected a full slot layout")
		}
		k.Slots = cloneSlots(opts.Slots)
		k.won = k.foundationsComplete()
		return k
	}

	k.deal()
	return k
}

// deal partitions a shuffled deck into the initial layout: tableau columns
// receive 1..7 cards with only the last face up, the rest go to the stock.
func (k *klondike) deal() {
	d := deck.New()
	d.Shuffle()

	slots := emptySlots()

	for id := FirstTableauID; id <= LastTableauID; id++ {
		count := id - FirstTableauID + minTableauDealCount
		dealt := d.Deal(count)
		cards := make([]deck.Card, len(dealt))
		copy(cards, dealt)
		cards[len(cards)-1].FaceUp = true
		slots[id].Cards = cards
	}

	stock := d.Deal(len(d))
	slots[StockID].Cards = append(slots[StockID].Cards, stock...)

	k.Slots = slots
	k.won = false
	k.drag = nil
}

// Restart abandons the current game and deals a new one
func (k *klondike) Restart() {
	k.deal()
}

func (k *klondike) Won() bool {
	return k.won
}

// Draw moves the top stock card to the waste, face up. When the stock is
// exhausted the waste is reshuffled face down back into the stock. Returns
// whether the state changed.
func (k *klondike) Draw() bool {
	if k.won {
		return false
	}

	switch {
	case len(k.Slots[StockID].Cards) > 0:
		next := cloneSlots(k.Slots)
		stock := next[StockID].Cards
		card := stock[len(stock)-1]
		card.FaceUp = true
		next[StockID].Cards = stock[:len(stock)-1]
		next[WasteID].Cards = append(next[WasteID].Cards, card)
		k.Slots = next
		return true

	case len(k.Slots[WasteID].Cards) > 0:
		next := cloneSlots(k.Slots)
		recycled := make(deck.Deck, len(next[WasteID].Cards))
		copy(recycled, next[WasteID].Cards)
		for i := range recycled {
			recycled[i].FaceUp = false
		}
		recycled.Shuffle()
		next[StockID].Cards = recycled
		next[WasteID].Cards = []deck.Card{}
		k.Slots = next
		return true

	default:
		return false
	}
}

// DragStart records and returns the run of cards being carried, for the
// UI's visual feedback. Returns nil if the run is not a legal drag source.
// No state mutation.
func (k *klondike) DragStart(sourceID, cardIndex int) []deck.Card {
	if k.won {
		return nil
	}
	if sourceID < 0 || sourceID >= len(k.Slots) {
		return nil
	}
	source := k.Slots[sourceID]
	if !canPickUp(source, cardIndex) {
		return nil
	}

	carried := make([]deck.Card, len(source.Cards)-cardIndex)
	copy(carried, source.Cards[cardIndex:])

	k.drag = &DragInfo{SlotID: sourceID, CardIndex: cardIndex, Cards: carried}
	return carried
}

// Dragging returns the snapshot of the drag in progress, if any
func (k *klondike) Dragging() []deck.Card {
	if k.drag == nil {
		return nil
	}
	return k.drag.Cards
}

// DragEnd resolves a drop. The candidate state is built on a full copy and
// committed only if the move is legal; otherwise the prior state survives
// untouched. Returns whether the move was committed.
func (k *klondike) DragEnd(sourceID, cardIndex, targetID int) bool {
	k.drag = nil

	if k.won {
		return false
	}
	if !validateDrag(k.Slots, sourceID, cardIndex, targetID) {
		return false
	}

	next := cloneSlots(k.Slots)

	moving := next[sourceID].Cards[cardIndex:]
	run := make([]deck.Card, len(moving))
	copy(run, moving)
	for i := range run {
		run[i].FaceUp = true
	}

	next[targetID].Cards = append(next[targetID].Cards, run...)
	next[sourceID].Cards = next[sourceID].Cards[:cardIndex]

	// reveal-on-expose: flip the newly exposed card in a tableau column
	if next[sourceID].Category() == Tableau {
		if remaining := next[sourceID].Cards; len(remaining) > 0 && !remaining[len(remaining)-1].FaceUp {
			remaining[len(remaining)-1].FaceUp = true
		}
	}

	k.Slots = next

	if k.foundationsComplete() {
		k.won = true
	}
	return true
}

func (k *klondike) foundationsComplete() bool {
	for id := FirstFoundationID; id <= LastFoundationID; id++ {
		if len(k.Slots[id].Cards) != cardsPerSuit {
			return false
		}
	}
	return true
}

// Snapshot returns the per-slot view for the UI client, with the
// effective drop/drag/click affordances for the current state.
func (k *klondike) Snapshot() []protocol.SlotState {
	states := make([]protocol.SlotState, len(k.Slots))
	for i, s := range k.Slots {
		cards := make([]deck.Card, len(s.Cards))
		copy(cards, s.Cards)

		states[i] = protocol.SlotState{
			ID:           s.ID,
			Cards:        cards,
			AcceptsDrops: !k.won && (s.DropTarget() || s.ID == WasteID),
			Draggable:    !k.won && s.Draggable(),
			Clickable:    !k.won && s.ID == StockID,
		}
	}
	return states
}

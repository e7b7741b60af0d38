package game

import (
	"github.com/ohalloran/klondike/deck"
)

// CanDropOnFoundation reports whether candidate may be placed on a
// foundation pile currently holding existing. Foundations build Ace
// upwards in a single suit.
func CanDropOnFoundation(existing []deck.Card, candidate deck.Card) bool {
	if len(existing) == 0 {
		return candidate.Rank == deck.Ace
	}
	top := existing[len(existing)-1]
	return candidate.Suit == top.Suit && candidate.Rank == top.Rank+1
}

// CanDropOnTableau reports whether candidate may be placed on a tableau
// column currently holding existing. Columns build King downwards in
// alternating colours; only a King may start an empty column.
func CanDropOnTableau(existing []deck.Card, candidate deck.Card) bool {
	if len(existing) == 0 {
		return candidate.Rank == deck.King
	}
	top := existing[len(existing)-1]
	return candidate.Suit.Colour() != top.Suit.Colour() && candidate.Rank == top.Rank-1
}

// canPickUp reports whether the contiguous run starting at cardIndex in
// the source slot is a legal drag source. Tableau columns allow any
// face-up card (and everything above it); every other slot allows only
// its topmost card.
func canPickUp(source Slot, cardIndex int) bool {
	if !source.Draggable() {
		return false
	}
	if cardIndex < 0 || cardIndex >= len(source.Cards) {
		return false
	}
	if source.Category() == Tableau {
		return source.Cards[cardIndex].FaceUp
	}
	return cardIndex == len(source.Cards)-1
}

// validateDrag decides whether the run [cardIndex:] of the source slot may
// be dropped on the target slot. Pure; no mutation.
func validateDrag(slots []Slot, sourceID, cardIndex, targetID int) bool {
	if sourceID < 0 || sourceID >= len(slots) || targetID < 0 || targetID >= len(slots) {
		return false
	}
	if sourceID == targetID {
		return false
	}

	source, target := slots[sourceID], slots[targetID]

	// foundation-to-foundation transfers are disallowed categorically
	if source.Category() == Foundation && target.Category() == Foundation {
		return false
	}

	if !canPickUp(source, cardIndex) {
		return false
	}

	movingFirst := source.Cards[cardIndex]
	movingCount := len(source.Cards) - cardIndex

	switch target.Category() {
	case Foundation:
		// foundations only accept single-card transfers
		if movingCount > 1 {
			return false
		}
		return CanDropOnFoundation(target.Cards, movingFirst)
	case Tableau:
		return CanDropOnTableau(target.Cards, movingFirst)
	case Waste:
		// droppable by override despite the slot-level flag
		return true
	default:
		return false
	}
}

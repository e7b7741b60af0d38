package protocol

import (
	"github.com/ohalloran/klondike/deck"
)

// SlotState is the per-slot view exposed to the UI client. AcceptsDrops,
// Draggable and Clickable are the effective values for the current state
// of the game (all false once the game is won).
type SlotState struct {
	ID           int         `json:"id"`
	Cards        []deck.Card `json:"cards"`
	AcceptsDrops bool        `json:"acceptsDrops"`
	Draggable    bool        `json:"draggable"`
	Clickable    bool        `json:"clickable"`
}

// InboundMessage is a message from the UI client to the GameEngine.
// SourceSlot and TargetSlot are pointers so that a missing identity is
// distinguishable from slot 0.
type InboundMessage struct {
	PlayerID   string `json:"playerID"`
	Command    Cmd    `json:"command"`
	SourceSlot *int   `json:"sourceSlot,omitempty"`
	CardIndex  int    `json:"cardIndex"`
	TargetSlot *int   `json:"targetSlot,omitempty"`
}

// OutboundMessage is a message from the GameEngine to the UI client
type OutboundMessage struct {
	PlayerID string      `json:"playerID"`
	Command  Cmd         `json:"command"`
	Message  string      `json:"message,omitempty"`
	Slots    []SlotState `json:"slots,omitempty"`
	Dragging []deck.Card `json:"dragging,omitempty"`
	Won      bool        `json:"won"`
	Error    string      `json:"error,omitempty"`
}

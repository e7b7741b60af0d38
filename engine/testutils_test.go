package engine

import (
	"sync"

	"github.com/ohalloran/klondike/deck"
	"github.com/ohalloran/klondike/game"
	"github.com/ohalloran/klondike/protocol"
)

// SpyGame records calls made by the engine and reports a configurable
// win state
type SpyGame struct {
	mu             sync.Mutex
	drawCalled     bool
	dragStartCalls [][2]int
	dragEndCalls   [][3]int
	restartCalled  bool
	won            bool
}

var _ game.Game = (*SpyGame)(nil)

func (g *SpyGame) Draw() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.drawCalled = true
	return true
}

func (g *SpyGame) DragStart(sourceID, cardIndex int) []deck.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dragStartCalls = append(g.dragStartCalls, [2]int{sourceID, cardIndex})
	return []deck.Card{{Rank: deck.Ace, Suit: deck.Spades, FaceUp: true}}
}

func (g *SpyGame) DragEnd(sourceID, cardIndex, targetID int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dragEndCalls = append(g.dragEndCalls, [3]int{sourceID, cardIndex, targetID})
	return true
}

func (g *SpyGame) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.restartCalled = true
	g.won = false
}

func (g *SpyGame) Snapshot() []protocol.SlotState {
	return []protocol.SlotState{}
}

func (g *SpyGame) Dragging() []deck.Card {
	return nil
}

func (g *SpyGame) Won() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.won
}

func (g *SpyGame) setWon(won bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.won = won
}

// TestClient captures every message the engine sends
type TestClient struct {
	id       string
	name     string
	received chan protocol.OutboundMessage
}

var _ Client = (*TestClient)(nil)

func NewTestClient(id, name string) *TestClient {
	return &TestClient{
		id:       id,
		name:     name,
		received: make(chan protocol.OutboundMessage, 16),
	}
}

func (c *TestClient) ID() string {
	return c.id
}

func (c *TestClient) Name() string {
	return c.name
}

func (c *TestClient) Send(msg protocol.OutboundMessage) error {
	c.received <- msg
	return nil
}

func intPtr(i int) *int {
	return &i
}

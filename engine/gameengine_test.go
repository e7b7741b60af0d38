package engine

import (
	"testing"
	"time"

	"github.com/ohalloran/klondike/game"
	utils "github.com/ohalloran/klondike/internal"
	"github.com/ohalloran/klondike/protocol"
	"github.com/stretchr/testify/assert"
)

const gameEngineTestTimeout = time.Duration(200 * time.Millisecond)

func TestGameEngineConstructor(t *testing.T) {
	creatorID := "hermione-1"

	t.Run("keeps track of who created it", func(t *testing.T) {
		ge, err := NewGameEngine(GameEngineOpts{GameID: "some-id", CreatorID: creatorID, Game: &SpyGame{}})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, ge.CreatorID(), creatorID)
	})

	t.Run("requires a game", func(t *testing.T) {
		_, err := NewGameEngine(GameEngineOpts{GameID: "some-id", CreatorID: creatorID})
		utils.AssertErrored(t, err)
		utils.AssertEqual(t, err, ErrNilGame)
	})

	t.Run("starts idle", func(t *testing.T) {
		ge, err := NewGameEngine(GameEngineOpts{GameID: "some-id", CreatorID: creatorID, Game: &SpyGame{}})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, ge.PlayState(), Idle)
	})
}

func TestGameEngineRegister(t *testing.T) {
	t.Run("greets a connecting client with the full state", func(t *testing.T) {
		ge, err := NewGameEngine(GameEngineOpts{GameID: "game-id", CreatorID: "creator", Game: &SpyGame{}})
		utils.AssertNoError(t, err)
		go ge.Listen()

		client := NewTestClient("client-1", "Morag")
		utils.AssertNoError(t, ge.AddClient(client))

		utils.Within(t, gameEngineTestTimeout, func() {
			msg := <-client.received
			utils.AssertEqual(t, msg.Command, protocol.HasConnected)
			utils.AssertEqual(t, msg.PlayerID, "client-1")
		})

		utils.AssertEqual(t, ge.PlayState(), InProgress)
	})
}

func TestGameEngineReceive(t *testing.T) {
	setup := func(t *testing.T) (*gameEngine, *SpyGame, *TestClient) {
		t.Helper()

		spy := &SpyGame{}
		ge, err := NewGameEngine(GameEngineOpts{GameID: "game-id", CreatorID: "creator", Game: spy})
		utils.AssertNoError(t, err)
		go ge.Listen()

		client := NewTestClient("client-1", "Morag")
		ge.AddClient(client)

		utils.Within(t, gameEngineTestTimeout, func() {
			<-client.received // HasConnected
		})

		return ge, spy, client
	}

	t.Run("a draw trigger reaches the game and the state is pushed back", func(t *testing.T) {
		ge, spy, client := setup(t)

		ge.Receive(protocol.InboundMessage{Command: protocol.Draw})

		utils.Within(t, gameEngineTestTimeout, func() {
			msg := <-client.received
			utils.AssertEqual(t, msg.Command, protocol.State)
		})
		utils.AssertTrue(t, spy.drawCalled)
	})

	t.Run("a drag-start returns the carried cards", func(t *testing.T) {
		ge, spy, client := setup(t)

		ge.Receive(protocol.InboundMessage{
			Command:    protocol.DragStart,
			SourceSlot: intPtr(7),
			CardIndex:  2,
		})

		utils.Within(t, gameEngineTestTimeout, func() {
			msg := <-client.received
			utils.AssertEqual(t, msg.Command, protocol.DragStart)
			utils.AssertEqual(t, len(msg.Dragging), 1)
		})
		utils.AssertDeepEqual(t, spy.dragStartCalls, [][2]int{{7, 2}})
	})

	t.Run("a drag-end reaches the game", func(t *testing.T) {
		ge, spy, client := setup(t)

		ge.Receive(protocol.InboundMessage{
			Command:    protocol.DragEnd,
			SourceSlot: intPtr(7),
			CardIndex:  1,
			TargetSlot: intPtr(9),
		})

		utils.Within(t, gameEngineTestTimeout, func() {
			msg := <-client.received
			utils.AssertEqual(t, msg.Command, protocol.State)
		})
		utils.AssertDeepEqual(t, spy.dragEndCalls, [][3]int{{7, 1, 9}})
	})

	t.Run("a drag-end with a missing identity never reaches the game", func(t *testing.T) {
		ge, spy, client := setup(t)

		ge.Receive(protocol.InboundMessage{
			Command:    protocol.DragEnd,
			SourceSlot: intPtr(7),
			CardIndex:  1,
		})

		utils.Within(t, gameEngineTestTimeout, func() {
			msg := <-client.received
			utils.AssertEqual(t, msg.Command, protocol.State)
		})
		assert.Empty(t, spy.dragEndCalls)
	})

	t.Run("an unrecognised command gets an error message", func(t *testing.T) {
		ge, _, client := setup(t)

		ge.Receive(protocol.InboundMessage{Command: protocol.Null})

		utils.Within(t, gameEngineTestTimeout, func() {
			msg := <-client.received
			utils.AssertEqual(t, msg.Command, protocol.Error)
			utils.AssertNotEmptyString(t, msg.Error)
		})
	})

	t.Run("a restart resets the game", func(t *testing.T) {
		ge, spy, client := setup(t)

		ge.Receive(protocol.InboundMessage{Command: protocol.Restart})

		utils.Within(t, gameEngineTestTimeout, func() {
			msg := <-client.received
			utils.AssertEqual(t, msg.Command, protocol.State)
		})
		utils.AssertTrue(t, spy.restartCalled)
	})
}

func TestGameEngineWinSignal(t *testing.T) {
	t.Run("raised exactly once, on the transition to won", func(t *testing.T) {
		spy := &SpyGame{}
		ge, err := NewGameEngine(GameEngineOpts{GameID: "game-id", CreatorID: "creator", Game: spy})
		utils.AssertNoError(t, err)
		go ge.Listen()

		client := NewTestClient("client-1", "Morag")
		ge.AddClient(client)

		utils.Within(t, gameEngineTestTimeout, func() {
			<-client.received // HasConnected
		})

		// the winning move
		spy.setWon(true)
		ge.Receive(protocol.InboundMessage{
			Command:    protocol.DragEnd,
			SourceSlot: intPtr(1),
			CardIndex:  0,
			TargetSlot: intPtr(6),
		})

		utils.Within(t, gameEngineTestTimeout, func() {
			state := <-client.received
			utils.AssertEqual(t, state.Command, protocol.State)
			utils.AssertTrue(t, state.Won)

			win := <-client.received
			utils.AssertEqual(t, win.Command, protocol.Win)
			utils.AssertTrue(t, win.Won)
		})

		utils.AssertEqual(t, ge.PlayState(), Won)

		// further stimuli never re-raise the signal
		ge.Receive(protocol.InboundMessage{Command: protocol.Draw})

		utils.Within(t, gameEngineTestTimeout, func() {
			msg := <-client.received
			utils.AssertEqual(t, msg.Command, protocol.State)
		})
		assert.Empty(t, client.received)
	})
}

func TestGameEngineWithRealGame(t *testing.T) {
	t.Run("a draw against a real game moves a stock card to the waste", func(t *testing.T) {
		k := game.NewKlondike(game.KlondikeOpts{})
		ge, err := NewGameEngine(GameEngineOpts{GameID: "game-id", CreatorID: "creator", Game: k})
		utils.AssertNoError(t, err)
		go ge.Listen()

		client := NewTestClient("client-1", "Morag")
		ge.AddClient(client)

		utils.Within(t, gameEngineTestTimeout, func() {
			<-client.received // HasConnected
		})

		ge.Receive(protocol.InboundMessage{Command: protocol.Draw})

		utils.Within(t, gameEngineTestTimeout, func() {
			msg := <-client.received
			utils.AssertEqual(t, msg.Command, protocol.State)
			utils.AssertEqual(t, len(msg.Slots), game.NumSlots)
			utils.AssertEqual(t, len(msg.Slots[game.WasteID].Cards), 1)
			utils.AssertTrue(t, msg.Slots[game.WasteID].Cards[0].FaceUp)
		})
	})
}

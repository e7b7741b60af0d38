package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/ohalloran/klondike/game"
	"github.com/ohalloran/klondike/protocol"
)

// PlayState represents the state of the current game
// Idle -> no client connected yet
// InProgress -> game in progress
// Won -> game complete, no further moves accepted
type PlayState int

const (
	Idle PlayState = iota
	InProgress
	Won
)

var playStateNames = []string{"Idle", "InProgress", "Won"}

func (ps PlayState) String() string {
	return playStateNames[ps]
}

var ErrNilGame = errors.New("game is nil")

// GameEngine owns one game of solitaire and serialises every external
// stimulus (draw trigger, drag notifications) through a single loop, so
// each one runs to completion before the next is accepted.
type GameEngine interface {
	ID() string
	CreatorID() string
	PlayState() PlayState
	Game() game.Game
	AddClient(Client) error
	Receive(protocol.InboundMessage)
	Listen()
}

// GameEngineOpts represents options for constructing a new GameEngine
type GameEngineOpts struct {
	GameID     string
	CreatorID  string
	Game       game.Game
	RegisterCh chan Client
	InboundCh  chan protocol.InboundMessage
}

type gameEngine struct {
	id           string
	creatorID    string
	playState    PlayState
	game         game.Game
	client       Client
	registerCh   chan Client
	inboundCh    chan protocol.InboundMessage
	winAnnounced bool
}

// NewGameEngine constructs a new GameEngine
func NewGameEngine(opts GameEngineOpts) (*gameEngine, error) {
	if opts.Game == nil {
		return nil, ErrNilGame
	}
	if opts.RegisterCh == nil {
		opts.RegisterCh = make(chan Client)
	}
	if opts.InboundCh == nil {
		opts.InboundCh = make(chan protocol.InboundMessage)
	}

	engine := &gameEngine{
		id:         opts.GameID,
		creatorID:  opts.CreatorID,
		game:       opts.Game,
		registerCh: opts.RegisterCh,
		inboundCh:  opts.InboundCh,
	}

	return engine, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

func (ge *gameEngine) CreatorID() string {
	return ge.creatorID
}

func (ge *gameEngine) PlayState() PlayState {
	return ge.playState
}

func (ge *gameEngine) Game() game.Game {
	return ge.game
}

// AddClient hands the UI client to the engine loop
func (ge *gameEngine) AddClient(c Client) error {
	ge.registerCh <- c
	return nil
}

// Receive hands an inbound message to the engine loop
func (ge *gameEngine) Receive(msg protocol.InboundMessage) {
	ge.inboundCh <- msg
}

// Listen runs the engine loop. One stimulus at a time; no in-flight overlap.
func (ge *gameEngine) Listen() {
	for {
		select {
		case client := <-ge.registerCh:
			ge.register(client)

		case msg := <-ge.inboundCh:
			ge.handleMessage(msg)
		}
	}
}

func (ge *gameEngine) register(client Client) {
	ge.client = client
	if ge.playState == Idle {
		ge.playState = InProgress
	}

	ge.send(protocol.OutboundMessage{
		Command: protocol.HasConnected,
		Message: fmt.Sprintf("%s has connected", client.Name()),
		Slots:   ge.game.Snapshot(),
		Won:     ge.game.Won(),
	})
}

func (ge *gameEngine) handleMessage(msg protocol.InboundMessage) {
	switch msg.Command {

	case protocol.Draw:
		ge.game.Draw()
		ge.sendState()

	case protocol.DragStart:
		if msg.SourceSlot == nil {
			ge.sendError("missing source slot")
			return
		}
		carried := ge.game.DragStart(*msg.SourceSlot, msg.CardIndex)
		ge.send(protocol.OutboundMessage{
			Command:  protocol.DragStart,
			Dragging: carried,
			Won:      ge.game.Won(),
		})
		return

	case protocol.DragEnd:
		if msg.SourceSlot != nil && msg.TargetSlot != nil {
			ge.game.DragEnd(*msg.SourceSlot, msg.CardIndex, *msg.TargetSlot)
		}
		ge.sendState()

	case protocol.Restart:
		ge.game.Restart()
		ge.winAnnounced = false
		ge.playState = InProgress
		ge.sendState()

	default:
		ge.sendError(fmt.Sprintf("unrecognised command %s", msg.Command))
		return
	}

	ge.announceWin()
}

// announceWin raises the win signal exactly once, on the transition from
// not-won to won
func (ge *gameEngine) announceWin() {
	if !ge.game.Won() || ge.winAnnounced {
		return
	}

	ge.winAnnounced = true
	ge.playState = Won

	ge.send(protocol.OutboundMessage{
		Command: protocol.Win,
		Message: "You won!",
		Slots:   ge.game.Snapshot(),
		Won:     true,
	})
}

func (ge *gameEngine) sendState() {
	ge.send(protocol.OutboundMessage{
		Command: protocol.State,
		Slots:   ge.game.Snapshot(),
		Won:     ge.game.Won(),
	})
}

func (ge *gameEngine) sendError(message string) {
	ge.send(protocol.OutboundMessage{
		Command: protocol.Error,
		Error:   message,
		Won:     ge.game.Won(),
	})
}

func (ge *gameEngine) send(msg protocol.OutboundMessage) {
	if ge.client == nil {
		return
	}
	msg.PlayerID = ge.client.ID()
	if err := ge.client.Send(msg); err != nil {
		log.Println(err.Error())
	}
}

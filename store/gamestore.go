package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ohalloran/klondike/engine"
)

var ErrUnknownGameID = errors.New("unknown game ID")

// GameStore holds the games this server is running
type GameStore interface {
	FindGame(gameID string) engine.GameEngine
	AddGame(engine.GameEngine) error
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]engine.GameEngine
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]engine.GameEngine{},
	}
}

func (s *InMemoryGameStore) FindGame(ID string) engine.GameEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[ID]
	if !ok {
		return nil
	}

	return game
}

func (s *InMemoryGameStore) AddGame(game engine.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[game.ID()]; exists {
		return fmt.Errorf("game with id %s already exists", game.ID())
	}

	s.games[game.ID()] = game
	return nil
}

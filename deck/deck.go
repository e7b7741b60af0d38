package deck

import (
	"math/rand"
	"time"
)

// Deck represents a deck of cards
type Deck []Card

// New creates a full deck of 52 cards, all face down
func New() Deck {
	cards := Deck{}
	for suit := range suitNames {
		for rank := range rankNames {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle permutes the deck uniformly at random (Fisher-Yates)
func (d *Deck) Shuffle() {
	rand.Seed(time.Now().UnixNano())
	actualDeck := *d
	for i := len(actualDeck) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	}
}

// Deal deals n cards from the top of the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := (*d)[startingIndex:numCardsInDeck]
	*d = (*d)[:startingIndex]
	return subSlice
}

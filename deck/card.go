package deck

import "fmt"

// Rank represents a rank in a deck of cards
type Rank int

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	return rankNames[r]
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	return suitNames[s]
}

// Colour represents the colour of a suit
type Colour int

const (
	Black Colour = iota
	Red
)

var colourNames = []string{"Black", "Red"}

func (c Colour) String() string {
	return colourNames[c]
}

// Colour returns the colour of a suit
func (s Suit) Colour() Colour {
	if s == Diamonds || s == Hearts {
		return Red
	}
	return Black
}

// Card represents a playing card. Rank and Suit identify the card;
// FaceUp is the only mutable field.
type Card struct {
	Rank   Rank `json:"rank"`
	Suit   Suit `json:"suit"`
	FaceUp bool `json:"faceUp"`
}

// NewCard constructs a face-down card. Panics on out-of-range arguments.
func NewCard(rank, suit int) Card {
	if rank < 0 || rank > int(King) || suit < 0 || suit > int(Spades) {
		panic(fmt.Sprintf("invalid card (rank %d, suit %d)", rank, suit))
	}
	return Card{Rank: Rank(rank), Suit: Suit(suit)}
}

// ID returns the card's identity key, unique across the 52-card universe.
func (c Card) ID() string {
	return fmt.Sprintf("%s-%s", rankNames[c.Rank], suitNames[c.Suit])
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", rankNames[c.Rank], suitNames[c.Suit])
}

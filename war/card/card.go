package card

import (
	"fmt"

	"github.com/ratel-online/war/war/card/suit"
)

// Side is the orientation of a card. Fresh and stored cards are face down.
type Side int

const (
	FaceDown Side = iota
	FaceUp
)

func (s Side) String() string {
	if s == FaceUp {
		return "up"
	}
	return "down"
}

// Card has a fixed suit and rank; only its side changes while it moves between containers.
type Card struct {
	suit suit.Suit
	rank Rank
	side Side
}

func NewCard(cardSuit suit.Suit, rank Rank) *Card {
	return &Card{
		suit: cardSuit,
		rank: rank,
		side: FaceDown,
	}
}

func (c *Card) Suit() suit.Suit {
	return c.suit
}

func (c *Card) Rank() Rank {
	return c.rank
}

func (c *Card) Side() Side {
	return c.side
}

func (c *Card) FaceUp() bool {
	return c.side == FaceUp
}

func (c *Card) SetSide(side Side) {
	c.side = side
}

// Copy returns a detached card with the same identity and side.
func (c *Card) Copy() *Card {
	clone := *c
	return &clone
}

func CopyAll(cards []*Card) []*Card {
	copies := make([]*Card, 0, len(cards))
	for _, c := range cards {
		copies = append(copies, c.Copy())
	}
	return copies
}

// Equal compares identity; orientation is ignored.
func (c *Card) Equal(other *Card) bool {
	return other != nil && c.suit == other.suit && c.rank == other.rank
}

// Beats reports whether c outranks other. Suits never break ties.
func (c *Card) Beats(other *Card) bool {
	return c.rank.Compare(other.rank) > 0
}

// Label is the unpainted rank and suit symbol, e.g. "10♥".
func (c *Card) Label() string {
	return fmt.Sprintf("%s%s", c.rank, c.suit.Symbol())
}

func (c *Card) String() string {
	if c.side == FaceDown {
		return "[##]"
	}
	return c.suit.Paintf("[%s]", c.Label())
}

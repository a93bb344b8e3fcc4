package game

import (
	"github.com/ratel-online/war/consts"
	"github.com/ratel-online/war/war/card"
	"github.com/ratel-online/war/war/card/suit"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is drawn from its end, which is treated as the top.
type Deck struct {
	cards []*card.Card
}

// NewDeck returns the 52 cards face down, suit by suit, each suit from Two to Ace.
func NewDeck() *Deck {
	deck := &Deck{cards: make([]*card.Card, 0, consts.DeckSize)}
	for _, cardSuit := range suit.All {
		for _, rank := range card.Ranks {
			deck.cards = append(deck.cards, card.NewCard(cardSuit, rank))
		}
	}
	return deck
}

// NewDeckOf stacks the given cards; the last one is drawn first.
func NewDeckOf(cards ...*card.Card) *Deck {
	deck := &Deck{cards: make([]*card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

func (d *Deck) Shuffle(shuffler Shuffler) {
	shuffler.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

// Draw removes the top card. It reports false once the deck is empty.
func (d *Deck) Draw() (*card.Card, bool) {
	size := len(d.cards)
	if size == 0 {
		return nil, false
	}
	top := d.cards[size-1]
	d.cards[size-1] = nil
	d.cards = d.cards[:size-1]
	return top, true
}

// Cards returns copies of the remaining cards, bottom first.
func (d *Deck) Cards() []*card.Card {
	return card.CopyAll(d.cards)
}

func (d *Deck) Size() int {
	return len(d.cards)
}

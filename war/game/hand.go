package game

import (
	"github.com/ratel-online/war/consts"
	"github.com/ratel-online/war/war/card"
)

// Hand is played from the front and receives captured cards at the back.
type Hand struct {
	cards []*card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]*card.Card, 0, consts.DeckSize)}
}

func (h *Hand) AddCards(cards []*card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) PlayCard() (*card.Card, bool) {
	if len(h.cards) == 0 {
		return nil, false
	}
	next := h.cards[0]
	h.cards[0] = nil
	h.cards = h.cards[1:]
	return next, true
}

func (h *Hand) Cards() []*card.Card {
	cards := make([]*card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

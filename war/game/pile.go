package game

import (
	"github.com/ratel-online/war/consts"
	"github.com/ratel-online/war/war/card"
)

// Pile is the table: cards played this round that nobody has captured yet.
type Pile struct {
	cards []*card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]*card.Card, 0, consts.DeckSize)}
}

func (p *Pile) Add(card *card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []*card.Card {
	cards := make([]*card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// Take empties the pile and hands its cards over in the order they were played.
func (p *Pile) Take() []*card.Card {
	cards := p.cards
	p.cards = make([]*card.Card, 0, consts.DeckSize)
	return cards
}

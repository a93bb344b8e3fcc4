package game

import (
	"fmt"

	"github.com/ratel-online/war/consts"
	"github.com/ratel-online/war/war/card"
)

type Player struct {
	name       string
	hand       *Hand
	alive      bool
	lastPlayed *card.Card
}

func NewPlayer(name string) *Player {
	return &Player{
		name:  name,
		hand:  NewHand(),
		alive: true,
	}
}

func (p *Player) Name() string {
	return p.name
}

// InitialDraw deals a full half deck to the player one card at a time.
func (p *Player) InitialDraw(deck *Deck) error {
	for drawn := 0; drawn < consts.HandSize; drawn++ {
		dealt, ok := deck.Draw()
		if !ok {
			return fmt.Errorf("%s drew %d of %d cards: %w", p.name, drawn, consts.HandSize, consts.ErrorsDeckExhausted)
		}
		p.AddCards([]*card.Card{dealt})
	}
	return nil
}

// PlayCard turns the next card to the requested side. It reports false when the hand is empty.
func (p *Player) PlayCard(faceUp bool) (*card.Card, bool) {
	played, ok := p.hand.PlayCard()
	if !ok {
		return nil, false
	}
	if faceUp {
		played.SetSide(card.FaceUp)
	} else {
		played.SetSide(card.FaceDown)
	}
	p.lastPlayed = played
	p.refresh()
	return played, true
}

// AddCards puts a captured batch face down at the back of the hand.
func (p *Player) AddCards(cards []*card.Card) {
	for _, captured := range cards {
		captured.SetSide(card.FaceDown)
	}
	p.hand.AddCards(cards)
	p.refresh()
}

func (p *Player) refresh() {
	p.alive = !p.hand.Empty()
}

func (p *Player) Alive() bool {
	return p.alive
}

// LastPlayed returns a copy of the most recently played card, or nil.
func (p *Player) LastPlayed() *card.Card {
	if p.lastPlayed == nil {
		return nil
	}
	return p.lastPlayed.Copy()
}

// Hand returns copies of the held cards, next to play first.
func (p *Player) Hand() []*card.Card {
	return card.CopyAll(p.hand.Cards())
}

func (p *Player) Size() int {
	return p.hand.Size()
}

func (p *Player) NoCards() bool {
	return p.hand.Empty()
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%d card(s))", p.name, p.hand.Size())
}

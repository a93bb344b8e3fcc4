package game

import (
	"fmt"

	"github.com/ratel-online/war/consts"
	"github.com/ratel-online/war/war/card"
	"github.com/ratel-online/war/war/event"
)

type Game struct {
	player1 *Player
	player2 *Player
	deck    *Deck
	pile    *Pile
	events  *event.Bus

	shuffler   Shuffler
	roundLimit int

	outcome         Outcome
	initialized     bool
	rounds          int
	wars            int
	lastRoundWinner *Player
}

func New(player1, player2 *Player, deck *Deck, opts ...Option) *Game {
	g := &Game{
		player1:    player1,
		player2:    player2,
		deck:       deck,
		pile:       NewPile(),
		events:     event.NewBus(),
		roundLimit: consts.DefaultRoundLimit,
		outcome:    Running,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.shuffler == nil {
		g.shuffler = defaultShuffler()
	}
	return g
}

func (g *Game) Player1() *Player {
	return g.player1
}

func (g *Game) Player2() *Player {
	return g.player2
}

func (g *Game) DeckSize() int {
	return g.deck.Size()
}

// Table returns copies of the cards waiting to be captured.
func (g *Game) Table() []*card.Card {
	return card.CopyAll(g.pile.Cards())
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

func (g *Game) GameOver() bool {
	return g.outcome.Terminal()
}

// LastRoundWinner is nil before the first capture and after a round that ended without one.
func (g *Game) LastRoundWinner() *Player {
	return g.lastRoundWinner
}

func (g *Game) Rounds() int {
	return g.rounds
}

// Wars counts war layers over the whole game.
func (g *Game) Wars() int {
	return g.wars
}

func (g *Game) AddListener(listener interface{}) {
	g.events.AddListener(listener)
}

// Initialize shuffles the deck and deals it out between both players.
func (g *Game) Initialize() error {
	if g.initialized {
		return consts.ErrorsAlreadyInitialized
	}
	g.initialized = true
	g.deck.Shuffle(g.shuffler)
	for _, player := range []*Player{g.player1, g.player2} {
		if err := player.InitialDraw(g.deck); err != nil {
			return fmt.Errorf("initialize game: %w", err)
		}
	}
	g.outcome = Running
	return nil
}

// PlayRound plays one battle, including any wars it triggers. A finished game is left untouched.
func (g *Game) PlayRound() Outcome {
	if g.outcome.Terminal() {
		return g.outcome
	}
	g.rounds++
	g.lastRoundWinner = nil

	first := g.play(g.player1, true)
	second := g.play(g.player2, true)
	g.outcome = g.resolve(first, second, 0)

	if g.outcome.Terminal() {
		g.events.GameOver.Emit(event.GameOverPayload{
			Outcome: g.outcome.String(),
			Winner:  g.winnerName(),
			Rounds:  g.rounds,
		})
	}
	return g.outcome
}

// FinishGame plays rounds until the game ends or the round limit is hit.
func (g *Game) FinishGame() (Outcome, error) {
	for !g.outcome.Terminal() {
		if g.roundLimit > 0 && g.rounds >= g.roundLimit {
			return g.outcome, fmt.Errorf("finish game after %d rounds: %w", g.rounds, consts.ErrorsRoundLimit)
		}
		g.PlayRound()
	}
	return g.outcome, nil
}

// EvaluateOutcome derives the outcome from which hands are empty and stores it.
func (g *Game) EvaluateOutcome() Outcome {
	switch {
	case g.player1.NoCards() && g.player2.NoCards():
		g.outcome = Tie
	case g.player1.NoCards():
		g.outcome = Player2Wins
	case g.player2.NoCards():
		g.outcome = Player1Wins
	default:
		g.outcome = Running
	}
	return g.outcome
}

func (g *Game) play(player *Player, faceUp bool) *card.Card {
	played, ok := player.PlayCard(faceUp)
	if !ok {
		return nil
	}
	g.pile.Add(played)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       played.Copy(),
	})
	return played
}

func (g *Game) resolve(first, second *card.Card, depth int) Outcome {
	switch {
	case first == nil || second == nil:
		return g.forfeit(first != nil, second != nil)
	case first.Beats(second):
		return g.capture(g.player1)
	case second.Beats(first):
		return g.capture(g.player2)
	default:
		return g.war(first.Rank(), depth+1)
	}
}

// war antes one face-down and one face-up card per player and compares the face-up pair.
func (g *Game) war(rank card.Rank, depth int) Outcome {
	g.outcome = War
	g.wars++
	g.events.WarDeclared.Emit(event.WarDeclaredPayload{Depth: depth, Rank: rank})

	first := g.play(g.player1, false)
	second := g.play(g.player2, false)
	if first == nil || second == nil {
		return g.forfeit(first != nil, second != nil)
	}

	first = g.play(g.player1, true)
	second = g.play(g.player2, true)
	return g.resolve(first, second, depth)
}

// forfeit ends the game when a player could not put a card down.
// The side that still could collects the table; if neither could, the table stays as it is.
func (g *Game) forfeit(firstPlayed, secondPlayed bool) Outcome {
	switch {
	case firstPlayed && !secondPlayed:
		return g.capture(g.player1)
	case secondPlayed && !firstPlayed:
		return g.capture(g.player2)
	default:
		return g.EvaluateOutcome()
	}
}

func (g *Game) capture(winner *Player) Outcome {
	cards := g.pile.Take()
	if winner == g.player2 {
		leadWithSecond(cards)
	}
	winner.AddCards(cards)
	g.lastRoundWinner = winner
	g.events.RoundWon.Emit(event.RoundWonPayload{
		PlayerName: winner.Name(),
		Cards:      card.CopyAll(cards),
	})
	return g.EvaluateOutcome()
}

// leadWithSecond swaps every complete pair on the table so player 2's card comes first.
// Each capture then returns the winner's cards ahead of the loser's, which keeps deals from cycling.
func leadWithSecond(cards []*card.Card) {
	for i := 0; i+1 < len(cards); i += 2 {
		cards[i], cards[i+1] = cards[i+1], cards[i]
	}
}

func (g *Game) winnerName() string {
	switch g.outcome {
	case Player1Wins:
		return g.player1.Name()
	case Player2Wins:
		return g.player2.Name()
	default:
		return ""
	}
}

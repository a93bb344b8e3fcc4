package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/war/war/card"
)

type PlayerState struct {
	Name       string `json:"name"`
	HandSize   int    `json:"hand_size"`
	LastPlayed string `json:"last_played,omitempty"`
	Alive      bool   `json:"alive"`
}

// State is a detached snapshot of a game; changing it does not affect the game.
type State struct {
	Outcome         string        `json:"outcome"`
	Rounds          int           `json:"rounds"`
	Wars            int           `json:"wars"`
	DeckSize        int           `json:"deck_size"`
	Table           []string      `json:"table"`
	Players         []PlayerState `json:"players"`
	LastRoundWinner string        `json:"last_round_winner,omitempty"`
}

func (g *Game) State() State {
	state := State{
		Outcome:  g.outcome.String(),
		Rounds:   g.rounds,
		Wars:     g.wars,
		DeckSize: g.DeckSize(),
		Table:    labels(g.pile.Cards()),
	}
	for _, player := range []*Player{g.player1, g.player2} {
		playerState := PlayerState{
			Name:     player.Name(),
			HandSize: player.Size(),
			Alive:    player.Alive(),
		}
		if lastPlayed := player.LastPlayed(); lastPlayed != nil {
			playerState.LastPlayed = lastPlayed.Label()
		}
		state.Players = append(state.Players, playerState)
	}
	if g.lastRoundWinner != nil {
		state.LastRoundWinner = g.lastRoundWinner.Name()
	}
	return state
}

func labels(cards []*card.Card) []string {
	result := make([]string, 0, len(cards))
	for _, c := range cards {
		result = append(result, c.Label())
	}
	return result
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Outcome: %s after %d round(s), %d war(s)", s.Outcome, s.Rounds, s.Wars))

	var playerStatuses []string
	for _, player := range s.Players {
		playerStatus := fmt.Sprintf("%s (%d card(s))", player.Name, player.HandSize)
		if player.LastPlayed != "" {
			playerStatus += fmt.Sprintf(" last played %s", player.LastPlayed)
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Players: %s", strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Table: %s", s.Table))

	return strings.Join(lines, "\n")
}

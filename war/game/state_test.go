package game_test

import (
	"testing"

	"github.com/ratel-online/war/war/card"
	"github.com/ratel-online/war/war/card/suit"
	"github.com/ratel-online/war/war/game"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	suit.DisableColor(true)
	g := stackedGame(playerWith("Annie", card.Seven, card.Five), playerWith("Braum", card.Seven, card.Six))
	g.PlayRound()

	state := g.State()
	require.Equal(t, "Tie", state.Outcome)
	require.Equal(t, 1, state.Rounds)
	require.Equal(t, 1, state.Wars)
	require.Equal(t, []string{"7♠", "7♠", "5♥", "6♥"}, state.Table)
	require.Equal(t, []game.PlayerState{
		{Name: "Annie", HandSize: 0, LastPlayed: "5♥", Alive: false},
		{Name: "Braum", HandSize: 0, LastPlayed: "6♥", Alive: false},
	}, state.Players)
	require.Empty(t, state.LastRoundWinner)

	require.Equal(t, "Outcome: Tie after 1 round(s), 1 war(s)\n"+
		"Players: Annie (0 card(s)) last played 5♥, Braum (0 card(s)) last played 6♥\n"+
		"Table: [7♠ 7♠ 5♥ 6♥]", state.String())
}

func TestStateBeforeFirstRound(t *testing.T) {
	g := game.New(game.NewPlayer("Annie"), game.NewPlayer("Braum"), game.NewDeck(), game.WithSeed(1))
	state := g.State()
	require.Equal(t, "Running", state.Outcome)
	require.Equal(t, 52, state.DeckSize)
	require.Empty(t, state.Table)
	require.Empty(t, state.Players[0].LastPlayed)
}

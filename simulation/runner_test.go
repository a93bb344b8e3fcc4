package simulation_test

import (
	"context"
	"testing"

	"github.com/ratel-online/war/consts"
	"github.com/ratel-online/war/simulation"
	"github.com/ratel-online/war/war/game"
	"github.com/stretchr/testify/require"
)

func testConfig(games int) simulation.Config {
	return simulation.Config{
		Player1:    "Annie",
		Player2:    "Braum",
		Seed:       1000,
		Games:      games,
		Workers:    3,
		RoundLimit: 3000,
	}
}

func TestPlayOne(t *testing.T) {
	result := simulation.PlayOne(testConfig(1), 7, 42)
	require.NoError(t, result.Err)
	require.Equal(t, 7, result.ID)
	require.Equal(t, int64(42), result.Seed)
	require.Positive(t, result.Rounds)
	if !result.Limited {
		require.True(t, result.Outcome.Terminal())
	}
	require.Equal(t, result.Outcome.String(), result.Result)
}

func TestPlayOneIsDeterministic(t *testing.T) {
	first := simulation.PlayOne(testConfig(1), 0, 314)
	second := simulation.PlayOne(testConfig(1), 0, 314)
	require.Equal(t, first, second)
}

func TestRun(t *testing.T) {
	summary, err := simulation.Run(context.Background(), testConfig(20))
	require.NoError(t, err)
	require.Equal(t, 20, summary.Games)
	require.Equal(t, 20, summary.Player1Wins+summary.Player2Wins+summary.Ties+summary.Limited)
	require.Len(t, summary.Results, 20)
	for i, result := range summary.Results {
		require.Equal(t, i, result.ID)
		require.Equal(t, int64(1000+i), result.Seed)
		require.LessOrEqual(t, result.Rounds, summary.MaxRounds)
	}
	require.Positive(t, summary.MeanRounds)
}

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	cfg := testConfig(12)
	first, err := simulation.Run(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Workers = 1
	second, err := simulation.Run(context.Background(), cfg)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRunStopsWhenCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := simulation.Run(ctx, testConfig(50))
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, summary.Games, 50)
}

func TestRunRejectsNegativeGames(t *testing.T) {
	summary, err := simulation.Run(context.Background(), testConfig(-1))
	require.ErrorIs(t, err, consts.ErrorsConfigInvalid)
	require.Equal(t, 0, summary.Games)
}

func TestRunWithoutLimitedGames(t *testing.T) {
	cfg := testConfig(100)
	cfg.Seed = 1
	summary, err := simulation.Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, 0, summary.Limited)
	require.Equal(t, 100, summary.Player1Wins+summary.Player2Wins+summary.Ties)
}

func TestSummaryCountsOutcomes(t *testing.T) {
	summary, err := simulation.Run(context.Background(), testConfig(8))
	require.NoError(t, err)

	wins := map[game.Outcome]int{}
	for _, result := range summary.Results {
		if !result.Limited {
			wins[result.Outcome]++
		}
	}
	require.Equal(t, wins[game.Player1Wins], summary.Player1Wins)
	require.Equal(t, wins[game.Player2Wins], summary.Player2Wins)
	require.Equal(t, wins[game.Tie], summary.Ties)
}

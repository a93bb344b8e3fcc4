package event_test

import (
	"testing"

	"github.com/ratel-online/war/war/card"
	"github.com/ratel-online/war/war/card/suit"
	"github.com/ratel-online/war/war/event"
	"github.com/stretchr/testify/require"
)

type gameOverOnly struct {
	outcomes []string
}

func (l *gameOverOnly) OnGameOver(payload event.GameOverPayload) {
	l.outcomes = append(l.outcomes, payload.Outcome)
}

func TestCardPlayed(t *testing.T) {
	bus := event.NewBus()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()
	bus.AddListener(listenerOne)
	bus.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			PlayerName: "Someone",
			Card:       card.NewCard(suit.Spades, card.Ace),
		},
		{
			PlayerName: "Somebody",
			Card:       card.NewCard(suit.Hearts, card.Two),
		},
	}

	for _, payload := range payloads {
		bus.CardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}

func TestEmitOrder(t *testing.T) {
	bus := event.NewBus()
	listener := event.NewDummyListener()
	bus.AddListener(listener)

	war := event.WarDeclaredPayload{Depth: 1, Rank: card.Seven}
	won := event.RoundWonPayload{PlayerName: "Someone", Cards: []*card.Card{card.NewCard(suit.Clubs, card.Seven)}}
	over := event.GameOverPayload{Outcome: "Player1Wins", Winner: "Someone", Rounds: 3}

	bus.WarDeclared.Emit(war)
	bus.RoundWon.Emit(won)
	bus.GameOver.Emit(over)

	require.Equal(t, []interface{}{war, won, over}, listener.ReceivedPayloads())
}

func TestAddListenerOnlySubscribesImplementedEvents(t *testing.T) {
	bus := event.NewBus()
	listener := &gameOverOnly{}
	bus.AddListener(listener)

	bus.CardPlayed.Emit(event.CardPlayedPayload{PlayerName: "Someone"})
	bus.GameOver.Emit(event.GameOverPayload{Outcome: "Tie"})

	require.Equal(t, []string{"Tie"}, listener.outcomes)
}

func TestBusesAreIndependent(t *testing.T) {
	first := event.NewBus()
	second := event.NewBus()
	listener := event.NewDummyListener()
	first.AddListener(listener)

	second.GameOver.Emit(event.GameOverPayload{Outcome: "Tie"})

	require.Empty(t, listener.ReceivedPayloads())
}

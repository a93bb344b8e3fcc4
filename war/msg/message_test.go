package msg_test

import (
	"testing"

	"github.com/ratel-online/war/war/card"
	"github.com/ratel-online/war/war/card/suit"
	"github.com/ratel-online/war/war/msg"
	"github.com/stretchr/testify/require"
)

func init() {
	suit.DisableColor(true)
}

func TestMessages(t *testing.T) {
	ace := card.NewCard(suit.Spades, card.Ace)
	ace.SetSide(card.FaceUp)

	require.Equal(t, "Annie played [A♠]\n", msg.Message.PlayerPlayedCard("Annie", ace))
	require.Equal(t, "! WAR! 7 vs 7\n", msg.Message.WarDeclared(1, card.Seven))
	require.Equal(t, "!! WAR! K vs K\n", msg.Message.WarDeclared(2, card.King))
	require.Equal(t, "Annie takes 6 cards.\n", msg.Message.PlayerWonRound("Annie", make([]*card.Card, 6)))
	require.Equal(t, "Annie takes back a card.\n", msg.Message.PlayerWonRound("Annie", make([]*card.Card, 1)))
	require.Equal(t, "Game over after 12 round(s): Braum wins!\n", msg.Message.GameOver("Player2Wins", "Braum", 12))
	require.Equal(t, "Game over after 3 round(s): Tie.\n", msg.Message.GameOver("Tie", "", 3))
}

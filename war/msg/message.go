package msg

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/war/war/card"
)

var Message = MessageWriter{}

var (
	highlight = color.New(color.FgHiYellow, color.Bold).SprintfFunc()
	victory   = color.New(color.FgHiGreen, color.Bold).SprintfFunc()
)

type MessageWriter struct{}

func (m MessageWriter) GameStarted(player1, player2 string) string {
	return Sprintfln("%s and %s each pick up 26 cards.", player1, player2)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, played *card.Card) string {
	return Sprintfln("%s played %s", playerName, played)
}

func (m MessageWriter) WarDeclared(depth int, rank card.Rank) string {
	return Sprintln(highlight("%s WAR! %s vs %s", strings.Repeat("!", depth), rank, rank))
}

func (m MessageWriter) PlayerWonRound(playerName string, cards []*card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s takes back a card.", playerName)
	}
	return Sprintfln("%s takes %d cards.", playerName, len(cards))
}

func (m MessageWriter) GameOver(outcome, winner string, rounds int) string {
	if winner == "" {
		return Sprintln(victory("Game over after %d round(s): %s.", rounds, outcome))
	}
	return Sprintln(victory("Game over after %d round(s): %s wins!", rounds, winner))
}

func Sprintfln(format string, args ...interface{}) string {
	return Sprintln(fmt.Sprintf(format, args...))
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}

package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/ratel-online/war/war/card/suit"
	"github.com/ratel-online/war/war/event"
	"github.com/ratel-online/war/war/msg"
)

// Display prints game events as they happen, pausing after each line.
type Display struct {
	out   io.Writer
	delay time.Duration
}

func NewDisplay(out io.Writer, delay time.Duration) *Display {
	if out == nil {
		out = suit.Stdout
	}
	return &Display{out: out, delay: delay}
}

func (d *Display) Print(text string) {
	fmt.Fprint(d.out, text)
	if d.delay > 0 {
		time.Sleep(d.delay)
	}
}

func (d *Display) Printfln(format string, args ...interface{}) {
	d.Print(msg.Sprintfln(format, args...))
}

func (d *Display) OnCardPlayed(payload event.CardPlayedPayload) {
	d.Print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (d *Display) OnWarDeclared(payload event.WarDeclaredPayload) {
	d.Print(msg.Message.WarDeclared(payload.Depth, payload.Rank))
}

func (d *Display) OnRoundWon(payload event.RoundWonPayload) {
	d.Print(msg.Message.PlayerWonRound(payload.PlayerName, payload.Cards))
}

func (d *Display) OnGameOver(payload event.GameOverPayload) {
	d.Print(msg.Message.GameOver(payload.Outcome, payload.Winner, payload.Rounds))
}

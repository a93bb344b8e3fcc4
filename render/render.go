package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/war/simulation"
	"github.com/ratel-online/war/war/game"
)

func State(w io.Writer, state game.State, asJSON bool) error {
	if asJSON {
		return writeJSON(w, state)
	}
	_, err := fmt.Fprintln(w, state.String())
	return err
}

func Summary(w io.Writer, summary simulation.Summary, asJSON bool) error {
	if asJSON {
		return writeJSON(w, summary)
	}
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-14s%-10s\n", "Result", "Games"))
	buf.WriteString(fmt.Sprintf("%-14s%-10d\n", summary.Player1, summary.Player1Wins))
	buf.WriteString(fmt.Sprintf("%-14s%-10d\n", summary.Player2, summary.Player2Wins))
	buf.WriteString(fmt.Sprintf("%-14s%-10d\n", "Tie", summary.Ties))
	buf.WriteString(fmt.Sprintf("%-14s%-10d\n", "Round limit", summary.Limited))
	buf.WriteString(fmt.Sprintf("%d game(s), %d war(s), %.1f rounds on average, %d at most\n",
		summary.Games, summary.Wars, summary.MeanRounds, summary.MaxRounds))
	_, err := w.Write(buf.Bytes())
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	body := json.Marshal(v)
	if _, err := w.Write(append(body, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

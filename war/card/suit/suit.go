package suit

import (
	"io"

	"github.com/fatih/color"
)

type Suit interface {
	Name() string
	Symbol() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type suitStruct struct {
	name          string
	symbol        string
	colorFunction func(string, ...interface{}) string
}

func (s *suitStruct) Name() string {
	return s.name
}

func (s *suitStruct) Symbol() string {
	return s.symbol
}

func (s *suitStruct) Paint(text string) string {
	return s.colorFunction("%s", text)
}

func (s *suitStruct) Paintf(text string, args ...interface{}) string {
	return s.colorFunction(text, args...)
}

func (s *suitStruct) String() string {
	return s.Paint(s.symbol)
}

var Spades = &suitStruct{
	name:          "Spades",
	symbol:        "♠",
	colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
}

var Hearts = &suitStruct{
	name:          "Hearts",
	symbol:        "♥",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Diamonds = &suitStruct{
	name:          "Diamonds",
	symbol:        "♦",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Clubs = &suitStruct{
	name:          "Clubs",
	symbol:        "♣",
	colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// All lists the suits in deck order.
var All = []Suit{Spades, Hearts, Diamonds, Clubs}

// DisableColor turns painting off for every suit, e.g. when output is not a terminal.
func DisableColor(disabled bool) {
	color.NoColor = disabled
}

package ui

import (
	"bufio"
	"io"
	"strings"
)

// Prompter reads line answers from a reader, e.g. os.Stdin.
type Prompter struct {
	display *Display
	reader  *bufio.Reader
}

func NewPrompter(display *Display, in io.Reader) *Prompter {
	return &Prompter{display: display, reader: bufio.NewReader(in)}
}

// Continue waits for a line. It returns false when the input ends or the player types q.
func (p *Prompter) Continue(message string) bool {
	p.display.Printfln("%s", message)
	input, err := p.reader.ReadString('\n')
	if err != nil && input == "" {
		return false
	}
	return strings.ToLower(strings.TrimSpace(input)) != "q"
}

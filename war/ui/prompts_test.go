package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ratel-online/war/war/ui"
	"github.com/stretchr/testify/require"
)

func TestContinue(t *testing.T) {
	out := &bytes.Buffer{}
	prompter := ui.NewPrompter(ui.NewDisplay(out, 0), strings.NewReader("\nnext\nQ\n"))

	require.True(t, prompter.Continue("Enter to play"))
	require.True(t, prompter.Continue("Enter to play"))
	require.False(t, prompter.Continue("Enter to play"))
	require.False(t, prompter.Continue("Enter to play"))
	require.Equal(t, strings.Repeat("Enter to play\n", 4), out.String())
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/minesweeper/internal/model"
)

func TestParseCommandPick(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		indexBase int
		want      model.Position
	}{
		{"one-indexed", "1 1", 1, model.Position{Row: 0, Col: 0}},
		{"one-indexed far corner", "15 15", 1, model.Position{Row: 14, Col: 14}},
		{"zero-indexed", "0 2", 0, model.Position{Row: 0, Col: 2}},
		{"extra whitespace", "  3 \t 4 \n", 0, model.Position{Row: 3, Col: 4}},
		{"out of range still parses", "0 0", 1, model.Position{Row: -1, Col: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.line, tt.indexBase)
			require.NoError(t, err)
			assert.Equal(t, CommandPick, cmd.Kind)
			assert.Equal(t, tt.want, cmd.Position)
		})
	}
}

func TestParseCommandQuit(t *testing.T) {
	for _, line := range []string{"", "   ", "\n", "q", "Q", "quit"} {
		cmd, err := ParseCommand(line, 1)
		require.NoError(t, err, "line %q", line)
		assert.Equal(t, CommandQuit, cmd.Kind, "line %q", line)
	}
}

func TestParseCommandCheat(t *testing.T) {
	cmd, err := ParseCommand("cheat", 1)
	require.NoError(t, err)
	assert.Equal(t, CommandCheat, cmd.Kind)
}

func TestParseCommandMalformed(t *testing.T) {
	for _, line := range []string{"1", "1 2 3", "a b", "1 b", "a 1", "1,2", "1.5 2"} {
		_, err := ParseCommand(line, 1)
		assert.ErrorIs(t, err, model.ErrMalformedInput, "line %q", line)
	}
}

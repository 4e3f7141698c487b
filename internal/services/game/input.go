package game

import (
	"strconv"
	"strings"

	"github.com/mcoot/minesweeper/internal/model"
)

// CommandKind identifies what a line of player input asks for
type CommandKind int

const (
	CommandPick  CommandKind = iota // Reveal Position
	CommandQuit                     // Leave the session
	CommandCheat                    // Show the whole grid
)

// Command is a parsed line of player input
type Command struct {
	Kind     CommandKind
	Position model.Position // 0-indexed; only set for CommandPick
}

// ParseCommand interprets one line of input. Coordinates are given as
// "row col" in the variant's index base and converted to 0-indexed.
// A blank line or "q" quits. Bounds are not checked here.
func ParseCommand(line string, indexBase int) (Command, error) {
	text := strings.TrimSpace(line)

	switch strings.ToLower(text) {
	case "", "q", "quit":
		return Command{Kind: CommandQuit}, nil
	case "cheat":
		return Command{Kind: CommandCheat}, nil
	}

	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Command{}, model.ErrMalformedInput
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Command{}, model.ErrMalformedInput
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, model.ErrMalformedInput
	}

	return Command{
		Kind:     CommandPick,
		Position: model.Position{Row: row - indexBase, Col: col - indexBase},
	}, nil
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/services/game"
	"github.com/mcoot/minesweeper/internal/services/render"
)

// Player-facing text
const (
	pickPrompt      = "Pick a box [row col] -> "
	playAgainPrompt = "Play again? [Y/n] -> "
	winMessage      = "YOU WIN!"
	loseMessage     = "BOOM! YOU LOSE."
)

// Loop drives interactive play: one line of input per turn, a redrawn grid
// after each pick, and a replay prompt after every win or loss
type Loop struct {
	controller *game.Controller
	renderer   *render.Renderer
	in         *bufio.Reader
	out        io.Writer
	cheat      bool
	logger     *slog.Logger
}

// NewLoop creates a Loop reading from in and drawing to out. With cheat set
// each new game starts by showing the whole grid.
func NewLoop(controller *game.Controller, renderer *render.Renderer, in io.Reader, out io.Writer, cheat bool, logger *slog.Logger) *Loop {
	return &Loop{
		controller: controller,
		renderer:   renderer,
		in:         bufio.NewReader(in),
		out:        out,
		cheat:      cheat,
		logger:     logger,
	}
}

// Run plays games until the player quits or declines to play again
func (l *Loop) Run(ctx context.Context) error {
	for {
		again, err := l.playOne(ctx)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// playOne plays a single game and reports whether the player wants another
func (l *Loop) playOne(ctx context.Context) (bool, error) {
	g, err := l.controller.NewGame(ctx)
	if err != nil {
		return false, err
	}
	l.draw(g, l.cheat)

	indexBase := g.Config.Variant.IndexBase()

	for {
		if err := ctx.Err(); err != nil {
			return false, l.quit(ctx, g)
		}

		line, ok := l.prompt(pickPrompt)
		if !ok {
			return false, l.quit(ctx, g)
		}

		cmd, err := game.ParseCommand(line, indexBase)
		if err != nil {
			l.println("Invalid input.")
			l.println("Enter a row and column number separated by a space.")
			l.println("Or enter a blank line to quit.")
			continue
		}

		switch cmd.Kind {
		case game.CommandQuit:
			return false, l.quit(ctx, g)
		case game.CommandCheat:
			l.draw(g, true)
			continue
		}

		result, err := l.controller.Pick(ctx, g.ID, cmd.Position)
		if errors.Is(err, model.ErrInvalidPosition) {
			l.println("Invalid input.")
			l.println("Choose a row and column number that actually exist.")
			continue
		}
		if err != nil {
			return false, err
		}

		if result.State == model.GameStateLost {
			l.println(loseMessage)
			break
		}

		l.draw(g, false)
		if result.State == model.GameStateWon {
			l.println(winMessage)
			break
		}
	}

	l.draw(g, true)

	answer, ok := l.prompt(playAgainPrompt)
	if !ok {
		return false, nil
	}
	switch strings.TrimSpace(answer) {
	case "", "y", "Y":
		return true, nil
	default:
		return false, nil
	}
}

// quit abandons the current game, if it is still in progress
func (l *Loop) quit(ctx context.Context, g *model.Game) error {
	if g.State.IsFinished() {
		return nil
	}
	_, err := l.controller.Quit(context.WithoutCancel(ctx), g.ID)
	return err
}

// prompt writes text and reads one line of any length. It returns false at
// end of input.
func (l *Loop) prompt(text string) (string, bool) {
	_, _ = fmt.Fprint(l.out, text)
	line, err := l.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		if !errors.Is(err, io.EOF) {
			l.logger.Warn("failed to read input", slog.String("error", err.Error()))
		}
		_, _ = fmt.Fprintln(l.out)
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (l *Loop) draw(g *model.Game, full bool) {
	_, _ = fmt.Fprint(l.out, l.renderer.RenderGame(g, full))
}

func (l *Loop) println(msg string) {
	_, _ = fmt.Fprintln(l.out, msg)
}

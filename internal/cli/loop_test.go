package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/minesweeper/internal/factory"
	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/testutil"
)

type LoopSuite struct {
	suite.Suite
	app *factory.TestApp
	out *bytes.Buffer
	ctx context.Context
}

func TestLoopSuite(t *testing.T) {
	suite.Run(t, new(LoopSuite))
}

func (s *LoopSuite) SetupTest() {
	s.app = factory.NewTestApp(model.GameConfig{Variant: model.VariantCompact, Size: 3, MineCount: 1})
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()
}

func (s *LoopSuite) run(input string, cheat bool) {
	loop := NewLoop(s.app.GameController, s.app.Renderer, strings.NewReader(input), s.out, cheat, testutil.NopLogger())
	s.Require().NoError(loop.Run(s.ctx))
}

func (s *LoopSuite) stats() model.SessionStats {
	stats, err := s.app.GameController.Stats(s.ctx)
	s.Require().NoError(err)
	return stats
}

func (s *LoopSuite) TestFloodFillWin() {
	s.app.QueueGame("GAME0001", model.Position{Row: 0, Col: 0})

	s.run("2 2\nn\n", false)

	out := s.out.String()
	s.Contains(out, "0 | . . .")
	s.Contains(out, "0 | . 1 0")
	s.Contains(out, winMessage)
	s.Contains(out, "0 | x 1 0")
	s.Contains(out, playAgainPrompt)
	s.Equal(model.SessionStats{Played: 1, Won: 1}, s.stats())
}

func (s *LoopSuite) TestMineLoses() {
	s.app.QueueGame("GAME0001", model.Position{Row: 0, Col: 0})

	s.run("0 0\nn\n", false)

	out := s.out.String()
	s.Contains(out, loseMessage)
	s.NotContains(out, winMessage)
	s.Contains(out, "0 | x 1 0")
	s.Equal(model.SessionStats{Played: 1, Lost: 1}, s.stats())
}

func (s *LoopSuite) TestNumberedCellContinuesGame() {
	s.app.QueueGame("GAME0001", model.Position{Row: 1, Col: 1})

	s.run("0 0\n\n", false)

	out := s.out.String()
	s.Contains(out, "0 | 1 . .")
	s.Equal(2, strings.Count(out, pickPrompt))
	s.Equal(model.SessionStats{Played: 1, Quit: 1}, s.stats())
}

func (s *LoopSuite) TestMalformedInputIsRetried() {
	s.app.QueueGame("GAME0001", model.Position{Row: 0, Col: 0})

	s.run("abc\n1\n2 2\nn\n", false)

	out := s.out.String()
	s.Equal(2, strings.Count(out, "Enter a row and column number separated by a space."))
	s.Contains(out, "Or enter a blank line to quit.")
	s.Contains(out, winMessage)
}

func (s *LoopSuite) TestOverlongLineIsRetried() {
	s.app.QueueGame("GAME0001", model.Position{Row: 0, Col: 0})

	s.run(strings.Repeat("a", 70000)+"\n2 2\nn\n", false)

	out := s.out.String()
	s.Equal(1, strings.Count(out, "Invalid input."))
	s.Equal(2, strings.Count(out, pickPrompt))
	s.Contains(out, winMessage)
	s.Equal(model.SessionStats{Played: 1, Won: 1}, s.stats())
}

func (s *LoopSuite) TestUnterminatedLastLineIsPlayed() {
	s.app.QueueGame("GAME0001", model.Position{Row: 0, Col: 0})

	s.run("2 2\nn", false)

	s.Contains(s.out.String(), winMessage)
	s.Equal(model.SessionStats{Played: 1, Won: 1}, s.stats())
}

func (s *LoopSuite) TestOutOfRangeIsRetried() {
	s.app.QueueGame("GAME0001", model.Position{Row: 0, Col: 0})

	s.run("3 3\n-1 0\nq\n", false)

	out := s.out.String()
	s.Equal(2, strings.Count(out, "Choose a row and column number that actually exist."))
	s.Equal(model.SessionStats{Played: 1, Quit: 1}, s.stats())
}

func (s *LoopSuite) TestCheatShowsGridWithoutEndingGame() {
	s.app.QueueGame("GAME0001", model.Position{Row: 0, Col: 0})

	s.run("cheat\n2 2\nn\n", false)

	out := s.out.String()
	cheatAt := strings.Index(out, "0 | x 1 0")
	winAt := strings.Index(out, winMessage)
	s.Require().GreaterOrEqual(cheatAt, 0)
	s.Less(cheatAt, winAt)
}

func (s *LoopSuite) TestCheatFlagShowsGridAtStart() {
	s.app.QueueGame("GAME0001", model.Position{Row: 0, Col: 0})

	s.run("\n", true)

	s.True(strings.HasPrefix(s.out.String(), "    0 1 2\n   ------\n0 | x 1 0\n"))
}

func (s *LoopSuite) TestBlankLineQuitsWithoutReplayPrompt() {
	s.app.QueueGame("GAME0001", model.Position{Row: 0, Col: 0})

	s.run("\n", false)

	s.NotContains(s.out.String(), playAgainPrompt)
	s.Equal(model.SessionStats{Played: 1, Quit: 1}, s.stats())
}

func (s *LoopSuite) TestEndOfInputQuits() {
	s.app.QueueGame("GAME0001", model.Position{Row: 0, Col: 0})

	s.run("", false)

	s.Equal(model.SessionStats{Played: 1, Quit: 1}, s.stats())
}

func (s *LoopSuite) TestReplayStartsNewGame() {
	s.app.QueueGame("GAME0001", model.Position{Row: 0, Col: 0})
	s.app.QueueGame("GAME0002", model.Position{Row: 0, Col: 0})
	s.app.QueueGame("GAME0003", model.Position{Row: 2, Col: 2})

	// lose, blank answer means yes, win, "Y" means yes, then quit
	s.run("0 0\n\n2 2\nY\n\n", false)

	s.Equal(2, strings.Count(s.out.String(), playAgainPrompt))
	s.Equal(model.SessionStats{Played: 3, Won: 1, Lost: 1, Quit: 1}, s.stats())
}

func (s *LoopSuite) TestCancelledContextStopsBeforeGenerating() {
	s.app.QueueGame("GAME0001", model.Position{Row: 0, Col: 0})
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	loop := NewLoop(s.app.GameController, s.app.Renderer, strings.NewReader("2 2\n"), s.out, false, testutil.NopLogger())
	s.ErrorIs(loop.Run(ctx), context.Canceled)

	s.Empty(s.out.String())
	s.Equal(model.SessionStats{}, s.stats())
}

func (s *LoopSuite) TestClassicVariantIsOneIndexed() {
	s.app = factory.NewTestApp(model.GameConfig{Variant: model.VariantClassic, Size: 3, MineCount: 1})
	s.app.QueueGame("GAME0001", model.Position{Row: 0, Col: 0})

	s.run("3 3\nn\n", false)

	out := s.out.String()
	s.Contains(out, "       1  2  3")
	s.Contains(out, winMessage)
}

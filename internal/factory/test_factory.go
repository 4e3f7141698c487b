package factory

import (
	"time"

	"github.com/mcoot/minesweeper/internal/dependencies/mocks"
	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/storage/memory"
	"github.com/mcoot/minesweeper/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The config is used as given, without variant defaults.
func NewTestApp(gameCfg model.GameConfig) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(gameCfg, store, mockClock, mockRandom, false, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueueGame queues the draws for a new game with mines at the given
// positions and the given game ID
func (t *TestApp) QueueGame(id string, mines ...model.Position) {
	t.MockRandom.QueueMines(mines...)
	t.MockRandom.QueueString(id)
}

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/mcoot/minesweeper/internal/factory"
	"github.com/mcoot/minesweeper/internal/model"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	Variant string
	Size    int
	Mines   int
	Seed    uint64
	Cheat   bool
	Color   string
	Output  string
	Verbose bool

	// Whether each flag was given explicitly, since 0 is a valid value
	SeedSet  bool
	SizeSet  bool
	MinesSet bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Variant: getEnvOrDefault("MINESWEEPER_VARIANT", string(model.VariantClassic)),
		Color:   getEnvOrDefault("MINESWEEPER_COLOR", ColorAuto),
		Output:  OutputText,
	}
}

// Validate checks the flag values that cobra cannot check itself
func (c *Config) Validate() error {
	if _, err := model.ParseVariant(c.Variant); err != nil {
		return err
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q: must be auto, always or never", c.Color)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	return nil
}

// ColorEnabled decides whether grids written to out should be styled
func (c *Config) ColorEnabled(out io.Writer) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Logger builds the application logger. Logs go to w so they never mix
// with the grid on stdout.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// FactoryConfig converts CLI settings into the application factory config
func (c *Config) FactoryConfig(out io.Writer, logger *slog.Logger) factory.Config {
	cfg := factory.Config{
		Variant: model.Variant(c.Variant),
		Color:   c.ColorEnabled(out),
		Logger:  logger,
	}
	if c.SizeSet {
		size := c.Size
		cfg.Size = &size
	}
	if c.MinesSet {
		mines := c.Mines
		cfg.MineCount = &mines
	}
	if c.SeedSet {
		seed := c.Seed
		cfg.Seed = &seed
	}
	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

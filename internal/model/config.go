package model

import "fmt"

// Variant selects a preset of grid size, mine count, index base and layout
type Variant string

const (
	VariantClassic Variant = "classic" // 15x15, 30 mines, 1-indexed
	VariantCompact Variant = "compact" // 9x9, 10 mines, 0-indexed
)

// ValidVariants returns all valid variant names
func ValidVariants() []Variant {
	return []Variant{VariantClassic, VariantCompact}
}

// ParseVariant converts a name into a Variant
func ParseVariant(name string) (Variant, error) {
	for _, v := range ValidVariants() {
		if string(v) == name {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// IndexBase returns the number players add to 0-indexed coordinates
func (v Variant) IndexBase() int {
	if v == VariantCompact {
		return 0
	}
	return 1
}

// GameConfig holds the settings for a game
type GameConfig struct {
	Variant   Variant
	Size      int
	MineCount int
}

// DefaultGameConfig returns the preset configuration for a variant
func DefaultGameConfig(variant Variant) GameConfig {
	switch variant {
	case VariantCompact:
		return GameConfig{Variant: VariantCompact, Size: 9, MineCount: 10}
	default:
		return GameConfig{Variant: VariantClassic, Size: 15, MineCount: 30}
	}
}

// Validate rejects configurations that cannot produce a playable grid.
// A grid needs at least one safe cell, so MineCount must be below Size*Size.
func (c GameConfig) Validate() error {
	return ValidateGridParams(c.Size, c.MineCount)
}

// ValidateGridParams checks a size and mine count pair
func ValidateGridParams(size, mineCount int) error {
	if size < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if mineCount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMineCount, mineCount)
	}
	if mineCount >= size*size {
		return fmt.Errorf("%w: %d mines on a %dx%d grid", ErrTooManyMines, mineCount, size, size)
	}
	return nil
}

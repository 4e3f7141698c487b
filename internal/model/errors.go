package model

import "errors"

// Common errors used across the application
var (
	// Configuration errors
	ErrInvalidSize      = errors.New("grid size must be at least 1")
	ErrInvalidMineCount = errors.New("mine count must not be negative")
	ErrTooManyMines     = errors.New("mine count must be less than the number of cells")
	ErrUnknownVariant   = errors.New("unknown variant")

	// Input errors
	ErrMalformedInput  = errors.New("expected a row and column number")
	ErrInvalidPosition = errors.New("position is outside the grid")

	// Game errors
	ErrGameOver     = errors.New("game is already over")
	ErrGameNotFound = errors.New("game not found")
)

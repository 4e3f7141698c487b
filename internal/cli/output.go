package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/minesweeper/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// SessionSummary is the end-of-session report
type SessionSummary struct {
	Played int `json:"played"`
	Won    int `json:"won"`
	Lost   int `json:"lost"`
	Quit   int `json:"quit"`
}

// NewSessionSummary converts session stats into the report type
func NewSessionSummary(stats model.SessionStats) SessionSummary {
	return SessionSummary{
		Played: stats.Played,
		Won:    stats.Won,
		Lost:   stats.Lost,
		Quit:   stats.Quit,
	}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SessionSummary:
		o.printSessionSummary(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printSessionSummary(s SessionSummary) {
	_, _ = fmt.Fprintf(o.w, "Games played: %d (won %d, lost %d, quit %d)\n", s.Played, s.Won, s.Lost, s.Quit)
}

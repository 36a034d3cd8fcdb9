package parser

import (
	"context"
	"time"

	"smartmeet/internal/model"
)

// Engine extracts meeting candidates from natural-language text.
type Engine interface {
	// Parse extracts a candidate meeting from text, resolving relative
	// dates against now. Parse never fails: when extraction is impossible
	// the returned candidate carries failed confidence and empty fields.
	Parse(ctx context.Context, text string, now time.Time) model.CandidateMeeting

	// Name identifies the engine (e.g. "llm", "heuristic")
	Name() string
}

package parser

import (
	"context"

	"smartmeet/pkg/llmprovider"
)

// LLMClient is the slice of the provider manager used for extraction
type LLMClient interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// extractionPayload is the JSON object the model is instructed to return
type extractionPayload struct {
	Participants    []string `json:"participants"`
	StartTime       string   `json:"start_time"`
	DateMention     string   `json:"date_mention"`
	TimeMention     string   `json:"time_mention"`
	DurationMinutes int      `json:"duration_minutes"`
	Topic           string   `json:"topic"`
	Priority        string   `json:"priority"`
	Confidence      string   `json:"confidence"`
}

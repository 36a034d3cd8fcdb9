package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"

	"smartmeet/internal/model"
	"smartmeet/pkg/datemath"
	"smartmeet/pkg/llmprovider"
	"smartmeet/pkg/log"
)

// LLMEngine extracts meeting candidates through an LLM provider chain
type LLMEngine struct {
	l       log.Logger
	client  LLMClient
	dates   *datemath.Parser
	timeout time.Duration
}

// NewLLMEngine creates an LLM-backed extraction engine. The timeout
// bounds every Parse call; zero falls back to DefaultParseTimeout.
func NewLLMEngine(l log.Logger, client LLMClient, dates *datemath.Parser, timeout time.Duration) *LLMEngine {
	if timeout <= 0 {
		timeout = DefaultParseTimeout
	}
	return &LLMEngine{
		l:       l,
		client:  client,
		dates:   dates,
		timeout: timeout,
	}
}

// Name implements Engine
func (e *LLMEngine) Name() string {
	return EngineLLM
}

// Parse implements Engine. Provider failures, timeouts and unusable
// model output all degrade to a failed-confidence candidate.
func (e *LLMEngine) Parse(ctx context.Context, text string, now time.Time) model.CandidateMeeting {
	text = strings.TrimSpace(text)
	if text == "" {
		return failedCandidate()
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: ExtractionSystemPrompt}},
		},
		Messages: []llmprovider.Message{
			{
				Role:  "user",
				Parts: []llmprovider.Part{{Text: buildExtractionPrompt(text, now.In(e.dates.Location()))}},
			},
		},
		Temperature: extractionTemperature,
		MaxTokens:   extractionMaxTokens,
	}

	resp, err := e.client.GenerateContent(ctx, req)
	if err != nil {
		e.l.Warnf(ctx, "meeting extraction call failed: %v", err)
		return failedCandidate()
	}

	payload, err := decodePayload(responseText(resp))
	if err != nil {
		e.l.Warnf(ctx, "meeting extraction produced unusable output: %v", err)
		return failedCandidate()
	}

	return e.toCandidate(payload, now)
}

// buildExtractionPrompt wraps the request text with the reference time
// the model must resolve relative dates against
func buildExtractionPrompt(text string, now time.Time) string {
	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(time.RFC3339),
		now.Weekday().String(),
		now.Format("2006-01-02"),
		now.AddDate(0, 0, 1).Format("2006-01-02"),
		text,
	)
}

// responseText concatenates all text parts of a provider response
func responseText(resp *llmprovider.Response) string {
	var sb strings.Builder
	for _, p := range resp.Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String())
}

// decodePayload turns raw model output into an extractionPayload.
// Models wrap JSON in code fences or prose often enough that the raw
// text is first reduced to its JSON object and run through jsonrepair.
func decodePayload(raw string) (extractionPayload, error) {
	var payload extractionPayload

	cleaned := extractJSON(raw)
	if cleaned == "" {
		return payload, fmt.Errorf("empty model response")
	}

	repaired, err := jsonrepair.JSONRepair(cleaned)
	if err != nil {
		return payload, fmt.Errorf("failed to repair model JSON: %w", err)
	}

	if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
		return payload, fmt.Errorf("failed to decode model JSON: %w", err)
	}

	return payload, nil
}

// extractJSON strips code fences and surrounding prose from raw model
// output, keeping the outermost JSON object
func extractJSON(s string) string {
	s = strings.TrimSpace(s)

	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimPrefix(s, "JSON")
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}

	if i := strings.IndexByte(s, '{'); i >= 0 {
		if j := strings.LastIndexByte(s, '}'); j > i {
			s = s[i : j+1]
		}
	}

	return strings.TrimSpace(s)
}

// toCandidate maps a decoded payload onto the domain candidate
func (e *LLMEngine) toCandidate(p extractionPayload, now time.Time) model.CandidateMeeting {
	c := model.CandidateMeeting{
		Participants: cleanNames(p.Participants),
		Topic:        strings.TrimSpace(p.Topic),
		Priority:     normalizePriority(p.Priority),
		Confidence:   normalizeConfidence(p.Confidence),
		DateMention:  strings.TrimSpace(p.DateMention),
		TimeMention:  strings.TrimSpace(p.TimeMention),
	}

	if p.DurationMinutes > 0 {
		d := p.DurationMinutes
		c.DurationMinutes = &d
	}

	if t, err := e.dates.ParseAbsolute(p.StartTime); err == nil {
		t = t.In(e.dates.Location())
		c.StartTime = &t
	} else if c.DateMention != "" && c.TimeMention != "" {
		// Model echoed the phrases without a usable timestamp
		if t, ok := e.resolveMentions(c.DateMention, c.TimeMention, now); ok {
			c.StartTime = &t
		}
	}

	return c
}

// resolveMentions rebuilds a start time from the raw date and time
// phrases when the model's RFC3339 timestamp is unusable
func (e *LLMEngine) resolveMentions(dateMention, timeMention string, now time.Time) (time.Time, bool) {
	day, err := e.dates.Parse(dateMention, now)
	if err != nil {
		return time.Time{}, false
	}
	clock, _, ok := datemath.FindClock(timeMention)
	if !ok {
		return time.Time{}, false
	}
	return e.dates.At(day, clock), true
}

// failedCandidate is the canonical result for failed extraction
func failedCandidate() model.CandidateMeeting {
	return model.CandidateMeeting{Confidence: model.ConfidenceFailed}
}

// cleanNames trims, drops empties and deduplicates case-insensitively
// while preserving first-seen order
func cleanNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizePriority(s string) model.Priority {
	switch model.Priority(strings.ToLower(strings.TrimSpace(s))) {
	case model.PriorityLow:
		return model.PriorityLow
	case model.PriorityHigh:
		return model.PriorityHigh
	case model.PriorityUrgent:
		return model.PriorityUrgent
	default:
		return model.PriorityMedium
	}
}

func normalizeConfidence(s string) model.Confidence {
	switch model.Confidence(strings.ToLower(strings.TrimSpace(s))) {
	case model.ConfidenceHigh:
		return model.ConfidenceHigh
	case model.ConfidenceMedium:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}

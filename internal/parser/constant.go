package parser

import "time"

// Engine names
const (
	EngineLLM       = "llm"
	EngineHeuristic = "heuristic"
)

// Defaults
const (
	DefaultParseTimeout = 30 * time.Second

	extractionTemperature = 0.1
	extractionMaxTokens   = 1024
)

// Confidence score bands for the heuristic engine
const (
	confidenceHighThreshold   = 0.7
	confidenceMediumThreshold = 0.4
)

// System prompt for LLM extraction
const (
	ExtractionSystemPrompt = `You are a meeting request extraction assistant. Extract structured meeting details from the user's message.

Respond with ONLY a JSON object. No markdown, no code fences, no explanations:
{
  "participants": ["names or email addresses mentioned as attendees"],
  "start_time": "meeting start in RFC3339 format, or empty string when no date and time are mentioned",
  "date_mention": "the original date phrase (e.g. \"tomorrow\"), or empty string",
  "time_mention": "the original time phrase (e.g. \"2 pm\"), or empty string",
  "duration_minutes": 0,
  "topic": "the meeting subject, or empty string",
  "priority": "low, medium, high or urgent",
  "confidence": "high, medium or low"
}

Rules:
1. Resolve relative dates (today, tomorrow, next monday) against the reference time given in the message.
2. start_time must carry the same UTC offset as the reference time.
3. duration_minutes is 0 when the message does not mention a duration.
4. Never invent participants, times or durations that are not in the message.
5. confidence is high when participants, date and time are all explicit, medium when some details are missing, low when the message is vague.`
)

// Reference time template injected into every extraction prompt
const (
	TimeContextTemplate = `[CONTEXT - reference time]
- Now: %s (%s)
- Today: %s
- Tomorrow: %s

Resolve every relative date in the request against the reference time above.

Request: %s`
)

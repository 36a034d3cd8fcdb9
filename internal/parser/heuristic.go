package parser

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"smartmeet/internal/model"
	"smartmeet/pkg/datemath"
)

// HeuristicEngine extracts meeting candidates with regex patterns. It
// serves as the zero-dependency fallback when no LLM provider is
// configured.
type HeuristicEngine struct {
	dates *datemath.Parser
}

// NewHeuristicEngine creates a regex-based extraction engine
func NewHeuristicEngine(dates *datemath.Parser) *HeuristicEngine {
	return &HeuristicEngine{dates: dates}
}

// Name implements Engine
func (e *HeuristicEngine) Name() string {
	return EngineHeuristic
}

var (
	// Participant patterns: "with John Smith", "and Sarah", "Sarah and"
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i:with)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
		regexp.MustCompile(`\b(?i:and)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
		regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+(?i:and)\b`),
	}

	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	dateMentionRe = regexp.MustCompile(`(?i)\b(?:(?:next|this)\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)|today|tomorrow|yesterday|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

	halfHourRe = regexp.MustCompile(`(?i)\b(?:half|1/2)[\s-]*(?:an\s+)?hour\b`)
	anHourRe   = regexp.MustCompile(`(?i)\ban\s+hour\b`)
	hoursRe    = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*hours?\b`)
	minutesRe  = regexp.MustCompile(`(?i)\b(\d+)\s*min(?:ute)?s?\b`)

	urgentRe  = regexp.MustCompile(`(?i)\b(?:urgent|asap|immediately|critical)\b`)
	highRe    = regexp.MustCompile(`(?i)\b(?:high|important)\b`)
	lowPrioRe = regexp.MustCompile(`(?i)\b(?:low|normal)\b`)

	meetingKeywordRe = regexp.MustCompile(`(?i)\b(?:meeting|call|sync|standup|review|discussion)\b`)

	topicRe = regexp.MustCompile(`(?i)\b(?:about|regarding|to discuss)\s+(.+?)(?:\s+(?:at|on|for|with|today|tomorrow|yesterday|next|this)\b|[.!?,]|$)`)
)

// nameStopWords cuts date and meeting words out of capitalized name
// captures ("John Tomorrow" -> "John")
var nameStopWords = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
	"today": {}, "tomorrow": {}, "yesterday": {},
	"meeting": {}, "call": {}, "sync": {}, "standup": {},
	"review": {}, "discussion": {},
	"next": {}, "this": {},
}

// Parse implements Engine
func (e *HeuristicEngine) Parse(ctx context.Context, text string, now time.Time) model.CandidateMeeting {
	text = strings.TrimSpace(text)
	if text == "" {
		return failedCandidate()
	}

	c := model.CandidateMeeting{
		Participants: extractParticipants(text),
		Topic:        extractTopic(text),
		Priority:     extractPriority(text),
		DateMention:  dateMentionRe.FindString(text),
	}

	if clock, phrase, ok := datemath.FindClock(text); ok {
		c.TimeMention = phrase
		if c.DateMention != "" {
			if day, err := e.dates.Parse(c.DateMention, now); err == nil {
				t := e.dates.At(day, clock)
				c.StartTime = &t
			}
		}
	}

	if minutes, ok := extractDurationMinutes(text); ok {
		c.DurationMinutes = &minutes
	}

	c.Confidence = scoreConfidence(text, c)
	return c
}

// extractParticipants collects capitalized names around "with"/"and"
// plus raw email addresses
func extractParticipants(text string) []string {
	var raw []string
	for _, re := range namePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if name := truncateAtStopWord(m[1]); name != "" {
				raw = append(raw, name)
			}
		}
	}
	raw = append(raw, emailRe.FindAllString(text, -1)...)

	return dropContained(cleanNames(raw))
}

// truncateAtStopWord cuts a name capture at the first date or meeting
// word
func truncateAtStopWord(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		if _, stop := nameStopWords[strings.ToLower(w)]; stop {
			words = words[:i]
			break
		}
	}
	return strings.Join(words, " ")
}

// dropContained removes captures that are a word-subset of a longer
// capture ("Smith" when "John Smith" is present)
func dropContained(names []string) []string {
	if len(names) < 2 {
		return names
	}
	out := make([]string, 0, len(names))
	for i, n := range names {
		ln := strings.ToLower(n)
		contained := false
		for j, other := range names {
			if i == j {
				continue
			}
			lo := strings.ToLower(other)
			if len(ln) < len(lo) && strings.Contains(" "+lo+" ", " "+ln+" ") {
				contained = true
				break
			}
		}
		if !contained {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// extractTopic captures an explicit subject clause ("about X",
// "to discuss X"), stopping before trailing date or time words
func extractTopic(text string) string {
	m := topicRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func extractPriority(text string) model.Priority {
	switch {
	case urgentRe.MatchString(text):
		return model.PriorityUrgent
	case highRe.MatchString(text):
		return model.PriorityHigh
	case lowPrioRe.MatchString(text):
		return model.PriorityLow
	default:
		return model.PriorityMedium
	}
}

// extractDurationMinutes resolves duration phrases to minutes. Returns
// false when the text has no usable duration.
func extractDurationMinutes(text string) (int, bool) {
	if halfHourRe.MatchString(text) {
		return 30, true
	}

	if loc := hoursRe.FindStringSubmatchIndex(text); loc != nil {
		hours, err := strconv.ParseFloat(text[loc[2]:loc[3]], 64)
		if err != nil {
			return 0, false
		}
		total := int(hours*60 + 0.5)
		// "1 hour 30 minutes" adds the minute part after the hour match
		if m := minutesRe.FindStringSubmatch(text[loc[1]:]); m != nil {
			extra, _ := strconv.Atoi(m[1])
			total += extra
		}
		return total, total > 0
	}

	if m := minutesRe.FindStringSubmatch(text); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return minutes, minutes > 0
	}

	if anHourRe.MatchString(text) {
		return 60, true
	}

	return 0, false
}

// scoreConfidence grades extraction completeness: participants and a
// date weigh most, a time and meeting keyword add the rest
func scoreConfidence(text string, c model.CandidateMeeting) model.Confidence {
	score := 0.1
	if len(c.Participants) > 0 {
		score += 0.3
	}
	if c.DateMention != "" {
		score += 0.3
	}
	if c.TimeMention != "" {
		score += 0.2
	}
	if meetingKeywordRe.MatchString(text) {
		score += 0.1
	}

	switch {
	case score >= confidenceHighThreshold:
		return model.ConfidenceHigh
	case score >= confidenceMediumThreshold:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}

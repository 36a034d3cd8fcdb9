package datemath

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	meridiemNormalizer = strings.NewReplacer("a.m.", "am", "p.m.", "pm", "a.m", "am", "p.m", "pm")

	clock12WithMinutes = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(am|pm)`)
	clock12Bare        = regexp.MustCompile(`(\d{1,2})\s*(am|pm)`)
	clock24            = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
)

// FindClock scans text for the first time-of-day expression and returns the
// parsed clock plus the matched phrase. Supported forms: "2:30 pm", "2 pm",
// "2 p.m.", "14:30".
func FindClock(text string) (Clock, string, bool) {
	normalized := meridiemNormalizer.Replace(strings.ToLower(text))

	if m := clock12WithMinutes.FindStringSubmatch(normalized); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if c, ok := from12Hour(hour, minute, m[3]); ok {
			return c, m[0], true
		}
	}

	if m := clock12Bare.FindStringSubmatch(normalized); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if c, ok := from12Hour(hour, 0, m[2]); ok {
			return c, m[0], true
		}
	}

	if m := clock24.FindStringSubmatch(normalized); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour <= 23 && minute <= 59 {
			return Clock{Hour: hour, Minute: minute}, m[0], true
		}
	}

	return Clock{}, "", false
}

func from12Hour(hour, minute int, meridiem string) (Clock, bool) {
	if hour < 1 || hour > 12 || minute > 59 {
		return Clock{}, false
	}
	if meridiem == "pm" && hour != 12 {
		hour += 12
	}
	if meridiem == "am" && hour == 12 {
		hour = 0
	}
	return Clock{Hour: hour, Minute: minute}, true
}

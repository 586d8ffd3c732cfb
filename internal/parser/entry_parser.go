package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/okravets/dayline/internal/models"
)

// ParsedEntry represents a task entry parsed from quick-add syntax.
type ParsedEntry struct {
	Text        string
	Category    models.Category
	HasCategory bool
	Time        string
	Errors      []string
}

var (
	categoryRegex = regexp.MustCompile(`@([a-zA-Z-]+)`)
	clockRegex    = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
)

// ParseEntry extracts metadata from a quick-add line.
// Syntax: "Buy milk @health 9:00"
func ParseEntry(input string) ParsedEntry {
	result := ParsedEntry{
		Errors: []string{},
	}

	// Extract category (@health, @work, ...)
	categoryMatches := categoryRegex.FindStringSubmatch(input)
	if len(categoryMatches) > 1 {
		category, err := models.ParseCategory(categoryMatches[1])
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
		} else {
			result.Category = category
			result.HasCategory = true
		}
		// Remove from text either way
		input = categoryRegex.ReplaceAllString(input, "")
	}

	// Extract time label (9:00, 14:30)
	clockMatches := clockRegex.FindStringSubmatch(input)
	if len(clockMatches) > 0 {
		normalized, err := NormalizeClock(clockMatches[0])
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
		} else {
			result.Time = normalized
		}
		input = clockRegex.ReplaceAllString(input, "")
	}

	// Clean up the text (remove extra spaces)
	result.Text = strings.Join(strings.Fields(input), " ")

	return result
}

// NormalizeClock validates an h:mm or hh:mm label and strips a leading
// zero from the hour, so "09:00" matches the canonical slot "9:00".
func NormalizeClock(input string) (string, error) {
	matches := clockRegex.FindStringSubmatch(strings.TrimSpace(input))
	if len(matches) != 3 {
		return "", fmt.Errorf("invalid time %q (use h:mm, e.g. 9:00)", input)
	}

	hour, err := strconv.Atoi(matches[1])
	if err != nil || hour > 23 {
		return "", fmt.Errorf("hour must be between 0 and 23")
	}
	minute, err := strconv.Atoi(matches[2])
	if err != nil || minute > 59 {
		return "", fmt.Errorf("minutes must be between 00 and 59")
	}

	return fmt.Sprintf("%d:%02d", hour, minute), nil
}

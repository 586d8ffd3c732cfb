package models

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies a task into one of the fixed planning areas.
// The set is closed so derived views can iterate it exhaustively.
type Category int

const (
	CategoryHealth Category = iota
	CategoryWork
	CategoryMind
	CategoryOther
)

// Categories returns all categories in their fixed display order.
func Categories() []Category {
	return []Category{CategoryHealth, CategoryWork, CategoryMind, CategoryOther}
}

// String returns the canonical lowercase name used in quick-add syntax
// and the CLI.
func (c Category) String() string {
	switch c {
	case CategoryHealth:
		return "health"
	case CategoryWork:
		return "work"
	case CategoryMind:
		return "mind"
	default:
		return "other"
	}
}

// Label returns the display name.
func (c Category) Label() string {
	switch c {
	case CategoryHealth:
		return "Health"
	case CategoryWork:
		return "Work"
	case CategoryMind:
		return "Mental Health"
	default:
		return "Other"
	}
}

// Icon returns the category glyph for the TUI.
func (c Category) Icon() string {
	switch c {
	case CategoryHealth:
		return "💚"
	case CategoryWork:
		return "💼"
	case CategoryMind:
		return "🧠"
	default:
		return "📌"
	}
}

// Color returns the accent hex color for the category.
func (c Category) Color() string {
	switch c {
	case CategoryHealth:
		return "#22C55E"
	case CategoryWork:
		return "#7C3AED"
	case CategoryMind:
		return "#38BDF8"
	default:
		return "#F59E0B"
	}
}

// ParseCategory converts a user-supplied name into a Category.
// Accepts canonical names plus a few common aliases.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "health":
		return CategoryHealth, nil
	case "work":
		return CategoryWork, nil
	case "mind", "mental", "mental-health":
		return CategoryMind, nil
	case "other", "misc":
		return CategoryOther, nil
	default:
		return CategoryOther, fmt.Errorf("unknown category %q (use: health, work, mind, other)", s)
	}
}

// Theme is the two-valued display theme. It is the only state that
// survives the session.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme validates a stored or user-supplied theme name.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	default:
		return ThemeDark, fmt.Errorf("unknown theme %q (use: light, dark)", s)
	}
}

// Flip returns the opposite theme.
func (t Theme) Flip() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Task represents a single item on the day plan.
type Task struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Category  Category  `json:"category"`
	Time      string    `json:"time,omitempty"` // "9:00"; empty means unscheduled
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// CategorySummary is the per-category count derived from the current
// collection. Never stored; recomputed on every read.
type CategorySummary struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Icon     string   `json:"icon"`
	Count    int      `json:"count"`
}

// TimeSlot is one row of the timeline view: a canonical slot label and
// the tasks scheduled exactly at it.
type TimeSlot struct {
	Label string `json:"label"`
	Tasks []Task `json:"tasks"`
}

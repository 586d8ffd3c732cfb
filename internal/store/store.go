package store

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/okravets/dayline/internal/models"
)

// View selects which projection of the collection the UI renders.
type View int

const (
	ViewTasks View = iota
	ViewTimeline
)

// ThemeStore persists the theme preference across sessions. The bool
// result of Theme reports whether a preference was ever saved.
type ThemeStore interface {
	Theme() (models.Theme, bool, error)
	SetTheme(models.Theme) error
}

// Store holds one session's task collection, the add-form draft, and
// the view/theme selectors. Task data lives only in memory; the theme
// flag is the single write-through to durable storage.
type Store struct {
	tasks  []models.Task
	nextID int

	draftText     string
	draftCategory models.Category
	draftTime     string

	view  View
	theme models.Theme

	themes ThemeStore
	logger *log.Logger
}

// New creates an empty store. themes may be nil, in which case the
// theme still toggles but is not persisted. The stored preference, if
// any, is applied before the first read.
func New(themes ThemeStore, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Store{
		nextID:        1,
		draftCategory: models.CategoryOther,
		view:          ViewTasks,
		theme:         models.ThemeDark,
		themes:        themes,
		logger:        logger,
	}

	if themes != nil {
		theme, ok, err := themes.Theme()
		if err != nil {
			logger.Warn("could not read theme preference, using default", "err", err)
		} else if ok {
			s.theme = theme
		}
	}

	return s
}

// AddTask appends a new task with a fresh id. Whitespace-only text is
// a silent no-op. The category and time are taken as given; slot labels
// are matched by exact string equality later.
func (s *Store) AddTask(text string, category models.Category, slot string) (models.Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, false
	}

	task := models.Task{
		ID:        s.nextID,
		Text:      text,
		Category:  category,
		Time:      strings.TrimSpace(slot),
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.tasks = append(s.tasks, task)

	s.logger.Debug("task added", "id", task.ID, "category", task.Category.String())
	return task, true
}

// Add submits the current draft. On success the draft text and time are
// cleared; the category selection persists for the next add.
func (s *Store) Add() (models.Task, bool) {
	task, ok := s.AddTask(s.draftText, s.draftCategory, s.draftTime)
	if ok {
		s.draftText = ""
		s.draftTime = ""
	}
	return task, ok
}

// Toggle flips the completed flag on the matching task. Unknown ids
// are a no-op. Applying it twice restores the original state.
func (s *Store) Toggle(id int) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return true
		}
	}
	return false
}

// Delete removes the matching task, preserving the relative order of
// the rest. Unknown ids are a no-op.
func (s *Store) Delete(id int) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Tasks returns the collection in insertion order. The slice is a copy;
// mutating it does not affect the store.
func (s *Store) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of live tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Summaries counts tasks per category, in the fixed category order.
func (s *Store) Summaries() []models.CategorySummary {
	out := make([]models.CategorySummary, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		count := 0
		for _, t := range s.tasks {
			if t.Category == c {
				count++
			}
		}
		out = append(out, models.CategorySummary{
			Category: c,
			Label:    c.Label(),
			Icon:     c.Icon(),
			Count:    count,
		})
	}
	return out
}

// Timeline projects the collection onto the given slot labels. A task
// appears under a slot only when its time equals the label exactly;
// unscheduled and non-matching tasks appear in no slot.
func (s *Store) Timeline(slots []string) []models.TimeSlot {
	out := make([]models.TimeSlot, 0, len(slots))
	for _, label := range slots {
		slot := models.TimeSlot{Label: label}
		for _, t := range s.tasks {
			if t.Time == label {
				slot.Tasks = append(slot.Tasks, t)
			}
		}
		out = append(out, slot)
	}
	return out
}

// Unscheduled returns the tasks that carry no time label.
func (s *Store) Unscheduled() []models.Task {
	var out []models.Task
	for _, t := range s.tasks {
		if t.Time == "" {
			out = append(out, t)
		}
	}
	return out
}

// View returns the current view selector.
func (s *Store) View() View {
	return s.view
}

// SetView switches between the task list and the timeline.
func (s *Store) SetView(v View) {
	s.view = v
}

// Theme returns the current theme.
func (s *Store) Theme() models.Theme {
	return s.theme
}

// ToggleTheme flips the theme and writes the new value through to the
// preference store. A persistence failure keeps the in-session flip.
func (s *Store) ToggleTheme() models.Theme {
	s.theme = s.theme.Flip()
	if s.themes != nil {
		if err := s.themes.SetTheme(s.theme); err != nil {
			s.logger.Warn("could not persist theme preference", "err", err)
		}
	}
	return s.theme
}

// Draft accessors. The draft is the add form's working state.

func (s *Store) DraftText() string { return s.draftText }

func (s *Store) SetDraftText(text string) { s.draftText = text }

func (s *Store) DraftCategory() models.Category { return s.draftCategory }

func (s *Store) SetDraftCategory(c models.Category) { s.draftCategory = c }

func (s *Store) DraftTime() string { return s.draftTime }

func (s *Store) SetDraftTime(slot string) { s.draftTime = slot }

// CycleDraftCategory advances the draft category by delta within the
// fixed category order, wrapping at both ends.
func (s *Store) CycleDraftCategory(delta int) models.Category {
	cats := models.Categories()
	idx := 0
	for i, c := range cats {
		if c == s.draftCategory {
			idx = i
			break
		}
	}
	idx = (idx + delta%len(cats) + len(cats)) % len(cats)
	s.draftCategory = cats[idx]
	return s.draftCategory
}

// Seed replaces the collection with the given tasks, reassigning ids so
// uniqueness holds regardless of what the caller passed in.
func (s *Store) Seed(tasks []models.Task) {
	s.tasks = s.tasks[:0]
	for _, t := range tasks {
		t.ID = s.nextID
		s.nextID++
		s.tasks = append(s.tasks, t)
	}
}

// DemoTasks is the fixed starter set used when seeding is enabled.
func DemoTasks() []models.Task {
	now := time.Now()
	return []models.Task{
		{Text: "Morning run", Category: models.CategoryHealth, Time: "7:00", CreatedAt: now},
		{Text: "Team standup", Category: models.CategoryWork, Time: "10:00", CreatedAt: now},
		{Text: "Ship weekly report", Category: models.CategoryWork, Time: "15:00", CreatedAt: now},
		{Text: "Meditate", Category: models.CategoryMind, Time: "18:00", CreatedAt: now},
		{Text: "Buy groceries", Category: models.CategoryOther, CreatedAt: now},
	}
}

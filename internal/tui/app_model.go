package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/okravets/dayline/internal/export"
	"github.com/okravets/dayline/internal/models"
	"github.com/okravets/dayline/internal/parser"
	"github.com/okravets/dayline/internal/store"
)

// Focus represents what UI element has focus
type Focus int

const (
	FocusList Focus = iota
	FocusInput
)

// ExportFileName is where the in-session export lands.
const ExportFileName = "dayline-agenda.pdf"

type exportDoneMsg struct {
	path string
	err  error
}

// AppModel is the single bubbletea model for the session: task list,
// timeline view, quick-add input, and theme switching over one Store.
type AppModel struct {
	width  int
	height int

	store *store.Store
	slots []string

	focus  Focus
	cursor int // index in the task list

	input   textinput.Model
	palette Palette
	status  string

	logger *log.Logger
}

// NewAppModel creates the session model over st. slots is the fixed
// timeline schedule from the config.
func NewAppModel(st *store.Store, slots []string, logger *log.Logger) AppModel {
	if logger == nil {
		logger = log.Default()
	}

	input := textinput.New()
	input.Placeholder = "Task text, optionally @category and 9:00"
	input.CharLimit = 200
	input.Width = 60

	m := AppModel{
		store:   st,
		slots:   slots,
		focus:   FocusList,
		input:   input,
		palette: PaletteFor(st.Theme()),
		logger:  logger,
	}
	m.applyPalette()

	return m
}

// applyPalette restyles the input after a theme change.
func (m *AppModel) applyPalette() {
	m.palette = PaletteFor(m.store.Theme())
	m.input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.PrimaryText))
	m.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Placeholder))
	m.input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.AccentBright))
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Export failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Agenda exported to %s", msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		if m.focus == FocusInput {
			return m.handleInputKeys(msg)
		}
		return m.handleListKeys(msg)
	}

	return m, nil
}

// handleInputKeys handles key input while the quick-add form has focus.
func (m AppModel) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.focus = FocusList
		m.input.Blur()
		return m, nil

	case "enter":
		entry := parser.ParseEntry(m.input.Value())
		if len(entry.Errors) > 0 {
			m.status = entry.Errors[0]
			return m, nil
		}
		if entry.HasCategory {
			m.store.SetDraftCategory(entry.Category)
		}
		m.store.SetDraftText(entry.Text)
		m.store.SetDraftTime(entry.Time)

		if task, ok := m.store.Add(); ok {
			m.status = fmt.Sprintf("Added #%d: %s", task.ID, task.Text)
			m.input.SetValue("")
			m.focus = FocusList
			m.input.Blur()
			m.cursor = m.store.Len() - 1
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetDraftText(m.input.Value())
	return m, cmd
}

// handleListKeys handles key input while the task list has focus.
func (m AppModel) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "a", "i":
		m.focus = FocusInput
		m.input.SetValue(m.store.DraftText())
		m.status = ""
		return m, m.input.Focus()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < m.store.Len()-1 {
			m.cursor++
		}
		return m, nil

	case "left", "h":
		m.store.CycleDraftCategory(-1)
		return m, nil

	case "right", "l":
		m.store.CycleDraftCategory(1)
		return m, nil

	case " ", "enter", "x":
		if task, ok := m.taskAtCursor(); ok {
			m.store.Toggle(task.ID)
		}
		return m, nil

	case "d", "backspace":
		if task, ok := m.taskAtCursor(); ok {
			m.store.Delete(task.ID)
			if m.cursor >= m.store.Len() && m.cursor > 0 {
				m.cursor--
			}
		}
		return m, nil

	case "tab", "v":
		if m.store.View() == store.ViewTasks {
			m.store.SetView(store.ViewTimeline)
		} else {
			m.store.SetView(store.ViewTasks)
		}
		return m, nil

	case "t":
		theme := m.store.ToggleTheme()
		m.applyPalette()
		m.status = fmt.Sprintf("Theme: %s", theme)
		return m, nil

	case "e":
		return m, m.exportCmd()
	}

	return m, nil
}

func (m AppModel) taskAtCursor() (models.Task, bool) {
	tasks := m.store.Tasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[m.cursor], true
}

// exportCmd writes the PDF agenda in the background.
func (m AppModel) exportCmd() tea.Cmd {
	exporter := export.NewExporter(m.store)
	slots := m.slots
	logger := m.logger
	return func() tea.Msg {
		data, err := exporter.Export(slots, "pdf")
		if err != nil {
			return exportDoneMsg{err: err}
		}
		if err := os.WriteFile(ExportFileName, data, 0644); err != nil {
			return exportDoneMsg{err: err}
		}
		logger.Debug("agenda exported", "path", ExportFileName)
		return exportDoneMsg{path: ExportFileName}
	}
}

// View renders the UI
func (m AppModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.palette.AccentBright))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.SecondaryText))

	viewName := "Tasks"
	if m.store.View() == store.ViewTimeline {
		viewName = "Timeline"
	}
	b.WriteString(titleStyle.Render("📅 dayline"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  ·  %s view", viewName)))
	b.WriteString("\n\n")

	b.WriteString(m.renderSummaries())
	b.WriteString("\n\n")

	if m.store.View() == store.ViewTimeline {
		b.WriteString(m.renderTimeline())
	} else {
		b.WriteString(m.renderTaskList())
	}

	b.WriteString("\n")
	b.WriteString(m.renderInputBar())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(dimStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())

	frame := lipgloss.NewStyle().Padding(1, 2)
	return frame.Render(b.String())
}

// renderSummaries draws the per-category count strip.
func (m AppModel) renderSummaries() string {
	parts := make([]string, 0, 4)
	for _, s := range m.store.Summaries() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Category.Color()))
		parts = append(parts, style.Render(fmt.Sprintf("%s %s %d", s.Icon, s.Label, s.Count)))
	}
	return strings.Join(parts, lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.palette.DisabledText)).
		Render("  │  "))
}

func (m AppModel) renderTaskList() string {
	tasks := m.store.Tasks()
	if len(tasks) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.palette.DisabledText)).
			Render("No tasks yet. Press 'a' to add one.")
	}

	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.AccentBright)).Bold(true)
	normalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.PrimaryText))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.DisabledText)).Strikethrough(true)
	timeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.SecondaryText))

	var b strings.Builder
	for i, t := range tasks {
		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}

		slot := "     "
		if t.Time != "" {
			slot = fmt.Sprintf("%5s", t.Time)
		}

		line := fmt.Sprintf("%s %s %s %s", check, timeStyle.Render(slot), t.Category.Icon(), t.Text)

		switch {
		case i == m.cursor && m.focus == FocusList:
			b.WriteString(selectedStyle.Render("▶ " + line))
		case t.Completed:
			b.WriteString("  " + doneStyle.Render(line))
		default:
			b.WriteString("  " + normalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m AppModel) renderTimeline() string {
	slotStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.AccentMain)).Bold(true)
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.DisabledText))
	taskStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.PrimaryText))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.DisabledText)).Strikethrough(true)

	var b strings.Builder
	for _, slot := range m.store.Timeline(m.slots) {
		b.WriteString(slotStyle.Render(fmt.Sprintf("%5s", slot.Label)))
		if len(slot.Tasks) == 0 {
			b.WriteString(emptyStyle.Render("  ·"))
			b.WriteString("\n")
			continue
		}
		for j, t := range slot.Tasks {
			if j > 0 {
				b.WriteString("     ")
			}
			style := taskStyle
			if t.Completed {
				style = doneStyle
			}
			b.WriteString("  " + t.Category.Icon() + " " + style.Render(t.Text))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m AppModel) renderInputBar() string {
	category := m.store.DraftCategory()
	catStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(category.Color())).Bold(true)
	label := catStyle.Render(fmt.Sprintf("‹%s %s›", category.Icon(), category.Label()))

	if m.focus == FocusInput {
		boxStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(m.palette.AccentMain)).
			Padding(0, 1)
		return label + "\n" + boxStyle.Render(m.input.View())
	}

	return label + lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.palette.DisabledText)).
		Render("  ←/→ to change category")
}

func (m AppModel) renderHelp() string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.HelpText))
	if m.focus == FocusInput {
		return helpStyle.Render("enter add · esc cancel")
	}
	return helpStyle.Render("a add · space toggle · d delete · tab view · t theme · e export · q quit")
}

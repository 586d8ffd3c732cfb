package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okravets/dayline/internal/models"
)

// fakeThemeStore is an in-memory stand-in for the preferences database.
type fakeThemeStore struct {
	theme models.Theme
	saved bool
}

func (f *fakeThemeStore) Theme() (models.Theme, bool, error) {
	if !f.saved {
		return models.ThemeDark, false, nil
	}
	return f.theme, true, nil
}

func (f *fakeThemeStore) SetTheme(t models.Theme) error {
	f.theme = t
	f.saved = true
	return nil
}

func TestAddTask(t *testing.T) {
	st := New(nil, nil)

	task, ok := st.AddTask("Buy milk", models.CategoryHealth, "9:00")

	assert.True(t, ok)
	assert.Equal(t, 1, task.ID)
	assert.Equal(t, "Buy milk", task.Text)
	assert.Equal(t, models.CategoryHealth, task.Category)
	assert.Equal(t, "9:00", task.Time)
	assert.False(t, task.Completed)
	assert.Equal(t, 1, st.Len())
}

func TestAddTask_TrimsText(t *testing.T) {
	st := New(nil, nil)

	task, ok := st.AddTask("  Buy milk  ", models.CategoryOther, "")

	assert.True(t, ok)
	assert.Equal(t, "Buy milk", task.Text)
}

func TestAddTask_EmptyTextIsNoOp(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and newlines", "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := New(nil, nil)
			st.AddTask("existing", models.CategoryWork, "")
			before := st.Tasks()

			_, ok := st.AddTask(tt.text, models.CategoryWork, "10:00")

			assert.False(t, ok)
			assert.Equal(t, before, st.Tasks())
		})
	}
}

func TestAddTask_UniqueIncreasingIDs(t *testing.T) {
	st := New(nil, nil)

	t1, _ := st.AddTask("a", models.CategoryWork, "")
	t2, _ := st.AddTask("b", models.CategoryWork, "")
	st.Delete(t1.ID)
	t3, _ := st.AddTask("c", models.CategoryWork, "")

	assert.Equal(t, 1, t1.ID)
	assert.Equal(t, 2, t2.ID)
	assert.Equal(t, 3, t3.ID)
}

func TestAdd_SubmitsDraftAndClearsIt(t *testing.T) {
	st := New(nil, nil)
	st.SetDraftText("Morning run")
	st.SetDraftCategory(models.CategoryHealth)
	st.SetDraftTime("7:00")

	task, ok := st.Add()

	require.True(t, ok)
	assert.Equal(t, "Morning run", task.Text)
	assert.Equal(t, "7:00", task.Time)

	// Text and time reset, category selection persists.
	assert.Empty(t, st.DraftText())
	assert.Empty(t, st.DraftTime())
	assert.Equal(t, models.CategoryHealth, st.DraftCategory())
}

func TestAdd_EmptyDraftKeepsDraft(t *testing.T) {
	st := New(nil, nil)
	st.SetDraftText("   ")
	st.SetDraftTime("9:00")

	_, ok := st.Add()

	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())
	assert.Equal(t, "9:00", st.DraftTime())
}

func TestToggle(t *testing.T) {
	st := New(nil, nil)
	task, _ := st.AddTask("a", models.CategoryWork, "")
	st.AddTask("b", models.CategoryWork, "")

	assert.True(t, st.Toggle(task.ID))
	assert.True(t, st.Tasks()[0].Completed)
	assert.False(t, st.Tasks()[1].Completed)

	// Applying twice restores the original state.
	assert.True(t, st.Toggle(task.ID))
	assert.False(t, st.Tasks()[0].Completed)
}

func TestToggle_UnknownIDLeavesCollectionUnchanged(t *testing.T) {
	st := New(nil, nil)
	st.AddTask("a", models.CategoryWork, "9:00")
	st.Toggle(1)
	before := st.Tasks()

	assert.False(t, st.Toggle(999))
	assert.Equal(t, before, st.Tasks())
}

func TestDelete_PreservesOrder(t *testing.T) {
	st := New(nil, nil)
	st.AddTask("a", models.CategoryWork, "")
	b, _ := st.AddTask("b", models.CategoryHealth, "")
	st.AddTask("c", models.CategoryMind, "")

	assert.True(t, st.Delete(b.ID))

	tasks := st.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].Text)
	assert.Equal(t, "c", tasks[1].Text)
}

func TestDelete_UnknownIDIsNoOp(t *testing.T) {
	st := New(nil, nil)
	st.AddTask("a", models.CategoryWork, "")
	before := st.Tasks()

	assert.False(t, st.Delete(42))
	assert.Equal(t, before, st.Tasks())
}

func TestSummaries_CountsPerCategoryInFixedOrder(t *testing.T) {
	st := New(nil, nil)
	st.AddTask("run", models.CategoryHealth, "")
	st.AddTask("report", models.CategoryWork, "")
	st.AddTask("standup", models.CategoryWork, "")

	summaries := st.Summaries()

	require.Len(t, summaries, len(models.Categories()))
	for i, c := range models.Categories() {
		assert.Equal(t, c, summaries[i].Category)
	}
	assert.Equal(t, 1, summaries[0].Count) // health
	assert.Equal(t, 2, summaries[1].Count) // work
	assert.Equal(t, 0, summaries[2].Count) // mind
	assert.Equal(t, 0, summaries[3].Count) // other
}

func TestSummaries_AddIncrementsExactlyOneCount(t *testing.T) {
	st := New(nil, nil)
	st.AddTask("run", models.CategoryHealth, "")
	before := st.Summaries()

	st.AddTask("breathe", models.CategoryMind, "")
	after := st.Summaries()

	for i := range before {
		want := before[i].Count
		if before[i].Category == models.CategoryMind {
			want++
		}
		assert.Equal(t, want, after[i].Count, "category %s", before[i].Label)
	}
}

func TestTimeline_ExactMatchOnly(t *testing.T) {
	st := New(nil, nil)
	st.AddTask("Buy milk", models.CategoryHealth, "9:00")
	st.AddTask("No slot", models.CategoryOther, "")
	st.AddTask("Off schedule", models.CategoryOther, "9:30")

	timeline := st.Timeline([]string{"9:00", "10:00"})

	require.Len(t, timeline, 2)
	assert.Equal(t, "9:00", timeline[0].Label)
	require.Len(t, timeline[0].Tasks, 1)
	assert.Equal(t, "Buy milk", timeline[0].Tasks[0].Text)
	assert.Empty(t, timeline[1].Tasks)
}

func TestTimeline_PreservesInsertionOrderWithinSlot(t *testing.T) {
	st := New(nil, nil)
	st.AddTask("first", models.CategoryWork, "9:00")
	st.AddTask("second", models.CategoryWork, "9:00")

	timeline := st.Timeline([]string{"9:00"})

	require.Len(t, timeline[0].Tasks, 2)
	assert.Equal(t, "first", timeline[0].Tasks[0].Text)
	assert.Equal(t, "second", timeline[0].Tasks[1].Text)
}

func TestUnscheduled(t *testing.T) {
	st := New(nil, nil)
	st.AddTask("timed", models.CategoryWork, "9:00")
	st.AddTask("loose", models.CategoryOther, "")

	unscheduled := st.Unscheduled()

	require.Len(t, unscheduled, 1)
	assert.Equal(t, "loose", unscheduled[0].Text)
}

func TestSetView(t *testing.T) {
	st := New(nil, nil)

	assert.Equal(t, ViewTasks, st.View())
	st.SetView(ViewTimeline)
	assert.Equal(t, ViewTimeline, st.View())
}

func TestCycleDraftCategory_Wraps(t *testing.T) {
	st := New(nil, nil)
	st.SetDraftCategory(models.CategoryHealth)

	assert.Equal(t, models.CategoryOther, st.CycleDraftCategory(-1))
	assert.Equal(t, models.CategoryHealth, st.CycleDraftCategory(1))
	assert.Equal(t, models.CategoryWork, st.CycleDraftCategory(1))
}

func TestTheme_DefaultsWhenNothingSaved(t *testing.T) {
	st := New(&fakeThemeStore{}, nil)

	assert.Equal(t, models.ThemeDark, st.Theme())
}

func TestTheme_AppliesSavedPreference(t *testing.T) {
	st := New(&fakeThemeStore{theme: models.ThemeLight, saved: true}, nil)

	assert.Equal(t, models.ThemeLight, st.Theme())
}

func TestToggleTheme_WritesThrough(t *testing.T) {
	themes := &fakeThemeStore{}
	st := New(themes, nil)

	got := st.ToggleTheme()

	assert.Equal(t, models.ThemeLight, got)
	assert.Equal(t, models.ThemeLight, themes.theme)

	// A fresh store over the same preferences starts from the flip.
	again := New(themes, nil)
	assert.Equal(t, models.ThemeLight, again.Theme())
}

func TestToggleTheme_WorksWithoutThemeStore(t *testing.T) {
	st := New(nil, nil)

	assert.Equal(t, models.ThemeLight, st.ToggleTheme())
	assert.Equal(t, models.ThemeDark, st.ToggleTheme())
}

func TestSeed_AssignsFreshIDs(t *testing.T) {
	st := New(nil, nil)
	st.Seed(DemoTasks())

	tasks := st.Tasks()
	require.NotEmpty(t, tasks)

	seen := map[int]bool{}
	for _, task := range tasks {
		assert.False(t, seen[task.ID])
		seen[task.ID] = true
	}

	// Adding after a seed keeps ids unique.
	added, ok := st.AddTask("new", models.CategoryOther, "")
	require.True(t, ok)
	assert.False(t, seen[added.ID])
}

func TestTasks_ReturnsCopy(t *testing.T) {
	st := New(nil, nil)
	st.AddTask("a", models.CategoryWork, "")

	tasks := st.Tasks()
	tasks[0].Text = "mutated"

	assert.Equal(t, "a", st.Tasks()[0].Text)
}

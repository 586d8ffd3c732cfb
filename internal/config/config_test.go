package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultDayStartHour, cfg.DayStartHour)
	assert.Equal(t, DefaultDayEndHour, cfg.DayEndHour)
	assert.False(t, cfg.SeedDemo)
	assert.Empty(t, cfg.LogFile)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayline.toml")
	content := `
day_start_hour = 8
day_end_hour = 18
seed_demo = true
log_file = "/tmp/dayline.log"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8, cfg.DayStartHour)
	assert.Equal(t, 18, cfg.DayEndHour)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, "/tmp/dayline.log", cfg.LogFile)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayline.toml")
	require.NoError(t, os.WriteFile(path, []byte("seed_demo = true\n"), 0644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, DefaultDayStartHour, cfg.DayStartHour)
	assert.Equal(t, DefaultDayEndHour, cfg.DayEndHour)
}

func TestLoad_RejectsInvalidSchedule(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"end before start", "day_start_hour = 10\nday_end_hour = 8\n"},
		{"end equals start", "day_start_hour = 10\nday_end_hour = 10\n"},
		{"start out of range", "day_start_hour = 25\n"},
		{"end out of range", "day_end_hour = 30\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dayline.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayline.toml")
	require.NoError(t, os.WriteFile(path, []byte("day_start_hour = \n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSlots(t *testing.T) {
	cfg := &Config{DayStartHour: 6, DayEndHour: 9}

	assert.Equal(t, []string{"6:00", "7:00", "8:00"}, cfg.Slots())
}

func TestSlots_DefaultScheduleStartsAtSix(t *testing.T) {
	slots := Default().Slots()

	require.NotEmpty(t, slots)
	assert.Equal(t, "6:00", slots[0])
	assert.Equal(t, "21:00", slots[len(slots)-1])
	assert.Len(t, slots, 16)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacobsee/calwidget/internal/calendar"
)

const sampleConfig = `
server:
  port: 9000
log:
  format: json
calendars:
  - name: team
    description: Team rooms
    scheduler: true
    entryLimit: 3
    initialView: resourceTimelineWeek
    licenseKey: GPL-My-Project-Is-Open-Source
    resources:
      - id: a
        title: Room A
        children:
          - id: a1
            title: Desk 1
  - name: personal
  - name: capped
    entryLimit: 0
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	require.Len(t, cfg.Calendars, 3)

	team := cfg.Calendars[0]
	assert.True(t, team.Scheduler)
	require.NotNil(t, team.EntryLimit)
	assert.Equal(t, 3, *team.EntryLimit)
	require.Len(t, team.Resources, 1)
	assert.Equal(t, "Desk 1", team.Resources[0].Children[0].Title)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("calendars: []\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "none", cfg.Auth.Method)
}

func TestDefinitions_EntryLimit(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	defs := cfg.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, 3, defs[0].EntryLimit)
	assert.True(t, defs[0].Scheduler)
	assert.Equal(t, calendar.NoEntryLimit, defs[1].EntryLimit, "omitted limit maps to no limit")
	assert.Equal(t, 0, defs[2].EntryLimit, "explicit zero is kept as is")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing name", "calendars:\n  - description: x\n"},
		{"duplicate name", "calendars:\n  - name: a\n  - name: a\n"},
		{"apikey without key", "auth:\n  method: apikey\n"},
		{"unknown auth method", "auth:\n  method: oauth\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParse_NegativeLimitAccepted(t *testing.T) {
	cfg, err := Parse([]byte("calendars:\n  - name: a\n    entryLimit: -7\n"))
	require.NoError(t, err)
	assert.Equal(t, -7, cfg.Definitions()[0].EntryLimit)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	cal, ok := cfg.Find("personal")
	assert.True(t, ok)
	assert.False(t, cal.Scheduler)

	_, ok = cfg.Find("missing")
	assert.False(t, ok)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

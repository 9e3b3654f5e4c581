package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullCalendar_Options(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit any
	}{
		{"no limit", NoEntryLimit, false},
		{"zero", 0, false},
		{"negative", -7, false},
		{"positive", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NewFullCalendar(tt.limit).Options()
			assert.Equal(t, tt.wantLimit, opts["dayMaxEvents"])
			assert.Equal(t, "dayGridMonth", opts["initialView"])
			assert.Equal(t, "en", opts["locale"])
		})
	}
}

func TestFullCalendar_Setters(t *testing.T) {
	fc := NewFullCalendar(1)

	fc.SetInitialView("listWeek")
	fc.SetLocale("de")
	assert.Equal(t, "listWeek", fc.InitialView())
	assert.Equal(t, "de", fc.Locale())

	fc.SetInitialView("")
	fc.SetLocale("")
	assert.Equal(t, "dayGridMonth", fc.InitialView())
	assert.Equal(t, "en", fc.Locale())
}

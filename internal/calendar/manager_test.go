package calendar

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacobsee/calwidget/internal/models"
)

type resourceScheduler struct {
	*FullCalendar
	resources  []models.Resource
	licenseKey string
}

func (r *resourceScheduler) Variant() string { return SchedulerExtension }

func (r *resourceScheduler) AddResources(resources ...models.Resource) {
	r.resources = append(r.resources, resources...)
}

func (r *resourceScheduler) SetLicenseKey(key string) { r.licenseKey = key }

func newTestManager(t *testing.T, withScheduler bool) (*Manager, *bytes.Buffer) {
	t.Helper()
	reg := NewRegistry()
	if withScheduler {
		require.NoError(t, reg.Register(SchedulerExtension, func(entryLimit int) (Widget, error) {
			return &resourceScheduler{FullCalendar: NewFullCalendar(entryLimit)}, nil
		}))
	}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return NewManager(reg, NewMetrics(), logger), &buf
}

func TestManager_Load(t *testing.T) {
	m, logs := newTestManager(t, true)

	err := m.Load([]*Definition{
		{Name: "personal", EntryLimit: NoEntryLimit, InitialView: "listWeek", Locale: "de"},
		{
			Name:       "rooms",
			Scheduler:  true,
			EntryLimit: 3,
			LicenseKey: "GPL-My-Project-Is-Open-Source",
			Resources:  []models.Resource{{ID: "a", Title: "Room A"}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"personal", "rooms"}, m.List())

	personal, err := m.Get("personal")
	require.NoError(t, err)
	fc, ok := personal.(*FullCalendar)
	require.True(t, ok)
	assert.Equal(t, "listWeek", fc.InitialView())
	assert.Equal(t, "de", fc.Locale())

	rooms, err := m.Get("rooms")
	require.NoError(t, err)
	rs, ok := rooms.(*resourceScheduler)
	require.True(t, ok)
	assert.Equal(t, 3, rs.EntryLimit())
	assert.Len(t, rs.resources, 1)
	assert.Equal(t, "GPL-My-Project-Is-Open-Source", rs.licenseKey)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Metrics().built.WithLabelValues(VariantBasic)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Metrics().built.WithLabelValues(SchedulerExtension)))
	assert.Contains(t, logs.String(), "built calendar widget")
	assert.NotContains(t, logs.String(), "GPL-My-Project")
}

func TestManager_LoadMissingExtension(t *testing.T) {
	m, logs := newTestManager(t, false)

	err := m.Load([]*Definition{
		{Name: "personal", EntryLimit: 2},
		{Name: "rooms", Scheduler: true, EntryLimit: NoEntryLimit},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtensionNotFound)
	assert.Contains(t, err.Error(), "calendar rooms")

	assert.Equal(t, []string{"personal"}, m.List())
	_, err = m.Get("rooms")
	assert.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Metrics().failures.WithLabelValues(failureExtensionNotFound)))
	assert.Contains(t, logs.String(), "failed to build calendar widget")
}

func TestManager_ResourcesOnBasicWidget(t *testing.T) {
	m, _ := newTestManager(t, false)

	err := m.Add(&Definition{Name: "plain", Resources: []models.Resource{{ID: "a"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support resources")
	assert.Empty(t, m.List())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Metrics().failures.WithLabelValues(failureConfigure)))
}

func TestManager_LicenseKeyOnBasicWidget(t *testing.T) {
	m, _ := newTestManager(t, false)

	err := m.Add(&Definition{Name: "plain", LicenseKey: "x"})
	assert.Error(t, err)
}

func TestManager_Description(t *testing.T) {
	m, _ := newTestManager(t, false)
	require.NoError(t, m.Add(&Definition{Name: "a", Description: "Team A", EntryLimit: NoEntryLimit}))

	assert.Equal(t, "Team A", m.Description("a"))
	assert.Equal(t, "", m.Description("missing"))
}

func TestFailureReason(t *testing.T) {
	assert.Equal(t, failureExtensionNotFound, failureReason(&ExtensionNotFoundError{Extension: "x"}))
	assert.Equal(t, failureConstruction, failureReason(&ConstructionError{Extension: "x", Err: assert.AnError}))
	assert.Equal(t, failureConfigure, failureReason(assert.AnError))
}

func TestDefinition_Builder(t *testing.T) {
	reg := NewRegistry()
	b := (&Definition{Scheduler: true, EntryLimit: 6}).Builder(reg)
	assert.True(t, b.SchedulerEnabled())
	assert.Equal(t, 6, b.EntryLimit())

	b = (&Definition{EntryLimit: NoEntryLimit}).Builder(reg)
	assert.False(t, b.SchedulerEnabled())
}

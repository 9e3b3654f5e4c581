package calendar

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/jacobsee/calwidget/internal/logging"
	"github.com/jacobsee/calwidget/internal/models"
)

// Definition describes a calendar widget to build
type Definition struct {
	Name        string
	Description string
	Scheduler   bool
	EntryLimit  int
	InitialView string
	Locale      string
	LicenseKey  string
	Resources   []models.Resource
}

// Builder returns the builder matching this definition
func (d *Definition) Builder(r *Registry) Builder {
	b := Create().WithEntryLimit(d.EntryLimit).WithRegistry(r)
	if d.Scheduler {
		b = b.WithScheduler()
	}
	return b
}

type viewSetter interface {
	SetInitialView(view string)
	SetLocale(locale string)
}

type resourceHolder interface {
	AddResources(resources ...models.Resource)
}

type licensed interface {
	SetLicenseKey(key string)
}

// Manager builds calendar widgets from definitions and keeps them by name
type Manager struct {
	mu       sync.RWMutex
	widgets  map[string]Widget
	defs     map[string]*Definition
	registry *Registry
	metrics  *Metrics
	logger   *slog.Logger
}

// NewManager creates a new calendar manager. A nil registry means
// DefaultRegistry, a nil logger means slog.Default().
func NewManager(registry *Registry, metrics *Metrics, logger *slog.Logger) *Manager {
	if registry == nil {
		registry = DefaultRegistry
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		widgets:  make(map[string]Widget),
		defs:     make(map[string]*Definition),
		registry: registry,
		metrics:  metrics,
		logger:   logging.WithOperation(logger, "calendar.build"),
	}
}

// Metrics returns the build metrics of this manager
func (m *Manager) Metrics() *Metrics {
	return m.metrics
}

// Load builds a widget for every definition. Failed definitions are skipped
// and their errors are returned together.
func (m *Manager) Load(defs []*Definition) error {
	var errs []error
	for _, def := range defs {
		if err := m.Add(def); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Add builds and registers the widget of a single definition
func (m *Manager) Add(def *Definition) error {
	logger := m.logger.With(logging.Calendar(def.Name))

	w, err := def.Builder(m.registry).Build()
	if err == nil {
		err = configure(w, def)
	}
	if err != nil {
		m.metrics.recordFailure(err)
		logger.Error("failed to build calendar widget", logging.Status(logging.StatusError), logging.Err(err))
		return fmt.Errorf("calendar %s: %w", def.Name, err)
	}

	m.mu.Lock()
	m.widgets[def.Name] = w
	m.defs[def.Name] = def
	m.mu.Unlock()

	m.metrics.recordBuilt(w.Variant())
	if def.LicenseKey != "" {
		logger.Debug("applied license key", slog.String("license_key", logging.MaskSecret(def.LicenseKey)))
	}
	logger.Info("built calendar widget",
		logging.Variant(w.Variant()),
		slog.Int("entry_limit", w.EntryLimit()),
		logging.Status(logging.StatusSuccess))
	return nil
}

func configure(w Widget, def *Definition) error {
	if vs, ok := w.(viewSetter); ok {
		vs.SetInitialView(def.InitialView)
		vs.SetLocale(def.Locale)
	}

	if len(def.Resources) > 0 {
		rh, ok := w.(resourceHolder)
		if !ok {
			return fmt.Errorf("%s widget does not support resources", w.Variant())
		}
		rh.AddResources(def.Resources...)
	}

	if def.LicenseKey != "" {
		l, ok := w.(licensed)
		if !ok {
			return fmt.Errorf("%s widget does not take a license key", w.Variant())
		}
		l.SetLicenseKey(def.LicenseKey)
	}
	return nil
}

// Get retrieves a built widget by calendar name
func (m *Manager) Get(name string) (Widget, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, exists := m.widgets[name]
	if !exists {
		return nil, fmt.Errorf("calendar %s not found", name)
	}
	return w, nil
}

// Description returns the configured description of a calendar
func (m *Manager) Description(name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if def, ok := m.defs[name]; ok {
		return def.Description
	}
	return ""
}

// List returns all calendar names in sorted order
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.widgets))
	for name := range m.widgets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

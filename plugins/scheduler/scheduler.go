package scheduler

import (
	"github.com/jacobsee/calwidget/internal/calendar"
	"github.com/jacobsee/calwidget/internal/models"
)

// License keys accepted by the scheduler client for non-commercial use
const (
	GPLLicenseKey           = "GPL-My-Project-Is-Open-Source"
	NonCommercialLicenseKey = "CC-Attribution-NonCommercial-NoDerivatives"
)

// Scheduler is a calendar widget with resource scheduling views
type Scheduler struct {
	*calendar.FullCalendar
	licenseKey string
	resources  []models.Resource
}

// New creates a scheduler widget with the given entry limit
func New(entryLimit int) *Scheduler {
	return &Scheduler{
		FullCalendar: calendar.NewFullCalendar(entryLimit),
	}
}

// Register installs the scheduler variant into a calendar extension registry
func Register(r *calendar.Registry) error {
	return r.Register(calendar.SchedulerExtension, func(entryLimit int) (calendar.Widget, error) {
		return New(entryLimit), nil
	})
}

func (s *Scheduler) Variant() string {
	return calendar.SchedulerExtension
}

// SetLicenseKey sets the license key passed to the scheduler client
func (s *Scheduler) SetLicenseKey(key string) {
	s.licenseKey = key
}

func (s *Scheduler) LicenseKey() string {
	return s.licenseKey
}

// AddResources appends top level resources
func (s *Scheduler) AddResources(resources ...models.Resource) {
	s.resources = append(s.resources, resources...)
}

// Resources returns a copy of the top level resources
func (s *Scheduler) Resources() []models.Resource {
	out := make([]models.Resource, len(s.resources))
	copy(out, s.resources)
	return out
}

// Options extends the basic options with scheduler settings
func (s *Scheduler) Options() map[string]any {
	opts := s.FullCalendar.Options()
	if s.licenseKey != "" {
		opts["schedulerLicenseKey"] = s.licenseKey
	}
	opts["resources"] = s.Resources()
	return opts
}

package calendar

import (
	"errors"
	"fmt"
)

// Builder creates calendar widgets through a fluent api. Builder is a value
// type: every With method returns a modified copy and leaves the receiver
// untouched, so a Builder can be shared freely.
type Builder struct {
	scheduler  bool
	entryLimit int
	registry   *Registry
}

// Create returns a builder with default settings
func Create() Builder {
	return Builder{entryLimit: NoEntryLimit}
}

// WithScheduler activates scheduler support.
//
// The scheduler extension must be registered before Build is called,
// otherwise Build fails with an ExtensionNotFoundError.
func (b Builder) WithScheduler() Builder {
	b.scheduler = true
	return b
}

// WithEntryLimit sets the maximum number of entries shown per day. It does
// not affect list or time grid views. Zero or a negative number disables the
// limit.
func (b Builder) WithEntryLimit(limit int) Builder {
	b.entryLimit = limit
	return b
}

// WithRegistry sets the registry consulted for extensions. A nil registry
// means DefaultRegistry.
func (b Builder) WithRegistry(r *Registry) Builder {
	b.registry = r
	return b
}

func (b Builder) SchedulerEnabled() bool {
	return b.scheduler
}

func (b Builder) EntryLimit() int {
	return b.entryLimit
}

// Build creates the widget described by the builder settings. Depending on
// the settings the widget is a *FullCalendar or an extension variant.
func (b Builder) Build() (Widget, error) {
	if b.scheduler {
		return b.buildExtension(SchedulerExtension)
	}
	return NewFullCalendar(b.entryLimit), nil
}

func (b Builder) buildExtension(name string) (w Widget, err error) {
	registry := b.registry
	if registry == nil {
		registry = DefaultRegistry
	}

	construct, ok := registry.Lookup(name)
	if !ok {
		return nil, &ExtensionNotFoundError{Extension: name}
	}

	defer func() {
		if r := recover(); r != nil {
			w = nil
			err = &ConstructionError{Extension: name, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	w, err = construct(b.entryLimit)
	if err != nil {
		return nil, &ConstructionError{Extension: name, Err: err}
	}
	if w == nil {
		return nil, &ConstructionError{Extension: name, Err: errors.New("constructor returned no widget")}
	}
	return w, nil
}

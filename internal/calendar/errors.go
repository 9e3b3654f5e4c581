package calendar

import (
	"errors"
	"fmt"
)

// ErrExtensionNotFound matches any ExtensionNotFoundError via errors.Is
var ErrExtensionNotFound = errors.New("extension not found")

// ExtensionNotFoundError is returned when a widget needs an extension that
// has not been registered. Register the extension at startup or do not
// request the feature.
type ExtensionNotFoundError struct {
	Extension string
}

func (e *ExtensionNotFoundError) Error() string {
	return fmt.Sprintf("could not find %s extension for calendar, check that it is registered at startup", e.Extension)
}

func (e *ExtensionNotFoundError) Is(target error) bool {
	return target == ErrExtensionNotFound
}

// ConstructionError is returned when a registered extension fails to
// construct a widget
type ConstructionError struct {
	Extension string
	Err       error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("failed to construct %s widget: %v", e.Extension, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

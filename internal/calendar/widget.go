package calendar

// NoEntryLimit is the entry limit of a widget that shows every entry of a day.
const NoEntryLimit = -1

const (
	// VariantBasic identifies the plain calendar widget
	VariantBasic = "basic"

	defaultInitialView = "dayGridMonth"
	defaultLocale      = "en"
)

// Widget is a calendar component built by a Builder
type Widget interface {
	// Variant returns the name of the widget variant, e.g. "basic" or "scheduler"
	Variant() string

	// EntryLimit returns the configured per-day entry limit
	EntryLimit() int

	// Options returns the client-side options of this widget
	Options() map[string]any
}

// FullCalendar is the basic calendar widget.
//
// The entry limit only affects grid-like views (month, day grid). A limit of
// zero or below disables it.
type FullCalendar struct {
	entryLimit  int
	initialView string
	locale      string
}

// NewFullCalendar creates a basic calendar widget with the given entry limit
func NewFullCalendar(entryLimit int) *FullCalendar {
	return &FullCalendar{
		entryLimit:  entryLimit,
		initialView: defaultInitialView,
		locale:      defaultLocale,
	}
}

func (c *FullCalendar) Variant() string {
	return VariantBasic
}

func (c *FullCalendar) EntryLimit() int {
	return c.entryLimit
}

// EntryLimitEnabled reports whether days in grid views are capped
func (c *FullCalendar) EntryLimitEnabled() bool {
	return c.entryLimit > 0
}

// SetInitialView sets the view shown when the client first renders the widget.
// An empty view restores the default.
func (c *FullCalendar) SetInitialView(view string) {
	if view == "" {
		view = defaultInitialView
	}
	c.initialView = view
}

func (c *FullCalendar) InitialView() string {
	return c.initialView
}

// SetLocale sets the client locale. An empty locale restores the default.
func (c *FullCalendar) SetLocale(locale string) {
	if locale == "" {
		locale = defaultLocale
	}
	c.locale = locale
}

func (c *FullCalendar) Locale() string {
	return c.locale
}

// Options returns the client-side options of the basic widget
func (c *FullCalendar) Options() map[string]any {
	opts := map[string]any{
		"initialView":  c.initialView,
		"locale":       c.locale,
		"dayMaxEvents": false,
	}
	if c.EntryLimitEnabled() {
		opts["dayMaxEvents"] = c.entryLimit
	}
	return opts
}

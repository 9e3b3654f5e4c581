package models

// Resource is a schedulable thing (room, person, machine) shown as a row or
// column by scheduler views
type Resource struct {
	ID       string     `yaml:"id" json:"id"`
	Title    string     `yaml:"title" json:"title"`
	Color    string     `yaml:"color,omitempty" json:"eventColor,omitempty"`
	Children []Resource `yaml:"children,omitempty" json:"children,omitempty"`
}

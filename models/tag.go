package models

// DefaultTagColor is applied when a tag arrives without a color.
const DefaultTagColor = "#000000"

// Tag is a labeled, colored keyword attached to a subject. Color is a
// free-form string (named color or hex); duplicates are allowed.
type Tag struct {
	Name  string `json:"tagName"`
	Color string `json:"tagColor"`
}

package services

import "github.com/lomdim/lomdim-backend/models"

// Title font sizing for the rendered info tree: the subject page renders the
// root level at 20px and each nesting level shrinks by 4px, never below the
// readable floor.
const (
	DefaultTitleFontSize = 20
	TitleFontSizeStep    = 4
	MinTitleFontSize     = 8
)

// RenderedInfo is one display unit of the info tree: the node's text plus the
// emphasis tier derived from its depth.
type RenderedInfo struct {
	Title       string         `json:"infoTitle"`
	Description string         `json:"infoDescription"`
	FontSize    int            `json:"fontSize"`
	SubInfo     []RenderedInfo `json:"subInfo,omitempty"`
}

// RenderInfo produces the display representation of a forest, starting at the
// given title font size. Pure: the input forest is not touched, and rendering
// the same forest twice yields identical output.
func RenderInfo(forest []models.ContentNode, fontSize int) []RenderedInfo {
	if len(forest) == 0 {
		return nil
	}
	if fontSize < MinTitleFontSize {
		fontSize = MinTitleFontSize
	}
	out := make([]RenderedInfo, len(forest))
	for i, node := range forest {
		out[i] = RenderedInfo{
			Title:       node.Title,
			Description: node.Description,
			FontSize:    fontSize,
			SubInfo:     RenderInfo(node.SubInfo, fontSize-TitleFontSizeStep),
		}
	}
	return out
}

// CountRendered sums the display units in a rendered forest.
func CountRendered(rendered []RenderedInfo) int {
	total := 0
	for _, r := range rendered {
		total += 1 + CountRendered(r.SubInfo)
	}
	return total
}

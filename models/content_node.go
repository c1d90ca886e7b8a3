package models

// ContentNode is one node of the recursive explanation tree attached to a
// subject. The JSON keys match the documents already stored by older
// deployments (infoTitle / infoDescription / subInfo), so they must not change.
type ContentNode struct {
	Title       string        `json:"infoTitle"`
	Description string        `json:"infoDescription"`
	SubInfo     []ContentNode `json:"subInfo,omitempty"`
}

// Clone returns a deep copy of the node and its entire subtree.
func (n ContentNode) Clone() ContentNode {
	out := ContentNode{Title: n.Title, Description: n.Description}
	if len(n.SubInfo) > 0 {
		out.SubInfo = CloneForest(n.SubInfo)
	}
	return out
}

// Count returns the number of nodes in the subtree rooted at n, including n.
func (n ContentNode) Count() int {
	total := 1
	for _, child := range n.SubInfo {
		total += child.Count()
	}
	return total
}

// Depth returns the number of nesting levels in the subtree rooted at n.
// A leaf has depth 1.
func (n ContentNode) Depth() int {
	max := 0
	for _, child := range n.SubInfo {
		if d := child.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// CloneForest deep-copies a root-level sequence of content nodes.
func CloneForest(forest []ContentNode) []ContentNode {
	out := make([]ContentNode, len(forest))
	for i, n := range forest {
		out[i] = n.Clone()
	}
	return out
}

// CountForest sums Count over every tree in the forest.
func CountForest(forest []ContentNode) int {
	total := 0
	for _, n := range forest {
		total += n.Count()
	}
	return total
}

// DepthForest returns the deepest nesting level found in the forest.
func DepthForest(forest []ContentNode) int {
	max := 0
	for _, n := range forest {
		if d := n.Depth(); d > max {
			max = d
		}
	}
	return max
}

package services

import (
	"errors"

	"github.com/lomdim/lomdim-backend/models"
)

var (
	// ErrPathNotFound means a child index along an edit path was out of range.
	ErrPathNotFound = errors.New("no info node at the given path")

	// ErrUnknownField means an update named a field that is not editable.
	ErrUnknownField = errors.New("unknown info field")
)

// InfoField names an editable text field of a content node, using the wire
// format's key names.
type InfoField string

const (
	FieldTitle       InfoField = "infoTitle"
	FieldDescription InfoField = "infoDescription"
)

// ParseInfoField maps a wire field name to an InfoField.
func ParseInfoField(s string) (InfoField, error) {
	switch InfoField(s) {
	case FieldTitle, FieldDescription:
		return InfoField(s), nil
	}
	return "", ErrUnknownField
}

// The editor operates on a caller-owned forest and always returns a fresh
// copy, addressing nodes by a path of child indices from the root. On any
// error the input forest is untouched and no partial result is returned.

// AddChild appends an empty node as the last child of the node at path.
// An empty path appends a new root-level node.
func AddChild(forest []models.ContentNode, path []int) ([]models.ContentNode, error) {
	next := models.CloneForest(forest)
	if len(path) == 0 {
		return append(next, models.ContentNode{}), nil
	}
	node, err := nodeAt(next, path)
	if err != nil {
		return nil, err
	}
	node.SubInfo = append(node.SubInfo, models.ContentNode{})
	return next, nil
}

// RemoveNode removes the node at path together with its entire subtree.
func RemoveNode(forest []models.ContentNode, path []int) ([]models.ContentNode, error) {
	if len(path) == 0 {
		return nil, ErrPathNotFound
	}
	next := models.CloneForest(forest)

	parentPath, idx := path[:len(path)-1], path[len(path)-1]
	if len(parentPath) == 0 {
		if idx < 0 || idx >= len(next) {
			return nil, ErrPathNotFound
		}
		return append(next[:idx], next[idx+1:]...), nil
	}
	parent, err := nodeAt(next, parentPath)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(parent.SubInfo) {
		return nil, ErrPathNotFound
	}
	parent.SubInfo = append(parent.SubInfo[:idx], parent.SubInfo[idx+1:]...)
	return next, nil
}

// UpdateField replaces the named text field of the node at path. An empty
// value is allowed here: live editing passes through empty states, and full
// validation runs on save instead.
func UpdateField(forest []models.ContentNode, path []int, field InfoField, value string) ([]models.ContentNode, error) {
	next := models.CloneForest(forest)
	node, err := nodeAt(next, path)
	if err != nil {
		return nil, err
	}
	switch field {
	case FieldTitle:
		node.Title = value
	case FieldDescription:
		node.Description = value
	default:
		return nil, ErrUnknownField
	}
	return next, nil
}

// SetChildren wholesale-replaces the children of the node at path. An empty
// path replaces the entire root-level forest. This is how a recursively
// edited subtree is spliced back without deep-merge logic at every level.
func SetChildren(forest []models.ContentNode, path []int, children []models.ContentNode) ([]models.ContentNode, error) {
	if len(path) == 0 {
		return models.CloneForest(children), nil
	}
	next := models.CloneForest(forest)
	node, err := nodeAt(next, path)
	if err != nil {
		return nil, err
	}
	node.SubInfo = models.CloneForest(children)
	return next, nil
}

// nodeAt returns a pointer into forest addressing the node at path.
func nodeAt(forest []models.ContentNode, path []int) (*models.ContentNode, error) {
	if len(path) == 0 {
		return nil, ErrPathNotFound
	}
	siblings := forest
	var node *models.ContentNode
	for _, idx := range path {
		if idx < 0 || idx >= len(siblings) {
			return nil, ErrPathNotFound
		}
		node = &siblings[idx]
		siblings = node.SubInfo
	}
	return node, nil
}

package services

import (
	"github.com/lomdim/lomdim-backend/models"
)

// MaxInfoDepth caps how deep an incoming info tree may nest. The wire format
// allows arbitrary recursion, but accepting unbounded depth from clients is a
// stack-overflow risk, so ingestion rejects anything deeper.
const MaxInfoDepth = 50

// DecodeInfoForest validates and converts a decoded JSON value (the "info"
// array of a subject document) into a typed forest. Validation is depth-first,
// pre-order and fail-fast: the first violation found is returned.
func DecodeInfoForest(raw any) ([]models.ContentNode, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, models.ErrInvalidShape
	}
	forest := make([]models.ContentNode, 0, len(items))
	for _, item := range items {
		node, err := decodeInfoNode(item, 1)
		if err != nil {
			return nil, err
		}
		forest = append(forest, node)
	}
	return forest, nil
}

// DecodeInfoNode validates a single node of the recursive wire format
// (infoTitle / infoDescription / subInfo).
func DecodeInfoNode(raw any) (models.ContentNode, error) {
	return decodeInfoNode(raw, 1)
}

func decodeInfoNode(raw any, depth int) (models.ContentNode, error) {
	if depth > MaxInfoDepth {
		return models.ContentNode{}, models.ErrDepthExceeded
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return models.ContentNode{}, models.ErrInvalidShape
	}

	title, _ := obj["infoTitle"].(string)
	if title == "" {
		return models.ContentNode{}, &models.MissingFieldError{Field: "infoTitle"}
	}
	description, _ := obj["infoDescription"].(string)
	if description == "" {
		return models.ContentNode{}, &models.MissingFieldError{Field: "infoDescription"}
	}

	node := models.ContentNode{Title: title, Description: description}

	subRaw, present := obj["subInfo"]
	if !present || subRaw == nil {
		return node, nil
	}
	children, ok := subRaw.([]any)
	if !ok {
		return models.ContentNode{}, models.ErrInvalidShape
	}
	for _, childRaw := range children {
		child, err := decodeInfoNode(childRaw, depth+1)
		if err != nil {
			return models.ContentNode{}, err
		}
		node.SubInfo = append(node.SubInfo, child)
	}
	return node, nil
}

// ValidateInfoForest re-checks an already typed forest (used before saving an
// edited forest, where intermediate empty fields were allowed during editing).
func ValidateInfoForest(forest []models.ContentNode) error {
	for _, node := range forest {
		if err := validateNode(node, 1); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(node models.ContentNode, depth int) error {
	if depth > MaxInfoDepth {
		return models.ErrDepthExceeded
	}
	if node.Title == "" {
		return &models.MissingFieldError{Field: "infoTitle"}
	}
	if node.Description == "" {
		return &models.MissingFieldError{Field: "infoDescription"}
	}
	for _, child := range node.SubInfo {
		if err := validateNode(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

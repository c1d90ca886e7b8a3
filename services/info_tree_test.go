package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/lomdim/lomdim-backend/models"
)

func decodeJSON(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return v
}

func TestDecodeInfoForestValid(t *testing.T) {
	raw := decodeJSON(t, `[
		{
			"infoTitle": "What is ATP",
			"infoDescription": "The cell's energy currency.",
			"subInfo": [
				{"infoTitle": "Structure", "infoDescription": "Adenine, ribose, three phosphates."},
				{
					"infoTitle": "Role",
					"infoDescription": "Powers cellular processes.",
					"subInfo": [
						{"infoTitle": "Energy release", "infoDescription": "Breaking a phosphate bond yields ADP."}
					]
				}
			]
		}
	]`)

	forest, err := DecodeInfoForest(raw)
	if err != nil {
		t.Fatalf("DecodeInfoForest() error = %v", err)
	}
	if got := models.CountForest(forest); got != 4 {
		t.Errorf("node count = %d, want 4", got)
	}
	if got := models.DepthForest(forest); got != 3 {
		t.Errorf("depth = %d, want 3", got)
	}
	if forest[0].SubInfo[1].SubInfo[0].Title != "Energy release" {
		t.Errorf("nested title = %q, want %q", forest[0].SubInfo[1].SubInfo[0].Title, "Energy release")
	}
}

func TestDecodeInfoForestNil(t *testing.T) {
	forest, err := DecodeInfoForest(nil)
	if err != nil || forest != nil {
		t.Errorf("DecodeInfoForest(nil) = %v, %v; want nil, nil", forest, err)
	}
}

func TestDecodeInfoForestInvalidShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not an array", `{"infoTitle": "a", "infoDescription": "b"}`},
		{"element is a string", `["not an object"]`},
		{"element is null", `[null]`},
		{"element is a number", `[42]`},
		{"subInfo is an object", `[{"infoTitle": "a", "infoDescription": "b", "subInfo": {}}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeInfoForest(decodeJSON(t, tt.raw))
			if !errors.Is(err, models.ErrInvalidShape) {
				t.Errorf("error = %v, want ErrInvalidShape", err)
			}
		})
	}
}

func TestDecodeInfoForestMissingFields(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantField string
	}{
		{"missing title at root", `[{"infoDescription": "b"}]`, "infoTitle"},
		{"empty title at root", `[{"infoTitle": "", "infoDescription": "b"}]`, "infoTitle"},
		{"missing description at root", `[{"infoTitle": "a"}]`, "infoDescription"},
		{
			"missing description nested",
			`[{"infoTitle": "a", "infoDescription": "b", "subInfo": [{"infoTitle": "c"}]}]`,
			"infoDescription",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeInfoForest(decodeJSON(t, tt.raw))
			var missing *models.MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("error = %v, want MissingFieldError", err)
			}
			if missing.Field != tt.wantField {
				t.Errorf("field = %q, want %q", missing.Field, tt.wantField)
			}
		})
	}
}

// Validation is pre-order and fail-fast: a violation in a parent is reported
// before its children are even looked at, and the first bad sibling wins.
func TestDecodeInfoForestFailFast(t *testing.T) {
	raw := decodeJSON(t, `[
		{"infoTitle": "ok", "infoDescription": "", "subInfo": [{"infoTitle": "", "infoDescription": ""}]},
		{"infoTitle": "", "infoDescription": ""}
	]`)

	_, err := DecodeInfoForest(raw)
	var missing *models.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingFieldError", err)
	}
	if missing.Field != "infoDescription" {
		t.Errorf("first reported field = %q, want %q (parent before child)", missing.Field, "infoDescription")
	}
}

func TestDecodeInfoForestDepthCap(t *testing.T) {
	build := func(depth int) any {
		node := map[string]any{"infoTitle": "leaf", "infoDescription": "d"}
		for i := 1; i < depth; i++ {
			node = map[string]any{"infoTitle": "n", "infoDescription": "d", "subInfo": []any{node}}
		}
		return []any{node}
	}

	if _, err := DecodeInfoForest(build(MaxInfoDepth)); err != nil {
		t.Errorf("depth %d should be accepted, got %v", MaxInfoDepth, err)
	}
	if _, err := DecodeInfoForest(build(MaxInfoDepth + 1)); !errors.Is(err, models.ErrDepthExceeded) {
		t.Errorf("depth %d: error = %v, want ErrDepthExceeded", MaxInfoDepth+1, err)
	}
}

func TestDecodeInfoNode(t *testing.T) {
	node, err := DecodeInfoNode(decodeJSON(t, `{"infoTitle": "a", "infoDescription": "b"}`))
	if err != nil {
		t.Fatalf("DecodeInfoNode() error = %v", err)
	}
	if node.Title != "a" || node.Description != "b" {
		t.Errorf("node = %+v", node)
	}

	if _, err := DecodeInfoNode(decodeJSON(t, `["not an object"]`)); !errors.Is(err, models.ErrInvalidShape) {
		t.Errorf("error = %v, want ErrInvalidShape", err)
	}
}

func TestValidateInfoForest(t *testing.T) {
	valid := []models.ContentNode{{Title: "a", Description: "b", SubInfo: []models.ContentNode{{Title: "c", Description: "d"}}}}
	if err := ValidateInfoForest(valid); err != nil {
		t.Errorf("ValidateInfoForest(valid) = %v", err)
	}

	draft := []models.ContentNode{{Title: "a", Description: "b", SubInfo: []models.ContentNode{{Title: "", Description: ""}}}}
	var missing *models.MissingFieldError
	if err := ValidateInfoForest(draft); !errors.As(err, &missing) {
		t.Errorf("ValidateInfoForest(draft) = %v, want MissingFieldError", err)
	}
}

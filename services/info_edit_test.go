package services

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/lomdim/lomdim-backend/models"
)

func editFixture() []models.ContentNode {
	return []models.ContentNode{
		{Title: "a", Description: "da", SubInfo: []models.ContentNode{
			{Title: "a0", Description: "da0"},
			{Title: "a1", Description: "da1", SubInfo: []models.ContentNode{
				{Title: "a1x", Description: "da1x"},
			}},
		}},
		{Title: "b", Description: "db"},
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(raw)
}

func TestAddChild(t *testing.T) {
	forest := editFixture()

	t.Run("empty path appends a root node", func(t *testing.T) {
		next, err := AddChild(forest, nil)
		if err != nil {
			t.Fatalf("AddChild() error = %v", err)
		}
		if len(next) != 3 {
			t.Fatalf("root count = %d, want 3", len(next))
		}
		if next[2].Title != "" || next[2].Description != "" || len(next[2].SubInfo) != 0 {
			t.Errorf("appended node not empty: %+v", next[2])
		}
	})

	t.Run("nested path appends as last child", func(t *testing.T) {
		next, err := AddChild(forest, []int{0, 1})
		if err != nil {
			t.Fatalf("AddChild() error = %v", err)
		}
		children := next[0].SubInfo[1].SubInfo
		if len(children) != 2 {
			t.Fatalf("children = %d, want 2", len(children))
		}
		if children[1].Title != "" || children[1].Description != "" {
			t.Errorf("appended child not empty: %+v", children[1])
		}
	})

	t.Run("bad index fails and input is untouched", func(t *testing.T) {
		before := mustJSON(t, forest)
		_, err := AddChild(forest, []int{0, 5})
		if !errors.Is(err, ErrPathNotFound) {
			t.Fatalf("error = %v, want ErrPathNotFound", err)
		}
		if mustJSON(t, forest) != before {
			t.Error("input forest changed on failed AddChild")
		}
	})
}

func TestRemoveNode(t *testing.T) {
	forest := editFixture()

	t.Run("removes subtree", func(t *testing.T) {
		next, err := RemoveNode(forest, []int{0, 1})
		if err != nil {
			t.Fatalf("RemoveNode() error = %v", err)
		}
		if got, want := models.CountForest(next), models.CountForest(forest)-2; got != want {
			t.Errorf("count = %d, want %d", got, want)
		}
		if len(next[0].SubInfo) != 1 || next[0].SubInfo[0].Title != "a0" {
			t.Errorf("unexpected siblings after removal: %+v", next[0].SubInfo)
		}
	})

	t.Run("removes root node", func(t *testing.T) {
		next, err := RemoveNode(forest, []int{1})
		if err != nil {
			t.Fatalf("RemoveNode() error = %v", err)
		}
		if len(next) != 1 || next[0].Title != "a" {
			t.Errorf("unexpected forest after root removal: %+v", next)
		}
	})

	t.Run("removing the last node at a level is allowed", func(t *testing.T) {
		next, err := RemoveNode(forest, []int{0, 1, 0})
		if err != nil {
			t.Fatalf("RemoveNode() error = %v", err)
		}
		if len(next[0].SubInfo[1].SubInfo) != 0 {
			t.Errorf("children should be empty, got %+v", next[0].SubInfo[1].SubInfo)
		}
	})

	t.Run("empty path fails", func(t *testing.T) {
		if _, err := RemoveNode(forest, nil); !errors.Is(err, ErrPathNotFound) {
			t.Errorf("error = %v, want ErrPathNotFound", err)
		}
	})

	t.Run("bad index leaves forest unchanged", func(t *testing.T) {
		before := mustJSON(t, forest)
		if _, err := RemoveNode(forest, []int{3}); !errors.Is(err, ErrPathNotFound) {
			t.Fatalf("error = %v, want ErrPathNotFound", err)
		}
		if mustJSON(t, forest) != before {
			t.Error("input forest changed on failed RemoveNode")
		}
	})
}

// Sibling indices renumber after removal: removing a node and re-adding at the
// parent restores the node count.
func TestRemoveThenAddRestoresCount(t *testing.T) {
	forest := editFixture()
	want := models.CountForest(forest)

	next, err := RemoveNode(forest, []int{0, 0})
	if err != nil {
		t.Fatalf("RemoveNode() error = %v", err)
	}
	next, err = AddChild(next, []int{0})
	if err != nil {
		t.Fatalf("AddChild() error = %v", err)
	}
	if got := models.CountForest(next); got != want {
		t.Errorf("count after remove+add = %d, want %d", got, want)
	}
}

func TestUpdateField(t *testing.T) {
	forest := editFixture()

	next, err := UpdateField(forest, []int{0, 1, 0}, FieldTitle, "renamed")
	if err != nil {
		t.Fatalf("UpdateField() error = %v", err)
	}
	if next[0].SubInfo[1].SubInfo[0].Title != "renamed" {
		t.Errorf("title not updated: %+v", next[0].SubInfo[1].SubInfo[0])
	}
	if forest[0].SubInfo[1].SubInfo[0].Title != "a1x" {
		t.Error("input forest mutated by UpdateField")
	}

	next, err = UpdateField(forest, []int{1}, FieldDescription, "")
	if err != nil {
		t.Fatalf("UpdateField() empty value error = %v", err)
	}
	if next[1].Description != "" {
		t.Error("empty value must be permitted during editing")
	}

	if _, err := UpdateField(forest, []int{9}, FieldTitle, "x"); !errors.Is(err, ErrPathNotFound) {
		t.Errorf("error = %v, want ErrPathNotFound", err)
	}
	if _, err := UpdateField(forest, []int{0}, InfoField("color"), "x"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("error = %v, want ErrUnknownField", err)
	}
}

func TestParseInfoField(t *testing.T) {
	if f, err := ParseInfoField("infoTitle"); err != nil || f != FieldTitle {
		t.Errorf("ParseInfoField(infoTitle) = %v, %v", f, err)
	}
	if f, err := ParseInfoField("infoDescription"); err != nil || f != FieldDescription {
		t.Errorf("ParseInfoField(infoDescription) = %v, %v", f, err)
	}
	if _, err := ParseInfoField("subInfo"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("ParseInfoField(subInfo) error = %v, want ErrUnknownField", err)
	}
}

func TestSetChildren(t *testing.T) {
	forest := editFixture()

	t.Run("replaces children wholesale", func(t *testing.T) {
		replacement := []models.ContentNode{{Title: "new", Description: "dn"}}
		next, err := SetChildren(forest, []int{0}, replacement)
		if err != nil {
			t.Fatalf("SetChildren() error = %v", err)
		}
		if !reflect.DeepEqual([]models.ContentNode(next[0].SubInfo), replacement) {
			t.Errorf("children = %+v, want %+v", next[0].SubInfo, replacement)
		}
	})

	t.Run("with a node's own children is a no-op on the serialized form", func(t *testing.T) {
		next, err := SetChildren(forest, []int{0}, forest[0].SubInfo)
		if err != nil {
			t.Fatalf("SetChildren() error = %v", err)
		}
		if mustJSON(t, next) != mustJSON(t, forest) {
			t.Error("self-splice changed the serialized forest")
		}
	})

	t.Run("empty path replaces the whole forest", func(t *testing.T) {
		replacement := []models.ContentNode{{Title: "only", Description: "d"}}
		next, err := SetChildren(forest, nil, replacement)
		if err != nil {
			t.Fatalf("SetChildren() error = %v", err)
		}
		if !reflect.DeepEqual(next, replacement) {
			t.Errorf("forest = %+v, want %+v", next, replacement)
		}
	})

	t.Run("bad path leaves forest unchanged", func(t *testing.T) {
		before := mustJSON(t, forest)
		if _, err := SetChildren(forest, []int{7}, nil); !errors.Is(err, ErrPathNotFound) {
			t.Fatalf("error = %v, want ErrPathNotFound", err)
		}
		if mustJSON(t, forest) != before {
			t.Error("input forest changed on failed SetChildren")
		}
	})
}

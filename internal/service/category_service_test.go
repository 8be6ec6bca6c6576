package service

import (
	"testing"

	"github.com/vruksha/storefront/internal/models"
)

func uintPtr(v uint) *uint {
	return &v
}

func TestBuildCategoryTreeTwoLevels(t *testing.T) {
	categories := []models.Category{
		{ID: 1, Name: "Vegetables"},
		{ID: 2, Name: "Fruits"},
		{ID: 3, Name: "Leafy Greens", ParentID: uintPtr(1)},
		{ID: 4, Name: "Root Vegetables", ParentID: uintPtr(1)},
		{ID: 5, Name: "Seasonal Fruits", ParentID: uintPtr(2)},
	}

	tree := BuildCategoryTree(categories)
	if len(tree) != 2 {
		t.Fatalf("roots want 2, got %d", len(tree))
	}
	if tree[0].Name != "Vegetables" || tree[1].Name != "Fruits" {
		t.Fatalf("root order wrong: %q, %q", tree[0].Name, tree[1].Name)
	}
	if len(tree[0].Children) != 2 {
		t.Fatalf("vegetables children want 2, got %d", len(tree[0].Children))
	}
	if tree[0].Children[0].Name != "Leafy Greens" || tree[0].Children[1].Name != "Root Vegetables" {
		t.Fatalf("child order wrong: %v", tree[0].Children)
	}
	if len(tree[1].Children) != 1 || tree[1].Children[0].ID != 5 {
		t.Fatalf("fruits children wrong: %v", tree[1].Children)
	}
}

func TestBuildCategoryTreeDropsOrphans(t *testing.T) {
	categories := []models.Category{
		{ID: 1, Name: "Dairy"},
		{ID: 9, Name: "Ghost Child", ParentID: uintPtr(42)},
	}

	tree := BuildCategoryTree(categories)
	if len(tree) != 1 {
		t.Fatalf("roots want 1, got %d", len(tree))
	}
	if len(tree[0].Children) != 0 {
		t.Fatalf("orphan should be dropped, got children %v", tree[0].Children)
	}
}

func TestBuildCategoryTreeEmptyInput(t *testing.T) {
	tree := BuildCategoryTree(nil)
	if tree == nil {
		t.Fatalf("want non-nil empty slice")
	}
	if len(tree) != 0 {
		t.Fatalf("want empty tree, got %v", tree)
	}
}

func TestBuildCategoryTreeChildrenNeverNil(t *testing.T) {
	tree := BuildCategoryTree([]models.Category{
		{ID: 1, Name: "Grains"},
		{ID: 2, Name: "Pulses", ParentID: uintPtr(1)},
	})
	if tree[0].Children == nil {
		t.Fatalf("root children must not be nil")
	}
	if tree[0].Children[0].Children == nil {
		t.Fatalf("leaf children must not be nil")
	}
}

package companies

import (
	"testing"

	"venturepulse/app/models"
)

func TestGroupCategoriesByPillar(t *testing.T) {
	// Input ordered by pillar then sequence, as the catalog query returns it.
	categories := []*models.Category{
		{ID: "c1", Pillar: "Execution", Label: "Delivery", Sequence: 1},
		{ID: "c2", Pillar: "Execution", Label: "Hiring", Sequence: 2},
		{ID: "c3", Pillar: "Market", Label: "Competition", Sequence: 1},
		{ID: "c4", Pillar: "Team", Label: "Culture", Sequence: 1},
	}

	groups := groupCategoriesByPillar(categories)

	if len(groups) != 3 {
		t.Fatalf("got %d pillar groups, want 3", len(groups))
	}

	wantPillars := []string{"Execution", "Market", "Team"}
	wantCounts := []int{2, 1, 1}
	for i, group := range groups {
		if group.Pillar != wantPillars[i] {
			t.Errorf("group %d pillar = %q, want %q", i, group.Pillar, wantPillars[i])
		}
		if len(group.Categories) != wantCounts[i] {
			t.Errorf("group %d has %d categories, want %d", i, len(group.Categories), wantCounts[i])
		}
	}

	if groups[0].Categories[1].ID != "c2" {
		t.Errorf("category order not preserved: got %q in second slot", groups[0].Categories[1].ID)
	}
}

func TestGroupCategoriesByPillarEmpty(t *testing.T) {
	groups := groupCategoriesByPillar(nil)
	if groups == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(groups) != 0 {
		t.Fatalf("got %d groups, want 0", len(groups))
	}
}

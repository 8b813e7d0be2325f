package services

import (
	"reflect"
	"testing"

	"venturepulse/app/models"
)

// periods must be ordered newest first, as the database helper returns them.
func periodFixtures() []*models.AssessmentPeriod {
	return []*models.AssessmentPeriod{
		{ID: "p3", Year: 2025, Quarter: 1},
		{ID: "p2", Year: 2024, Quarter: 4},
		{ID: "p1", Year: 2024, Quarter: 2},
	}
}

func TestSelectPriorPeriod(t *testing.T) {
	cases := []struct {
		name    string
		periods []*models.AssessmentPeriod
		year    int
		quarter int
		editing bool
		wantID  string
	}{
		{"no periods at all", nil, 2025, 1, false, ""},
		{"skips the excluded current pair", periodFixtures(), 2025, 1, false, "p2"},
		{"most recent when current pair absent", periodFixtures(), 2025, 2, false, "p3"},
		{"editing prefers the current pair when present", periodFixtures(), 2024, 4, true, "p2"},
		{"editing falls back to most recent prior", periodFixtures(), 2025, 3, true, "p3"},
		{"sole period excluded yields nothing", []*models.AssessmentPeriod{{ID: "p1", Year: 2025, Quarter: 1}}, 2025, 1, false, ""},
		{"sole period kept in editing mode", []*models.AssessmentPeriod{{ID: "p1", Year: 2025, Quarter: 1}}, 2025, 1, true, "p1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SelectPriorPeriod(tc.periods, tc.year, tc.quarter, tc.editing)
			if tc.wantID == "" {
				if got != nil {
					t.Fatalf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected period %s, got nil", tc.wantID)
			}
			if got.ID != tc.wantID {
				t.Fatalf("selected period %s, want %s", got.ID, tc.wantID)
			}
		})
	}
}

func TestScoreDeltas(t *testing.T) {
	cases := []struct {
		name    string
		current map[string]int
		prior   map[string]int
		want    map[string]int
	}{
		{
			"improvement and regression",
			map[string]int{"q1": 4, "q2": 2, "q3": 3},
			map[string]int{"q1": 2, "q2": 5, "q3": 3},
			map[string]int{"q1": 2, "q2": -3, "q3": 0},
		},
		{
			"question new this quarter has no delta",
			map[string]int{"q1": 4, "q2": 3},
			map[string]int{"q1": 3},
			map[string]int{"q1": 1},
		},
		{
			"dropped question has no delta",
			map[string]int{"q1": 4},
			map[string]int{"q1": 3, "q2": 5},
			map[string]int{"q1": 1},
		},
		{
			"nil prior yields no deltas",
			map[string]int{"q1": 4},
			nil,
			map[string]int{},
		},
		{
			"empty current yields no deltas",
			map[string]int{},
			map[string]int{"q1": 3},
			map[string]int{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScoreDeltas(tc.current, tc.prior)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ScoreDeltas = %v, want %v", got, tc.want)
			}
		})
	}
}

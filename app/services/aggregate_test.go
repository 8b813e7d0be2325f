package services

import (
	"reflect"
	"testing"
)

func questionFixtures() []QuestionInfo {
	return []QuestionInfo{
		{ID: "q1", CategoryID: "c1", CategoryLabel: "Value proposition", Pillar: "BUSINESS CONCEPT & MARKET"},
		{ID: "q2", CategoryID: "c1", CategoryLabel: "Value proposition", Pillar: "BUSINESS CONCEPT & MARKET"},
		{ID: "q3", CategoryID: "c2", CategoryLabel: "Team completeness", Pillar: "TEAM"},
		{ID: "q4", CategoryID: "c3", CategoryLabel: "Runway", Pillar: "FINANCE"},
	}
}

func TestAggregate_MeansPerCategory(t *testing.T) {
	responses := []ScoreResponse{
		{QuestionID: "q1", Score: 4},
		{QuestionID: "q2", Score: 5},
		{QuestionID: "q3", Score: 2},
	}

	axes := Aggregate(questionFixtures(), responses)
	if len(axes) != 2 {
		t.Fatalf("expected 2 category axes, got %d", len(axes))
	}

	byCategory := map[string]CategoryAxis{}
	for _, a := range axes {
		byCategory[a.CategoryID] = a
	}

	if got := byCategory["c1"].AverageScore(); got != 4.5 {
		t.Errorf("category c1 mean = %v, want 4.5", got)
	}
	if got := byCategory["c2"].AverageScore(); got != 2.0 {
		t.Errorf("category c2 mean = %v, want 2.0", got)
	}
	if axis := byCategory["c1"]; len(axis.Axes) != 1 || axis.Axes[0].Label != "Value proposition" {
		t.Errorf("expected one synthetic axis labelled by the category, got %+v", axis.Axes)
	}
}

func TestAggregate_SkipsCategoriesWithoutResponses(t *testing.T) {
	responses := []ScoreResponse{{QuestionID: "q3", Score: 3}}

	axes := Aggregate(questionFixtures(), responses)
	if len(axes) != 1 {
		t.Fatalf("expected only responded category, got %d axes", len(axes))
	}
	if axes[0].CategoryID != "c2" {
		t.Fatalf("expected category c2, got %s", axes[0].CategoryID)
	}
}

func TestAggregate_DuplicateResponsesAccumulate(t *testing.T) {
	// Two rows against one question average together: 4 and 0 -> 2.0.
	responses := []ScoreResponse{
		{QuestionID: "q1", Score: 4},
		{QuestionID: "q1", Score: 0},
	}

	axes := Aggregate(questionFixtures(), responses)
	if len(axes) != 1 {
		t.Fatalf("expected 1 axis, got %d", len(axes))
	}
	if got := axes[0].AverageScore(); got != 2.0 {
		t.Fatalf("duplicate rows mean = %v, want 2.0", got)
	}
}

func TestAggregate_InvariantUnderPermutation(t *testing.T) {
	questions := questionFixtures()
	responses := []ScoreResponse{
		{QuestionID: "q1", Score: 4},
		{QuestionID: "q2", Score: 1},
		{QuestionID: "q3", Score: 5},
		{QuestionID: "q4", Score: 3},
	}

	want := Aggregate(questions, responses)

	permutedQuestions := []QuestionInfo{questions[3], questions[1], questions[0], questions[2]}
	permutedResponses := []ScoreResponse{responses[2], responses[0], responses[3], responses[1]}

	if got := Aggregate(permutedQuestions, permutedResponses); !reflect.DeepEqual(got, want) {
		t.Fatalf("aggregate changed under permutation:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestAggregate_EmptyInputs(t *testing.T) {
	if axes := Aggregate(nil, nil); len(axes) != 0 {
		t.Fatalf("expected no axes for empty input, got %+v", axes)
	}
	if axes := Aggregate(questionFixtures(), nil); len(axes) != 0 {
		t.Fatalf("expected no axes without responses, got %+v", axes)
	}
}

func TestMeanRounding(t *testing.T) {
	if got := mean([]int{1, 2, 2}); got != 1.67 {
		t.Fatalf("mean(1,2,2) = %v, want 1.67", got)
	}
	if got := mean(nil); got != 0 {
		t.Fatalf("mean(nil) = %v, want 0", got)
	}
}

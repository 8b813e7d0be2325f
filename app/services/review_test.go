package services

import (
	"strings"
	"testing"

	"venturepulse/app/models"
)

func TestParseReviewResponse_WellFormed(t *testing.T) {
	raw := `{
		"executive_summary": "Solid quarter.",
		"insights": [
			{"title": "Sales up", "description": "...", "type": "improvement",
			 "category": "Pipeline", "pillar": "SALES", "change": 1.5,
			 "current_score": 4.0, "previous_score": 2.5}
		],
		"recommendations": ["Hire a closer"]
	}`

	content := ParseReviewResponse(raw)
	if content.ExecutiveSummary != "Solid quarter." {
		t.Fatalf("summary = %q", content.ExecutiveSummary)
	}
	if len(content.Insights) != 1 || content.Insights[0].Type != "improvement" {
		t.Fatalf("insights = %+v", content.Insights)
	}
	if len(content.Recommendations) != 1 {
		t.Fatalf("recommendations = %+v", content.Recommendations)
	}
}

func TestParseReviewResponse_StripsFencedBlock(t *testing.T) {
	raw := "```json\n{\"executive_summary\": \"Fenced.\", \"insights\": [], \"recommendations\": []}\n```"

	content := ParseReviewResponse(raw)
	if content.ExecutiveSummary != "Fenced." {
		t.Fatalf("fenced JSON not parsed, summary = %q", content.ExecutiveSummary)
	}
}

func TestParseReviewResponse_MalformedDegradesGracefully(t *testing.T) {
	raw := "The model rambled instead of returning JSON."

	content := ParseReviewResponse(raw)
	if content.ExecutiveSummary != raw {
		t.Fatalf("raw text must become the summary, got %q", content.ExecutiveSummary)
	}
	if content.Insights == nil || len(content.Insights) != 0 {
		t.Fatalf("insights must be an empty slice, got %+v", content.Insights)
	}
	if content.Recommendations == nil || len(content.Recommendations) != 0 {
		t.Fatalf("recommendations must be an empty slice, got %+v", content.Recommendations)
	}
}

func TestParseReviewResponse_NilSlicesNormalized(t *testing.T) {
	content := ParseReviewResponse(`{"executive_summary": "ok"}`)
	if content.Insights == nil || content.Recommendations == nil {
		t.Fatalf("missing arrays must decode to empty slices, got %+v", content)
	}
}

func TestFlattenAxes(t *testing.T) {
	axes := []CategoryAxis{
		{CategoryID: "c1", CategoryLabel: "Value proposition", Pillar: "BUSINESS", Axes: []Axis{{Label: "Value proposition", Score: 4.5}}},
		{CategoryID: "c2", CategoryLabel: "Market size", Pillar: "BUSINESS", Axes: []Axis{{Label: "Market size", Score: 2}}},
		{CategoryID: "c3", CategoryLabel: "Runway", Pillar: "FINANCE", Axes: []Axis{{Label: "Runway", Score: 3}}},
	}

	flat := flattenAxes(axes)
	if len(flat) != 2 {
		t.Fatalf("expected 2 pillars, got %d", len(flat))
	}
	if flat["BUSINESS"]["Value proposition"] != 4.5 {
		t.Fatalf("BUSINESS/Value proposition = %v", flat["BUSINESS"]["Value proposition"])
	}
	if flat["FINANCE"]["Runway"] != 3 {
		t.Fatalf("FINANCE/Runway = %v", flat["FINANCE"]["Runway"])
	}
}

func TestBuildReviewPrompt(t *testing.T) {
	current := []CategoryAxis{
		{CategoryID: "c1", CategoryLabel: "Runway", Pillar: "FINANCE", Axes: []Axis{{Label: "Runway", Score: 4}}},
	}
	previous := []CategoryAxis{
		{CategoryID: "c1", CategoryLabel: "Runway", Pillar: "FINANCE", Axes: []Axis{{Label: "Runway", Score: 2}}},
	}
	reports := []*models.MonthlyReport{
		{Month: 4, Team: "Hired two engineers", Fundraise: "Series A talks"},
	}

	prompt := BuildReviewPrompt("Acme", 2025, 2, current, previous, reports)

	for _, token := range []string{
		"Company: Acme",
		"Period under review: Q2 2025",
		"Current quarter scores",
		"Previous quarter scores",
		"\"Runway\": 4",
		"\"Runway\": 2",
		"April",
		"Hired two engineers",
		"Series A talks",
	} {
		if !strings.Contains(prompt, token) {
			t.Fatalf("prompt missing %q:\n%s", token, prompt)
		}
	}
}

func TestBuildReviewPrompt_NoPreviousQuarter(t *testing.T) {
	current := []CategoryAxis{
		{CategoryID: "c1", CategoryLabel: "Runway", Pillar: "FINANCE", Axes: []Axis{{Label: "Runway", Score: 3}}},
	}

	prompt := BuildReviewPrompt("Acme", 2025, 1, current, nil, nil)
	if !strings.Contains(prompt, "baseline quarter") {
		t.Fatalf("prompt should flag a missing previous quarter:\n%s", prompt)
	}
	if strings.Contains(prompt, "Previous quarter scores") {
		t.Fatalf("prompt must not include an empty previous section:\n%s", prompt)
	}
}

func TestStripJSONFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence without newline", "```", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripJSONFence(tc.in); got != tc.want {
				t.Fatalf("stripJSONFence(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

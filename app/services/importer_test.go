package services

import (
	"testing"
)

func TestCoerceScore(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want int
	}{
		{"integer in range", float64(4), 4},
		{"rounds to nearest", float64(3.6), 4},
		{"rounds down", float64(2.4), 2},
		{"zero stays zero", float64(0), 0},
		{"above range", float64(6), 0},
		{"negative", float64(-1), 0},
		{"numeric string", "4", 4},
		{"numeric string with spaces", " 3.5 ", 4},
		{"non-numeric string", "abc", 0},
		{"nil score", nil, 0},
		{"boolean", true, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := coerceScore(tc.in); got != tc.want {
				t.Fatalf("coerceScore(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseImportPayload_WellFormed(t *testing.T) {
	payload := []byte(`{
		"BUSINESS CONCEPT & MARKET": {
			"Value proposition": [
				{"statement": "We have PMF", "score": 4},
				{"statement": "We know our customer", "score": "5"}
			],
			"Market size": [
				{"statement": "TAM exceeds 1B", "score": 2}
			]
		}
	}`)

	statements, failures, err := ParseImportPayload(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %+v", failures)
	}
	if len(statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(statements))
	}

	byStatement := map[string]ImportStatement{}
	for _, s := range statements {
		byStatement[s.Statement] = s
	}
	if s := byStatement["We know our customer"]; s.Score != 5 || s.Category != "Value proposition" {
		t.Fatalf("numeric string score mishandled: %+v", s)
	}
	if s := byStatement["TAM exceeds 1B"]; s.Pillar != "BUSINESS CONCEPT & MARKET" || s.Category != "Market size" {
		t.Fatalf("hierarchy context lost: %+v", s)
	}
}

func TestParseImportPayload_BadScoresAreNotFailures(t *testing.T) {
	payload := []byte(`{
		"PILLAR": {
			"Category": [
				{"statement": "a", "score": 6},
				{"statement": "b", "score": -1},
				{"statement": "c", "score": "abc"},
				{"statement": "d", "score": null},
				{"statement": "e"}
			]
		}
	}`)

	statements, failures, err := ParseImportPayload(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(failures) != 0 {
		t.Fatalf("bad scores must coerce, not fail: %+v", failures)
	}
	if len(statements) != 5 {
		t.Fatalf("expected 5 statements, got %d", len(statements))
	}
	for _, s := range statements {
		if s.Score != 0 {
			t.Fatalf("statement %q coerced to %d, want 0", s.Statement, s.Score)
		}
	}
}

func TestParseImportPayload_MalformedEntriesAreFailures(t *testing.T) {
	payload := []byte(`{
		"PILLAR": {
			"Good": [{"statement": "fine", "score": 3}],
			"NotAnArray": {"statement": "wrong shape"},
			"MissingStatement": [{"score": 4}],
			"EmptyStatement": [{"statement": "   ", "score": 4}]
		},
		"BadPillar": [1, 2, 3]
	}`)

	statements, failures, err := ParseImportPayload(payload)
	if err != nil {
		t.Fatalf("parse must continue past malformed entries: %v", err)
	}
	if len(statements) != 1 {
		t.Fatalf("expected only the well-formed statement, got %d", len(statements))
	}
	if len(failures) != 4 {
		t.Fatalf("expected 4 failures, got %d: %+v", len(failures), failures)
	}
	for _, f := range failures {
		if f.Pillar == "" || f.Reason == "" {
			t.Fatalf("failure lacks context: %+v", f)
		}
	}
}

func TestParseImportPayload_NotAnObject(t *testing.T) {
	for _, raw := range []string{`[1,2]`, `"text"`, `not json at all`} {
		if _, _, err := ParseImportPayload([]byte(raw)); err == nil {
			t.Fatalf("expected parse error for %q", raw)
		}
	}
}

func TestParseImportPayload_DuplicateStatementsBothKept(t *testing.T) {
	// Both rows survive parsing; the resolver maps them to one question and
	// the aggregator averages the two persisted responses.
	payload := []byte(`{
		"BUSINESS CONCEPT & MARKET": {
			"Value proposition": [
				{"statement": "We have PMF", "score": 4},
				{"statement": "We have PMF", "score": "bad"}
			]
		}
	}`)

	statements, failures, err := ParseImportPayload(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %+v", failures)
	}
	if len(statements) != 2 {
		t.Fatalf("expected both duplicate rows, got %d", len(statements))
	}
	if statements[0].Score+statements[1].Score != 4 {
		t.Fatalf("expected scores 4 and 0, got %d and %d", statements[0].Score, statements[1].Score)
	}
}

func TestSummarizeFailures(t *testing.T) {
	if got := summarizeFailures(nil); got != "payload contains no statements" {
		t.Fatalf("empty summary = %q", got)
	}

	failures := []ImportFailure{
		{Reason: "a"}, {Reason: "b"}, {Reason: "c"}, {Reason: "d"}, {Reason: "e"},
	}
	got := summarizeFailures(failures)
	if got != "5 failures: a; b; c; and 2 more" {
		t.Fatalf("summary = %q", got)
	}
}

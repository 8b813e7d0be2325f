package services

import (
	"math"
	"sort"
)

// QuestionInfo is the slice of a question the aggregator needs: its identity
// and where it sits in the category/pillar hierarchy.
type QuestionInfo struct {
	ID            string `json:"id"`
	CategoryID    string `json:"category_id"`
	CategoryLabel string `json:"category_label"`
	Pillar        string `json:"pillar"`
}

// ScoreResponse is one (question, score) answer within a period.
type ScoreResponse struct {
	QuestionID string `json:"question_id"`
	Score      int    `json:"score"`
}

// Axis is one {label, score} pair on a radar chart.
type Axis struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// CategoryAxis is the derived per-category aggregate every view consumes:
// one synthetic axis whose score is the category's unweighted mean.
type CategoryAxis struct {
	CategoryID    string `json:"category_id"`
	CategoryLabel string `json:"category_label"`
	Pillar        string `json:"pillar"`
	Sequence      int    `json:"sequence"`
	Axes          []Axis `json:"axes"`
}

// AverageScore returns the category's single synthetic axis score.
func (ca CategoryAxis) AverageScore() float64 {
	if len(ca.Axes) == 0 {
		return 0
	}
	return ca.Axes[0].Score
}

func mean(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	avg := float64(sum) / float64(len(scores))
	return math.Round(avg*100) / 100
}

type categoryAccumulator struct {
	label  string
	pillar string
	scores []int
}

// Aggregate computes one CategoryAxis per category that has at least one
// response. Questions without a response are skipped, not zero-filled;
// multiple scores per category (several questions, or duplicate responses for
// one question) combine into an unweighted arithmetic mean. The output is
// deterministic under any ordering of either input (sorted by pillar, label,
// id); callers re-sort by their declared category sequence before display.
func Aggregate(questions []QuestionInfo, responses []ScoreResponse) []CategoryAxis {
	scoresByQuestion := make(map[string][]int, len(responses))
	for _, r := range responses {
		scoresByQuestion[r.QuestionID] = append(scoresByQuestion[r.QuestionID], r.Score)
	}

	accumulators := make(map[string]*categoryAccumulator)
	for _, q := range questions {
		scores, ok := scoresByQuestion[q.ID]
		if !ok {
			continue
		}
		acc, ok := accumulators[q.CategoryID]
		if !ok {
			acc = &categoryAccumulator{label: q.CategoryLabel, pillar: q.Pillar}
			accumulators[q.CategoryID] = acc
		}
		acc.scores = append(acc.scores, scores...)
	}

	axes := make([]CategoryAxis, 0, len(accumulators))
	for categoryID, acc := range accumulators {
		axes = append(axes, CategoryAxis{
			CategoryID:    categoryID,
			CategoryLabel: acc.label,
			Pillar:        acc.pillar,
			Axes:          []Axis{{Label: acc.label, Score: mean(acc.scores)}},
		})
	}

	sort.Slice(axes, func(i, j int) bool {
		if axes[i].Pillar != axes[j].Pillar {
			return axes[i].Pillar < axes[j].Pillar
		}
		if axes[i].CategoryLabel != axes[j].CategoryLabel {
			return axes[i].CategoryLabel < axes[j].CategoryLabel
		}
		return axes[i].CategoryID < axes[j].CategoryID
	})
	return axes
}

package core

import (
	"github.com/threesixty-dev/threesixty/schema"
)

// CompetencyBreakdown computes the per-question aggregate across the whole
// collection: mean of the non-nil scores (0 if none answered) and the
// percentage of the scale maximum, one entry per rated question in survey
// order.
func CompetencyBreakdown(responses []*schema.Response) []schema.CompetencyScore {
	questions := schema.RatedQuestions()
	breakdown := make([]schema.CompetencyScore, 0, len(questions))
	for _, q := range questions {
		var scores []int
		for _, resp := range responses {
			if s := resp.Score(q.Key); s != nil {
				scores = append(scores, *s)
			}
		}
		mean := schema.Mean(scores)
		breakdown = append(breakdown, schema.CompetencyScore{
			Name:       q.Name,
			Score:      schema.Round2(mean),
			MaxScore:   schema.MaxScore,
			Percentage: schema.Round1(mean / schema.MaxScore * 100),
		})
	}
	return breakdown
}

// RelationshipDistribution counts responses per relationship label.
// Responses without a relationship are bucketed under "Unknown".
func RelationshipDistribution(responses []*schema.Response) map[string]int {
	distribution := make(map[string]int)
	for _, resp := range responses {
		label := schema.UnknownRelationship
		if resp.Relationship != nil && *resp.Relationship != "" {
			label = *resp.Relationship
		}
		distribution[label]++
	}
	return distribution
}

// ScoreDistribution builds a histogram over the fixed buckets 1..4,
// incrementing once for every in-range (response, question) score across the
// twelve rated question fields. A single response contributes up to twelve
// increments.
func ScoreDistribution(responses []*schema.Response) map[int]int {
	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0}
	for _, resp := range responses {
		for _, q := range schema.RatedQuestions() {
			if s := resp.Score(q.Key); s != nil && *s >= 1 && *s <= schema.MaxScore {
				distribution[*s]++
			}
		}
	}
	return distribution
}

// ExtractFeedbackThemes collects the three free-text feedback lists, one
// entry per response with a non-empty value, in collection order.
func ExtractFeedbackThemes(responses []*schema.Response) schema.FeedbackThemes {
	var themes schema.FeedbackThemes
	for _, resp := range responses {
		if v := resp.StopDoing; v != nil && *v != "" {
			themes.StopDoing = append(themes.StopDoing, *v)
		}
		if v := resp.StartDoing; v != nil && *v != "" {
			themes.StartDoing = append(themes.StartDoing, *v)
		}
		if v := resp.ContinueDoing; v != nil && *v != "" {
			themes.ContinueDoing = append(themes.ContinueDoing, *v)
		}
	}
	return themes
}

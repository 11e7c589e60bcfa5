package core

import (
	"sort"

	"github.com/threesixty-dev/threesixty/schema"
)

// CalculateManagerSummaries groups responses by exact manager name and
// computes the three category averages plus the overall score for each
// manager, sorted descending by overall score. Grouping preserves first-seen
// manager order and the sort is stable, so ties keep encounter order.
//
// Per category, the non-nil scores of the category's member questions are
// flattened across all of the manager's responses before averaging: a
// manager with 2 responses carries the same per-category weight as one with
// 200, diluted only by how many individual questions were answered.
func CalculateManagerSummaries(responses []*schema.Response) []schema.ManagerSummary {
	groups := make(map[string][]*schema.Response)
	var order []string
	for _, resp := range responses {
		if _, ok := groups[resp.ManagerName]; !ok {
			order = append(order, resp.ManagerName)
		}
		groups[resp.ManagerName] = append(groups[resp.ManagerName], resp)
	}

	summaries := make([]schema.ManagerSummary, 0, len(order))
	for _, name := range order {
		managerResponses := groups[name]

		avgTeamLeadership := categoryMean(managerResponses, schema.TeamLeadership)
		avgResultsOrientation := categoryMean(managerResponses, schema.ResultsOrientation)
		avgCulturalFit := culturalFitMean(managerResponses)
		overall := (avgTeamLeadership + avgResultsOrientation + avgCulturalFit) / 3

		summaries = append(summaries, schema.ManagerSummary{
			ManagerName:           name,
			TotalResponses:        len(managerResponses),
			AvgTeamLeadership:     schema.Round2(avgTeamLeadership),
			AvgResultsOrientation: schema.Round2(avgResultsOrientation),
			AvgCulturalFit:        schema.Round2(avgCulturalFit),
			OverallScore:          schema.Round2(overall),
			Responses:             managerResponses,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].OverallScore > summaries[j].OverallScore
	})
	return summaries
}

// categoryMean returns the flat mean of all non-nil normal-scale scores for
// the category's questions across the responses, or 0 when none answered.
func categoryMean(responses []*schema.Response, cat schema.Category) float64 {
	return schema.Mean(collectScores(responses, schema.CategoryQuestions(cat)))
}

// culturalFitMean averages the flat mean of the normal-scale cultural-fit
// questions with the reversed final-say term. The reversed term is
// 5 - mean(final_say) so that a raw 1 ("manager always has the final say")
// scores as 4 on the shared scale. When no final-say scores exist the
// reversed term is 0 and halves the category average; when no normal-scale
// scores exist the whole category is 0 regardless of final-say answers.
func culturalFitMean(responses []*schema.Response) float64 {
	flat := collectScores(responses, schema.CategoryQuestions(schema.CulturalFit))
	reversed := collectScores(responses, schema.ReversedQuestions(schema.CulturalFit))

	reversedTerm := 0.0
	if len(reversed) > 0 {
		reversedTerm = float64(schema.MaxScore+1) - schema.Mean(reversed)
	}
	if len(flat) == 0 {
		if len(reversed) == 0 {
			return 0
		}
		return reversedTerm / 2
	}
	return (schema.Mean(flat) + reversedTerm) / 2
}

// collectScores flattens the non-nil scores of the given questions across
// all responses, in response-then-question order.
func collectScores(responses []*schema.Response, questions []schema.Question) []int {
	var scores []int
	for _, resp := range responses {
		for _, q := range questions {
			if s := resp.Score(q.Key); s != nil {
				scores = append(scores, *s)
			}
		}
	}
	return scores
}

// ComputeOverallStats derives the headline numbers shown above the
// leaderboard and embedded in the assistant digest. The average is taken
// over positive overall scores only, and the top performer falls back to
// "N/A" for an empty collection.
func ComputeOverallStats(responses []*schema.Response, summaries []schema.ManagerSummary) schema.OverallStats {
	stats := schema.OverallStats{
		TotalResponses: len(responses),
		TotalManagers:  len(summaries),
		TopPerformer:   "N/A",
	}

	sum, count := 0.0, 0
	for _, s := range summaries {
		if s.OverallScore > 0 {
			sum += s.OverallScore
			count++
		}
	}
	if count > 0 {
		stats.AvgOverallScore = schema.Round2(sum / float64(count))
	}
	if len(summaries) > 0 {
		stats.TopPerformer = summaries[0].ManagerName
		stats.TopScore = summaries[0].OverallScore
	}
	return stats
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threesixty-dev/threesixty/schema"
)

func makeResp(manager string, mutate func(*schema.Response)) *schema.Response {
	resp := &schema.Response{ManagerName: manager}
	if mutate != nil {
		mutate(resp)
	}
	return resp
}

func TestCalculateManagerSummariesFlattensScores(t *testing.T) {
	// Team leadership scores [4] and [2, 2] flatten to mean 8/3 = 2.67.
	responses := []*schema.Response{
		makeResp("Alice Manager", func(r *schema.Response) {
			r.MentorsCoaches = intp(4)
		}),
		makeResp("Alice Manager", func(r *schema.Response) {
			r.EffectiveDirection = intp(2)
			r.EstablishesRapport = intp(2)
		}),
	}

	summaries := CalculateManagerSummaries(responses)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "Alice Manager", s.ManagerName)
	assert.Equal(t, 2, s.TotalResponses)
	assert.InDelta(t, 2.67, s.AvgTeamLeadership, 0.001)
	assert.Zero(t, s.AvgResultsOrientation)
	assert.Zero(t, s.AvgCulturalFit)
	assert.InDelta(t, 0.89, s.OverallScore, 0.001, "Overall is the mean of the three categories")
	assert.Len(t, s.Responses, 2)
}

func TestCulturalFitReversesFinalSay(t *testing.T) {
	// Flat cultural-fit mean 3, final say raw 1 reverses to 4: (3+4)/2 = 3.5.
	responses := []*schema.Response{
		makeResp("Alice Manager", func(r *schema.Response) {
			r.PatientHumble = intp(3)
			r.FlatCollaborative = intp(3)
			r.FinalSay = intp(1)
		}),
	}

	summaries := CalculateManagerSummaries(responses)
	require.Len(t, summaries, 1)
	assert.InDelta(t, 3.5, summaries[0].AvgCulturalFit, 0.001)
}

func TestCulturalFitFinalSayOnly(t *testing.T) {
	// With no normal-scale answers the reversed term is halved on its own:
	// raw 1 reverses to 4, category average 2.00.
	responses := []*schema.Response{
		makeResp("Alice Manager", func(r *schema.Response) {
			r.MentorsCoaches = intp(4) // keeps the response itself meaningful
			r.FinalSay = intp(1)
		}),
	}

	summaries := CalculateManagerSummaries(responses)
	require.Len(t, summaries, 1)
	assert.InDelta(t, 2.0, summaries[0].AvgCulturalFit, 0.001)
}

func TestCulturalFitMissingFinalSayHalvesAverage(t *testing.T) {
	// Flat mean 4 with no final-say answer: (4+0)/2 = 2.
	responses := []*schema.Response{
		makeResp("Alice Manager", func(r *schema.Response) {
			r.PatientHumble = intp(4)
		}),
	}

	summaries := CalculateManagerSummaries(responses)
	require.Len(t, summaries, 1)
	assert.InDelta(t, 2.0, summaries[0].AvgCulturalFit, 0.001)
}

func TestCulturalFitEmptyCategory(t *testing.T) {
	responses := []*schema.Response{
		makeResp("Alice Manager", func(r *schema.Response) {
			r.MentorsCoaches = intp(3)
		}),
	}

	summaries := CalculateManagerSummaries(responses)
	require.Len(t, summaries, 1)
	assert.Zero(t, summaries[0].AvgCulturalFit)
}

func TestSummariesSortedByOverallScore(t *testing.T) {
	responses := []*schema.Response{
		makeResp("Low Scorer", func(r *schema.Response) {
			r.MentorsCoaches = intp(1)
			r.SenseOfUrgency = intp(1)
		}),
		makeResp("High Scorer", func(r *schema.Response) {
			r.MentorsCoaches = intp(4)
			r.SenseOfUrgency = intp(4)
		}),
		makeResp("Mid Scorer", func(r *schema.Response) {
			r.MentorsCoaches = intp(2)
			r.SenseOfUrgency = intp(3)
		}),
	}

	summaries := CalculateManagerSummaries(responses)
	require.Len(t, summaries, 3)
	assert.Equal(t, "High Scorer", summaries[0].ManagerName)
	assert.Equal(t, "Mid Scorer", summaries[1].ManagerName)
	assert.Equal(t, "Low Scorer", summaries[2].ManagerName)
}

func TestSummariesTiesKeepEncounterOrder(t *testing.T) {
	responses := []*schema.Response{
		makeResp("First Seen", func(r *schema.Response) { r.MentorsCoaches = intp(3) }),
		makeResp("Second Seen", func(r *schema.Response) { r.MentorsCoaches = intp(3) }),
	}

	summaries := CalculateManagerSummaries(responses)
	require.Len(t, summaries, 2)
	assert.Equal(t, "First Seen", summaries[0].ManagerName)
	assert.Equal(t, "Second Seen", summaries[1].ManagerName)
}

func TestSummariesIdempotent(t *testing.T) {
	responses := []*schema.Response{
		makeResp("Alice Manager", func(r *schema.Response) {
			r.MentorsCoaches = intp(4)
			r.SenseOfUrgency = intp(2)
			r.PatientHumble = intp(3)
			r.FinalSay = intp(2)
		}),
	}

	first := CalculateManagerSummaries(responses)
	second := CalculateManagerSummaries(responses)
	assert.Equal(t, first, second)
}

func TestSummaryScoresWithinBounds(t *testing.T) {
	responses := []*schema.Response{
		makeResp("Alice Manager", func(r *schema.Response) {
			for _, q := range schema.Questions {
				r.SetScore(q.Key, intp(4))
			}
			r.FinalSay = intp(1) // best possible on the reversed scale
		}),
	}

	summaries := CalculateManagerSummaries(responses)
	require.Len(t, summaries, 1)
	s := summaries[0]
	for _, v := range []float64{s.AvgTeamLeadership, s.AvgResultsOrientation, s.AvgCulturalFit, s.OverallScore} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, float64(schema.MaxScore))
	}
}

func TestComputeOverallStats(t *testing.T) {
	responses := []*schema.Response{
		makeResp("Alice Manager", func(r *schema.Response) { r.MentorsCoaches = intp(4) }),
		makeResp("Bob Manager", nil), // no scores at all
	}
	summaries := []schema.ManagerSummary{
		{ManagerName: "Alice Manager", OverallScore: 3.0},
		{ManagerName: "Bob Manager", OverallScore: 0},
	}

	stats := ComputeOverallStats(responses, summaries)
	assert.Equal(t, 2, stats.TotalResponses)
	assert.Equal(t, 2, stats.TotalManagers)
	assert.InDelta(t, 3.0, stats.AvgOverallScore, 0.001, "Zero scores are excluded from the average")
	assert.Equal(t, "Alice Manager", stats.TopPerformer)
	assert.InDelta(t, 3.0, stats.TopScore, 0.001)
}

func TestComputeOverallStatsEmpty(t *testing.T) {
	stats := ComputeOverallStats(nil, nil)
	assert.Zero(t, stats.TotalResponses)
	assert.Zero(t, stats.AvgOverallScore)
	assert.Equal(t, "N/A", stats.TopPerformer)
}

// BenchmarkCalculateManagerSummaries benchmarks aggregation over a mid-sized
// collection.
func BenchmarkCalculateManagerSummaries(b *testing.B) {
	managers := []string{"Alice", "Bob", "Carol", "Dave", "Erin"}
	responses := make([]*schema.Response, 0, 500)
	for i := range 500 {
		manager := managers[i%len(managers)]
		score := i%schema.MaxScore + 1
		responses = append(responses, makeResp(manager, func(r *schema.Response) {
			r.MentorsCoaches = intp(score)
			r.SenseOfUrgency = intp(score)
			r.PatientHumble = intp(score)
			r.FinalSay = intp(5 - score)
		}))
	}

	for b.Loop() {
		CalculateManagerSummaries(responses)
	}
}

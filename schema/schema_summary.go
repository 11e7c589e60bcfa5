package schema

import "time"

// ManagerSummary holds the aggregated scores for one manager across all of
// their response records. Category averages and the overall score are
// rounded to 2 decimal places.
type ManagerSummary struct {
	ManagerName           string      `json:"manager_name"`
	TotalResponses        int         `json:"total_responses"`
	AvgTeamLeadership     float64     `json:"avg_team_leadership"`
	AvgResultsOrientation float64     `json:"avg_results_orientation"`
	AvgCulturalFit        float64     `json:"avg_cultural_fit"`
	OverallScore          float64     `json:"overall_score"`
	Responses             []*Response `json:"-"` // Underlying records, shared by reference
}

// CategoryAverage returns the summary's average for the given category.
func (s *ManagerSummary) CategoryAverage(cat Category) float64 {
	switch cat {
	case TeamLeadership:
		return s.AvgTeamLeadership
	case ResultsOrientation:
		return s.AvgResultsOrientation
	case CulturalFit:
		return s.AvgCulturalFit
	default:
		return 0
	}
}

// CompetencyScore is the aggregate for one rated question across a response
// collection: mean score (0 if nobody answered), the scale maximum, and the
// percentage of maximum rounded to 1 decimal.
type CompetencyScore struct {
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	MaxScore   int     `json:"max_score"`
	Percentage float64 `json:"percentage"`
}

// FeedbackThemes holds the free-text feedback lists, one entry per response
// that filled in the field, in response-collection order.
type FeedbackThemes struct {
	StopDoing     []string `json:"stop_doing"`
	StartDoing    []string `json:"start_doing"`
	ContinueDoing []string `json:"continue_doing"`
}

// OverallStats summarizes a filtered response collection for headline display
// and the assistant digest.
type OverallStats struct {
	TotalResponses  int     `json:"total_responses"`
	TotalManagers   int     `json:"total_managers"`
	AvgOverallScore float64 `json:"avg_overall_score"`
	TopPerformer    string  `json:"top_performer"` // "N/A" when the collection is empty
	TopScore        float64 `json:"top_score"`
}

// FilterState is the inclusion filter applied to the full response
// collection. Empty sets mean no restriction. ScoreRange is carried for
// interface compatibility but is not applied by the filter engine.
type FilterState struct {
	Managers      []string
	Relationships []string
	ScoreRange    [2]float64
}

// IsZero reports whether the filter imposes no restriction.
func (f FilterState) IsZero() bool {
	return len(f.Managers) == 0 && len(f.Relationships) == 0
}

// CacheStatus holds status information about the response cache store.
type CacheStatus struct {
	Backend         DatabaseBackend
	Connected       bool
	TotalEntries    int64
	LastEntryTime   time.Time
	OldestEntryTime time.Time
	TableSizeBytes  int64
}

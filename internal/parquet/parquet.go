// Package parquet provides data structures and functions for exporting survey
// responses and manager summaries to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/threesixty-dev/threesixty/schema"
)

// ResponseRow is the flattened Parquet shape of one survey response.
type ResponseRow struct {
	// ID is the stable sheet-derived response identifier
	ID string `parquet:"id,snappy"`

	// ResponseNumber is the global 1-based sequence across all sheets
	ResponseNumber int32 `parquet:"response_number,snappy"`

	// Timestamp is when the response was submitted (nullable)
	Timestamp *time.Time `parquet:"timestamp,optional,snappy"`

	// ManagerName is the manager being reviewed
	ManagerName string `parquet:"manager_name,snappy"`

	// Relationship is the reviewer's relationship to the manager (nullable)
	Relationship *string `parquet:"relationship,optional,snappy"`

	MentorsCoaches      *int32 `parquet:"mentors_coaches_score,optional,snappy"`
	EffectiveDirection  *int32 `parquet:"effective_direction_score,optional,snappy"`
	EstablishesRapport  *int32 `parquet:"establishes_rapport_score,optional,snappy"`
	SetsClearGoals      *int32 `parquet:"sets_clear_goals_score,optional,snappy"`
	OpenToIdeas         *int32 `parquet:"open_to_ideas_score,optional,snappy"`
	SenseOfUrgency      *int32 `parquet:"sense_of_urgency_score,optional,snappy"`
	AnalyzesChange      *int32 `parquet:"analyzes_change_score,optional,snappy"`
	ConfidenceIntegrity *int32 `parquet:"confidence_integrity_score,optional,snappy"`
	PatientHumble       *int32 `parquet:"patient_humble_score,optional,snappy"`
	FlatCollaborative   *int32 `parquet:"flat_collaborative_score,optional,snappy"`
	Approachable        *int32 `parquet:"approachable_score,optional,snappy"`
	EmpowersTeam        *int32 `parquet:"empowers_team_score,optional,snappy"`
	FinalSay            *int32 `parquet:"final_say_score,optional,snappy"`

	TeamLeadershipComments     *string `parquet:"team_leadership_comments,optional,snappy"`
	ResultsOrientationComments *string `parquet:"results_orientation_comments,optional,snappy"`
	CulturalFitComments        *string `parquet:"cultural_fit_comments,optional,snappy"`
	StopDoing                  *string `parquet:"stop_doing,optional,snappy"`
	StartDoing                 *string `parquet:"start_doing,optional,snappy"`
	ContinueDoing              *string `parquet:"continue_doing,optional,snappy"`
}

// ManagerSummaryRow is the Parquet shape of one aggregated manager summary.
type ManagerSummaryRow struct {
	// Rank is the 1-based position in the overall-score ordering
	Rank int32 `parquet:"rank,snappy"`

	ManagerName           string  `parquet:"manager_name,snappy"`
	TotalResponses        int32   `parquet:"total_responses,snappy"`
	AvgTeamLeadership     float64 `parquet:"avg_team_leadership,snappy"`
	AvgResultsOrientation float64 `parquet:"avg_results_orientation,snappy"`
	AvgCulturalFit        float64 `parquet:"avg_cultural_fit,snappy"`
	OverallScore          float64 `parquet:"overall_score,snappy"`
}

// NewResponseRow flattens a survey response into its Parquet row.
func NewResponseRow(r *schema.Response) ResponseRow {
	return ResponseRow{
		ID:             r.ID,
		ResponseNumber: int32(r.ResponseNumber),
		Timestamp:      r.Timestamp,
		ManagerName:    r.ManagerName,
		Relationship:   r.Relationship,

		MentorsCoaches:      scoreColumn(r, schema.QMentorsCoaches),
		EffectiveDirection:  scoreColumn(r, schema.QEffectiveDirection),
		EstablishesRapport:  scoreColumn(r, schema.QEstablishesRapport),
		SetsClearGoals:      scoreColumn(r, schema.QSetsClearGoals),
		OpenToIdeas:         scoreColumn(r, schema.QOpenToIdeas),
		SenseOfUrgency:      scoreColumn(r, schema.QSenseOfUrgency),
		AnalyzesChange:      scoreColumn(r, schema.QAnalyzesChange),
		ConfidenceIntegrity: scoreColumn(r, schema.QConfidenceIntegrity),
		PatientHumble:       scoreColumn(r, schema.QPatientHumble),
		FlatCollaborative:   scoreColumn(r, schema.QFlatCollaborative),
		Approachable:        scoreColumn(r, schema.QApproachable),
		EmpowersTeam:        scoreColumn(r, schema.QEmpowersTeam),
		FinalSay:            scoreColumn(r, schema.QFinalSay),

		TeamLeadershipComments:     r.Text(schema.TTeamLeadershipComments),
		ResultsOrientationComments: r.Text(schema.TResultsOrientationComments),
		CulturalFitComments:        r.Text(schema.TCulturalFitComments),
		StopDoing:                  r.Text(schema.TStopDoing),
		StartDoing:                 r.Text(schema.TStartDoing),
		ContinueDoing:              r.Text(schema.TContinueDoing),
	}
}

// NewManagerSummaryRows converts ranked summaries into their Parquet rows.
func NewManagerSummaryRows(summaries []schema.ManagerSummary) []ManagerSummaryRow {
	rows := make([]ManagerSummaryRow, len(summaries))
	for i, s := range summaries {
		rows[i] = ManagerSummaryRow{
			Rank:                  int32(i + 1),
			ManagerName:           s.ManagerName,
			TotalResponses:        int32(s.TotalResponses),
			AvgTeamLeadership:     s.AvgTeamLeadership,
			AvgResultsOrientation: s.AvgResultsOrientation,
			AvgCulturalFit:        s.AvgCulturalFit,
			OverallScore:          s.OverallScore,
		}
	}
	return rows
}

// NewResponseRows converts responses into their Parquet rows.
func NewResponseRows(responses []*schema.Response) []ResponseRow {
	rows := make([]ResponseRow, len(responses))
	for i, r := range responses {
		rows[i] = NewResponseRow(r)
	}
	return rows
}

func scoreColumn(r *schema.Response, key schema.QuestionKey) *int32 {
	score := r.Score(key)
	if score == nil {
		return nil
	}
	v := int32(*score)
	return &v
}

// WriteResponsesParquet writes a slice of ResponseRow structs to a Parquet file.
func WriteResponsesParquet(data []ResponseRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the ResponseRow struct tags
	writer := parquet.NewGenericWriter[ResponseRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteSummariesParquet writes a slice of ManagerSummaryRow structs to a Parquet file.
func WriteSummariesParquet(data []ManagerSummaryRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the ManagerSummaryRow struct tags
	writer := parquet.NewGenericWriter[ManagerSummaryRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

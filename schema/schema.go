// Package schema has configs, models and survey definitions for all parts of threesixty.
package schema

import "time"

// Response represents one reviewer's submitted ratings and comments about one manager.
// Score fields are nil when the reviewer skipped the question or the cell could not
// be parsed; text fields are nil when empty.
type Response struct {
	ID             string     `json:"id"`                        // Stable identifier derived from sheet name and row index
	Timestamp      *time.Time `json:"timestamp"`                 // Submission time from the workbook, if parseable
	ResponseNumber int        `json:"response_number"`           // Global sequence number assigned at ingestion, starting at 1
	ManagerName    string     `json:"manager_name"`              // Trimmed, non-empty manager name
	Relationship   *string    `json:"relationship"`              // Free-text reviewer/manager relationship label

	MentorsCoaches      *int `json:"mentors_coaches_score"`
	EffectiveDirection  *int `json:"effective_direction_score"`
	EstablishesRapport  *int `json:"establishes_rapport_score"`
	SetsClearGoals      *int `json:"sets_clear_goals_score"`
	OpenToIdeas         *int `json:"open_to_ideas_score"`
	SenseOfUrgency      *int `json:"sense_of_urgency_score"`
	AnalyzesChange      *int `json:"analyzes_change_score"`
	ConfidenceIntegrity *int `json:"confidence_integrity_score"`
	PatientHumble       *int `json:"patient_humble_score"`
	FlatCollaborative   *int `json:"flat_collaborative_score"`
	Approachable        *int `json:"approachable_score"`
	EmpowersTeam        *int `json:"empowers_team_score"`

	// FinalSay is on a reversed scale: a raw 1 means the manager always has the
	// final say, which counts as a good outcome once reversed (see Questions).
	FinalSay *int `json:"final_say_score"`

	TeamLeadershipComments     *string `json:"team_leadership_comments"`
	ResultsOrientationComments *string `json:"results_orientation_comments"`
	CulturalFitComments        *string `json:"cultural_fit_comments"`
	StopDoing                  *string `json:"stop_doing"`
	StartDoing                 *string `json:"start_doing"`
	ContinueDoing              *string `json:"continue_doing"`

	CreatedAt time.Time `json:"created_at"` // When this record was ingested
}

// Score returns the rating for the given question key, or nil if unanswered.
func (r *Response) Score(key QuestionKey) *int {
	switch key {
	case QMentorsCoaches:
		return r.MentorsCoaches
	case QEffectiveDirection:
		return r.EffectiveDirection
	case QEstablishesRapport:
		return r.EstablishesRapport
	case QSetsClearGoals:
		return r.SetsClearGoals
	case QOpenToIdeas:
		return r.OpenToIdeas
	case QSenseOfUrgency:
		return r.SenseOfUrgency
	case QAnalyzesChange:
		return r.AnalyzesChange
	case QConfidenceIntegrity:
		return r.ConfidenceIntegrity
	case QPatientHumble:
		return r.PatientHumble
	case QFlatCollaborative:
		return r.FlatCollaborative
	case QApproachable:
		return r.Approachable
	case QEmpowersTeam:
		return r.EmpowersTeam
	case QFinalSay:
		return r.FinalSay
	default:
		return nil
	}
}

// SetScore assigns the rating for the given question key.
func (r *Response) SetScore(key QuestionKey, score *int) {
	switch key {
	case QMentorsCoaches:
		r.MentorsCoaches = score
	case QEffectiveDirection:
		r.EffectiveDirection = score
	case QEstablishesRapport:
		r.EstablishesRapport = score
	case QSetsClearGoals:
		r.SetsClearGoals = score
	case QOpenToIdeas:
		r.OpenToIdeas = score
	case QSenseOfUrgency:
		r.SenseOfUrgency = score
	case QAnalyzesChange:
		r.AnalyzesChange = score
	case QConfidenceIntegrity:
		r.ConfidenceIntegrity = score
	case QPatientHumble:
		r.PatientHumble = score
	case QFlatCollaborative:
		r.FlatCollaborative = score
	case QApproachable:
		r.Approachable = score
	case QEmpowersTeam:
		r.EmpowersTeam = score
	case QFinalSay:
		r.FinalSay = score
	}
}

// Text returns the free-text value for the given field key, or nil if empty.
func (r *Response) Text(key TextKey) *string {
	switch key {
	case TTeamLeadershipComments:
		return r.TeamLeadershipComments
	case TResultsOrientationComments:
		return r.ResultsOrientationComments
	case TCulturalFitComments:
		return r.CulturalFitComments
	case TStopDoing:
		return r.StopDoing
	case TStartDoing:
		return r.StartDoing
	case TContinueDoing:
		return r.ContinueDoing
	default:
		return nil
	}
}

// SetText assigns the free-text value for the given field key.
func (r *Response) SetText(key TextKey, value *string) {
	switch key {
	case TTeamLeadershipComments:
		r.TeamLeadershipComments = value
	case TResultsOrientationComments:
		r.ResultsOrientationComments = value
	case TCulturalFitComments:
		r.CulturalFitComments = value
	case TStopDoing:
		r.StopDoing = value
	case TStartDoing:
		r.StartDoing = value
	case TContinueDoing:
		r.ContinueDoing = value
	}
}

// Sheet is one worksheet of an input workbook: an ordered sequence of rows,
// each an ordered sequence of raw cell values.
type Sheet struct {
	Name string
	Rows [][]string
}

// Workbook is the parsed shape of an input spreadsheet, sheets in file order.
type Workbook struct {
	Sheets []Sheet
}

package schema

// QuestionKey identifies one rated survey question.
type QuestionKey string

// All rated questions on the survey form.
const (
	QMentorsCoaches      QuestionKey = "mentors_coaches"
	QEffectiveDirection  QuestionKey = "effective_direction"
	QEstablishesRapport  QuestionKey = "establishes_rapport"
	QSetsClearGoals      QuestionKey = "sets_clear_goals"
	QOpenToIdeas         QuestionKey = "open_to_ideas"
	QSenseOfUrgency      QuestionKey = "sense_of_urgency"
	QAnalyzesChange      QuestionKey = "analyzes_change"
	QConfidenceIntegrity QuestionKey = "confidence_integrity"
	QPatientHumble       QuestionKey = "patient_humble"
	QFlatCollaborative   QuestionKey = "flat_collaborative"
	QApproachable        QuestionKey = "approachable"
	QEmpowersTeam        QuestionKey = "empowers_team"
	QFinalSay            QuestionKey = "final_say"
)

// TextKey identifies one free-text field on the survey form.
type TextKey string

// All free-text fields on the survey form.
const (
	TTeamLeadershipComments     TextKey = "team_leadership_comments"
	TResultsOrientationComments TextKey = "results_orientation_comments"
	TCulturalFitComments        TextKey = "cultural_fit_comments"
	TStopDoing                  TextKey = "stop_doing"
	TStartDoing                 TextKey = "start_doing"
	TContinueDoing              TextKey = "continue_doing"
)

// Question describes one rated survey question: its display name, the
// competency category it belongs to, the zero-based workbook column it is
// read from, and whether its scale is reversed (lower raw value = better).
type Question struct {
	Key      QuestionKey
	Name     string
	Category Category
	Column   int
	Reversed bool
}

// TextColumn maps a free-text survey field to its workbook column.
type TextColumn struct {
	Key    TextKey
	Column int
}

// Fixed column positions shared by every sheet of the workbook.
// The first row of each sheet is a header and is never extracted.
const (
	TimestampColumn    = 0
	ManagerColumn      = 2
	RelationshipColumn = 3

	// MinRowCells is the smallest cell count a row can have and still be
	// considered for extraction.
	MinRowCells = 3
)

// Questions is the declarative survey layout: category membership, column
// mapping and scale direction live here so the aggregation and extraction
// logic stay free of hardcoded indices.
var Questions = []Question{
	{QMentorsCoaches, "Mentoring & Coaching", TeamLeadership, 4, false},
	{QEffectiveDirection, "Effective Direction", TeamLeadership, 5, false},
	{QEstablishesRapport, "Establishes Rapport", TeamLeadership, 6, false},
	{QSetsClearGoals, "Goal Setting", TeamLeadership, 7, false},
	{QOpenToIdeas, "Open to Ideas", TeamLeadership, 8, false},
	{QSenseOfUrgency, "Sense of Urgency", ResultsOrientation, 10, false},
	{QAnalyzesChange, "Change Analysis", ResultsOrientation, 11, false},
	{QConfidenceIntegrity, "Confidence & Integrity", ResultsOrientation, 12, false},
	{QPatientHumble, "Patience & Humility", CulturalFit, 14, false},
	{QFlatCollaborative, "Collaborative Culture", CulturalFit, 15, false},
	{QApproachable, "Approachability", CulturalFit, 16, false},
	{QEmpowersTeam, "Team Empowerment", CulturalFit, 17, false},
	{QFinalSay, "Final Say", CulturalFit, 18, true},
}

// TextColumns maps the six free-text fields to their workbook columns.
var TextColumns = []TextColumn{
	{TTeamLeadershipComments, 9},
	{TResultsOrientationComments, 13},
	{TCulturalFitComments, 19},
	{TStopDoing, 20},
	{TStartDoing, 21},
	{TContinueDoing, 22},
}

// AnchorQuestions decide whether a row is a genuine survey response: a row
// that answered none of these is treated as noise (stray header/footer rows)
// and discarded.
var AnchorQuestions = []QuestionKey{
	QMentorsCoaches,
	QEffectiveDirection,
	QSenseOfUrgency,
	QPatientHumble,
}

// RatingScale maps the textual rating encodings found in the workbook to
// numeric scores. "N/A" maps to 0, which is outside the valid 1-4 range and
// is excluded wherever scores are range-checked.
var RatingScale = map[string]int{
	"Always":     4,
	"Most times": 3,
	"Sometimes":  2,
	"Never":      1,
	"N/A":        0,
	"4":          4,
	"3":          3,
	"2":          2,
	"1":          1,
}

// RatedQuestions returns the questions on the normal 1-4 scale, i.e. the
// twelve questions that feed the competency breakdown and score histogram.
func RatedQuestions() []Question {
	out := make([]Question, 0, len(Questions)-1)
	for _, q := range Questions {
		if !q.Reversed {
			out = append(out, q)
		}
	}
	return out
}

// CategoryQuestions returns the normal-scale questions belonging to the
// given category, in survey order.
func CategoryQuestions(cat Category) []Question {
	var out []Question
	for _, q := range Questions {
		if q.Category == cat && !q.Reversed {
			out = append(out, q)
		}
	}
	return out
}

// ReversedQuestions returns the reversed-scale questions belonging to the
// given category, in survey order.
func ReversedQuestions(cat Category) []Question {
	var out []Question
	for _, q := range Questions {
		if q.Category == cat && q.Reversed {
			out = append(out, q)
		}
	}
	return out
}

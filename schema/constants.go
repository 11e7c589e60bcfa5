package schema

// Custom string types for type safety.
type (
	// Category represents a competency category grouping related questions.
	Category string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// The three competency categories.
const (
	TeamLeadership     Category = "team_leadership"
	ResultsOrientation Category = "results_orientation"
	CulturalFit        Category = "cultural_fit"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// MaxScore is the top of the rating scale for every question.
const MaxScore = 4

// AllCategories lists the competency categories in display order.
var AllCategories = []Category{TeamLeadership, ResultsOrientation, CulturalFit}

// CategoryNames maps categories to their display names.
var CategoryNames = map[Category]string{
	TeamLeadership:     "Team Leadership",
	ResultsOrientation: "Results Orientation",
	CulturalFit:        "Cultural Fit",
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// UnknownRelationship is the bucket label for responses without a
// relationship value.
const UnknownRelationship = "Unknown"

package core

import (
	"fmt"
	"strings"

	"github.com/threesixty-dev/threesixty/schema"
)

// BuildDigest renders a plain-text summary of the aggregate outputs for
// consumption by AI assistants. It is a complete, accurate digest of the
// aggregated data, never of raw records.
func BuildDigest(summaries []schema.ManagerSummary, stats schema.OverallStats, competencies []schema.CompetencyScore) string {
	if len(summaries) == 0 {
		return "No survey responses available."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total Responses: %d\n", stats.TotalResponses)
	fmt.Fprintf(&b, "Total Managers: %d\n", stats.TotalManagers)
	fmt.Fprintf(&b, "Average Score: %.2f/%d.0\n", stats.AvgOverallScore, schema.MaxScore)

	b.WriteString("\nTop 5 Managers:\n")
	for i, s := range summaries {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&b, "%d. %s: %.2f (%d reviews)\n", i+1, s.ManagerName, s.OverallScore, s.TotalResponses)
	}

	b.WriteString("\nLowest 3 Performers:\n")
	start := len(summaries) - 3
	if start < 0 {
		start = 0
	}
	for i := len(summaries) - 1; i >= start; i-- {
		fmt.Fprintf(&b, "- %s: %.2f\n", summaries[i].ManagerName, summaries[i].OverallScore)
	}

	b.WriteString("\nCompetency Averages:\n")
	for _, c := range competencies {
		fmt.Fprintf(&b, "- %s: %.2f/%d.0\n", c.Name, c.Score, schema.MaxScore)
	}
	return b.String()
}

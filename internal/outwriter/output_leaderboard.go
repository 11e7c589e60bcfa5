package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/threesixty-dev/threesixty/internal/contract"
	"github.com/threesixty-dev/threesixty/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteLeaderboard outputs the ranked manager summaries, dispatching based on
// the output format configured.
func WriteLeaderboard(summaries []schema.ManagerSummary, stats schema.OverallStats, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLeaderboardJSON(w, summaries, stats)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeLeaderboardCSV(csvWriter, summaries, fmtFloat, intFmt)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLeaderboardTable(w, summaries, stats, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table")
	}
}

// writeLeaderboardTable generates and writes the human-readable table.
func writeLeaderboardTable(w io.Writer, summaries []schema.ManagerSummary, stats schema.OverallStats, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Manager", "Reviews", "Leadership", "Results", "Culture", "Overall", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for i, s := range summaries {
		label := contract.GetPlainLabel(s.OverallScore)
		if cfg.UseColors {
			label = contract.GetColorLabel(s.OverallScore)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateText(s.ManagerName, nameWidth),
			fmt.Sprintf(intFmt, s.TotalResponses),
			fmtFloat(s.AvgTeamLeadership),
			fmtFloat(s.AvgResultsOrientation),
			fmtFloat(s.AvgCulturalFit),
			fmtFloat(s.OverallScore),
			label,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing %d managers over %d responses (avg score: %s, top: %s)\n",
		len(summaries), stats.TotalResponses, fmtFloat(stats.AvgOverallScore), stats.TopPerformer); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Aggregation completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeLeaderboardCSV writes the ranked summaries in CSV format.
func writeLeaderboardCSV(w *csv.Writer, summaries []schema.ManagerSummary, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"manager",
		"total_responses",
		"avg_team_leadership",
		"avg_results_orientation",
		"avg_cultural_fit",
		"overall_score",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, s := range summaries {
		rec := []string{
			strconv.Itoa(i + 1),
			s.ManagerName,
			fmt.Sprintf(intFmt, s.TotalResponses),
			fmtFloat(s.AvgTeamLeadership),
			fmtFloat(s.AvgResultsOrientation),
			fmtFloat(s.AvgCulturalFit),
			fmtFloat(s.OverallScore),
			contract.GetPlainLabel(s.OverallScore),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeLeaderboardJSON writes the ranked summaries in JSON format.
func writeLeaderboardJSON(w io.Writer, summaries []schema.ManagerSummary, stats schema.OverallStats) error {
	type JSONManagerSummary struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.ManagerSummary
	}
	type JSONLeaderboard struct {
		Stats    schema.OverallStats  `json:"stats"`
		Managers []JSONManagerSummary `json:"managers"`
	}

	output := JSONLeaderboard{Stats: stats, Managers: make([]JSONManagerSummary, len(summaries))}
	for i, s := range summaries {
		output.Managers[i] = JSONManagerSummary{
			Rank:           i + 1,
			Label:          contract.GetPlainLabel(s.OverallScore),
			ManagerSummary: s,
		}
	}
	return writeJSON(w, output)
}

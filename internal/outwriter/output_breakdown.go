package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/threesixty-dev/threesixty/internal/contract"
	"github.com/threesixty-dev/threesixty/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteCompetencies outputs the per-question competency breakdown.
func WriteCompetencies(competencies []schema.CompetencyScore, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, competencies)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			if err := csvWriter.Write([]string{"competency", "score", "max_score", "percentage"}); err != nil {
				return err
			}
			for _, c := range competencies {
				rec := []string{
					c.Name,
					fmtFloat(c.Score),
					strconv.Itoa(c.MaxScore),
					fmt.Sprintf("%.1f", c.Percentage),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCompetenciesTable(w, competencies, fmtFloat)
		}, "Wrote table")
	}
}

func writeCompetenciesTable(w io.Writer, competencies []schema.CompetencyScore, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Competency", "Score", "Max", "Pct"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, c := range competencies {
		data = append(data, []string{
			c.Name,
			fmtFloat(c.Score),
			strconv.Itoa(c.MaxScore),
			fmt.Sprintf("%.1f%%", c.Percentage),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// WriteRelationships outputs the relationship-type distribution, largest
// bucket first with ties broken by label for stable output.
func WriteRelationships(distribution map[string]int, total int, cfg *contract.Config) error {
	labels := make([]string, 0, len(distribution))
	for label := range distribution {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if distribution[labels[i]] != distribution[labels[j]] {
			return distribution[labels[i]] > distribution[labels[j]]
		}
		return labels[i] < labels[j]
	})

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, distribution)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			if err := csvWriter.Write([]string{"relationship", "count"}); err != nil {
				return err
			}
			for _, label := range labels {
				if err := csvWriter.Write([]string{label, strconv.Itoa(distribution[label])}); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Relationship", "Count", "Share"})
			var data [][]string
			for _, label := range labels {
				share := 0.0
				if total > 0 {
					share = float64(distribution[label]) / float64(total) * 100
				}
				data = append(data, []string{
					label,
					strconv.Itoa(distribution[label]),
					fmt.Sprintf("%.1f%%", share),
				})
			}
			if err := table.Bulk(data); err != nil {
				return err
			}
			return table.Render()
		}, "Wrote table")
	}
}

// WriteScores outputs the score-frequency histogram over the fixed 1..4
// buckets.
func WriteScores(distribution map[int]int, cfg *contract.Config) error {
	total := 0
	for _, count := range distribution {
		total += count
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, distribution)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			if err := csvWriter.Write([]string{"score", "count"}); err != nil {
				return err
			}
			for score := 1; score <= schema.MaxScore; score++ {
				if err := csvWriter.Write([]string{strconv.Itoa(score), strconv.Itoa(distribution[score])}); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Score", "Count", "Share"})
			var data [][]string
			for score := 1; score <= schema.MaxScore; score++ {
				share := 0.0
				if total > 0 {
					share = float64(distribution[score]) / float64(total) * 100
				}
				data = append(data, []string{
					strconv.Itoa(score),
					strconv.Itoa(distribution[score]),
					fmt.Sprintf("%.1f%%", share),
				})
			}
			if err := table.Bulk(data); err != nil {
				return err
			}
			if err := table.Render(); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Total rated answers: %d\n", total)
			return err
		}, "Wrote table")
	}
}

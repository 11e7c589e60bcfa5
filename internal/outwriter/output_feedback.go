package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/threesixty-dev/threesixty/internal/contract"
	"github.com/threesixty-dev/threesixty/schema"
)

// feedbackSections pairs the theme headings with their entries in display
// order.
func feedbackSections(themes schema.FeedbackThemes) []struct {
	Heading string
	Entries []string
} {
	return []struct {
		Heading string
		Entries []string
	}{
		{"Stop Doing", themes.StopDoing},
		{"Start Doing", themes.StartDoing},
		{"Continue Doing", themes.ContinueDoing},
	}
}

// WriteFeedback outputs the stop/start/continue feedback themes.
func WriteFeedback(themes schema.FeedbackThemes, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, themes)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			if err := csvWriter.Write([]string{"theme", "feedback"}); err != nil {
				return err
			}
			for _, section := range feedbackSections(themes) {
				for _, entry := range section.Entries {
					if err := csvWriter.Write([]string{section.Heading, entry}); err != nil {
						return err
					}
				}
			}
			return nil
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			for _, section := range feedbackSections(themes) {
				if _, err := fmt.Fprintf(w, "%s (%d):\n", section.Heading, len(section.Entries)); err != nil {
					return err
				}
				for _, entry := range section.Entries {
					if _, err := fmt.Fprintf(w, "  - %s\n", entry); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote text")
	}
}

// WriteDigest outputs the plain-text aggregate digest.
func WriteDigest(digest string, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, digest)
		return err
	}, "Wrote digest")
}

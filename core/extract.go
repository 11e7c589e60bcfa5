package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/threesixty-dev/threesixty/schema"
)

// cellAt returns the cell at the given offset, or "" when the row is shorter.
// xlsx rows routinely omit trailing empty cells.
func cellAt(row []string, offset int) string {
	if offset < 0 || offset >= len(row) {
		return ""
	}
	return row[offset]
}

// ExtractRow converts one spreadsheet row into a response record, or nil when
// the row should be skipped. A row is skipped when it has fewer than
// schema.MinRowCells cells, when its manager-name cell is blank, or when none
// of the anchor questions was answered (stray header/footer rows can carry a
// manager-like cell but no ratings).
//
// The column mapping is driven entirely by the declarative tables in
// schema/survey.go.
func ExtractRow(sheetName string, rowIndex int, row []string) *schema.Response {
	if len(row) < schema.MinRowCells {
		return nil
	}

	managerName := strings.TrimSpace(cellAt(row, schema.ManagerColumn))
	if managerName == "" {
		return nil
	}

	resp := &schema.Response{
		ID:          fmt.Sprintf("%s-%d", sheetName, rowIndex),
		Timestamp:   ParseTimestamp(cellAt(row, schema.TimestampColumn)),
		ManagerName: managerName,
		CreatedAt:   time.Now().UTC(),
	}

	if rel := cellAt(row, schema.RelationshipColumn); rel != "" {
		resp.Relationship = &rel
	}

	for _, q := range schema.Questions {
		resp.SetScore(q.Key, ParseScore(cellAt(row, q.Column)))
	}
	for _, tc := range schema.TextColumns {
		if text := cellAt(row, tc.Column); text != "" {
			resp.SetText(tc.Key, &text)
		}
	}

	if !hasAnchorScore(resp) {
		return nil
	}
	return resp
}

// hasAnchorScore reports whether at least one anchor question was answered.
func hasAnchorScore(resp *schema.Response) bool {
	for _, key := range schema.AnchorQuestions {
		if resp.Score(key) != nil {
			return true
		}
	}
	return false
}

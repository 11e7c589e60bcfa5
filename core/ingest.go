package core

import (
	"github.com/threesixty-dev/threesixty/schema"
)

// IngestWorkbook runs the row extractor over every sheet of the workbook and
// returns the full ordered response collection. Sheets with fewer than two
// rows (header plus at least one data row) are skipped entirely; row 0 of
// every sheet is a header and never extracted.
//
// Response sequence numbers are threaded through a single accumulator in
// sheet-then-row order, starting at 1 and incremented only for retained
// rows. Numbering never resets between sheets.
func IngestWorkbook(wb *schema.Workbook) []*schema.Response {
	var responses []*schema.Response
	seq := 1
	for _, sheet := range wb.Sheets {
		if len(sheet.Rows) < 2 {
			continue
		}
		for i := 1; i < len(sheet.Rows); i++ {
			resp := ExtractRow(sheet.Name, i, sheet.Rows[i])
			if resp == nil {
				continue
			}
			resp.ResponseNumber = seq
			seq++
			responses = append(responses, resp)
		}
	}
	return responses
}

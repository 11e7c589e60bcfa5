// Package xlsxio loads survey workbooks from local files or HTTP sources.
package xlsxio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/threesixty-dev/threesixty/internal/contract"
	"github.com/threesixty-dev/threesixty/schema"

	"github.com/xuri/excelize/v2"
)

// Compile-time check that Loader implements the WorkbookLoader interface.
var _ contract.WorkbookLoader = &Loader{}

// maxWorkbookBytes caps how much data Fetch will read from a remote source.
const maxWorkbookBytes = 64 << 20

// Loader reads xlsx workbooks from disk or over HTTP.
type Loader struct {
	client *http.Client
}

// NewLoader returns a Loader with a bounded HTTP client.
func NewLoader() *Loader {
	return &Loader{
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Fetch reads the raw workbook bytes from a local path or HTTP(S) URL.
func (l *Loader) Fetch(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return l.fetchHTTP(ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook %s: %w", source, err)
	}
	return data, nil
}

func (l *Loader) fetchHTTP(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download workbook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download workbook: %s returned %s", source, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxWorkbookBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to download workbook: %w", err)
	}
	return data, nil
}

// Parse decodes raw xlsx bytes into the workbook shape consumed by the
// ingestor. Cells are read raw so serial date numbers survive untouched.
func (l *Loader) Parse(data []byte) (*schema.Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	wb := &schema.Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, schema.Sheet{Name: name, Rows: rows})
	}
	return wb, nil
}

package core

import (
	"context"
	"fmt"

	"github.com/threesixty-dev/threesixty/internal/contract"
	"github.com/threesixty-dev/threesixty/internal/parquet"
)

// defaultExportPrefix names the Parquet files when --output-file is omitted.
const defaultExportPrefix = "threesixty_export"

// ExecuteExport writes the filtered responses and ranked summaries to a pair
// of Parquet files. It serves as the main entry point for the 'export'
// command.
func ExecuteExport(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader, mgr contract.CacheManager) error {
	out, err := GetAggregates(ctx, cfg, loader, mgr)
	if err != nil {
		return err
	}

	prefix := cfg.OutputFile
	if prefix == "" {
		prefix = defaultExportPrefix
	}

	summariesFile := prefix + "_summaries.parquet"
	summaryRows := parquet.NewManagerSummaryRows(out.Summaries)
	if err := parquet.WriteSummariesParquet(summaryRows, summariesFile); err != nil {
		return fmt.Errorf("failed to write summaries: %w", err)
	}
	fmt.Printf("Exported %d manager summaries to: %s\n", len(summaryRows), summariesFile)

	responsesFile := prefix + "_responses.parquet"
	responseRows := parquet.NewResponseRows(out.Responses)
	if err := parquet.WriteResponsesParquet(responseRows, responsesFile); err != nil {
		return fmt.Errorf("failed to write responses: %w", err)
	}
	fmt.Printf("Exported %d responses to: %s\n", len(responseRows), responsesFile)

	return nil
}

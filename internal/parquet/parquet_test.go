package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threesixty-dev/threesixty/schema"
)

func sampleResponse() *schema.Response {
	ts := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	r := &schema.Response{
		ID:             "Survey A-1",
		ResponseNumber: 1,
		Timestamp:      &ts,
		ManagerName:    "Jordan Example",
		Relationship:   schema.StrPtr("Direct report"),
	}
	r.SetScore(schema.QMentorsCoaches, schema.IntPtr(4))
	r.SetScore(schema.QSenseOfUrgency, schema.IntPtr(3))
	r.SetScore(schema.QFinalSay, schema.IntPtr(2))
	r.SetText(schema.TStopDoing, schema.StrPtr("Fewer status meetings"))
	return r
}

func TestResponseRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sch := parquet.SchemaOf(new(ResponseRow))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"id",
		"response_number",
		"timestamp",
		"manager_name",
		"relationship",
		"mentors_coaches_score",
		"effective_direction_score",
		"establishes_rapport_score",
		"sets_clear_goals_score",
		"open_to_ideas_score",
		"sense_of_urgency_score",
		"analyzes_change_score",
		"confidence_integrity_score",
		"patient_humble_score",
		"flat_collaborative_score",
		"approachable_score",
		"empowers_team_score",
		"final_say_score",
		"team_leadership_comments",
		"results_orientation_comments",
		"cultural_fit_comments",
		"stop_doing",
		"start_doing",
		"continue_doing",
	}

	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestManagerSummaryRowStructTags(t *testing.T) {
	sch := parquet.SchemaOf(new(ManagerSummaryRow))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"rank",
		"manager_name",
		"total_responses",
		"avg_team_leadership",
		"avg_results_orientation",
		"avg_cultural_fit",
		"overall_score",
	}

	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestNewResponseRow(t *testing.T) {
	row := NewResponseRow(sampleResponse())

	assert.Equal(t, "Survey A-1", row.ID)
	assert.Equal(t, int32(1), row.ResponseNumber)
	require.NotNil(t, row.Relationship)
	assert.Equal(t, "Direct report", *row.Relationship)

	require.NotNil(t, row.MentorsCoaches)
	assert.Equal(t, int32(4), *row.MentorsCoaches)
	require.NotNil(t, row.FinalSay)
	assert.Equal(t, int32(2), *row.FinalSay)
	assert.Nil(t, row.EffectiveDirection, "Unanswered questions stay nil")

	require.NotNil(t, row.StopDoing)
	assert.Equal(t, "Fewer status meetings", *row.StopDoing)
	assert.Nil(t, row.StartDoing)
}

func TestWriteResponsesParquetRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "responses.parquet")

	data := NewResponseRows([]*schema.Response{sampleResponse()})
	require.NoError(t, WriteResponsesParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[ResponseRow](file)
	defer reader.Close()

	readData := make([]ResponseRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 1, n)

	assert.Equal(t, data[0].ID, readData[0].ID)
	assert.Equal(t, data[0].ManagerName, readData[0].ManagerName)
	require.NotNil(t, readData[0].Timestamp)
	assert.WithinDuration(t, *data[0].Timestamp, *readData[0].Timestamp, time.Nanosecond)
	require.NotNil(t, readData[0].MentorsCoaches)
	assert.Equal(t, int32(4), *readData[0].MentorsCoaches)
	assert.Nil(t, readData[0].EffectiveDirection)
}

func TestWriteSummariesParquetRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "summaries.parquet")

	data := NewManagerSummaryRows([]schema.ManagerSummary{
		{
			ManagerName:           "Jordan Example",
			TotalResponses:        4,
			AvgTeamLeadership:     3.5,
			AvgResultsOrientation: 3.25,
			AvgCulturalFit:        3.75,
			OverallScore:          3.5,
		},
		{
			ManagerName:    "Casey Example",
			TotalResponses: 2,
			OverallScore:   2.1,
		},
	})
	require.NoError(t, WriteSummariesParquet(data, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[ManagerSummaryRow](file)
	defer reader.Close()

	readData := make([]ManagerSummaryRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 2, n)

	assert.Equal(t, int32(1), readData[0].Rank)
	assert.Equal(t, "Jordan Example", readData[0].ManagerName)
	assert.InDelta(t, 3.5, readData[0].OverallScore, 0.001)
	assert.Equal(t, int32(2), readData[1].Rank)
}

func TestWriteResponsesParquetEmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_responses.parquet")

	require.NoError(t, WriteResponsesParquet([]ResponseRow{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteResponsesParquetInvalidPath(t *testing.T) {
	data := NewResponseRows([]*schema.Response{sampleResponse()})
	err := WriteResponsesParquet(data, "/nonexistent/directory/output.parquet")
	require.Error(t, err)
}

func TestWriteSummariesParquetInvalidPath(t *testing.T) {
	err := WriteSummariesParquet([]ManagerSummaryRow{}, "/nonexistent/directory/output.parquet")
	require.Error(t, err)
}

package core

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/threesixty-dev/threesixty/internal/contract"
	"github.com/threesixty-dev/threesixty/internal/iocache"
	"github.com/threesixty-dev/threesixty/schema"
)

// stubLoader serves a fixed workbook and counts Parse calls.
type stubLoader struct {
	data       []byte
	wb         *schema.Workbook
	fetchErr   error
	parseCalls int
}

func (l *stubLoader) Fetch(_ context.Context, _ string) ([]byte, error) {
	if l.fetchErr != nil {
		return nil, l.fetchErr
	}
	return l.data, nil
}

func (l *stubLoader) Parse(_ []byte) (*schema.Workbook, error) {
	l.parseCalls++
	return l.wb, nil
}

func testWorkbook() *schema.Workbook {
	return &schema.Workbook{
		Sheets: []schema.Sheet{
			{
				Name: "Survey A",
				Rows: [][]string{
					header(),
					surveyRow("Alice Manager", "Peer", map[int]string{4: "Always", 10: "Most times"}),
					surveyRow("Bob Manager", "Direct report", map[int]string{4: "Sometimes"}),
				},
			},
		},
	}
}

func testConfig() *contract.Config {
	return &contract.Config{
		Source:       "survey.xlsx",
		ResultLimit:  contract.DefaultResultLimit,
		Precision:    contract.DefaultPrecision,
		Output:       schema.TextOut,
		CacheBackend: schema.NoneBackend,
	}
}

func mockManager(store contract.ResponseStore) *iocache.MockCacheManager {
	mgr := &iocache.MockCacheManager{}
	mgr.On("GetResponseStore").Return(store)
	return mgr
}

func TestLoadResponsesWithoutCache(t *testing.T) {
	loader := &stubLoader{data: []byte("wb"), wb: testWorkbook()}

	responses, err := LoadResponses(context.Background(), testConfig(), loader, nil)
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "Alice Manager", responses[0].ManagerName)
	assert.Equal(t, 1, loader.parseCalls)
}

func TestLoadResponsesCacheMissStores(t *testing.T) {
	loader := &stubLoader{data: []byte("wb"), wb: testWorkbook()}

	store := &iocache.MockResponseStore{}
	store.On("Get", mock.Anything).Return([]byte{}, 0, int64(0), sql.ErrNoRows)
	store.On("Set", mock.Anything, mock.Anything, responseCacheVersion, mock.Anything).Return(nil)

	responses, err := LoadResponses(context.Background(), testConfig(), loader, mockManager(store))
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, 1, loader.parseCalls)
	store.AssertCalled(t, "Set", mock.Anything, mock.Anything, responseCacheVersion, mock.Anything)
}

func TestLoadResponsesCacheHitSkipsParse(t *testing.T) {
	loader := &stubLoader{data: []byte("wb"), wb: testWorkbook()}

	cached := IngestWorkbook(testWorkbook())
	encoded, err := json.Marshal(cached)
	require.NoError(t, err)

	store := &iocache.MockResponseStore{}
	store.On("Get", mock.Anything).Return(encoded, responseCacheVersion, int64(123), nil)

	responses, err := LoadResponses(context.Background(), testConfig(), loader, mockManager(store))
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Zero(t, loader.parseCalls, "A cache hit must not re-parse the workbook")
}

func TestLoadResponsesStaleVersionReingests(t *testing.T) {
	loader := &stubLoader{data: []byte("wb"), wb: testWorkbook()}

	store := &iocache.MockResponseStore{}
	store.On("Get", mock.Anything).Return([]byte(`[]`), responseCacheVersion-1, int64(123), nil)
	store.On("Set", mock.Anything, mock.Anything, responseCacheVersion, mock.Anything).Return(nil)

	responses, err := LoadResponses(context.Background(), testConfig(), loader, mockManager(store))
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, 1, loader.parseCalls)
}

func TestLoadResponsesCorruptEntryReingests(t *testing.T) {
	loader := &stubLoader{data: []byte("wb"), wb: testWorkbook()}

	store := &iocache.MockResponseStore{}
	store.On("Get", mock.Anything).Return([]byte("{not json"), responseCacheVersion, int64(123), nil)
	store.On("Set", mock.Anything, mock.Anything, responseCacheVersion, mock.Anything).Return(nil)

	responses, err := LoadResponses(context.Background(), testConfig(), loader, mockManager(store))
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, 1, loader.parseCalls)
}

func TestLoadResponsesFetchError(t *testing.T) {
	loader := &stubLoader{fetchErr: errors.New("boom")}

	_, err := LoadResponses(context.Background(), testConfig(), loader, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "survey data unavailable")
}

func TestGetAggregatesAppliesFilters(t *testing.T) {
	loader := &stubLoader{data: []byte("wb"), wb: testWorkbook()}
	cfg := testConfig()
	cfg.Managers = []string{"Alice Manager"}

	out, err := GetAggregates(context.Background(), cfg, loader, nil)
	require.NoError(t, err)
	require.Len(t, out.Responses, 1)
	require.Len(t, out.Summaries, 1)
	assert.Equal(t, "Alice Manager", out.Summaries[0].ManagerName)
	assert.Equal(t, 1, out.Stats.TotalResponses)
	assert.Len(t, out.Competencies, 12)
	assert.Equal(t, map[string]int{"Peer": 1}, out.Relationships)
}

func TestCacheKeyDependsOnContent(t *testing.T) {
	a := cacheKey("survey.xlsx", []byte("one"))
	b := cacheKey("survey.xlsx", []byte("two"))
	c := cacheKey("other.xlsx", []byte("one"))

	assert.NotEqual(t, a, b, "Changed content must change the key")
	assert.NotEqual(t, a, c, "Changed source must change the key")
	assert.Equal(t, a, cacheKey("survey.xlsx", []byte("one")))
	assert.Contains(t, a, "survey.xlsx|")
}

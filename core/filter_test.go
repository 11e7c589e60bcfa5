package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threesixty-dev/threesixty/schema"
)

func filterFixture() []*schema.Response {
	return []*schema.Response{
		makeResp("Alice Manager", func(r *schema.Response) { r.Relationship = schema.StrPtr("Peer") }),
		makeResp("Alice Manager", func(r *schema.Response) { r.Relationship = schema.StrPtr("Direct report") }),
		makeResp("Bob Manager", func(r *schema.Response) { r.Relationship = schema.StrPtr("Peer") }),
		makeResp("Bob Manager", nil), // no relationship
	}
}

func TestApplyFiltersIdentity(t *testing.T) {
	responses := filterFixture()
	got := ApplyFilters(responses, schema.FilterState{})
	assert.Equal(t, responses, got, "An empty filter returns the input unchanged")
}

func TestApplyFiltersByManager(t *testing.T) {
	got := ApplyFilters(filterFixture(), schema.FilterState{Managers: []string{"Bob Manager"}})
	require.Len(t, got, 2)
	for _, resp := range got {
		assert.Equal(t, "Bob Manager", resp.ManagerName)
	}
}

func TestApplyFiltersByRelationship(t *testing.T) {
	got := ApplyFilters(filterFixture(), schema.FilterState{Relationships: []string{"Peer"}})
	require.Len(t, got, 3, "The nil-relationship response passes the relationship filter")
	assert.Equal(t, "Alice Manager", got[0].ManagerName)
	assert.Nil(t, got[2].Relationship)
}

func TestApplyFiltersCombined(t *testing.T) {
	got := ApplyFilters(filterFixture(), schema.FilterState{
		Managers:      []string{"Alice Manager"},
		Relationships: []string{"Direct report"},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Direct report", *got[0].Relationship)
}

func TestApplyFiltersNoMatches(t *testing.T) {
	got := ApplyFilters(filterFixture(), schema.FilterState{Managers: []string{"Nobody"}})
	assert.Empty(t, got)
}

func TestApplyFiltersScoreRangeIgnored(t *testing.T) {
	responses := filterFixture()
	got := ApplyFilters(responses, schema.FilterState{ScoreRange: [2]float64{3, 4}})
	assert.Equal(t, responses, got, "The score range carried by the filter state has no effect")
}

func TestUniqueManagers(t *testing.T) {
	got := UniqueManagers(filterFixture())
	assert.Equal(t, []string{"Alice Manager", "Bob Manager"}, got)
}

func TestUniqueRelationships(t *testing.T) {
	got := UniqueRelationships(filterFixture())
	assert.Equal(t, []string{"Direct report", "Peer"}, got)
}

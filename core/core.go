package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/threesixty-dev/threesixty/internal/contract"
	"github.com/threesixty-dev/threesixty/internal/outwriter"
	"github.com/threesixty-dev/threesixty/schema"
)

// responseCacheVersion invalidates cached collections whenever the response
// shape or extraction rules change.
const responseCacheVersion = 2

// AggregateOutput bundles every derived view over one filtered collection.
type AggregateOutput struct {
	Responses     []*schema.Response
	Summaries     []schema.ManagerSummary
	Stats         schema.OverallStats
	Competencies  []schema.CompetencyScore
	Relationships map[string]int
	Scores        map[int]int
	Feedback      schema.FeedbackThemes
}

// LoadResponses fetches, parses and ingests the survey workbook, consulting
// the response cache first. Ingestion is atomic: any fetch or parse failure
// returns an error and no partial collection.
func LoadResponses(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader, mgr contract.CacheManager) ([]*schema.Response, error) {
	data, err := loader.Fetch(ctx, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("survey data unavailable: %w", err)
	}

	key := cacheKey(cfg.Source, data)
	store := responseStore(mgr)

	if store != nil {
		if cached, version, _, err := store.Get(key); err == nil && version == responseCacheVersion {
			var responses []*schema.Response
			if err := json.Unmarshal(cached, &responses); err == nil {
				return responses, nil
			}
			// Corrupt entry: fall through and re-ingest.
		}
	}

	wb, err := loader.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("survey data unavailable: %w", err)
	}
	responses := IngestWorkbook(wb)

	if store != nil {
		if encoded, err := json.Marshal(responses); err == nil {
			if err := store.Set(key, encoded, responseCacheVersion, time.Now().Unix()); err != nil {
				contract.LogWarn("Could not cache responses", err)
			}
		}
	}
	return responses, nil
}

// GetAggregates loads the collection, applies the configured filters and
// computes every derived view. It is the shared entry point for the CLI
// commands and the MCP tools.
func GetAggregates(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader, mgr contract.CacheManager) (*AggregateOutput, error) {
	all, err := LoadResponses(ctx, cfg, loader, mgr)
	if err != nil {
		return nil, err
	}

	filtered := ApplyFilters(all, cfg.Filters())
	summaries := CalculateManagerSummaries(filtered)

	return &AggregateOutput{
		Responses:     filtered,
		Summaries:     summaries,
		Stats:         ComputeOverallStats(filtered, summaries),
		Competencies:  CompetencyBreakdown(filtered),
		Relationships: RelationshipDistribution(filtered),
		Scores:        ScoreDistribution(filtered),
		Feedback:      ExtractFeedbackThemes(filtered),
	}, nil
}

// ExecuteLeaderboard renders the ranked manager summaries.
// It serves as the main entry point for the 'leaderboard' command.
func ExecuteLeaderboard(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader, mgr contract.CacheManager) error {
	start := time.Now()
	out, err := GetAggregates(ctx, cfg, loader, mgr)
	if err != nil {
		return err
	}
	ranked := out.Summaries
	if len(ranked) > cfg.ResultLimit {
		ranked = ranked[:cfg.ResultLimit]
	}
	return outwriter.WriteLeaderboard(ranked, out.Stats, cfg, time.Since(start))
}

// ExecuteCompetencies renders the per-question competency breakdown.
func ExecuteCompetencies(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader, mgr contract.CacheManager) error {
	out, err := GetAggregates(ctx, cfg, loader, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteCompetencies(out.Competencies, cfg)
}

// ExecuteRelationships renders the relationship-type distribution.
func ExecuteRelationships(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader, mgr contract.CacheManager) error {
	out, err := GetAggregates(ctx, cfg, loader, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteRelationships(out.Relationships, len(out.Responses), cfg)
}

// ExecuteScores renders the score-frequency histogram.
func ExecuteScores(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader, mgr contract.CacheManager) error {
	out, err := GetAggregates(ctx, cfg, loader, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteScores(out.Scores, cfg)
}

// ExecuteFeedback renders the stop/start/continue feedback themes.
func ExecuteFeedback(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader, mgr contract.CacheManager) error {
	out, err := GetAggregates(ctx, cfg, loader, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteFeedback(out.Feedback, cfg)
}

// ExecuteDigest renders the plain-text aggregate digest used as the AI
// assistant payload.
func ExecuteDigest(ctx context.Context, cfg *contract.Config, loader contract.WorkbookLoader, mgr contract.CacheManager) error {
	out, err := GetAggregates(ctx, cfg, loader, mgr)
	if err != nil {
		return err
	}
	digest := BuildDigest(out.Summaries, out.Stats, out.Competencies)
	return outwriter.WriteDigest(digest, cfg)
}

// responseStore unwraps the manager, tolerating a nil manager or store so
// callers without caching work unchanged.
func responseStore(mgr contract.CacheManager) contract.ResponseStore {
	if mgr == nil {
		return nil
	}
	return mgr.GetResponseStore()
}

// cacheKey derives the cache key from the source identity and the content
// hash, so a changed workbook at the same path never serves stale data.
func cacheKey(source string, data []byte) string {
	sum := sha256.Sum256(data)
	return source + "|" + hex.EncodeToString(sum[:])
}

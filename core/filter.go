package core

import (
	"sort"

	"github.com/threesixty-dev/threesixty/schema"
)

// ApplyFilters returns the subset of responses passing the filter state,
// preserving input order. Empty filter sets impose no restriction. A
// response with no relationship value always passes the relationship filter;
// only an explicit non-matching label excludes it. The score range carried
// by the filter state is not applied.
func ApplyFilters(responses []*schema.Response, filters schema.FilterState) []*schema.Response {
	if filters.IsZero() {
		return responses
	}

	managers := toSet(filters.Managers)
	relationships := toSet(filters.Relationships)

	filtered := make([]*schema.Response, 0, len(responses))
	for _, resp := range responses {
		if len(managers) > 0 {
			if _, ok := managers[resp.ManagerName]; !ok {
				continue
			}
		}
		if len(relationships) > 0 && resp.Relationship != nil {
			if _, ok := relationships[*resp.Relationship]; !ok {
				continue
			}
		}
		filtered = append(filtered, resp)
	}
	return filtered
}

// UniqueManagers returns the distinct manager names in the collection,
// sorted ascending.
func UniqueManagers(responses []*schema.Response) []string {
	return uniqueSorted(responses, func(r *schema.Response) (string, bool) {
		return r.ManagerName, true
	})
}

// UniqueRelationships returns the distinct non-empty relationship labels in
// the collection, sorted ascending.
func UniqueRelationships(responses []*schema.Response) []string {
	return uniqueSorted(responses, func(r *schema.Response) (string, bool) {
		if r.Relationship == nil || *r.Relationship == "" {
			return "", false
		}
		return *r.Relationship, true
	})
}

func uniqueSorted(responses []*schema.Response, get func(*schema.Response) (string, bool)) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, resp := range responses {
		v, ok := get(resp)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

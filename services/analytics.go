package services

import (
	"sort"

	"github.com/foundanand/trackmygov/models"
	"github.com/foundanand/trackmygov/types"
)

// Aggregate counts issues per category. Any status other than RESOLVED or
// IN_PROGRESS counts as reported. Categories with no issues are dropped and
// the rest are ordered by total, largest first; ties keep enumeration order.
// The grand totals cover every input issue.
func Aggregate(issues []models.Issue) types.AnalyticsSummary {
	byCategory := make(map[models.IssueCategory]*types.CategoryStats, len(models.IssueCategories))
	stats := make([]*types.CategoryStats, 0, len(models.IssueCategories))
	for _, c := range models.IssueCategories {
		cs := &types.CategoryStats{Category: c, Color: c.Color()}
		byCategory[c] = cs
		stats = append(stats, cs)
	}

	summary := types.AnalyticsSummary{TotalIssues: len(issues)}
	for _, issue := range issues {
		if issue.Status == models.StatusResolved {
			summary.ResolvedIssues++
		}
		cs, ok := byCategory[issue.Category]
		if !ok {
			continue
		}
		cs.Total++
		switch issue.Status {
		case models.StatusResolved:
			cs.Resolved++
		case models.StatusInProgress:
			cs.InProgress++
		default:
			cs.Reported++
		}
	}

	summary.Categories = make([]types.CategoryStats, 0, len(stats))
	for _, cs := range stats {
		if cs.Total > 0 {
			summary.Categories = append(summary.Categories, *cs)
		}
	}
	sort.SliceStable(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Total > summary.Categories[j].Total
	})
	return summary
}

// Categories lists the fixed enumeration with display colors.
func Categories() []types.CategoryInfo {
	out := make([]types.CategoryInfo, 0, len(models.IssueCategories))
	for _, c := range models.IssueCategories {
		out = append(out, types.CategoryInfo{Category: c, Color: c.Color()})
	}
	return out
}

package types

import "github.com/foundanand/trackmygov/models"

type CategoryStats struct {
	Category   models.IssueCategory `json:"category"`
	Color      string               `json:"color"`
	Total      int                  `json:"total"`
	Resolved   int                  `json:"resolved"`
	InProgress int                  `json:"inProgress"`
	Reported   int                  `json:"reported"`
}

type AnalyticsSummary struct {
	Categories     []CategoryStats `json:"categories"`
	TotalIssues    int             `json:"totalIssues"`
	ResolvedIssues int             `json:"resolvedIssues"`
}

type CategoryInfo struct {
	Category models.IssueCategory `json:"category"`
	Color    string               `json:"color"`
}

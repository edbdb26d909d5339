// Package report builds, renders, and dispatches the weekly Jira
// activity summary.
package report

import (
	"context"
	"fmt"

	"github.com/scaleworks/jiraweekly/internal/jira"
)

// Searcher executes one JQL query. *jira.Client satisfies it; tests
// substitute stubs.
type Searcher interface {
	Search(ctx context.Context, jql string) (jira.SearchResult, error)
}

// Summary aggregates the three query results for one run.
type Summary struct {
	CreatedCount  int
	ResolvedCount int
	OpenCount     int
	IssueKeys     map[jira.Label][]string
}

// Summarize runs the created, resolved, and open queries in order and
// assembles the summary. The first failure aborts the run; remaining
// labels are never attempted and no partial summary is returned.
func Summarize(ctx context.Context, s Searcher, projectKey string, w jira.Window, extraFilter string) (*Summary, error) {
	queries := jira.BuildJQL(projectKey, w, extraFilter)

	summary := &Summary{
		IssueKeys: make(map[jira.Label][]string, len(jira.Labels)),
	}

	for _, label := range jira.Labels {
		result, err := s.Search(ctx, queries[label])
		if err != nil {
			return nil, fmt.Errorf("%s query: %w", label, err)
		}

		switch label {
		case jira.LabelCreated:
			summary.CreatedCount = result.Total
		case jira.LabelResolved:
			summary.ResolvedCount = result.Total
		case jira.LabelOpen:
			summary.OpenCount = result.Total
		}
		summary.IssueKeys[label] = result.Keys
	}

	return summary, nil
}

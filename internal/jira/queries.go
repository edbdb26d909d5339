package jira

import (
	"fmt"
	"time"
)

// Label identifies one of the three report queries.
type Label string

const (
	LabelCreated  Label = "created"
	LabelResolved Label = "resolved"
	LabelOpen     Label = "open"
)

// Labels is the fixed processing order for report queries.
var Labels = []Label{LabelCreated, LabelResolved, LabelOpen}

// Window is the reporting time window. Start is never after End.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow returns a window covering the daysBack days up to now.
func NewWindow(now time.Time, daysBack int) Window {
	if daysBack < 0 {
		daysBack = 0
	}
	return Window{
		Start: now.AddDate(0, 0, -daysBack),
		End:   now,
	}
}

// QuerySet maps each report label to its JQL query string.
type QuerySet map[Label]string

const jqlDateFormat = "2006-01-02"

// BuildJQL builds the three report queries for a project and window.
// extraFilter, when non-empty, is trusted JQL text conjoined onto all
// three clauses verbatim.
func BuildJQL(projectKey string, w Window, extraFilter string) QuerySet {
	start := w.Start.Format(jqlDateFormat)
	end := w.End.Format(jqlDateFormat)

	queries := QuerySet{
		LabelCreated: fmt.Sprintf(
			"project = %s AND created >= '%s' AND created <= '%s'",
			projectKey, start, end),
		LabelResolved: fmt.Sprintf(
			"project = %s AND resolved >= '%s' AND resolved <= '%s'",
			projectKey, start, end),
		// Approximation of "currently open": status category not done
		// and touched within the window, not a point-in-time count.
		LabelOpen: fmt.Sprintf(
			"project = %s AND statusCategory != Done AND updated >= '%s' AND updated <= '%s'",
			projectKey, start, end),
	}

	if extraFilter != "" {
		for label, jql := range queries {
			queries[label] = jql + " AND " + extraFilter
		}
	}

	return queries
}

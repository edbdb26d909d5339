package report

import (
	"regexp"
	"strings"
	"testing"

	"github.com/scaleworks/jiraweekly/internal/jira"
)

const testBaseURL = "https://company.atlassian.net"

func TestRender(t *testing.T) {
	summary := &Summary{
		CreatedCount:  12,
		ResolvedCount: 9,
		OpenCount:     5,
		IssueKeys: map[jira.Label][]string{
			jira.LabelCreated:  {"SCAL-130", "SCAL-131"},
			jira.LabelResolved: {"SCAL-99"},
			jira.LabelOpen:     {"SCAL-123", "SCAL-118"},
		},
	}

	body, err := Render(summary, testBaseURL)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, want := range []string{
		"<h2>Weekly Jira Project Summary</h2>",
		"Issues created: 12",
		"Issues resolved: 9",
		"Issues currently open: 5",
		"<h3>Issue Links</h3>",
		"<strong>Created issues</strong>",
		"<strong>Resolved issues</strong>",
		"<strong>Open issues</strong>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestRenderEmptyLabel(t *testing.T) {
	summary := &Summary{
		CreatedCount:  1,
		ResolvedCount: 0,
		OpenCount:     0,
		IssueKeys: map[jira.Label][]string{
			jira.LabelCreated:  {"SCAL-1"},
			jira.LabelResolved: {},
			jira.LabelOpen:     nil,
		},
	}

	body, err := Render(summary, testBaseURL)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(body, "No issues found.") {
		t.Error("body missing empty-label notice")
	}

	// No list markup after the Open section heading.
	openIdx := strings.Index(body, "<strong>Open issues</strong>")
	if openIdx < 0 {
		t.Fatal("body missing Open section")
	}
	if strings.Contains(body[openIdx:], "<ul>") {
		t.Error("Open section has list markup despite empty key set")
	}
}

var hrefPattern = regexp.MustCompile(`href="([^"]+)"`)

func TestRenderLinkRoundTrip(t *testing.T) {
	keys := []string{"SCAL-123", "SCAL-118", "SCAL-117", "SCAL-110"}
	summary := &Summary{
		OpenCount: 4,
		IssueKeys: map[jira.Label][]string{
			jira.LabelCreated:  nil,
			jira.LabelResolved: nil,
			jira.LabelOpen:     keys,
		},
	}

	body, err := Render(summary, testBaseURL)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	matches := hrefPattern.FindAllStringSubmatch(body, -1)
	if len(matches) != len(keys) {
		t.Fatalf("found %d hrefs, want %d", len(matches), len(keys))
	}
	for i, key := range keys {
		want := testBaseURL + "/browse/" + key
		if matches[i][1] != want {
			t.Errorf("href[%d] = %q, want %q", i, matches[i][1], want)
		}
		if !strings.Contains(body, ">"+key+"</a>") {
			t.Errorf("body missing link text for %q", key)
		}
	}
}

func TestRenderTrimsBaseURL(t *testing.T) {
	summary := &Summary{
		IssueKeys: map[jira.Label][]string{
			jira.LabelCreated: {"SCAL-1"},
		},
	}

	body, err := Render(summary, testBaseURL+"/")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(body, `href="https://company.atlassian.net/browse/SCAL-1"`) {
		t.Errorf("trailing base URL slash not trimmed:\n%s", body)
	}
}

func TestSubject(t *testing.T) {
	got := Subject("SCAL", testWindow())
	want := "Weekly Jira Report for SCAL (2026-03-07 - 2026-03-14)"
	if got != want {
		t.Errorf("Subject() = %q, want %q", got, want)
	}
}

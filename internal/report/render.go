package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/scaleworks/jiraweekly/internal/jira"
)

// bodyTemplate is the HTML shape of the report email. Counter lines keep
// the number inline so the plain substring form ("Issues created: 12")
// is stable for consumers grepping the printed body.
const bodyTemplate = `<h2>Weekly Jira Project Summary</h2>
<ul>
  <li>Issues created: {{.CreatedCount}}</li>
  <li>Issues resolved: {{.ResolvedCount}}</li>
  <li>Issues currently open: {{.OpenCount}}</li>
</ul>
<h3>Issue Links</h3>
{{range .Sections -}}
<p><strong>{{.Title}} issues</strong>:</p>
{{if .Links -}}
<ul>{{range .Links}}<li><a href="{{.URL}}">{{.Key}}</a></li>{{end}}</ul>
{{else -}}
<p>No issues found.</p>
{{end -}}
{{end -}}`

var bodyTmpl = template.Must(template.New("report").Parse(bodyTemplate))

type issueLink struct {
	Key string
	URL string
}

type labelSection struct {
	Title string
	Links []issueLink
}

type bodyData struct {
	CreatedCount  int
	ResolvedCount int
	OpenCount     int
	Sections      []labelSection
}

// Render converts a summary into the HTML report body. Issue links point
// at baseURL/browse/<key>, preserving each label's key order.
func Render(summary *Summary, baseURL string) (string, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")

	data := bodyData{
		CreatedCount:  summary.CreatedCount,
		ResolvedCount: summary.ResolvedCount,
		OpenCount:     summary.OpenCount,
	}

	for _, label := range jira.Labels {
		section := labelSection{Title: titleCase(string(label))}
		for _, key := range summary.IssueKeys[label] {
			section.Links = append(section.Links, issueLink{
				Key: key,
				URL: fmt.Sprintf("%s/browse/%s", baseURL, key),
			})
		}
		data.Sections = append(data.Sections, section)
	}

	var buf bytes.Buffer
	if err := bodyTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render report body: %w", err)
	}
	return buf.String(), nil
}

// Subject composes the email subject for a project and window at date
// granularity.
func Subject(projectKey string, w jira.Window) string {
	return fmt.Sprintf("Weekly Jira Report for %s (%s - %s)",
		projectKey, w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/scaleworks/jiraweekly/internal/jira"
	"github.com/scaleworks/jiraweekly/internal/mail"
)

// Sender delivers a rendered report. The SMTP implementation is the
// default; tests substitute stubs.
type Sender interface {
	Send(ctx context.Context, subject, htmlBody string) error
}

// smtpSender adapts mail.Send to the Sender interface.
type smtpSender struct {
	cfg mail.Config
}

func (s smtpSender) Send(ctx context.Context, subject, htmlBody string) error {
	return mail.Send(ctx, s.cfg, subject, htmlBody)
}

// Options control one report run.
type Options struct {
	Days        int
	ExtraFilter string
	DryRun      bool
}

// Runner sequences one report run: summarize, render, print, send.
// Searcher, Sender, Out, and Log default to the real client, the SMTP
// sender, stdout, and slog's default logger when left nil.
type Runner struct {
	Jira     jira.Config
	SMTP     mail.Config
	Searcher Searcher
	Sender   Sender
	Out      io.Writer
	Log      *slog.Logger
}

// Run executes the pipeline. The rendered body is always printed to Out,
// including in dry-run mode. Failures keep their typed cause so the
// caller can map them to process outcomes.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	log := r.Log
	if log == nil {
		log = slog.Default()
	}
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	searcher := r.Searcher
	if searcher == nil {
		searcher = jira.NewClient(r.Jira)
	}

	window := jira.NewWindow(time.Now().UTC(), opts.Days)

	summary, err := Summarize(ctx, searcher, r.Jira.ProjectKey, window, opts.ExtraFilter)
	if err != nil {
		log.Error("failed to summarize issues", "project", r.Jira.ProjectKey, "error", err)
		return fmt.Errorf("summarize issues: %w", err)
	}
	log.Info("issue summary",
		"created", summary.CreatedCount,
		"resolved", summary.ResolvedCount,
		"open", summary.OpenCount)

	body, err := Render(summary, r.Jira.BaseURL)
	if err != nil {
		log.Error("failed to render report", "error", err)
		return err
	}
	fmt.Fprintln(out, body)

	if opts.DryRun {
		log.Info("dry run enabled; not sending email")
		return nil
	}

	sender := r.Sender
	if sender == nil {
		sender = smtpSender{cfg: r.SMTP}
	}

	subject := Subject(r.Jira.ProjectKey, window)
	if err := sender.Send(ctx, subject, body); err != nil {
		log.Error("failed to send email", "recipient", r.SMTP.Recipient, "error", err)
		return err
	}
	log.Info("email sent", "recipient", r.SMTP.Recipient)
	return nil
}

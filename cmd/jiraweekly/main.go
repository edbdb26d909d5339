// Command jiraweekly generates a weekly Jira activity report for one
// project and emails it to a single recipient.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/scaleworks/jiraweekly/internal/config"
	"github.com/scaleworks/jiraweekly/internal/mail"
	"github.com/scaleworks/jiraweekly/internal/report"
	"github.com/scaleworks/jiraweekly/internal/ui"
)

// Process outcomes. Each failure stage maps to its own code so cron
// wrappers can tell a bad credential from a dead SMTP host.
const (
	exitOK        = 0
	exitConfig    = 1
	exitSummarize = 2
	exitDelivery  = 3
)

var (
	reportDays    int
	reportFilters string
	reportDryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "jiraweekly",
	Short: "Generate and email a weekly Jira activity report",
	Long: `Generate a weekly Jira activity report for one project and deliver it
by email.

Credentials come from the environment: JIRA_BASE_URL, JIRA_PROJECT_KEY,
JIRA_AUTH_EMAIL, JIRA_API_TOKEN, JIRA_VERIFY_SSL and SMTP_HOST,
SMTP_PORT, SMTP_USERNAME, SMTP_PASSWORD, SMTP_SENDER, SMTP_RECIPIENT,
SMTP_USE_TLS.

Examples:
  jiraweekly                          # report on the last 7 days and send
  jiraweekly --days 14                # widen the lookback window
  jiraweekly --filters "priority = High"
  jiraweekly --dry-run                # print the report, skip delivery`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runReport())
	},
}

func init() {
	rootCmd.Flags().IntVar(&reportDays, "days", 7, "Number of days to look back for the report")
	rootCmd.Flags().StringVar(&reportFilters, "filters", "", "Additional JQL filters (e.g. priority = High)")
	rootCmd.Flags().BoolVar(&reportDryRun, "dry-run", false, "Print the report without sending email")
}

func runReport() int {
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	jiraCfg, err := config.LoadJira()
	if err != nil {
		log.Error("configuration error", "error", err)
		fmt.Fprintln(os.Stderr, ui.Fail(err.Error()))
		return exitConfig
	}
	smtpCfg, err := config.LoadSMTP()
	if err != nil {
		log.Error("configuration error", "error", err)
		fmt.Fprintln(os.Stderr, ui.Fail(err.Error()))
		return exitConfig
	}

	runner := &report.Runner{
		Jira: jiraCfg,
		SMTP: smtpCfg,
		Log:  log,
	}

	err = runner.Run(context.Background(), report.Options{
		Days:        reportDays,
		ExtraFilter: reportFilters,
		DryRun:      reportDryRun,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Fail(err.Error()))
		var deliveryErr *mail.DeliveryError
		if errors.As(err, &deliveryErr) {
			return exitDelivery
		}
		return exitSummarize
	}

	if reportDryRun {
		fmt.Fprintln(os.Stderr, ui.Skip("dry run; email not sent"))
	} else {
		fmt.Fprintln(os.Stderr, ui.Pass("report sent to "+smtpCfg.Recipient))
	}
	return exitOK
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Fail(err.Error()))
		os.Exit(exitConfig)
	}
}

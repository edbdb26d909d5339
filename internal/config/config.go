// Package config loads tracker and SMTP credentials from the
// environment. Credentials are read once per run and never persisted.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/scaleworks/jiraweekly/internal/jira"
	"github.com/scaleworks/jiraweekly/internal/mail"
)

// MissingError reports every required environment variable absent from
// the environment, not just the first.
type MissingError struct {
	Vars []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Vars, ", "))
}

func newEnv() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("JIRA_VERIFY_SSL", true)
	v.SetDefault("SMTP_USE_TLS", true)
	return v
}

func missing(v *viper.Viper, names []string) []string {
	var absent []string
	for _, name := range names {
		if v.GetString(name) == "" {
			absent = append(absent, name)
		}
	}
	return absent
}

// LoadJira reads the Jira connection settings from the environment.
func LoadJira() (jira.Config, error) {
	v := newEnv()

	required := []string{"JIRA_BASE_URL", "JIRA_PROJECT_KEY", "JIRA_AUTH_EMAIL", "JIRA_API_TOKEN"}
	if absent := missing(v, required); len(absent) > 0 {
		return jira.Config{}, &MissingError{Vars: absent}
	}

	return jira.Config{
		BaseURL:    strings.TrimSuffix(v.GetString("JIRA_BASE_URL"), "/"),
		ProjectKey: v.GetString("JIRA_PROJECT_KEY"),
		AuthEmail:  v.GetString("JIRA_AUTH_EMAIL"),
		APIToken:   v.GetString("JIRA_API_TOKEN"),
		VerifySSL:  v.GetBool("JIRA_VERIFY_SSL"),
	}, nil
}

// LoadSMTP reads the mail transport settings from the environment.
func LoadSMTP() (mail.Config, error) {
	v := newEnv()

	required := []string{"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD", "SMTP_SENDER", "SMTP_RECIPIENT"}
	if absent := missing(v, required); len(absent) > 0 {
		return mail.Config{}, &MissingError{Vars: absent}
	}

	return mail.Config{
		Host:      v.GetString("SMTP_HOST"),
		Port:      v.GetInt("SMTP_PORT"),
		Username:  v.GetString("SMTP_USERNAME"),
		Password:  v.GetString("SMTP_PASSWORD"),
		Sender:    v.GetString("SMTP_SENDER"),
		Recipient: v.GetString("SMTP_RECIPIENT"),
		UseTLS:    v.GetBool("SMTP_USE_TLS"),
	}, nil
}

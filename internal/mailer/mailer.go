// Package mailer sends service reminder emails over SMTP.
package mailer

import (
	"fmt"
	"net/smtp"
	"os"

	"github.com/sirupsen/logrus"
)

// Config holds SMTP settings, read from the environment.
type Config struct {
	Host     string
	Port     string
	From     string
	Username string
	Password string
}

// ConfigFromEnv reads SMTP_HOST, SMTP_PORT, SMTP_FROM, SMTP_USERNAME and
// SMTP_PASSWORD. An empty host puts the mailer in log-only mode.
func ConfigFromEnv() Config {
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	return Config{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		From:     os.Getenv("SMTP_FROM"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
	}
}

// Mailer sends plain-text mail. When no SMTP host is configured it logs the
// message instead of sending, so the reminder sweep stays runnable in
// development.
type Mailer struct {
	cfg Config
	log *logrus.Logger
}

// New creates a mailer.
func New(cfg Config, log *logrus.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

// Send delivers one plain-text message.
func (m *Mailer) Send(to, subject, body string) error {
	if m.cfg.Host == "" {
		m.log.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("smtp not configured, logging mail instead of sending")
		return nil
	}

	msg := []byte("From: " + m.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := m.cfg.Host + ":" + m.cfg.Port
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// SendYearlyReminder sends the annual calibration reminder for one machine.
func (m *Mailer) SendYearlyReminder(to, customerName, machineID string) error {
	subject := "Annual Service Reminder - Weigh Lanka"
	body := YearlyReminderBody(customerName, machineID)
	return m.Send(to, subject, body)
}

// YearlyReminderBody renders the reminder template.
func YearlyReminderBody(customerName, machineID string) string {
	return "Dear " + customerName + ",\n\n" +
		"This is a kind reminder that your scale/machine (ID: " + machineID + ") " +
		"is due for annual calibration/service.\n" +
		"Please contact Weigh Lanka to schedule the service.\n\n" +
		"Thank you,\n" +
		"Weigh Lanka Service Team."
}

package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// MailSender delivers one plain-text message. Satisfied by mailer.Mailer.
type MailSender interface {
	Send(to, subject, body string) error
}

// EmailHandler exposes a test-send endpoint for verifying SMTP settings
// without waiting for the daily reminder sweep.
type EmailHandler struct {
	sender MailSender
	log    *logrus.Logger
}

// NewEmailHandler creates a new email handler.
func NewEmailHandler(sender MailSender, log *logrus.Logger) *EmailHandler {
	return &EmailHandler{sender: sender, log: log}
}

// Test sends a fixed test message to the ?to= recipient.
func (h *EmailHandler) Test(w http.ResponseWriter, r *http.Request) {
	to := r.URL.Query().Get("to")
	if to == "" {
		respondError(w, http.StatusBadRequest, "A recipient is required: ?to=address")
		return
	}

	err := h.sender.Send(to, "Test Email from Weigh Lanka System", "Email sending is working!")
	if err != nil {
		h.log.WithError(err).WithField("to", to).Error("failed to send test email")
		respondError(w, http.StatusInternalServerError, "Failed to send test email")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Email sent successfully!"})
}

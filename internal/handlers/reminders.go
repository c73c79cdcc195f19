package handlers

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/weighlanka/backend/internal/db"
	"github.com/weighlanka/backend/internal/export"
	"github.com/weighlanka/backend/internal/reminder"
)

// ReminderHandler serves the classified and ranked reminder list.
type ReminderHandler struct {
	customers db.CustomerCollection
	machines  db.MachineCollection
	records   db.ServiceRecordCollection
	log       *logrus.Logger
}

// NewReminderHandler creates a new reminder handler.
func NewReminderHandler(customers db.CustomerCollection, machines db.MachineCollection, records db.ServiceRecordCollection, log *logrus.Logger) *ReminderHandler {
	return &ReminderHandler{
		customers: customers,
		machines:  machines,
		records:   records,
		log:       log,
	}
}

// List returns every record within a reminder window, ranked by urgency.
// Supports ?today=YYYY-MM-DD for deterministic testing.
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.ranked(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load reminders")
		return
	}
	respondJSON(w, http.StatusOK, ranked)
}

// CSV streams the ranked reminders as a CSV download.
func (h *ReminderHandler) CSV(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.ranked(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load reminders")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=reminders.csv")
	if err := export.WriteReminderCSV(w, ranked); err != nil {
		h.log.WithError(err).Error("failed to write reminders csv")
	}
}

func (h *ReminderHandler) ranked(r *http.Request) ([]reminder.Classified, error) {
	today := todayFromRequest(r)

	ctx := r.Context()
	customers, err := h.customers.FindCustomers(ctx)
	if err != nil {
		h.log.WithError(err).Error("failed to load customers for reminders")
		return nil, err
	}
	machines, err := h.machines.FindMachines(ctx)
	if err != nil {
		h.log.WithError(err).Error("failed to load machines for reminders")
		return nil, err
	}
	records, err := h.records.FindServiceRecords(ctx)
	if err != nil {
		h.log.WithError(err).Error("failed to load service records for reminders")
		return nil, err
	}

	return reminder.Rank(reminder.ClassifyAll(today, records, customers, machines)), nil
}

// Health reports service liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
}

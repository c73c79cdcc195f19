package handlers

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/weighlanka/backend/internal/db"
	"github.com/weighlanka/backend/internal/reminder"
)

// Dashboard panels show at most this many entries.
const dashboardPanelSize = 5

// DashboardHandler serves the aggregated dashboard summary.
type DashboardHandler struct {
	customers db.CustomerCollection
	machines  db.MachineCollection
	records   db.ServiceRecordCollection
	log       *logrus.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(customers db.CustomerCollection, machines db.MachineCollection, records db.ServiceRecordCollection, log *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		customers: customers,
		machines:  machines,
		records:   records,
		log:       log,
	}
}

// Summary recomputes the dashboard summary from fresh snapshots on every
// request. The ?today=YYYY-MM-DD override keeps the window math
// deterministic for tests.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	today := todayFromRequest(r)

	ctx := r.Context()
	customers, err := h.customers.FindCustomers(ctx)
	if err != nil {
		h.log.WithError(err).Error("failed to load customers for dashboard")
		respondError(w, http.StatusInternalServerError, "Failed to load dashboard data")
		return
	}
	machines, err := h.machines.FindMachines(ctx)
	if err != nil {
		h.log.WithError(err).Error("failed to load machines for dashboard")
		respondError(w, http.StatusInternalServerError, "Failed to load dashboard data")
		return
	}
	records, err := h.records.FindServiceRecords(ctx)
	if err != nil {
		h.log.WithError(err).Error("failed to load service records for dashboard")
		respondError(w, http.StatusInternalServerError, "Failed to load dashboard data")
		return
	}

	summary := reminder.Aggregate(today, customers, machines, records, dashboardPanelSize)
	respondJSON(w, http.StatusOK, summary)
}

func todayFromRequest(r *http.Request) time.Time {
	if q := r.URL.Query().Get("today"); q != "" {
		if d, ok := reminder.ToCalendarDate(q); ok {
			return d
		}
	}
	return reminder.Truncate(time.Now().UTC())
}

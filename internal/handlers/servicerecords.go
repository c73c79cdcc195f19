package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/weighlanka/backend/internal/db"
	"github.com/weighlanka/backend/internal/export"
	"github.com/weighlanka/backend/internal/models"
	"github.com/weighlanka/backend/internal/reminder"
)

// ServiceRecordHandler handles service record CRUD and the daily report.
type ServiceRecordHandler struct {
	records   db.ServiceRecordCollection
	customers db.CustomerCollection
	machines  db.MachineCollection
	log       *logrus.Logger
}

// NewServiceRecordHandler creates a new service record handler.
func NewServiceRecordHandler(records db.ServiceRecordCollection, customers db.CustomerCollection, machines db.MachineCollection, log *logrus.Logger) *ServiceRecordHandler {
	return &ServiceRecordHandler{
		records:   records,
		customers: customers,
		machines:  machines,
		log:       log,
	}
}

// List returns all service records.
func (h *ServiceRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.FindServiceRecords(r.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list service records")
		respondError(w, http.StatusInternalServerError, "Failed to load service records")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// ListByCustomer returns all service records for one customer.
func (h *ServiceRecordHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["id"]
	records, err := h.records.FindServiceRecordsByCustomerID(r.Context(), customerID)
	if err != nil {
		h.log.WithError(err).Error("failed to list service records by customer")
		respondError(w, http.StatusInternalServerError, "Failed to load service records")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// Create stores a new service record. A missing nextServiceDate defaults to
// one calendar year after the service date.
func (h *ServiceRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var record models.ServiceRecord
	if err := json.Unmarshal(body, &record); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if _, ok := reminder.ToCalendarDate(record.ServiceDate); !ok {
		respondError(w, http.StatusBadRequest, "A valid serviceDate is required")
		return
	}
	if record.NextServiceDate == "" {
		if next, ok := reminder.AddOneYear(record.ServiceDate); ok {
			record.NextServiceDate = next
		}
	}

	created, err := h.records.InsertServiceRecord(r.Context(), record)
	if err != nil {
		h.log.WithError(err).Error("failed to create service record")
		respondError(w, http.StatusInternalServerError, "Failed to create service record")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Get returns one service record by id.
func (h *ServiceRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	record, err := h.records.FindServiceRecordByID(r.Context(), id)
	if err != nil {
		respondError(w, storageStatus(err), "Service record not found")
		return
	}
	respondJSON(w, http.StatusOK, record)
}

// Update replaces a service record.
func (h *ServiceRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var record models.ServiceRecord
	if err := json.Unmarshal(body, &record); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.records.UpdateServiceRecord(r.Context(), id, record); err != nil {
		respondError(w, storageStatus(err), "Failed to update service record")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Service record updated successfully"})
}

// Delete removes a service record.
func (h *ServiceRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.records.DeleteServiceRecord(r.Context(), id); err != nil {
		respondError(w, storageStatus(err), "Failed to delete service record")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Service record deleted successfully"})
}

// Report returns the shaped daily report rows for ?date=YYYY-MM-DD
// (default today).
func (h *ServiceRecordHandler) Report(w http.ResponseWriter, r *http.Request) {
	rows, _, err := h.reportRows(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load report")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// ReportCSV streams the daily report as a CSV download.
func (h *ServiceRecordHandler) ReportCSV(w http.ResponseWriter, r *http.Request) {
	rows, forDate, err := h.reportRows(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load report")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=service-report-%s.csv", reminder.FormatDate(forDate)))
	if err := export.WriteReportCSV(w, rows); err != nil {
		h.log.WithError(err).Error("failed to write report csv")
	}
}

func (h *ServiceRecordHandler) reportRows(r *http.Request) ([]reminder.ReportRow, time.Time, error) {
	forDate := reminder.Truncate(time.Now().UTC())
	if q := r.URL.Query().Get("date"); q != "" {
		if d, ok := reminder.ToCalendarDate(q); ok {
			forDate = d
		}
	}

	ctx := r.Context()
	records, err := h.records.FindServiceRecordsByServiceDate(ctx, reminder.FormatDate(forDate))
	if err != nil {
		return nil, forDate, err
	}
	customers, err := h.customers.FindCustomers(ctx)
	if err != nil {
		return nil, forDate, err
	}
	machines, err := h.machines.FindMachines(ctx)
	if err != nil {
		return nil, forDate, err
	}

	return reminder.ToReportRows(records, customers, machines, forDate), forDate, nil
}

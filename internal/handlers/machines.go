package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/weighlanka/backend/internal/db"
	"github.com/weighlanka/backend/internal/models"
)

// MachineHandler handles machine CRUD requests.
type MachineHandler struct {
	machines db.MachineCollection
	log      *logrus.Logger
}

// NewMachineHandler creates a new machine handler.
func NewMachineHandler(machines db.MachineCollection, log *logrus.Logger) *MachineHandler {
	return &MachineHandler{machines: machines, log: log}
}

// List returns all machines.
func (h *MachineHandler) List(w http.ResponseWriter, r *http.Request) {
	machines, err := h.machines.FindMachines(r.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list machines")
		respondError(w, http.StatusInternalServerError, "Failed to load machines")
		return
	}
	respondJSON(w, http.StatusOK, machines)
}

// ListByCustomer returns all machines installed at one customer site.
func (h *MachineHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["id"]
	machines, err := h.machines.FindMachinesByCustomerID(r.Context(), customerID)
	if err != nil {
		h.log.WithError(err).Error("failed to list machines by customer")
		respondError(w, http.StatusInternalServerError, "Failed to load machines")
		return
	}
	respondJSON(w, http.StatusOK, machines)
}

// Create stores a new machine.
func (h *MachineHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var machine models.Machine
	if err := json.Unmarshal(body, &machine); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if machine.CustomerID == "" {
		respondError(w, http.StatusBadRequest, "Customer id is required")
		return
	}

	created, err := h.machines.InsertMachine(r.Context(), machine)
	if err != nil {
		h.log.WithError(err).Error("failed to create machine")
		respondError(w, http.StatusInternalServerError, "Failed to create machine")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Get returns one machine by id.
func (h *MachineHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	machine, err := h.machines.FindMachineByID(r.Context(), id)
	if err != nil {
		respondError(w, storageStatus(err), "Machine not found")
		return
	}
	respondJSON(w, http.StatusOK, machine)
}

// Update replaces a machine.
func (h *MachineHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var machine models.Machine
	if err := json.Unmarshal(body, &machine); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.machines.UpdateMachine(r.Context(), id, machine); err != nil {
		respondError(w, storageStatus(err), "Failed to update machine")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Machine updated successfully"})
}

// Delete removes a machine.
func (h *MachineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.machines.DeleteMachine(r.Context(), id); err != nil {
		respondError(w, storageStatus(err), "Failed to delete machine")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Machine deleted successfully"})
}

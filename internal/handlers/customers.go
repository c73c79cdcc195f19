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

// CustomerHandler handles customer CRUD requests.
type CustomerHandler struct {
	customers db.CustomerCollection
	log       *logrus.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customers db.CustomerCollection, log *logrus.Logger) *CustomerHandler {
	return &CustomerHandler{customers: customers, log: log}
}

// List returns all customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.FindCustomers(r.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list customers")
		respondError(w, http.StatusInternalServerError, "Failed to load customers")
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

// Create stores a new customer.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var customer models.Customer
	if err := json.Unmarshal(body, &customer); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if customer.CustomerName == "" {
		respondError(w, http.StatusBadRequest, "Customer name is required")
		return
	}

	created, err := h.customers.InsertCustomer(r.Context(), customer)
	if err != nil {
		h.log.WithError(err).Error("failed to create customer")
		respondError(w, http.StatusInternalServerError, "Failed to create customer")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Get returns one customer by id.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	customer, err := h.customers.FindCustomerByID(r.Context(), id)
	if err != nil {
		respondError(w, storageStatus(err), "Customer not found")
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

// Update replaces a customer.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var customer models.Customer
	if err := json.Unmarshal(body, &customer); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.customers.UpdateCustomer(r.Context(), id, customer); err != nil {
		respondError(w, storageStatus(err), "Failed to update customer")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Customer updated successfully"})
}

// Delete removes a customer.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.customers.DeleteCustomer(r.Context(), id); err != nil {
		respondError(w, storageStatus(err), "Failed to delete customer")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted successfully"})
}

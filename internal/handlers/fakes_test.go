package handlers

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/weighlanka/backend/internal/db"
	"github.com/weighlanka/backend/internal/models"
)

var errStorage = errors.New("storage unavailable")

// In-memory fakes behind the db interfaces so handlers can be exercised
// without a running MongoDB.

type fakeCustomerCollection struct {
	customers []models.Customer
	failAll   bool
}

func (f *fakeCustomerCollection) InsertCustomer(_ context.Context, c models.Customer) (models.Customer, error) {
	if f.failAll {
		return models.Customer{}, errStorage
	}
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	f.customers = append(f.customers, c)
	return c, nil
}

func (f *fakeCustomerCollection) FindCustomers(_ context.Context) ([]models.Customer, error) {
	if f.failAll {
		return nil, errStorage
	}
	return f.customers, nil
}

func (f *fakeCustomerCollection) FindCustomerByID(_ context.Context, id string) (*models.Customer, error) {
	if f.failAll {
		return nil, errStorage
	}
	for _, c := range f.customers {
		if c.ID.Hex() == id {
			return &c, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeCustomerCollection) UpdateCustomer(_ context.Context, id string, customer models.Customer) error {
	if f.failAll {
		return errStorage
	}
	for i, c := range f.customers {
		if c.ID.Hex() == id {
			customer.ID = c.ID
			f.customers[i] = customer
			return nil
		}
	}
	return db.ErrNotFound
}

func (f *fakeCustomerCollection) DeleteCustomer(_ context.Context, id string) error {
	if f.failAll {
		return errStorage
	}
	for i, c := range f.customers {
		if c.ID.Hex() == id {
			f.customers = append(f.customers[:i], f.customers[i+1:]...)
			return nil
		}
	}
	return db.ErrNotFound
}

type fakeMachineCollection struct {
	machines []models.Machine
}

func (f *fakeMachineCollection) InsertMachine(_ context.Context, m models.Machine) (models.Machine, error) {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	f.machines = append(f.machines, m)
	return m, nil
}

func (f *fakeMachineCollection) FindMachines(_ context.Context) ([]models.Machine, error) {
	return f.machines, nil
}

func (f *fakeMachineCollection) FindMachineByID(_ context.Context, id string) (*models.Machine, error) {
	for _, m := range f.machines {
		if m.ID.Hex() == id {
			return &m, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeMachineCollection) FindMachinesByCustomerID(_ context.Context, customerID string) ([]models.Machine, error) {
	out := []models.Machine{}
	for _, m := range f.machines {
		if m.CustomerID == customerID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMachineCollection) UpdateMachine(_ context.Context, id string, machine models.Machine) error {
	for i, m := range f.machines {
		if m.ID.Hex() == id {
			machine.ID = m.ID
			f.machines[i] = machine
			return nil
		}
	}
	return db.ErrNotFound
}

func (f *fakeMachineCollection) DeleteMachine(_ context.Context, id string) error {
	for i, m := range f.machines {
		if m.ID.Hex() == id {
			f.machines = append(f.machines[:i], f.machines[i+1:]...)
			return nil
		}
	}
	return db.ErrNotFound
}

type fakeServiceRecordCollection struct {
	records []models.ServiceRecord
}

func (f *fakeServiceRecordCollection) InsertServiceRecord(_ context.Context, rec models.ServiceRecord) (models.ServiceRecord, error) {
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeServiceRecordCollection) FindServiceRecords(_ context.Context) ([]models.ServiceRecord, error) {
	return f.records, nil
}

func (f *fakeServiceRecordCollection) FindServiceRecordByID(_ context.Context, id string) (*models.ServiceRecord, error) {
	for _, rec := range f.records {
		if rec.ID.Hex() == id {
			return &rec, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeServiceRecordCollection) FindServiceRecordsByCustomerID(_ context.Context, customerID string) ([]models.ServiceRecord, error) {
	return f.filter(func(rec models.ServiceRecord) bool { return rec.CustomerID == customerID }), nil
}

func (f *fakeServiceRecordCollection) FindServiceRecordsByMachineID(_ context.Context, machineID string) ([]models.ServiceRecord, error) {
	return f.filter(func(rec models.ServiceRecord) bool { return rec.MachineID == machineID }), nil
}

func (f *fakeServiceRecordCollection) FindServiceRecordsByServiceDate(_ context.Context, date string) ([]models.ServiceRecord, error) {
	return f.filter(func(rec models.ServiceRecord) bool { return rec.ServiceDate == date }), nil
}

func (f *fakeServiceRecordCollection) FindServiceRecordsByNextServiceDate(_ context.Context, date string) ([]models.ServiceRecord, error) {
	return f.filter(func(rec models.ServiceRecord) bool { return rec.NextServiceDate == date }), nil
}

func (f *fakeServiceRecordCollection) filter(keep func(models.ServiceRecord) bool) []models.ServiceRecord {
	out := []models.ServiceRecord{}
	for _, rec := range f.records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (f *fakeServiceRecordCollection) UpdateServiceRecord(_ context.Context, id string, record models.ServiceRecord) error {
	for i, rec := range f.records {
		if rec.ID.Hex() == id {
			record.ID = rec.ID
			f.records[i] = record
			return nil
		}
	}
	return db.ErrNotFound
}

func (f *fakeServiceRecordCollection) DeleteServiceRecord(_ context.Context, id string) error {
	for i, rec := range f.records {
		if rec.ID.Hex() == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return db.ErrNotFound
}

type fakeAdminCollection struct {
	admins map[string]models.Admin
}

func (f *fakeAdminCollection) FindAdminByUsername(_ context.Context, username string) (*models.Admin, error) {
	a, ok := f.admins[username]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &a, nil
}

func (f *fakeAdminCollection) UpsertAdmin(_ context.Context, admin models.Admin) error {
	if f.admins == nil {
		f.admins = map[string]models.Admin{}
	}
	existing, ok := f.admins[admin.Username]
	if ok {
		existing.PasswordHash = admin.PasswordHash
		f.admins[admin.Username] = existing
		return nil
	}
	admin.ID = primitive.NewObjectID()
	f.admins[admin.Username] = admin
	return nil
}

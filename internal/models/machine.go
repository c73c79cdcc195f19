package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Machine represents an installed weighing machine. Dates are carried as
// "YYYY-MM-DD" strings end to end; the reminder engine parses them
// defensively. The machine's own NextServiceDate is informational only,
// the authoritative due date comes from the service record.
type Machine struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID      string             `bson:"customer_id" json:"customerId"`
	Model           string             `bson:"model" json:"model"`
	SerialNumber    string             `bson:"serial_number" json:"serialNumber"`
	Capacity        string             `bson:"capacity" json:"capacity"`
	RegNo           string             `bson:"reg_no" json:"regNo"`
	IDNo            string             `bson:"id_no" json:"idNo"`
	InstalledDate   string             `bson:"installed_date,omitempty" json:"installedDate,omitempty"`
	Warranty        string             `bson:"warranty,omitempty" json:"warranty,omitempty"`
	LastServiceDate string             `bson:"last_service_date,omitempty" json:"lastServiceDate,omitempty"`
	NextServiceDate string             `bson:"next_service_date,omitempty" json:"nextServiceDate,omitempty"`
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceRecord represents one maintenance visit. NextServiceDate drives
// the reminder classification and the daily email sweep.
type ServiceRecord struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID      string             `bson:"customer_id" json:"customerId"`
	MachineID       string             `bson:"machine_id" json:"machineId"`
	ServiceDate     string             `bson:"service_date" json:"serviceDate"`
	NextServiceDate string             `bson:"next_service_date" json:"nextServiceDate"`
	TechnicianName  string             `bson:"technician_name" json:"technicianName"`
	Remarks         string             `bson:"remarks,omitempty" json:"remarks,omitempty"`
	ServiceCost     float64            `bson:"service_cost" json:"serviceCost"`
	VisitNo         int                `bson:"visit_no" json:"visitNo"`
	InvoiceNo       string             `bson:"invoice_no" json:"invoiceNo"`
}

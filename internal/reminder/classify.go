package reminder

import (
	"fmt"
	"time"

	"github.com/weighlanka/backend/internal/models"
)

// Bucket classifies how a next-service date relates to today.
type Bucket string

const (
	BucketOverdue Bucket = "overdue"
	BucketUrgent  Bucket = "urgent"
	BucketDueSoon Bucket = "dueSoon"
)

// Urgency windows in days. A diff beyond the due-soon horizon is not a
// bucket: the record is excluded entirely.
const (
	urgentWindowDays  = 30
	dueSoonWindowDays = 90
)

// weight orders buckets for ranking: overdue before urgent before due-soon.
func (b Bucket) weight() int {
	switch b {
	case BucketOverdue:
		return 0
	case BucketUrgent:
		return 1
	default:
		return 2
	}
}

// Classified is a service record joined with its resolved customer and
// machine fields plus the computed urgency bucket.
type Classified struct {
	RecordID        string `json:"id"`
	InvoiceNo       string `json:"invoiceNo"`
	CustomerName    string `json:"customerName"`
	Phone           string `json:"phone"`
	MachineLabel    string `json:"machineLabel,omitempty"`
	Capacity        string `json:"capacity,omitempty"`
	NextServiceDate string `json:"nextServiceDate"`
	DaysDiff        int    `json:"daysDiff"`
	Bucket          Bucket `json:"status"`
	Label           string `json:"label"`
}

// Classify buckets a single record's next-due date relative to today.
// It returns false when the record has no parseable nextServiceDate or the
// due date is beyond the 90-day horizon; such records carry no bucket.
func Classify(today time.Time, rec models.ServiceRecord) (Classified, bool) {
	due, ok := ToCalendarDate(rec.NextServiceDate)
	if !ok {
		return Classified{}, false
	}
	diff := daysBetweenDates(today, due)

	var bucket Bucket
	switch {
	case diff < 0:
		bucket = BucketOverdue
	case diff <= urgentWindowDays:
		bucket = BucketUrgent
	case diff <= dueSoonWindowDays:
		bucket = BucketDueSoon
	default:
		return Classified{}, false
	}

	invoice := rec.InvoiceNo
	if invoice == "" {
		invoice = "N/A"
	}

	return Classified{
		RecordID:        rec.ID.Hex(),
		InvoiceNo:       invoice,
		NextServiceDate: FormatDate(due),
		DaysDiff:        diff,
		Bucket:          bucket,
		Label:           label(bucket, diff),
	}, true
}

func label(b Bucket, diff int) string {
	days := diff
	if days < 0 {
		days = -days
	}
	switch b {
	case BucketOverdue:
		return fmt.Sprintf("OVERDUE (%d days)", days)
	case BucketUrgent:
		return fmt.Sprintf("URGENT (%d days)", days)
	default:
		return fmt.Sprintf("DUE SOON (%d days)", days)
	}
}

// ClassifyAll joins every record against the customer and machine snapshots,
// classifies it, and drops records outside all windows. An unresolved
// customerId or machineId falls back to the raw id string rather than
// failing the pass.
func ClassifyAll(today time.Time, records []models.ServiceRecord, customers []models.Customer, machines []models.Machine) []Classified {
	custByID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		custByID[c.ID.Hex()] = c
	}
	machByID := make(map[string]models.Machine, len(machines))
	for _, m := range machines {
		machByID[m.ID.Hex()] = m
	}

	out := make([]Classified, 0, len(records))
	for _, rec := range records {
		cl, ok := Classify(today, rec)
		if !ok {
			continue
		}
		if cust, found := custByID[rec.CustomerID]; found {
			cl.CustomerName = cust.CustomerName
			cl.Phone = cust.Phone
		} else {
			cl.CustomerName = rec.CustomerID
		}
		if mach, found := machByID[rec.MachineID]; found {
			cl.MachineLabel = machineLabel(mach)
			cl.Capacity = mach.Capacity
		} else {
			cl.MachineLabel = rec.MachineID
		}
		out = append(out, cl)
	}
	return out
}

func machineLabel(m models.Machine) string {
	if m.Model != "" {
		return m.Model
	}
	if m.SerialNumber != "" {
		return m.SerialNumber
	}
	return "Machine"
}

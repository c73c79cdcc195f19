package reminder

import (
	"sort"
	"time"

	"github.com/weighlanka/backend/internal/models"
)

// OverdueEntry is an overdue record annotated for the dashboard panel.
type OverdueEntry struct {
	RecordID        string `json:"id"`
	CustomerName    string `json:"customerName"`
	MachineLabel    string `json:"machineLabel"`
	NextServiceDate string `json:"nextServiceDate"`
	DaysOverdue     int    `json:"daysOverdue"`
}

// RecentService is a recently performed service annotated for the dashboard.
type RecentService struct {
	RecordID       string `json:"id"`
	ServiceDate    string `json:"serviceDate"`
	CustomerName   string `json:"customerName"`
	MachineLabel   string `json:"machineLabel"`
	TechnicianName string `json:"technicianName"`
	InvoiceNo      string `json:"invoiceNo"`
}

// Summary is the dashboard view model. It is recomputed in full on every
// call; the aggregator holds no state between calls.
type Summary struct {
	TotalCustomers      int             `json:"totalCustomers"`
	TotalMachines       int             `json:"totalMachines"`
	TotalServiceRecords int             `json:"totalServiceRecords"`
	UpcomingCount       int             `json:"upcomingCount"`
	OverdueCount        int             `json:"overdueCount"`
	TopOverdue          []OverdueEntry  `json:"topOverdue"`
	RecentServices      []RecentService `json:"recentServices"`
}

// Aggregate builds the dashboard summary from full collection snapshots.
// Records with an unparseable nextServiceDate are neither counted overdue
// nor upcoming; records due more than 90 days out are ignored. topK bounds
// both the top-overdue and recent-services panels.
func Aggregate(today time.Time, customers []models.Customer, machines []models.Machine, records []models.ServiceRecord, topK int) Summary {
	customerNames := make(map[string]string, len(customers))
	for _, c := range customers {
		name := c.CustomerName
		if name == "" {
			name = "Unknown"
		}
		customerNames[c.ID.Hex()] = name
	}
	machineLabels := make(map[string]string, len(machines))
	for _, m := range machines {
		machineLabels[m.ID.Hex()] = machineLabel(m)
	}

	resolveCustomer := func(id string) string {
		if name, ok := customerNames[id]; ok {
			return name
		}
		return "Unknown"
	}
	resolveMachine := func(id string) string {
		if l, ok := machineLabels[id]; ok {
			return l
		}
		return "Unknown"
	}

	summary := Summary{
		TotalCustomers:      len(customers),
		TotalMachines:       len(machines),
		TotalServiceRecords: len(records),
	}

	var overdue []OverdueEntry
	for _, rec := range records {
		due, ok := ToCalendarDate(rec.NextServiceDate)
		if !ok {
			continue
		}
		diff := daysBetweenDates(today, due)
		switch {
		case diff < 0:
			summary.OverdueCount++
			overdue = append(overdue, OverdueEntry{
				RecordID:        rec.ID.Hex(),
				CustomerName:    resolveCustomer(rec.CustomerID),
				MachineLabel:    resolveMachine(rec.MachineID),
				NextServiceDate: FormatDate(due),
				DaysOverdue:     -diff,
			})
		case diff <= dueSoonWindowDays:
			summary.UpcomingCount++
		}
	}

	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].DaysOverdue > overdue[j].DaysOverdue
	})
	if len(overdue) > topK {
		overdue = overdue[:topK]
	}
	summary.TopOverdue = overdue

	summary.RecentServices = recentServices(records, resolveCustomer, resolveMachine, topK)
	return summary
}

// recentServices sorts records by serviceDate descending, unparseable dates
// last, and annotates the first k.
func recentServices(records []models.ServiceRecord, resolveCustomer, resolveMachine func(string) string, k int) []RecentService {
	sorted := make([]models.ServiceRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, oki := ToCalendarDate(sorted[i].ServiceDate)
		dj, okj := ToCalendarDate(sorted[j].ServiceDate)
		if !oki {
			return false
		}
		if !okj {
			return true
		}
		return di.After(dj)
	})
	if len(sorted) > k {
		sorted = sorted[:k]
	}

	out := make([]RecentService, 0, len(sorted))
	for _, rec := range sorted {
		date := ""
		if d, ok := ToCalendarDate(rec.ServiceDate); ok {
			date = FormatDate(d)
		}
		out = append(out, RecentService{
			RecordID:       rec.ID.Hex(),
			ServiceDate:    date,
			CustomerName:   resolveCustomer(rec.CustomerID),
			MachineLabel:   resolveMachine(rec.MachineID),
			TechnicianName: rec.TechnicianName,
			InvoiceNo:      rec.InvoiceNo,
		})
	}
	return out
}

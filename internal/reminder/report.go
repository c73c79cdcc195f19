package reminder

import (
	"time"

	"github.com/weighlanka/backend/internal/models"
)

// ReportRow is one line of the daily service report. The same rows feed
// the on-screen table, the JSON endpoint and the CSV export.
type ReportRow struct {
	No             int    `json:"no"`
	Date           string `json:"date"`
	InvoiceNo      string `json:"invoiceNo"`
	NameAndAddress string `json:"nameAndAddress"`
	Location       string `json:"location"`
	Tel            string `json:"tel"`
	Model          string `json:"model"`
	SerialNo       string `json:"serialNo"`
	Cap            string `json:"cap"`
	RegNo          string `json:"regNo"`
	IDNo           string `json:"idNo"`
	ServicedBy     string `json:"servicedBy"`
}

// ToReportRows builds the daily report for forDate: records whose
// serviceDate calendar-equals forDate, numbered 1-based in input order,
// joined against customers and machines. A missing join resolves every
// derived field to the raw id string instead of leaving it blank.
func ToReportRows(records []models.ServiceRecord, customers []models.Customer, machines []models.Machine, forDate time.Time) []ReportRow {
	custByID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		custByID[c.ID.Hex()] = c
	}
	machByID := make(map[string]models.Machine, len(machines))
	for _, m := range machines {
		machByID[m.ID.Hex()] = m
	}

	target := Truncate(forDate)
	rows := make([]ReportRow, 0)
	for _, rec := range records {
		d, ok := ToCalendarDate(rec.ServiceDate)
		if !ok || !d.Equal(target) {
			continue
		}

		row := ReportRow{
			No:         len(rows) + 1,
			Date:       FormatDate(d),
			InvoiceNo:  rec.InvoiceNo,
			ServicedBy: rec.TechnicianName,
		}

		if cust, found := custByID[rec.CustomerID]; found {
			row.NameAndAddress = cust.CustomerName + ", " + cust.Address
			row.Location = cust.Location
			row.Tel = cust.Phone
		} else {
			row.NameAndAddress = rec.CustomerID
			row.Location = rec.CustomerID
			row.Tel = rec.CustomerID
		}

		if mach, found := machByID[rec.MachineID]; found {
			row.Model = mach.Model
			row.SerialNo = mach.SerialNumber
			row.Cap = mach.Capacity
			row.RegNo = mach.RegNo
			row.IDNo = mach.IDNo
		} else {
			row.Model = rec.MachineID
			row.SerialNo = rec.MachineID
			row.Cap = rec.MachineID
			row.RegNo = rec.MachineID
			row.IDNo = rec.MachineID
		}

		rows = append(rows, row)
	}
	return rows
}

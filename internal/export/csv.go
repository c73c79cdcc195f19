// Package export renders report and reminder rows as CSV. The columns
// mirror the on-screen tables exactly; both sinks share one row model.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/weighlanka/backend/internal/reminder"
)

var reportHeader = []string{
	"DATE", "NO", "INV NO", "NAME & ADDRESS", "LOCATION", "TEL",
	"MODEL", "SERIAL NO", "CAP", "REG NO", "ID NO", "Serviced By",
}

// WriteReportCSV writes the daily report rows as CSV. Fields containing
// commas or quotes are quoted per RFC 4180 by the csv writer.
func WriteReportCSV(w io.Writer, rows []reminder.ReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Date,
			strconv.Itoa(row.No),
			row.InvoiceNo,
			row.NameAndAddress,
			row.Location,
			row.Tel,
			row.Model,
			row.SerialNo,
			row.Cap,
			row.RegNo,
			row.IDNo,
			row.ServicedBy,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var reminderHeader = []string{"Invoice", "Customer", "Phone", "Next Due", "Status"}

// WriteReminderCSV writes the ranked reminder list as CSV.
func WriteReminderCSV(w io.Writer, reminders []reminder.Classified) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reminderHeader); err != nil {
		return err
	}
	for _, rem := range reminders {
		record := []string{
			rem.InvoiceNo,
			rem.CustomerName,
			rem.Phone,
			rem.NextServiceDate,
			rem.Label,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

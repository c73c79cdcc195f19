// Package scheduler runs the daily reminder sweep: every record whose next
// service date falls on the current day produces one reminder email.
package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/weighlanka/backend/internal/db"
	"github.com/weighlanka/backend/internal/reminder"
)

// Sender delivers one reminder email. Satisfied by mailer.Mailer.
type Sender interface {
	SendYearlyReminder(to, customerName, machineID string) error
}

// Scheduler fires the sweep once a day at a fixed hour.
type Scheduler struct {
	records   db.ServiceRecordCollection
	customers db.CustomerCollection
	machines  db.MachineCollection
	sender    Sender
	hour      int
	log       *logrus.Logger
}

// New creates a scheduler firing daily at the given hour (0-23).
func New(records db.ServiceRecordCollection, customers db.CustomerCollection, machines db.MachineCollection, sender Sender, hour int, log *logrus.Logger) *Scheduler {
	if hour < 0 || hour > 23 {
		hour = 8
	}
	return &Scheduler{
		records:   records,
		customers: customers,
		machines:  machines,
		sender:    sender,
		hour:      hour,
		log:       log,
	}
}

// Run blocks until ctx is cancelled, sweeping once per day at the
// configured hour.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		next := nextRunAfter(time.Now(), s.hour)
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case now := <-timer.C:
			today := reminder.FormatDate(now.UTC())
			if err := s.Sweep(ctx, today); err != nil {
				s.log.WithError(err).Error("reminder sweep failed")
			}
		}
	}
}

// nextRunAfter returns the next occurrence of the fire hour strictly after
// now.
func nextRunAfter(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Sweep sends one reminder per record due on the given day. Records with
// unresolved references or customers without an email address are skipped
// and logged, never fatal.
func (s *Scheduler) Sweep(ctx context.Context, today string) error {
	due, err := s.records.FindServiceRecordsByNextServiceDate(ctx, today)
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"date":  today,
		"count": len(due),
	}).Info("checking yearly service reminders")

	for _, rec := range due {
		customer, err := s.customers.FindCustomerByID(ctx, rec.CustomerID)
		if err != nil {
			s.log.WithField("customer_id", rec.CustomerID).Warn("customer not found for reminder")
			continue
		}
		if customer.Email == "" {
			s.log.WithField("customer_id", rec.CustomerID).Warn("customer has no email address")
			continue
		}

		machine, err := s.machines.FindMachineByID(ctx, rec.MachineID)
		if err != nil {
			s.log.WithField("machine_id", rec.MachineID).Warn("machine not found for reminder")
			continue
		}

		if err := s.sender.SendYearlyReminder(customer.Email, customer.CustomerName, machine.ID.Hex()); err != nil {
			s.log.WithError(err).WithField("to", customer.Email).Error("failed to send reminder email")
			continue
		}

		s.log.WithFields(logrus.Fields{
			"to":    customer.Email,
			"model": machine.Model,
		}).Info("reminder email sent")
	}
	return nil
}

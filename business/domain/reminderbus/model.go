package reminderbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/granazap/painel/business/types/entrykind"
	"github.com/granazap/painel/business/types/money"
)

// Reminder represents a payment the tenant wants to be reminded about.
type Reminder struct {
	ID           uuid.UUID
	Title        string
	Amount       money.Money
	DueDate      time.Time
	IsPaid       bool
	PaidAt       *time.Time
	CategoryName string
	Kind         entrykind.Kind
}

// Buckets partitions reminders by payment state relative to a moment in
// time.
type Buckets struct {
	Pending []Reminder
	Overdue []Reminder
	Paid    []Reminder
}

// Classify partitions the reminders: paid ones regardless of date, unpaid
// ones split on whether the due date has already passed.
func Classify(reminders []Reminder, now time.Time) Buckets {
	var b Buckets

	for _, r := range reminders {
		switch {
		case r.IsPaid:
			b.Paid = append(b.Paid, r)

		case r.DueDate.Before(now):
			b.Overdue = append(b.Overdue, r)

		default:
			b.Pending = append(b.Pending, r)
		}
	}

	return b
}

package reminderapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/granazap/painel/app/sdk/errs"
	"github.com/granazap/painel/business/domain/reminderbus"
)

// =============================================================================
// Reminder (Output)
// =============================================================================

// Reminder represents a payment reminder.
type Reminder struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Amount       string `json:"amount"`
	DueDate      string `json:"dueDate"`
	IsPaid       bool   `json:"isPaid"`
	PaidAt       string `json:"paidAt,omitempty"`
	CategoryName string `json:"categoryName"`
	Kind         string `json:"kind"`
}

func toAppReminder(bus reminderbus.Reminder) Reminder {
	app := Reminder{
		ID:           bus.ID.String(),
		Title:        bus.Title,
		Amount:       bus.Amount.String(),
		DueDate:      bus.DueDate.Format("2006-01-02"),
		IsPaid:       bus.IsPaid,
		CategoryName: bus.CategoryName,
		Kind:         bus.Kind.String(),
	}

	if bus.PaidAt != nil {
		app.PaidAt = bus.PaidAt.Format(time.RFC3339)
	}

	return app
}

func toAppReminders(reminders []reminderbus.Reminder) []Reminder {
	app := make([]Reminder, len(reminders))
	for i, r := range reminders {
		app[i] = toAppReminder(r)
	}
	return app
}

// Buckets represents reminders partitioned by payment state.
type Buckets struct {
	Pending []Reminder `json:"pending"`
	Overdue []Reminder `json:"overdue"`
	Paid    []Reminder `json:"paid"`
}

// Encode implements the web.Encoder interface.
func (b Buckets) Encode() ([]byte, string, error) {
	data, err := json.Marshal(b)
	return data, "application/json", err
}

func toAppBuckets(bus reminderbus.Buckets) Buckets {
	return Buckets{
		Pending: toAppReminders(bus.Pending),
		Overdue: toAppReminders(bus.Overdue),
		Paid:    toAppReminders(bus.Paid),
	}
}

// =============================================================================
// MarkPaid (Input)
// =============================================================================

// MarkPaid defines the data needed to mark a reminder as paid.
type MarkPaid struct {
	Title string `json:"title" validate:"required"`
}

// Decode implements the web.Decoder interface.
func (app *MarkPaid) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app MarkPaid) Validate() error {
	if err := errs.Check(app); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	return nil
}

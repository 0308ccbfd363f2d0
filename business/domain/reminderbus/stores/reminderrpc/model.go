package reminderrpc

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/granazap/painel/business/domain/reminderbus"
	"github.com/granazap/painel/business/types/entrykind"
	"github.com/granazap/painel/business/types/money"
)

// reminderRow represents the wire shape of a reminder record.
type reminderRow struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Amount       string  `json:"amount"`
	DueDate      string  `json:"due_date"`
	IsPaid       bool    `json:"is_paid"`
	PaidAt       *string `json:"paid_at"`
	CategoryName *string `json:"category_name"`
	Type         string  `json:"type"`
}

func toBusReminder(row reminderRow) (reminderbus.Reminder, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return reminderbus.Reminder{}, fmt.Errorf("parse id: %w", err)
	}

	kind, err := entrykind.Parse(row.Type)
	if err != nil {
		return reminderbus.Reminder{}, fmt.Errorf("parse type: %w", err)
	}

	dueDate, err := parseDate(row.DueDate)
	if err != nil {
		return reminderbus.Reminder{}, fmt.Errorf("parse due_date: %w", err)
	}

	var paidAt *time.Time
	if row.PaidAt != nil {
		t, err := parseDate(*row.PaidAt)
		if err != nil {
			return reminderbus.Reminder{}, fmt.Errorf("parse paid_at: %w", err)
		}
		paidAt = &t
	}

	var categoryName string
	if row.CategoryName != nil {
		categoryName = *row.CategoryName
	}

	return reminderbus.Reminder{
		ID:           id,
		Title:        row.Title,
		Amount:       money.Parse(row.Amount),
		DueDate:      dueDate,
		IsPaid:       row.IsPaid,
		PaidAt:       paidAt,
		CategoryName: categoryName,
		Kind:         kind,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", value)
}

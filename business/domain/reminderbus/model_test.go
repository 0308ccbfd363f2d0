package reminderbus

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	paidAt := now.Add(-24 * time.Hour)
	reminders := []Reminder{
		{Title: "Aluguel", DueDate: now.Add(5 * 24 * time.Hour)},
		{Title: "Luz", DueDate: now.Add(-2 * 24 * time.Hour)},
		{Title: "Internet", DueDate: now.Add(-10 * 24 * time.Hour), IsPaid: true, PaidAt: &paidAt},
		{Title: "Agua", DueDate: now.Add(24 * time.Hour)},
	}

	b := Classify(reminders, now)

	if len(b.Pending) != 2 {
		t.Errorf("pending = %d, want 2", len(b.Pending))
	}
	if len(b.Overdue) != 1 || b.Overdue[0].Title != "Luz" {
		t.Errorf("overdue = %v, want [Luz]", titles(b.Overdue))
	}
	if len(b.Paid) != 1 || b.Paid[0].Title != "Internet" {
		t.Errorf("paid = %v, want [Internet]", titles(b.Paid))
	}
}

func TestClassifyPaidOverdueIsPaid(t *testing.T) {
	now := time.Now()

	// A paid reminder past its due date belongs to paid, not overdue.
	b := Classify([]Reminder{{Title: "Cartao", DueDate: now.Add(-time.Hour), IsPaid: true}}, now)

	if len(b.Paid) != 1 || len(b.Overdue) != 0 {
		t.Errorf("paid=%d overdue=%d, want 1/0", len(b.Paid), len(b.Overdue))
	}
}

func TestClassifyEmpty(t *testing.T) {
	b := Classify(nil, time.Now())

	if len(b.Pending)+len(b.Overdue)+len(b.Paid) != 0 {
		t.Error("empty input should produce empty buckets")
	}
}

func titles(reminders []Reminder) []string {
	out := make([]string, len(reminders))
	for i, r := range reminders {
		out[i] = r.Title
	}
	return out
}

// Package reminderrpc provides reminder access through the remote backend.
package reminderrpc

import (
	"context"
	"fmt"

	"github.com/granazap/painel/business/domain/reminderbus"
	"github.com/granazap/painel/business/sdk/rpc"
	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/foundation/logger"
)

// Store manages reminder calls against the remote backend.
type Store struct {
	log    *logger.Logger
	client *rpc.Client
}

// NewStore constructs the api for data access.
func NewStore(log *logger.Logger, client *rpc.Client) *Store {
	return &Store{
		log:    log,
		client: client,
	}
}

// Query fetches the upcoming reminders for the tenant.
func (s *Store) Query(ctx context.Context, tenantPhone phone.Phone) ([]reminderbus.Reminder, error) {
	args := struct {
		Phone string `json:"p_phone"`
	}{
		Phone: tenantPhone.String(),
	}

	raw, err := s.client.Call(ctx, "get_upcoming_reminders", args)
	if err != nil {
		return nil, err
	}

	rows, err := rpc.DecodeRows[reminderRow](raw)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	reminders := make([]reminderbus.Reminder, 0, len(rows))
	for _, row := range rows {
		r, err := toBusReminder(row)
		if err != nil {
			return nil, fmt.Errorf("tobus: %w", err)
		}
		reminders = append(reminders, r)
	}

	return reminders, nil
}

// MarkPaid marks the reminder with the specified title as paid.
func (s *Store) MarkPaid(ctx context.Context, tenantPhone phone.Phone, title string) error {
	args := struct {
		Phone string `json:"p_phone"`
		Title string `json:"p_title"`
	}{
		Phone: tenantPhone.String(),
		Title: title,
	}

	if _, err := s.client.Call(ctx, "mark_reminder_paid_by_title", args); err != nil {
		return err
	}

	return nil
}

package tenantrpc

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/granazap/painel/business/domain/tenantbus"
	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/business/types/tenantstatus"
)

// tenantRow represents the wire shape of a tenant record.
type tenantRow struct {
	ID     string `json:"id"`
	Phone  string `json:"phone"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func toBusTenant(row tenantRow) (tenantbus.Tenant, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return tenantbus.Tenant{}, fmt.Errorf("parse id: %w", err)
	}

	ph, err := phone.Parse(row.Phone)
	if err != nil {
		return tenantbus.Tenant{}, fmt.Errorf("parse phone: %w", err)
	}

	status, err := tenantstatus.Parse(row.Status)
	if err != nil {
		return tenantbus.Tenant{}, fmt.Errorf("parse status: %w", err)
	}

	return tenantbus.Tenant{
		ID:     id,
		Phone:  ph,
		Name:   row.Name,
		Status: status,
	}, nil
}

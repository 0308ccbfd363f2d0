package tenantbus

import (
	"github.com/google/uuid"
	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/business/types/tenantstatus"
)

// Tenant represents the billing account a user belongs to. Exactly one
// tenant exists per authenticated user in the steady state.
type Tenant struct {
	ID     uuid.UUID
	Phone  phone.Phone
	Name   string
	Status tenantstatus.Status
}

package authbus

import (
	"github.com/granazap/painel/business/domain/tenantbus"
	"github.com/granazap/painel/business/sdk/session"
)

// State is the lifecycle record consumers read. While Loading is true the
// other fields must not be trusted as final, even when User is already set:
// the provider may deliver an intermediate signed-in notification before the
// canonical initial one.
type State struct {
	User    *session.User
	Session *session.Session
	Tenant  *tenantbus.Tenant
	Loading bool
	Error   string
}

// TenantPhone returns the resolved tenant's phone, or the zero phone when no
// tenant is resolved.
func (s State) TenantPhone() string {
	if s.Tenant == nil {
		return ""
	}
	return s.Tenant.Phone.String()
}

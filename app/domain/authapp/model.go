package authapp

import (
	"encoding/json"

	"github.com/granazap/painel/business/domain/authbus"
)

// User represents the authenticated user inside the state payload.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Tenant represents the resolved tenant inside the state payload.
type Tenant struct {
	ID     string `json:"id"`
	Phone  string `json:"phone"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// State represents the auth lifecycle as seen by the client.
type State struct {
	User    *User   `json:"user"`
	Tenant  *Tenant `json:"tenant"`
	Loading bool    `json:"loading"`
	Error   string  `json:"error,omitempty"`
}

// Encode implements the web.Encoder interface.
func (s State) Encode() ([]byte, string, error) {
	data, err := json.Marshal(s)
	return data, "application/json", err
}

func toAppState(bus authbus.State) State {
	state := State{
		Loading: bus.Loading,
		Error:   bus.Error,
	}

	if bus.User != nil {
		state.User = &User{
			ID:    bus.User.ID,
			Email: bus.User.Email,
		}
	}

	if bus.Tenant != nil {
		state.Tenant = &Tenant{
			ID:     bus.Tenant.ID.String(),
			Phone:  bus.Tenant.Phone.String(),
			Name:   bus.Tenant.Name,
			Status: bus.Tenant.Status.String(),
		}
	}

	return state
}

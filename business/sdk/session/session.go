// Package session defines the boundary with the external auth provider. The
// provider owns credentials; this service only observes session changes
// through a notification stream.
package session

import (
	"context"
	"time"
)

// User is the subject identity carried by a session.
type User struct {
	ID    string
	Email string
}

// Session is the credential bundle issued by the provider.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         User
}

// Stream delivers session change notifications. Subscribe returns an
// unsubscribe handle; after it runs no further notifications are delivered
// to the callback.
type Stream interface {
	Subscribe(fn func(Event, *Session)) (unsubscribe func())
}

// Provider is the full external auth provider surface.
type Provider interface {
	Stream
	SignOut(ctx context.Context) error
}

// =============================================================================

// Set of known event kinds.
var kinds = make(map[string]Event)

// Event identifies what changed in the session, abstracted from the
// provider's own vocabulary.
type Event struct {
	value string
}

// The set of events the stream can deliver.
var (
	Initial        = newEvent("INITIAL_SESSION")
	SignedIn       = newEvent("SIGNED_IN")
	SignedOut      = newEvent("SIGNED_OUT")
	TokenRefreshed = newEvent("TOKEN_REFRESHED")
)

func newEvent(event string) Event {
	e := Event{event}
	kinds[event] = e
	return e
}

// String returns the name of the event.
func (e Event) String() string {
	return e.value
}

// Equal provides support for the go-cmp package and testing.
func (e Event) Equal(e2 Event) bool {
	return e.value == e2.value
}

// MarshalText provides support for logging and any marshal needs.
func (e Event) MarshalText() ([]byte, error) {
	return []byte(e.value), nil
}

// Package phone represents a phone number in the system.
package phone

import (
	"fmt"
	"regexp"
)

// Phone represents a phone number in the system. Tenants are keyed by the
// phone number they registered with.
type Phone struct {
	value string
}

// String returns the value of the phone number.
func (p Phone) String() string {
	return p.value
}

// Equal provides support for the go-cmp package and testing.
func (p Phone) Equal(p2 Phone) bool {
	return p.value == p2.value
}

// IsZero reports whether the phone number is empty.
func (p Phone) IsZero() bool {
	return p.value == ""
}

// MarshalText provides support for logging and any marshal needs.
func (p Phone) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

// =============================================================================

// phoneRegEx allows for an optional +, followed by digits, spaces, or hyphens.
var phoneRegEx = regexp.MustCompile(`^\+?[0-9\s-]{3,20}$`)

// Parse parses the string value and returns a phone number if the value complies
// with the rules for a phone number.
func Parse(value string) (Phone, error) {
	if !phoneRegEx.MatchString(value) {
		return Phone{}, fmt.Errorf("invalid phone %q", value)
	}

	return Phone{value}, nil
}

// MustParse parses the string value and returns a phone number if the value
// complies with the rules for a phone number. If an error occurs the function panics.
func MustParse(value string) Phone {
	phone, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return phone
}

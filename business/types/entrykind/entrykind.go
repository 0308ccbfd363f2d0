// Package entrykind represents the direction of a financial entry.
package entrykind

import "fmt"

// The set of kinds that can be used.
var (
	Income  = newKind("income")
	Expense = newKind("expense")
)

// =============================================================================

// Set of known kinds.
var kinds = make(map[string]Kind)

// Kind represents an entry kind in the system.
type Kind struct {
	value string
}

func newKind(kind string) Kind {
	k := Kind{kind}
	kinds[kind] = k
	return k
}

// String returns the name of the kind.
func (k Kind) String() string {
	return k.value
}

// Equal provides support for the go-cmp package and testing.
func (k Kind) Equal(k2 Kind) bool {
	return k.value == k2.value
}

// MarshalText provides support for logging and any marshal needs.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.value), nil
}

// =============================================================================

// Parse parses the string value and returns a kind if one exists.
func Parse(value string) (Kind, error) {
	kind, exists := kinds[value]
	if !exists {
		return Kind{}, fmt.Errorf("invalid entry kind %q", value)
	}

	return kind, nil
}

// MustParse parses the string value and returns a kind if one exists. If
// an error occurs the function panics.
func MustParse(value string) Kind {
	kind, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return kind
}

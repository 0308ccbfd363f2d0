// Package alertlevel represents how close a budget is to its monthly limit.
package alertlevel

import "fmt"

// The set of levels a budget can be at.
var (
	OK       = newLevel("OK")
	Warning  = newLevel("WARNING")
	Exceeded = newLevel("EXCEEDED")
)

// =============================================================================

// Set of known levels.
var levels = make(map[string]Level)

// Level represents a budget alert level in the system.
type Level struct {
	value string
}

func newLevel(level string) Level {
	l := Level{level}
	levels[level] = l
	return l
}

// String returns the name of the level.
func (l Level) String() string {
	return l.value
}

// Equal provides support for the go-cmp package and testing.
func (l Level) Equal(l2 Level) bool {
	return l.value == l2.value
}

// MarshalText provides support for logging and any marshal needs.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.value), nil
}

// =============================================================================

// Parse parses the string value and returns a level if one exists.
func Parse(value string) (Level, error) {
	level, exists := levels[value]
	if !exists {
		return Level{}, fmt.Errorf("invalid alert level %q", value)
	}

	return level, nil
}

// MustParse parses the string value and returns a level if one exists. If
// an error occurs the function panics.
func MustParse(value string) Level {
	level, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return level
}

package config

import "fmt"

// Error reports an invalid or missing entry in the experiment description.
// Key names the offending configuration key, qualified with the suite and
// variant it belongs to where that applies.
type Error struct {
	Key    string
	Reason string
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("config: %s", e.Reason)
	}
	return fmt.Sprintf("config: %s: %s", e.Key, e.Reason)
}

// Errorf builds an Error for key with a formatted reason.
func Errorf(key, format string, args ...any) *Error {
	return &Error{Key: key, Reason: fmt.Sprintf(format, args...)}
}

package bag

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for missing layout fields, invalid file
	// names and invalid barcode payloads. It is never retried.
	ErrInvalidInput = errors.New("invalid input")
	// ErrResourceUnavailable signals that a font or pattern resource could
	// not be loaded. Callers usually recover by switching to fallback mode.
	ErrResourceUnavailable = errors.New("resource unavailable")
	// ErrElementConversion marks a single layout element that cannot be
	// converted to a device command.
	ErrElementConversion = errors.New("element conversion failed")
	// ErrConnectivity is returned when the print bridge cannot be reached.
	ErrConnectivity = errors.New("printer unreachable")
)

// ProtocolError is returned when the print bridge answers with a non success
// status code. Body holds the verbatim response.
type ProtocolError struct {
	StatusCode int
	Body       string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("printer responded with status %d: %s", e.StatusCode, e.Body)
}

// Invalidf returns an ErrInvalidInput with a formatted message.
func Invalidf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, a...))
}

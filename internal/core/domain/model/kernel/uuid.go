package kernel

import (
	"log/slog"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when a zero UUID is used.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID")

// UUID is an opaque random identifier. The dispatch domain keys restaurants by
// name and orders by sequence number, so UUIDs only correlate a request with
// the log lines it produces.
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

func (u UUID) String() string {
	return u.id.String()
}

// IsEqual reports whether both UUIDs hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate fails for the zero UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (u UUID) LogValue() slog.Value {
	return slog.StringValue(u.id.String())
}

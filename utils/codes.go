package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewBookingReference returns a short human-quotable reference like
// "BK-9F2C41D0". Collisions are guarded by the unique index on the column.
func NewBookingReference() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BK-" + strings.ToUpper(raw[:8])
}

package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a new opaque id with the given prefix, e.g. NewID("form-").
// Ids are prefixed so they stay recognizable in logs and the admin UI.
func NewID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

package models

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh internal entity id.
func NewID() string {
	return uuid.NewString()
}

// NewCode returns a short human-facing code such as "P-3FA2C1". The prefix
// distinguishes the entity kind: P projects, O outreach, M materials.
func NewCode(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(raw[:6])
}

package site

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewBuildID returns the unique identifier tagging one build session: a
// random UUID as 32 hex characters, with no separators so it can sit
// inside file names.
func NewBuildID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

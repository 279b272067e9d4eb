package ingestion

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// References combine the creation time with a random suffix. Uniqueness is
// best effort: there is no collision scan, which is acceptable for a demo
// store and matches the hosted behavior.

// NewFileReference returns a fresh handle for a stored payload.
func NewFileReference() string {
	return newReference("mock")
}

// NewAuditReference returns a fresh handle for a synthesized audit.
func NewAuditReference() string {
	return newReference("audit")
}

func newReference(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}

// EncodeBytes converts a raw payload to the text form the store keeps.
func EncodeBytes(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBytes is the inverse of EncodeBytes.
func DecodeBytes(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

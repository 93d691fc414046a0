package widget

import (
	"os"
	"strings"

	"github.com/google/uuid"
)

// NewVisitorID generates a fresh visitor token. The token is random and
// unauthenticated: it deduplicates likes by convention, nothing more.
func NewVisitorID() string {
	return uuid.NewString()
}

// LoadOrCreateVisitorID returns the visitor token persisted at path,
// generating and storing one on first use so the same browser keeps the
// same identity across sessions.
func LoadOrCreateVisitorID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	}

	id := NewVisitorID()
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", err
	}
	return id, nil
}

package testutil

import (
	"testing"

	"github.com/arnavag/life-tracker/internal/storage"
)

// NewTestStore returns a Store rooted in a fresh temporary directory
// that is removed when the test finishes.
func NewTestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.NewStore(t.TempDir())
}

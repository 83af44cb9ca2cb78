// Package identity generates collision-resistant identifiers for documents
// and section entries.
package identity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator produces process-unique identifiers. The zero value is ready
// to use; a custom clock can be injected for deterministic tests.
type Generator struct {
	now func() time.Time
}

// NewGenerator returns a Generator using the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock returns a Generator using the given clock. The
// uniqueness suffix does not depend on the clock, so a frozen clock still
// yields distinct ids.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// NewID returns a fresh identifier of the form <prefix>-<millis>-<suffix>.
// The millisecond component keeps ids roughly sortable by creation time;
// the UUID-derived suffix guarantees uniqueness, including against ids
// supplied externally during import.
func (g *Generator) NewID(prefix string) string {
	now := g.now
	if now == nil {
		now = time.Now
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	if prefix == "" {
		return fmt.Sprintf("%d-%s", now().UnixMilli(), suffix)
	}
	return fmt.Sprintf("%s-%d-%s", prefix, now().UnixMilli(), suffix)
}

package analysis

import (
	"fmt"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// MalformedGraphError reports an invalid dependency graph input: a duplicate
// identity key or a missing required field. It is fatal and aborts the run
// before any scoring.
type MalformedGraphError struct {
	Reason string
	Key    entities.DependencyKey
}

func (e *MalformedGraphError) Error() string {
	if e.Key == (entities.DependencyKey{}) {
		return fmt.Sprintf("malformed dependency graph: %s", e.Reason)
	}
	return fmt.Sprintf("malformed dependency graph: %s: %s", e.Reason, e.Key)
}

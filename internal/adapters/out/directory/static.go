// Package directory resolves the operators who receive notifications not yet
// bound to a specific operator.
package directory

import (
	"context"
	"strings"

	"ordering/internal/core/domain/model/kernel"
)

// Static is an operator directory fixed at startup from configuration.
type Static struct {
	operators []kernel.UUID
}

func NewStatic(operators []kernel.UUID) *Static {
	return &Static{operators: append([]kernel.UUID(nil), operators...)}
}

// ParseStatic reads operator ids as configured, e.g. "id1,id2". Blank entries
// are skipped and duplicates collapse.
func ParseStatic(ids []string) (*Static, error) {
	seen := make(map[kernel.UUID]struct{}, len(ids))
	operators := make([]kernel.UUID, 0, len(ids))
	for _, raw := range ids {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		operators = append(operators, id)
	}

	return &Static{operators: operators}, nil
}

func (s *Static) Operators(context.Context) ([]kernel.UUID, error) {
	return append([]kernel.UUID{}, s.operators...), nil
}

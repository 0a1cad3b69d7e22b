package signal

import (
	"fmt"

	"hexcast/domain/core"
)

// DefaultDefinitions returns the built-in metric definitions. Callers track
// whatever metrics they like; identifiers absent from the table degrade to
// the neutral result rather than failing.
func DefaultDefinitions() map[string]Definition {
	return map[string]Definition{
		"progress": {
			Direction:  HigherIsBetter,
			Thresholds: Thresholds{Good: 0.7, Warning: 0.4, Bad: 0.2},
			Window:     5,
		},
		"energy": {
			Direction:  HigherIsBetter,
			Thresholds: Thresholds{Good: 0.6, Warning: 0.3, Bad: 0.1},
			Window:     7,
		},
		"stress": {
			Direction:  LowerIsBetter,
			Thresholds: Thresholds{Good: 0.3, Warning: 0.6, Bad: 0.8},
			Window:     5,
		},
		"friction": {
			Direction:  LowerIsBetter,
			Thresholds: Thresholds{Good: 0.2, Warning: 0.5, Bad: 0.7},
		},
	}
}

// ValidateDefinitions checks direction names and window sanity for an
// injected table.
func ValidateDefinitions(defs map[string]Definition) error {
	for id, def := range defs {
		if def.Direction != HigherIsBetter && def.Direction != LowerIsBetter {
			return fmt.Errorf("%w: %s: direction %q", core.ErrInvalidDefinition, id, def.Direction)
		}
		if def.Window < 0 {
			return fmt.Errorf("%w: %s: negative window %d", core.ErrInvalidDefinition, id, def.Window)
		}
	}
	return nil
}

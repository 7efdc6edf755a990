package adapter

import (
	"encoding/json"
	"fmt"

	"recruitdesk/pkg/models"
)

// applyPatch merges a partial field map into an existing record through its
// JSON form, so patch keys follow the wire names. The id is never patchable.
func applyPatch[R models.Entity](record R, fields map[string]any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record for patch: %w", err)
	}

	var current map[string]any
	if err := json.Unmarshal(raw, &current); err != nil {
		return fmt.Errorf("failed to decode record for patch: %w", err)
	}

	for key, value := range fields {
		if key == "id" {
			continue
		}
		current[key] = value
	}

	merged, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("failed to encode patched record: %w", err)
	}
	if err := json.Unmarshal(merged, record); err != nil {
		return fmt.Errorf("invalid patch value: %w", err)
	}
	return nil
}

// cloneRecord deep-copies a record through its JSON form so adapter-held
// state is never aliased by callers
func cloneRecord[R models.Entity](schema models.Schema[R], record R) (R, error) {
	clone := schema.New()
	raw, err := json.Marshal(record)
	if err != nil {
		return clone, fmt.Errorf("failed to clone record: %w", err)
	}
	if err := json.Unmarshal(raw, clone); err != nil {
		return clone, fmt.Errorf("failed to clone record: %w", err)
	}
	return clone, nil
}

package schema

import "sort"

// Validate checks data against an ordered field declaration list. It never
// stops at the first failure: every violated field is collected so the
// caller can fix its input in one round trip.
//
// With partial=false (create semantics) every non-optional field must be
// present. With partial=true (update semantics) absent fields are skipped,
// but present fields are still fully validated.
//
// Keys in data that match no declared field are rejected.
func Validate(fields Fields, data map[string]any, partial bool) error {
	var violations []FieldError

	declared := make(map[string]bool, len(fields))
	for _, f := range fields {
		declared[f.Name] = true

		value, exists := data[f.Name]
		if !exists {
			if partial || f.Optional {
				continue
			}
			violations = append(violations, FieldError{
				Field:  f.Name,
				Reason: "required",
			})
			continue
		}

		if err := f.Type.Validate(value); err != nil {
			violations = append(violations, FieldError{
				Field:  f.Name,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	// Unknown keys are reported in name order so output is stable.
	for _, name := range sortedKeys(data) {
		if !declared[name] {
			violations = append(violations, FieldError{
				Field:  name,
				Reason: "not a declared field",
				Value:  data[name],
			})
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Fields: violations}
	}
	return nil
}

func sortedKeys(data map[string]any) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

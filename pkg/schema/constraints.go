package schema

import (
	"fmt"
	"reflect"
)

// constrainedType wraps a base type with an extra check applied after the
// base validation passes.
type constrainedType struct {
	base  Type
	label string
	check func(any) error
}

func (t *constrainedType) Name() string {
	return fmt.Sprintf("%s(%s)", t.label, t.base.Name())
}

func (t *constrainedType) Validate(value any) error {
	if err := t.base.Validate(value); err != nil {
		return err
	}
	return t.check(value)
}

// NonEmpty rejects empty strings and zero-length slices.
func NonEmpty(base Type) Type {
	return &constrainedType{
		base:  base,
		label: "non_empty",
		check: func(value any) error {
			switch v := value.(type) {
			case string:
				if v == "" {
					return fmt.Errorf("must not be empty")
				}
				return nil
			}
			rv := reflect.ValueOf(value)
			if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Len() == 0 {
				return fmt.Errorf("must not be empty")
			}
			return nil
		},
	}
}

// Min requires a numeric value of at least min.
func Min(base Type, min float64) Type {
	return &constrainedType{
		base:  base,
		label: "min",
		check: func(value any) error {
			f, ok := toFloat64(value)
			if !ok {
				return fmt.Errorf("expected number, got %T", value)
			}
			if f < min {
				return fmt.Errorf("must be >= %v, got %v", min, f)
			}
			return nil
		},
	}
}

// Max requires a numeric value of at most max.
func Max(base Type, max float64) Type {
	return &constrainedType{
		base:  base,
		label: "max",
		check: func(value any) error {
			f, ok := toFloat64(value)
			if !ok {
				return fmt.Errorf("expected number, got %T", value)
			}
			if f > max {
				return fmt.Errorf("must be <= %v, got %v", max, f)
			}
			return nil
		},
	}
}

// OneOf restricts a string value to a fixed set.
func OneOf(base Type, allowed ...string) Type {
	return &constrainedType{
		base:  base,
		label: "one_of",
		check: func(value any) error {
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("expected string, got %T", value)
			}
			for _, a := range allowed {
				if s == a {
					return nil
				}
			}
			return fmt.Errorf("must be one of %v, got %q", allowed, s)
		},
	}
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

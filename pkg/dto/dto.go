package dto

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DTO is a validated, immutable set of named field values. Instances are
// only produced by Definition.New and never mutated afterwards; they are
// safe to share across goroutines.
type DTO struct {
	def    *Definition
	values map[string]any
}

// Entry is one canonical-map pair.
type Entry struct {
	Name  string
	Value any
}

// Name returns the name of the definition this instance was built from.
func (d *DTO) Name() string { return d.def.name }

// Kind returns the kind of the definition this instance was built from.
func (d *DTO) Kind() Kind { return d.def.kind }

// Has reports whether the field carries a value. For update-kind
// instances this distinguishes "deliberately absent" from "set".
func (d *DTO) Has(name string) bool {
	_, ok := d.values[name]
	return ok
}

// Get returns the raw field value.
func (d *DTO) Get(name string) (any, bool) {
	v, ok := d.values[name]
	return v, ok
}

// String returns a string field, or "" if absent or not a string.
func (d *DTO) String(name string) string {
	s, _ := d.values[name].(string)
	return s
}

// Int returns an integer field, accepting whole floats from JSON/YAML input.
func (d *DTO) Int(name string) int64 {
	switch v := d.values[name].(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

// Float returns a numeric field as float64, or 0 if absent.
func (d *DTO) Float(name string) float64 {
	switch v := d.values[name].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Bool returns a boolean field, or false if absent.
func (d *DTO) Bool(name string) bool {
	b, _ := d.values[name].(bool)
	return b
}

// Entries returns the set field values in declaration order. Unset
// optional fields of update-kind instances do not appear, keeping
// partial-update payloads minimal.
func (d *DTO) Entries() []Entry {
	entries := make([]Entry, 0, len(d.values))
	for _, f := range d.def.fields {
		if v, ok := d.values[f.Name]; ok {
			entries = append(entries, Entry{Name: f.Name, Value: v})
		}
	}
	return entries
}

// CanonicalMap returns a flat field-name -> value mapping containing
// exactly the set fields. The returned map is a copy; feeding it back to
// the same definition's factory reproduces a field-equal instance.
func (d *DTO) CanonicalMap() map[string]any {
	out := make(map[string]any, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return out
}

// Decode populates a typed struct from the field values using
// mapstructure tags, e.g.:
//
//	type createOrder struct {
//	    Customer int64    `mapstructure:"customer"`
//	    Products []string `mapstructure:"products"`
//	    Total    float64  `mapstructure:"total"`
//	}
func (d *DTO) Decode(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("dto %s: building decoder: %w", d.def.name, err)
	}
	if err := decoder.Decode(d.values); err != nil {
		return fmt.Errorf("dto %s: decoding: %w", d.def.name, err)
	}
	return nil
}

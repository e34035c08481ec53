package dto

import (
	"fmt"

	"github.com/aretw0/cambium/pkg/schema"
)

// Kind distinguishes create payloads (all fields required) from update
// payloads (fields may be deliberately absent).
type Kind string

const (
	KindCreate Kind = "create"
	KindUpdate Kind = "update"
)

// Definition declares a DTO shape: a name, a kind, and an ordered field
// list. Definitions are built once (typically as package-level values) and
// shared; they are safe for concurrent use.
type Definition struct {
	name   string
	kind   Kind
	fields schema.Fields
}

// Define builds a Definition. It panics on an invalid declaration
// (empty name, duplicate or untyped fields): definitions are program
// constants, and a bad one is a programming error, not an input error.
func Define(name string, kind Kind, fields schema.Fields) *Definition {
	if name == "" {
		panic("dto: definition name must not be empty")
	}
	if kind != KindCreate && kind != KindUpdate {
		panic(fmt.Sprintf("dto: unknown kind %q", kind))
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			panic(fmt.Sprintf("dto %s: field with empty name", name))
		}
		if f.Type == nil {
			panic(fmt.Sprintf("dto %s: field %q has no type", name, f.Name))
		}
		if seen[f.Name] {
			panic(fmt.Sprintf("dto %s: duplicate field %q", name, f.Name))
		}
		seen[f.Name] = true
	}
	return &Definition{name: name, kind: kind, fields: fields}
}

// Name returns the definition's name.
func (d *Definition) Name() string { return d.name }

// Kind returns the definition's kind.
func (d *Definition) Kind() Kind { return d.kind }

// Fields returns the declared field names in declaration order.
func (d *Definition) Fields() []string {
	names := make([]string, len(d.fields))
	for i, f := range d.fields {
		names[i] = f.Name
	}
	return names
}

// New is the validation gate: it checks every declared field against the
// input mapping and returns an immutable instance, or fails with a
// *schema.ValidationError naming all violated fields. Update-kind
// definitions accept absent fields; present fields are always validated.
func (d *Definition) New(values map[string]any) (*DTO, error) {
	partial := d.kind == KindUpdate
	if err := schema.Validate(d.fields, values, partial); err != nil {
		return nil, err
	}

	copied := make(map[string]any, len(values))
	for _, f := range d.fields {
		if v, ok := values[f.Name]; ok {
			copied[f.Name] = v
		}
	}
	return &DTO{def: d, values: copied}, nil
}

// MustNew is New for inputs known valid at compile time (tests, fixtures).
func (d *Definition) MustNew(values map[string]any) *DTO {
	instance, err := d.New(values)
	if err != nil {
		panic(fmt.Sprintf("dto %s: %v", d.name, err))
	}
	return instance
}

// Package schema provides a type-safe validation system for DTO fields.
//
// It defines a simple type system with built-in types (string, int, float,
// bool, ref) and support for slices, constraints, and custom validators.
// Fields are declared in order, enabling deterministic canonical output for
// the DTOs built on top of them.
//
// Basic usage:
//
//	fields := schema.Fields{
//	    {Name: "customer", Type: schema.Ref()},
//	    {Name: "products", Type: schema.Slice(schema.String())},
//	    {Name: "total", Type: schema.Min(schema.Float(), 0)},
//	}
//
//	data := map[string]any{
//	    "customer": 42,
//	    "products": []string{"p1", "p2"},
//	    "total":    150.0,
//	}
//
//	if err := schema.Validate(fields, data, false); err != nil {
//	    // err is a *ValidationError listing every violated field
//	}
//
// Types can also be parsed from strings ("string", "int", "[float]", "ref"),
// which is how the CLI builds field sets from YAML definitions.
//
// This package has zero external dependencies beyond the Go standard
// library. It can be embedded in larger systems or extracted standalone.
package schema

/*
Package dto implements validated, immutable input containers for actions.

A Definition declares a named DTO kind with an ordered field list. Its New
factory is the sole validation gate: it checks presence, type, and
constraints for every declared field and fails atomically with a
*schema.ValidationError listing all violations, or returns a
fully-populated immutable instance. No partially-built DTO ever escapes.

Create-kind definitions require every non-optional field; update-kind
definitions allow fields to be deliberately absent (partial-update
semantics) and omit them from the canonical map.

	order := dto.Define("order.create", dto.KindCreate, schema.Fields{
	    {Name: "customer", Type: schema.Ref()},
	    {Name: "products", Type: schema.NonEmpty(schema.Slice(schema.String()))},
	    {Name: "total", Type: schema.Min(schema.Float(), 0)},
	})

	in, err := order.New(map[string]any{
	    "customer": 42,
	    "products": []string{"p1", "p2"},
	    "total":    150.0,
	})
*/
package dto

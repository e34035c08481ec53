package dto_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aretw0/cambium/pkg/dto"
	"github.com/aretw0/cambium/pkg/schema"
)

var createOrder = dto.Define("order.create", dto.KindCreate, schema.Fields{
	{Name: "customer", Type: schema.Ref()},
	{Name: "products", Type: schema.NonEmpty(schema.Slice(schema.String()))},
	{Name: "total", Type: schema.Min(schema.Float(), 0)},
})

var updateOrder = dto.Define("order.update", dto.KindUpdate, schema.Fields{
	{Name: "products", Type: schema.NonEmpty(schema.Slice(schema.String()))},
	{Name: "total", Type: schema.Min(schema.Float(), 0)},
	{Name: "note", Type: schema.String(), Optional: true},
})

func validOrder() map[string]any {
	return map[string]any{
		"customer": 42,
		"products": []string{"p1", "p2"},
		"total":    150.0,
	}
}

func TestNew_Valid(t *testing.T) {
	in, err := createOrder.New(validOrder())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := in.Int("customer"); got != 42 {
		t.Errorf("customer = %d, want 42", got)
	}
	if got := in.Float("total"); got != 150.0 {
		t.Errorf("total = %v, want 150.0", got)
	}
	if in.Name() != "order.create" || in.Kind() != dto.KindCreate {
		t.Errorf("identity = %s/%s", in.Name(), in.Kind())
	}
}

func TestNew_MissingRequiredField(t *testing.T) {
	values := validOrder()
	delete(values, "customer")

	_, err := createOrder.New(values)
	if err == nil {
		t.Fatal("New() should fail when a required field is missing")
	}

	verr, ok := schema.AsValidation(err)
	if !ok {
		t.Fatalf("error should be *schema.ValidationError, got %T", err)
	}
	if diff := cmp.Diff([]string{"customer"}, verr.FieldNames()); diff != "" {
		t.Errorf("violated fields mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_ReportsEveryViolation(t *testing.T) {
	_, err := createOrder.New(map[string]any{
		"customer": 0,
		"products": []string{},
		"total":    -1.0,
	})

	verr, ok := schema.AsValidation(err)
	if !ok {
		t.Fatalf("error should be *schema.ValidationError, got %T", err)
	}
	want := []string{"customer", "products", "total"}
	if diff := cmp.Diff(want, verr.FieldNames()); diff != "" {
		t.Errorf("violated fields mismatch (-want +got):\n%s", diff)
	}
}

func TestCanonicalMap_RoundTrip(t *testing.T) {
	first := createOrder.MustNew(validOrder())

	second, err := createOrder.New(first.CanonicalMap())
	if err != nil {
		t.Fatalf("round-trip New() error = %v", err)
	}

	if diff := cmp.Diff(first.CanonicalMap(), second.CanonicalMap()); diff != "" {
		t.Errorf("round-trip mismatch (-first +second):\n%s", diff)
	}
}

func TestCanonicalMap_IsACopy(t *testing.T) {
	in := createOrder.MustNew(validOrder())

	m := in.CanonicalMap()
	m["customer"] = 99
	delete(m, "total")

	if got := in.Int("customer"); got != 42 {
		t.Errorf("instance mutated through canonical map: customer = %d", got)
	}
	if !in.Has("total") {
		t.Error("instance mutated through canonical map: total removed")
	}
}

func TestEntries_DeclarationOrder(t *testing.T) {
	in := createOrder.MustNew(validOrder())

	var names []string
	for _, e := range in.Entries() {
		names = append(names, e.Name)
	}
	if diff := cmp.Diff([]string{"customer", "products", "total"}, names); diff != "" {
		t.Errorf("entry order mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateKind_OmitsUnsetFields(t *testing.T) {
	in, err := updateOrder.New(map[string]any{"total": 99.5})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if in.Has("products") || in.Has("note") {
		t.Error("unset fields should stay absent")
	}
	if len(in.CanonicalMap()) != 1 {
		t.Errorf("canonical map = %v, want only total", in.CanonicalMap())
	}
	if len(in.Entries()) != 1 {
		t.Errorf("entries = %v, want only total", in.Entries())
	}
}

func TestUpdateKind_ValidatesPresentFields(t *testing.T) {
	_, err := updateOrder.New(map[string]any{"total": -5.0})
	if err == nil {
		t.Fatal("present fields must be validated even for update kind")
	}
}

func TestDecode(t *testing.T) {
	type orderInput struct {
		Customer int64    `mapstructure:"customer"`
		Products []string `mapstructure:"products"`
		Total    float64  `mapstructure:"total"`
	}

	in := createOrder.MustNew(validOrder())

	var out orderInput
	if err := in.Decode(&out); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := orderInput{Customer: 42, Products: []string{"p1", "p2"}, Total: 150.0}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("decoded struct mismatch (-want +got):\n%s", diff)
	}
}

func TestDefine_PanicsOnDuplicateField(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Define() should panic on duplicate field names")
		}
	}()
	dto.Define("bad", dto.KindCreate, schema.Fields{
		{Name: "x", Type: schema.Int()},
		{Name: "x", Type: schema.String()},
	})
}

package schema

import "testing"

func TestConstraints(t *testing.T) {
	cases := []struct {
		name  string
		typ   Type
		value any
		ok    bool
	}{
		{"min ok", Min(Float(), 0), 150.0, true},
		{"min violated", Min(Float(), 0), -0.5, false},
		{"max ok", Max(Int(), 100), 100, true},
		{"max violated", Max(Int(), 100), 101, false},
		{"one_of ok", OneOf(String(), "draft", "placed"), "placed", true},
		{"one_of violated", OneOf(String(), "draft", "placed"), "shipped", false},
		{"non_empty string ok", NonEmpty(String()), "x", true},
		{"non_empty string violated", NonEmpty(String()), "", false},
		{"non_empty slice violated", NonEmpty(Slice(String())), []string{}, false},
		{"constraint after type failure", Min(Float(), 0), "nope", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.typ.Validate(tc.value)
			if tc.ok && err != nil {
				t.Errorf("Validate(%v) error = %v, want nil", tc.value, err)
			}
			if !tc.ok && err == nil {
				t.Errorf("Validate(%v) should fail", tc.value)
			}
		})
	}
}

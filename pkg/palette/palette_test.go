package palette

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"green", "green"},
		{"", Default},
		{"magenta", Default},
		{"YELLOW", Default},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAllAreValid(t *testing.T) {
	all := All()
	if len(all) != 12 {
		t.Fatalf("expected 12 palette colors, got %d", len(all))
	}
	for _, c := range all {
		if !Valid(c.Value) {
			t.Errorf("palette color %q should be valid", c.Value)
		}
		if c.Hex == "" || c.Name == "" {
			t.Errorf("palette color %q missing name or hex", c.Value)
		}
	}
}

func TestLookupDefaults(t *testing.T) {
	if got := Lookup("nope"); got.Value != Default {
		t.Fatalf("unknown color should resolve to the default, got %q", got.Value)
	}
}

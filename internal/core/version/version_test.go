package version

import "testing"

func TestInfoDefaults(t *testing.T) {
	b := Info()
	if b.Service != "products" || b.Version != "dev" {
		t.Fatalf("unexpected stamp %+v", b)
	}
	if got := b.String(); got != "dev (none, unknown)" {
		t.Fatalf("String()=%q", got)
	}
}

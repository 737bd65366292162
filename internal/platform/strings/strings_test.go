package strings

import "testing"

func TestContainsFold(t *testing.T) {
	t.Parallel()

	cases := []struct {
		s, sub string
		want   bool
	}{
		{"Wireless Mouse", "mouse", true},
		{"Wireless Mouse", "WIRE", true},
		{"Keyboard", "mouse", false},
		{"anything", "", true},
		{"", "x", false},
	}
	for _, c := range cases {
		if got := ContainsFold(c.s, c.sub); got != c.want {
			t.Fatalf("ContainsFold(%q,%q) = %v, want %v", c.s, c.sub, got, c.want)
		}
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	if Fold("ÉCLAIR Crème") != Fold("éclair CRÈME") {
		t.Fatalf("Fold should match across case")
	}
	if Fold("Ñandú") != "ñandú" {
		t.Fatalf("Fold(Ñandú) = %q", Fold("Ñandú"))
	}
}

func TestPointerHelpers(t *testing.T) {
	t.Parallel()

	if Ptr("") != nil {
		t.Fatalf("Ptr(\"\") should be nil")
	}
	p := Ptr("electronics")
	if p == nil || *p != "electronics" {
		t.Fatalf("Ptr returned %v", p)
	}

	blank := "   "
	if NilIfBlank(&blank) != nil || NilIfBlank(nil) != nil {
		t.Fatalf("NilIfBlank should drop blanks")
	}
	if NilIfBlank(p) != p {
		t.Fatalf("NilIfBlank should keep content")
	}
}

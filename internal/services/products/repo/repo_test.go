package repo

import (
	"testing"

	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/testkit"
)

func TestLikePattern(t *testing.T) {
	cases := map[string]string{
		"":       "",
		"phone":  "%phone%",
		"100%":   `%100\%%`,
		"a_b":    `%a\_b%`,
		`back\s`: `%back\\s%`,
	}
	for in, want := range cases {
		if got := likePattern(in); got != want {
			t.Fatalf("likePattern(%q) = %q want %q", in, got, want)
		}
	}
}

func TestFor(t *testing.T) {
	if For(nil, nil) != nil {
		t.Fatalf("no backend should give nil")
	}
	if _, ok := NewPG().Bind(nil).(*queries); !ok {
		t.Fatalf("pg binder should build queries")
	}
	testkit.MustPanic(t, func() { NewLite(nil) })
}

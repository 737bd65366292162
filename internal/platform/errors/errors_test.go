package errors

import (
	stderrs "errors"
	"fmt"
	"testing"
)

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeInvalidArgument, 2},
		{ErrorCodeValidation, 2},
		{ErrorCodeJSON, 2},
		{ErrorCodeNotFound, 3},
		{ErrorCodeUnauthorized, 4},
		{ErrorCodeForbidden, 4},
		{ErrorCodeUnavailable, 5},
		{ErrorCodeTooManyRequests, 5},
		{ErrorCodeDB, 1},
		{ErrorCodeUnknown, 1},
		{9999, 1},
	}
	for _, c := range cases {
		if got := ExitCode(c.code); got != c.want {
			t.Fatalf("ExitCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
	if Exit(nil) != 0 {
		t.Fatalf("Exit(nil) should be 0")
	}
	if Exit(stderrs.New("plain")) != 1 {
		t.Fatalf("Exit(foreign) should be 1")
	}
}

func TestCodeString(t *testing.T) {
	if ErrorCodeNotFound.String() != "not_found" {
		t.Fatalf("got %q", ErrorCodeNotFound.String())
	}
	if ErrorCode(777).String() != "unknown" {
		t.Fatalf("unmapped code should render unknown")
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeDB, "db failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	e4 := Wrapf(src, ErrorCodeForbidden, "nope %s", "here")
	if want := "nope here: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}
	if got, ok := As(e4); !ok || got.Message() != "nope here" {
		t.Fatalf("Message should exclude the cause")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	e5 := Wrap(src, ErrorCodeInvalidArgument, "oops")
	e6 := WithOp(WithField(e5, "page"), "list")
	got, _ := As(e6)
	if got.Field() != "page" || got.Op() != "list" {
		t.Fatalf("field/op not attached: %q %q", got.Field(), got.Op())
	}
	orig, _ := As(e5)
	if orig.Field() != "" {
		t.Fatalf("WithField mutated the original")
	}
	if WithField(src, "x") != src || WithOp(src, "y") != src {
		t.Fatalf("foreign errors should pass through")
	}

	if Root(fmt.Errorf("outer: %w", e3)) != src {
		t.Fatalf("Root did not reach the base error")
	}
	if Root(nil) != nil {
		t.Fatalf("Root(nil) should be nil")
	}
}

func TestSugarConstructors(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCode
	}{
		{NotFoundf("product with id %s not found", "p1"), ErrorCodeNotFound},
		{InvalidArgf("bad"), ErrorCodeInvalidArgument},
		{Validationf("bad"), ErrorCodeValidation},
		{DBf("db"), ErrorCodeDB},
		{Unauthorizedf("who"), ErrorCodeUnauthorized},
		{Forbiddenf("no"), ErrorCodeForbidden},
		{Unavailablef("later"), ErrorCodeUnavailable},
		{Internalf("boom"), ErrorCodeUnknown},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.want) {
			t.Fatalf("%q has code %v, want %v", c.err, CodeOf(c.err), c.want)
		}
	}
	if !IsCode(fmt.Errorf("ctx: %w", ErrNotFound), ErrorCodeNotFound) {
		t.Fatalf("wrapped sentinel should keep its code")
	}
}

func TestWire(t *testing.T) {
	if (WireFrom(nil) != Wire{}) {
		t.Fatalf("WireFrom(nil) should be zero")
	}
	w := WireFrom(WithField(InvalidArgf("page must be >= 1"), "page"))
	if w.Code != "invalid_argument" || w.Message != "page must be >= 1" || w.Field != "page" {
		t.Fatalf("unexpected wire %+v", w)
	}
	w = WireFrom(WithOp(Unavailablef("down"), "sync"))
	if w.Op != "sync" || w.Field != "" {
		t.Fatalf("op not carried to wire %+v", w)
	}
	w = WireFrom(stderrs.New("plain"))
	if w.Code != "unknown" || w.Message != "plain" {
		t.Fatalf("unexpected foreign wire %+v", w)
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(Unavailablef("503")) {
		t.Fatalf("unavailable should be retryable")
	}
	if !Retryable(Newf(ErrorCodeTooManyRequests, "429")) {
		t.Fatalf("429 should be retryable")
	}
	if Retryable(NotFoundf("x")) {
		t.Fatalf("not found should not be retryable")
	}
}

package ifpatch_test

import (
	"errors"
	"testing"

	"github.com/reoring/ifpatch"
)

func TestNewSerial_Valid(t *testing.T) {
	s, err := ifpatch.NewSerial("870915")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if s.String() != "870915" {
		t.Fatalf("got %q", s)
	}
}

func TestNewSerial_WrongLength(t *testing.T) {
	for _, in := range []string{"", "12345", "1234567"} {
		_, err := ifpatch.NewSerial(in)
		var se *ifpatch.ShapeError
		if !errors.As(err, &se) {
			t.Fatalf("%q: expected ShapeError, got %v", in, err)
		}
		if se.Field != "serial" || se.Want != ifpatch.SerialLen || se.Value != in {
			t.Fatalf("%q: unexpected error fields %+v", in, se)
		}
	}
}

func TestMustSerial_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	ifpatch.MustSerial("abc")
}

func TestIdentifier_SerialEightOmitsChecksum(t *testing.T) {
	got := ifpatch.Identifier(5, ifpatch.MustSerial("812345"), 0xAB)
	if got != "5-812345" {
		t.Fatalf("got %q", got)
	}
}

func TestIdentifier_OtherSerialsIncludeChecksum(t *testing.T) {
	got := ifpatch.Identifier(5, ifpatch.MustSerial("012345"), 0xAB)
	if got != "5-012345-ab" {
		t.Fatalf("got %q", got)
	}
	got = ifpatch.Identifier(65535, ifpatch.MustSerial("990101"), 0)
	if got != "65535-990101-0" {
		t.Fatalf("zero checksum: got %q", got)
	}
}

func TestPatch_Identifier(t *testing.T) {
	p := ifpatch.Patch{Title: "x", Serial: ifpatch.MustSerial("051209"), Release: 88, Checksum: 0x1c2f}
	if got := p.Identifier(); got != "88-051209-1c2f" {
		t.Fatalf("got %q", got)
	}
}

package papyr_test

import (
	"errors"
	"os"
	"testing"

	"papyr"
)

func TestErrorWrappingKeepsTaxonomyAndCause(t *testing.T) {
	err := papyr.IOError("read /tmp/db.json", os.ErrPermission)
	if !errors.Is(err, papyr.ErrIO) {
		t.Fatalf("err = %v, want ErrIO in chain", err)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("err = %v, want underlying cause in chain", err)
	}

	cause := errors.New("unexpected token")
	err = papyr.SerializationError("decode", cause)
	if !errors.Is(err, papyr.ErrSerialization) || !errors.Is(err, cause) {
		t.Fatalf("err = %v, want ErrSerialization and cause in chain", err)
	}
}

func TestAdapterErrorCarriesMessage(t *testing.T) {
	err := papyr.AdapterError("s3 bucket gone")
	if !errors.Is(err, papyr.ErrAdapter) {
		t.Fatalf("err = %v, want ErrAdapter", err)
	}
	if got := err.Error(); got != "papyr: adapter failure: s3 bucket gone" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestTaxonomySentinelsAreDistinct(t *testing.T) {
	if errors.Is(papyr.ErrIO, papyr.ErrSerialization) || errors.Is(papyr.ErrSerialization, papyr.ErrAdapter) {
		t.Fatal("sentinels must not match each other")
	}
}

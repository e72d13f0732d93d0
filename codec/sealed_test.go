package codec_test

import (
	"strings"
	"testing"

	"papyr/codec"
)

func TestSealedRoundTrip(t *testing.T) {
	c := codec.Sealed(codec.JSON{}, "correct horse")

	want := sample{Counter: 42, Message: "secret"}
	data, err := c.Marshal(&want)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "secret") {
		t.Fatal("plaintext leaked into the sealed payload")
	}

	var got sample
	if err := c.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSealedWrongPassphrase(t *testing.T) {
	data, err := codec.Sealed(codec.JSON{}, "right").Marshal(sample{Counter: 1})
	if err != nil {
		t.Fatal(err)
	}

	var got sample
	if err := codec.Sealed(codec.JSON{}, "wrong").Unmarshal(data, &got); err == nil {
		t.Fatal("decode with the wrong passphrase succeeded")
	}
}

func TestSealedRejectsUnsealedPayload(t *testing.T) {
	var got sample
	err := codec.Sealed(codec.JSON{}, "pw").Unmarshal([]byte(`{"counter":1}`), &got)
	if err == nil {
		t.Fatal("decode of a plain payload succeeded")
	}
}

func TestSealedPayloadsDiffer(t *testing.T) {
	c := codec.Sealed(codec.JSON{}, "pw")
	a, err := c.Marshal(sample{Counter: 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Marshal(sample{Counter: 1})
	if err != nil {
		t.Fatal(err)
	}
	// Fresh salt and nonce per write.
	if string(a) == string(b) {
		t.Fatal("two seals of the same value are byte-identical")
	}
}

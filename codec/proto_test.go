package codec_test

import (
	"testing"

	"google.golang.org/protobuf/types/known/structpb"

	"papyr/adapters"
	"papyr/codec"
)

func testStruct(t *testing.T, counter float64) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(map[string]any{"counter": counter})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestProtoRoundTrip(t *testing.T) {
	in := testStruct(t, 42)

	data, err := codec.Proto{}.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out structpb.Struct
	if err := (codec.Proto{}).Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if got := out.AsMap()["counter"]; got != float64(42) {
		t.Fatalf("counter = %v, want 42", got)
	}
}

func TestProtoUnwrapsPointerToMessage(t *testing.T) {
	in := testStruct(t, 7)

	// Adapters hand the codec *T; for a message type that is **Struct.
	data, err := codec.Proto{}.Marshal(&in)
	if err != nil {
		t.Fatal(err)
	}

	var out *structpb.Struct
	if err := (codec.Proto{}).Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out == nil {
		t.Fatal("decode left the message nil")
	}
	if got := out.AsMap()["counter"]; got != float64(7) {
		t.Fatalf("counter = %v, want 7", got)
	}
}

func TestProtoRejectsNonMessage(t *testing.T) {
	if _, err := (codec.Proto{}).Marshal(42); err == nil {
		t.Fatal("Marshal accepted a non-message value")
	}
	var n int
	if err := (codec.Proto{}).Unmarshal(nil, &n); err == nil {
		t.Fatal("Unmarshal accepted a non-message target")
	}
}

func TestProtoThroughMemoryAdapter(t *testing.T) {
	m := adapters.NewMemory[*structpb.Struct]().WithCodec(codec.Proto{})

	in := testStruct(t, 99)
	if err := m.Write(&in); err != nil {
		t.Fatal(err)
	}
	out, found, err := m.Read()
	if err != nil || !found {
		t.Fatalf("Read(): found=%v err=%v", found, err)
	}
	if got := out.AsMap()["counter"]; got != float64(99) {
		t.Fatalf("counter = %v, want 99", got)
	}
}

package codec

import (
	"fmt"
	"reflect"

	"google.golang.org/protobuf/proto"
)

// Proto encodes values in protobuf wire format. It only works with value
// types that are proto.Message implementations (generated message pointers);
// anything else fails at encode/decode time.
//
// Adapters hand the codec a *T, which for a message type *pb.Doc arrives as
// **pb.Doc, so one level of pointer indirection is unwrapped here.
type Proto struct{}

func (Proto) Marshal(v any) ([]byte, error) {
	m, err := asMessage(v, false)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(m)
}

func (Proto) Unmarshal(data []byte, v any) error {
	m, err := asMessage(v, true)
	if err != nil {
		return err
	}
	return proto.Unmarshal(data, m)
}

func (Proto) Name() string { return "proto" }

// asMessage resolves v (a proto.Message or a pointer to one) to the message.
// When allocate is set, a nil message slot is populated with a fresh message
// so decoding has somewhere to go.
func asMessage(v any, allocate bool) (proto.Message, error) {
	if m, ok := v.(proto.Message); ok {
		return m, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, fmt.Errorf("proto codec: %T is not a proto.Message", v)
	}
	elem := rv.Elem()
	if elem.Kind() == reflect.Pointer && elem.IsNil() {
		if !allocate {
			return nil, fmt.Errorf("proto codec: nil message")
		}
		if !elem.CanSet() {
			return nil, fmt.Errorf("proto codec: cannot allocate into %T", v)
		}
		elem.Set(reflect.New(elem.Type().Elem()))
	}
	m, ok := elem.Interface().(proto.Message)
	if !ok {
		return nil, fmt.Errorf("proto codec: %T is not a proto.Message", v)
	}
	return m, nil
}

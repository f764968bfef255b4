// Package serializer provides the message encodings the RPC layer can put on the wire.
//
// Every Serializer also satisfies grpc's encoding.Codec, so it can be forced onto a
// server or client connection directly.
package serializer

import (
	"fmt"

	capnp "capnproto.org/go/capnp/v3"
	"google.golang.org/protobuf/proto"
)

// Serializer encodes and decodes RPC payloads.
type Serializer interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// CapnpMessage is implemented by messages with a Cap'n Proto encoding.
// EncodeCapnp must allocate the root struct in seg.
type CapnpMessage interface {
	EncodeCapnp(seg *capnp.Segment) error
	DecodeCapnp(root capnp.Struct) error
}

// ProtoSerializer uses the protobuf wire format. Its name is "proto" so peers
// using grpc's default codec interoperate.
type ProtoSerializer struct{}

func (ProtoSerializer) Name() string { return "proto" }

func (ProtoSerializer) Marshal(v any) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("proto serializer: %T is not a proto.Message", v)
	}
	return proto.Marshal(m)
}

func (ProtoSerializer) Unmarshal(data []byte, v any) error {
	m, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("proto serializer: %T is not a proto.Message", v)
	}
	return proto.Unmarshal(data, m)
}

// CapnpSerializer uses the Cap'n Proto single-segment stream format.
type CapnpSerializer struct{}

func (CapnpSerializer) Name() string { return "capnp" }

func (CapnpSerializer) Marshal(v any) ([]byte, error) {
	m, ok := v.(CapnpMessage)
	if !ok {
		return nil, fmt.Errorf("capnp serializer: %T does not implement CapnpMessage", v)
	}

	msg, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	if err != nil {
		return nil, fmt.Errorf("capnp serializer: failed to create message: %w", err)
	}
	if err := m.EncodeCapnp(seg); err != nil {
		return nil, fmt.Errorf("capnp serializer: failed to encode %T: %w", v, err)
	}
	return msg.Marshal()
}

func (CapnpSerializer) Unmarshal(data []byte, v any) error {
	m, ok := v.(CapnpMessage)
	if !ok {
		return fmt.Errorf("capnp serializer: %T does not implement CapnpMessage", v)
	}

	msg, err := capnp.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("capnp serializer: failed to unmarshal: %w", err)
	}
	root, err := msg.Root()
	if err != nil {
		return fmt.Errorf("capnp serializer: failed to read root: %w", err)
	}
	return m.DecodeCapnp(root.Struct())
}

// ByName returns the serializer registered under name ("proto" or "capnp").
func ByName(name string) (Serializer, error) {
	switch name {
	case "", ProtoSerializer{}.Name():
		return ProtoSerializer{}, nil
	case CapnpSerializer{}.Name():
		return CapnpSerializer{}, nil
	default:
		return nil, fmt.Errorf("unknown serializer %q", name)
	}
}

package hellotime

//go:generate protoc -I.. --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative ../hellotime.proto
//go:generate sh -c "cd .. && capnp compile -I$(go list -m -f '{{.Dir}}' capnproto.org/go/capnp/v3)/std -ogo:hellotimecapnp hellotime.capnp"

import (
	"fmt"

	capnp "capnproto.org/go/capnp/v3"
	"github.com/appnet-org/hellotime/proto/hellotimecapnp"
)

// The methods below copy the protobuf messages into and out of the capnp
// structs generated from hellotime.capnp, so one message type serves both
// wire formats.

func (x *HelloRequest) EncodeCapnp(seg *capnp.Segment) error {
	s, err := hellotimecapnp.NewRootHelloRequest(seg)
	if err != nil {
		return err
	}
	return s.SetName(x.GetName())
}

func (x *HelloRequest) DecodeCapnp(root capnp.Struct) error {
	name, err := hellotimecapnp.HelloRequest(root).Name()
	if err != nil {
		return fmt.Errorf("decode HelloRequest.name: %w", err)
	}
	x.Name = name
	return nil
}

func (x *HelloResponse) EncodeCapnp(seg *capnp.Segment) error {
	s, err := hellotimecapnp.NewRootHelloResponse(seg)
	if err != nil {
		return err
	}
	return s.SetMessage(x.GetMessage())
}

func (x *HelloResponse) DecodeCapnp(root capnp.Struct) error {
	msg, err := hellotimecapnp.HelloResponse(root).Message()
	if err != nil {
		return fmt.Errorf("decode HelloResponse.message: %w", err)
	}
	x.Message = msg
	return nil
}

func (x *ServerTimeRequest) EncodeCapnp(seg *capnp.Segment) error {
	_, err := hellotimecapnp.NewRootServerTimeRequest(seg)
	return err
}

func (x *ServerTimeRequest) DecodeCapnp(capnp.Struct) error {
	return nil
}

func (x *ServerTimeResponse) EncodeCapnp(seg *capnp.Segment) error {
	s, err := hellotimecapnp.NewRootServerTimeResponse(seg)
	if err != nil {
		return err
	}
	s.SetHours(x.GetHours())
	s.SetMinutes(x.GetMinutes())
	s.SetSeconds(x.GetSeconds())
	if err := s.SetTimezone(x.GetTimezone()); err != nil {
		return err
	}
	return s.SetLocation(x.GetLocation())
}

func (x *ServerTimeResponse) DecodeCapnp(root capnp.Struct) error {
	s := hellotimecapnp.ServerTimeResponse(root)
	tz, err := s.Timezone()
	if err != nil {
		return fmt.Errorf("decode ServerTimeResponse.timezone: %w", err)
	}
	loc, err := s.Location()
	if err != nil {
		return fmt.Errorf("decode ServerTimeResponse.location: %w", err)
	}
	x.Hours = s.Hours()
	x.Minutes = s.Minutes()
	x.Seconds = s.Seconds()
	x.Timezone = tz
	x.Location = loc
	return nil
}

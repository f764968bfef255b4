package serializer

import (
	"testing"

	capnp "capnproto.org/go/capnp/v3"
	pb "github.com/appnet-org/hellotime/proto/hellotime"
	"github.com/appnet-org/hellotime/proto/hellotimecapnp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	grpcproto "google.golang.org/grpc/encoding/proto"
	"google.golang.org/protobuf/proto"
)

var _ encoding.Codec = ProtoSerializer{}
var _ encoding.Codec = CapnpSerializer{}

func TestProtoSerializer_HelloRequestWireFormat(t *testing.T) {
	data, err := ProtoSerializer{}.Marshal(&pb.HelloRequest{Name: "Ann"})
	require.NoError(t, err)

	// field 1, wire type 2 (length-delimited), length 3
	assert.Equal(t, []byte{0x0a, 0x03, 'A', 'n', 'n'}, data)
}

func TestProtoSerializer_EmptyMessagesEncodeToNothing(t *testing.T) {
	data, err := ProtoSerializer{}.Marshal(&pb.HelloRequest{})
	require.NoError(t, err)
	assert.Empty(t, data)

	var req pb.HelloRequest
	require.NoError(t, ProtoSerializer{}.Unmarshal(nil, &req))
	assert.Equal(t, "", req.Name)
}

func TestProtoSerializer_SkipsUnknownFields(t *testing.T) {
	// field 7 varint 150, then field 1 "Bo"
	data := []byte{0x38, 0x96, 0x01, 0x0a, 0x02, 'B', 'o'}

	var req pb.HelloRequest
	require.NoError(t, ProtoSerializer{}.Unmarshal(data, &req))
	assert.Equal(t, "Bo", req.Name)
}

func TestProtoSerializer_RejectsTruncatedInput(t *testing.T) {
	var req pb.HelloRequest
	err := ProtoSerializer{}.Unmarshal([]byte{0x0a, 0x05, 'A'}, &req)
	require.Error(t, err)
}

func TestProtoSerializer_RejectsInvalidUTF8(t *testing.T) {
	_, err := ProtoSerializer{}.Marshal(&pb.HelloRequest{Name: "bad\xff"})
	require.Error(t, err)

	var req pb.HelloRequest
	err = ProtoSerializer{}.Unmarshal([]byte{0x0a, 0x01, 0xff}, &req)
	require.Error(t, err)
}

func TestProtoSerializer_MatchesGRPCDefaultCodec(t *testing.T) {
	want := &pb.ServerTimeResponse{Hours: 7, Minutes: 5, Seconds: 3, Timezone: "+0300", Location: "Europe/Moscow"}

	data, err := encoding.GetCodecV2(grpcproto.Name).Marshal(want)
	require.NoError(t, err)
	defer data.Free()

	got := &pb.ServerTimeResponse{}
	require.NoError(t, ProtoSerializer{}.Unmarshal(data.Materialize(), got))
	assert.True(t, proto.Equal(want, got), "got %v", got)
}

func TestCapnpSerializer_ReadsGeneratedStructs(t *testing.T) {
	data, err := CapnpSerializer{}.Marshal(&pb.ServerTimeResponse{Hours: 21, Minutes: 9, Seconds: 30, Timezone: "+0300", Location: "Europe/Moscow"})
	require.NoError(t, err)

	msg, err := capnp.Unmarshal(data)
	require.NoError(t, err)
	resp, err := hellotimecapnp.ReadRootServerTimeResponse(msg)
	require.NoError(t, err)

	assert.Equal(t, int32(21), resp.Hours())
	assert.Equal(t, int32(9), resp.Minutes())
	assert.Equal(t, int32(30), resp.Seconds())
	tz, err := resp.Timezone()
	require.NoError(t, err)
	assert.Equal(t, "+0300", tz)
}

func TestSerializers_ServerTimeResponse(t *testing.T) {
	want := &pb.ServerTimeResponse{
		Hours:    23,
		Minutes:  0,
		Seconds:  59,
		Timezone: "-0330",
		Location: "Europe/Moscow",
	}

	for _, s := range []Serializer{ProtoSerializer{}, CapnpSerializer{}} {
		t.Run(s.Name(), func(t *testing.T) {
			data, err := s.Marshal(want)
			require.NoError(t, err)

			got := &pb.ServerTimeResponse{}
			require.NoError(t, s.Unmarshal(data, got))
			assert.True(t, proto.Equal(want, got), "got %v", got)
		})
	}
}

func TestSerializers_HelloWithSpecialCharacters(t *testing.T) {
	name := "Zoë \"O'Brien\" <script>✓"

	for _, s := range []Serializer{ProtoSerializer{}, CapnpSerializer{}} {
		t.Run(s.Name(), func(t *testing.T) {
			data, err := s.Marshal(&pb.HelloRequest{Name: name})
			require.NoError(t, err)

			got := &pb.HelloRequest{}
			require.NoError(t, s.Unmarshal(data, got))
			assert.Equal(t, name, got.Name)
		})
	}
}

func TestSerializers_RejectForeignTypes(t *testing.T) {
	for _, s := range []Serializer{ProtoSerializer{}, CapnpSerializer{}} {
		_, err := s.Marshal("not a message")
		assert.Error(t, err, s.Name())

		var x int
		assert.Error(t, s.Unmarshal([]byte{}, &x), s.Name())
	}
}

func TestByName(t *testing.T) {
	s, err := ByName("")
	require.NoError(t, err)
	assert.Equal(t, "proto", s.Name())

	s, err = ByName("capnp")
	require.NoError(t, err)
	assert.Equal(t, "capnp", s.Name())

	_, err = ByName("json")
	assert.Error(t, err)
}

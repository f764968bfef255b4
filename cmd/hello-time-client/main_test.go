package main

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"github.com/appnet-org/hellotime/internal/greeter"
	"github.com/appnet-org/hellotime/pkg/rpc"
	"github.com/appnet-org/hellotime/pkg/serializer"
	pb "github.com/appnet-org/hellotime/proto/hellotime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, codec serializer.Serializer) string {
	t.Helper()
	server := rpc.NewServer("127.0.0.1:0", codec, nil)
	pb.RegisterHelloServiceServer(server, greeter.NewService("Europe/Moscow"))
	require.NoError(t, server.Start())
	t.Cleanup(func() { _ = server.Stop(0) })
	return server.Addr().String()
}

func TestHelloCommand(t *testing.T) {
	addr := startServer(t, serializer.ProtoSerializer{})

	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), []string{"hello-time-client", "--addr", addr, "hello", "Ann"})
	require.NoError(t, err)
	assert.Equal(t, "Greetings you, Ann!\n", out.String())
}

func TestTimeCommandWithCapnp(t *testing.T) {
	addr := startServer(t, serializer.CapnpSerializer{})

	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), []string{"hello-time-client", "--addr", addr, "--serializer", "capnp", "time"})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}:\d{2} [+-]\d{4} \(Europe/Moscow\)\n$`), out.String())
}

func TestUnknownSerializer(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), []string{"hello-time-client", "--serializer", "xml", "time"})
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestInvalidAddr(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), []string{"hello-time-client", "--addr", "127.0.0.1:50051/some/path", "hello", "Ann"})
	assert.ErrorIs(t, err, rpc.ErrInvalidTarget)
	assert.Empty(t, out.String())
}

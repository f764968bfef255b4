package greeter

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/appnet-org/hellotime/pkg/rpc"
	"github.com/appnet-org/hellotime/pkg/serializer"
	pb "github.com/appnet-org/hellotime/proto/hellotime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// startServer runs a HelloService on a loopback port and returns a client for it.
func startServer(t *testing.T, codec serializer.Serializer) pb.HelloServiceClient {
	t.Helper()

	server := rpc.NewServer("127.0.0.1:0", codec, nil)
	pb.RegisterHelloServiceServer(server, NewService(DefaultLocation))
	require.NoError(t, server.Start())
	t.Cleanup(func() { _ = server.Stop(time.Second) })

	client, err := rpc.NewClient(codec, server.Addr().String(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return pb.NewHelloServiceClient(client)
}

func TestHelloService_OverRPC(t *testing.T) {
	for _, codec := range []serializer.Serializer{serializer.ProtoSerializer{}, serializer.CapnpSerializer{}} {
		t.Run(codec.Name(), func(t *testing.T) {
			client := startServer(t, codec)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			resp, err := client.Hello(ctx, &pb.HelloRequest{Name: "Ann"})
			require.NoError(t, err)
			assert.Equal(t, "Greetings you, Ann!", resp.GetMessage())

			resp, err = client.Hello(ctx, &pb.HelloRequest{Name: ""})
			require.NoError(t, err)
			assert.Equal(t, "Greetings you, !", resp.GetMessage())

			st, err := client.ServerTime(ctx, &pb.ServerTimeRequest{})
			require.NoError(t, err)
			assert.Equal(t, DefaultLocation, st.GetLocation())
			assert.NotEmpty(t, st.GetTimezone())
		})
	}
}

// withinWindow reports whether h:m:s falls between from and to (to the second),
// allowing for the window crossing midnight.
func withinWindow(h, m, s int32, from, to time.Time) bool {
	from = from.Truncate(time.Second)
	candidate := time.Date(from.Year(), from.Month(), from.Day(), int(h), int(m), int(s), 0, from.Location())
	for _, c := range []time.Time{candidate, candidate.Add(24 * time.Hour)} {
		if !c.Before(from) && !c.After(to) {
			return true
		}
	}
	return false
}

func TestServerTime_FiftyConcurrentCalls(t *testing.T) {
	client := startServer(t, serializer.ProtoSerializer{})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	from := time.Now()
	responses := make([]*pb.ServerTimeResponse, 50)

	g, gctx := errgroup.WithContext(ctx)
	for i := range responses {
		g.Go(func() error {
			resp, err := client.ServerTime(gctx, &pb.ServerTimeRequest{})
			if err != nil {
				return err
			}
			responses[i] = resp
			return nil
		})
	}
	require.NoError(t, g.Wait())
	to := time.Now()

	for i, resp := range responses {
		require.NotNil(t, resp, "response %d", i)
		assert.True(t, withinWindow(resp.GetHours(), resp.GetMinutes(), resp.GetSeconds(), from, to),
			"response %d: %02d:%02d:%02d outside [%s, %s]", i, resp.GetHours(), resp.GetMinutes(), resp.GetSeconds(),
			from.Format(time.TimeOnly), to.Format(time.TimeOnly))
		assert.Equal(t, DefaultLocation, resp.GetLocation())
	}
}

func TestHello_ConcurrentRPCsKeepTheirNames(t *testing.T) {
	client := startServer(t, serializer.CapnpSerializer{})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < 40; i++ {
		name := fmt.Sprintf("caller-%02d", i)
		g.Go(func() error {
			resp, err := client.Hello(gctx, &pb.HelloRequest{Name: name})
			if err != nil {
				return err
			}
			if resp.GetMessage() != Greeting(name) {
				return fmt.Errorf("got %q for %q", resp.GetMessage(), name)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

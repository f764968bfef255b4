package greeter

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/appnet-org/hellotime/pkg/logging"
	pb "github.com/appnet-org/hellotime/proto/hellotime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHello_Greeting(t *testing.T) {
	svc := NewService(DefaultLocation)

	tests := []struct {
		name string
		want string
	}{
		{name: "Ann", want: "Greetings you, Ann!"},
		{name: "", want: "Greetings you, !"},
		{name: "  spaced  ", want: "Greetings you,   spaced  !"},
		{name: "Zoë 🦊 <b>\"x\"</b>\n", want: "Greetings you, Zoë 🦊 <b>\"x\"</b>\n!"},
	}

	for _, tt := range tests {
		resp, err := svc.Hello(context.Background(), &pb.HelloRequest{Name: tt.name})
		require.NoError(t, err)
		assert.Equal(t, tt.want, resp.GetMessage())
		assert.Equal(t, tt.want, Greeting(tt.name))
	}
}

func TestHello_NilRequestGreetsEmptyName(t *testing.T) {
	resp, err := NewService(DefaultLocation).Hello(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Greetings you, !", resp.GetMessage())
}

func TestHello_LogsNameAndTime(t *testing.T) {
	prev := logging.Logger()
	defer logging.SetLogger(prev)

	core, logs := observer.New(zapcore.InfoLevel)
	logging.SetLogger(zap.New(core))

	fixed := time.Date(2024, 3, 9, 7, 5, 3, 0, time.UTC)
	svc := NewService(DefaultLocation, WithClock(func() time.Time { return fixed }))

	_, err := svc.Hello(context.Background(), &pb.HelloRequest{Name: "Ann"})
	require.NoError(t, err)

	entries := logs.FilterMessage("Hello request received").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Ann", fields["name"])
	assert.Equal(t, "07:05:03", fields["time"])
}

func TestServerTime_FieldsFromClock(t *testing.T) {
	zone := time.FixedZone("MSK", 3*60*60)
	fixed := time.Date(2024, 3, 9, 23, 59, 58, 0, zone)
	svc := NewService("Europe/Moscow", WithClock(func() time.Time { return fixed }))

	resp, err := svc.ServerTime(context.Background(), &pb.ServerTimeRequest{})
	require.NoError(t, err)

	assert.Equal(t, int32(23), resp.GetHours())
	assert.Equal(t, int32(59), resp.GetMinutes())
	assert.Equal(t, int32(58), resp.GetSeconds())
	assert.Equal(t, "+0300", resp.GetTimezone())
	assert.Equal(t, "Europe/Moscow", resp.GetLocation())
}

func TestServerTime_NegativeOffset(t *testing.T) {
	zone := time.FixedZone("NST", -(3*60*60 + 30*60))
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, zone)
	svc := NewService("America/St_Johns", WithClock(func() time.Time { return fixed }))

	resp, err := svc.ServerTime(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "-0330", resp.GetTimezone())
	assert.Equal(t, int32(0), resp.GetHours())
}

// A clock that advances across a minute boundary on every read would expose
// fields taken from different readings.
func TestServerTime_ReadsClockOnce(t *testing.T) {
	base := time.Date(2024, 3, 9, 10, 59, 59, 0, time.UTC)
	var reads int
	svc := NewService(DefaultLocation, WithClock(func() time.Time {
		reads++
		return base.Add(time.Duration(reads-1) * time.Second)
	}))

	resp, err := svc.ServerTime(context.Background(), &pb.ServerTimeRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, reads)
	assert.Equal(t, int32(10), resp.GetHours())
	assert.Equal(t, int32(59), resp.GetMinutes())
	assert.Equal(t, int32(59), resp.GetSeconds())
}

func TestServerTime_RangesWithRealClock(t *testing.T) {
	svc := NewService(DefaultLocation)

	for i := 0; i < 100; i++ {
		resp, err := svc.ServerTime(context.Background(), &pb.ServerTimeRequest{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, resp.GetHours(), int32(0))
		assert.LessOrEqual(t, resp.GetHours(), int32(23))
		assert.GreaterOrEqual(t, resp.GetMinutes(), int32(0))
		assert.LessOrEqual(t, resp.GetMinutes(), int32(59))
		assert.GreaterOrEqual(t, resp.GetSeconds(), int32(0))
		assert.LessOrEqual(t, resp.GetSeconds(), int32(59))
		assert.Equal(t, DefaultLocation, resp.GetLocation())
	}
}

func TestHello_ConcurrentCallsKeepTheirNames(t *testing.T) {
	svc := NewService(DefaultLocation)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("caller-%d", i)
			resp, err := svc.Hello(context.Background(), &pb.HelloRequest{Name: name})
			assert.NoError(t, err)
			assert.Equal(t, Greeting(name), resp.GetMessage())
		}(i)
	}
	wg.Wait()
}

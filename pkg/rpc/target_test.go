package rpc

import (
	"testing"

	"github.com/appnet-org/hellotime/pkg/serializer"
	"github.com/stretchr/testify/assert"
)

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		addr    string
		wantErr bool
	}{
		{addr: "127.0.0.1:50051"},
		{addr: "localhost:50051"},
		{addr: "example.com"},
		{addr: "grpc-1.internal.example.com:443"},
		{addr: "0.0.0.0:0"},
		{addr: "255.255.255.255:65534"},
		{addr: "[::1]:50051"},
		{addr: "[2001:db8::1]"},

		{addr: "", wantErr: true},
		{addr: "http://127.0.0.1:50051", wantErr: true},
		{addr: "dns:///localhost:50051", wantErr: true},
		{addr: "127.0.0.1:50051/some/path", wantErr: true},
		{addr: "localhost/", wantErr: true},
		{addr: "999.1.1.1:70000", wantErr: true},
		{addr: "256.0.0.1:80", wantErr: true},
		{addr: "1.2.3:80", wantErr: true},
		{addr: "1..2.3:80", wantErr: true},
		{addr: "bad host!:1", wantErr: true},
		{addr: "under_score.com:80", wantErr: true},
		{addr: "localhost:65535", wantErr: true},
		{addr: "localhost:-1", wantErr: true},
		{addr: "localhost:http", wantErr: true},
		{addr: "localhost:", wantErr: true},
		{addr: ":50051", wantErr: true},
		{addr: "[::1", wantErr: true},
		{addr: "[127.0.0.1]:80", wantErr: true},
		{addr: "[::1]x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			err := ValidateTarget(tt.addr)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTarget)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewClient_RejectsInvalidTarget(t *testing.T) {
	c, err := NewClient(serializer.ProtoSerializer{}, "http://127.0.0.1:50051", nil)
	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.Nil(t, c)
}

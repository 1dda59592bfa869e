package remote

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"unavailable is transient", status.Error(codes.Unavailable, "down"), ErrUnavailable},
		{"deadline is transient", status.Error(codes.DeadlineExceeded, "slow"), ErrUnavailable},
		{"internal is transient", status.Error(codes.Internal, "oops"), ErrUnavailable},
		{"invalid argument is a rejection", status.Error(codes.InvalidArgument, "bad payload"), ErrRejected},
		{"failed precondition is a rejection", status.Error(codes.FailedPrecondition, "nope"), ErrRejected},
		{"not found", status.Error(codes.NotFound, "unknown id"), ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.mapError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapErrorUnknownCodeIsWrapped(t *testing.T) {
	in := status.Error(codes.PermissionDenied, "denied")
	got := (&GRPCClient{}).mapError(in)

	assert.Error(t, got)
	assert.False(t, errors.Is(got, ErrUnavailable))
	assert.False(t, errors.Is(got, ErrRejected))
	assert.False(t, errors.Is(got, ErrNotFound))
}

package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/brayenid/espj-sub000/internal/client/models"
	pb "github.com/brayenid/espj-sub000/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// GRPCClient implements Client over a gRPC connection. Every call carries a
// bounded timeout so no read or write path can hang on a dead network.
type GRPCClient struct {
	endpointURL string
	callTimeout time.Duration
	conn        *grpc.ClientConn
	client      pb.DraftServiceClient
}

// NewGRPCClient dials endpointURL lazily and bounds every RPC by callTimeout.
func NewGRPCClient(endpointURL string, callTimeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, callTimeout: callTimeout}
	if err := c.initConn(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initConn() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewDraftServiceClient(conn)
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.callTimeout)
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) PutDraft(ctx context.Context, draft *models.DraftRecord) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.PutDraftRequest{Draft: &pb.Draft{
		Id:           draft.Id,
		DocumentType: draft.DocumentType,
		Payload:      draft.Payload,
		UpdatedAt:    draft.UpdatedAt.UnixMilli(),
	}}

	if _, err := s.client.PutDraft(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetDraft(ctx context.Context, id string) (*models.DraftRecord, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetDraft(ctx, &pb.GetDraftRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}

	d := resp.GetDraft()
	if d == nil {
		return nil, ErrNotFound
	}

	return &models.DraftRecord{
		Id:           d.Id,
		DocumentType: d.DocumentType,
		Payload:      d.Payload,
		SyncState:    models.StateSynced,
		UpdatedAt:    time.UnixMilli(d.UpdatedAt).UTC(),
	}, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Internal:
		return ErrUnavailable
	case codes.InvalidArgument, codes.FailedPrecondition:
		return ErrRejected
	case codes.NotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// Package grpc exposes the draft store over gRPC: a reachability probe, an
// idempotent commit endpoint and a fetch endpoint.
package grpc

import (
	"context"
	"net"

	"github.com/brayenid/espj-sub000/internal/logging"
	pb "github.com/brayenid/espj-sub000/internal/proto"
	"github.com/brayenid/espj-sub000/internal/server/repositories/documents"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedDraftServiceServer
	address   string
	documents documents.Repository
	logger    logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, docs documents.Repository) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		documents: docs,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer()

	pb.RegisterDraftServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	pb "github.com/brayenid/espj-sub000/internal/proto"
	"github.com/brayenid/espj-sub000/internal/server/repositories/documents"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

// PutDraft validates and upserts a client-authored draft. Validation
// verdicts come back as InvalidArgument so clients park the draft instead of
// retrying it forever; storage failures come back as Internal, which clients
// treat as transient.
func (s *GRPCServer) PutDraft(ctx context.Context, req *pb.PutDraftRequest) (*pb.PutDraftResponse, error) {

	d := req.GetDraft()
	if err := validateDraft(d); err != nil {
		s.logger.Warn(ctx, "draft rejected", "error", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	doc := &documents.Document{
		ID:           d.Id,
		DocumentType: d.DocumentType,
		Payload:      d.Payload,
		UpdatedAt:    time.UnixMilli(d.UpdatedAt).UTC(),
	}

	if err := s.documents.Upsert(ctx, doc); err != nil {
		s.logger.Error(ctx, "upsert failed", "id", d.Id, "error", err)
		return nil, status.Error(codes.Internal, "storage error")
	}

	s.logger.Info(ctx, "draft committed", "id", d.Id, "type", d.DocumentType)
	return &pb.PutDraftResponse{}, nil

}

func (s *GRPCServer) GetDraft(ctx context.Context, req *pb.GetDraftRequest) (*pb.GetDraftResponse, error) {

	doc, err := s.documents.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		s.logger.Error(ctx, "fetch failed", "id", req.Id, "error", err)
		return nil, status.Error(codes.Internal, "storage error")
	}

	return &pb.GetDraftResponse{Draft: &pb.Draft{
		Id:           doc.ID,
		DocumentType: doc.DocumentType,
		Payload:      doc.Payload,
		UpdatedAt:    doc.UpdatedAt.UnixMilli(),
	}}, nil

}

var (
	errEmptyDraft   = errors.New("draft is required")
	errInvalidId    = errors.New("id must be a UUID")
	errEmptyType    = errors.New("document type is required")
	errBadPayload   = errors.New("payload must be a JSON document")
	errEmptyPayload = errors.New("payload is required")
)

func validateDraft(d *pb.Draft) error {
	if d == nil {
		return errEmptyDraft
	}
	if _, err := uuid.Parse(d.Id); err != nil {
		return errInvalidId
	}
	if d.DocumentType == "" {
		return errEmptyType
	}
	if len(d.Payload) == 0 {
		return errEmptyPayload
	}
	if !json.Valid(d.Payload) {
		return errBadPayload
	}
	return nil
}

package grpc

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/brayenid/espj-sub000/internal/logging"
	pb "github.com/brayenid/espj-sub000/internal/proto"
	"github.com/brayenid/espj-sub000/internal/server/repositories/documents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const testId = "b3a4f1d2-8c5e-4f6a-9b0c-1d2e3f4a5b6c"

func setupServer(t *testing.T) (*GRPCServer, *documents.InMemoryRepository) {
	t.Helper()
	repo := documents.NewInMemoryRepository()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s, err := NewGRPCServer("", logger, repo)
	require.NoError(t, err)
	return s, repo
}

func TestPing(t *testing.T) {
	s, _ := setupServer(t)

	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}

func TestPutDraft_StoresDocument(t *testing.T) {
	s, repo := setupServer(t)
	ctx := context.Background()

	_, err := s.PutDraft(ctx, &pb.PutDraftRequest{Draft: &pb.Draft{
		Id:           testId,
		DocumentType: "TELAAHAN",
		Payload:      []byte(`{"tempatTujuan":"Samarinda"}`),
		UpdatedAt:    1000,
	}})
	require.NoError(t, err)

	doc, err := repo.GetByID(ctx, testId)
	require.NoError(t, err)
	assert.Equal(t, "TELAAHAN", doc.DocumentType)
	assert.JSONEq(t, `{"tempatTujuan":"Samarinda"}`, string(doc.Payload))
}

// A replayed commit with the same id must not duplicate or error.
func TestPutDraft_IdempotentReplay(t *testing.T) {
	s, repo := setupServer(t)
	ctx := context.Background()

	req := &pb.PutDraftRequest{Draft: &pb.Draft{
		Id:           testId,
		DocumentType: "TELAAHAN",
		Payload:      []byte(`{"tempatTujuan":"Samarinda"}`),
		UpdatedAt:    1000,
	}}

	_, err := s.PutDraft(ctx, req)
	require.NoError(t, err)
	_, err = s.PutDraft(ctx, req)
	require.NoError(t, err)

	doc, err := repo.GetByID(ctx, testId)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tempatTujuan":"Samarinda"}`, string(doc.Payload))
}

func TestPutDraft_Validation(t *testing.T) {
	s, _ := setupServer(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		draft *pb.Draft
	}{
		{name: "missing draft", draft: nil},
		{name: "bad id", draft: &pb.Draft{Id: "not-a-uuid", DocumentType: "TELAAHAN", Payload: []byte(`{}`)}},
		{name: "empty type", draft: &pb.Draft{Id: testId, DocumentType: "", Payload: []byte(`{}`)}},
		{name: "empty payload", draft: &pb.Draft{Id: testId, DocumentType: "TELAAHAN"}},
		{name: "payload not json", draft: &pb.Draft{Id: testId, DocumentType: "TELAAHAN", Payload: []byte("<html>")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.PutDraft(ctx, &pb.PutDraftRequest{Draft: tt.draft})
			require.Error(t, err)
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, codes.InvalidArgument, st.Code())
		})
	}
}

func TestGetDraft(t *testing.T) {
	s, repo := setupServer(t)
	ctx := context.Background()

	_, err := s.GetDraft(ctx, &pb.GetDraftRequest{Id: testId})
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.NotFound, st.Code())

	require.NoError(t, repo.Upsert(ctx, &documents.Document{
		ID:           testId,
		DocumentType: "TELAAHAN",
		Payload:      []byte(`{"tempatTujuan":"Samarinda"}`),
	}))

	resp, err := s.GetDraft(ctx, &pb.GetDraftRequest{Id: testId})
	require.NoError(t, err)
	assert.Equal(t, testId, resp.Draft.Id)
	assert.Equal(t, "TELAAHAN", resp.Draft.DocumentType)
}

package journal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/alexbilevskiy/tdapi/internal/db"
	"github.com/alexbilevskiy/tdapi/pkg/tdapi"
)

type memStore struct {
	mu      sync.Mutex
	records []*db.Record
	finds   int
	fail    error
}

func (m *memStore) Append(_ context.Context, rec *db.Record) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return "", m.fail
	}
	rec.Id = strconv.Itoa(len(m.records) + 1)
	m.records = append(m.records, rec)
	return rec.Id, nil
}

func (m *memStore) FindByExtra(_ context.Context, extra string) ([]*db.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finds++
	if m.fail != nil {
		return nil, m.fail
	}
	var out []*db.Record
	for _, rec := range m.records {
		if rec.Extra == extra {
			out = append(out, rec)
		}
	}
	return out, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, store Store) *Client {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	RegisterJournalServer(srv, NewService(discardLogger(), store, 16, time.Minute))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewClient(conn)
}

func TestDecode(t *testing.T) {
	c := newTestClient(t, &memStore{})
	req := tdapi.NewGetMessageBuilder().Extra("d-1").ChatId(10).MessageId(20).Build()

	obj, err := c.Decode(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, req, obj)
}

func TestAppendAndFind(t *testing.T) {
	store := &memStore{}
	c := newTestClient(t, store)
	ctx := context.Background()

	req := tdapi.NewGetMeBuilder().Extra("x-1").Build()
	res, err := c.Append(ctx, req)
	require.NoError(t, err)
	require.Equal(t, &Appended{Id: "1", Constructor: "getMe", Class: "User", Extra: "x-1"}, res)

	user := &tdapi.User{Id: 5, FirstName: "Ann"}
	user.Extra = "x-1"
	_, err = c.Append(ctx, user)
	require.NoError(t, err)

	found, err := c.Find(ctx, "x-1")
	require.NoError(t, err)
	require.Len(t, found, 2)
	require.Equal(t, req, found[0])
	require.Equal(t, "Ann", found[1].(*tdapi.User).FirstName)

	// served from cache
	_, err = c.Find(ctx, "x-1")
	require.NoError(t, err)
	require.Equal(t, 1, store.finds)

	// append invalidates the cached entry
	_, err = c.Append(ctx, tdapi.NewGetMeBuilder().Extra("x-1").Build())
	require.NoError(t, err)
	found, err = c.Find(ctx, "x-1")
	require.NoError(t, err)
	require.Len(t, found, 3)
	require.Equal(t, 2, store.finds)

	empty, err := c.Find(ctx, "missing")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestErrors(t *testing.T) {
	store := &memStore{}
	svc := NewService(discardLogger(), store, 16, time.Minute)
	c := newTestClient(t, store)
	ctx := context.Background()

	_, err := c.Find(ctx, "")
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	in := &structpb.Struct{}
	require.NoError(t, protojson.Unmarshal([]byte(`{"@type":"unknownThing"}`), in))
	_, err = svc.Decode(ctx, in)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = svc.Append(ctx, in)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	store.fail = errors.New("disk full")
	_, err = c.Append(ctx, tdapi.NewGetMeBuilder().Build())
	require.Equal(t, codes.Internal, status.Code(err))
	_, err = c.Find(ctx, "y")
	require.Equal(t, codes.Internal, status.Code(err))
}

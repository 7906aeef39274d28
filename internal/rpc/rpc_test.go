package rpc

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/alexbilevskiy/tdapi/internal/db"
	"github.com/alexbilevskiy/tdapi/internal/journal"
	"github.com/alexbilevskiy/tdapi/pkg/tdapi"
)

type memStore struct {
	mu      sync.Mutex
	records []*db.Record
}

func (m *memStore) Append(_ context.Context, rec *db.Record) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.Id = strconv.Itoa(len(m.records) + 1)
	m.records = append(m.records, rec)
	return rec.Id, nil
}

func (m *memStore) FindByExtra(_ context.Context, extra string) ([]*db.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*db.Record
	for _, rec := range m.records {
		if rec.Extra == extra {
			out = append(out, rec)
		}
	}
	return out, nil
}

func TestServeGrpcAndGatewayOnOnePort(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, err := NewServer(log, journal.NewService(log, &memStore{}, 8, time.Minute))
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	client := journal.NewClient(conn)

	res, err := client.Append(ctx, tdapi.NewGetMeBuilder().Extra("one-port").Build())
	require.NoError(t, err)
	require.Equal(t, "getMe", res.Constructor)

	resp, err := http.Post("http://"+lis.Addr().String()+"/v1/decode", "application/json",
		bytes.NewBufferString(`{"@type":"ok","@extra":"h"}`))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"@type":"ok","@extra":"h"}`, string(body))

	resp, err = http.Get("http://" + lis.Addr().String() + "/v1/records/one-port")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, conn.Close())
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestInterceptorLogger(t *testing.T) {
	var buf bytes.Buffer
	l := InterceptorLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	l.Log(context.Background(), logging.LevelInfo, "finished call", "grpc.code", "OK")
	require.Contains(t, buf.String(), "level=INFO")
	require.Contains(t, buf.String(), "component=rpc")
	require.Contains(t, buf.String(), "grpc.code=OK")
}

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/alexbilevskiy/tdapi/internal/db"
	"github.com/alexbilevskiy/tdapi/internal/journal"
)

func TestDecodeLines(t *testing.T) {
	in := strings.Join([]string{
		`{"@type":"getMessage","@extra":"a1","chat_id":1,"message_id":2}`,
		``,
		`{"@type":"updateNewMessage","message":{"@type":"message","id":1}}`,
		`{"@type":"noSuchThing"}`,
		`{"@type":"ok","@extra":"z"}`,
	}, "\n")
	var out, errOut bytes.Buffer

	err := decodeLines(strings.NewReader(in), &out, &errOut)
	require.EqualError(t, err, "1 of 4 lines failed to decode")
	require.Equal(t, "getMessage Message a1\nupdateNewMessage Update -\nok Ok z\n", out.String())
	require.Contains(t, errOut.String(), "line 4:")
	require.Contains(t, errOut.String(), "noSuchThing")

	out.Reset()
	require.NoError(t, decodeLines(strings.NewReader(`{"@type":"ok"}`+"\n"), &out, &errOut))
	require.Equal(t, "ok Ok -\n", out.String())
}

func TestDecodeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.ndjson")
	require.NoError(t, os.WriteFile(path, []byte(`{"@type":"getMe","@extra":"me"}`+"\n"), 0o600))

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"decode", path})
	require.NoError(t, root.Execute())
	require.Equal(t, "getMe User me\n", out.String())

	root = newRootCommand()
	out.Reset()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader("{\"@type\":\"bad\"}\n"))
	root.SetArgs([]string{"decode", "-"})
	require.Error(t, root.Execute())
	require.Empty(t, out.String())
}

func TestGenerate(t *testing.T) {
	out := t.TempDir()
	n, err := generate("../../schema/td_api.tl", out, "tdapi")
	require.NoError(t, err)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, n)

	for _, name := range []string{"constructors.go", "classes.go", "unmarshaler.go", "get_message.go", "message.go"} {
		data, err := os.ReadFile(filepath.Join(out, name))
		require.NoError(t, err, name)
		require.True(t, bytes.HasPrefix(data, []byte("// Code generated by tlgen. DO NOT EDIT.")), name)
	}

	_, err = generate(filepath.Join(out, "missing.tl"), out, "tdapi")
	require.ErrorContains(t, err, "read schema")
}

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

func (m *memStore) FindByExtra(context.Context, string) ([]*db.Record, error) {
	return nil, nil
}

func TestPushLines(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := &memStore{}

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	journal.RegisterJournalServer(srv, journal.NewService(log, store, 4, time.Minute))
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

	in := `{"@type":"getMe","@extra":"p1"}` + "\n" + `{"@type":"broken"` + "\n" + `{"@type":"ok"}` + "\n"
	var out bytes.Buffer
	err = pushLines(context.Background(), log, journal.NewClient(conn), strings.NewReader(in), &out)
	require.EqualError(t, err, "1 of 3 lines failed to push")
	require.Equal(t, "1 getMe p1\n2 ok -\n", out.String())
	require.Len(t, store.records, 2)
}

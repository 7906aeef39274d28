package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/alexbilevskiy/tdapi/internal/config"
	"github.com/alexbilevskiy/tdapi/pkg/tdapi"
)

func TestPayloadConversion(t *testing.T) {
	in := []byte(`{"@type":"message","@extra":"e","id":9007199254740993,"chat_id":-100,` +
		`"content":{"@type":"messageText","text":{"@type":"formattedText","text":"hi","entities":[]}},` +
		`"reply_markup":null,"is_pinned":true}`)

	raw, err := payloadToBSON(in)
	require.NoError(t, err)
	require.Equal(t, "message", raw.Lookup("@type").StringValue())
	require.EqualValues(t, 9007199254740993, raw.Lookup("id").Int64())

	out, err := payloadFromBSON(raw)
	require.NoError(t, err)
	require.JSONEq(t, string(in), string(out))

	want, err := tdapi.UnmarshalObject(in)
	require.NoError(t, err)
	got, err := tdapi.UnmarshalObject(out)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestPayloadConversionRejectsNonObjects(t *testing.T) {
	_, err := payloadToBSON([]byte(`[1,2]`))
	require.Error(t, err)

	_, err = payloadToBSON([]byte(`{"@type":`))
	require.Error(t, err)
}

func TestRecordDoc(t *testing.T) {
	rec := &Record{
		Constructor: "ok",
		Class:       "Ok",
		Extra:       "x",
		ClientId:    2,
		Payload:     []byte(`{"@type":"ok","@extra":"x"}`),
	}
	doc, err := toDoc(rec)
	require.NoError(t, err)
	require.True(t, doc.Id.IsZero())
	require.False(t, doc.ReceivedAt.IsZero())
	require.Equal(t, time.UTC, doc.ReceivedAt.Location())

	back, err := fromDoc(doc)
	require.NoError(t, err)
	require.Equal(t, rec.Constructor, back.Constructor)
	require.Equal(t, rec.ClientId, back.ClientId)
	require.JSONEq(t, string(rec.Payload), string(back.Payload))

	_, err = toDoc(&Record{Id: "nope", Payload: []byte(`{}`)})
	require.ErrorContains(t, err, "record id")
}

// TestRecordsStorage needs a running mongod at TDAPI_TEST_MONGO_URI.
func TestRecordsStorage(t *testing.T) {
	uri := os.Getenv("TDAPI_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TDAPI_TEST_MONGO_URI is not set")
	}
	ctx := context.Background()
	cfg := &config.Config{Mongo: map[string]string{"uri": uri, "db": "tdapi_test"}}
	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	rs := NewRecordsStorage(cfg, client)
	require.NoError(t, rs.EnsureIndexes(ctx))

	extra := uuid.NewString()
	base := time.Now().Add(-time.Minute)
	for i, payload := range []string{
		`{"@type":"getMe","@extra":"` + extra + `"}`,
		`{"@type":"user","@extra":"` + extra + `","id":1,"first_name":"a"}`,
	} {
		obj, err := tdapi.UnmarshalObject([]byte(payload))
		require.NoError(t, err)
		id, err := rs.Append(ctx, &Record{
			Constructor: obj.Constructor(),
			Class:       obj.Class(),
			Extra:       extra,
			ReceivedAt:  base.Add(time.Duration(i) * time.Second),
			Payload:     []byte(payload),
		})
		require.NoError(t, err)
		require.NotEmpty(t, id)
	}

	records, err := rs.FindByExtra(ctx, extra)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "getMe", records[0].Constructor)
	require.Equal(t, "user", records[1].Constructor)

	none, err := rs.FindByExtra(ctx, uuid.NewString())
	require.NoError(t, err)
	require.Empty(t, none)
}

package journal

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

func newTestGateway(t *testing.T, store Store) *httptest.Server {
	t.Helper()
	h, err := NewGateway(discardLogger(), NewService(discardLogger(), store, 16, time.Minute))
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, method, url, body string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestGatewayDecode(t *testing.T) {
	srv := newTestGateway(t, &memStore{})

	code, body := doRequest(t, http.MethodPost, srv.URL+"/v1/decode",
		`{"@type":"getMessage","chat_id":1,"message_id":2,"@extra":"g"}`)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"@type":"getMessage","@extra":"g","chat_id":1,"message_id":2}`, body)

	code, body = doRequest(t, http.MethodPost, srv.URL+"/v1/decode", `{"@type":"nope"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, body, "nope")

	code, _ = doRequest(t, http.MethodPost, srv.URL+"/v1/decode", `{"@type":`)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestGatewayRecords(t *testing.T) {
	srv := newTestGateway(t, &memStore{})

	code, body := doRequest(t, http.MethodPost, srv.URL+"/v1/records", `{"@type":"ok","@extra":"r-1"}`)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"id":"1","@type":"ok","class":"Ok","@extra":"r-1"}`, body)

	code, body = doRequest(t, http.MethodGet, srv.URL+"/v1/records/r-1", "")
	require.Equal(t, http.StatusOK, code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Equal(t, []map[string]any{{"@type": "ok", "@extra": "r-1"}}, list)

	code, _ = doRequest(t, http.MethodGet, srv.URL+"/v1/records/other", "")
	require.Equal(t, http.StatusOK, code)

	code, _ = doRequest(t, http.MethodGet, srv.URL+"/v1/unknown", "")
	require.Equal(t, http.StatusNotFound, code)
}

func TestServiceDescriptorRegistered(t *testing.T) {
	d, err := protoregistry.GlobalFiles.FindDescriptorByName(protoreflect.FullName(ServiceName))
	require.NoError(t, err)
	sd, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	require.Equal(t, len(ServiceDesc.Methods), sd.Methods().Len())
	for _, m := range ServiceDesc.Methods {
		require.NotNil(t, sd.Methods().ByName(protoreflect.Name(m.MethodName)), m.MethodName)
	}
}

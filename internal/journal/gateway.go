package journal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// NewGateway exposes srv over HTTP/JSON:
//
//	POST /v1/decode           Decode
//	POST /v1/records          Append
//	GET  /v1/records/{extra}  Find
func NewGateway(log *slog.Logger, srv JournalServer) (http.Handler, error) {
	mux := runtime.NewServeMux()

	routes := []struct {
		method, path string
		h            runtime.HandlerFunc
	}{
		{http.MethodPost, "/v1/decode", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
			in := new(structpb.Struct)
			if !readBody(mux, w, r, in) {
				return
			}
			out, err := srv.Decode(r.Context(), in)
			writeResponse(mux, w, r, out, err)
		}},
		{http.MethodPost, "/v1/records", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
			in := new(structpb.Struct)
			if !readBody(mux, w, r, in) {
				return
			}
			out, err := srv.Append(r.Context(), in)
			writeResponse(mux, w, r, out, err)
		}},
		{http.MethodGet, "/v1/records/{extra}", func(w http.ResponseWriter, r *http.Request, params map[string]string) {
			out, err := srv.Find(r.Context(), wrapperspb.String(params["extra"]))
			writeResponse(mux, w, r, out, err)
		}},
	}
	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.path, route.h); err != nil {
			return nil, err
		}
	}

	return logging(log, mux), nil
}

func readBody(mux *runtime.ServeMux, w http.ResponseWriter, r *http.Request, msg proto.Message) bool {
	inbound, outbound := runtime.MarshalerForRequest(mux, r)
	if err := inbound.NewDecoder(r.Body).Decode(msg); err != nil {
		runtime.HTTPError(r.Context(), mux, outbound, w, r, status.Errorf(codes.InvalidArgument, "read body: %v", err))
		return false
	}

	return true
}

func writeResponse(mux *runtime.ServeMux, w http.ResponseWriter, r *http.Request, resp proto.Message, err error) {
	_, outbound := runtime.MarshalerForRequest(mux, r)
	if err != nil {
		runtime.HTTPError(r.Context(), mux, outbound, w, r, err)
		return
	}
	data, err := outbound.Marshal(resp)
	if err != nil {
		runtime.HTTPError(r.Context(), mux, outbound, w, r, status.Errorf(codes.Internal, "marshal response: %v", err))
		return
	}
	w.Header().Set("Content-Type", outbound.ContentType(resp))
	_, _ = w.Write(data)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logging(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)
		log.Info("http request", "method", req.Method, "uri", req.RequestURI, "status", rec.status, "duration", time.Since(start))
	})
}

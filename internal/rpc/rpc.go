// Package rpc runs the journal gRPC service and its HTTP gateway on a single
// plaintext port.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/alexbilevskiy/tdapi/internal/journal"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	log  *slog.Logger
	grpc *grpc.Server
	http *http.Server
}

func NewServer(log *slog.Logger, svc journal.JournalServer) (*Server, error) {
	opts := []logging.Option{
		logging.WithLogOnEvents(logging.StartCall, logging.FinishCall),
	}

	g := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(InterceptorLogger(log), opts...),
		),
		grpc.ChainStreamInterceptor(
			logging.StreamServerInterceptor(InterceptorLogger(log), opts...),
		),
	)
	journal.RegisterJournalServer(g, svc)
	reflection.Register(g)

	gateway, err := journal.NewGateway(log, svc)
	if err != nil {
		return nil, fmt.Errorf("create gateway: %w", err)
	}

	mixed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ProtoMajor == 2 && strings.HasPrefix(r.Header.Get("Content-Type"), "application/grpc") {
			g.ServeHTTP(w, r)
			return
		}
		gateway.ServeHTTP(w, r)
	})

	return &Server{
		log:  log,
		grpc: g,
		http: &http.Server{
			Handler:           h2c.NewHandler(mixed, &http2.Server{}),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run listens on addr and serves until ctx is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("cant create listener: %w", err)
	}

	return s.Serve(ctx, listener)
}

// Serve serves on listener until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.log.Info("serving journal", "addr", listener.Addr().String())

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := s.http.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("cant serve: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		s.log.Info("shutting rpc down", "addr", listener.Addr().String())

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := s.http.Shutdown(sctx)
		s.grpc.Stop()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return eg.Wait()
}

func InterceptorLogger(l *slog.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		var level slog.Level
		switch lvl {
		case logging.LevelDebug:
			level = slog.LevelDebug
		case logging.LevelInfo:
			level = slog.LevelInfo
		case logging.LevelWarn:
			level = slog.LevelWarn
		case logging.LevelError:
			level = slog.LevelError
		default:
			panic(fmt.Sprintf("unknown level %v", lvl))
		}
		l.Log(ctx, level, msg, append([]any{"component", "rpc"}, fields...)...)
	})
}

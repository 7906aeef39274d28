// Package journal stores TDJSON objects and serves them over gRPC and HTTP.
package journal

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/alexbilevskiy/tdapi/internal/db"
	"github.com/alexbilevskiy/tdapi/pkg/tdapi/tdpb"
)

// Store is the record storage behind the service. *db.RecordsStorage
// implements it.
type Store interface {
	Append(ctx context.Context, rec *db.Record) (string, error)
	FindByExtra(ctx context.Context, extra string) ([]*db.Record, error)
}

type Service struct {
	log    *slog.Logger
	store  Store
	recent *expirable.LRU[string, []*db.Record]
}

var _ JournalServer = (*Service)(nil)

// NewService caches Find results for up to cacheSize @extra values for ttl.
func NewService(log *slog.Logger, store Store, cacheSize int, ttl time.Duration) *Service {
	return &Service{
		log:    log,
		store:  store,
		recent: expirable.NewLRU[string, []*db.Record](cacheSize, nil, ttl),
	}
}

func (s *Service) Decode(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	obj, err := tdpb.StructToObject(in)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "decode: %v", err)
	}
	out, err := tdpb.ObjectToStruct(obj)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode %s: %v", obj.Constructor(), err)
	}

	return out, nil
}

func (s *Service) Append(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	obj, err := tdpb.StructToObject(in)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "decode: %v", err)
	}
	payload, err := json.Marshal(obj)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode %s: %v", obj.Constructor(), err)
	}

	rec := &db.Record{
		Constructor: obj.Constructor(),
		Class:       obj.Class(),
		Extra:       obj.GetExtra(),
		ClientId:    obj.GetClientId(),
		ReceivedAt:  time.Now(),
		Payload:     payload,
	}
	id, err := s.store.Append(ctx, rec)
	if err != nil {
		s.log.Error("failed to append record", "constructor", rec.Constructor, "extra", rec.Extra, "error", err)
		return nil, status.Errorf(codes.Internal, "append %s: %v", rec.Constructor, err)
	}
	if rec.Extra != "" {
		s.recent.Remove(rec.Extra)
	}
	s.log.Debug("appended record", "id", id, "constructor", rec.Constructor, "extra", rec.Extra)

	return structpb.NewStruct(map[string]any{
		"id":     id,
		"@type":  rec.Constructor,
		"class":  rec.Class,
		"@extra": rec.Extra,
	})
}

func (s *Service) Find(ctx context.Context, in *wrapperspb.StringValue) (*structpb.ListValue, error) {
	extra := in.GetValue()
	if extra == "" {
		return nil, status.Error(codes.InvalidArgument, "empty @extra")
	}

	records, ok := s.recent.Get(extra)
	if !ok {
		var err error
		records, err = s.store.FindByExtra(ctx, extra)
		if err != nil {
			s.log.Error("failed to find records", "extra", extra, "error", err)
			return nil, status.Errorf(codes.Internal, "find %s: %v", extra, err)
		}
		s.recent.Add(extra, records)
	}

	out := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(records))}
	for _, rec := range records {
		st := &structpb.Struct{}
		if err := protojson.Unmarshal(rec.Payload, st); err != nil {
			return nil, status.Errorf(codes.Internal, "record %s: %v", rec.Id, err)
		}
		out.Values = append(out.Values, structpb.NewStructValue(st))
	}

	return out, nil
}

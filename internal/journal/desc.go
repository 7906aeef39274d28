package journal

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName = "tdapi.journal.v1.Journal"
	protoFile   = "tdapi/journal/v1/journal.proto"

	DecodeMethod = "/" + ServiceName + "/Decode"
	AppendMethod = "/" + ServiceName + "/Append"
	FindMethod   = "/" + ServiceName + "/Find"
)

// JournalServer is the server API of the journal service.
type JournalServer interface {
	// Decode validates a TDJSON object and returns its canonical form.
	Decode(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// Append validates and stores a TDJSON object.
	Append(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// Find returns stored objects sharing an @extra, oldest first.
	Find(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
}

func RegisterJournalServer(s grpc.ServiceRegistrar, srv JournalServer) {
	s.RegisterService(&ServiceDesc, srv)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*JournalServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Decode", Handler: decodeHandler},
		{MethodName: "Append", Handler: appendHandler},
		{MethodName: "Find", Handler: findHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: protoFile,
}

func decodeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JournalServer).Decode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DecodeMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JournalServer).Decode(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func appendHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JournalServer).Append(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AppendMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JournalServer).Append(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func findHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JournalServer).Find(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FindMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JournalServer).Find(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// The service has no generated .proto package, so its descriptor is
// registered by hand for server reflection.
func init() {
	method := func(name, in, out string) *descriptorpb.MethodDescriptorProto {
		return &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(name),
			InputType:  proto.String(in),
			OutputType: proto.String(out),
		}
	}
	fdp := &descriptorpb.FileDescriptorProto{
		Name:       proto.String(protoFile),
		Package:    proto.String("tdapi.journal.v1"),
		Dependency: []string{"google/protobuf/struct.proto", "google/protobuf/wrappers.proto"},
		Syntax:     proto.String("proto3"),
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("Journal"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("Decode", ".google.protobuf.Struct", ".google.protobuf.Struct"),
				method("Append", ".google.protobuf.Struct", ".google.protobuf.Struct"),
				method("Find", ".google.protobuf.StringValue", ".google.protobuf.ListValue"),
			},
		}},
	}
	fd, err := protodesc.NewFile(fdp, protoregistry.GlobalFiles)
	if err != nil {
		panic(err)
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(err)
	}
}

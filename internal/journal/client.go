package journal

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/alexbilevskiy/tdapi/pkg/tdapi"
	"github.com/alexbilevskiy/tdapi/pkg/tdapi/tdpb"
)

// Appended describes a stored record.
type Appended struct {
	Id          string
	Constructor string
	Class       string
	Extra       string
}

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) Decode(ctx context.Context, obj tdapi.Object, opts ...grpc.CallOption) (tdapi.Object, error) {
	in, err := tdpb.ObjectToStruct(obj)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, DecodeMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return tdpb.StructToObject(out)
}

func (c *Client) Append(ctx context.Context, obj tdapi.Object, opts ...grpc.CallOption) (*Appended, error) {
	in, err := tdpb.ObjectToStruct(obj)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, AppendMethod, in, out, opts...); err != nil {
		return nil, err
	}
	fields := out.GetFields()

	return &Appended{
		Id:          fields["id"].GetStringValue(),
		Constructor: fields["@type"].GetStringValue(),
		Class:       fields["class"].GetStringValue(),
		Extra:       fields["@extra"].GetStringValue(),
	}, nil
}

func (c *Client) Find(ctx context.Context, extra string, opts ...grpc.CallOption) ([]tdapi.Object, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, FindMethod, wrapperspb.String(extra), out, opts...); err != nil {
		return nil, err
	}

	objects := make([]tdapi.Object, 0, len(out.GetValues()))
	for i, v := range out.GetValues() {
		st := v.GetStructValue()
		if st == nil {
			return nil, fmt.Errorf("record %d is not an object", i)
		}
		obj, err := tdpb.StructToObject(st)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		objects = append(objects, obj)
	}

	return objects, nil
}

// Package tdpb converts TDJSON records to and from protobuf well-known types.
package tdpb

import (
	"encoding/json"
	"fmt"
	"sort"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/alexbilevskiy/tdapi/pkg/tdapi"
)

// ValueToProto maps a JsonValue onto structpb.Value. A nil value becomes a
// null value. Object members with duplicate keys keep the last one.
func ValueToProto(v tdapi.JsonValue) (*structpb.Value, error) {
	switch v := v.(type) {
	case nil, *tdapi.JsonValueNull:
		return structpb.NewNullValue(), nil
	case *tdapi.JsonValueBoolean:
		return structpb.NewBoolValue(v.Value), nil
	case *tdapi.JsonValueNumber:
		return structpb.NewNumberValue(v.Value), nil
	case *tdapi.JsonValueString:
		return structpb.NewStringValue(v.Value), nil
	case *tdapi.JsonValueArray:
		list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(v.Values))}
		for _, item := range v.Values {
			pv, err := ValueToProto(item)
			if err != nil {
				return nil, err
			}
			list.Values = append(list.Values, pv)
		}
		return structpb.NewListValue(list), nil
	case *tdapi.JsonValueObject:
		s := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(v.Members))}
		for _, m := range v.Members {
			if m == nil {
				continue
			}
			pv, err := ValueToProto(m.Value)
			if err != nil {
				return nil, err
			}
			s.Fields[m.Key] = pv
		}
		return structpb.NewStructValue(s), nil
	default:
		return nil, fmt.Errorf("unsupported json value %s", v.Constructor())
	}
}

// ValueFromProto is the inverse of ValueToProto. Object members come out
// sorted by key.
func ValueFromProto(v *structpb.Value) (tdapi.JsonValue, error) {
	switch k := v.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return &tdapi.JsonValueNull{}, nil
	case *structpb.Value_BoolValue:
		return &tdapi.JsonValueBoolean{Value: k.BoolValue}, nil
	case *structpb.Value_NumberValue:
		return &tdapi.JsonValueNumber{Value: k.NumberValue}, nil
	case *structpb.Value_StringValue:
		return &tdapi.JsonValueString{Value: k.StringValue}, nil
	case *structpb.Value_ListValue:
		out := &tdapi.JsonValueArray{Values: make([]tdapi.JsonValue, 0, len(k.ListValue.GetValues()))}
		for _, item := range k.ListValue.GetValues() {
			jv, err := ValueFromProto(item)
			if err != nil {
				return nil, err
			}
			out.Values = append(out.Values, jv)
		}
		return out, nil
	case *structpb.Value_StructValue:
		fields := k.StructValue.GetFields()
		keys := make([]string, 0, len(fields))
		for key := range fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		out := &tdapi.JsonValueObject{Members: make([]*tdapi.JsonObjectMember, 0, len(keys))}
		for _, key := range keys {
			jv, err := ValueFromProto(fields[key])
			if err != nil {
				return nil, err
			}
			out.Members = append(out.Members, &tdapi.JsonObjectMember{Key: key, Value: jv})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported struct value kind %T", k)
	}
}

// ObjectToStruct renders obj in its TDJSON form as a structpb.Struct. Numbers
// become doubles, so int53 values above 2^53 lose precision; int64 fields are
// strings on the wire and are not affected.
func ObjectToStruct(obj tdapi.Object) (*structpb.Struct, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", obj.Constructor(), err)
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("convert %s: %w", obj.Constructor(), err)
	}
	return s, nil
}

// StructToObject decodes a TDJSON object held in a structpb.Struct.
func StructToObject(s *structpb.Struct) (tdapi.Object, error) {
	data, err := protojson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("convert struct: %w", err)
	}
	return tdapi.UnmarshalObject(data)
}

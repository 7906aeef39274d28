package tdpb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/alexbilevskiy/tdapi/pkg/tdapi"
)

func TestValueRoundTrip(t *testing.T) {
	in := &tdapi.JsonValueObject{Members: []*tdapi.JsonObjectMember{
		{Key: "a", Value: &tdapi.JsonValueNumber{Value: 1.5}},
		{Key: "b", Value: &tdapi.JsonValueArray{Values: []tdapi.JsonValue{
			&tdapi.JsonValueBoolean{Value: true},
			&tdapi.JsonValueNull{},
			&tdapi.JsonValueString{Value: "x"},
		}}},
		{Key: "c", Value: &tdapi.JsonValueObject{Members: []*tdapi.JsonObjectMember{}}},
	}}

	pv, err := ValueToProto(in)
	require.NoError(t, err)

	want, err := structpb.NewValue(map[string]any{
		"a": 1.5,
		"b": []any{true, nil, "x"},
		"c": map[string]any{},
	})
	require.NoError(t, err)
	if diff := cmp.Diff(want, pv, protocmp.Transform()); diff != "" {
		t.Fatalf("proto mismatch (-want +got):\n%s", diff)
	}

	back, err := ValueFromProto(pv)
	require.NoError(t, err)
	require.Equal(t, tdapi.JsonValue(in), back)
}

func TestValueFromProtoSortsKeys(t *testing.T) {
	pv, err := structpb.NewValue(map[string]any{"z": 1.0, "a": 2.0})
	require.NoError(t, err)

	jv, err := ValueFromProto(pv)
	require.NoError(t, err)
	obj := jv.(*tdapi.JsonValueObject)
	require.Equal(t, "a", obj.Members[0].Key)
	require.Equal(t, "z", obj.Members[1].Key)
}

func TestNilValue(t *testing.T) {
	pv, err := ValueToProto(nil)
	require.NoError(t, err)
	require.IsType(t, &structpb.Value_NullValue{}, pv.GetKind())

	jv, err := ValueFromProto(nil)
	require.NoError(t, err)
	require.Equal(t, &tdapi.JsonValueNull{}, jv)
}

func TestObjectStructRoundTrip(t *testing.T) {
	req := tdapi.NewSendMessageBuilder().
		Extra("e-1").
		ChatId(-1001).
		InputMessageContent(&tdapi.InputMessageText{Text: &tdapi.FormattedText{Text: "hello", Entities: []*tdapi.TextEntity{}}}).
		Build()

	s, err := ObjectToStruct(req)
	require.NoError(t, err)
	require.Equal(t, "sendMessage", s.GetFields()["@type"].GetStringValue())
	require.Equal(t, "e-1", s.GetFields()["@extra"].GetStringValue())
	require.EqualValues(t, -1001, s.GetFields()["chat_id"].GetNumberValue())

	obj, err := StructToObject(s)
	require.NoError(t, err)
	require.Equal(t, req, obj)
}

func TestStructToObjectUnknown(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{"@type": "nope"})
	require.NoError(t, err)
	_, err = StructToObject(s)
	require.ErrorIs(t, err, tdapi.ErrUnknownConstructor)
}

package tdapi

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGetMessageBuilder(t *testing.T) {
	req := NewGetMessageBuilder().ChatId(100).MessageId(5).Build()

	require.EqualValues(t, 100, req.ChatId)
	require.EqualValues(t, 5, req.GetMessageId())
	require.Equal(t, ConstructorGetMessage, req.Constructor())
	require.Equal(t, ClassMessage, req.Class())

	id, err := uuid.Parse(req.GetExtra())
	require.NoError(t, err)
	require.Equal(t, uuid.Version(4), id.Version())

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))
	require.Equal(t, map[string]any{
		"@type":      "getMessage",
		"@extra":     req.Extra,
		"chat_id":    float64(100),
		"message_id": float64(5),
	}, wire)
}

func TestBuilderExtraIsUnique(t *testing.T) {
	a := NewGetMeBuilder().Build()
	b := NewGetMeBuilder().Build()
	require.NotEmpty(t, a.Extra)
	require.NotEqual(t, a.Extra, b.Extra)
}

func TestBuilderOverrides(t *testing.T) {
	req := NewGetChatBuilder().Extra("req-1").ClientId(3).ChatId(-100500).Build()
	require.Equal(t, "req-1", req.GetExtra())
	require.EqualValues(t, 3, req.GetClientId())
	require.EqualValues(t, -100500, req.GetChatId())

	data, err := json.Marshal(req)
	require.NoError(t, err)
	require.JSONEq(t, `{"@type":"getChat","@extra":"req-1","@client_id":3,"chat_id":-100500}`, string(data))
}

func TestBuilderLeavesUnsetFieldsZero(t *testing.T) {
	req := NewSendMessageBuilder().ChatId(1).Build()
	require.Zero(t, req.MessageThreadId)
	require.Nil(t, req.ReplyTo)
	require.Nil(t, req.Options)
	require.Nil(t, req.ReplyMarkup)
	require.Nil(t, req.InputMessageContent)
}

func TestBuildReturnsIndependentCopies(t *testing.T) {
	b := NewViewMessagesBuilder().ChatId(7).MessageIds(1, 2, 3)
	first := b.Build()
	first.MessageIds[0] = 100
	first.ChatId = 8

	second := b.Build()
	require.Equal(t, []int64{1, 2, 3}, second.MessageIds)
	require.EqualValues(t, 7, second.ChatId)

	content := NewInputMessageTextBuilder().
		Text(NewFormattedTextBuilder().Text("hi").Build()).
		Build()
	sb := NewSendMessageBuilder().InputMessageContent(content)
	msg := sb.Build()
	msg.InputMessageContent.(*InputMessageText).Text.Text = "changed"

	again := sb.Build()
	require.Equal(t, "hi", again.InputMessageContent.(*InputMessageText).Text.Text)
}

func TestBuilderRows(t *testing.T) {
	markup := NewReplyMarkupShowKeyboardBuilder().
		Rows(
			[]*KeyboardButton{{Text: "a", Type: &KeyboardButtonTypeText{}}},
			[]*KeyboardButton{{Text: "b", Type: &KeyboardButtonTypeRequestLocation{}}},
		).
		OneTime(true).
		Build()

	require.Len(t, markup.GetRows(), 2)
	require.Equal(t, "b", markup.Rows[1][0].GetText())

	data, err := json.Marshal(markup)
	require.NoError(t, err)
	got, err := UnmarshalReplyMarkup(data)
	require.NoError(t, err)
	require.Equal(t, markup, got)
}

func TestGettersAreNilSafe(t *testing.T) {
	var m *Message
	require.Zero(t, m.GetId())
	require.Nil(t, m.GetContent())
	require.Empty(t, m.GetAuthorSignature())
	require.False(t, m.GetIsPinned())

	var c *Chat
	require.Nil(t, c.GetPositions())
	require.Nil(t, c.Clone())
}

func TestCloneIsDeep(t *testing.T) {
	orig := &JsonValueObject{Members: []*JsonObjectMember{
		{Key: "list", Value: &JsonValueArray{Values: []JsonValue{&JsonValueNumber{Value: 1}}}},
	}}
	clone := orig.Clone()
	require.Equal(t, orig, clone)

	clone.Members[0].Key = "other"
	clone.Members[0].Value.(*JsonValueArray).Values[0].(*JsonValueNumber).Value = 2
	require.Equal(t, "list", orig.Members[0].Key)
	require.EqualValues(t, 1, orig.Members[0].Value.(*JsonValueArray).Values[0].(*JsonValueNumber).Value)

	data := &InlineKeyboardButtonTypeCallback{Data: []byte("abc")}
	dc := data.Clone()
	dc.Data[0] = 'x'
	require.Equal(t, []byte("abc"), data.Data)
}

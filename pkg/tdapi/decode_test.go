package tdapi

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnmarshalClassSelectsVariant(t *testing.T) {
	tests := []struct {
		name   string
		decode func([]byte) (Object, error)
		data   string
		want   Object
	}{
		{
			name:   "Update",
			decode: func(b []byte) (Object, error) { return UnmarshalUpdate(b) },
			data: `{"@type":"updateNewMessage","message":{"@type":"message","id":1,"chat_id":2,
				"content":{"@type":"messageText","text":{"@type":"formattedText","text":"hi","entities":[]}}}}`,
			want: &UpdateNewMessage{Message: &Message{
				Id:      1,
				ChatId:  2,
				Content: &MessageText{Text: &FormattedText{Text: "hi", Entities: []*TextEntity{}}},
			}},
		},
		{
			name:   "JsonValue",
			decode: func(b []byte) (Object, error) { return UnmarshalJsonValue(b) },
			data:   `{"@type":"jsonValueObject","members":[{"@type":"jsonObjectMember","key":"a","value":{"@type":"jsonValueNumber","value":1.5}}]}`,
			want: &JsonValueObject{Members: []*JsonObjectMember{
				{Key: "a", Value: &JsonValueNumber{Value: 1.5}},
			}},
		},
		{
			name:   "PushMessageContent",
			decode: func(b []byte) (Object, error) { return UnmarshalPushMessageContent(b) },
			data:   `{"@type":"pushMessageContentText","text":"t","is_pinned":true}`,
			want:   &PushMessageContentText{Text: "t", IsPinned: true},
		},
		{
			name:   "PremiumFeature",
			decode: func(b []byte) (Object, error) { return UnmarshalPremiumFeature(b) },
			data:   `{"@type":"premiumFeatureEmojiStatus"}`,
			want:   &PremiumFeatureEmojiStatus{},
		},
		{
			name:   "StoryPrivacySettings",
			decode: func(b []byte) (Object, error) { return UnmarshalStoryPrivacySettings(b) },
			data:   `{"@type":"storyPrivacySettingsContacts","except_user_ids":[1,2]}`,
			want:   &StoryPrivacySettingsContacts{ExceptUserIds: []int64{1, 2}},
		},
		{
			name:   "KeyboardButtonType",
			decode: func(b []byte) (Object, error) { return UnmarshalKeyboardButtonType(b) },
			data:   `{"@type":"keyboardButtonTypeRequestPoll","force_regular":true,"force_quiz":false}`,
			want:   &KeyboardButtonTypeRequestPoll{ForceRegular: true},
		},
		{
			name:   "InlineKeyboardButtonType",
			decode: func(b []byte) (Object, error) { return UnmarshalInlineKeyboardButtonType(b) },
			data:   `{"@type":"inlineKeyboardButtonTypeCallback","data":"AQID"}`,
			want:   &InlineKeyboardButtonTypeCallback{Data: []byte{1, 2, 3}},
		},
		{
			name:   "InputSticker",
			decode: func(b []byte) (Object, error) { return UnmarshalInputSticker(b) },
			data:   `{"@type":"inputStickerStatic","sticker":{"@type":"inputFileLocal","path":"/tmp/a.png"},"emojis":"x","keywords":["k"]}`,
			want: &InputStickerStatic{
				Sticker:  &InputFileLocal{Path: "/tmp/a.png"},
				Emojis:   "x",
				Keywords: []string{"k"},
			},
		},
		{
			name:   "ChatMembersFilter",
			decode: func(b []byte) (Object, error) { return UnmarshalChatMembersFilter(b) },
			data:   `{"@type":"chatMembersFilterMention","message_thread_id":9}`,
			want:   &ChatMembersFilterMention{MessageThreadId: 9},
		},
		{
			name:   "EmailAddressResetState",
			decode: func(b []byte) (Object, error) { return UnmarshalEmailAddressResetState(b) },
			data:   `{"@type":"emailAddressResetStatePending","reset_in":30}`,
			want:   &EmailAddressResetStatePending{ResetIn: 30},
		},
		{
			name:   "MessageReplyTo",
			decode: func(b []byte) (Object, error) { return UnmarshalMessageReplyTo(b) },
			data:   `{"@type":"messageReplyToStory","story_sender_chat_id":-100,"story_id":3}`,
			want:   &MessageReplyToStory{StorySenderChatId: -100, StoryId: 3},
		},
		{
			name:   "NetworkStatisticsEntry",
			decode: func(b []byte) (Object, error) { return UnmarshalNetworkStatisticsEntry(b) },
			data: `{"@type":"networkStatisticsEntryCall","network_type":{"@type":"networkTypeWiFi"},
				"sent_bytes":1,"received_bytes":2,"duration":3.5}`,
			want: &NetworkStatisticsEntryCall{NetworkType: &NetworkTypeWiFi{}, SentBytes: 1, ReceivedBytes: 2, Duration: 3.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.decode([]byte(tt.data))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestUnmarshalClassRejectsUnknownTags(t *testing.T) {
	_, err := UnmarshalUpdate([]byte(`{"@type":"updateSomethingNew"}`))
	require.ErrorIs(t, err, ErrUnknownConstructor)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, "updateSomethingNew", de.Constructor)

	// a valid constructor of another class is not a variant of Update
	_, err = UnmarshalUpdate([]byte(`{"@type":"messageText"}`))
	require.ErrorIs(t, err, ErrUnknownConstructor)

	_, err = UnmarshalPremiumFeature([]byte(`{"is_pinned":true}`))
	require.ErrorIs(t, err, ErrUnknownConstructor)

	_, err = UnmarshalJsonValue([]byte(`[1,2]`))
	require.ErrorAs(t, err, &de)
}

func TestUnmarshalClassNull(t *testing.T) {
	v, err := UnmarshalJsonValue([]byte(`null`))
	require.NoError(t, err)
	require.Nil(t, v)

	list, err := UnmarshalListOfJsonValue(nil)
	require.NoError(t, err)
	require.Nil(t, list)

	msg, err := FromJSON[Message]([]byte(`{"@type":"message","id":3,"content":null,"reply_markup":null}`))
	require.NoError(t, err)
	require.Nil(t, msg.Content)
	require.Nil(t, msg.ReplyMarkup)
	require.EqualValues(t, 3, msg.Id)
}

func TestNestedDecodeErrorNamesInnerConstructor(t *testing.T) {
	_, err := UnmarshalObject([]byte(`{"@type":"message","content":{"@type":"messageTextV2"}}`))
	require.ErrorIs(t, err, ErrUnknownConstructor)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, "messageTextV2", de.Constructor)

	_, err = UnmarshalObject([]byte(`{"@type":"jsonValueArray","values":[{"@type":"jsonValueNull"},{"@type":"ok"}]}`))
	require.ErrorIs(t, err, ErrUnknownConstructor)
}

func TestFromJSON(t *testing.T) {
	req, err := FromJSON[GetMessage]([]byte(`{"@type":"getMessage","@extra":"e1","chat_id":1,"message_id":2}`))
	require.NoError(t, err)
	require.Equal(t, &GetMessage{meta: meta{Extra: "e1"}, ChatId: 1, MessageId: 2}, req)

	req, err = FromJSON[GetMessage]([]byte(`{"chat_id":1,"message_id":2}`))
	require.NoError(t, err)
	require.EqualValues(t, 2, req.MessageId)

	_, err = FromJSON[GetMessage]([]byte(`{"@type":"getChat","chat_id":1}`))
	require.ErrorIs(t, err, ErrConstructorMismatch)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, ConstructorGetMessage, de.Constructor)

	_, err = FromJSON[GetMessage]([]byte(`{"chat_id":"abc"}`))
	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)

	_, err = FromJSON[GetMessage]([]byte(`{`))
	var syntaxErr *json.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}

func TestUnmarshalObject(t *testing.T) {
	obj, err := UnmarshalObject([]byte(`{"@type":"getMessage","chat_id":1,"message_id":2,"@client_id":4}`))
	require.NoError(t, err)
	fn, ok := obj.(Function)
	require.True(t, ok)
	require.Equal(t, ConstructorGetMessage, fn.Constructor())
	require.EqualValues(t, 4, fn.GetClientId())

	_, err = UnmarshalObject([]byte(`  `))
	var de *DecodeError
	require.ErrorAs(t, err, &de)

	_, err = UnmarshalObject([]byte(`{"chat_id":1}`))
	require.ErrorIs(t, err, ErrUnknownConstructor)
}

func TestUnmarshalResult(t *testing.T) {
	fn := NewGetMessageBuilder().ChatId(1).MessageId(2).Build()

	obj, err := UnmarshalResult(fn, []byte(`{"@type":"message","id":2,"chat_id":1,"@extra":"`+fn.Extra+`"}`))
	require.NoError(t, err)
	msg := obj.(*Message)
	require.Equal(t, fn.Extra, msg.GetExtra())

	_, err = UnmarshalResult(fn, []byte(`{"@type":"error","code":404,"message":"Not Found"}`))
	var tdErr *Error
	require.ErrorAs(t, err, &tdErr)
	require.EqualValues(t, 404, tdErr.Code)
	require.EqualError(t, err, "404 Not Found")

	_, err = UnmarshalResult(fn, []byte(`{"@type":"ok"}`))
	require.ErrorIs(t, err, ErrConstructorMismatch)
}

func TestDecodeResult(t *testing.T) {
	msg, err := DecodeResult[*Message](NewGetMessageBuilder().Build(), []byte(`{"@type":"message","id":9}`))
	require.NoError(t, err)
	require.EqualValues(t, 9, msg.Id)

	state, err := DecodeResult[AuthorizationState](NewGetAuthorizationStateBuilder().Build(),
		[]byte(`{"@type":"authorizationStateWaitCode","code_info":{"@type":"authenticationCodeInfo",
		"phone_number":"+100","type":{"@type":"authenticationCodeTypeSms","length":5},"timeout":60}}`))
	require.NoError(t, err)
	wait, ok := state.(*AuthorizationStateWaitCode)
	require.True(t, ok)
	require.Equal(t, &AuthenticationCodeTypeSms{Length: 5}, wait.GetCodeInfo().GetType())
	require.Nil(t, wait.GetCodeInfo().GetNextType())

	_, err = DecodeResult[*Ok](NewGetMessageBuilder().Build(), []byte(`{"@type":"error","code":400,"message":"Bad"}`))
	require.True(t, errors.As(err, new(*Error)))
}

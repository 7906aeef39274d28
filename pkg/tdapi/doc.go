// Package tdapi contains typed records for the TDLib JSON interface (TDJSON).
//
// Every constructor and function of schema/td_api.tl has a struct with the
// schema fields, nil-safe getters, JSON encoding that carries the @type tag,
// a deep Clone and a fluent builder:
//
//	req := tdapi.NewGetMessageBuilder().ChatId(100).MessageId(5).Build()
//	data, _ := json.Marshal(req)
//	// {"@type":"getMessage","@extra":"<uuid>","chat_id":100,"message_id":5}
//
// Classes with several constructors are sealed interfaces (Update,
// MessageContent, JsonValue, ...). Unmarshal<Class> picks the variant named by
// @type and fails with ErrUnknownConstructor for any other tag. A nil interface
// stands for an absent value.
//
// The package does not talk to TDLib; pair it with any libtdjson client and use
// UnmarshalResult or DecodeResult to decode responses matched by @extra.
package tdapi

//go:generate go run ../../cmd/tdapi gen --schema ../../schema/td_api.tl --out .

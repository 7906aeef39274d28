package tl

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `
//@description An object of this type can be returned on every function call, in case of an error
//@code Error code @message Error message
error code:int32 message:string = Error;

//@description An object of this type is returned on a successful function call for certain functions
ok = Ok;

//@class JsonValue @description Represents a JSON value

//@description Represents a null JSON value
jsonValueNull = JsonValue;

//@description Represents a JSON array @values The list of array elements
jsonValueArray values:vector<JsonValue> = JsonValue;

//@description Represents a JSON object
//-spanning two lines
//@members The list of object members
jsonValueObject members:vector<jsonObjectMember> = JsonValue;

// plain comments are ignored
//@description Represents one member of a JSON object @key Member's key @param_value Member's value
jsonObjectMember key:string value:JsonValue = JsonObjectMember;

---functions---

//@description Converts a JSON-serialized string to corresponding JsonValue object @json The JSON-serialized string
getJsonValue json:string = JsonValue;

//@description Returns rows @rows Rows of numbers
getRows rows:vector<vector<int53>> = Ok;
`

func TestParse(t *testing.T) {
	s, err := Parse("sample.tl", []byte(sample))
	require.NoError(t, err)

	require.Len(t, s.Constructors, 6)
	require.Len(t, s.Functions, 2)

	names := make([]string, 0, len(s.Classes))
	for _, c := range s.Classes {
		names = append(names, c.Name)
	}
	require.Equal(t, []string{"JsonValue", "Error", "Ok", "JsonObjectMember"}, names)

	jv := s.Class("JsonValue")
	require.NotNil(t, jv)
	require.True(t, jv.Declared)
	require.True(t, jv.IsUnion())
	require.Equal(t, "Represents a JSON value", jv.Description)
	require.Len(t, jv.Constructors, 3)

	require.False(t, s.Class("Error").IsUnion())
	require.Len(t, s.Unions(), 1)

	obj := s.Combinator("jsonValueObject")
	require.Equal(t, "Represents a JSON object spanning two lines", obj.Description)
	require.Equal(t, "The list of object members", obj.Args[0].Description)
	require.Equal(t, "vector<jsonObjectMember>", obj.Args[0].Type.String())
	require.True(t, obj.Args[0].Type.Elem.IsBare())

	member := s.Combinator("jsonObjectMember")
	require.Equal(t, "Member's value", member.Args[1].Description)

	fn := s.Combinator("getJsonValue")
	require.True(t, fn.IsFunction)
	require.Equal(t, "JsonValue", fn.Result)

	rows := s.Combinator("getRows").Args[0].Type
	require.True(t, rows.IsVector())
	require.True(t, rows.Elem.IsVector())
	require.Equal(t, TypeInt53, rows.Elem.Elem.Name)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "unknown type",
			src: `//@description D @x X
foo x:Bar = Foo;`,
			want: "unknown type Bar",
		},
		{
			name: "unknown constructor",
			src: `//@description D @x X
foo x:bar = Foo;`,
			want: "unknown constructor bar",
		},
		{
			name: "undocumented argument",
			src: `//@description D
foo x:int32 = Foo;`,
			want: "argument x has no description",
		},
		{
			name: "undocumented constructor",
			src:  `foo = Foo;`,
			want: "foo has no description",
		},
		{
			name: "duplicate",
			src: `//@description D
foo = Foo;
//@description D
foo = Foo;`,
			want: "foo declared twice",
		},
		{
			name: "undeclared union",
			src: `//@description D
foo = Foo;
//@description D
bar = Foo;`,
			want: "class Foo has several constructors",
		},
		{
			name: "unknown function result",
			src: `---functions---
//@description D
getFoo = Foo;`,
			want: "returns unknown type Foo",
		},
		{
			name: "dangling doc",
			src: `//@description D
---functions---`,
			want: "not followed by a declaration",
		},
		{
			name: "syntax",
			src:  `foo x: = Foo;`,
			want: "parse schema",
		},
		{
			name: "vector without element",
			src: `//@description D @x X
foo x:vector = Foo;`,
			want: "vector without element type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.tl", []byte(tt.src))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

const prelude = `double ? = Double;
string ? = String;

int32 = Int32;
int53 = Int53;
int64 = Int64;
bytes = Bytes;

boolFalse = Bool;
boolTrue = Bool;

vector {t:Type} # [ t ] = Vector t;

`

func TestParsePrelude(t *testing.T) {
	s, err := Parse("td_api.tl", []byte(prelude+sample))
	require.NoError(t, err)

	require.Len(t, s.Constructors, 6)
	require.Len(t, s.Functions, 2)
	for _, name := range []string{"Double", "String", "Int32", "Int53", "Int64", "Bytes", "Bool", "Vector"} {
		require.Nil(t, s.Class(name), name)
	}
	for _, name := range []string{"double", "boolFalse", "boolTrue", "vector"} {
		require.Nil(t, s.Combinator(name), name)
	}
	require.Equal(t, "Error code", s.Combinator("error").Args[0].Description)
}

func TestParsePreludeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "bare user type",
			src:  `foo ? = Foo;`,
			want: "only allowed for built-in types",
		},
		{
			name: "generic user type",
			src:  `list {t:Type} # [ t ] = List t;`,
			want: "only allowed for built-in types",
		},
		{
			name: "built-in in functions",
			src: `---functions---
boolTrue = Bool;`,
			want: "built-in declaration boolTrue in functions section",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.tl", []byte(tt.src))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestParseMentionsInDocs(t *testing.T) {
	src := `//@description A mention by username, e.g. @durov
//@username The username, without the leading @ sign; for example @durov @length Mention length
textEntityMention username:string length:int32 = TextEntity;

//@class Mention @description Kinds of mentions such as @durov

//@description A plain mention @text Text
//-with @unknown words
mentionPlain text:string = Mention;
`
	s, err := Parse("mentions.tl", []byte(src))
	require.NoError(t, err)

	c := s.Combinator("textEntityMention")
	require.Equal(t, "A mention by username, e.g. @durov", c.Description)
	require.Equal(t, "The username, without the leading @ sign; for example @durov", c.Args[0].Description)
	require.Equal(t, "Mention length", c.Args[1].Description)

	require.Equal(t, "Kinds of mentions such as @durov", s.Class("Mention").Description)
	require.Equal(t, "Text with @unknown words", s.Combinator("mentionPlain").Args[0].Description)
}

func TestParseBundledSchema(t *testing.T) {
	src, err := os.ReadFile("../../schema/td_api.tl")
	require.NoError(t, err)

	s, err := Parse("td_api.tl", src)
	require.NoError(t, err)

	for _, name := range []string{
		"Update", "JsonValue", "PushMessageContent", "PremiumFeature", "StoryPrivacySettings",
		"KeyboardButtonType", "InlineKeyboardButtonType", "InputSticker", "ChatMembersFilter",
		"EmailAddressResetState", "MessageReplyTo", "NetworkStatisticsEntry",
	} {
		c := s.Class(name)
		require.NotNil(t, c, name)
		require.True(t, c.IsUnion(), name)
	}

	getMessage := s.Combinator("getMessage")
	require.NotNil(t, getMessage)
	require.True(t, getMessage.IsFunction)
	require.Equal(t, "Message", getMessage.Result)
	require.Len(t, getMessage.Args, 2)
}

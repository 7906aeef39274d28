package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/alexbilevskiy/tdapi/internal/tl"
)

const sample = `
//@description Contains some text @text Text
text text:string = Text;

//@class JsonValue @description Represents a JSON value

//@description Represents a null JSON value
jsonValueNull = JsonValue;

//@description Represents a JSON array @values The list of array elements
jsonValueArray values:vector<JsonValue> = JsonValue;

//@description Represents a JSON object @members The list of object members
jsonValueObject members:vector<jsonObjectMember> = JsonValue;

//@description Represents one member of a JSON object @key Member's key @value Member's value
jsonObjectMember key:string value:JsonValue = JsonObjectMember;

//@description A button @type Button type @data Callback data @rows Rows @id Identifier
button type:JsonValue data:bytes rows:vector<vector<text>> id:int64 = Button;

---functions---

//@description Converts a JsonValue object to corresponding JSON-serialized string @json_value The JsonValue object
getJsonString json_value:JsonValue = Text;
`

func generate(t *testing.T) map[string]string {
	t.Helper()
	s, err := tl.Parse("sample.tl", []byte(sample))
	require.NoError(t, err)
	files, err := Generate(s, Options{})
	require.NoError(t, err)

	out := map[string]string{}
	for _, f := range files {
		out[f.Name] = string(f.Content)
	}
	return out
}

func TestGenerateFiles(t *testing.T) {
	files := generate(t)

	var names []string
	for name := range files {
		names = append(names, name)
	}
	want := []string{
		"button.go", "classes.go", "constructors.go", "get_json_string.go",
		"json_object_member.go", "json_value_array.go", "json_value_null.go",
		"json_value_object.go", "text.go", "unmarshaler.go",
	}
	require.ElementsMatch(t, want, names)

	fset := token.NewFileSet()
	for name, src := range files {
		_, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		require.NoError(t, err, name)
		require.Contains(t, src, header, name)
	}
}

func TestGenerateRecord(t *testing.T) {
	src := generate(t)["button.go"]

	require.Contains(t, src, "// A button\ntype Button struct {\n\tmeta\n")
	require.Contains(t, src, "\tType JsonValue `json:\"type\"`\n")
	require.Contains(t, src, "\tData []byte `json:\"data\"`\n")
	require.Contains(t, src, "\tRows [][]*Text `json:\"rows\"`\n")
	require.Contains(t, src, "\tId JsonInt64 `json:\"id\"`\n")

	require.Contains(t, src, "c.Type = cloneAs(o.Type)")
	require.Contains(t, src, "c.Data = cloneValues(o.Data)")
	require.Contains(t, src, "c.Rows = cloneRows(o.Rows)")
	require.NotContains(t, src, "c.Id =")

	require.Contains(t, src, "if o.Type, err = UnmarshalJsonValue(tmp.Type); err != nil {")
	require.Contains(t, src, "func (b *ButtonBuilder) Type(typ JsonValue) *ButtonBuilder {")
	require.Contains(t, src, "func (b *ButtonBuilder) Rows(rows ...[]*Text) *ButtonBuilder {")
	require.Contains(t, src, "func (b *ButtonBuilder) Data(data []byte) *ButtonBuilder {")
	require.Contains(t, src, "return ClassButton")
	require.NotContains(t, src, "isFunction")
}

func TestGenerateVariantAndFunction(t *testing.T) {
	files := generate(t)

	arr := files["json_value_array.go"]
	require.Contains(t, arr, "func (*JsonValueArray) JsonValueConstructor() string {")
	require.Contains(t, arr, "if o.Values, err = UnmarshalListOfJsonValue(tmp.Values); err != nil {")
	require.Contains(t, arr, "c.Values = cloneObjects(o.Values)")

	null := files["json_value_null.go"]
	require.Contains(t, null, "return checkConstructor(tmp.AtType, ConstructorJsonValueNull)")

	fn := files["get_json_string.go"]
	require.Contains(t, fn, "func (*GetJsonString) isFunction() {}")
	require.Contains(t, fn, "return ClassText")
	require.NotContains(t, fn, "TextConstructor")
}

func TestGenerateRegistry(t *testing.T) {
	files := generate(t)

	require.Contains(t, files["constructors.go"], "case ConstructorJsonValueArray:\n\t\treturn new(JsonValueArray)")
	require.Contains(t, files["constructors.go"], `ClassJsonValue        = "JsonValue"`)
	require.Contains(t, files["classes.go"], "type JsonValue interface {\n\tObject\n\tJsonValueConstructor() string\n}")
	require.NotContains(t, files["classes.go"], "type Text interface")
	require.Contains(t, files["unmarshaler.go"], "return unmarshalClass[JsonValue](data, ClassJsonValue)")
}

func TestGenerateRejectsReservedField(t *testing.T) {
	s, err := tl.Parse("bad.tl", []byte("//@description D @build B\nfoo build:int32 = Foo;"))
	require.NoError(t, err)
	_, err = Generate(s, Options{})
	require.ErrorContains(t, err, "clashes with a generated method")
}

func TestWriteRemovesStaleGeneratedFiles(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "old_type.go")
	manual := filepath.Join(dir, "object.go")
	require.NoError(t, os.WriteFile(stale, []byte(header+"\n\npackage tdapi\n"), 0o644))
	require.NoError(t, os.WriteFile(manual, []byte("package tdapi\n"), 0o644))

	files := []File{{Name: "text.go", Content: []byte(header + "\n\npackage tdapi\n")}}
	require.NoError(t, Write(dir, files))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if diff := cmp.Diff([]string{"object.go", "text.go"}, names); diff != "" {
		t.Fatalf("unexpected files (-want +got):\n%s", diff)
	}
}

func TestNames(t *testing.T) {
	require.Equal(t, "ChatId", exportedName("chat_id"))
	require.Equal(t, "GetMessage", exportedName("getMessage"))
	require.Equal(t, "XShift", exportedName("x_shift"))
	require.Equal(t, "chatId", paramName("chat_id"))
	require.Equal(t, "typ", paramName("type"))
	require.Equal(t, "err", paramName("error"))
	require.Equal(t, "range_", paramName("range"))
	require.Equal(t, "get_message.go", fileName("getMessage"))
	require.Equal(t, "network_type_wi_fi.go", fileName("networkTypeWiFi"))
}

package tdapi

import (
	"encoding/json"
	"os"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/alexbilevskiy/tdapi/internal/tl"
)

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func loadSchema(t *testing.T) *tl.Schema {
	t.Helper()
	src, err := os.ReadFile("../../schema/td_api.tl")
	require.NoError(t, err)
	s, err := tl.Parse("td_api.tl", src)
	require.NoError(t, err)
	return s
}

// filler sets every reachable field to a non-zero value, picking the first
// constructor of a class for interface fields.
type filler struct {
	first map[string]string
}

func newFiller(s *tl.Schema) *filler {
	f := &filler{first: map[string]string{}}
	for _, c := range s.Classes {
		f.first[c.Name] = c.Constructors[0].Name
	}
	return f
}

func (f *filler) fill(v reflect.Value, depth int) {
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			f.fill(v.Field(i), depth)
		}
	case reflect.Pointer:
		if depth == 0 {
			return
		}
		p := reflect.New(v.Type().Elem())
		f.fill(p.Elem(), depth-1)
		v.Set(p)
	case reflect.Interface:
		if depth == 0 {
			return
		}
		obj := newObject(f.first[v.Type().Name()])
		f.fill(reflect.ValueOf(obj).Elem(), depth-1)
		v.Set(reflect.ValueOf(obj))
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			v.SetBytes([]byte{1, 2, 3})
			return
		}
		if depth == 0 {
			return
		}
		s := reflect.MakeSlice(v.Type(), 2, 2)
		for i := 0; i < s.Len(); i++ {
			f.fill(s.Index(i), depth-1)
		}
		v.Set(s)
	case reflect.String:
		v.SetString("value")
	case reflect.Bool:
		v.SetBool(true)
	case reflect.Int32:
		v.SetInt(42)
	case reflect.Int64:
		v.SetInt(1 << 60)
	case reflect.Float64:
		v.SetFloat(1.5)
	}
}

func TestRoundTripEverySchemaObject(t *testing.T) {
	s := loadSchema(t)
	f := newFiller(s)

	all := append(append([]*tl.Combinator{}, s.Constructors...), s.Functions...)
	for _, c := range all {
		t.Run(c.Name, func(t *testing.T) {
			obj := newObject(c.Name)
			require.NotNil(t, obj, "constructor is not registered")
			require.Equal(t, c.Name, obj.Constructor())
			require.Equal(t, c.Result, obj.Class())
			_, isFunction := obj.(Function)
			require.Equal(t, c.IsFunction, isFunction)

			f.fill(reflect.ValueOf(obj).Elem(), 3)
			require.Equal(t, "value", obj.GetExtra())
			require.EqualValues(t, 42, obj.GetClientId())

			data, err := json.Marshal(obj)
			require.NoError(t, err)
			tag, err := peekConstructor(data)
			require.NoError(t, err)
			require.Equal(t, c.Name, tag)

			got, err := UnmarshalObject(data)
			require.NoError(t, err)
			if diff := cmp.Diff(obj, got, exportAll); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}

			clone := obj.cloneObject()
			if diff := cmp.Diff(obj, clone, exportAll); diff != "" {
				t.Fatalf("clone mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTripZeroValues(t *testing.T) {
	s := loadSchema(t)
	for _, c := range s.Constructors {
		obj := newObject(c.Name)
		data, err := json.Marshal(obj)
		require.NoError(t, err, c.Name)

		got, err := UnmarshalObject(data)
		require.NoError(t, err, c.Name)
		if diff := cmp.Diff(obj, got, exportAll); diff != "" {
			t.Fatalf("%s: zero value round trip mismatch (-want +got):\n%s", c.Name, diff)
		}
	}
}

func TestRegistryMatchesSchema(t *testing.T) {
	s := loadSchema(t)
	require.Nil(t, newObject("noSuchConstructor"))
	require.Nil(t, newObject(""))

	for _, class := range s.Classes {
		for _, c := range class.Constructors {
			require.Equal(t, class.Name, newObject(c.Name).Class(), c.Name)
		}
	}
}

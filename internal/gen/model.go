package gen

import (
	"fmt"
	"sort"

	"github.com/alexbilevskiy/tdapi/internal/tl"
)

type model struct {
	Package string
	Header  string
	Records []*record
	Classes []*class
}

type class struct {
	Name        string
	Const       string
	Description string
	Union       bool
}

type record struct {
	Name        string
	Const       string
	TLName      string
	ClassConst  string
	ResultName  string
	Description string
	IsFunction  bool
	// Variant is the union interface the record implements, if any.
	Variant string
	Fields  []*field
	File    string
}

func (r *record) HasRaw() bool {
	for _, f := range r.Fields {
		if f.RawType != "" {
			return true
		}
	}
	return false
}

type field struct {
	Name        string
	Param       string
	JSONName    string
	GoType      string
	ParamType   string
	Variadic    bool
	Zero        string
	Description string
	// Clone is the deep-copy expression for the field, empty for values.
	Clone string
	// RawType and Decoder are set for fields holding union values.
	RawType string
	Decoder string
}

// reserved method and field names of generated records and builders.
var reserved = map[string]bool{
	"Constructor":   true,
	"Class":         true,
	"Clone":         true,
	"GetExtra":      true,
	"GetClientId":   true,
	"MarshalJSON":   true,
	"UnmarshalJSON": true,
	"Extra":         true,
	"ClientId":      true,
	"Build":         true,
}

func newModel(s *tl.Schema, opts Options) (*model, error) {
	m := &model{Package: opts.Package, Header: header}

	goNames := map[string]string{}
	for _, c := range s.Classes {
		cl := &class{
			Name:        c.Name,
			Const:       "Class" + c.Name,
			Description: c.Description,
			Union:       c.IsUnion(),
		}
		m.Classes = append(m.Classes, cl)
		if cl.Union {
			goNames[c.Name] = "class " + c.Name
		}
	}

	combinators := append(append([]*tl.Combinator{}, s.Constructors...), s.Functions...)
	for _, c := range combinators {
		name := exportedName(c.Name)
		if prev, ok := goNames[name]; ok {
			return nil, fmt.Errorf("%s: Go name %s is already used by %s", c.Name, name, prev)
		}
		goNames[name] = c.Name

		r := &record{
			Name:        name,
			Const:       "Constructor" + name,
			TLName:      c.Name,
			ClassConst:  "Class" + c.Result,
			ResultName:  c.Result,
			Description: c.Description,
			IsFunction:  c.IsFunction,
			File:        fileName(c.Name),
		}
		if !c.IsFunction && s.Class(c.Result).IsUnion() {
			r.Variant = c.Result
		}
		for _, a := range c.Args {
			f, err := newField(s, a)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", c.Name, a.Name, err)
			}
			if reserved[f.Name] {
				return nil, fmt.Errorf("%s.%s: field name %s clashes with a generated method", c.Name, a.Name, f.Name)
			}
			r.Fields = append(r.Fields, f)
		}
		m.Records = append(m.Records, r)
	}

	sort.Slice(m.Classes, func(i, j int) bool { return m.Classes[i].Name < m.Classes[j].Name })
	sort.Slice(m.Records, func(i, j int) bool { return m.Records[i].Name < m.Records[j].Name })
	return m, nil
}

// Unions returns the classes rendered as interfaces.
func (m *model) Unions() []*class {
	var out []*class
	for _, c := range m.Classes {
		if c.Union {
			out = append(out, c)
		}
	}
	return out
}

func newField(s *tl.Schema, a *tl.Arg) (*field, error) {
	goType, err := typeOf(s, a.Type)
	if err != nil {
		return nil, err
	}
	f := &field{
		Name:        exportedName(a.Name),
		Param:       paramName(a.Name),
		JSONName:    a.Name,
		GoType:      goType,
		ParamType:   goType,
		Description: a.Description,
		Zero:        zeroOf(a.Type),
	}

	t := a.Type
	switch {
	case t.Name == tl.TypeBytes:
		f.Clone = "cloneValues"
	case t.IsVector():
		f.Variadic = true
		f.ParamType = "..." + goType[2:]
		switch {
		case t.Elem.IsVector():
			if isScalar(t.Elem.Elem) {
				return nil, fmt.Errorf("unsupported type %s", t)
			}
			if isUnion(s, t.Elem.Elem) {
				return nil, fmt.Errorf("unsupported type %s", t)
			}
			f.Clone = "cloneRows"
		case t.Elem.Name == tl.TypeBytes:
			return nil, fmt.Errorf("unsupported type %s", t)
		case isScalar(t.Elem):
			f.Clone = "cloneValues"
		default:
			f.Clone = "cloneObjects"
			if isUnion(s, t.Elem) {
				f.RawType = "[]json.RawMessage"
				f.Decoder = "UnmarshalListOf" + t.Elem.Name
			}
		}
	case isScalar(t):
	case isUnion(s, t):
		f.Clone = "cloneAs"
		f.RawType = "json.RawMessage"
		f.Decoder = "Unmarshal" + t.Name
	default:
		f.Clone = "method"
	}
	return f, nil
}

func isScalar(t *tl.Type) bool {
	return t.IsBuiltin() && t.Name != tl.TypeBytes
}

func isUnion(s *tl.Schema, t *tl.Type) bool {
	if t.IsBuiltin() || t.IsVector() || t.IsBare() {
		return false
	}
	return s.Class(t.Name).IsUnion()
}

func typeOf(s *tl.Schema, t *tl.Type) (string, error) {
	switch t.Name {
	case tl.TypeInt32:
		return "int32", nil
	case tl.TypeInt53:
		return "int64", nil
	case tl.TypeInt64:
		return "JsonInt64", nil
	case tl.TypeDouble:
		return "float64", nil
	case tl.TypeString:
		return "string", nil
	case tl.TypeBool:
		return "bool", nil
	case tl.TypeBytes:
		return "[]byte", nil
	case tl.TypeVector:
		elem, err := typeOf(s, t.Elem)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	}
	if t.IsBare() {
		return "*" + exportedName(t.Name), nil
	}
	c := s.Class(t.Name)
	if c == nil {
		return "", fmt.Errorf("unknown type %s", t.Name)
	}
	if c.IsUnion() {
		return c.Name, nil
	}
	return "*" + exportedName(c.Constructors[0].Name), nil
}

func zeroOf(t *tl.Type) string {
	switch t.Name {
	case tl.TypeString:
		return `""`
	case tl.TypeBool:
		return "false"
	case tl.TypeInt32, tl.TypeInt53, tl.TypeInt64, tl.TypeDouble:
		return "0"
	}
	return "nil"
}

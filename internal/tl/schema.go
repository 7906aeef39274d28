// Package tl reads TDLib type language schemas (td_api.tl) into a resolved model
// suitable for code generation.
package tl

import (
	"strings"
)

// Built-in type names. A schema prelude may declare them; such declarations
// are skipped.
const (
	TypeInt32  = "int32"
	TypeInt53  = "int53"
	TypeInt64  = "int64"
	TypeDouble = "double"
	TypeString = "string"
	TypeBool   = "Bool"
	TypeBytes  = "bytes"
	TypeVector = "vector"
)

// builtinResults are the boxed names the schema prelude declares for built-in
// types. Declarations resulting in them are skipped.
var builtinResults = map[string]bool{
	"Double": true,
	"String": true,
	"Int32":  true,
	"Int53":  true,
	"Int64":  true,
	"Bytes":  true,
	"Bool":   true,
	"Vector": true,
}

var builtins = map[string]bool{
	TypeInt32:  true,
	TypeInt53:  true,
	TypeInt64:  true,
	TypeDouble: true,
	TypeString: true,
	TypeBool:   true,
	TypeBytes:  true,
}

// Schema is a parsed and resolved td_api.tl file. Constructors and functions
// keep declaration order; classes are listed in order of first appearance.
type Schema struct {
	Classes      []*Class
	Constructors []*Combinator
	Functions    []*Combinator

	classes     map[string]*Class
	combinators map[string]*Combinator
}

// Class is a boxed type: the right-hand side of one or more constructors.
type Class struct {
	Name        string
	Description string
	// Declared reports an explicit //@class line.
	Declared     bool
	Constructors []*Combinator
}

// IsUnion reports whether values of the class are carried polymorphically,
// tagged with @type. Classes with a single constructor that were never declared
// with //@class are represented by that constructor directly.
func (c *Class) IsUnion() bool {
	return c.Declared || len(c.Constructors) > 1
}

// Combinator is a constructor (IsFunction == false) or a function.
type Combinator struct {
	Name        string
	Result      string
	Description string
	Args        []*Arg
	IsFunction  bool
	Line        int
}

type Arg struct {
	Name        string
	Type        *Type
	Description string
}

// Type is a type reference; Elem is set for vector<T>.
type Type struct {
	Name string
	Elem *Type
}

func (t *Type) String() string {
	if t.Elem != nil {
		return t.Name + "<" + t.Elem.String() + ">"
	}
	return t.Name
}

// IsVector reports whether t is vector<T>.
func (t *Type) IsVector() bool {
	return t.Name == TypeVector
}

// IsBuiltin reports whether t is a bare built-in type.
func (t *Type) IsBuiltin() bool {
	return builtins[t.Name]
}

// IsBare reports whether t names a constructor rather than a class.
func (t *Type) IsBare() bool {
	return !t.IsBuiltin() && !t.IsVector() && strings.ToLower(t.Name[:1]) == t.Name[:1]
}

// Class returns the class with the given name, or nil.
func (s *Schema) Class(name string) *Class {
	return s.classes[name]
}

// Combinator returns the constructor or function with the given name, or nil.
func (s *Schema) Combinator(name string) *Combinator {
	return s.combinators[name]
}

// Unions returns the classes carried polymorphically, in Classes order.
func (s *Schema) Unions() []*Class {
	var out []*Class
	for _, c := range s.Classes {
		if c.IsUnion() {
			out = append(out, c)
		}
	}
	return out
}

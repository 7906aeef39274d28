package tl

import (
	"fmt"
	"unicode"
)

func (s *Schema) resolve(name string) error {
	for _, c := range s.Constructors {
		if !isBoxed(c.Result) {
			return fmt.Errorf("%s:%d: constructor %s: result %s must be a class name", name, c.Line, c.Name, c.Result)
		}
		if builtins[c.Result] {
			return fmt.Errorf("%s:%d: constructor %s: result %s is a built-in type", name, c.Line, c.Name, c.Result)
		}
		class, ok := s.classes[c.Result]
		if !ok {
			class = &Class{Name: c.Result}
			s.Classes = append(s.Classes, class)
			s.classes[c.Result] = class
		}
		class.Constructors = append(class.Constructors, c)
	}

	for _, class := range s.Classes {
		if len(class.Constructors) == 0 {
			return fmt.Errorf("%s: class %s has no constructors", name, class.Name)
		}
		if !class.Declared && len(class.Constructors) > 1 {
			return fmt.Errorf("%s: class %s has several constructors but no @class declaration", name, class.Name)
		}
	}

	for _, c := range append(append([]*Combinator{}, s.Constructors...), s.Functions...) {
		if c.IsFunction {
			if _, ok := s.classes[c.Result]; !ok {
				return fmt.Errorf("%s:%d: function %s returns unknown type %s", name, c.Line, c.Name, c.Result)
			}
		}
		for _, a := range c.Args {
			if err := s.checkType(a.Type); err != nil {
				return fmt.Errorf("%s:%d: %s.%s: %w", name, c.Line, c.Name, a.Name, err)
			}
		}
	}
	return nil
}

func (s *Schema) checkType(t *Type) error {
	switch {
	case t.IsVector():
		if t.Elem == nil {
			return fmt.Errorf("vector without element type")
		}
		return s.checkType(t.Elem)
	case t.Elem != nil:
		return fmt.Errorf("type %s is not generic", t.Name)
	case t.IsBuiltin():
		return nil
	case t.IsBare():
		c, ok := s.combinators[t.Name]
		if !ok || c.IsFunction {
			return fmt.Errorf("unknown constructor %s", t.Name)
		}
		return nil
	default:
		if _, ok := s.classes[t.Name]; !ok {
			return fmt.Errorf("unknown type %s", t.Name)
		}
		return nil
	}
}

func isBoxed(name string) bool {
	return name != "" && unicode.IsUpper(rune(name[0]))
}

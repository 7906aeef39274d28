package tl

import (
	"fmt"
	"regexp"
	"strings"
)

const functionsSection = "---functions---"

var tagRe = regexp.MustCompile(`(?:^|\s)@([A-Za-z_][A-Za-z0-9_]*)`)

// Parse reads a td_api.tl schema. The name is used in error messages only.
func Parse(name string, src []byte) (*Schema, error) {
	file, err := tlParser.ParseBytes(name, src)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	r := &reader{
		name: name,
		schema: &Schema{
			classes:     map[string]*Class{},
			combinators: map[string]*Combinator{},
		},
	}
	for _, item := range file.Items {
		switch {
		case item.Section != nil:
			if *item.Section != functionsSection {
				return nil, fmt.Errorf("%s: unknown section %s", name, *item.Section)
			}
			if err := r.flushClasses(); err != nil {
				return nil, err
			}
			r.functions = true
		case item.Doc != nil:
			if err := r.doc(*item.Doc); err != nil {
				return nil, err
			}
		case item.Decl != nil:
			if err := r.declaration(item.Decl); err != nil {
				return nil, err
			}
		}
	}
	if err := r.flushClasses(); err != nil {
		return nil, err
	}
	if err := r.schema.resolve(name); err != nil {
		return nil, err
	}

	return r.schema, nil
}

type docGroup struct {
	class bool
	lines []string
}

// tags splits the group into @name text pairs. A tag starts at the beginning
// of a line or at an @name that known accepts; any other @word stays in the
// text.
func (g *docGroup) tags(known func(string) bool) map[string]string {
	out := map[string]string{}
	var (
		cur  string
		text []string
		open bool
	)
	flush := func() {
		if open {
			out[cur] = strings.Join(strings.Fields(strings.Join(text, " ")), " ")
		}
	}
	for _, line := range g.lines {
		pos := 0
		for _, m := range tagRe.FindAllStringSubmatchIndex(line, -1) {
			name := line[m[2]:m[3]]
			if m[0] != 0 && !known(name) {
				continue
			}
			text = append(text, line[pos:m[0]])
			flush()
			cur, text, open = name, nil, true
			pos = m[3]
		}
		text = append(text, line[pos:])
	}
	flush()
	return out
}

func classTag(name string) bool {
	return name == "description" || name == "class"
}

type reader struct {
	name      string
	schema    *Schema
	functions bool
	pending   []*docGroup
}

func (r *reader) doc(raw string) error {
	line := strings.TrimPrefix(raw, "//")
	if strings.HasPrefix(line, "-") {
		if len(r.pending) == 0 {
			return fmt.Errorf("%s: continuation line without a preceding doc line: %q", r.name, raw)
		}
		last := r.pending[len(r.pending)-1]
		last.lines = append(last.lines, strings.TrimSpace(line[1:]))
		return nil
	}

	line = strings.TrimSpace(line)
	var cur *docGroup
	if len(r.pending) > 0 {
		cur = r.pending[len(r.pending)-1]
	}
	switch {
	case strings.HasPrefix(line, "@class"):
		r.pending = append(r.pending, &docGroup{class: true, lines: []string{line}})
	case strings.HasPrefix(line, "@description") && (cur == nil || !cur.class || hasTag(cur, "description")):
		r.pending = append(r.pending, &docGroup{lines: []string{line}})
	case cur == nil:
		r.pending = append(r.pending, &docGroup{lines: []string{line}})
	default:
		cur.lines = append(cur.lines, line)
	}
	return nil
}

func hasTag(g *docGroup, tag string) bool {
	_, ok := g.tags(classTag)[tag]
	return ok
}

// flushClasses registers pending //@class docs. Any other pending doc has no
// declaration to attach to.
func (r *reader) flushClasses() error {
	for _, g := range r.pending {
		if !g.class {
			return fmt.Errorf("%s: doc comment is not followed by a declaration: %q", r.name, strings.Join(g.lines, " "))
		}
		if err := r.declareClass(g); err != nil {
			return err
		}
	}
	r.pending = nil
	return nil
}

func (r *reader) declareClass(g *docGroup) error {
	tags := g.tags(classTag)
	name := strings.Fields(tags["class"])
	if len(name) != 1 {
		return fmt.Errorf("%s: malformed @class line %q", r.name, strings.Join(g.lines, " "))
	}
	if _, ok := r.schema.classes[name[0]]; ok {
		return fmt.Errorf("%s: class %s declared twice", r.name, name[0])
	}
	c := &Class{Name: name[0], Description: tags["description"], Declared: true}
	if c.Description == "" {
		return fmt.Errorf("%s: class %s has no description", r.name, c.Name)
	}
	r.schema.Classes = append(r.schema.Classes, c)
	r.schema.classes[c.Name] = c
	return nil
}

func (r *reader) declaration(d *tlDeclaration) error {
	if d.builtin() {
		return r.builtin(d)
	}

	argNames := map[string]bool{}
	for _, a := range d.Args {
		argNames[a.Name] = true
	}
	known := func(name string) bool {
		return classTag(name) || argNames[name] || argNames[strings.TrimPrefix(name, "param_")]
	}
	tags := map[string]string{}
	for _, g := range r.pending {
		if g.class {
			if err := r.declareClass(g); err != nil {
				return err
			}
			continue
		}
		for k, v := range g.tags(known) {
			tags[k] = v
		}
	}
	r.pending = nil

	if _, ok := r.schema.combinators[d.Name]; ok {
		return fmt.Errorf("%s:%d: %s declared twice", r.name, d.Pos.Line, d.Name)
	}
	c := &Combinator{
		Name:        d.Name,
		Result:      d.Result,
		Description: tags["description"],
		IsFunction:  r.functions,
		Line:        d.Pos.Line,
	}
	if c.Description == "" {
		return fmt.Errorf("%s:%d: %s has no description", r.name, d.Pos.Line, d.Name)
	}
	seen := map[string]bool{}
	for _, a := range d.Args {
		if seen[a.Name] {
			return fmt.Errorf("%s:%d: %s: duplicate argument %s", r.name, d.Pos.Line, d.Name, a.Name)
		}
		seen[a.Name] = true

		desc, ok := tags[a.Name]
		if !ok {
			desc = tags["param_"+a.Name]
		}
		if desc == "" {
			return fmt.Errorf("%s:%d: %s: argument %s has no description", r.name, d.Pos.Line, d.Name, a.Name)
		}
		c.Args = append(c.Args, &Arg{Name: a.Name, Type: convertType(a.Type), Description: desc})
	}

	if c.IsFunction {
		r.schema.Functions = append(r.schema.Functions, c)
	} else {
		r.schema.Constructors = append(r.schema.Constructors, c)
	}
	r.schema.combinators[c.Name] = c
	return nil
}

// builtin accepts a prelude declaration such as "double ? = Double;". Built-in
// types are not part of the schema model, so only pending class docs are kept.
func (r *reader) builtin(d *tlDeclaration) error {
	if r.functions {
		return fmt.Errorf("%s:%d: built-in declaration %s in functions section", r.name, d.Pos.Line, d.Name)
	}
	if !builtinResults[d.Result] {
		return fmt.Errorf("%s:%d: %s: generic and bare declarations are only allowed for built-in types", r.name, d.Pos.Line, d.Name)
	}
	for _, g := range r.pending {
		if g.class {
			if err := r.declareClass(g); err != nil {
				return err
			}
		}
	}
	r.pending = nil
	return nil
}

func convertType(t *tlType) *Type {
	if t == nil {
		return nil
	}
	return &Type{Name: t.Name, Elem: convertType(t.Elem)}
}

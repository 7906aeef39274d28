package gen

import (
	"go/token"
	"strings"
	"unicode"
)

// exportedName turns a TL identifier (snake_case field or lowerCamel
// constructor) into an exported Go identifier: chat_id -> ChatId,
// getMessage -> GetMessage.
func exportedName(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// paramName is the builder setter parameter for a field.
func paramName(s string) string {
	name := exportedName(s)
	name = strings.ToLower(name[:1]) + name[1:]
	if repl, ok := reservedParams[name]; ok {
		return repl
	}
	if token.IsKeyword(name) {
		return name + "_"
	}
	return name
}

var reservedParams = map[string]string{
	"type":  "typ",
	"error": "err",
}

// fileName is the snake_case source file name of a constructor or function.
func fileName(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	name := b.String()
	if strings.HasSuffix(name, "_test") {
		name += "_"
	}
	return name + ".go"
}

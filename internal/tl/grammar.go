package tl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var tlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Section", Pattern: `---[a-z]+---`},
	{Name: "Doc", Pattern: `//[@-][^\n]*`},
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[:<>=;?{}#\[\]]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type tlFile struct {
	Items []*tlItem `@@*`
}

type tlItem struct {
	Section *string        `  @Section`
	Doc     *string        `| @Doc`
	Decl    *tlDeclaration `| @@`
}

// tlDeclaration also covers the built-in prelude of td_api.tl:
//
//	double ? = Double;
//	vector {t:Type} # [ t ] = Vector t;
type tlDeclaration struct {
	Pos          lexer.Position
	Name         string   `@Ident`
	Params       []*tlArg `( "{" @@ "}" )*`
	Bare         bool     `( @( "?" | "#" "[" Ident "]" )`
	Args         []*tlArg `  | @@* )`
	Result       string   `"=" @Ident`
	ResultParams []string `@Ident* ";"`
}

func (d *tlDeclaration) builtin() bool {
	return d.Bare || len(d.Params) > 0 || len(d.ResultParams) > 0 || builtinResults[d.Result]
}

type tlArg struct {
	Name string  `@Ident ":"`
	Type *tlType `@@`
}

type tlType struct {
	Name string  `@Ident`
	Elem *tlType `( "<" @@ ">" )?`
}

var tlParser = participle.MustBuild[tlFile](
	participle.Lexer(tlLexer),
	participle.Elide("Whitespace", "Comment"),
)

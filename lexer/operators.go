package lexer

import "github.com/absurd-lang/absurd/token"

type operator struct {
	text string
	kind token.Kind
}

// operators is ordered longest first so the scan is a longest match.
var operators = []operator{
	{"!!", token.NotNot},
	{"&&", token.AndAnd},
	{"**", token.Square},
	{"--", token.Decr},
	{"->", token.Arrow},
	{"=>", token.ArrowBig},
	{"++", token.Increment},
	{"==", token.Eq},
	{"!=", token.NotEq},
	{"+=", token.PlusEq},
	{"-=", token.MinEq},
	{"*=", token.MultEq},
	{"/=", token.DivEq},
	{"::", token.DblColon},
	{"<=", token.LessOrEq},
	{">=", token.GreaterOrEq},
	{"..", token.DotDot},
	{"\\{", token.StartParse},
	{"\\}", token.EndParse},
	{"||", token.Or},

	{"!", token.Not},
	{"~", token.Tilde},
	{"%", token.Percent},
	{"&", token.And},
	{"*", token.Mult},
	{"(", token.LParen},
	{")", token.RParen},
	{"-", token.Minus},
	{"+", token.Plus},
	{"=", token.Assign},
	{"{", token.LBrace},
	{"}", token.RBrace},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{";", token.Semi},
	{":", token.Colon},
	{"<", token.Less},
	{">", token.Greater},
	{",", token.Comma},
	{".", token.Dot},
	{"/", token.Divide},
	{"\\", token.Escape},
	{"?", token.Question},
	{"|", token.Pipe},
}

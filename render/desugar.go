package render

import "github.com/JoshCheek/ast-editing/ast"

// DesugarSymbol returns the call expression Symbol.for("name") equivalent
// to the symbol literal n. A selection on the symbol's text stays on the
// text of the string argument.
func DesugarSymbol(n *ast.SymbolLiteral) ast.Node {
	return ast.NewCall(
		ast.NewConstant(nil, "Symbol"),
		"for",
		ast.NewArgList(ast.MustMake(ast.StringLiteralTag, n.Value())),
	)
}

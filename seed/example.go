package seed

import (
	"github.com/JoshCheek/ast-editing/ast"
)

// Example returns the built-in example tree: a small Ruby class that
// records exit and timeout events before passing them on.
func Example() ast.Node {
	event := func() ast.Node { return ast.NewLocalVarRef("event") }
	eventsConst := func(name string) ast.Node {
		return ast.NewConstant(ast.NewConstant(nil, "Events"), name)
	}
	record := func(name, ivar, msg string) ast.Node {
		return ast.NewWhenClause(
			eventsConst(name),
			ast.NewAssign(
				ast.NewInstanceVarRef(ivar),
				ast.NewCall(event(), msg, ast.NewArgList()),
			),
		)
	}
	attrReader := func(name string) ast.Node {
		return ast.NewCall(nil, "attr_reader", ast.NewArgList(ast.NewSymbol(name)))
	}

	recorder := ast.NewClassDef(
		ast.NewConstant(nil, "RecordExitEvents"),
		nil,
		ast.NewBegin(
			attrReader("exitstatus"),
			attrReader("timeout_seconds"),
			ast.NewMethodDef("initialize", ast.NewParamList("next_observer"),
				ast.NewAssign(
					ast.NewInstanceVarRef("next_observer"),
					ast.NewLocalVarRef("next_observer"),
				),
			),
			ast.NewMethodDef("call", ast.NewParamList("event"),
				ast.NewBegin(
					ast.NewCaseExpr(event(), ast.NewWhenClauseList(
						record("ExitStatus", "exitstatus", "value"),
						record("Timeout", "timeout_seconds", "seconds"),
					)),
					ast.NewReturnStmt(
						ast.NewCall(ast.NewInstanceVarRef("next_observer"), "call", ast.NewArgList(event())),
					),
				),
			),
		),
	)

	return ast.NewBegin(
		ast.NewCall(nil, "require", ast.NewArgList(ast.NewString("seeing_is_believing/event_stream/events"))),
		ast.NewClassDef(
			ast.NewConstant(nil, "SeeingIsBelieving"),
			nil,
			ast.NewModuleDef(
				ast.NewConstant(nil, "EventStream"),
				ast.NewModuleDef(ast.NewConstant(nil, "Handlers"), recorder),
			),
		),
	)
}

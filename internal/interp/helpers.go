package interp

import (
	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/kerr"
	"github.com/kelidra/kiwiscript/internal/mathvisitor"
	"github.com/kelidra/kiwiscript/internal/value"
)

func kpos(p ast.Position) kerr.Position {
	return kerr.Position{Line: p.Line, Column: p.Column, File: p.File}
}

func isTruthy(v value.Value) bool {
	return mathvisitor.IsTruthy(v)
}

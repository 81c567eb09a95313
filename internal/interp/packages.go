package interp

import (
	"github.com/kelidra/kiwiscript/internal/ast"
	"github.com/kelidra/kiwiscript/internal/frame"
	"github.com/kelidra/kiwiscript/internal/value"
)

// evaluatePackageDeclaration registers a named block of statements for
// later import/export (spec §4.8). It does not execute the block.
func (i *Interpreter) evaluatePackageDeclaration(n *ast.PackageDeclaration, f *frame.Frame) (value.Value, error) {
	i.Registry.DefinePackage(n.Name, n.Body)
	return value.Null{}, nil
}

// runPackageBlock executes a registered package's body with the package
// name pushed on the package-name stack, so any function declared during
// execution is prefixed packageName:: (spec §4.8).
func (i *Interpreter) runPackageBlock(name string, f *frame.Frame) (value.Value, error) {
	body, ok := i.Registry.Package(name)
	if !ok {
		return nil, kerrPackageNotFound(name)
	}
	i.packageStack = append(i.packageStack, name)
	defer func() { i.packageStack = i.packageStack[:len(i.packageStack)-1] }()

	result, err := i.evaluateBody(body, f)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (i *Interpreter) evaluateImport(n *ast.ImportStatement, f *frame.Frame) (value.Value, error) {
	return i.runPackageBlock(n.Name, f)
}

func (i *Interpreter) evaluateExport(n *ast.ExportStatement, f *frame.Frame) (value.Value, error) {
	return i.runPackageBlock(n.Name, f)
}

// Package registry implements the process-wide registries of spec §4.7/
// §4.8: packages, classes, top-level functions, per-class methods,
// lambdas, and the lambda indirection table. All state here is
// process-wide and mutated only on the evaluator's single thread (spec
// §5).
package registry

import (
	"sort"

	"github.com/google/uuid"

	"github.com/kelidra/kiwiscript/internal/ast"
)

// Class is a class-registry entry: its base class name (empty for none)
// and its method map, keyed by method name. A method named "new" is the
// constructor (spec §3).
type Class struct {
	Name      string
	BaseClass string
	Methods   map[string]*ast.MethodDeclaration
}

// Registry is the process-wide collection of all named, process-lifetime
// entities (spec §3, Lifecycles: Class/Function/Package/Lambda).
type Registry struct {
	packages map[string][]ast.Statement
	classes  map[string]*Class
	funcs    map[string]*ast.FunctionDeclaration
	lambdas  map[string]*ast.LambdaLiteral

	// indirection maps a binding name (parameter or alias) to the stable
	// id of the lambda it currently refers to (spec §4.7).
	indirection map[string]string
}

func New() *Registry {
	return &Registry{
		packages:    make(map[string][]ast.Statement),
		classes:     make(map[string]*Class),
		funcs:       make(map[string]*ast.FunctionDeclaration),
		lambdas:     make(map[string]*ast.LambdaLiteral),
		indirection: make(map[string]string),
	}
}

func (r *Registry) DefinePackage(name string, body []ast.Statement) {
	r.packages[name] = body
}

func (r *Registry) Package(name string) ([]ast.Statement, bool) {
	body, ok := r.packages[name]
	return body, ok
}

func (r *Registry) DefineClass(name, baseClass string) *Class {
	c := &Class{Name: name, BaseClass: baseClass, Methods: make(map[string]*ast.MethodDeclaration)}
	r.classes[name] = c
	return c
}

func (r *Registry) Class(name string) (*Class, bool) {
	c, ok := r.classes[name]
	return c, ok
}

func (r *Registry) DefineFunction(fn *ast.FunctionDeclaration) {
	r.funcs[fn.Name] = fn
}

func (r *Registry) Function(name string) (*ast.FunctionDeclaration, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// NewLambdaID generates a fresh, stable identifier of the form
// `temporary_<random16>` (spec §4.7), using github.com/google/uuid instead
// of a hand-rolled RNG (see SPEC_FULL.md, Ambient Stack).
func NewLambdaID() string {
	id := uuid.New().String()
	// Keep only hex digits so the suffix reads as the spec's
	// "random16" token regardless of uuid's dash formatting.
	hex := make([]byte, 0, 32)
	for _, c := range id {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') {
			hex = append(hex, byte(c))
		}
	}
	if len(hex) > 16 {
		hex = hex[:16]
	}
	return "temporary_" + string(hex)
}

// DefineLambda stores lit under a freshly generated id, installs the
// identity mapping id→id in the indirection table, and returns the id.
func (r *Registry) DefineLambda(lit *ast.LambdaLiteral) string {
	id := NewLambdaID()
	r.lambdas[id] = lit
	r.indirection[id] = id
	return id
}

// RenameLambda repoints an existing lambda binding at name `newName`
// (spec §4.6: assigning a lambda value renames it in the registry while it
// remains the same callable).
func (r *Registry) RenameLambda(id, newName string) {
	r.indirection[newName] = id
}

func (r *Registry) Lambda(id string) (*ast.LambdaLiteral, bool) {
	lit, ok := r.lambdas[id]
	return lit, ok
}

// BindIndirection records param_name → lambda_id (spec §4.7's closure-by-
// name parameter binding rule).
func (r *Registry) BindIndirection(name, lambdaID string) {
	r.indirection[name] = lambdaID
}

// ResolveIndirection follows the name→lambda_id table.
func (r *Registry) ResolveIndirection(name string) (string, bool) {
	id, ok := r.indirection[name]
	return id, ok
}

// UnbindIndirection removes a name's indirection entry (e.g. when a
// parameter scope with that name is torn down).
func (r *Registry) UnbindIndirection(name string) {
	delete(r.indirection, name)
}

// PackageNames, ClassNames, and FunctionNames return sorted name lists for
// reflector.rlist()'s output shape (spec §6).

func (r *Registry) PackageNames() []string {
	out := make([]string, 0, len(r.packages))
	for name := range r.packages {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) ClassNames() []string {
	out := make([]string, 0, len(r.classes))
	for name := range r.classes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) FunctionNames() []string {
	out := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

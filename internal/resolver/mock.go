package resolver

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
)

// MockResolver is a fixed name -> statements table, used by tests and by
// embedders that already have a set of modules in memory (ported from
// original_source/resolver.rs's MockResolver, minus the raw-text step
// since parsing is out of scope here — see internal/module.Resolver).
type MockResolver struct {
	modules map[string][]ast.Stmt
}

// NewMockResolver builds a MockResolver over modules, keyed the same way a
// compileImport call would join an import path: scoped entries keyed
// "scope/path", local entries keyed by their joined path segments.
func NewMockResolver(modules map[string][]ast.Stmt) MockResolver {
	return MockResolver{modules: modules}
}

func (r MockResolver) ResolveScoped(scope, path string) ([]ast.Stmt, string, error) {
	key := scope + "/" + path
	stmts, ok := r.modules[key]
	if !ok {
		return nil, "", fmt.Errorf("no such scoped module %q", key)
	}
	return stmts, key, nil
}

func (r MockResolver) ResolveLocal(path string, absolute bool) ([]ast.Stmt, string, error) {
	stmts, ok := r.modules[path]
	if !ok {
		return nil, "", fmt.Errorf("no such module %q", path)
	}
	return stmts, path, nil
}

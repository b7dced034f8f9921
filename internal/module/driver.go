package module

import "github.com/conlangtools/chronlang-engine/internal/ast"

// CompileModule implements spec.md §4.1/§6: it walks stmts in document
// order, maintaining the current-language/current-time context, dispatches
// each statement to its handler, and returns the resulting Module. Turning
// source text into stmts is the external parser's job (spec.md §1); this
// function is where the compiler itself takes over.
func CompileModule(stmts []ast.Stmt, sourceName string, resolver Resolver) *Module {
	return compileModule(stmts, sourceName, resolver, make(map[string]bool))
}

// compileModule is the recursive worker invoked directly by CompileModule
// and, for each import, by compileImport — inFlight is threaded through
// every recursive call so cycle detection sees the whole import chain
// regardless of which Resolver located a given source (spec.md §9).
func compileModule(stmts []ast.Stmt, sourceName string, resolver Resolver, inFlight map[string]bool) *Module {
	m := newModule()
	st := newCompileState(sourceName, inFlight)

	for _, stmt := range stmts {
		dispatch(m, st, resolver, stmt)
	}

	return m
}

func dispatch(m *Module, st *compileState, resolver Resolver, stmt ast.Stmt) {
	switch s := stmt.(type) {
	case ast.Import:
		compileImport(m, st, resolver, s)
	case ast.Language:
		compileLanguage(m, s)
	case ast.Milestone:
		compileMilestone(m, st, s)
	case ast.Trait:
		compileTrait(m, s)
	case ast.Class:
		compileClass(m, st, s)
	case ast.Series:
		compileSeries(m, s)
	case ast.Word:
		compileWord(m, st, s)
	case ast.SoundChange:
		compileSoundChange(m, st, s)
	}
}

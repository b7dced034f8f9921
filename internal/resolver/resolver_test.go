package resolver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/resolver"
)

var _ module.Resolver = resolver.MockResolver{}
var _ module.Resolver = (*resolver.FileSystemResolver)(nil)

func TestMockResolverResolvesLocalAndScoped(t *testing.T) {
	local := []ast.Stmt{ast.Language{ID: ast.Spanned[string]{Value: "OEng"}}}
	scoped := []ast.Stmt{ast.Language{ID: ast.Spanned[string]{Value: "PIE"}}}
	r := resolver.NewMockResolver(map[string][]ast.Stmt{
		"consonants":      local,
		"@core/phonology": scoped,
	})

	stmts, name, err := r.ResolveLocal("consonants", false)
	if err != nil || name != "consonants" || len(stmts) != 1 {
		t.Fatalf("unexpected local resolution: %v %q %v", stmts, name, err)
	}

	stmts, name, err = r.ResolveScoped("@core", "phonology")
	if err != nil || name != "@core/phonology" || len(stmts) != 1 {
		t.Fatalf("unexpected scoped resolution: %v %q %v", stmts, name, err)
	}

	if _, _, err := r.ResolveLocal("nowhere", false); err == nil {
		t.Fatal("expected an error resolving an unknown local path")
	}
}

func TestFileSystemResolverReadsAndCachesLocalFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "consonants.lang"), []byte("lang X"), 0o644); err != nil {
		t.Fatal(err)
	}

	var parseCalls int
	parse := func(src []byte, name string) ([]ast.Stmt, error) {
		parseCalls++
		return []ast.Stmt{ast.Language{ID: ast.Spanned[string]{Value: string(src)}}}, nil
	}

	r := resolver.NewFileSystemResolver(dir, nil, parse)

	stmts, name, err := r.ResolveLocal("consonants", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stmts) != 1 || name != filepath.Join(dir, "consonants.lang") {
		t.Fatalf("unexpected resolution: %v %q", stmts, name)
	}

	if _, _, err := r.ResolveLocal("consonants", false); err != nil {
		t.Fatalf("unexpected error on cached re-resolve: %v", err)
	}
	if parseCalls != 1 {
		t.Fatalf("expected the cache to serve the second resolution without re-parsing, got %d parse calls", parseCalls)
	}

	if _, _, err := r.ResolveScoped("@core", "ipa"); err == nil {
		t.Fatal("expected a scoped import to fail without a manifest")
	}
}

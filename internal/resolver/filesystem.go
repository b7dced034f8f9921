package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/project"
)

// ParseFunc turns raw `.lang` source text into parsed statements. Parsing
// is out of scope for this module (spec.md §1); FileSystemResolver only
// knows how to find files on disk and hand their contents to whatever
// parser the embedder supplies.
type ParseFunc func(source []byte, name string) ([]ast.Stmt, error)

// FileSystemResolver reads `.lang` files from a project's own directory
// tree for local imports, and from `[modules]`-declared dependency roots
// for `@scope` imports. Grounded on original_source/resolver.rs's
// FileSystemResolver, generalized to honor project.Manifest's scope map
// instead of rejecting `@scope` paths outright.
type FileSystemResolver struct {
	basePath string
	manifest *project.Manifest // nil: every scoped import fails
	parse    ParseFunc

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]resolved
}

type resolved struct {
	stmts []ast.Stmt
	name  string
}

// NewFileSystemResolver builds a resolver rooted at basePath. manifest may
// be nil if the project has no [modules] section; parse must turn file
// contents into statements (there is no parser in this module to supply
// one, per spec.md §1).
func NewFileSystemResolver(basePath string, manifest *project.Manifest, parse ParseFunc) *FileSystemResolver {
	return &FileSystemResolver{
		basePath: basePath,
		manifest: manifest,
		parse:    parse,
		cache:    make(map[string]resolved),
	}
}

// ResolveLocal implements internal/module.Resolver for non-scoped import
// paths. There is no OS-root escape hatch: even an "absolute" chronlang
// path is still rooted at the project directory.
func (r *FileSystemResolver) ResolveLocal(path string, absolute bool) ([]ast.Stmt, string, error) {
	return r.resolveFile(filepath.Join(r.basePath, path+".lang"))
}

// ResolveScoped implements internal/module.Resolver for `@scope` import
// paths, consulting the manifest's [modules] table for where scope lives
// on disk.
func (r *FileSystemResolver) ResolveScoped(scope, path string) ([]ast.Stmt, string, error) {
	if r.manifest == nil {
		return nil, "", fmt.Errorf("%s: no chronlang.toml [modules] entry available to resolve scoped imports", scope)
	}
	name := scope
	if len(scope) > 0 && scope[0] == '@' {
		name = scope[1:]
	}
	root, declared, installed := r.manifest.ScopeRoot(name)
	if !declared {
		return nil, "", fmt.Errorf("%q is not declared in [modules]", name)
	}
	if !installed {
		return nil, "", fmt.Errorf("module %q is declared but not installed under %s", name, root)
	}
	return r.resolveFile(filepath.Join(root, path+".lang"))
}

// resolveFile serves cached reads, and uses singleflight to collapse
// concurrent first-time resolutions of the same file into one disk read
// and one parse (the teacher depends on golang.org/x/sync for exactly this
// shape of work, there for its build-DAG scheduler; chronlang's recursive
// import resolution is the piece of that concern that survives).
func (r *FileSystemResolver) resolveFile(fileName string) ([]ast.Stmt, string, error) {
	r.mu.RLock()
	if cached, ok := r.cache[fileName]; ok {
		r.mu.RUnlock()
		return cached.stmts, cached.name, nil
	}
	r.mu.RUnlock()

	v, err, _ := r.group.Do(fileName, func() (interface{}, error) {
		contents, err := os.ReadFile(fileName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %q: %w", fileName, err)
		}
		stmts, err := r.parse(contents, fileName)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
		res := resolved{stmts: stmts, name: fileName}
		r.mu.Lock()
		r.cache[fileName] = res
		r.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return nil, "", err
	}
	res := v.(resolved)
	return res.stmts, res.name, nil
}

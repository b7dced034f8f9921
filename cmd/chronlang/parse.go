package main

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
)

// noParser stands in for the frontend this repo deliberately doesn't ship:
// turning `.lang` source text into statements is an external collaborator's
// job (spec.md §1), not this engine's. It lets every command build a real
// resolver.FileSystemResolver and exercise imports, compilation, and
// snapshotting end to end on pre-parsed fixtures or embedders that supply
// their own ParseFunc; pointed at raw source on disk without one, it fails
// loudly instead of pretending to understand the file.
func noParser(source []byte, name string) ([]ast.Stmt, error) {
	return nil, fmt.Errorf("%s: no chronlang parser is wired into this build; supply one via resolver.NewFileSystemResolver", name)
}

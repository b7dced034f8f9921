// Package project locates and parses a chronlang.toml manifest: the
// [package] entry point and the [modules] table that maps an @scope import
// segment to a git-backed dependency root (spec.md §4.2, §6).
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// PackageConfig is a manifest's [package] section.
type PackageConfig struct {
	Name  string `toml:"name"`
	Entry string `toml:"entry"`
}

// ModuleSpec is one entry in [modules]: where a `@name` import scope
// resolves to on disk.
type ModuleSpec struct {
	Source string `toml:"source"`
	URL    string `toml:"url"`
}

// Manifest is a fully parsed chronlang.toml plus the directory it lives in.
type Manifest struct {
	Path    string
	Root    string
	Package PackageConfig
	Modules map[string]ModuleSpec
}

var (
	ErrPackageSectionMissing = errors.New("missing [package]")
	ErrPackageNameMissing    = errors.New("missing [package].name")
)

type manifestFile struct {
	Package PackageConfig         `toml:"package"`
	Modules map[string]ModuleSpec `toml:"modules"`
}

// FindChronlangToml walks up from startDir looking for chronlang.toml.
func FindChronlangToml(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "chronlang.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindProjectRoot returns the directory containing chronlang.toml, if any.
func FindProjectRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindChronlangToml(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}

// LoadManifest finds and parses chronlang.toml starting from startDir.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindChronlangToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}

	var cfg manifestFile
	meta, err := toml.DecodeFile(manifestPath, &cfg)
	if err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	if !meta.IsDefined("package") {
		return nil, true, fmt.Errorf("%s: %w", manifestPath, ErrPackageSectionMissing)
	}
	name := strings.TrimSpace(cfg.Package.Name)
	if name == "" {
		return nil, true, fmt.Errorf("%s: %w", manifestPath, ErrPackageNameMissing)
	}
	if cfg.Modules == nil {
		cfg.Modules = map[string]ModuleSpec{}
	}

	return &Manifest{
		Path:    manifestPath,
		Root:    filepath.Dir(manifestPath),
		Package: PackageConfig{Name: name, Entry: strings.TrimSpace(cfg.Package.Entry)},
		Modules: cfg.Modules,
	}, true, nil
}

// ScopeRoot resolves an `@scope` import segment (without the leading `@`)
// to the directory a FileSystemResolver should read `.lang` files from:
// deps/<scope> beneath the manifest's own directory, provided [modules]
// declares it (the entry's source/url are not checked). It does not fetch anything — spec.md's
// module system assumes dependencies are already checked out on disk; a
// missing deps directory is reported back to the caller, not treated as
// an error here, so a CLI can print an actionable "install" hint.
func (m *Manifest) ScopeRoot(scope string) (root string, declared bool, installed bool) {
	spec, ok := m.Modules[scope]
	if !ok {
		return "", false, false
	}
	depsDir := filepath.Join(m.Root, "deps", scope)
	info, err := os.Stat(depsDir)
	if err != nil || !info.IsDir() {
		return depsDir, true, false
	}
	_ = spec // source/url are consulted by the (out-of-scope) install step, not resolution
	return depsDir, true, true
}

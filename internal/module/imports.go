package module

import (
	"fmt"
	"strings"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/diag"
	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/phon"
	"github.com/conlangtools/chronlang-engine/internal/source"
)

// Resolver locates the parsed statements for an import path (spec.md §4.2,
// §6). Turning source text into statements is the external parser's job
// (spec.md §1); a Resolver only needs to find the right statements and
// report the name they came from, so that compileModule itself performs
// the recursive compile — which is what lets the in-flight cycle guard
// (compileState.inFlight) see every recursive compile regardless of which
// concrete Resolver located the source (spec.md §9's open question on
// import cycles, resolved in DESIGN.md: detect explicitly).
type Resolver interface {
	ResolveScoped(scope, path string) ([]ast.Stmt, string, error)
	ResolveLocal(path string, absolute bool) ([]ast.Stmt, string, error)
}

// compileImport implements spec.md §4.2.
func compileImport(m *Module, st *compileState, resolver Resolver, stmt ast.Import) {
	if len(stmt.Path) == 0 {
		return
	}
	segs := make([]string, len(stmt.Path))
	for i, s := range stmt.Path {
		segs[i] = s.Value
	}

	var stmts []ast.Stmt
	var importName string
	var err error
	if strings.HasPrefix(segs[0], "@") {
		stmts, importName, err = resolver.ResolveScoped(segs[0], strings.Join(segs[1:], "/"))
	} else {
		absolute := strings.HasPrefix(segs[0], "/")
		stmts, importName, err = resolver.ResolveLocal(strings.Join(segs, "/"), absolute)
	}
	if err != nil {
		diag.ReportError(m.errReporter(), diag.ImportFailed, stmt.Span,
			fmt.Sprintf("failed to resolve import: %s", err))
		return
	}

	if st.inFlight[importName] {
		diag.ReportError(m.errReporter(), diag.ImportCycle, stmt.Span,
			fmt.Sprintf("import cycle detected at %q", importName))
		return
	}
	st.inFlight[importName] = true
	imported := compileModule(stmts, importName, resolver, st.inFlight)
	delete(st.inFlight, importName)

	for _, d := range imported.Errors.Items() {
		m.Errors.Add(d.WithNote(stmt.Span, "imported here"))
	}
	for _, d := range imported.Warnings.Items() {
		m.Warnings.Add(d.WithNote(stmt.Span, "imported here"))
	}

	hasWildcard, hasNamed := false, false
	for _, n := range stmt.Names {
		if n.Value == "*" {
			hasWildcard = true
		} else {
			hasNamed = true
		}
	}
	if hasWildcard && hasNamed {
		// spec.md §9: the spec leaves this to the implementer; decided to
		// record the error and still perform the wildcard import below.
		diag.ReportError(m.errReporter(), diag.DupImportMix, stmt.Span,
			"a wildcard import cannot be combined with named imports")
	}

	for _, n := range stmt.Names {
		if n.Value == "*" {
			importAllFrom(m, imported, stmt.Span)
			continue
		}
		importNamed(m, imported, n.Value, n.Span, stmt.Span)
	}
}

func importAllFrom(m *Module, other *Module, importSpan source.Span) {
	for _, lang := range other.Languages {
		importLanguage(m, lang, importSpan)
	}
	for _, trait := range other.Traits {
		importTrait(m, trait, importSpan)
	}
	for _, class := range other.Classes {
		importClass(m, class, importSpan)
	}
	for _, series := range other.Series {
		importSeries(m, series, importSpan)
	}
	for _, word := range other.Words {
		importWord(m, word, importSpan)
	}
}

func importNamed(m *Module, other *Module, name string, nameSpan, importSpan source.Span) {
	switch {
	case tryImportLanguage(m, other, name, importSpan):
	case tryImportTrait(m, other, name, importSpan):
	case tryImportClass(m, other, name, importSpan):
	case tryImportSeries(m, other, name, importSpan):
	case tryImportWord(m, other, name, importSpan):
	default:
		diag.ReportError(m.errReporter(), diag.RefImportNameMiss, nameSpan,
			fmt.Sprintf("%q is not declared in the imported module", name))
	}
}

func tryImportLanguage(m, other *Module, name string, importSpan source.Span) bool {
	lang, ok := other.Languages[name]
	if !ok {
		return false
	}
	importLanguage(m, lang, importSpan)
	return true
}

func tryImportTrait(m, other *Module, name string, importSpan source.Span) bool {
	trait, ok := other.Traits[name]
	if !ok {
		return false
	}
	importTrait(m, trait, importSpan)
	return true
}

func tryImportClass(m, other *Module, name string, importSpan source.Span) bool {
	class, ok := other.Classes[name]
	if !ok {
		return false
	}
	importClass(m, class, importSpan)
	return true
}

func tryImportSeries(m, other *Module, name string, importSpan source.Span) bool {
	series, ok := other.Series[name]
	if !ok {
		return false
	}
	importSeries(m, series, importSpan)
	return true
}

func tryImportWord(m, other *Module, name string, importSpan source.Span) bool {
	word, ok := other.Words[name]
	if !ok {
		return false
	}
	importWord(m, word, importSpan)
	return true
}

func importLanguage(m *Module, lang *langtree.Language, importSpan source.Span) {
	if prev, exists := m.Languages[lang.ID]; exists {
		if prev == lang {
			return
		}
		diag.ReportError(m.errReporter(), diag.DupLanguageID, importSpan,
			fmt.Sprintf("language %q is already declared", lang.ID),
			diag.Note{Span: prev.Span, Msg: "previous declaration here"})
		return
	}
	m.Languages[lang.ID] = lang
	for _, ms := range lang.Milestones {
		m.Milestones = langtree.AppendDedup(m.Milestones, ms)
	}
}

// importTrait is idempotent under reference equality so that importing two
// classes which both encode the same trait (spec.md §4.2's "importing a
// class also imports the traits it encodes") only ever imports it once.
func importTrait(m *Module, trait *phon.Trait, importSpan source.Span) {
	if prev, exists := m.Traits[trait.Name]; exists {
		if prev == trait {
			return
		}
		diag.ReportError(m.errReporter(), diag.DupTraitName, importSpan,
			fmt.Sprintf("trait %q is already declared", trait.Name),
			diag.Note{Span: prev.Span, Msg: "previous declaration here"})
		return
	}
	m.Traits[trait.Name] = trait
	for _, f := range trait.Features {
		for _, l := range f.Labels {
			m.declareFeatureLabel(l.Text, importSpan, f)
		}
	}
}

func importClass(m *Module, class *phon.Class, importSpan source.Span) {
	if prev, exists := m.Classes[class.Name]; exists {
		if prev == class {
			return
		}
		diag.ReportError(m.errReporter(), diag.DupSoundEntity, importSpan,
			fmt.Sprintf("%q is already declared as a class, series, or phoneme", class.Name))
		return
	}
	if !m.declareSoundEntity(class.Name, SoundEntityClass, importSpan) {
		return
	}
	m.Classes[class.Name] = class
	for _, p := range class.Phonemes {
		if _, exists := m.phonemesByGlyph[p.Glyph]; exists {
			continue
		}
		m.soundEntities[p.Glyph] = namespaceEntry{kind: SoundEntityPhoneme, span: importSpan}
		m.phonemesByGlyph[p.Glyph] = p
		m.allPhonemes = append(m.allPhonemes, p)
	}
	for _, trait := range class.Encodes {
		importTrait(m, trait, importSpan)
	}
}

func importSeries(m *Module, series *phon.Series, importSpan source.Span) {
	if prev, exists := m.Series[series.Name]; exists {
		if prev == series {
			return
		}
		diag.ReportError(m.errReporter(), diag.DupSoundEntity, importSpan,
			fmt.Sprintf("%q is already declared as a class, series, or phoneme", series.Name))
		return
	}
	if !m.declareSoundEntity(series.Name, SoundEntitySeries, importSpan) {
		return
	}
	m.Series[series.Name] = series
}

func importWord(m *Module, word *lexicon.Word, importSpan source.Span) {
	if prev, exists := m.Words[word.Gloss]; exists {
		if prev == word {
			return
		}
		diag.ReportError(m.errReporter(), diag.DupWordGloss, importSpan,
			fmt.Sprintf("word %q is already declared", word.Gloss))
		return
	}
	m.Words[word.Gloss] = word
}

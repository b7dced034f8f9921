package module

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/diag"
	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/phon"
	"github.com/conlangtools/chronlang-engine/internal/soundchange"
	"github.com/conlangtools/chronlang-engine/internal/source"
)

// SoundEntityKind distinguishes which of the three jointly-unique
// namespaces (classes, series, phoneme glyphs — spec.md §3, §9) a name
// belongs to.
type SoundEntityKind uint8

const (
	SoundEntityNone SoundEntityKind = iota
	SoundEntityClass
	SoundEntitySeries
	SoundEntityPhoneme
)

// SoundEntity is the result of looking a name up in the shared
// class/series/phoneme namespace.
type SoundEntity struct {
	Kind    SoundEntityKind
	Class   *phon.Class
	Series  *phon.Series
	Phoneme *phon.Phoneme
	Span    source.Span
}

type namespaceEntry struct {
	kind SoundEntityKind
	span source.Span
}

// Module is the compilation unit (spec.md §3): every entity declared or
// imported, plus the errors and warnings accumulated while building it.
// A Module is produced once by CompileModule and is read-only afterward
// apart from the entity maps an import populates during compilation.
type Module struct {
	Languages map[string]*langtree.Language
	Traits    map[string]*phon.Trait
	Classes   map[string]*phon.Class
	Series    map[string]*phon.Series
	Words     map[string]*lexicon.Word

	Milestones   []*langtree.Milestone
	SoundChanges []*soundchange.Change

	Errors   *diag.Bag
	Warnings *diag.Bag

	soundEntities   map[string]namespaceEntry
	phonemesByGlyph map[string]*phon.Phoneme
	featureLabels   map[string]*phon.Feature
	allPhonemes     []*phon.Phoneme
}

func newModule() *Module {
	return &Module{
		Languages:       make(map[string]*langtree.Language),
		Traits:          make(map[string]*phon.Trait),
		Classes:         make(map[string]*phon.Class),
		Series:          make(map[string]*phon.Series),
		Words:           make(map[string]*lexicon.Word),
		Errors:          diag.NewBag(),
		Warnings:        diag.NewBag(),
		soundEntities:   make(map[string]namespaceEntry),
		phonemesByGlyph: make(map[string]*phon.Phoneme),
		featureLabels:   make(map[string]*phon.Feature),
	}
}

func (m *Module) errReporter() diag.Reporter  { return diag.BagReporter{Bag: m.Errors} }
func (m *Module) warnReporter() diag.Reporter { return diag.BagReporter{Bag: m.Warnings} }

// HasEntity implements spec.md §6's inspection API: true if name is a
// declared (or imported) top-level entity — a language, trait, class,
// series, or word. A class or trait import carries its phonemes/features
// along with it, so those never need their own top-level existence check.
func (m *Module) HasEntity(name string) bool {
	if _, ok := m.Languages[name]; ok {
		return true
	}
	if _, ok := m.Traits[name]; ok {
		return true
	}
	if _, ok := m.Classes[name]; ok {
		return true
	}
	if _, ok := m.Series[name]; ok {
		return true
	}
	if _, ok := m.Words[name]; ok {
		return true
	}
	return false
}

// GetFeatures returns the ordered feature list of a declared trait.
func (m *Module) GetFeatures(traitName string) ([]*phon.Feature, bool) {
	t, ok := m.Traits[traitName]
	if !ok {
		return nil, false
	}
	return t.Features, true
}

// GetPhonemes returns the ordered phoneme list of a declared class.
func (m *Module) GetPhonemes(className string) ([]*phon.Phoneme, bool) {
	c, ok := m.Classes[className]
	if !ok {
		return nil, false
	}
	return c.Phonemes, true
}

// ListPhonemes returns every phoneme declared in or imported into this
// module, in the order it was declared or imported. Imported phonemes keep
// the Index their own module assigned.
func (m *Module) ListPhonemes() []*phon.Phoneme {
	return m.allPhonemes
}

// GetSoundEntity looks a name up across the shared class/series/phoneme
// namespace (spec.md §9).
func (m *Module) GetSoundEntity(name string) (SoundEntity, bool) {
	entry, ok := m.soundEntities[name]
	if !ok {
		return SoundEntity{}, false
	}
	switch entry.kind {
	case SoundEntityClass:
		return SoundEntity{Kind: entry.kind, Class: m.Classes[name], Span: entry.span}, true
	case SoundEntitySeries:
		return SoundEntity{Kind: entry.kind, Series: m.Series[name], Span: entry.span}, true
	case SoundEntityPhoneme:
		return SoundEntity{Kind: entry.kind, Phoneme: m.phonemesByGlyph[name], Span: entry.span}, true
	default:
		return SoundEntity{}, false
	}
}

// resolvePhonemeSet resolves a name to anything that can serve as a
// category's base (spec.md §4.4.3): a class or a series.
func (m *Module) resolvePhonemeSet(name string) (phon.PhonemeSet, bool) {
	if c, ok := m.Classes[name]; ok {
		return c, true
	}
	if s, ok := m.Series[name]; ok {
		return s, true
	}
	return nil, false
}

// declareSoundEntity records name under the shared class/series/phoneme
// namespace, reporting DupSoundEntity on collision. Returns false if the
// name was already taken.
func (m *Module) declareSoundEntity(name string, kind SoundEntityKind, span source.Span) bool {
	if prev, exists := m.soundEntities[name]; exists {
		diag.ReportError(m.errReporter(), diag.DupSoundEntity, span,
			fmt.Sprintf("%q is already declared as a class, series, or phoneme", name),
			diag.Note{Span: prev.span, Msg: "previous declaration here"})
		return false
	}
	m.soundEntities[name] = namespaceEntry{kind: kind, span: span}
	return true
}

// declareFeatureLabel enforces spec.md §3's rule that a feature label is
// unique across every trait in the module, not just within its own trait.
func (m *Module) declareFeatureLabel(label string, span source.Span, feature *phon.Feature) bool {
	if prev, exists := m.featureLabels[label]; exists {
		diag.ReportError(m.errReporter(), diag.DupFeatureLabel, span,
			fmt.Sprintf("feature label %q is already used by another trait", label),
			diag.Note{Span: labelSpan(prev, label), Msg: "previous use here"})
		return false
	}
	m.featureLabels[label] = feature
	return true
}

// resolveFeatureLabel finds the feature named by any of its labels,
// across every trait declared or imported so far.
func (m *Module) resolveFeatureLabel(label string) (*phon.Feature, bool) {
	f, ok := m.featureLabels[label]
	return f, ok
}

func labelSpan(f *phon.Feature, text string) source.Span {
	for _, l := range f.Labels {
		if l.Text == text {
			return l.Span
		}
	}
	return source.Zero
}

// addPhoneme registers p in the glyph namespace and the module-wide
// declaration-order listing, assigning it the next phonemeIndex.
func (m *Module) addPhoneme(p *phon.Phoneme, st *compileState) {
	p.Index = st.nextPhonemeIndex()
	m.phonemesByGlyph[p.Glyph] = p
	m.allPhonemes = append(m.allPhonemes, p)
}

package module

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/diag"
	"github.com/conlangtools/chronlang-engine/internal/phon"
)

// compileTrait implements spec.md §4.3's trait declaration: the trait name
// has its own namespace (separate from the class/series/phoneme one), a
// feature's labels are unique across every trait in the module, and at
// most one feature may be marked default.
func compileTrait(m *Module, stmt ast.Trait) {
	name := stmt.Label.Value
	if prev, exists := m.Traits[name]; exists {
		diag.ReportError(m.errReporter(), diag.DupTraitName, stmt.Label.Span,
			fmt.Sprintf("trait %q is already declared", name),
			diag.Note{Span: prev.Span, Msg: "previous declaration here"})
		return
	}

	trait := &phon.Trait{Name: name, Span: stmt.Span}
	var defaultCount int
	var defaultFeature *phon.Feature

	for _, member := range stmt.Members {
		if len(member.Labels) == 0 {
			continue
		}
		feature := &phon.Feature{Trait: trait}
		for _, lbl := range member.Labels {
			if !m.declareFeatureLabel(lbl.Value, lbl.Span, feature) {
				continue
			}
			feature.Labels = append(feature.Labels, phon.Label{Text: lbl.Value, Span: lbl.Span})
		}
		if len(feature.Labels) == 0 {
			primary := member.Labels[0]
			feature.Labels = append(feature.Labels, phon.Label{Text: primary.Value, Span: primary.Span})
		}
		trait.Features = append(trait.Features, feature)
		if member.Default {
			defaultCount++
			defaultFeature = feature
		}
	}

	if defaultCount > 1 {
		diag.ReportError(m.errReporter(), diag.ShapeMultipleDefault, stmt.Span,
			fmt.Sprintf("trait %q marks more than one feature as default", name))
	}
	switch {
	case defaultFeature != nil:
		trait.Default = defaultFeature
	case len(trait.Features) > 0:
		trait.Default = trait.Features[0]
	}

	m.Traits[name] = trait
}

// compileClass implements spec.md §4.3's class declaration. An unresolved
// encoded trait aborts the class entirely, per spec.md §4.3; the name slot
// stays reserved in the shared namespace so a later redeclaration under the
// same name is still flagged.
func compileClass(m *Module, st *compileState, stmt ast.Class) {
	name := stmt.Label.Value
	if !m.declareSoundEntity(name, SoundEntityClass, stmt.Span) {
		return
	}

	class := &phon.Class{Name: name, Span: stmt.Span}
	ok := true
	for _, e := range stmt.Encodes {
		trait, found := m.Traits[e.Value]
		if !found {
			diag.ReportError(m.errReporter(), diag.RefUnknownTrait, e.Span,
				fmt.Sprintf("unknown trait %q", e.Value))
			ok = false
			continue
		}
		class.Encodes = append(class.Encodes, trait)
	}
	if !ok {
		return
	}

	for _, a := range stmt.Annotates {
		class.Annotates = append(class.Annotates, a.Value)
	}

	for _, pd := range stmt.Phonemes {
		compileClassPhoneme(m, st, class, pd)
	}

	m.Classes[name] = class
}

func compileClassPhoneme(m *Module, st *compileState, class *phon.Class, pd ast.PhonemeDef) {
	glyph := pd.Label.Value
	if !m.declareSoundEntity(glyph, SoundEntityPhoneme, pd.Label.Span) {
		return
	}

	p := &phon.Phoneme{Glyph: glyph, Span: pd.Span, Class: class, Features: make(map[*phon.Trait]*phon.Feature)}

	if len(pd.Traits) != len(class.Encodes) {
		diag.ReportError(m.errReporter(), diag.ShapeArityMismatch, pd.Span,
			fmt.Sprintf("phoneme %q specifies %d feature(s), class %q encodes %d",
				glyph, len(pd.Traits), class.Name, len(class.Encodes)))
	}

	for i, lbl := range pd.Traits {
		if i >= len(class.Encodes) {
			break
		}
		trait := class.Encodes[i]
		feature, found := trait.FeatureByLabel(lbl.Value)
		if !found {
			diag.ReportError(m.errReporter(), diag.RefUnknownFeature, lbl.Span,
				fmt.Sprintf("%q is not a feature of trait %q", lbl.Value, trait.Name))
			continue
		}
		p.Features[trait] = feature
	}

	m.addPhoneme(p, st)
	class.Phonemes = append(class.Phonemes, p)
}

// compileSeries implements spec.md §4.3's two series sub-kinds.
func compileSeries(m *Module, stmt ast.Series) {
	name := stmt.Label.Value
	if !m.declareSoundEntity(name, SoundEntitySeries, stmt.Span) {
		return
	}

	series := &phon.Series{Name: name, Span: stmt.Span}
	body := stmt.Body.Value
	switch body.Kind {
	case ast.SeriesList:
		series.Kind = phon.SeriesList
		for _, ref := range body.List {
			p, found := m.phonemesByGlyph[ref.Value]
			if !found {
				diag.ReportError(m.errReporter(), diag.RefUnknownPhoneme, ref.Span,
					fmt.Sprintf("unknown phoneme %q", ref.Value))
				continue
			}
			series.List = append(series.List, p)
		}
	case ast.SeriesCategory:
		series.Kind = phon.SeriesCategory
		series.Category = compileCategory(m, body.Category)
	}

	m.Series[name] = series
}

// compileCategory implements spec.md §4.4.3's category shape: an optional
// base class/series plus signed feature modifiers. Shared by series
// declarations and by sound-change pattern/environment segments.
func compileCategory(m *Module, cat ast.Category) *phon.Category {
	c := &phon.Category{}

	if cat.BaseClass != nil {
		base, found := m.resolvePhonemeSet(cat.BaseClass.Value)
		if !found {
			diag.ReportError(m.errReporter(), diag.RefUnknownClass, cat.BaseClass.Span,
				fmt.Sprintf("unknown class or series %q", cat.BaseClass.Value))
		} else {
			c.BaseClass = base
		}
	}

	for _, mod := range cat.Modifiers {
		feature, found := m.resolveFeatureLabel(mod.Feature.Value)
		if !found {
			diag.ReportError(m.errReporter(), diag.RefUnknownFeature, mod.Feature.Span,
				fmt.Sprintf("unknown feature %q", mod.Feature.Value))
			continue
		}
		sign := phon.Positive
		if mod.Sign == ast.Negative {
			sign = phon.Negative
		}
		c.Modifiers = append(c.Modifiers, phon.Modifier{Feature: feature, Sign: sign})
	}

	return c
}

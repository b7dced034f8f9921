package soundchange

import (
	"github.com/conlangtools/chronlang-engine/internal/diag"
	"github.com/conlangtools/chronlang-engine/internal/phon"
)

// resolveTarget implements the target half of spec.md §4.4.6 for one
// matched source slice.
func resolveTarget(c *Change, sourceSlice []*phon.Phoneme, reporter diag.Reporter) []*phon.Phoneme {
	switch c.Target.Kind {
	case TargetEmpty:
		return nil
	case TargetPhonemes:
		return c.Target.Phonemes
	case TargetModification:
		out := make([]*phon.Phoneme, len(sourceSlice))
		for i, p := range sourceSlice {
			out[i] = resolveModifiedPhoneme(c, p, reporter)
		}
		return out
	default:
		return sourceSlice
	}
}

// resolveModifiedPhoneme applies every modifier whose trait the phoneme
// specifies, then searches the phoneme's own class for a member whose full
// feature map matches the edited map (spec.md §4.4.6, §9: "the first in
// declaration order wins" on multiple matches). If none exists, it warns
// and returns p unchanged (spec.md §4.4.7: feature-modification failures
// are warnings, never errors).
func resolveModifiedPhoneme(c *Change, p *phon.Phoneme, reporter diag.Reporter) *phon.Phoneme {
	edited := p.CloneFeatures()

	for _, m := range c.Target.Modifiers {
		trait := m.Feature.Trait
		current, present := edited[trait]
		if !present {
			continue
		}
		if m.Sign == phon.Positive {
			edited[trait] = m.Feature
			continue
		}
		if current == trait.Default {
			edited[trait] = trait.FirstFeatureExcluding(m.Feature)
		} else {
			edited[trait] = trait.Default
		}
	}

	if p.Class != nil {
		for _, candidate := range p.Class.Phonemes {
			if candidate.SameFeatures(edited) {
				return candidate
			}
		}
	}

	diag.ReportWarning(reporter, diag.RewriteNoMatchingPhoneme, c.DefinitionSite,
		"no phoneme in class "+className(p)+" matches the modified feature set for /"+p.Glyph+"/")
	return p
}

func className(p *phon.Phoneme) string {
	if p.Class == nil {
		return "<none>"
	}
	return p.Class.Name
}

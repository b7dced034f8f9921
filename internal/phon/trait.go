package phon

import "github.com/conlangtools/chronlang-engine/internal/source"

// Label is one spelling of a feature, with the span of its declaration.
type Label struct {
	Text string
	Span source.Span
}

// Trait is a named phonological dimension (e.g. "Voicing") with an
// ordered, non-empty list of features and exactly one default.
type Trait struct {
	Name     string
	Span     source.Span
	Features []*Feature
	Default  *Feature
}

// Feature is owned by exactly one trait; the back-reference is a logical
// pointer, not ownership (spec.md §3).
type Feature struct {
	Labels []Label
	Trait  *Trait
}

// HasLabel reports whether text names this feature under any of its labels.
func (f *Feature) HasLabel(text string) bool {
	for _, l := range f.Labels {
		if l.Text == text {
			return true
		}
	}
	return false
}

// PrimaryLabel is the first declared label, used for rendering.
func (f *Feature) PrimaryLabel() string {
	if len(f.Labels) == 0 {
		return ""
	}
	return f.Labels[0].Text
}

// FeatureByLabel finds the feature within this trait whose labels include
// text. Used when resolving a class phoneme's positional feature values
// and a sound-change modifier's feature reference.
func (t *Trait) FeatureByLabel(text string) (*Feature, bool) {
	for _, f := range t.Features {
		if f.HasLabel(text) {
			return f, true
		}
	}
	return nil, false
}

// FirstFeatureExcluding returns the first declared feature of the trait
// that is not exclude, falling back to exclude itself if the trait somehow
// has no other feature. Used by the sound-change rewrite engine (spec.md
// §4.4.6) for a negative modifier when the phoneme's current feature for
// the trait is the default: the replacement is the first feature of the
// trait other than the modifier's own.
func (t *Trait) FirstFeatureExcluding(exclude *Feature) *Feature {
	for _, candidate := range t.Features {
		if candidate != exclude {
			return candidate
		}
	}
	return exclude
}

package morphodrill

import (
	"fmt"
	"slices"
)

// AllowedValues lists, per category, the values a drill may use. A category
// with a single value is pinned: forms are forced to it and it is never
// mutated. The sampler never modifies an AllowedValues.
type AllowedValues struct {
	Persons []Person `json:"persons"`
	Numbers []Number `json:"numbers"`
	Tenses  []Tense  `json:"tenses"`
	Moods   []Mood   `json:"moods"`
	Voices  []Voice  `json:"voices"`
}

// AllAllowed permits every finite value of every category.
func AllAllowed() *AllowedValues {
	return &AllowedValues{
		Persons: []Person{First, Second, Third},
		Numbers: []Number{Singular, Plural},
		Tenses:  []Tense{Present, Imperfect, Future, Aorist, Perfect, Pluperfect},
		Moods:   []Mood{Indicative, Subjunctive, Optative, Imperative},
		Voices:  []Voice{Active, Middle, Passive},
	}
}

// Validate checks that every category has at least one value and that no
// value is out of range.
func (a *AllowedValues) Validate() error {
	for c := CatPerson; c < NumCategories; c++ {
		vals := categoryTable[c].allowed(a)
		if len(vals) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyAllowedValues, c)
		}
		for _, v := range vals {
			if v >= categoryTable[c].radix {
				return fmt.Errorf("%w: %s ordinal %d", ErrUnknownValue, c, v)
			}
		}
	}
	return nil
}

// ChangeParams randomly changes up to n grammatical categories of f and
// returns the categories it changed. Pass that result back as avoid on the
// next call to keep the same category from being picked twice in a row.
//
// Pinned categories are applied first and never change. Nothing changes if
// f has no person or number, or if every category is pinned. Each changed
// category gets a value drawn uniformly from its allowed values other than
// the current one. A nil rng uses DefaultRand and a nil allowed uses
// AllAllowed.
//
// A non-pinned category with no allowed values is a programming error and
// panics when it gets selected.
func (f *VerbForm) ChangeParams(rng Rand, n int, allowed *AllowedValues, avoid []Category) []Category {
	if rng == nil {
		rng = DefaultRand()
	}
	if allowed == nil {
		allowed = AllAllowed()
	}

	mutable := make([]Category, 0, NumCategories)
	for c := CatPerson; c < NumCategories; c++ {
		ops := categoryTable[c]
		vals := ops.allowed(allowed)
		if len(vals) == 1 {
			ops.set(f, vals[0])
			continue
		}
		mutable = append(mutable, c)
	}

	if !f.IsFinite() || len(mutable) == 0 {
		return nil
	}

	// Exclude one random member of avoid so a multi-category avoid set does
	// not always drop the same one.
	if len(avoid) > 0 && len(mutable) > 1 {
		skip := avoid[rng.IntN(len(avoid))]
		mutable = slices.DeleteFunc(mutable, func(c Category) bool { return c == skip })
	}

	rng.Shuffle(len(mutable), func(i, j int) { mutable[i], mutable[j] = mutable[j], mutable[i] })
	if n < len(mutable) {
		mutable = mutable[:max(n, 0)]
	}

	changed := mutable[:0]
	for _, c := range mutable {
		ops := categoryTable[c]
		vals := ops.allowed(allowed)
		if len(vals) == 0 {
			panic(fmt.Sprintf("morphodrill: ChangeParams: %s has no allowed values", c))
		}
		cur := ops.get(f)
		choices := slices.DeleteFunc(vals, func(v int) bool { return v == cur })
		if len(choices) == 0 {
			continue
		}
		ops.set(f, choices[rng.IntN(len(choices))])
		changed = append(changed, c)
	}
	return changed
}

package morphodrill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// neverBlocked marks a form that no unit blocks.
const neverBlocked Unit = -3

// assertBoundary checks that f is blocked through lastBlocked and allowed
// at the next unit and beyond.
func assertBoundary(t *testing.T, f VerbForm, lastBlocked Unit) {
	t.Helper()
	for u := Unit(-2); u <= lastBlocked; u++ {
		assert.True(t, BlockedForUnit(f, u), "%s should be blocked at unit %d", f, u)
	}
	for u := lastBlocked + 1; u <= 25; u++ {
		assert.False(t, BlockedForUnit(f, u), "%s should be allowed at unit %d", f, u)
	}
	assert.False(t, BlockedForUnit(f, NoUnit), "%s should be allowed without a unit", f)
}

func TestBlockedForUnitBoundaries(t *testing.T) {
	v := luw(t)
	isthmi := NewVerb(3, isthmiParts, 12)
	blaptw := NewVerb(2, blaptwParts, 4)

	tests := []struct {
		name        string
		f           VerbForm
		lastBlocked Unit
	}{
		{"perfect active indicative", NewFiniteForm(v, First, Singular, Perfect, Indicative, Active), 2},
		{"present active subjunctive", NewFiniteForm(v, First, Singular, Present, Subjunctive, Active), 2},
		{"present active optative", NewFiniteForm(v, First, Singular, Present, Optative, Active), 2},
		{"present passive indicative", NewFiniteForm(v, First, Singular, Present, Indicative, Passive), 4},
		{"present middle indicative", NewFiniteForm(v, First, Singular, Present, Indicative, Middle), 6},
		{"present active imperative", NewFiniteForm(v, Second, Singular, Present, Imperative, Active), 10},
		{"mi-verb present", NewFiniteForm(isthmi, First, Singular, Present, Indicative, Active), 11},
		{"mi-verb aorist", NewFiniteForm(isthmi, First, Singular, Aorist, Indicative, Active), 12},
		{"stemi perfect", NewFiniteForm(isthmi, First, Singular, Perfect, Indicative, Active), 12},
		{"stemi pluperfect", NewFiniteForm(isthmi, First, Singular, Pluperfect, Indicative, Active), 12},
		{"future optative", NewFiniteForm(v, First, Singular, Future, Optative, Active), 15},
		{"consonant stem 3pl perfect middle", NewFiniteForm(blaptw, Third, Plural, Perfect, Indicative, Middle), 19},
		{"consonant stem 3pl pluperfect passive", NewFiniteForm(blaptw, Third, Plural, Pluperfect, Indicative, Passive), 19},
		{"consonant stem 3pl perfect active", NewFiniteForm(blaptw, Third, Plural, Perfect, Indicative, Active), 2},
		{"vowel stem 3pl perfect passive", NewFiniteForm(v, Third, Plural, Perfect, Indicative, Passive), 4},
		{"consonant stem 3sg perfect middle", NewFiniteForm(blaptw, Third, Singular, Perfect, Indicative, Middle), 6},
		{"present active indicative", NewFiniteForm(v, First, Singular, Present, Indicative, Active), neverBlocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertBoundary(t, tt.f, tt.lastBlocked)
		})
	}
}

func TestBlockedForUnitNothingCompleted(t *testing.T) {
	blaptw := NewVerb(2, blaptwParts, 4)
	v := luw(t)
	forms := []VerbForm{
		NewFiniteForm(blaptw, Second, Singular, Perfect, Imperative, Middle),
		NewFiniteForm(v, First, Singular, Perfect, Indicative, Active),
		NewFiniteForm(v, First, Singular, Present, Subjunctive, Active),
	}
	for _, f := range forms {
		for _, u := range []Unit{0, -1} {
			assert.Equal(t, BlockedForUnit(f, 2), BlockedForUnit(f, u), "%s at unit %d", f, u)
			assert.True(t, BlockedForUnit(f, u), "%s at unit %d", f, u)
		}
		assert.False(t, BlockedForUnit(f, NoUnit), "%s without a unit", f)
	}
}

func TestBlockedForUnitOtherMiVerbPerfect(t *testing.T) {
	// A -μι verb that is not -στημι keeps its perfect from unit 12 on.
	tithhmi := NewVerb(4, tithhmiParts, 12)
	f := NewFiniteForm(tithhmi, First, Singular, Perfect, Indicative, Active)
	assert.True(t, BlockedForUnit(f, 11))
	assert.False(t, BlockedForUnit(f, 12))
}

func TestBlockedForUnitMonotonic(t *testing.T) {
	verbs := []*Verb{luw(t), NewVerb(2, blaptwParts, 4), NewVerb(3, isthmiParts, 12), NewVerb(4, tithhmiParts, 12)}
	for _, v := range verbs {
		for code := EncodedForm(0); code < NumEncodedForms; code++ {
			f := VerbForm{Verb: v}
			f.Decode(code)
			for u := Unit(-1); u <= 21; u++ {
				if BlockedForUnit(f, u) {
					assert.True(t, BlockedForUnit(f, u-1), "%s allowed at %d but blocked at %d", f, u-1, u)
				}
			}
		}
	}
}

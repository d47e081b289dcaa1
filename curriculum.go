package morphodrill

import "math"

// Unit is a curriculum checkpoint: the highest unit a learner has completed.
// Units start at 1; 0 and below gate like the first band.
type Unit int

// NoUnit lifts every restriction.
const NoUnit Unit = math.MaxInt

// BlockedForUnit reports whether f is too advanced for a learner who has
// completed unit. Later units only ever relax restrictions.
func BlockedForUnit(f VerbForm, unit Unit) bool {
	var miVerb, stemiVerb, consonantStem bool
	if f.Verb != nil {
		miVerb = f.Verb.EndsInMi()
		stemiVerb = f.Verb.EndsInStemi()
		consonantStem = f.Verb.ConsonantStem()
	}

	perfectSystem := f.Tense == Perfect || f.Tense == Pluperfect
	futureOptative := f.Tense == Future && f.Mood == Optative
	// The 3rd plural perfect/pluperfect middle/passive of consonant stems is
	// periphrastic and taught last.
	periphrastic3pl := consonantStem && perfectSystem &&
		(f.Voice == Middle || f.Voice == Passive) &&
		f.Person == Third && f.Number == Plural

	switch {
	case unit <= 2:
		return perfectSystem || f.Voice != Active || f.Mood != Indicative || miVerb
	case unit <= 4:
		return f.Voice != Active || f.Mood == Imperative || miVerb || futureOptative
	case unit <= 6:
		return f.Voice == Middle || f.Mood == Imperative || miVerb || futureOptative || periphrastic3pl
	case unit <= 10:
		return f.Mood == Imperative || miVerb || futureOptative || periphrastic3pl
	case unit <= 11:
		return miVerb || futureOptative || periphrastic3pl
	case unit <= 12:
		return (miVerb && f.Tense == Aorist) || (stemiVerb && perfectSystem) ||
			futureOptative || periphrastic3pl
	case unit <= 15:
		return futureOptative || periphrastic3pl
	case unit <= 19:
		return periphrastic3pl
	}
	return false
}

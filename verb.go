package morphodrill

import (
	"fmt"
	"strconv"
	"strings"
)

// Verb is a lexical verb entry. It is immutable after NewVerb and is shared
// by pointer between every VerbForm built on it, so concurrent readers need
// no locking.
type Verb struct {
	// ID is the lexicon identifier.
	ID int
	// PrincipalParts holds the six citation forms, "—" where a part is lacking.
	PrincipalParts []string
	// Hq is the curriculum unit in which the verb is introduced (0 if unknown).
	Hq int

	endsInMi      bool
	endsInStemi   bool
	consonantStem bool
}

// NewVerb builds a verb entry and classifies its stem shape once.
func NewVerb(id int, principalParts []string, hq int) *Verb {
	v := &Verb{
		ID:             id,
		PrincipalParts: append([]string(nil), principalParts...),
		Hq:             hq,
	}
	if len(v.PrincipalParts) > 0 {
		first := NormalizeKey(firstAlternative(v.PrincipalParts[0]))
		v.endsInMi = strings.HasSuffix(first, "μι")
		v.endsInStemi = strings.HasSuffix(first, "στημι")
	}
	v.consonantStem = perfectMiddleConsonantStem(v.PrincipalParts)
	return v
}

// perfectMiddleConsonantStem looks at the fifth principal part: a stem that
// ends in a consonant before -μαι (βέβλαμμαι, γέγραμμαι, πέπεισμαι) takes a
// periphrastic 3rd plural in the perfect and pluperfect middle/passive.
func perfectMiddleConsonantStem(pps []string) bool {
	if len(pps) < 5 {
		return false
	}
	pp := NormalizeKey(firstAlternative(pps[4]))
	stem, ok := strings.CutSuffix(pp, "μαι")
	if !ok || stem == "" {
		return false
	}
	r := []rune(stem)
	return isGreekConsonant(r[len(r)-1])
}

// ParseVerb parses a lexicon line of the form
//
//	id|pp1, pp2, pp3, pp4, pp5, pp6[|hq]
func ParseVerb(line string) (*Verb, error) {
	parts := strings.Split(line, "|")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrBadVerb, line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: id %q: %v", ErrBadVerb, parts[0], err)
	}
	var pps []string
	for _, pp := range strings.Split(parts[1], ",") {
		pps = append(pps, strings.TrimSpace(pp))
	}
	if len(pps) != 6 {
		return nil, fmt.Errorf("%w: verb %d has %d principal parts, want 6", ErrBadVerb, id, len(pps))
	}
	hq := 0
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		if hq, err = strconv.Atoi(strings.TrimSpace(parts[2])); err != nil {
			return nil, fmt.Errorf("%w: hq %q: %v", ErrBadVerb, parts[2], err)
		}
	}
	return NewVerb(id, pps, hq), nil
}

// EndsInMi reports whether the first principal part ends in -μι.
func (v *Verb) EndsInMi() bool { return v.endsInMi }

// EndsInStemi reports whether the first principal part ends in -στημι.
func (v *Verb) EndsInStemi() bool { return v.endsInStemi }

// ConsonantStem reports whether the perfect middle stem ends in a consonant.
func (v *Verb) ConsonantStem() bool { return v.consonantStem }

// Lemma returns the first principal part.
func (v *Verb) Lemma() string {
	if len(v.PrincipalParts) == 0 {
		return ""
	}
	return v.PrincipalParts[0]
}

// VerbForm is one inflected form of a verb. Values are small and copied
// freely; only Verb is shared.
type VerbForm struct {
	Verb   *Verb
	Person Person
	Number Number
	Tense  Tense
	Mood   Mood
	Voice  Voice
	Gender Gender
	Case   Case
}

// NewFiniteForm returns a finite form with person and number set.
func NewFiniteForm(v *Verb, p Person, n Number, t Tense, m Mood, vc Voice) VerbForm {
	return VerbForm{Verb: v, Person: p, Number: n, Tense: t, Mood: m, Voice: vc}
}

// Clone returns a copy of f that shares f's Verb.
func (f VerbForm) Clone() VerbForm { return f }

// IsFinite reports whether person and number are both set.
func (f VerbForm) IsFinite() bool {
	return f.Person < PersonNone && f.Number < NumberNone
}

// SameParams reports whether f and g carry the same five grammatical values.
func (f VerbForm) SameParams(g VerbForm) bool {
	return f.Person == g.Person && f.Number == g.Number && f.Tense == g.Tense &&
		f.Mood == g.Mood && f.Voice == g.Voice
}

func (f VerbForm) String() string {
	lemma := ""
	if f.Verb != nil {
		lemma = f.Verb.Lemma()
	}
	return fmt.Sprintf("%s %s %s %s %s %s", lemma, f.Person, f.Number, f.Tense, f.Mood, f.Voice)
}

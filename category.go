package morphodrill

import "fmt"

// Category identifies one mutable grammatical dimension of a finite form.
type Category uint8

const (
	CatPerson Category = iota
	CatNumber
	CatTense
	CatMood
	CatVoice
)

// NumCategories is the number of mutable grammatical dimensions.
const NumCategories = 5

// Person ordinals are stable; they feed the encoding in codec.go.
type Person uint8

const (
	First Person = iota
	Second
	Third
	// PersonNone marks a form without person (non-finite forms).
	PersonNone
)

// Number ordinals are stable; they feed the encoding in codec.go.
type Number uint8

const (
	Singular Number = iota
	Plural
	// NumberNone marks a form without number.
	NumberNone
)

type Tense uint8

const (
	Present Tense = iota
	Imperfect
	Future
	Aorist
	Perfect
	Pluperfect
)

type Mood uint8

const (
	Indicative Mood = iota
	Subjunctive
	Optative
	Imperative
)

type Voice uint8

const (
	Active Voice = iota
	Middle
	Passive
)

// Gender and Case only matter for participles. The zero value means "none"
// and the sampler never reads or writes them.
type Gender uint8

const (
	GenderNone Gender = iota
	Masculine
	Feminine
	Neuter
)

type Case uint8

const (
	CaseNone Case = iota
	Nominative
	Genitive
	Dative
	Accusative
	Vocative
)

var (
	categoryNames = [...]string{"person", "number", "tense", "mood", "voice"}
	personNames   = [...]string{"first", "second", "third", "none"}
	numberNames   = [...]string{"singular", "plural", "none"}
	tenseNames    = [...]string{"present", "imperfect", "future", "aorist", "perfect", "pluperfect"}
	moodNames     = [...]string{"indicative", "subjunctive", "optative", "imperative"}
	voiceNames    = [...]string{"active", "middle", "passive"}
	genderNames   = [...]string{"", "masculine", "feminine", "neuter"}
	caseNames     = [...]string{"", "nominative", "genitive", "dative", "accusative", "vocative"}
)

func enumString(names []string, v uint8, kind string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", kind, v)
}

func enumParse(names []string, text []byte, kind string) (uint8, error) {
	s := string(text)
	for i, n := range names {
		if n == s {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownValue, kind, s)
}

func (c Category) String() string { return enumString(categoryNames[:], uint8(c), "Category") }
func (p Person) String() string   { return enumString(personNames[:], uint8(p), "Person") }
func (n Number) String() string   { return enumString(numberNames[:], uint8(n), "Number") }
func (t Tense) String() string    { return enumString(tenseNames[:], uint8(t), "Tense") }
func (m Mood) String() string     { return enumString(moodNames[:], uint8(m), "Mood") }
func (v Voice) String() string    { return enumString(voiceNames[:], uint8(v), "Voice") }
func (g Gender) String() string   { return enumString(genderNames[:], uint8(g), "Gender") }
func (c Case) String() string     { return enumString(caseNames[:], uint8(c), "Case") }

// MarshalText and UnmarshalText let the enums travel as lower-case names in
// JSON request and response bodies.

func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
func (p Person) MarshalText() ([]byte, error)   { return []byte(p.String()), nil }
func (n Number) MarshalText() ([]byte, error)   { return []byte(n.String()), nil }
func (t Tense) MarshalText() ([]byte, error)    { return []byte(t.String()), nil }
func (m Mood) MarshalText() ([]byte, error)     { return []byte(m.String()), nil }
func (v Voice) MarshalText() ([]byte, error)    { return []byte(v.String()), nil }

func (c *Category) UnmarshalText(text []byte) error {
	v, err := enumParse(categoryNames[:], text, "category")
	*c = Category(v)
	return err
}

func (p *Person) UnmarshalText(text []byte) error {
	v, err := enumParse(personNames[:], text, "person")
	*p = Person(v)
	return err
}

func (n *Number) UnmarshalText(text []byte) error {
	v, err := enumParse(numberNames[:], text, "number")
	*n = Number(v)
	return err
}

func (t *Tense) UnmarshalText(text []byte) error {
	v, err := enumParse(tenseNames[:], text, "tense")
	*t = Tense(v)
	return err
}

func (m *Mood) UnmarshalText(text []byte) error {
	v, err := enumParse(moodNames[:], text, "mood")
	*m = Mood(v)
	return err
}

func (v *Voice) UnmarshalText(text []byte) error {
	x, err := enumParse(voiceNames[:], text, "voice")
	*v = Voice(x)
	return err
}

// categoryOps is one row of the category dispatch table. radix is the number
// of concrete values of the category and doubles as its codec digit base.
type categoryOps struct {
	radix   int
	get     func(f *VerbForm) int
	set     func(f *VerbForm, v int)
	allowed func(a *AllowedValues) []int
}

// categoryTable is indexed by Category, in codec digit order (least
// significant first).
var categoryTable = [NumCategories]categoryOps{
	CatPerson: {
		radix:   3,
		get:     func(f *VerbForm) int { return int(f.Person) },
		set:     func(f *VerbForm, v int) { f.Person = Person(v) },
		allowed: func(a *AllowedValues) []int { return ordinals(a.Persons) },
	},
	CatNumber: {
		radix:   2,
		get:     func(f *VerbForm) int { return int(f.Number) },
		set:     func(f *VerbForm, v int) { f.Number = Number(v) },
		allowed: func(a *AllowedValues) []int { return ordinals(a.Numbers) },
	},
	CatTense: {
		radix:   6,
		get:     func(f *VerbForm) int { return int(f.Tense) },
		set:     func(f *VerbForm, v int) { f.Tense = Tense(v) },
		allowed: func(a *AllowedValues) []int { return ordinals(a.Tenses) },
	},
	CatMood: {
		radix:   4,
		get:     func(f *VerbForm) int { return int(f.Mood) },
		set:     func(f *VerbForm, v int) { f.Mood = Mood(v) },
		allowed: func(a *AllowedValues) []int { return ordinals(a.Moods) },
	},
	CatVoice: {
		radix:   3,
		get:     func(f *VerbForm) int { return int(f.Voice) },
		set:     func(f *VerbForm, v int) { f.Voice = Voice(v) },
		allowed: func(a *AllowedValues) []int { return ordinals(a.Voices) },
	},
}

func ordinals[T ~uint8](vs []T) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = int(v)
	}
	return out
}

package morphodrill

import "testing"

// Principal parts used throughout the tests.
var (
	luwParts     = []string{"λύω", "λύσω", "ἔλῡσα", "λέλυκα", "λέλυμαι", "ἐλύθην"}
	blaptwParts  = []string{"βλάπτω", "βλάψω", "ἔβλαψα", "βέβλαφα", "βέβλαμμαι", "ἐβλάβην / ἐβλάφθην"}
	isthmiParts  = []string{"ἵστημι", "στήσω", "ἔστησα / ἔστην", "ἕστηκα", "ἕσταμαι", "ἐστάθην"}
	tithhmiParts = []string{"τίθημι", "θήσω", "ἔθηκα", "τέθηκα", "τέθειμαι", "ἐτέθην"}
)

func luw(t testing.TB) *Verb {
	t.Helper()
	return NewVerb(1, luwParts, 2)
}

// alwaysSpelled realizes every form as a fixed string.
var alwaysSpelled = RealizerFunc(func(VerbForm) ([]Fragment, error) {
	return []Fragment{{Form: "λύω"}}, nil
})

// neverLegal rejects every form as illegal.
var neverLegal = RealizerFunc(func(f VerbForm) ([]Fragment, error) {
	return nil, ErrIllegalForm
})

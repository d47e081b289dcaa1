package morphodrill

// EncodedForm packs the five grammatical values of a finite form into one
// mixed-radix integer, person being the least significant digit:
//
//	voice·144 + mood·36 + tense·6 + number·3 + person
//
// It is the deduplication key for SeenSet.
type EncodedForm uint32

// NumEncodedForms is the size of the code space of concretely specified forms.
const NumEncodedForms = 3 * 2 * 6 * 4 * 3

// Encode returns the code of f. An unset person or number is packed as the
// sentinel digit 3 or 2. Those digits overflow their radix, so a form
// without person can collide with a neighbouring finite form (e.g. person
// none, singular has the same code as first person plural). Callers that
// hash non-finite forms should use EncodeWide.
func Encode(f VerbForm) EncodedForm {
	return EncodedForm(pack(f, 0))
}

// Decode sets the five grammatical values of f from code. The result is
// always a finite form.
func (f *VerbForm) Decode(code EncodedForm) {
	unpack(f, uint32(code), 0)
}

// EncodeWide is Encode with the person and number radices widened by one so
// the sentinels get their own digit value. The range is [0, NumWideForms)
// and the mapping is injective over finite and non-finite forms alike.
func EncodeWide(f VerbForm) EncodedForm {
	return EncodedForm(pack(f, 1))
}

// NumWideForms is the size of the EncodeWide code space.
const NumWideForms = 4 * 3 * 6 * 4 * 3

// DecodeWide reverses EncodeWide.
func (f *VerbForm) DecodeWide(code EncodedForm) {
	unpack(f, uint32(code), 1)
}

// digitRadix returns the codec base of c. widen adds one slot to person and
// number for their sentinels.
func digitRadix(c Category, widen int) uint32 {
	r := categoryTable[c].radix
	if c == CatPerson || c == CatNumber {
		r += widen
	}
	return uint32(r)
}

func pack(f VerbForm, widen int) uint32 {
	var code, weight uint32 = 0, 1
	for c := CatPerson; c < NumCategories; c++ {
		code += uint32(categoryTable[c].get(&f)) * weight
		weight *= digitRadix(c, widen)
	}
	return code
}

// unpack peels digits off from the most significant (voice) down, the same
// nesting as pack.
func unpack(f *VerbForm, code uint32, widen int) {
	var weights [NumCategories]uint32
	w := uint32(1)
	for c := CatPerson; c < NumCategories; c++ {
		weights[c] = w
		w *= digitRadix(c, widen)
	}
	for c := Category(NumCategories); c > CatPerson; {
		c--
		categoryTable[c].set(f, int(code/weights[c]))
		code %= weights[c]
	}
}

// SeenSet is a caller-owned set of encoded forms. The sampler only reads it.
type SeenSet map[EncodedForm]struct{}

// Has reports whether code is in s. A nil set contains nothing.
func (s SeenSet) Has(code EncodedForm) bool {
	_, ok := s[code]
	return ok
}

// Add inserts code into s.
func (s SeenSet) Add(code EncodedForm) { s[code] = struct{}{} }

// Len returns the number of codes in s.
func (s SeenSet) Len() int { return len(s) }

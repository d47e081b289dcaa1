package morphodrill

import (
	"fmt"
	"strings"
)

// Paradigm is the spelled-out finite conjugation of one verb, keyed by
// EncodedForm. A cell holding Placeholder is a grammatical combination with
// no attested form; a missing cell does not exist at all.
type Paradigm struct {
	Verb  *Verb
	Cells map[EncodedForm]string
}

func newParadigm(v *Verb) *Paradigm {
	return &Paradigm{Verb: v, Cells: make(map[EncodedForm]string)}
}

// Realize returns the single fragment stored for f.
func (p *Paradigm) Realize(f VerbForm) ([]Fragment, error) {
	if !f.IsFinite() {
		return nil, fmt.Errorf("%w: %s is not finite", ErrIllegalForm, f)
	}
	form, ok := p.Cells[Encode(f)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIllegalForm, f)
	}
	return []Fragment{{Form: form}}, nil
}

// Len returns the number of cells, placeholders included.
func (p *Paradigm) Len() int {
	return len(p.Cells)
}

// slotOrder is the person/number order of the six forms on a paradigm row.
var slotOrder = [6]struct {
	p Person
	n Number
}{
	{First, Singular}, {Second, Singular}, {Third, Singular},
	{First, Plural}, {Second, Plural}, {Third, Plural},
}

// addRow parses one row "tense:mood:voice:f1;f2;f3;f4;f5;f6". A slot of "-"
// (or an empty slot) is left out of the table; "—" is stored as the
// placeholder.
func (p *Paradigm) addRow(line string) error {
	eclats := strings.SplitN(line, ":", 4)
	if len(eclats) != 4 {
		return fmt.Errorf("paradigm row %q: want tense:mood:voice:forms", line)
	}
	var (
		t  Tense
		m  Mood
		vc Voice
	)
	if err := t.UnmarshalText([]byte(eclats[0])); err != nil {
		return fmt.Errorf("paradigm row %q: %w", line, err)
	}
	if err := m.UnmarshalText([]byte(eclats[1])); err != nil {
		return fmt.Errorf("paradigm row %q: %w", line, err)
	}
	if err := vc.UnmarshalText([]byte(eclats[2])); err != nil {
		return fmt.Errorf("paradigm row %q: %w", line, err)
	}

	slots := strings.Split(eclats[3], ";")
	if len(slots) > len(slotOrder) {
		return fmt.Errorf("paradigm row %q: %d forms, want at most 6", line, len(slots))
	}
	for i, s := range slots {
		s = strings.TrimSpace(s)
		if s == "" || s == "-" {
			continue
		}
		f := NewFiniteForm(p.Verb, slotOrder[i].p, slotOrder[i].n, t, m, vc)
		p.Cells[Encode(f)] = s
	}
	return nil
}

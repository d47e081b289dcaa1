// Package morphodrill picks random inflected forms of Ancient Greek verbs for
// drilling. Starting from a form the learner has just seen, it changes a few
// grammatical categories at random and keeps only candidates that exist, are
// spelled differently from a middle/passive twin, fit the learner's
// curriculum unit, and were not drilled before.
//
// The root package holds the sampling core (category.go, codec.go,
// mutate.go, guard.go, curriculum.go, sampler.go) and a lexicon with a
// table-driven Realizer loaded from data files.
package morphodrill

import (
	"fmt"
	"sort"
)

// Drill holds the loaded lexicon and paradigm tables. It is read-only after
// New and may be shared between goroutines.
type Drill struct {
	// verbs maps verb id → *Verb.
	verbs map[int]*Verb

	// paradigms maps verb id → its table of spelled forms.
	paradigms map[int]*Paradigm
}

// New loads verbs.txt and paradigms.txt from dataDir.
func New(dataDir string) (*Drill, error) {
	d := &Drill{
		verbs:     make(map[int]*Verb),
		paradigms: make(map[int]*Paradigm),
	}
	if err := d.loadVerbs(dataDir); err != nil {
		return nil, err
	}
	if err := d.loadParadigms(dataDir); err != nil {
		return nil, err
	}
	return d, nil
}

// Verb returns the verb with the given id, or nil.
func (d *Drill) Verb(id int) *Verb {
	return d.verbs[id]
}

// Verbs returns every loaded verb ordered by id.
func (d *Drill) Verbs() []*Verb {
	out := make([]*Verb, 0, len(d.verbs))
	for _, v := range d.verbs {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Paradigm returns the table of verb id, or nil.
func (d *Drill) Paradigm(id int) *Paradigm {
	return d.paradigms[id]
}

// Realize looks f up in its verb's paradigm. It implements Realizer.
func (d *Drill) Realize(f VerbForm) ([]Fragment, error) {
	if f.Verb == nil {
		return nil, fmt.Errorf("%w: form has no verb", ErrIllegalForm)
	}
	p := d.paradigms[f.Verb.ID]
	if p == nil {
		return nil, fmt.Errorf("%w: no paradigm for verb %d", ErrIllegalForm, f.Verb.ID)
	}
	return p.Realize(f)
}

package morphodrill

import (
	"context"
	"log/slog"
)

// Placeholder is the surface text a Realizer returns for a combination that
// is grammatical but has no attested form.
const Placeholder = "—"

// Fragment is one piece of a realized form. The last fragment carries the
// finished spelling.
type Fragment struct {
	Form string `json:"form"`
}

// Realizer spells a fully specified form. It returns an error (conventionally
// wrapping ErrIllegalForm) when the combination does not exist.
type Realizer interface {
	Realize(f VerbForm) ([]Fragment, error)
}

// RealizerFunc adapts a function to Realizer.
type RealizerFunc func(f VerbForm) ([]Fragment, error)

func (fn RealizerFunc) Realize(f VerbForm) ([]Fragment, error) { return fn(f) }

// Diagnostics counts why candidates were rejected during one RandomForm call.
// Each rejection increments exactly one counter.
type Diagnostics struct {
	Illegal       int `json:"illegal"`
	NoSurfaceForm int `json:"no_surface_form"`
	VoiceBlocked  int `json:"voice_blocked"`
	UnitBlocked   int `json:"unit_blocked"`
	Filtered      int `json:"filtered"`
	// Exhausted is set when the attempt ceiling was hit and the returned
	// form was not checked.
	Exhausted bool `json:"exhausted"`
}

// Rejected returns the total number of rejected candidates.
func (d Diagnostics) Rejected() int {
	return d.Illegal + d.NoSurfaceForm + d.VoiceBlocked + d.UnitBlocked + d.Filtered
}

type rejection uint8

const (
	accepted rejection = iota
	rejectIllegal
	rejectVoice
	rejectUnit
	rejectFiltered
	rejectNoSurfaceForm
)

var rejectionNames = [...]string{"accepted", "illegal", "middle/passive flip", "blocked for unit", "already seen", "no surface form"}

func (r rejection) String() string { return rejectionNames[r] }

func (d *Diagnostics) count(r rejection) {
	switch r {
	case rejectIllegal:
		d.Illegal++
	case rejectVoice:
		d.VoiceBlocked++
	case rejectUnit:
		d.UnitBlocked++
	case rejectFiltered:
		d.Filtered++
	case rejectNoSurfaceForm:
		d.NoSurfaceForm++
	}
}

// Sampler draws random drill forms by rejection sampling. A Sampler owns its
// random source; when that source is a *rand.Rand the Sampler must not be
// shared between goroutines.
type Sampler struct {
	realizer     Realizer
	rng          Rand
	filterEscape int
	maxAttempts  int
	log          *slog.Logger
}

// NewSampler returns a Sampler that spells candidates with r.
func NewSampler(r Realizer, opts ...Option) *Sampler {
	s := &Sampler{
		realizer:     r,
		rng:          DefaultRand(),
		filterEscape: DefaultFilterEscape,
		maxAttempts:  DefaultMaxAttempts,
		log:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RandomForm returns a form derived from start by changing up to maxChanges
// categories, such that the form is legal, has a surface spelling, is not a
// silent middle/passive flip from start, is not blocked for unit, and is not
// in seen.
//
// After FilterEscape rejections seen is ignored. After MaxAttempts
// rejections the last candidate is returned unchecked and
// Diagnostics.Exhausted is set. A nil allowed permits every value. seen may be nil and is never modified;
// callers add the returned form's code themselves.
func (s *Sampler) RandomForm(start VerbForm, maxChanges int, unit Unit, allowed *AllowedValues, seen SeenSet) (VerbForm, Diagnostics) {
	var diag Diagnostics
	for rejected := 0; ; {
		cand := start.Clone()
		cand.ChangeParams(s.rng, maxChanges, allowed, nil)

		r := s.check(start, cand, unit, seen, rejected < s.filterEscape)
		if r == accepted {
			return cand, diag
		}
		diag.count(r)
		rejected++
		if ctx := context.Background(); s.log.Enabled(ctx, slog.LevelDebug) {
			s.log.LogAttrs(ctx, slog.LevelDebug, "[SAMPLER] rejected",
				slog.Int("attempt", rejected),
				slog.String("reason", r.String()),
				slog.String("form", cand.String()))
		}

		if rejected >= s.maxAttempts {
			diag.Exhausted = true
			s.log.Warn("[SAMPLER] attempt ceiling reached", "attempts", rejected, "form", cand.String())
			return cand, diag
		}
	}
}

// check applies the acceptance rules in priority order.
func (s *Sampler) check(start, cand VerbForm, unit Unit, seen SeenSet, honorSeen bool) rejection {
	frags, err := s.realizer.Realize(cand)
	switch {
	case err != nil:
		return rejectIllegal
	case BlockMiddlePassive(start, cand):
		return rejectVoice
	case BlockedForUnit(cand, unit):
		return rejectUnit
	case honorSeen && seen.Has(Encode(cand)):
		return rejectFiltered
	case len(frags) == 0 || frags[len(frags)-1].Form == Placeholder:
		return rejectNoSurfaceForm
	}
	return accepted
}

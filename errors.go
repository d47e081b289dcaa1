package morphodrill

import "errors"

// ErrIllegalForm is what a Realizer returns when a combination of person,
// number, tense, mood and voice does not exist for the verb. The sampler
// treats any Realize error the same way, so wrapping is fine.
var ErrIllegalForm = errors.New("morphodrill: illegal form")

// ErrEmptyAllowedValues reports a category with no permitted values.
var ErrEmptyAllowedValues = errors.New("morphodrill: empty allowed values")

// ErrUnknownValue reports a category or value name that could not be parsed.
var ErrUnknownValue = errors.New("morphodrill: unknown value")

// ErrBadVerb reports a malformed verb line in the lexicon.
var ErrBadVerb = errors.New("morphodrill: malformed verb entry")

// ErrUnknownVerb reports a verb id missing from the lexicon.
var ErrUnknownVerb = errors.New("morphodrill: unknown verb")

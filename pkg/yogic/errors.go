package yogic

import "github.com/pkg/errors"

// ErrStepLimit is panicked by Resolve when a WithMaxSteps budget is
// exceeded. Exceeding a configured depth/step limit is a distinct
// failure mode from "no solutions" and must never be reported as one.
var ErrStepLimit = errors.New("yogic: resolution exceeded its step limit")

// panicMisuse reports a programming error: the host handed the engine
// something it does not know how to interpret (an empty compound tag,
// a negative solution count, and the like). These are bugs, not
// ordinary logical failure, so the engine fails loudly rather than
// returning an error value the host might mistake for "no solutions".
func panicMisuse(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

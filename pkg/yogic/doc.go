// Package yogic is a small embedded logic-programming resolution engine.
//
// A host program builds logical goals out of a handful of combinators —
// Unit, Fail, Cut, Seq, Amb, Not, Unify — and enumerates the variable
// bindings that satisfy them by ranging over Resolve. Internally the
// engine is first-order syntactic unification plus depth-first,
// SLD-style resolution with chronological backtracking, Prolog-style
// cut, and negation as failure.
//
// # The three-continuation engine
//
// Every Goal, applied to a Subst, produces a Step: a function waiting
// for three continuations — succeed, fail, and escape. succeed is
// called with a satisfying Subst and a Cont that resumes the search for
// further solutions. fail triggers ordinary backtracking. escape prunes
// the search tree at the nearest enclosing Amb; it is what makes Cut
// possible. Under normal execution escape and fail coincide; Amb
// installs the current fail as the escape path for its branches, so a
// Cut inside an Amb branch commits to that branch and discards the
// remaining alternatives, without disturbing anything outside the Amb.
//
// # Stack safety
//
// Goal chains built from recursive predicates (see Predicate) can be
// arbitrarily deep. Every continuation invocation that could recurse
// returns a pending Outcome instead of calling onward directly; Resolve
// drives these with an explicit loop (a trampoline), so resolution
// depth is bounded by heap-allocated closures, not the Go call stack.
//
// # What this package is not
//
// There is no clause database, no assert/retract, no arithmetic
// evaluation, and no occurs check. Binding a variable to a compound
// that contains it is permitted (the usual Prolog compromise); Subst's
// own deref never recurses into the bound term, but a later smooth of
// such a cyclic term (as done by Proxy.Lookup) will not terminate. No part of this package
// spawns goroutines or performs I/O.
package yogic

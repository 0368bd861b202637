package yogic

import (
	"iter"

	"github.com/hashicorp/go-hclog"
)

type resolveConfig struct {
	maxSteps int
}

// ResolveOption configures a single Resolve call.
type ResolveOption func(*resolveConfig)

// WithMaxSteps bounds the total number of trampoline steps one ranging
// over Resolve takes, counted across all the solutions it produces,
// panicking with ErrStepLimit if the budget is exceeded. This is a distinct failure mode from "no
// solutions" (spec.md §7) — it exists for hosts that want a hard
// backstop against goals with unbounded or runaway search, not as an
// ordinary way to end a search.
func WithMaxSteps(n int) ResolveOption {
	return func(c *resolveConfig) { c.maxSteps = n }
}

// WithTraceLogger routes this package's internal cut/backtrack tracing
// through logger for the lifetime of the process (tracing is a
// package-wide switch, like a log level, not a per-call one). Pass
// hclog.NewNullLogger() to silence it again.
func WithTraceLogger(logger hclog.Logger) ResolveOption {
	return func(c *resolveConfig) {
		SetTraceLogger(logger)
	}
}

// Resolve starts resolution of goal and returns a lazy, left-to-right,
// depth-first sequence of Proxies, one per solution. Ranging over it
// drives the search one solution at a time; breaking out of the range
// is the entire cancellation mechanism — the remainder of the search
// tree is simply never visited, and the engine has nothing further to
// clean up.
func Resolve(goal Goal, opts ...ResolveOption) iter.Seq[*Proxy] {
	cfg := resolveConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(yield func(*Proxy) bool) {
		outcome := goal(emptySubst())(rootSuccess, rootFail, rootFail)
		steps := 0
		for {
			for outcome.next != nil {
				if cfg.maxSteps > 0 {
					steps++
					if steps > cfg.maxSteps {
						panic(ErrStepLimit)
					}
				}
				outcome = outcome.next()
			}
			if outcome.subst == nil {
				return
			}
			if !yield(&Proxy{subst: outcome.subst}) {
				return
			}
			outcome = outcome.resume()
		}
	}
}

// ResolveOne returns the first solution of goal, if any.
func ResolveOne(goal Goal, opts ...ResolveOption) (*Proxy, bool) {
	for p := range Resolve(goal, opts...) {
		return p, true
	}
	return nil, false
}

// ResolveN returns up to n solutions of goal, in order. n must be >= 0.
func ResolveN(goal Goal, n int, opts ...ResolveOption) []*Proxy {
	if n < 0 {
		panicMisuse("yogic: ResolveN: n must be >= 0, got %d", n)
	}
	results := make([]*Proxy, 0, n)
	if n == 0 {
		return results
	}
	for p := range Resolve(goal, opts...) {
		results = append(results, p)
		if len(results) >= n {
			break
		}
	}
	return results
}

// ResolveAll returns every solution of goal. It can run forever if goal
// has infinitely many solutions — pass WithMaxSteps, or prefer Resolve
// directly with an explicit break condition, when that is a risk.
func ResolveAll(goal Goal, opts ...ResolveOption) []*Proxy {
	var results []*Proxy
	for p := range Resolve(goal, opts...) {
		results = append(results, p)
	}
	return results
}

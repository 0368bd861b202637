package yogic

import "github.com/hashicorp/go-hclog"

// tracer is the package-wide engine trace logger. It defaults to a null
// logger, so tracing costs nothing unless a host opts in via
// SetTraceLogger or Resolve's WithTraceLogger option: every call site
// below guards on logger.IsTrace() before doing any work, keeping the
// engine's "no I/O inside a goal" contract intact for the default
// configuration.
var tracer hclog.Logger = hclog.NewNullLogger()

// SetTraceLogger installs the package-wide trace logger, used by every
// later Resolve call; WithTraceLogger sets this same logger rather than
// a per-call one. Passing nil restores the null logger (tracing
// disabled).
func SetTraceLogger(logger hclog.Logger) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	tracer = logger
}

func traceCut(logger hclog.Logger) {
	if logger.IsTrace() {
		logger.Trace("cut: committing, pruning enclosing choice point")
	}
}

func traceBacktrack(logger hclog.Logger, reason string) {
	if logger.IsTrace() {
		logger.Trace("backtrack", "reason", reason)
	}
}

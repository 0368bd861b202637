package yogic

import (
	"fmt"
	"sync/atomic"
)

// varCounter hands out globally unique Variable identities. It is an
// atomic so Fresh may safely be called from multiple goroutines even
// though resolution of any single goal tree is single-threaded.
var varCounter atomic.Int64

// Var is an opaque, uniquely-identified placeholder that may be bound
// to a Term during resolution. Its identity is the only property the
// engine ever inspects; Var values are otherwise immutable and carry no
// binding themselves — bindings live in a Subst.
type Var struct {
	id int64
}

// Fresh creates a new logic variable with a globally unique identity.
// Identities are never reused within a process lifetime.
func Fresh() *Var {
	return &Var{id: varCounter.Add(1)}
}

func (v *Var) isTerm() {}

// Equal reports whether t is the same Variable (same identity).
func (v *Var) Equal(t Term) bool {
	other, ok := t.(*Var)
	return ok && other.id == v.id
}

func (v *Var) String() string {
	return fmt.Sprintf("_%d", v.id)
}

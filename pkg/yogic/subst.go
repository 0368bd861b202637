package yogic

// Subst is a scoped mapping from Variables to the Terms they are bound
// to. It is organized as a persistent stack of layers: each Bind
// allocates one new child layer holding a single binding, with the
// parent chain shared (never copied) between the old and new Subst.
// Abandoning a choice point is just dropping the reference to the child
// layer; the parent chain is untouched and survives.
//
// Once a Variable appears as a key in any layer it stays bound for that
// layer's lifetime: there is no rebinding and no mutation of existing
// entries. A fresh Subst is created at the start of each Resolve call.
type Subst struct {
	parent  *Subst
	binding binding
}

type binding struct {
	has bool
	v   *Var
	t   Term
}

// emptySubst returns a fresh substitution with no bindings.
func emptySubst() *Subst {
	return &Subst{}
}

// bind returns a new Subst equal to s plus v ↦ t in a freshly pushed
// layer. It never mutates s. Callers are expected to have already
// dereferenced v (Unify only ever binds a Variable that deref left
// unbound).
func (s *Subst) bind(v *Var, t Term) *Subst {
	return &Subst{parent: s, binding: binding{has: true, v: v, t: t}}
}

// lookup searches layers newest-first for v, stopping at the first
// match.
func (s *Subst) lookup(v *Var) (Term, bool) {
	for layer := s; layer != nil; layer = layer.parent {
		if layer.binding.has && layer.binding.v.id == v.id {
			return layer.binding.t, true
		}
	}
	return nil, false
}

// deref chases a Variable's binding chain, one link at a time, until it
// reaches a non-Variable or an unbound Variable. It never descends into
// compounds. deref is pure: it never modifies s.
func (s *Subst) deref(t Term) Term {
	for {
		v, ok := t.(*Var)
		if !ok {
			return t
		}
		bound, ok := s.lookup(v)
		if !ok {
			return t
		}
		t = bound
	}
}

// smooth fully and recursively resolves t: Variables are deref'd
// (repeatedly, to a fixed point), and every element of a compound is
// smoothed in turn. smooth terminates because Variable chains are
// acyclic by construction and compound depth is finite — binding a
// Variable to a compound that contains it is permitted (no occurs
// check), and smoothing such a term does not terminate; that is a
// documented limitation, not a bug.
func (s *Subst) smooth(t Term) Term {
	t = s.deref(t)
	if c, ok := t.(Compound); ok {
		elements := make([]Term, len(c.elements))
		for i, e := range c.elements {
			elements[i] = s.smooth(e)
		}
		return Compound{tag: c.tag, elements: elements}
	}
	return t
}

// Proxy is an immutable, read-only view over a Subst, the only form of
// substitution ever exposed outside this package. Looking up a Variable
// through a Proxy returns its deeply resolved (smoothed) Term.
type Proxy struct {
	subst *Subst
}

// Lookup returns the fully resolved Term bound to v, or v itself if v
// is unbound or unreferenced by this solution.
func (p *Proxy) Lookup(v *Var) Term {
	return p.subst.smooth(v)
}

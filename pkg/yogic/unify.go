package yogic

// Pair is one (left, right) constraint passed to Unify.
type Pair struct {
	Left, Right Term
}

// Unify builds a goal that unifies each pair in order, left to right,
// each pair seeing the bindings produced by the ones before it — this
// is exactly Seq over the per-pair unifications, not a single atomic
// step over a pre-dereferenced snapshot.
//
// Per pair, once both sides are dereferenced against the current Subst:
//
//  1. if they're already equal (atomic equality, the same Variable, or
//     structurally equal compounds), succeed with no change;
//  2. else if the left side is a Variable, bind it to the right side;
//  3. else if the right side is a Variable, bind it to the left side;
//  4. else if both are compounds of the same tag and length, unify
//     element-wise, in order;
//  5. otherwise, fail.
//
// There is no occurs check: binding a Variable to a compound containing
// it is permitted, and Unify itself never loops over such a term
// (deref only chases Variables, never compound structure) — but a later
// smooth of such a term (as done by Proxy.Lookup) will not terminate.
func Unify(pairs ...Pair) Goal {
	goals := make([]Goal, len(pairs))
	for i, p := range pairs {
		goals[i] = unifyOne(p.Left, p.Right)
	}
	return Seq(goals...)
}

// UnifyAny is the convenience form amb(unify((v, x)) for x in values):
// v may take on any one of values.
func UnifyAny(v *Var, values ...Term) Goal {
	goals := make([]Goal, len(values))
	for i, value := range values {
		goals[i] = Unify(Pair{v, value})
	}
	return Amb(goals...)
}

func unifyOne(a, b Term) Goal {
	return func(s *Subst) Step {
		da, db := s.deref(a), s.deref(b)

		if da.Equal(db) {
			return Unit(s)
		}
		if v, ok := da.(*Var); ok {
			return bindVar(v, db)(s)
		}
		if v, ok := db.(*Var); ok {
			return bindVar(v, da)(s)
		}
		if ca, ok := da.(Compound); ok {
			if cb, ok := db.(Compound); ok && ca.tag == cb.tag && len(ca.elements) == len(cb.elements) {
				elementPairs := make([]Pair, len(ca.elements))
				for i := range ca.elements {
					elementPairs[i] = Pair{ca.elements[i], cb.elements[i]}
				}
				return Unify(elementPairs...)(s)
			}
		}
		return Fail(s)
	}
}

func bindVar(v *Var, t Term) Goal {
	return func(s *Subst) Step {
		return Unit(s.bind(v, t))
	}
}

// Package family wires a small set of example predicates over the
// engine in package yogic: child/descendant relations over a literal
// pedigree, and human/dog/mortal classifications used to demonstrate
// disjunction, recursion, and negation as failure.
package family

import "github.com/go-yogic/yogic/pkg/yogic"

// childPairs is the literal (child, parent) dataset the package's
// predicates are built over.
var childPairs = [][2]string{
	{"archimedes", "bob"},
	{"fluffy", "fifi"},
	{"daisy", "fluffy"},
	{"athene", "zeus"},
}

// Child succeeds, once per matching pair, when a is a direct child of c.
func Child(a, c *yogic.Var) yogic.Goal {
	branches := make([]yogic.Goal, len(childPairs))
	for i, pair := range childPairs {
		branches[i] = yogic.Unify(
			yogic.Pair{Left: a, Right: yogic.NewAtom(pair[0])},
			yogic.Pair{Left: c, Right: yogic.NewAtom(pair[1])},
		)
	}
	return yogic.Amb(branches...)
}

// Descendant succeeds when a descends from c through one or more Child
// links. It is wrapped in Predicate so the recursive call to Descendant
// itself is deferred until actually resolved, the same way the engine's
// own recursive predicates must be built.
func Descendant(a, c *yogic.Var) yogic.Goal {
	return yogic.Predicate(func() yogic.Goal {
		b := yogic.Fresh()
		return yogic.Amb(
			Child(a, c),
			yogic.Seq(Child(a, b), Descendant(b, c)),
		)
	})
}

// humans are the atoms Human classifies.
var humans = []string{"socrates", "plato", "bob"}

// Human succeeds, once per name, with a bound to that name, in the
// fixed order the names are listed here.
func Human(a *yogic.Var) yogic.Goal {
	return yogic.UnifyAny(a, atoms(humans)...)
}

// dogs are the atoms Dog classifies.
var dogs = []string{"fifi", "fluffy", "daisy"}

// Dog succeeds, once per name, with x bound to that name.
func Dog(x *yogic.Var) yogic.Goal {
	return yogic.UnifyAny(x, atoms(dogs)...)
}

// Mortal succeeds iff a is known to be Human. Every name this package
// classifies as Human is mortal; nothing here models an immortal
// exception, so Mortal and Human currently coincide.
func Mortal(a *yogic.Var) yogic.Goal {
	return Human(a)
}

func atoms(names []string) []yogic.Term {
	terms := make([]yogic.Term, len(names))
	for i, name := range names {
		terms[i] = yogic.NewAtom(name)
	}
	return terms
}

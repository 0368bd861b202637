// Command family is a demo harness over the predicates in package
// family: small relational queries run from the shell, one subcommand
// per scenario, to see the engine's disjunction, recursion, cut, and
// negation behavior without writing any Go.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/go-yogic/yogic/internal/family"
	"github.com/go-yogic/yogic/pkg/yogic"
)

var trace bool

func main() {
	root := &cobra.Command{
		Use:   "family",
		Short: "Run example relational queries over a small pedigree and animal dataset",
	}
	root.PersistentFlags().BoolVar(&trace, "trace", false, "log engine cut/backtrack events at trace level")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if trace {
			yogic.SetTraceLogger(hclog.New(&hclog.LoggerOptions{
				Name:  "family",
				Level: hclog.Trace,
			}))
		}
	}

	root.AddCommand(descendantCmd(), mortalCmd(), cutDemoCmd(), negationDemoCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func descendantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "descendant",
		Short: "List every recorded descendant of fifi",
		Run: func(cmd *cobra.Command, args []string) {
			x := yogic.Fresh()
			fifi := yogic.Fresh()
			goal := yogic.Seq(
				yogic.Unify(yogic.Pair{Left: fifi, Right: yogic.NewAtom("fifi")}),
				family.Descendant(x, fifi),
			)
			for p := range yogic.Resolve(goal) {
				fmt.Println(p.Lookup(x))
			}
		},
	}
}

func mortalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mortal",
		Short: "List everyone this dataset knows to be mortal",
		Run: func(cmd *cobra.Command, args []string) {
			x := yogic.Fresh()
			for p := range yogic.Resolve(family.Mortal(x)) {
				fmt.Println(p.Lookup(x))
			}
		},
	}
}

func cutDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cut-demo",
		Short: "Compare Human enumeration with and without a cut after the first match",
		Run: func(cmd *cobra.Command, args []string) {
			x := yogic.Fresh()
			fmt.Println("without cut:")
			for p := range yogic.Resolve(family.Human(x)) {
				fmt.Println(" ", p.Lookup(x))
			}

			fmt.Println("with cut (commits to the first match):")
			withCut := yogic.Seq(family.Human(x), yogic.Cut)
			for p := range yogic.Resolve(withCut) {
				fmt.Println(" ", p.Lookup(x))
			}
		},
	}
}

func negationDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "negation-demo",
		Short: "Check fluffy and bob against negation as failure over Dog",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range []string{"fluffy", "bob"} {
				x := yogic.Fresh()
				goal := yogic.Seq(
					yogic.Unify(yogic.Pair{Left: x, Right: yogic.NewAtom(name)}),
					yogic.Not(family.Dog(x)),
				)
				_, ok := yogic.ResolveOne(goal)
				fmt.Printf("%s is not a dog: %v\n", name, ok)
			}
		},
	}
}

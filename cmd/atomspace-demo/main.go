// Command atomspace-demo exercises the atomspace library end to end: it
// builds the literal worked scenarios from the reducer and unifier and
// prints what each one reduces or unifies to.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ngeiswei/atomspace/internal/pkg/atype"
	"github.com/ngeiswei/atomspace/internal/pkg/common"
	"github.com/ngeiswei/atomspace/internal/pkg/config"
	"github.com/ngeiswei/atomspace/pkg/atomspace"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "path to a config file (default: search ATOMSPACE_CONFIG, ./atomspace.yaml, ~/.config/atomspace)")
	occursCheck := flag.Bool("occurs-check", false, "enable the unifier's opt-in occurs check")
	showVersion := flag.Bool("version", false, "show version")
	flag.Parse()

	if *showVersion {
		fmt.Printf("atomspace-demo version: %s\n", version)
		return
	}

	log := common.NewLogWriter(os.Stdout)

	cfg, path, err := resolveConfig(*configPath)
	if err != nil {
		log.Err(err)
		os.Exit(1)
	}
	if path != "" {
		log.Trace("loaded config from %s", path)
	} else {
		log.Trace("no config file found, using defaults")
	}

	as, err := atomspace.New(cfg)
	if err != nil {
		log.Err(err)
		os.Exit(1)
	}

	var opts []atomspace.UnifyOption
	if *occursCheck {
		opts = append(opts, atomspace.WithOccursCheck())
	}

	runReduceScenarios(as, log)
	runUnifyScenarios(as, log, opts...)

	if log.HasErrors() {
		os.Exit(1)
	}
}

func resolveConfig(path string) (*config.Config, string, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

func runReduceScenarios(as *atomspace.AtomSpace, log *common.LogWriter) {
	numberT, _ := as.Lookup(atype.NumberNodeName)
	varT, _ := as.Lookup(atype.VariableNodeName)
	plusT, _ := as.Lookup(atype.PlusLinkName)
	timesT, _ := as.Lookup(atype.TimesLinkName)

	num := func(v string) atomspace.Handle { return as.MakeNode(numberT, v) }
	x := as.MakeNode(varT, "X")

	scenarios := []struct {
		name string
		term atomspace.Handle
	}{
		{"PLUS(2,3)", mustLink(as, plusT, num("2"), num("3"))},
		{"PLUS(X,X)", mustLink(as, plusT, x, x)},
		{"PLUS(X,TIMES(X,3))", mustLink(as, plusT, x, mustLink(as, timesT, x, num("3")))},
		{
			"PLUS(TIMES(X,2),TIMES(X,5),1)",
			mustLink(as, plusT, mustLink(as, timesT, x, num("2")), mustLink(as, timesT, x, num("5")), num("1")),
		},
	}

	for _, sc := range scenarios {
		reduced, err := as.Reduce(sc.term)
		if err != nil {
			log.Err(fmt.Errorf("reduce %s: %w", sc.name, err))
			continue
		}
		log.Trace("reduce(%s) -> handle %d", sc.name, reduced)
	}
}

func mustLink(as *atomspace.AtomSpace, t atype.Tag, children ...atomspace.Handle) atomspace.Handle {
	h, err := as.NewArithmeticLink(t, children)
	if err != nil {
		panic(err)
	}
	return h
}

func runUnifyScenarios(as *atomspace.AtomSpace, log *common.LogWriter, opts ...atomspace.UnifyOption) {
	numberT, _ := as.Lookup(atype.NumberNodeName)
	varT, _ := as.Lookup(atype.VariableNodeName)
	typedVarT, _ := as.Lookup(atype.TypedVariableLinkName)
	typeNodeT, _ := as.Lookup(atype.TypeNodeName)

	x := as.MakeNode(varT, "X")
	seven := as.MakeNode(numberT, "7")

	numberTypeNode := as.MakeNode(typeNodeT, atype.NumberNodeName)
	declAtom := as.MakeLink(typedVarT, []atomspace.Handle{x, numberTypeNode})
	decl, err := as.VarlistOf(x, declAtom)
	if err != nil {
		log.Err(err)
		return
	}

	sol := as.Unify(x, seven, decl, nil, opts...)
	log.Trace("unify(X, NUMBER(7)) satisfiable=%v partitions=%d", sol.Satisfiable(), len(sol.Partitions()))

	one := as.MakeNode(numberT, "1")
	two := as.MakeNode(numberT, "2")
	sol = as.Unify(one, two, nil, nil, opts...)
	log.Trace("unify(NUMBER(1), NUMBER(2)) satisfiable=%v", sol.Satisfiable())
}

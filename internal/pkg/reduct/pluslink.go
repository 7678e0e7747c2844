package reduct

import "github.com/ngeiswei/atomspace/internal/pkg/atom"

// plusKsym is PLUS_LINK's symbolic combiner (§4.D), applied in order:
//  1. Number + Number
//  2. identity collapse (x == y)
//  3. like-term collection against a TIMES_LINK right operand
//  4. fallback: no rule applies
//
// The asymmetry — only y is ever inspected as a TIMES_LINK — is
// intentional: fold puts PLUS_LINK's children into reorder's canonical
// order first and then calls Ksym(last, next) left to right, so each
// unordered pair is tried in exactly one orientation (§4.D).
func (rd *Reducer) plusKsym(x, y atom.Handle) (atom.Handle, bool, error) {
	if xv, ok := rd.isNumber(x); ok {
		if yv, ok := rd.isNumber(y); ok {
			return rd.s.MakeNode(rd.numberT, atom.FormatNumber(xv+yv)), true, nil
		}
	}

	if x == y {
		two := rd.s.MakeNode(rd.numberT, "2")
		return rd.s.MakeLink(rd.timesT, []atom.Handle{x, two}), true, nil
	}

	if rd.s.IsLink(y) && rd.s.TypeOf(y) == rd.timesT && rd.s.Arity(y) > 0 {
		c := rd.s.Child(y, 0)
		yTail := rd.s.Children(y)[1:]

		if x == c {
			one := rd.s.MakeNode(rd.numberT, "1")
			tail := append([]atom.Handle{one}, yTail...)
			sum, err := rd.Reduce(rd.s.MakeLink(rd.plusT, tail))
			if err != nil {
				return atom.Undefined, false, err
			}
			return rd.s.MakeLink(rd.timesT, []atom.Handle{c, sum}), true, nil
		}

		if rd.s.IsLink(x) && rd.s.TypeOf(x) == rd.timesT && rd.s.Arity(x) > 0 && rd.s.Child(x, 0) == c {
			xTail := rd.s.Children(x)[1:]
			tail := append(append([]atom.Handle{}, xTail...), yTail...)
			sum, err := rd.Reduce(rd.s.MakeLink(rd.plusT, tail))
			if err != nil {
				return atom.Undefined, false, err
			}
			return rd.s.MakeLink(rd.timesT, []atom.Handle{c, sum}), true, nil
		}
	}

	return atom.Undefined, false, nil
}

// timesKsym is TIMES_LINK's symbolic combiner. Per SPEC_FULL's
// supplemented-features decision, TIMES_LINK's own reduction stays
// minimal — number folding only — so that it is fully usable as the
// ksym target PLUS_LINK's like-term collection needs (rule 3 above)
// without inventing algebra spec.md never names.
func (rd *Reducer) timesKsym(x, y atom.Handle) (atom.Handle, bool, error) {
	if xv, ok := rd.isNumber(x); ok {
		if yv, ok := rd.isNumber(y); ok {
			return rd.s.MakeNode(rd.numberT, atom.FormatNumber(xv*yv)), true, nil
		}
	}
	return atom.Undefined, false, nil
}

// Package atom is the atom substrate (§4.A): interned, immutable terms
// addressable by a cheap, shared handle. It is the one piece of §1's
// "external collaborator" set this module ships a concrete implementation
// of — reduct and unify depend only on the Substrate interface, never on
// MemStore directly, so any other interning store (see sqlitestore) can
// stand in for it.
package atom

import (
	"fmt"
	"strconv"

	"github.com/ngeiswei/atomspace/internal/pkg/atype"
)

// Handle is a shared, immutable reference to an atom. Handle equality
// implies structural equality (§3): the substrate guarantees that two
// structurally-equal atoms intern to the same Handle. The zero Handle
// never denotes a real atom (§4.E's "if either handle is undefined").
type Handle uint64

// Undefined is the zero handle, used where spec §4.E requires an
// "undefined" handle (e.g. a missing child).
const Undefined Handle = 0

// Atom is the immutable payload behind a Handle: a type tag, and either a
// name (node) or an ordered sequence of child handles (link), never both
// meaningful (§3). Side-annotations like truth/attention values are
// explicitly out of this core's scope (§1) and are not modeled here.
type Atom struct {
	typ      atype.Tag
	name     string
	isLink   bool
	children []Handle
}

func (a *Atom) String() string {
	if !a.isLink {
		return a.name
	}
	s := fmt.Sprintf("Link#%d(", a.typ)
	for i, c := range a.children {
		if i > 0 {
			s += ", "
		}
		s += strconv.FormatUint(uint64(c), 10)
	}
	return s + ")"
}

// Substrate is the contract (A) exposes to, and D/E consume from, the
// atom graph (§4.A, §6). No operation mutates an existing atom; the two
// constructors intern and are idempotent with respect to structural
// equality.
type Substrate interface {
	TypeOf(h Handle) atype.Tag
	IsNode(h Handle) bool
	IsLink(h Handle) bool
	Arity(h Handle) int
	Child(h Handle, i int) Handle
	Children(h Handle) []Handle
	Name(h Handle) string

	MakeNode(t atype.Tag, name string) Handle
	MakeLink(t atype.Tag, children []Handle) Handle
}

// Handles are allocated in strictly increasing interning order by every
// Substrate this module ships (MemStore, sqlitestore), so the raw numeric
// Handle value itself already is the "handle identity" spec §9 wants
// Reorder and unify's canonical serialization to sort by — no separate
// sequence bookkeeping is needed.

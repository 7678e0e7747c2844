package unify

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ngeiswei/atomspace/internal/pkg/atom"
	"github.com/ngeiswei/atomspace/internal/pkg/atype"
)

// Block is a typed equivalence class (§4.E): a set of atoms unified
// together, and the type their common substitution instance must have.
// Atoms is always kept sorted by handle identity and deduplicated, so two
// Blocks with the same members and type compare equal field-by-field.
type Block struct {
	atoms []atom.Handle
	typ   atype.Tag
}

func newBlock(typ atype.Tag, atoms ...atom.Handle) Block {
	return Block{atoms: normalizeAtoms(atoms), typ: typ}
}

// Atoms returns the block's members, sorted by handle identity (§9).
func (b Block) Atoms() []atom.Handle { return append([]atom.Handle(nil), b.atoms...) }

// Type returns the block's intersected type.
func (b Block) Type() atype.Tag { return b.typ }

func normalizeAtoms(atoms []atom.Handle) []atom.Handle {
	out := append([]atom.Handle(nil), atoms...)
	slices.Sort(out)
	return slices.Compact(out)
}

func disjointAtoms(a, b []atom.Handle) bool {
	seen := make(map[atom.Handle]bool, len(a))
	for _, h := range a {
		seen[h] = true
	}
	for _, h := range b {
		if seen[h] {
			return false
		}
	}
	return true
}

func (b Block) key() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(b.typ), 10))
	for _, h := range b.atoms {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatUint(uint64(h), 10))
	}
	return sb.String()
}

// Partition is a set of disjoint Blocks (§4.E): one consistent grouping
// of lhs's and rhs's atoms into typed equivalence classes.
type Partition struct {
	blocks []Block
}

// Blocks returns the partition's blocks, canonically ordered by a string
// serialization of each block's type tag followed by its sorted member
// handles (§4.E's "Ordering and determinism").
func (p Partition) Blocks() []Block { return append([]Block(nil), p.blocks...) }

func (p Partition) normalized() Partition {
	out := append([]Block(nil), p.blocks...)
	slices.SortFunc(out, func(a, b Block) int { return strings.Compare(a.key(), b.key()) })
	return Partition{blocks: out}
}

func (p Partition) key() string {
	var sb strings.Builder
	for i, b := range p.normalized().blocks {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(b.key())
	}
	return sb.String()
}

// SolutionSet is the result of Unify (§4.E): either unsatisfiable, or a
// deduplicated set of partitions, each one a distinct consistent way to
// group lhs's and rhs's atoms into typed equivalence classes.
type SolutionSet struct {
	satisfiable bool
	partitions  []Partition
}

// Satisfiable reports whether lhs and rhs have at least one common
// substitution instance.
func (s SolutionSet) Satisfiable() bool { return s.satisfiable }

// Partitions returns the solution set's distinct partitions in the order
// Unify produced them, which is fixed for given inputs; the partitions
// themselves are not sorted.
func (s SolutionSet) Partitions() []Partition { return append([]Partition(nil), s.partitions...) }

// Unsatisfiable is the solution set meaning "no common substitution
// instance exists" — a first-class value, not an error (§7).
func Unsatisfiable() SolutionSet { return SolutionSet{satisfiable: false} }

// trivialSatisfiable is the "no constraints yet" solution set (§3): an
// empty partition set, not a set containing one empty partition. Merge's
// identity fast path checks for exactly this shape.
func trivialSatisfiable() SolutionSet {
	return SolutionSet{satisfiable: true}
}

// satisfiableWithBlocks builds one partition per candidate block: each
// block is a mutually exclusive way the underlying variable pair could be
// typed, so they are distinct alternatives in the solution set, never
// blocks of the same partition.
func satisfiableWithBlocks(blocks []Block) SolutionSet {
	partitions := make([]Partition, len(blocks))
	for i, b := range blocks {
		partitions[i] = Partition{blocks: []Block{b}}
	}
	return SolutionSet{satisfiable: true, partitions: partitions}
}

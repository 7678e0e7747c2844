package unify

import (
	"github.com/ngeiswei/atomspace/internal/pkg/atom"
	"github.com/ngeiswei/atomspace/internal/pkg/atype"
)

// Merge combines two solution sets (§4.E's three-level merge algebra):
// unsatisfiable if either operand is; the other operand verbatim if one
// side carries no constraints yet; otherwise the cross product of their
// partitions, each pair combined by mergePartitions, deduplicated by
// canonical serialization.
func Merge(r *atype.Registry, s, t SolutionSet) SolutionSet {
	if !s.satisfiable || !t.satisfiable {
		return Unsatisfiable()
	}
	if len(s.partitions) == 0 {
		return t
	}
	if len(t.partitions) == 0 {
		return s
	}

	seen := map[string]bool{}
	var out []Partition
	for _, p := range s.partitions {
		for _, q := range t.partitions {
			merged, ok := mergePartitions(r, p, q)
			if !ok {
				continue
			}
			merged = merged.normalized()
			key := merged.key()
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, merged)
		}
	}
	return SolutionSet{satisfiable: len(out) > 0, partitions: out}
}

// mergePartitions merges q into p (§4.E's partition merge): each block of
// q is folded together with every block of p it shares an atom with — a
// block can overlap more than one of p's blocks, in which case all of
// them, plus q's block, collapse into one — and appended standalone if it
// shares atoms with none. Fails (empty, false) the moment any constituent
// block merge is invalid.
func mergePartitions(r *atype.Registry, p, q Partition) (Partition, bool) {
	blocks := append([]Block(nil), p.blocks...)
	for _, qb := range q.blocks {
		merged := qb
		var rest []Block
		for _, existing := range blocks {
			if disjointAtoms(merged.atoms, existing.atoms) {
				rest = append(rest, existing)
				continue
			}
			nb, ok := mergeBlocks(r, merged, existing)
			if !ok {
				return Partition{}, false
			}
			merged = nb
		}
		blocks = append(rest, merged)
	}
	return Partition{blocks: blocks}, true
}

// mergeBlocks implements the block merge (E₁,τ₁) ⊕ (E₂,τ₂) = (E₁∪E₂,
// τ₁⊓τ₂), invalid iff the type intersection is Bottom.
func mergeBlocks(r *atype.Registry, a, b Block) (Block, bool) {
	typ := r.TypeIntersection(a.typ, b.typ)
	if typ == atype.Bottom {
		return Block{}, false
	}
	return newBlock(typ, append(append([]atom.Handle{}, a.atoms...), b.atoms...)...), true
}

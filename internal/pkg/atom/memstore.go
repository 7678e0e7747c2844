package atom

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/ngeiswei/atomspace/internal/pkg/atype"
)

// MemStore is the default, in-memory Substrate: a hash-consing table
// keyed by structural equality, guarded by a single RWMutex so that many
// callers can intern or query concurrently (§5) — reads never block each
// other, and MakeNode/MakeLink only take the write lock long enough to
// check-then-insert.
type MemStore struct {
	mu      sync.RWMutex
	byKey   map[string]Handle
	atoms   map[Handle]*Atom
	nextSeq uint64
}

// NewMemStore returns an empty in-memory atom substrate.
func NewMemStore() *MemStore {
	return &MemStore{
		byKey: map[string]Handle{},
		atoms: map[Handle]*Atom{},
	}
}

func nodeKey(t atype.Tag, name string) string {
	return "N:" + strconv.FormatUint(uint64(t), 10) + ":" + name
}

func linkKey(t atype.Tag, children []Handle) string {
	var sb strings.Builder
	sb.WriteString("L:")
	sb.WriteString(strconv.FormatUint(uint64(t), 10))
	for _, c := range children {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatUint(uint64(c), 10))
	}
	return sb.String()
}

// MakeNode interns a leaf atom, returning the existing handle if an atom
// with the same type and name was already interned (§4.A).
func (s *MemStore) MakeNode(t atype.Tag, name string) Handle {
	key := nodeKey(t, name)
	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.byKey[key]; ok {
		return h
	}
	s.nextSeq++
	h := Handle(s.nextSeq)
	s.atoms[h] = &Atom{typ: t, name: name}
	s.byKey[key] = h
	return h
}

// MakeLink interns an inner atom, returning the existing handle if an
// atom with the same type and ordered child sequence was already interned
// (§4.A).
func (s *MemStore) MakeLink(t atype.Tag, children []Handle) Handle {
	key := linkKey(t, children)
	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.byKey[key]; ok {
		return h
	}
	s.nextSeq++
	h := Handle(s.nextSeq)
	cs := append([]Handle(nil), children...)
	s.atoms[h] = &Atom{typ: t, isLink: true, children: cs}
	s.byKey[key] = h
	return h
}

func (s *MemStore) lookup(h Handle) *Atom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.atoms[h]
	if !ok {
		panic(fmt.Sprintf("atom: dangling handle %d", h))
	}
	return a
}

func (s *MemStore) TypeOf(h Handle) atype.Tag { return s.lookup(h).typ }
func (s *MemStore) IsNode(h Handle) bool      { return !s.lookup(h).isLink }
func (s *MemStore) IsLink(h Handle) bool      { return s.lookup(h).isLink }
func (s *MemStore) Arity(h Handle) int        { return len(s.lookup(h).children) }
func (s *MemStore) Name(h Handle) string      { return s.lookup(h).name }

func (s *MemStore) Child(h Handle, i int) Handle {
	return s.lookup(h).children[i]
}

func (s *MemStore) Children(h Handle) []Handle {
	c := s.lookup(h).children
	out := make([]Handle, len(c))
	copy(out, c)
	return out
}

var _ Substrate = (*MemStore)(nil)

package sqlitestore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ngeiswei/atomspace/internal/pkg/atom"
	"github.com/ngeiswei/atomspace/internal/pkg/atype"
)

func nodeKey(t atype.Tag, name string) string {
	return "N:" + strconv.FormatUint(uint64(t), 10) + ":" + name
}

func linkKey(t atype.Tag, children []atom.Handle) string {
	var sb strings.Builder
	sb.WriteString("L:")
	sb.WriteString(strconv.FormatUint(uint64(t), 10))
	for _, c := range children {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatUint(uint64(c), 10))
	}
	return sb.String()
}

// MakeNode interns a leaf atom (§4.A), persisting it if not already
// present.
func (s *Store) MakeNode(t atype.Tag, name string) atom.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := nodeKey(t, name)
	if h, ok := s.lookupByKey(key); ok {
		return h
	}
	res, err := s.db.Exec(
		"INSERT INTO atoms (type, is_link, name, struct_key) VALUES (?, 0, ?, ?)",
		uint64(t), name, key,
	)
	if err != nil {
		panic(fmt.Sprintf("sqlitestore: MakeNode insert failed: %v", err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		panic(fmt.Sprintf("sqlitestore: MakeNode last-insert-id failed: %v", err))
	}
	return atom.Handle(id)
}

// MakeLink interns an inner atom (§4.A), persisting it and its ordered
// child references if not already present.
func (s *Store) MakeLink(t atype.Tag, children []atom.Handle) atom.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := linkKey(t, children)
	if h, ok := s.lookupByKey(key); ok {
		return h
	}

	tx, err := s.db.Begin()
	if err != nil {
		panic(fmt.Sprintf("sqlitestore: MakeLink begin failed: %v", err))
	}
	res, err := tx.Exec(
		"INSERT INTO atoms (type, is_link, name, struct_key) VALUES (?, 1, '', ?)",
		uint64(t), key,
	)
	if err != nil {
		tx.Rollback()
		panic(fmt.Sprintf("sqlitestore: MakeLink insert failed: %v", err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		panic(fmt.Sprintf("sqlitestore: MakeLink last-insert-id failed: %v", err))
	}
	for i, c := range children {
		if _, err := tx.Exec(
			"INSERT INTO atom_children (parent_handle, position, child_handle) VALUES (?, ?, ?)",
			id, i, uint64(c),
		); err != nil {
			tx.Rollback()
			panic(fmt.Sprintf("sqlitestore: MakeLink child insert failed: %v", err))
		}
	}
	if err := tx.Commit(); err != nil {
		panic(fmt.Sprintf("sqlitestore: MakeLink commit failed: %v", err))
	}
	return atom.Handle(id)
}

func (s *Store) lookupByKey(key string) (atom.Handle, bool) {
	var handle int64
	err := s.db.QueryRow("SELECT handle FROM atoms WHERE struct_key = ?", key).Scan(&handle)
	if err != nil {
		return atom.Undefined, false
	}
	return atom.Handle(handle), true
}

type row struct {
	typ    atype.Tag
	isLink bool
	name   string
}

func (s *Store) row(h atom.Handle) row {
	var typ int64
	var isLink int
	var name string
	err := s.db.QueryRow("SELECT type, is_link, name FROM atoms WHERE handle = ?", uint64(h)).
		Scan(&typ, &isLink, &name)
	if err != nil {
		panic(fmt.Sprintf("sqlitestore: dangling handle %d: %v", h, err))
	}
	return row{typ: atype.Tag(typ), isLink: isLink != 0, name: name}
}

func (s *Store) TypeOf(h atom.Handle) atype.Tag { return s.row(h).typ }
func (s *Store) IsNode(h atom.Handle) bool      { return !s.row(h).isLink }
func (s *Store) IsLink(h atom.Handle) bool      { return s.row(h).isLink }
func (s *Store) Name(h atom.Handle) string      { return s.row(h).name }

func (s *Store) Children(h atom.Handle) []atom.Handle {
	rows, err := s.db.Query(
		"SELECT child_handle FROM atom_children WHERE parent_handle = ? ORDER BY position", uint64(h),
	)
	if err != nil {
		panic(fmt.Sprintf("sqlitestore: Children query failed: %v", err))
	}
	defer rows.Close()

	var out []atom.Handle
	for rows.Next() {
		var c int64
		if err := rows.Scan(&c); err != nil {
			panic(fmt.Sprintf("sqlitestore: Children scan failed: %v", err))
		}
		out = append(out, atom.Handle(c))
	}
	return out
}

func (s *Store) Arity(h atom.Handle) int { return len(s.Children(h)) }

func (s *Store) Child(h atom.Handle, i int) atom.Handle {
	return s.Children(h)[i]
}

var _ atom.Substrate = (*Store)(nil)

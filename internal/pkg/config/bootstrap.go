package config

import (
	"fmt"

	"github.com/ngeiswei/atomspace/internal/pkg/atom"
	"github.com/ngeiswei/atomspace/internal/pkg/atom/sqlitestore"
	"github.com/ngeiswei/atomspace/internal/pkg/atype"
)

// Bootstrap builds the type registry and atom substrate a Config
// describes (§4.B's "process-wide, initialised before any core
// operation" requirement): the builtin hierarchy, plus any Types the
// config adds, and the selected Substrate backend.
func Bootstrap(c *Config) (*atype.Registry, atom.Substrate, error) {
	r := atype.NewRegistry()
	for _, td := range c.Types {
		parents := make([]atype.Tag, 0, len(td.Parents))
		for _, pname := range td.Parents {
			p, ok := r.Lookup(pname)
			if !ok {
				return nil, nil, fmt.Errorf("config: type %q declares unknown parent %q", td.Name, pname)
			}
			parents = append(parents, p)
		}
		if len(parents) == 0 {
			return nil, nil, fmt.Errorf("config: type %q must declare at least one parent", td.Name)
		}
		r.Register(td.Name, parents...)
	}

	switch c.Substrate.Backend {
	case "", "memory":
		return r, atom.NewMemStore(), nil
	case "sqlite":
		if c.Substrate.Path == "" {
			path, err := sqlitestore.DefaultPath()
			if err != nil {
				return nil, nil, fmt.Errorf("config: resolve default sqlite path: %w", err)
			}
			s, err := sqlitestore.Open(path)
			return r, s, err
		}
		s, err := sqlitestore.Open(c.Substrate.Path)
		return r, s, err
	default:
		return nil, nil, fmt.Errorf("config: unknown substrate backend %q", c.Substrate.Backend)
	}
}

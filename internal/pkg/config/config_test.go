package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ngeiswei/atomspace/internal/pkg/atype"
)

func TestDefaultConfigUsesMemoryBackend(t *testing.T) {
	c := DefaultConfig()
	if c.Substrate.Backend != "memory" {
		t.Errorf("Backend = %q, want memory", c.Substrate.Backend)
	}
	if c.Unify.OccursCheck {
		t.Error("occurs check should default to off, matching §9's default semantics")
	}
}

func TestLoadFromPathRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atomspace.yaml")

	written := &Config{
		Version:   1,
		Substrate: SubstrateConfig{Backend: "sqlite", Path: "atomspace.db"},
		Types: []TypeDecl{
			{Name: "IntegerNode", Parents: []string{atype.NumberNodeName}},
		},
		Unify: UnifyConfig{OccursCheck: true},
	}
	if err := written.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, gotPath, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if gotPath != path {
		t.Errorf("path = %q, want %q", gotPath, path)
	}
	if got.Substrate.Backend != "sqlite" || got.Substrate.Path != "atomspace.db" {
		t.Errorf("substrate = %+v, want sqlite/atomspace.db", got.Substrate)
	}
	if !got.Unify.OccursCheck {
		t.Error("occurs_check should round-trip as true")
	}
	if len(got.Types) != 1 || got.Types[0].Name != "IntegerNode" {
		t.Errorf("Types = %+v, want one IntegerNode entry", got.Types)
	}
}

func TestFindConfigPathEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("ATOMSPACE_CONFIG", path)

	if got := FindConfigPath(); got != path {
		t.Errorf("FindConfigPath() = %q, want %q", got, path)
	}
}

func TestBootstrapMemoryBackend(t *testing.T) {
	c := DefaultConfig()
	r, s, err := Bootstrap(c)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	numberT, ok := r.Lookup(atype.NumberNodeName)
	if !ok {
		t.Fatal("builtin NumberNode type missing after bootstrap")
	}
	h := s.MakeNode(numberT, "1")
	if s.Name(h) != "1" {
		t.Errorf("Name = %q, want 1", s.Name(h))
	}
}

func TestBootstrapRegistersExtraTypes(t *testing.T) {
	c := DefaultConfig()
	c.Types = []TypeDecl{{Name: "IntegerNode", Parents: []string{atype.NumberNodeName}}}

	r, _, err := Bootstrap(c)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	intT, ok := r.Lookup("IntegerNode")
	if !ok {
		t.Fatal("IntegerNode was not registered")
	}
	numberT, _ := r.Lookup(atype.NumberNodeName)
	if !r.IsA(intT, numberT) {
		t.Error("IntegerNode should be a subtype of NumberNode")
	}
}

func TestBootstrapRejectsUnknownParent(t *testing.T) {
	c := DefaultConfig()
	c.Types = []TypeDecl{{Name: "Bogus", Parents: []string{"NoSuchType"}}}

	if _, _, err := Bootstrap(c); err == nil {
		t.Error("expected an error for a type declaring an unregistered parent")
	}
}

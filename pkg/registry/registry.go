// Package registry holds the fixed catalog of widget kinds that can be
// placed on a board. A Registry is built once at startup and never mutated
// afterwards; board code looks entries up by exact key.
package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by New.
var (
	ErrDuplicateKey = errors.New("duplicate widget key")
	ErrInvalid      = errors.New("invalid widget definition")
)

// DataRef says where a widget's content comes from. Text widgets carry
// their lines inline; chart widgets name a dataset in the data store.
type DataRef struct {
	Lines      []string `toml:"lines"`
	Series     string   `toml:"series"`
	Categories string   `toml:"categories"`
}

// Definition describes one addable widget kind.
type Definition struct {
	Key           string     `toml:"key"`
	Title         string     `toml:"title"`
	Group         string     `toml:"group"`
	Kind          RenderKind `toml:"kind"`
	DefaultWidth  float64    `toml:"width"`
	DefaultHeight float64    `toml:"height"`
	Data          DataRef    `toml:"data"`
}

// Group is a named sidebar section listing widget keys in display order.
type Group struct {
	Name string
	Keys []string
}

// Registry maps widget keys to their definitions.
type Registry struct {
	defs   map[string]Definition
	keys   []string
	groups []Group
}

// New builds a registry from defs, preserving their order. Definitions
// without a group land in "Other".
func New(defs ...Definition) (*Registry, error) {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	groupIdx := make(map[string]int)

	for _, d := range defs {
		if err := validate(d); err != nil {
			return nil, err
		}
		if _, exists := r.defs[d.Key]; exists {
			return nil, fmt.Errorf("registry: %w: %q", ErrDuplicateKey, d.Key)
		}
		if d.Title == "" {
			d.Title = d.Key
		}
		if d.Group == "" {
			d.Group = "Other"
		}
		d.Data.Lines = append([]string(nil), d.Data.Lines...)

		r.defs[d.Key] = d
		r.keys = append(r.keys, d.Key)

		i, ok := groupIdx[d.Group]
		if !ok {
			i = len(r.groups)
			groupIdx[d.Group] = i
			r.groups = append(r.groups, Group{Name: d.Group})
		}
		r.groups[i].Keys = append(r.groups[i].Keys, d.Key)
	}
	return r, nil
}

func validate(d Definition) error {
	switch {
	case d.Key == "":
		return fmt.Errorf("registry: %w: empty key", ErrInvalid)
	case d.DefaultWidth <= 0 || d.DefaultHeight <= 0:
		return fmt.Errorf("registry: %w: %q has non-positive default size %vx%v",
			ErrInvalid, d.Key, d.DefaultWidth, d.DefaultHeight)
	case d.Kind == KindText && len(d.Data.Lines) == 0:
		return fmt.Errorf("registry: %w: text widget %q has no lines", ErrInvalid, d.Key)
	case d.Kind == KindLine && d.Data.Series == "":
		return fmt.Errorf("registry: %w: line widget %q names no series", ErrInvalid, d.Key)
	case (d.Kind == KindPie || d.Kind == KindBar) && d.Data.Categories == "":
		return fmt.Errorf("registry: %w: %s widget %q names no categories", ErrInvalid, d.Kind, d.Key)
	}
	return nil
}

// Lookup returns the definition for key.
func (r *Registry) Lookup(key string) (Definition, bool) {
	d, ok := r.defs[key]
	if !ok {
		return Definition{}, false
	}
	d.Data.Lines = append([]string(nil), d.Data.Lines...)
	return d, true
}

// MustLookup returns the definition for key and panics if it is missing.
// Keys come from the compile-time catalog, so a miss is a programming error.
func (r *Registry) MustLookup(key string) Definition {
	d, ok := r.Lookup(key)
	if !ok {
		panic(fmt.Sprintf("registry: unknown widget key %q", key))
	}
	return d
}

// Keys returns every key in declaration order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Groups returns the sidebar groups in declaration order.
func (r *Registry) Groups() []Group {
	out := make([]Group, len(r.groups))
	for i, g := range r.groups {
		out[i] = Group{Name: g.Name, Keys: append([]string(nil), g.Keys...)}
	}
	return out
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	return len(r.keys)
}

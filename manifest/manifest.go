package manifest

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/sorter"
)

// Entry is one declared item. Entries are the payload of the sorters built
// from a manifest.
type Entry struct {
	Name   string   `yaml:"name" toml:"name" json:"name"`
	Group  string   `yaml:"group,omitempty" toml:"group,omitempty" json:"group,omitempty"`
	Before []string `yaml:"before,omitempty" toml:"before,omitempty" json:"before,omitempty"`
	After  []string `yaml:"after,omitempty" toml:"after,omitempty" json:"after,omitempty"`
	Sort   *float64 `yaml:"sort,omitempty" toml:"sort,omitempty" json:"sort,omitempty"`
}

// Options translates the entry's declaration into sorter options.
func (e Entry) Options() []sorter.Option {
	opts := []sorter.Option{
		sorter.WithGroup(e.Group),
		sorter.WithBefore(e.Before...),
		sorter.WithAfter(e.After...),
	}
	if e.Sort != nil {
		opts = append(opts, sorter.WithSort(*e.Sort))
	}

	return opts
}

// Manifest is a named, ordered list of entries.
type Manifest struct {
	Name  string  `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Items []Entry `yaml:"items" toml:"items" json:"items"`
}

// label names the manifest in error messages.
func (m *Manifest) label() string {
	if m.Name == "" {
		return "<unnamed>"
	}

	return m.Name
}

// Validate checks that every entry has a name and that names are unique
// within the manifest. Group constraints are checked later by Build.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Items))
	for i, e := range m.Items {
		if e.Name == "" {
			return fmt.Errorf("%w: %s: entry %d has no name", ErrInvalidManifest, m.label(), i)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: %s: duplicate entry name %q", ErrInvalidManifest, m.label(), e.Name)
		}
		seen[e.Name] = true
	}

	return nil
}

// Build validates m and registers its entries, in file order, into a new
// sorter configured by opts. Sorter errors keep their sentinel, so callers
// can still test for sorter.ErrDependencyCycle with errors.Is.
func Build(m *Manifest, opts ...sorter.SorterOption) (*sorter.Sorter[Entry], error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	s := sorter.New[Entry](opts...)
	for _, e := range m.Items {
		if _, err := s.Add(e, e.Options()...); err != nil {
			return nil, fmt.Errorf("manifest %s: entry %q: %w", m.label(), e.Name, err)
		}
	}

	return s, nil
}

// Combine builds one sorter per manifest and merges them, in order, into the
// first. Nil manifests are skipped; an empty list yields an empty sorter.
// Entry names must be unique across all manifests.
func Combine(ms []*Manifest, opts ...sorter.SorterOption) (*sorter.Sorter[Entry], error) {
	stores := make([]*sorter.Sorter[Entry], 0, len(ms))
	owners := make(map[string]string)
	for _, m := range ms {
		if m == nil {
			continue
		}
		s, err := Build(m, opts...)
		if err != nil {
			return nil, err
		}
		for _, e := range m.Items {
			if owner, dup := owners[e.Name]; dup {
				return nil, fmt.Errorf("%w: entry %q declared in both %s and %s",
					ErrInvalidManifest, e.Name, owner, m.label())
			}
			owners[e.Name] = m.label()
		}
		stores = append(stores, s)
	}
	if len(stores) == 0 {
		return sorter.New[Entry](opts...), nil
	}

	if _, err := stores[0].Merge(stores[1:]...); err != nil {
		return nil, fmt.Errorf("combining %d manifests: %w", len(stores), err)
	}

	return stores[0], nil
}

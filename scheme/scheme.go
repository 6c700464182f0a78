// Package scheme holds the Material theme data model and generates themes from a seed color.
//
// Color science is delegated to the HCT implementation of cogentcore; this package
// only decides which tone of which key palette fills each role.
package scheme

import (
	"fmt"
	"strings"

	"github.com/mcuc-cli/mcuc/argb"
)

// Variant is a theme brightness variant.
type Variant string

const (
	Light Variant = "light"
	Dark  Variant = "dark"
)

// Selection picks which variants a generated theme contains.
type Selection string

const (
	SelectLight Selection = "light"
	SelectDark  Selection = "dark"
	SelectBoth  Selection = "both"
)

// Variants returns the variants included by the selection, light first.
func (s Selection) Variants() []Variant {
	switch s {
	case SelectLight:
		return []Variant{Light}
	case SelectDark:
		return []Variant{Dark}
	default:
		return []Variant{Light, Dark}
	}
}

// ParseSelection parses "light", "dark" or "both".
func ParseSelection(s string) (Selection, error) {
	switch sel := Selection(strings.ToLower(strings.TrimSpace(s))); sel {
	case SelectLight, SelectDark, SelectBoth:
		return sel, nil
	default:
		return "", fmt.Errorf("unknown theme variant %q: expected light, dark or both", s)
	}
}

// Entry is a single role assignment.
type Entry struct {
	Role  Role
	Color argb.ARGB
}

// Scheme is a named mapping of roles to colors that remembers insertion order.
type Scheme struct {
	Name    string
	entries []Entry
	index   map[Role]int
}

// NewScheme returns an empty scheme.
func NewScheme(name string) *Scheme {
	return &Scheme{Name: name, index: make(map[Role]int)}
}

// Set assigns a color to a role. Re-assigning keeps the original position.
func (s *Scheme) Set(role Role, c argb.ARGB) *Scheme {
	if i, ok := s.index[role]; ok {
		s.entries[i].Color = c
		return s
	}
	s.index[role] = len(s.entries)
	s.entries = append(s.entries, Entry{Role: role, Color: c})
	return s
}

// Get returns the color of a role.
func (s *Scheme) Get(role Role) (argb.ARGB, bool) {
	i, ok := s.index[role]
	if !ok {
		return 0, false
	}
	return s.entries[i].Color, true
}

// Len returns the number of roles.
func (s *Scheme) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in insertion order.
func (s *Scheme) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Theme is an ordered collection of schemes, usually "light" and/or "dark".
type Theme struct {
	schemes []*Scheme
}

// NewTheme builds a theme from the given schemes, in order.
func NewTheme(schemes ...*Scheme) *Theme {
	t := &Theme{}
	for _, s := range schemes {
		t.Add(s)
	}
	return t
}

// Add appends a scheme, replacing an existing scheme with the same name in place.
func (t *Theme) Add(s *Scheme) {
	for i, existing := range t.schemes {
		if existing.Name == s.Name {
			t.schemes[i] = s
			return
		}
	}
	t.schemes = append(t.schemes, s)
}

// Schemes returns the schemes in order.
func (t *Theme) Schemes() []*Scheme {
	return append([]*Scheme(nil), t.schemes...)
}

// Scheme looks up a scheme by name.
func (t *Theme) Scheme(name string) (*Scheme, bool) {
	for _, s := range t.schemes {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Len returns the number of schemes.
func (t *Theme) Len() int {
	return len(t.schemes)
}

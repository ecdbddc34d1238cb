// Package catalog holds the fixed, ordered list of interview-preparation
// resources and the read-only queries over it. Every query preserves the
// catalog order and returns an empty slice, never an error, when nothing
// matches.
package catalog

import (
	"strings"
	"sync"

	faangerrors "github.com/dbmrq/faang/internal/errors"
	"github.com/dbmrq/faang/internal/resource"
)

// minPrefixLen is the shortest ID prefix Find accepts.
const minPrefixLen = 4

// Catalog is an immutable ordered sequence of resources.
// It is safe for concurrent use.
type Catalog struct {
	resources []resource.Resource
}

// New returns a catalog holding a copy of resources in the given order.
func New(resources []resource.Resource) *Catalog {
	return &Catalog{resources: append([]resource.Resource{}, resources...)}
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return New(builtin())
})

// Default returns the process-wide catalog of built-in resources.
// It is built on first use and never changes afterwards.
func Default() *Catalog {
	return defaultCatalog()
}

// Len returns the number of resources in the catalog.
func (c *Catalog) Len() int {
	return len(c.resources)
}

// All returns every resource in catalog order.
func (c *Catalog) All() []resource.Resource {
	return append([]resource.Resource{}, c.resources...)
}

// ByCategory returns the resources in category.
func (c *Catalog) ByCategory(category resource.Category) []resource.Resource {
	return c.where(func(r resource.Resource) bool { return r.Category() == category })
}

// ByType returns the resources of type typ.
func (c *Catalog) ByType(typ resource.Type) []resource.Resource {
	return c.where(func(r resource.Resource) bool { return r.Type() == typ })
}

// Free returns the free resources.
func (c *Catalog) Free() []resource.Resource {
	return c.where(resource.Resource.IsFree)
}

// Filter selects resources by category, type and price. Zero-valued fields
// do not filter.
type Filter struct {
	Category resource.Category
	Type     resource.Type
	FreeOnly bool
}

// IsZero reports whether the filter selects everything.
func (f Filter) IsZero() bool {
	return f.Category == "" && f.Type == "" && !f.FreeOnly
}

// Match reports whether r passes every predicate set in f.
func (f Filter) Match(r resource.Resource) bool {
	if f.Category != "" && r.Category() != f.Category {
		return false
	}
	if f.Type != "" && r.Type() != f.Type {
		return false
	}
	if f.FreeOnly && !r.IsFree() {
		return false
	}
	return true
}

// Filter returns the resources matching every predicate set in f.
func (c *Catalog) Filter(f Filter) []resource.Resource {
	return c.where(f.Match)
}

// Search returns the resources whose title, description or any tag contains
// query, ignoring case. An empty query matches every resource.
func (c *Catalog) Search(query string) []resource.Resource {
	return c.where(func(r resource.Resource) bool { return Matches(r, query) })
}

// Matches reports whether r matches a search query.
func Matches(r resource.Resource, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Title()), q) ||
		strings.Contains(strings.ToLower(r.Description()), q) {
		return true
	}
	for _, tag := range r.Tags() {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Find looks up one resource by full ID, by an ID prefix of at least four
// characters, or by exact title ignoring case.
func (c *Catalog) Find(ref string) (resource.Resource, error) {
	ref = strings.TrimSpace(ref)
	lower := strings.ToLower(ref)

	for _, r := range c.resources {
		if r.ID().String() == lower {
			return r, nil
		}
	}
	for _, r := range c.resources {
		if strings.EqualFold(r.Title(), ref) {
			return r, nil
		}
	}

	if len(lower) >= minPrefixLen {
		var matches []resource.Resource
		for _, r := range c.resources {
			if strings.HasPrefix(r.ID().String(), lower) {
				matches = append(matches, r)
			}
		}
		switch len(matches) {
		case 0:
		case 1:
			return matches[0], nil
		default:
			ids := make([]string, len(matches))
			for i, m := range matches {
				ids[i] = m.ID().String()
			}
			return resource.Resource{}, faangerrors.AmbiguousReference(ref, ids)
		}
	}

	return resource.Resource{}, faangerrors.ResourceNotFound(ref)
}

func (c *Catalog) where(keep func(resource.Resource) bool) []resource.Resource {
	out := []resource.Resource{}
	for _, r := range c.resources {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

package category

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/kailas-cloud/coordex/internal/domain"
)

var nameRegex = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// Category is a node in a single-inheritance type chain (city -> settlement -> place).
type Category struct {
	name   string
	parent *Category
}

// New validates the name. parent may be nil for a root category.
func New(name string, parent *Category) (*Category, error) {
	if !nameRegex.MatchString(name) {
		return nil, fmt.Errorf("category name %q must match %s: %w", name, nameRegex, domain.ErrUnknownCategory)
	}
	return &Category{name: name, parent: parent}, nil
}

// Name returns the category name.
func (c *Category) Name() string { return c.name }

// Parent returns the direct supertype, or nil for a root.
func (c *Category) Parent() *Category { return c.parent }

// IsSubtypeOf reports whether other is c itself or one of its ancestors.
func (c *Category) IsSubtypeOf(other *Category) bool {
	if c == nil || other == nil {
		return false
	}
	seen := make(map[*Category]struct{})
	for cur := c; cur != nil; cur = cur.parent {
		if _, ok := seen[cur]; ok {
			return false
		}
		seen[cur] = struct{}{}
		if cur == other || cur.name == other.name {
			return true
		}
	}
	return false
}

// Ancestors returns the chain from the direct parent up to the root.
func (c *Category) Ancestors() []string {
	var out []string
	seen := map[*Category]struct{}{c: {}}
	for cur := c.parent; cur != nil; cur = cur.parent {
		if _, ok := seen[cur]; ok {
			break
		}
		seen[cur] = struct{}{}
		out = append(out, cur.name)
	}
	return out
}

// Registry holds a closed set of categories resolved from a name -> parent map.
type Registry struct {
	byName map[string]*Category
}

// NewRegistry resolves every entry of parents (name -> parent name, "" for a
// root). Unknown parents and cycles are rejected.
func NewRegistry(parents map[string]string) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Category, len(parents))}
	visiting := make(map[string]bool, len(parents))

	var resolve func(name string) (*Category, error)
	resolve = func(name string) (*Category, error) {
		if c, ok := r.byName[name]; ok {
			return c, nil
		}
		parentName, ok := parents[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, domain.ErrUnknownCategory)
		}
		if visiting[name] {
			return nil, fmt.Errorf("%q: %w", name, domain.ErrCategoryCycle)
		}
		visiting[name] = true
		defer delete(visiting, name)

		var parent *Category
		if parentName != "" {
			p, err := resolve(parentName)
			if err != nil {
				return nil, err
			}
			parent = p
		}
		c, err := New(name, parent)
		if err != nil {
			return nil, err
		}
		r.byName[name] = c
		return c, nil
	}

	for _, name := range sortedKeys(parents) {
		if _, err := resolve(name); err != nil {
			return nil, fmt.Errorf("category %s: %w", name, err)
		}
	}
	return r, nil
}

// Lookup returns the category by name.
func (r *Registry) Lookup(name string) (*Category, error) {
	c, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, domain.ErrUnknownCategory)
	}
	return c, nil
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of categories.
func (r *Registry) Len() int { return len(r.byName) }

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
